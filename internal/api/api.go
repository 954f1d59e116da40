// Package api builds the planner object graph: one document store shared by
// the repositories, and the services on top of them.
package api

import (
	"time"

	"task-planner/internal/domain"
	"task-planner/internal/repository"
	"task-planner/internal/services"
	"task-planner/internal/storage"
)

// Planner exposes the planner services and the workflows composed from them
type Planner struct {
	store    storage.DocumentStore
	clock    domain.Clock
	services services.ServiceContainer
}

// Option configures a Planner
type Option func(*Planner)

// WithClock replaces the wall clock, mainly for tests
func WithClock(clock domain.Clock) Option {
	return func(p *Planner) {
		if clock != nil {
			p.clock = clock
		}
	}
}

// New wires repositories and services over store. The Planner takes
// ownership of store and closes it in Close.
func New(store storage.DocumentStore, opts ...Option) *Planner {
	p := &Planner{store: store, clock: domain.SystemClock}
	for _, opt := range opts {
		opt(p)
	}

	projectRepo := repository.NewProjectRepository(store)
	taskRepo := repository.NewTaskRepository(store)
	memberRepo := repository.NewTeamMemberRepository(store)

	p.services = services.ServiceContainer{
		ProjectService:    services.NewProjectService(projectRepo, memberRepo, p.clock),
		TaskService:       services.NewTaskService(taskRepo, projectRepo, memberRepo, p.clock),
		TeamMemberService: services.NewTeamMemberService(memberRepo, p.clock),
	}
	return p
}

// Projects returns the project service
func (p *Planner) Projects() services.ProjectService {
	return p.services.ProjectService
}

// Tasks returns the task service
func (p *Planner) Tasks() services.TaskService {
	return p.services.TaskService
}

// Members returns the team member service
func (p *Planner) Members() services.TeamMemberService {
	return p.services.TeamMemberService
}

// Now returns the current moment according to the planner clock
func (p *Planner) Now() time.Time {
	return p.clock()
}

// Close releases the underlying store
func (p *Planner) Close() error {
	return p.store.Close()
}
