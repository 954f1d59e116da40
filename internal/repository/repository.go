// Package repository maps domain entities onto a storage.DocumentStore.
// Lookups scan the loaded document; writes replace any record with the same
// id and append, so Add and Update are both upserts.
package repository

import (
	"context"

	"github.com/google/uuid"

	"task-planner/internal/domain"
)

// ProjectRepository persists projects
type ProjectRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	GetAll(ctx context.Context) ([]*domain.Project, error)
	Add(ctx context.Context, project *domain.Project) error
	Update(ctx context.Context, project *domain.Project) error
}

// TaskRepository persists tasks
type TaskRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.TaskItem, error)
	GetAll(ctx context.Context) ([]*domain.TaskItem, error)
	GetByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.TaskItem, error)
	Add(ctx context.Context, task *domain.TaskItem) error
	Update(ctx context.Context, task *domain.TaskItem) error
}

// TeamMemberRepository persists team members
type TeamMemberRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.TeamMember, error)
	GetAll(ctx context.Context) ([]*domain.TeamMember, error)
	// GetByEmail matches the address case-insensitively.
	GetByEmail(ctx context.Context, email domain.Email) (*domain.TeamMember, error)
	Add(ctx context.Context, member *domain.TeamMember) error
	Update(ctx context.Context, member *domain.TeamMember) error
}

// upsert drops every record whose key equals key and appends rec.
func upsert[T any](records []T, rec T, key string, keyOf func(T) string) []T {
	out := make([]T, 0, len(records)+1)
	for _, r := range records {
		if keyOf(r) != key {
			out = append(out, r)
		}
	}
	return append(out, rec)
}
