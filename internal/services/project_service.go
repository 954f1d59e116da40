package services

import (
	"context"

	"github.com/google/uuid"

	"task-planner/internal/domain"
	"task-planner/internal/logging"
	"task-planner/internal/repository"
)

// projectServiceImpl implements the ProjectService interface
type projectServiceImpl struct {
	projects repository.ProjectRepository
	members  repository.TeamMemberRepository
	clock    domain.Clock
}

// NewProjectService creates a new ProjectService instance
func NewProjectService(projects repository.ProjectRepository, members repository.TeamMemberRepository, clock domain.Clock) ProjectService {
	if clock == nil {
		clock = domain.SystemClock
	}
	return &projectServiceImpl{projects: projects, members: members, clock: clock}
}

// CreateProject validates and stores a new project
func (s *projectServiceImpl) CreateProject(ctx context.Context, req CreateProjectRequest) (*ProjectSnapshot, error) {
	project, err := domain.NewProject(req.Name, req.Description, s.clock())
	if err != nil {
		return nil, err
	}

	if err := s.projects.Add(ctx, project); err != nil {
		return nil, err
	}
	logging.Debugf("project created: %s %q\n", project.ID(), project.Name())
	return newProjectSnapshot(project), nil
}

// ListProjects returns every project in storage order
func (s *projectServiceImpl) ListProjects(ctx context.Context) ([]ProjectSnapshot, error) {
	projects, err := s.projects.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	snapshots := make([]ProjectSnapshot, 0, len(projects))
	for _, p := range projects {
		snapshots = append(snapshots, *newProjectSnapshot(p))
	}
	return snapshots, nil
}

// GetProject retrieves a project by its ID
func (s *projectServiceImpl) GetProject(ctx context.Context, id uuid.UUID) (*ProjectSnapshot, error) {
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return newProjectSnapshot(project), nil
}

// RenameProject replaces the name and description of a project
func (s *projectServiceImpl) RenameProject(ctx context.Context, req RenameProjectRequest) (*ProjectSnapshot, error) {
	project, err := s.projects.GetByID(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}
	if err := project.Rename(req.Name, req.Description); err != nil {
		return nil, err
	}

	if err := s.projects.Update(ctx, project); err != nil {
		return nil, err
	}
	return newProjectSnapshot(project), nil
}

// AttachMember adds an existing member to an existing project
func (s *projectServiceImpl) AttachMember(ctx context.Context, projectID, memberID uuid.UUID) error {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if _, err := s.members.GetByID(ctx, memberID); err != nil {
		return err
	}
	if err := project.AddMember(memberID); err != nil {
		return err
	}

	logging.Debugf("member %s attached to project %s\n", memberID, projectID)
	return s.projects.Update(ctx, project)
}

// DetachMember removes a member from a project. Detaching a member that was
// never attached succeeds.
func (s *projectServiceImpl) DetachMember(ctx context.Context, projectID, memberID uuid.UUID) error {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	project.RemoveMember(memberID)
	return s.projects.Update(ctx, project)
}
