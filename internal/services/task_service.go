package services

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"task-planner/internal/domain"
	apperrors "task-planner/internal/errors"
	"task-planner/internal/logging"
	"task-planner/internal/repository"
)

const (
	msgNotProjectMember   = "member must belong to the project before assignment"
	msgTaskProjectMissing = "task project was not found"
	unknownProjectName    = "Unknown project"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	tasks    repository.TaskRepository
	projects repository.ProjectRepository
	members  repository.TeamMemberRepository
	clock    domain.Clock
}

// NewTaskService creates a new TaskService instance
func NewTaskService(tasks repository.TaskRepository, projects repository.ProjectRepository, members repository.TeamMemberRepository, clock domain.Clock) TaskService {
	if clock == nil {
		clock = domain.SystemClock
	}
	return &taskServiceImpl{tasks: tasks, projects: projects, members: members, clock: clock}
}

// ensureMember checks that memberID resolves and is attached to project
func (s *taskServiceImpl) ensureMember(ctx context.Context, project *domain.Project, memberID uuid.UUID) error {
	if _, err := s.members.GetByID(ctx, memberID); err != nil {
		return err
	}
	if !project.HasMember(memberID) {
		return apperrors.NewConflictError(msgNotProjectMember).
			WithContext("project_id", project.ID().String()).
			WithContext("member_id", memberID.String())
	}
	return nil
}

// CreateTask creates a Planned task, optionally assigned to a project member
func (s *taskServiceImpl) CreateTask(ctx context.Context, req CreateTaskRequest) (*TaskSnapshot, error) {
	project, err := s.projects.GetByID(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}
	if req.AssignedMemberID != nil {
		if err := s.ensureMember(ctx, project, *req.AssignedMemberID); err != nil {
			return nil, err
		}
	}

	task, err := domain.NewTask(project.ID(), req.Title, req.Description, req.DueDate, s.clock())
	if err != nil {
		return nil, err
	}
	if req.AssignedMemberID != nil {
		if err := task.AssignTo(*req.AssignedMemberID); err != nil {
			return nil, err
		}
	}

	if err := s.tasks.Add(ctx, task); err != nil {
		return nil, err
	}
	logging.Debugf("task created: %s in project %s\n", task.ID(), project.ID())
	return newTaskSnapshot(task), nil
}

// GetTask retrieves a task by its ID
func (s *taskServiceImpl) GetTask(ctx context.Context, id uuid.UUID) (*TaskSnapshot, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return newTaskSnapshot(task), nil
}

// UpdateStatus moves a task to a new status
func (s *taskServiceImpl) UpdateStatus(ctx context.Context, req UpdateTaskStatusRequest) (*TaskSnapshot, error) {
	return s.mutate(ctx, req.TaskID, func(task *domain.TaskItem) error {
		return task.ChangeStatus(req.Status, s.clock())
	})
}

// UpdateDetails replaces title, description and due date of a task
func (s *taskServiceImpl) UpdateDetails(ctx context.Context, req UpdateTaskDetailsRequest) (*TaskSnapshot, error) {
	return s.mutate(ctx, req.TaskID, func(task *domain.TaskItem) error {
		return task.UpdateDetails(req.Title, req.Description, req.DueDate)
	})
}

// AssignTask assigns a task to a member of the task's project
func (s *taskServiceImpl) AssignTask(ctx context.Context, req AssignTaskRequest) (*TaskSnapshot, error) {
	task, err := s.tasks.GetByID(ctx, req.TaskID)
	if err != nil {
		return nil, err
	}
	if _, err := s.members.GetByID(ctx, req.MemberID); err != nil {
		return nil, err
	}
	project, err := s.projects.GetByID(ctx, task.ProjectID())
	if err != nil {
		if apperrors.IsErrorType(err, apperrors.ErrorTypeNotFound) {
			return nil, apperrors.WrapError(err, apperrors.ErrorTypeNotFound, msgTaskProjectMissing)
		}
		return nil, err
	}
	if err := s.ensureMember(ctx, project, req.MemberID); err != nil {
		return nil, err
	}
	if err := task.AssignTo(req.MemberID); err != nil {
		return nil, err
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return newTaskSnapshot(task), nil
}

// UnassignTask clears the assignee of a task
func (s *taskServiceImpl) UnassignTask(ctx context.Context, taskID uuid.UUID) (*TaskSnapshot, error) {
	return s.mutate(ctx, taskID, func(task *domain.TaskItem) error {
		return task.RemoveAssignment()
	})
}

// ListByProject returns the tasks of one project in storage order
func (s *taskServiceImpl) ListByProject(ctx context.Context, projectID uuid.UUID) ([]TaskSnapshot, error) {
	tasks, err := s.tasks.GetByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	snapshots := make([]TaskSnapshot, 0, len(tasks))
	for _, t := range tasks {
		snapshots = append(snapshots, *newTaskSnapshot(t))
	}
	return snapshots, nil
}

// ListUpcoming returns open tasks due on or before until, earliest first.
// Tasks due on the same date keep their storage order.
func (s *taskServiceImpl) ListUpcoming(ctx context.Context, until time.Time) ([]UpcomingTaskSummary, error) {
	tasks, err := s.tasks.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := s.projects.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	members, err := s.members.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	projectNames := make(map[uuid.UUID]string, len(projects))
	for _, p := range projects {
		projectNames[p.ID()] = p.Name()
	}
	memberNames := make(map[uuid.UUID]string, len(members))
	for _, m := range members {
		memberNames[m.ID()] = m.FullName()
	}

	upcoming := make([]*domain.TaskItem, 0)
	for _, t := range tasks {
		if t.IsOpen() && !t.DueDate().After(until) {
			upcoming = append(upcoming, t)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].DueDate().Before(upcoming[j].DueDate())
	})

	summaries := make([]UpcomingTaskSummary, 0, len(upcoming))
	for _, t := range upcoming {
		summary := UpcomingTaskSummary{
			ID:          t.ID(),
			Title:       t.Title(),
			DueDate:     t.DueDate(),
			Status:      t.Status(),
			ProjectName: unknownProjectName,
		}
		if name, ok := projectNames[t.ProjectID()]; ok {
			summary.ProjectName = name
		}
		if assignee := t.AssignedMemberID(); assignee != nil {
			if name, ok := memberNames[*assignee]; ok {
				summary.AssignedToName = &name
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// mutate loads a task, applies fn and persists the result
func (s *taskServiceImpl) mutate(ctx context.Context, taskID uuid.UUID, fn func(task *domain.TaskItem) error) (*TaskSnapshot, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := fn(task); err != nil {
		return nil, err
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return newTaskSnapshot(task), nil
}
