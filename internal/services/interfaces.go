package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"task-planner/internal/domain"
)

// CreateProjectRequest carries the input of ProjectService.CreateProject
type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// RenameProjectRequest carries the input of ProjectService.RenameProject
type RenameProjectRequest struct {
	ProjectID   uuid.UUID `json:"project_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

// CreateTaskRequest carries the input of TaskService.CreateTask
type CreateTaskRequest struct {
	ProjectID        uuid.UUID  `json:"project_id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	DueDate          time.Time  `json:"due_date"`
	AssignedMemberID *uuid.UUID `json:"assigned_member_id,omitempty"`
}

// UpdateTaskStatusRequest carries the input of TaskService.UpdateStatus
type UpdateTaskStatusRequest struct {
	TaskID uuid.UUID         `json:"task_id"`
	Status domain.TaskStatus `json:"status"`
}

// UpdateTaskDetailsRequest carries the input of TaskService.UpdateDetails
type UpdateTaskDetailsRequest struct {
	TaskID      uuid.UUID `json:"task_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date"`
}

// AssignTaskRequest carries the input of TaskService.AssignTask
type AssignTaskRequest struct {
	TaskID   uuid.UUID `json:"task_id"`
	MemberID uuid.UUID `json:"member_id"`
}

// RegisterMemberRequest carries the input of TeamMemberService.RegisterMember
type RegisterMemberRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// ProjectSnapshot is a read-only view of a project
type ProjectSnapshot struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	CreatedAt   time.Time   `json:"created_at"`
	MemberIDs   []uuid.UUID `json:"member_ids"`
}

// TaskSnapshot is a read-only view of a task
type TaskSnapshot struct {
	ID               uuid.UUID         `json:"id"`
	ProjectID        uuid.UUID         `json:"project_id"`
	Title            string            `json:"title"`
	Description      string            `json:"description"`
	DueDate          time.Time         `json:"due_date"`
	Status           domain.TaskStatus `json:"status"`
	AssignedMemberID *uuid.UUID        `json:"assigned_member_id,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	CompletedAt      *time.Time        `json:"completed_at,omitempty"`
}

// UpcomingTaskSummary is one row of the upcoming-work listing
type UpcomingTaskSummary struct {
	ID             uuid.UUID         `json:"id"`
	Title          string            `json:"title"`
	DueDate        time.Time         `json:"due_date"`
	Status         domain.TaskStatus `json:"status"`
	ProjectName    string            `json:"project_name"`
	AssignedToName *string           `json:"assigned_to_name,omitempty"`
}

// MemberSnapshot is a read-only view of a team member
type MemberSnapshot struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
	JoinedAt time.Time `json:"joined_at"`
}

// ProjectService handles project lifecycle and membership
type ProjectService interface {
	CreateProject(ctx context.Context, req CreateProjectRequest) (*ProjectSnapshot, error)
	ListProjects(ctx context.Context) ([]ProjectSnapshot, error)
	GetProject(ctx context.Context, id uuid.UUID) (*ProjectSnapshot, error)
	RenameProject(ctx context.Context, req RenameProjectRequest) (*ProjectSnapshot, error)

	// Membership
	AttachMember(ctx context.Context, projectID, memberID uuid.UUID) error
	DetachMember(ctx context.Context, projectID, memberID uuid.UUID) error
}

// TaskService handles task lifecycle, assignment and the upcoming-work view
type TaskService interface {
	CreateTask(ctx context.Context, req CreateTaskRequest) (*TaskSnapshot, error)
	GetTask(ctx context.Context, id uuid.UUID) (*TaskSnapshot, error)
	UpdateStatus(ctx context.Context, req UpdateTaskStatusRequest) (*TaskSnapshot, error)
	UpdateDetails(ctx context.Context, req UpdateTaskDetailsRequest) (*TaskSnapshot, error)

	// Assignment
	AssignTask(ctx context.Context, req AssignTaskRequest) (*TaskSnapshot, error)
	UnassignTask(ctx context.Context, taskID uuid.UUID) (*TaskSnapshot, error)

	// Listing
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]TaskSnapshot, error)
	ListUpcoming(ctx context.Context, until time.Time) ([]UpcomingTaskSummary, error)
}

// TeamMemberService handles member registration and profile changes
type TeamMemberService interface {
	RegisterMember(ctx context.Context, req RegisterMemberRequest) (*MemberSnapshot, error)
	ListMembers(ctx context.Context) ([]MemberSnapshot, error)
	GetMember(ctx context.Context, id uuid.UUID) (*MemberSnapshot, error)
	RenameMember(ctx context.Context, id uuid.UUID, fullName string) (*MemberSnapshot, error)
	ChangeEmail(ctx context.Context, id uuid.UUID, email string) (*MemberSnapshot, error)
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	ProjectService    ProjectService
	TaskService       TaskService
	TeamMemberService TeamMemberService
}
