package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"task-planner/internal/validation"
)

// TaskItem is a unit of work inside a project.
//
// Once a task is Archived every write fails except setting Archived again.
// Moving to Completed stamps completedAt; leaving Completed keeps the stamp.
type TaskItem struct {
	id               uuid.UUID
	projectID        uuid.UUID
	title            string
	description      string
	dueDate          time.Time
	status           TaskStatus
	assignedMemberID *uuid.UUID
	createdAt        time.Time
	completedAt      *time.Time
}

// TaskState carries the persisted fields of a task for RestoreTask.
type TaskState struct {
	ID               uuid.UUID
	ProjectID        uuid.UUID
	Title            string
	Description      string
	DueDate          time.Time
	Status           TaskStatus
	AssignedMemberID *uuid.UUID
	CreatedAt        time.Time
	CompletedAt      *time.Time
}

// NewTask creates a Planned task whose creation time is now.
func NewTask(projectID uuid.UUID, title, description string, dueDate time.Time, now time.Time) (*TaskItem, error) {
	return newTask(TaskState{
		ID:          uuid.New(),
		ProjectID:   projectID,
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		Status:      StatusPlanned,
		CreatedAt:   now,
	})
}

// RestoreTask rebuilds a task from persisted state. The due date is checked
// against the persisted creation date, not the current time.
func RestoreTask(state TaskState) (*TaskItem, error) {
	if state.ID == uuid.Nil {
		state.ID = uuid.New()
	}
	return newTask(state)
}

func newTask(s TaskState) (*TaskItem, error) {
	if err := validation.ValidateID("project_id", "task must belong to a project", s.ProjectID); err != nil {
		return nil, invalid(err)
	}
	title, err := validation.ValidateTitle(s.Title)
	if err != nil {
		return nil, invalid(err)
	}
	dueDate, err := validation.ValidateDueDate(s.DueDate, s.CreatedAt)
	if err != nil {
		return nil, invalid(err)
	}
	if !s.Status.IsValid() {
		return nil, violation("status", fmt.Sprintf("unknown task status code %d", int(s.Status)))
	}

	t := &TaskItem{
		id:          s.ID,
		projectID:   s.ProjectID,
		title:       title,
		description: strings.TrimSpace(s.Description),
		dueDate:     dueDate,
		status:      s.Status,
		createdAt:   s.CreatedAt,
	}
	if s.AssignedMemberID != nil && *s.AssignedMemberID != uuid.Nil {
		memberID := *s.AssignedMemberID
		t.assignedMemberID = &memberID
	}
	if s.CompletedAt != nil {
		completedAt := *s.CompletedAt
		t.completedAt = &completedAt
	}
	return t, nil
}

func (t *TaskItem) ID() uuid.UUID         { return t.id }
func (t *TaskItem) ProjectID() uuid.UUID  { return t.projectID }
func (t *TaskItem) Title() string         { return t.title }
func (t *TaskItem) Description() string   { return t.description }
func (t *TaskItem) DueDate() time.Time    { return t.dueDate }
func (t *TaskItem) Status() TaskStatus    { return t.status }
func (t *TaskItem) CreatedAt() time.Time  { return t.createdAt }
func (t *TaskItem) IsArchived() bool      { return t.status == StatusArchived }
func (t *TaskItem) IsOpen() bool          { return t.status.IsOpen() }

// AssignedMemberID returns a copy of the assignee id, or nil.
func (t *TaskItem) AssignedMemberID() *uuid.UUID {
	if t.assignedMemberID == nil {
		return nil
	}
	id := *t.assignedMemberID
	return &id
}

// CompletedAt returns a copy of the completion time, or nil.
func (t *TaskItem) CompletedAt() *time.Time {
	if t.completedAt == nil {
		return nil
	}
	at := *t.completedAt
	return &at
}

// UpdateDetails replaces title, description and due date.
func (t *TaskItem) UpdateDetails(title, description string, dueDate time.Time) error {
	if err := t.ensureNotArchived(); err != nil {
		return err
	}
	validTitle, err := validation.ValidateTitle(title)
	if err != nil {
		return invalid(err)
	}
	validDue, err := validation.ValidateDueDate(dueDate, t.createdAt)
	if err != nil {
		return invalid(err)
	}

	t.title = validTitle
	t.description = strings.TrimSpace(description)
	t.dueDate = validDue
	return nil
}

// ChangeStatus moves the task to status. Any transition is allowed except
// leaving Archived.
func (t *TaskItem) ChangeStatus(status TaskStatus, now time.Time) error {
	if !status.IsValid() {
		return violation("status", fmt.Sprintf("unknown task status code %d", int(status)))
	}
	if t.status == StatusArchived && status != StatusArchived {
		return violation("status", "archived tasks cannot change their status")
	}

	if status == StatusCompleted {
		completedAt := now
		t.completedAt = &completedAt
	}
	t.status = status
	return nil
}

// AssignTo sets the assignee. Membership is checked by the caller.
func (t *TaskItem) AssignTo(memberID uuid.UUID) error {
	if err := t.ensureNotArchived(); err != nil {
		return err
	}
	if err := validation.ValidateID("member_id", "member identifier must be provided", memberID); err != nil {
		return invalid(err)
	}
	t.assignedMemberID = &memberID
	return nil
}

// RemoveAssignment clears the assignee.
func (t *TaskItem) RemoveAssignment() error {
	if err := t.ensureNotArchived(); err != nil {
		return err
	}
	t.assignedMemberID = nil
	return nil
}

func (t *TaskItem) ensureNotArchived() error {
	if t.status == StatusArchived {
		return violation("status", "archived tasks cannot be updated")
	}
	return nil
}
