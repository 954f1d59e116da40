package domain

import (
	"fmt"

	"github.com/google/uuid"

	apperrors "task-planner/internal/errors"
	"task-planner/internal/storage"
)

// ProjectMapper handles conversion between domain projects and storage records.
type ProjectMapper struct{}

// NewProjectMapper creates a new ProjectMapper instance.
func NewProjectMapper() *ProjectMapper {
	return &ProjectMapper{}
}

// ToRecord converts a project to its storage record.
func (m *ProjectMapper) ToRecord(p *Project) storage.ProjectRecord {
	memberIDs := p.MemberIDs()
	ids := make([]string, len(memberIDs))
	for i, id := range memberIDs {
		ids[i] = id.String()
	}
	return storage.ProjectRecord{
		ID:          p.ID().String(),
		Name:        p.Name(),
		Description: p.Description(),
		CreatedAt:   storage.FormatTime(p.CreatedAt()),
		MemberIDs:   ids,
	}
}

// FromRecord rebuilds a project from its storage record.
func (m *ProjectMapper) FromRecord(r storage.ProjectRecord) (*Project, error) {
	id, err := parseID(r.ID)
	if err != nil {
		return nil, corrupt("project", r.ID, err)
	}
	createdAt, err := storage.ParseTime(r.CreatedAt)
	if err != nil {
		return nil, corrupt("project", r.ID, err)
	}
	memberIDs := make([]uuid.UUID, 0, len(r.MemberIDs))
	for _, raw := range r.MemberIDs {
		memberID, err := parseID(raw)
		if err != nil {
			return nil, corrupt("project", r.ID, err)
		}
		memberIDs = append(memberIDs, memberID)
	}

	p, err := RestoreProject(id, r.Name, r.Description, memberIDs, createdAt)
	if err != nil {
		return nil, corrupt("project", r.ID, err)
	}
	return p, nil
}

// FromRecordSlice converts records in order, failing on the first bad one.
func (m *ProjectMapper) FromRecordSlice(records []storage.ProjectRecord) ([]*Project, error) {
	projects := make([]*Project, 0, len(records))
	for _, r := range records {
		p, err := m.FromRecord(r)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, nil
}

// TaskMapper handles conversion between domain tasks and storage records.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToRecord converts a task to its storage record.
func (m *TaskMapper) ToRecord(t *TaskItem) storage.TaskRecord {
	var assigned *string
	if id := t.AssignedMemberID(); id != nil {
		s := id.String()
		assigned = &s
	}
	return storage.TaskRecord{
		ID:               t.ID().String(),
		ProjectID:        t.ProjectID().String(),
		Title:            t.Title(),
		Description:      t.Description(),
		DueDate:          storage.FormatDate(t.DueDate()),
		Status:           int(t.Status()),
		AssignedMemberID: assigned,
		CreatedAt:        storage.FormatTime(t.CreatedAt()),
		CompletedAt:      storage.FormatTimePtr(t.CompletedAt()),
	}
}

// FromRecord rebuilds a task from its storage record.
func (m *TaskMapper) FromRecord(r storage.TaskRecord) (*TaskItem, error) {
	state := TaskState{
		Title:       r.Title,
		Description: r.Description,
		Status:      TaskStatus(r.Status),
	}

	var err error
	if state.ID, err = parseID(r.ID); err != nil {
		return nil, corrupt("task", r.ID, err)
	}
	if state.ProjectID, err = parseID(r.ProjectID); err != nil {
		return nil, corrupt("task", r.ID, err)
	}
	if state.DueDate, err = storage.ParseDate(r.DueDate); err != nil {
		return nil, corrupt("task", r.ID, err)
	}
	if state.CreatedAt, err = storage.ParseTime(r.CreatedAt); err != nil {
		return nil, corrupt("task", r.ID, err)
	}
	if state.CompletedAt, err = storage.ParseTimePtr(r.CompletedAt); err != nil {
		return nil, corrupt("task", r.ID, err)
	}
	if r.AssignedMemberID != nil {
		memberID, err := parseID(*r.AssignedMemberID)
		if err != nil {
			return nil, corrupt("task", r.ID, err)
		}
		state.AssignedMemberID = &memberID
	}

	t, err := RestoreTask(state)
	if err != nil {
		return nil, corrupt("task", r.ID, err)
	}
	return t, nil
}

// FromRecordSlice converts records in order, failing on the first bad one.
func (m *TaskMapper) FromRecordSlice(records []storage.TaskRecord) ([]*TaskItem, error) {
	tasks := make([]*TaskItem, 0, len(records))
	for _, r := range records {
		t, err := m.FromRecord(r)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// MemberMapper handles conversion between team members and storage records.
type MemberMapper struct{}

// NewMemberMapper creates a new MemberMapper instance.
func NewMemberMapper() *MemberMapper {
	return &MemberMapper{}
}

// ToRecord converts a member to its storage record.
func (m *MemberMapper) ToRecord(member *TeamMember) storage.MemberRecord {
	return storage.MemberRecord{
		ID:       member.ID().String(),
		FullName: member.FullName(),
		Email:    member.Email().String(),
		JoinedAt: storage.FormatTime(member.JoinedAt()),
	}
}

// FromRecord rebuilds a member from its storage record.
func (m *MemberMapper) FromRecord(r storage.MemberRecord) (*TeamMember, error) {
	id, err := parseID(r.ID)
	if err != nil {
		return nil, corrupt("member", r.ID, err)
	}
	email, err := NewEmail(r.Email)
	if err != nil {
		return nil, corrupt("member", r.ID, err)
	}
	joinedAt, err := storage.ParseTime(r.JoinedAt)
	if err != nil {
		return nil, corrupt("member", r.ID, err)
	}

	member, err := RestoreTeamMember(id, r.FullName, email, joinedAt)
	if err != nil {
		return nil, corrupt("member", r.ID, err)
	}
	return member, nil
}

// FromRecordSlice converts records in order, failing on the first bad one.
func (m *MemberMapper) FromRecordSlice(records []storage.MemberRecord) ([]*TeamMember, error) {
	members := make([]*TeamMember, 0, len(records))
	for _, r := range records {
		member, err := m.FromRecord(r)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	return members, nil
}

// parseID treats a blank identifier as unset.
func parseID(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, nil
	}
	return uuid.Parse(raw)
}

func corrupt(kind, id string, cause error) error {
	return apperrors.NewStorageError(fmt.Sprintf("decode %s record '%s'", kind, id), cause)
}
