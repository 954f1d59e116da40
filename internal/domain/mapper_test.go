package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "task-planner/internal/errors"
	"task-planner/internal/storage"
)

var mapperNow = time.Date(2025, 6, 1, 14, 30, 15, 123456789, time.UTC)

func TestProjectMapper_RoundTrip(t *testing.T) {
	mapper := NewProjectMapper()
	project, err := NewProject("CRM", "customer portal", mapperNow)
	require.NoError(t, err)
	memberID := uuid.New()
	require.NoError(t, project.AddMember(memberID))

	record := mapper.ToRecord(project)
	assert.Equal(t, project.ID().String(), record.ID)
	assert.Equal(t, "2025-06-01T14:30:15.123456789Z", record.CreatedAt)
	assert.Equal(t, []string{memberID.String()}, record.MemberIDs)

	restored, err := mapper.FromRecord(record)
	require.NoError(t, err)
	assert.Equal(t, project.ID(), restored.ID())
	assert.Equal(t, project.Name(), restored.Name())
	assert.Equal(t, project.Description(), restored.Description())
	assert.True(t, project.CreatedAt().Equal(restored.CreatedAt()))
	assert.True(t, restored.HasMember(memberID))
}

func TestProjectMapper_EmptyIDGetsFreshIdentifier(t *testing.T) {
	record := storage.ProjectRecord{Name: "CRM", CreatedAt: "2025-06-01T10:00:00Z"}

	project, err := NewProjectMapper().FromRecord(record)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, project.ID())
}

func TestTaskMapper_RoundTrip(t *testing.T) {
	mapper := NewTaskMapper()
	task, err := NewTask(uuid.New(), "Reports", "monthly", mapperNow.AddDate(0, 0, 4), mapperNow)
	require.NoError(t, err)
	memberID := uuid.New()
	require.NoError(t, task.AssignTo(memberID))
	require.NoError(t, task.ChangeStatus(StatusCompleted, mapperNow.Add(time.Hour)))

	record := mapper.ToRecord(task)
	assert.Equal(t, "2025-06-05", record.DueDate)
	assert.Equal(t, 2, record.Status)
	require.NotNil(t, record.AssignedMemberID)
	assert.Equal(t, memberID.String(), *record.AssignedMemberID)
	require.NotNil(t, record.CompletedAt)

	restored, err := mapper.FromRecord(record)
	require.NoError(t, err)
	assert.Equal(t, task.ID(), restored.ID())
	assert.Equal(t, task.ProjectID(), restored.ProjectID())
	assert.Equal(t, StatusCompleted, restored.Status())
	assert.True(t, task.DueDate().Equal(restored.DueDate()))
	assert.True(t, task.CompletedAt().Equal(*restored.CompletedAt()))
	assert.Equal(t, memberID, *restored.AssignedMemberID())
}

func TestTaskMapper_OptionalFieldsOmitted(t *testing.T) {
	task, err := NewTask(uuid.New(), "Reports", "", mapperNow, mapperNow)
	require.NoError(t, err)

	record := NewTaskMapper().ToRecord(task)
	assert.Nil(t, record.AssignedMemberID)
	assert.Nil(t, record.CompletedAt)
}

func TestTaskMapper_FromRecordErrors(t *testing.T) {
	valid := storage.TaskRecord{
		ID:        uuid.NewString(),
		ProjectID: uuid.NewString(),
		Title:     "Reports",
		DueDate:   "2025-06-05",
		CreatedAt: "2025-06-01T10:00:00Z",
	}

	tests := []struct {
		name   string
		mutate func(r *storage.TaskRecord)
	}{
		{"malformed id", func(r *storage.TaskRecord) { r.ID = "not-a-uuid" }},
		{"malformed due date", func(r *storage.TaskRecord) { r.DueDate = "05/06/2025" }},
		{"malformed created at", func(r *storage.TaskRecord) { r.CreatedAt = "yesterday" }},
		{"unknown status", func(r *storage.TaskRecord) { r.Status = 9 }},
		{"missing project", func(r *storage.TaskRecord) { r.ProjectID = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := valid
			tt.mutate(&record)

			_, err := NewTaskMapper().FromRecord(record)
			require.Error(t, err)
			assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeStorage))
		})
	}
}

func TestMemberMapper_RoundTrip(t *testing.T) {
	mapper := NewMemberMapper()
	email, err := NewEmail("ivan@example.com")
	require.NoError(t, err)
	member, err := NewTeamMember("Ivan Ivanov", email, mapperNow)
	require.NoError(t, err)

	restored, err := mapper.FromRecord(mapper.ToRecord(member))
	require.NoError(t, err)
	assert.Equal(t, member.ID(), restored.ID())
	assert.Equal(t, "Ivan Ivanov", restored.FullName())
	assert.True(t, email.Equal(restored.Email()))
	assert.True(t, member.JoinedAt().Equal(restored.JoinedAt()))
}

func TestMemberMapper_InvalidEmailIsStorageError(t *testing.T) {
	record := storage.MemberRecord{ID: uuid.NewString(), FullName: "Ivan Ivanov", Email: "nope", JoinedAt: "2025-06-01T10:00:00Z"}

	_, err := NewMemberMapper().FromRecord(record)
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeStorage))
}

func TestMapper_FromRecordSlicePreservesOrder(t *testing.T) {
	records := []storage.MemberRecord{
		{ID: uuid.NewString(), FullName: "Zed Zulu", Email: "z@example.com", JoinedAt: "2025-06-01T10:00:00Z"},
		{ID: uuid.NewString(), FullName: "Ann Alpha", Email: "a@example.com", JoinedAt: "2025-06-01T11:00:00Z"},
	}

	members, err := NewMemberMapper().FromRecordSlice(records)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "Zed Zulu", members[0].FullName())
	assert.Equal(t, "Ann Alpha", members[1].FullName())

	empty, err := NewMemberMapper().FromRecordSlice(nil)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
