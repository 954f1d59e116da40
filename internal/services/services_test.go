package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"task-planner/internal/domain"
	"task-planner/internal/repository"
	"task-planner/internal/storage"
	"task-planner/internal/storage/jsonfile"
)

// fixedNow is a Sunday afternoon; dates in tests are relative to it.
var fixedNow = time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC)

type testEnv struct {
	store    storage.DocumentStore
	projects ProjectService
	tasks    TaskService
	members  TeamMemberService
	now      time.Time
}

func setupServices(t *testing.T) *testEnv {
	t.Helper()
	store, err := jsonfile.New(filepath.Join(t.TempDir(), "taskplanner.json"), 0o755)
	require.NoError(t, err)

	env := &testEnv{store: store, now: fixedNow}
	clock := domain.Clock(func() time.Time { return env.now })

	projectRepo := repository.NewProjectRepository(store)
	taskRepo := repository.NewTaskRepository(store)
	memberRepo := repository.NewTeamMemberRepository(store)

	env.projects = NewProjectService(projectRepo, memberRepo, clock)
	env.tasks = NewTaskService(taskRepo, projectRepo, memberRepo, clock)
	env.members = NewTeamMemberService(memberRepo, clock)
	return env
}

func (e *testEnv) register(t *testing.T, name, email string) *MemberSnapshot {
	t.Helper()
	m, err := e.members.RegisterMember(context.Background(), RegisterMemberRequest{FullName: name, Email: email})
	require.NoError(t, err)
	return m
}

func (e *testEnv) project(t *testing.T, name string) *ProjectSnapshot {
	t.Helper()
	p, err := e.projects.CreateProject(context.Background(), CreateProjectRequest{Name: name})
	require.NoError(t, err)
	return p
}

func (e *testEnv) task(t *testing.T, project ProjectSnapshot, title string, dueInDays int) *TaskSnapshot {
	t.Helper()
	task, err := e.tasks.CreateTask(context.Background(), CreateTaskRequest{
		ProjectID: project.ID,
		Title:     title,
		DueDate:   e.now.AddDate(0, 0, dueInDays),
	})
	require.NoError(t, err)
	return task
}
