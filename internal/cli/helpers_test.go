package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"task-planner/internal/api"
	"task-planner/internal/config"
	apperrors "task-planner/internal/errors"
	"task-planner/internal/services"
	"task-planner/internal/storage"
	"task-planner/internal/storage/sqlite"
)

var cliNow = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func setupTestPlanner(t *testing.T) *api.Planner {
	t.Helper()
	store, err := sqlite.New(sqlite.MemoryPath)
	require.NoError(t, err)
	planner := api.New(store, api.WithClock(func() time.Time { return cliNow }))
	t.Cleanup(func() { planner.Close() })
	return planner
}

func testConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.Storage.Dir = "/nonexistent"
	cfg.Application.Environment = config.Testing
	return cfg
}

// runMenu drives one interactive session with a scripted input
func runMenu(t *testing.T, planner *api.Planner, script string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := NewApp(planner, testConfig(), strings.NewReader(script), &out)
	err := app.Run(context.Background())
	return out.String(), err
}

// runMenuWith drives a session with a custom config, reader and context
func runMenuWith(t *testing.T, ctx context.Context, planner *api.Planner, cfg *config.Config, in io.Reader) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := NewApp(planner, cfg, in, &out).Run(ctx)
	return out.String(), err
}

// slowReader hands out one line per Read after waiting delay, like a user
// typing answers
type slowReader struct {
	lines []string
	delay time.Duration
}

func newSlowReader(delay time.Duration, lines ...string) *slowReader {
	return &slowReader{lines: lines, delay: delay}
}

func (r *slowReader) Read(p []byte) (int, error) {
	if len(r.lines) == 0 {
		return 0, io.EOF
	}
	time.Sleep(r.delay)
	n := copy(p, r.lines[0]+"\n")
	r.lines = r.lines[1:]
	return n, nil
}

// seed holds entities created directly through the services
type seed struct {
	member  *services.MemberSnapshot
	project *services.ProjectSnapshot
}

func seedPlanner(t *testing.T, planner *api.Planner, attach bool) seed {
	t.Helper()
	ctx := context.Background()

	member, err := planner.Members().RegisterMember(ctx, services.RegisterMemberRequest{
		FullName: "Ada Lovelace", Email: "ada@example.com",
	})
	require.NoError(t, err)
	project, err := planner.Projects().CreateProject(ctx, services.CreateProjectRequest{
		Name: "Apollo", Description: "Moon landing",
	})
	require.NoError(t, err)
	if attach {
		require.NoError(t, planner.Projects().AttachMember(ctx, project.ID, member.ID))
	}
	return seed{member: member, project: project}
}

func seedTask(t *testing.T, planner *api.Planner, projectID uuid.UUID, title string, dueInDays int) *services.TaskSnapshot {
	t.Helper()
	task, err := planner.Tasks().CreateTask(context.Background(), services.CreateTaskRequest{
		ProjectID: projectID, Title: title, DueDate: cliNow.AddDate(0, 0, dueInDays),
	})
	require.NoError(t, err)
	return task
}

// failingStore fails every call with a storage error
type failingStore struct{}

func (failingStore) Load(ctx context.Context) (*storage.Document, error) {
	return nil, apperrors.NewStorageError("load document", nil)
}

func (failingStore) Replace(ctx context.Context, doc *storage.Document) error {
	return apperrors.NewStorageError("save document", nil)
}

func (failingStore) Update(ctx context.Context, fn func(doc *storage.Document) error) error {
	return apperrors.NewStorageError("update document", nil)
}

func (failingStore) Close() error { return nil }

// stallingStore blocks every call until its context is done
type stallingStore struct{}

func (stallingStore) Load(ctx context.Context) (*storage.Document, error) {
	<-ctx.Done()
	return nil, apperrors.FromContext("load document", ctx.Err())
}

func (stallingStore) Replace(ctx context.Context, doc *storage.Document) error {
	<-ctx.Done()
	return apperrors.FromContext("save document", ctx.Err())
}

func (stallingStore) Update(ctx context.Context, fn func(doc *storage.Document) error) error {
	<-ctx.Done()
	return apperrors.FromContext("update document", ctx.Err())
}

func (stallingStore) Close() error { return nil }
