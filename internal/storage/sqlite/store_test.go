package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "task-planner/internal/errors"
	"task-planner/internal/storage"
)

func setupTestDB(t *testing.T) *Store {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "taskplanner.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func strPtr(s string) *string { return &s }

func sampleDocument() *storage.Document {
	return &storage.Document{
		Projects: []storage.ProjectRecord{
			{
				ID:          "0f8fad5b-d9cb-469f-a165-70867728950e",
				Name:        "CRM",
				Description: "customer portal",
				CreatedAt:   "2025-06-01T10:00:00Z",
				MemberIDs:   []string{"b1", "a2"},
			},
			{
				ID:        "1f8fad5b-d9cb-469f-a165-70867728950e",
				Name:      "Billing",
				CreatedAt: "2025-06-02T10:00:00Z",
				MemberIDs: []string{},
			},
		},
		Tasks: []storage.TaskRecord{
			{
				ID:               "t2",
				ProjectID:        "0f8fad5b-d9cb-469f-a165-70867728950e",
				Title:            "Reports",
				DueDate:          "2025-06-05",
				Status:           2,
				AssignedMemberID: strPtr("b1"),
				CreatedAt:        "2025-06-01T10:05:00Z",
				CompletedAt:      strPtr("2025-06-03T08:00:00.5Z"),
			},
			{
				ID:        "t1",
				ProjectID: "1f8fad5b-d9cb-469f-a165-70867728950e",
				Title:     "Invoices",
				DueDate:   "2025-06-09",
				CreatedAt: "2025-06-02T10:05:00Z",
			},
		},
		Members: []storage.MemberRecord{
			{ID: "b1", FullName: "Ivan Ivanov", Email: "Ivan@Example.com", JoinedAt: "2025-06-01T09:00:00Z"},
			{ID: "a2", FullName: "Anna Petrova", Email: "anna@example.com", JoinedAt: "2025-06-01T09:30:00Z"},
		},
	}
}

func TestNew_EmptyDatabaseLoadsEmptyDocument(t *testing.T) {
	store := setupTestDB(t)

	doc, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, storage.NewDocument(), doc)
}

func TestStore_ReplaceThenLoadPreservesOrderAndNulls(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, store.Replace(ctx, sampleDocument()))

	doc, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleDocument(), doc)
	assert.Nil(t, doc.Tasks[1].AssignedMemberID)
	assert.Nil(t, doc.Tasks[1].CompletedAt)
}

func TestStore_ReplaceOverwritesPreviousContent(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()
	require.NoError(t, store.Replace(ctx, sampleDocument()))

	smaller := sampleDocument()
	smaller.Projects = smaller.Projects[:1]
	smaller.Tasks = nil
	require.NoError(t, store.Replace(ctx, smaller))

	doc, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, doc.Projects, 1)
	assert.Empty(t, doc.Tasks)
	assert.Len(t, doc.Members, 2)
}

func TestStore_UpdateRollsBackOnError(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()
	require.NoError(t, store.Replace(ctx, sampleDocument()))

	boom := errors.New("boom")
	err := store.Update(ctx, func(doc *storage.Document) error {
		doc.Members = nil
		return boom
	})
	assert.ErrorIs(t, err, boom)

	doc, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, doc.Members, 2)
}

func TestStore_UpdateAppendsRecord(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	err := store.Update(ctx, func(doc *storage.Document) error {
		doc.Members = append(doc.Members, storage.MemberRecord{
			ID: "c3", FullName: "Olga Smirnova", Email: "olga@example.com", JoinedAt: "2025-06-04T09:00:00Z",
		})
		return nil
	})
	require.NoError(t, err)

	doc, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, doc.Members, 1)
	assert.Equal(t, "Olga Smirnova", doc.Members[0].FullName)
}

func TestStore_DuplicateIDIsStorageError(t *testing.T) {
	store := setupTestDB(t)
	doc := sampleDocument()
	doc.Members = append(doc.Members, doc.Members[0])

	err := store.Replace(context.Background(), doc)
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeStorage))
}

func TestStore_CancelledContext(t *testing.T) {
	store := setupTestDB(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Load(ctx)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeTimeout))

	err = store.Replace(ctx, sampleDocument())
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeTimeout))
}

func TestStore_InMemory(t *testing.T) {
	store, err := New(MemoryPath)
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Replace(ctx, sampleDocument()))
	doc, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, doc.Projects, 2)
}

func TestStore_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskplanner.db")
	ctx := context.Background()

	first, err := New(path)
	require.NoError(t, err)
	require.NoError(t, first.Replace(ctx, sampleDocument()))
	require.NoError(t, first.Close())

	second, err := New(path)
	require.NoError(t, err)
	defer second.Close()

	doc, err := second.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleDocument(), doc)
}
