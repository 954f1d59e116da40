package repository

import (
	"context"

	"github.com/google/uuid"

	"task-planner/internal/domain"
	apperrors "task-planner/internal/errors"
	"task-planner/internal/storage"
)

type documentTaskRepository struct {
	store  storage.DocumentStore
	mapper *domain.TaskMapper
}

// NewTaskRepository returns a TaskRepository over store
func NewTaskRepository(store storage.DocumentStore) TaskRepository {
	return &documentTaskRepository{store: store, mapper: domain.NewTaskMapper()}
}

func (r *documentTaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.TaskItem, error) {
	doc, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	key := id.String()
	for _, rec := range doc.Tasks {
		if rec.ID == key {
			return r.mapper.FromRecord(rec)
		}
	}
	return nil, apperrors.NewNotFoundError("task", key)
}

func (r *documentTaskRepository) GetAll(ctx context.Context) ([]*domain.TaskItem, error) {
	doc, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return r.mapper.FromRecordSlice(doc.Tasks)
}

func (r *documentTaskRepository) GetByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.TaskItem, error) {
	doc, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	key := projectID.String()
	matched := make([]storage.TaskRecord, 0)
	for _, rec := range doc.Tasks {
		if rec.ProjectID == key {
			matched = append(matched, rec)
		}
	}
	return r.mapper.FromRecordSlice(matched)
}

func (r *documentTaskRepository) Add(ctx context.Context, task *domain.TaskItem) error {
	return r.save(ctx, task)
}

func (r *documentTaskRepository) Update(ctx context.Context, task *domain.TaskItem) error {
	return r.save(ctx, task)
}

func (r *documentTaskRepository) save(ctx context.Context, task *domain.TaskItem) error {
	rec := r.mapper.ToRecord(task)
	return r.store.Update(ctx, func(doc *storage.Document) error {
		doc.Tasks = upsert(doc.Tasks, rec, rec.ID, func(t storage.TaskRecord) string { return t.ID })
		return nil
	})
}
