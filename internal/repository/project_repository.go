package repository

import (
	"context"

	"github.com/google/uuid"

	"task-planner/internal/domain"
	apperrors "task-planner/internal/errors"
	"task-planner/internal/storage"
)

type documentProjectRepository struct {
	store  storage.DocumentStore
	mapper *domain.ProjectMapper
}

// NewProjectRepository returns a ProjectRepository over store
func NewProjectRepository(store storage.DocumentStore) ProjectRepository {
	return &documentProjectRepository{store: store, mapper: domain.NewProjectMapper()}
}

func (r *documentProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	doc, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	key := id.String()
	for _, rec := range doc.Projects {
		if rec.ID == key {
			return r.mapper.FromRecord(rec)
		}
	}
	return nil, apperrors.NewNotFoundError("project", key)
}

func (r *documentProjectRepository) GetAll(ctx context.Context) ([]*domain.Project, error) {
	doc, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return r.mapper.FromRecordSlice(doc.Projects)
}

func (r *documentProjectRepository) Add(ctx context.Context, project *domain.Project) error {
	return r.save(ctx, project)
}

func (r *documentProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	return r.save(ctx, project)
}

func (r *documentProjectRepository) save(ctx context.Context, project *domain.Project) error {
	rec := r.mapper.ToRecord(project)
	return r.store.Update(ctx, func(doc *storage.Document) error {
		doc.Projects = upsert(doc.Projects, rec, rec.ID, func(p storage.ProjectRecord) string { return p.ID })
		return nil
	})
}
