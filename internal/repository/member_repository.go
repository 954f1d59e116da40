package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"task-planner/internal/domain"
	apperrors "task-planner/internal/errors"
	"task-planner/internal/storage"
)

type documentMemberRepository struct {
	store  storage.DocumentStore
	mapper *domain.MemberMapper
}

// NewTeamMemberRepository returns a TeamMemberRepository over store
func NewTeamMemberRepository(store storage.DocumentStore) TeamMemberRepository {
	return &documentMemberRepository{store: store, mapper: domain.NewMemberMapper()}
}

func (r *documentMemberRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.TeamMember, error) {
	doc, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	key := id.String()
	for _, rec := range doc.Members {
		if rec.ID == key {
			return r.mapper.FromRecord(rec)
		}
	}
	return nil, apperrors.NewNotFoundError("member", key)
}

func (r *documentMemberRepository) GetAll(ctx context.Context) ([]*domain.TeamMember, error) {
	doc, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return r.mapper.FromRecordSlice(doc.Members)
}

func (r *documentMemberRepository) GetByEmail(ctx context.Context, email domain.Email) (*domain.TeamMember, error) {
	doc, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, rec := range doc.Members {
		if strings.EqualFold(strings.TrimSpace(rec.Email), email.String()) {
			return r.mapper.FromRecord(rec)
		}
	}
	return nil, apperrors.NewNotFoundError("member", email.String())
}

func (r *documentMemberRepository) Add(ctx context.Context, member *domain.TeamMember) error {
	return r.save(ctx, member)
}

func (r *documentMemberRepository) Update(ctx context.Context, member *domain.TeamMember) error {
	return r.save(ctx, member)
}

func (r *documentMemberRepository) save(ctx context.Context, member *domain.TeamMember) error {
	rec := r.mapper.ToRecord(member)
	return r.store.Update(ctx, func(doc *storage.Document) error {
		doc.Members = upsert(doc.Members, rec, rec.ID, func(m storage.MemberRecord) string { return m.ID })
		return nil
	})
}
