package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"task-planner/internal/domain"
	apperrors "task-planner/internal/errors"
	"task-planner/internal/logging"
	"task-planner/internal/repository"
)

// teamMemberServiceImpl implements the TeamMemberService interface
type teamMemberServiceImpl struct {
	members repository.TeamMemberRepository
	clock   domain.Clock
}

// NewTeamMemberService creates a new TeamMemberService instance
func NewTeamMemberService(members repository.TeamMemberRepository, clock domain.Clock) TeamMemberService {
	if clock == nil {
		clock = domain.SystemClock
	}
	return &teamMemberServiceImpl{members: members, clock: clock}
}

// ensureEmailAvailable fails when another member already uses email.
// self is excluded so a member can keep its own address.
func (s *teamMemberServiceImpl) ensureEmailAvailable(ctx context.Context, email domain.Email, self uuid.UUID) error {
	existing, err := s.members.GetByEmail(ctx, email)
	switch {
	case apperrors.IsErrorType(err, apperrors.ErrorTypeNotFound):
		return nil
	case err != nil:
		return err
	case existing.ID() == self:
		return nil
	default:
		return apperrors.NewConflictError(fmt.Sprintf("member with email '%s' already exists", email)).
			WithContext("member_id", existing.ID().String())
	}
}

// RegisterMember validates and stores a new member with a unique email
func (s *teamMemberServiceImpl) RegisterMember(ctx context.Context, req RegisterMemberRequest) (*MemberSnapshot, error) {
	email, err := domain.NewEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if err := s.ensureEmailAvailable(ctx, email, uuid.Nil); err != nil {
		return nil, err
	}

	member, err := domain.NewTeamMember(req.FullName, email, s.clock())
	if err != nil {
		return nil, err
	}
	if err := s.members.Add(ctx, member); err != nil {
		return nil, err
	}
	logging.Debugf("member registered: %s <%s>\n", member.ID(), email)
	return newMemberSnapshot(member), nil
}

// ListMembers returns every member in storage order
func (s *teamMemberServiceImpl) ListMembers(ctx context.Context) ([]MemberSnapshot, error) {
	members, err := s.members.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	snapshots := make([]MemberSnapshot, 0, len(members))
	for _, m := range members {
		snapshots = append(snapshots, *newMemberSnapshot(m))
	}
	return snapshots, nil
}

// GetMember retrieves a member by its ID
func (s *teamMemberServiceImpl) GetMember(ctx context.Context, id uuid.UUID) (*MemberSnapshot, error) {
	member, err := s.members.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return newMemberSnapshot(member), nil
}

// RenameMember replaces the full name of a member
func (s *teamMemberServiceImpl) RenameMember(ctx context.Context, id uuid.UUID, fullName string) (*MemberSnapshot, error) {
	member, err := s.members.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := member.Rename(fullName); err != nil {
		return nil, err
	}

	if err := s.members.Update(ctx, member); err != nil {
		return nil, err
	}
	return newMemberSnapshot(member), nil
}

// ChangeEmail replaces the email of a member, keeping addresses unique
func (s *teamMemberServiceImpl) ChangeEmail(ctx context.Context, id uuid.UUID, rawEmail string) (*MemberSnapshot, error) {
	member, err := s.members.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	email, err := domain.NewEmail(rawEmail)
	if err != nil {
		return nil, err
	}
	if err := s.ensureEmailAvailable(ctx, email, member.ID()); err != nil {
		return nil, err
	}
	member.UpdateEmail(email)

	if err := s.members.Update(ctx, member); err != nil {
		return nil, err
	}
	return newMemberSnapshot(member), nil
}
