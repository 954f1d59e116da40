package domain

import (
	"time"

	"github.com/google/uuid"

	"task-planner/internal/validation"
)

// TeamMember is a person who can be attached to projects and assigned tasks.
// Email uniqueness is enforced by the member service, not here.
type TeamMember struct {
	id       uuid.UUID
	fullName string
	email    Email
	joinedAt time.Time
}

// NewTeamMember creates a member with a fresh identifier who joined now.
func NewTeamMember(fullName string, email Email, now time.Time) (*TeamMember, error) {
	return newTeamMember(uuid.New(), fullName, email, now)
}

// RestoreTeamMember rebuilds a member from persisted state.
func RestoreTeamMember(id uuid.UUID, fullName string, email Email, joinedAt time.Time) (*TeamMember, error) {
	if id == uuid.Nil {
		id = uuid.New()
	}
	return newTeamMember(id, fullName, email, joinedAt)
}

func newTeamMember(id uuid.UUID, fullName string, email Email, joinedAt time.Time) (*TeamMember, error) {
	name, err := validation.ValidateName("full_name", "member name", fullName)
	if err != nil {
		return nil, invalid(err)
	}
	return &TeamMember{
		id:       id,
		fullName: name,
		email:    email,
		joinedAt: joinedAt,
	}, nil
}

func (m *TeamMember) ID() uuid.UUID       { return m.id }
func (m *TeamMember) FullName() string    { return m.fullName }
func (m *TeamMember) Email() Email        { return m.email }
func (m *TeamMember) JoinedAt() time.Time { return m.joinedAt }

// Rename validates and replaces the full name.
func (m *TeamMember) Rename(fullName string) error {
	name, err := validation.ValidateName("full_name", "member name", fullName)
	if err != nil {
		return invalid(err)
	}
	m.fullName = name
	return nil
}

// UpdateEmail replaces the address. The value object is already valid.
func (m *TeamMember) UpdateEmail(email Email) {
	m.email = email
}
