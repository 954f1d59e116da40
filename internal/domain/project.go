package domain

import (
	"bytes"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"task-planner/internal/validation"
)

// Project groups tasks and the team members allowed to work on them.
type Project struct {
	id          uuid.UUID
	name        string
	description string
	memberIDs   map[uuid.UUID]struct{}
	createdAt   time.Time
}

// NewProject creates a project with a fresh identifier and no members.
func NewProject(name, description string, now time.Time) (*Project, error) {
	return newProject(uuid.New(), name, description, nil, now)
}

// RestoreProject rebuilds a project from persisted state. A nil id is
// replaced with a fresh one; nil member ids are dropped.
func RestoreProject(id uuid.UUID, name, description string, memberIDs []uuid.UUID, createdAt time.Time) (*Project, error) {
	return newProject(id, name, description, memberIDs, createdAt)
}

func newProject(id uuid.UUID, name, description string, memberIDs []uuid.UUID, createdAt time.Time) (*Project, error) {
	validName, err := validation.ValidateName("name", "project name", name)
	if err != nil {
		return nil, invalid(err)
	}
	if id == uuid.Nil {
		id = uuid.New()
	}

	p := &Project{
		id:          id,
		name:        validName,
		description: strings.TrimSpace(description),
		memberIDs:   make(map[uuid.UUID]struct{}, len(memberIDs)),
		createdAt:   createdAt,
	}
	for _, memberID := range memberIDs {
		if memberID != uuid.Nil {
			p.memberIDs[memberID] = struct{}{}
		}
	}
	return p, nil
}

func (p *Project) ID() uuid.UUID        { return p.id }
func (p *Project) Name() string         { return p.name }
func (p *Project) Description() string  { return p.description }
func (p *Project) CreatedAt() time.Time { return p.createdAt }

// MemberIDs returns a sorted copy of the member set.
func (p *Project) MemberIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(p.memberIDs))
	for id := range p.memberIDs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return bytes.Compare(ids[i][:], ids[j][:]) < 0
	})
	return ids
}

// HasMember reports whether memberID is attached to the project.
func (p *Project) HasMember(memberID uuid.UUID) bool {
	_, ok := p.memberIDs[memberID]
	return ok
}

// Rename validates and replaces both name and description.
func (p *Project) Rename(name, description string) error {
	validName, err := validation.ValidateName("name", "project name", name)
	if err != nil {
		return invalid(err)
	}
	p.name = validName
	p.description = strings.TrimSpace(description)
	return nil
}

// AddMember attaches memberID. Adding a present id is a no-op.
func (p *Project) AddMember(memberID uuid.UUID) error {
	if err := validation.ValidateID("member_id", "cannot add a member with an empty identifier", memberID); err != nil {
		return invalid(err)
	}
	p.memberIDs[memberID] = struct{}{}
	return nil
}

// RemoveMember detaches memberID if present.
func (p *Project) RemoveMember(memberID uuid.UUID) {
	delete(p.memberIDs, memberID)
}
