package services

import (
	"task-planner/internal/domain"
)

func newProjectSnapshot(p *domain.Project) *ProjectSnapshot {
	return &ProjectSnapshot{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		CreatedAt:   p.CreatedAt(),
		MemberIDs:   p.MemberIDs(),
	}
}

func newTaskSnapshot(t *domain.TaskItem) *TaskSnapshot {
	return &TaskSnapshot{
		ID:               t.ID(),
		ProjectID:        t.ProjectID(),
		Title:            t.Title(),
		Description:      t.Description(),
		DueDate:          t.DueDate(),
		Status:           t.Status(),
		AssignedMemberID: t.AssignedMemberID(),
		CreatedAt:        t.CreatedAt(),
		CompletedAt:      t.CompletedAt(),
	}
}

func newMemberSnapshot(m *domain.TeamMember) *MemberSnapshot {
	return &MemberSnapshot{
		ID:       m.ID(),
		FullName: m.FullName(),
		Email:    m.Email().String(),
		JoinedAt: m.JoinedAt(),
	}
}
