package api

import (
	"context"

	"github.com/google/uuid"

	"task-planner/internal/domain"
	apperrors "task-planner/internal/errors"
	"task-planner/internal/services"
)

// ProjectBoard is a project together with its tasks
type ProjectBoard struct {
	Project services.ProjectSnapshot `json:"project"`
	Tasks   []services.TaskSnapshot  `json:"tasks"`
}

// ProjectBoards returns every project with its tasks, in storage order
func (p *Planner) ProjectBoards(ctx context.Context) ([]ProjectBoard, error) {
	projects, err := p.Projects().ListProjects(ctx)
	if err != nil {
		return nil, err
	}

	boards := make([]ProjectBoard, 0, len(projects))
	for _, project := range projects {
		tasks, err := p.Tasks().ListByProject(ctx, project.ID)
		if err != nil {
			return nil, err
		}
		boards = append(boards, ProjectBoard{Project: project, Tasks: tasks})
	}
	return boards, nil
}

// UpcomingWithin lists open tasks due within the next days days
func (p *Planner) UpcomingWithin(ctx context.Context, days int) ([]services.UpcomingTaskSummary, error) {
	if days < 0 {
		return nil, apperrors.NewInvalidInputError("days", days, "must not be negative")
	}
	return p.Tasks().ListUpcoming(ctx, p.Now().AddDate(0, 0, days))
}

// MemberNames maps member ids to full names for display
func (p *Planner) MemberNames(ctx context.Context) (map[uuid.UUID]string, error) {
	members, err := p.Members().ListMembers(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(members))
	for _, m := range members {
		names[m.ID] = m.FullName
	}
	return names, nil
}

// ChangeStatusByName parses a status name or code and applies it to a task
func (p *Planner) ChangeStatusByName(ctx context.Context, taskID uuid.UUID, rawStatus string) (*services.TaskSnapshot, error) {
	status, err := domain.ParseTaskStatus(rawStatus)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("status", rawStatus, err.Error())
	}
	return p.Tasks().UpdateStatus(ctx, services.UpdateTaskStatusRequest{TaskID: taskID, Status: status})
}
