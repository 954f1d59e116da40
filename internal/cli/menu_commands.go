package cli

import (
	"context"
	"fmt"

	"task-planner/internal/domain"
	"task-planner/internal/services"
)

type registerMemberCommand struct{ app *App }

func (c *registerMemberCommand) Label() string { return "Register member" }

func (c *registerMemberCommand) Execute(ctx context.Context) error {
	fullName, err := c.app.prompt.Line("Full name")
	if err != nil {
		return err
	}
	email, err := c.app.prompt.Line("Email")
	if err != nil {
		return err
	}

	ctx, cancel := c.app.callContext(ctx)
	defer cancel()
	member, err := c.app.planner.Members().RegisterMember(ctx, services.RegisterMemberRequest{
		FullName: fullName,
		Email:    email,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(c.app.out, "Member registered: %s (%s). Id: %s\n", member.FullName, member.Email, member.ID)
	return nil
}

type createProjectCommand struct{ app *App }

func (c *createProjectCommand) Label() string { return "Create project" }

func (c *createProjectCommand) Execute(ctx context.Context) error {
	name, err := c.app.prompt.Line("Project name")
	if err != nil {
		return err
	}
	description, err := c.app.prompt.Line("Description")
	if err != nil {
		return err
	}

	ctx, cancel := c.app.callContext(ctx)
	defer cancel()
	project, err := c.app.planner.Projects().CreateProject(ctx, services.CreateProjectRequest{
		Name:        name,
		Description: description,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(c.app.out, "Project created. Id: %s\n", project.ID)
	return nil
}

type attachMemberCommand struct{ app *App }

func (c *attachMemberCommand) Label() string { return "Add member to project" }

func (c *attachMemberCommand) Execute(ctx context.Context) error {
	projectID, err := c.app.prompt.ID("Project id")
	if err != nil {
		return err
	}
	memberID, err := c.app.prompt.ID("Member id")
	if err != nil {
		return err
	}

	ctx, cancel := c.app.callContext(ctx)
	defer cancel()
	if err := c.app.planner.Projects().AttachMember(ctx, projectID, memberID); err != nil {
		return err
	}
	fmt.Fprintln(c.app.out, "Member added to project.")
	return nil
}

type createTaskCommand struct{ app *App }

func (c *createTaskCommand) Label() string { return "Create task" }

func (c *createTaskCommand) Execute(ctx context.Context) error {
	p := c.app.prompt
	projectID, err := p.ID("Project id")
	if err != nil {
		return err
	}
	title, err := p.Line("Task title")
	if err != nil {
		return err
	}
	description, err := p.Line("Description")
	if err != nil {
		return err
	}
	dueDate, err := p.Date("Due date", c.app.config.Display.DateFormat)
	if err != nil {
		return err
	}
	memberID, err := p.OptionalID("Member id (optional)")
	if err != nil {
		return err
	}

	ctx, cancel := c.app.callContext(ctx)
	defer cancel()
	task, err := c.app.planner.Tasks().CreateTask(ctx, services.CreateTaskRequest{
		ProjectID:        projectID,
		Title:            title,
		Description:      description,
		DueDate:          dueDate,
		AssignedMemberID: memberID,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(c.app.out, "Task created. Id: %s\n", task.ID)
	return nil
}

type assignTaskCommand struct{ app *App }

func (c *assignTaskCommand) Label() string { return "Assign task to member" }

func (c *assignTaskCommand) Execute(ctx context.Context) error {
	taskID, err := c.app.prompt.ID("Task id")
	if err != nil {
		return err
	}
	memberID, err := c.app.prompt.ID("Member id")
	if err != nil {
		return err
	}

	ctx, cancel := c.app.callContext(ctx)
	defer cancel()
	if _, err := c.app.planner.Tasks().AssignTask(ctx, services.AssignTaskRequest{
		TaskID:   taskID,
		MemberID: memberID,
	}); err != nil {
		return err
	}
	fmt.Fprintln(c.app.out, "Task assigned.")
	return nil
}

type changeStatusCommand struct{ app *App }

func (c *changeStatusCommand) Label() string { return "Change task status" }

func (c *changeStatusCommand) Execute(ctx context.Context) error {
	taskID, err := c.app.prompt.ID("Task id")
	if err != nil {
		return err
	}

	fmt.Fprintln(c.app.out, "Choose the new status:")
	for _, status := range domain.AllStatuses {
		fmt.Fprintf(c.app.out, "%d - %s\n", int(status), status)
	}
	raw, err := c.app.prompt.Line("Status")
	if err != nil {
		return err
	}

	ctx, cancel := c.app.callContext(ctx)
	defer cancel()
	if _, err := c.app.planner.ChangeStatusByName(ctx, taskID, raw); err != nil {
		return err
	}
	fmt.Fprintln(c.app.out, "Status updated.")
	return nil
}

type upcomingTasksCommand struct{ app *App }

func (c *upcomingTasksCommand) Label() string {
	return fmt.Sprintf("Show tasks due in the next %d days", c.app.upcomingDays())
}

func (c *upcomingTasksCommand) Execute(ctx context.Context) error {
	days := c.app.upcomingDays()
	ctx, cancel := c.app.callContext(ctx)
	defer cancel()
	rows, err := c.app.planner.UpcomingWithin(ctx, days)
	if err != nil {
		return err
	}
	c.app.printer.Upcoming(rows, days)
	return nil
}

type projectBoardsCommand struct{ app *App }

func (c *projectBoardsCommand) Label() string { return "Show projects and tasks" }

func (c *projectBoardsCommand) Execute(ctx context.Context) error {
	ctx, cancel := c.app.callContext(ctx)
	defer cancel()
	boards, err := c.app.planner.ProjectBoards(ctx)
	if err != nil {
		return err
	}
	names, err := c.app.planner.MemberNames(ctx)
	if err != nil {
		return err
	}
	c.app.printer.Boards(boards, names)
	return nil
}
