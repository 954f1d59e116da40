package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"task-planner/internal/services"
)

func (r *RootCommand) newTaskCommand() *cobra.Command {
	taskCmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	var description, assignee string
	createCmd := &cobra.Command{
		Use:   "create <project id> <title> <due date>",
		Short: "Create a task in a project",
		Long: `Create a Planned task. The due date uses the configured date format
and may not be earlier than today.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			projectID, err := parseID("project_id", args[0])
			if err != nil {
				return r.errHandler.Handle("create task", err)
			}
			dueDate, err := parseDate("due_date", args[2], r.config.Display.DateFormat)
			if err != nil {
				return r.errHandler.Handle("create task", err)
			}
			req := services.CreateTaskRequest{
				ProjectID:   projectID,
				Title:       args[1],
				Description: description,
				DueDate:     dueDate,
			}
			if assignee != "" {
				memberID, err := parseID("assignee", assignee)
				if err != nil {
					return r.errHandler.Handle("create task", err)
				}
				req.AssignedMemberID = &memberID
			}

			task, err := r.planner.Tasks().CreateTask(ctx, req)
			if err != nil {
				return r.errHandler.Handle("create task", err)
			}
			fmt.Fprintf(r.out, "Task created. Id: %s\n", task.ID)
			return nil
		},
	}
	createCmd.Flags().StringVar(&description, "description", "", "Task description")
	createCmd.Flags().StringVar(&assignee, "assignee", "", "Member id to assign the task to")

	showCmd := &cobra.Command{
		Use:   "show <task id>",
		Short: "Show a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			id, err := parseID("task_id", args[0])
			if err != nil {
				return r.errHandler.Handle("show task", err)
			}
			task, err := r.planner.Tasks().GetTask(ctx, id)
			if err != nil {
				return r.errHandler.Handle("show task", err)
			}
			names, err := r.planner.MemberNames(ctx)
			if err != nil {
				return r.errHandler.Handle("show task", err)
			}
			r.printer().Task(*task, names)
			if task.Description != "" {
				fmt.Fprintf(r.out, "      %s\n", task.Description)
			}
			return nil
		},
	}

	var editTitle, editDescription, editDue string
	editCmd := &cobra.Command{
		Use:   "edit <task id>",
		Short: "Change a task's title, description or due date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			id, err := parseID("task_id", args[0])
			if err != nil {
				return r.errHandler.Handle("edit task", err)
			}
			current, err := r.planner.Tasks().GetTask(ctx, id)
			if err != nil {
				return r.errHandler.Handle("edit task", err)
			}

			req := services.UpdateTaskDetailsRequest{
				TaskID:      id,
				Title:       current.Title,
				Description: current.Description,
				DueDate:     current.DueDate,
			}
			if cmd.Flags().Changed("title") {
				req.Title = editTitle
			}
			if cmd.Flags().Changed("description") {
				req.Description = editDescription
			}
			if cmd.Flags().Changed("due") {
				if req.DueDate, err = parseDate("due_date", editDue, r.config.Display.DateFormat); err != nil {
					return r.errHandler.Handle("edit task", err)
				}
			}

			if _, err := r.planner.Tasks().UpdateDetails(ctx, req); err != nil {
				return r.errHandler.Handle("edit task", err)
			}
			fmt.Fprintln(r.out, "Task updated.")
			return nil
		},
	}
	editCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	editCmd.Flags().StringVar(&editDescription, "description", "", "New description")
	editCmd.Flags().StringVar(&editDue, "due", "", "New due date")

	assignCmd := &cobra.Command{
		Use:   "assign <task id> <member id>",
		Short: "Assign a task to a project member",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			taskID, err := parseID("task_id", args[0])
			if err != nil {
				return r.errHandler.Handle("assign task", err)
			}
			memberID, err := parseID("member_id", args[1])
			if err != nil {
				return r.errHandler.Handle("assign task", err)
			}
			if _, err := r.planner.Tasks().AssignTask(ctx, services.AssignTaskRequest{TaskID: taskID, MemberID: memberID}); err != nil {
				return r.errHandler.Handle("assign task", err)
			}
			fmt.Fprintln(r.out, "Task assigned.")
			return nil
		},
	}

	unassignCmd := &cobra.Command{
		Use:   "unassign <task id>",
		Short: "Remove a task's assignee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			taskID, err := parseID("task_id", args[0])
			if err != nil {
				return r.errHandler.Handle("unassign task", err)
			}
			if _, err := r.planner.Tasks().UnassignTask(ctx, taskID); err != nil {
				return r.errHandler.Handle("unassign task", err)
			}
			fmt.Fprintln(r.out, "Task unassigned.")
			return nil
		},
	}

	statusCmd := &cobra.Command{
		Use:   "status <task id> <status>",
		Short: "Change a task's status",
		Long: `Change a task's status. The status is a name or its code:
  0 planned, 1 in_progress, 2 completed, 3 archived

Archived tasks cannot change status.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			taskID, err := parseID("task_id", args[0])
			if err != nil {
				return r.errHandler.Handle("change status", err)
			}
			task, err := r.planner.ChangeStatusByName(ctx, taskID, args[1])
			if err != nil {
				return r.errHandler.Handle("change status", err)
			}
			fmt.Fprintf(r.out, "Status updated: %s\n", task.Status)
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list <project id>",
		Short: "List the tasks of a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			projectID, err := parseID("project_id", args[0])
			if err != nil {
				return r.errHandler.Handle("list tasks", err)
			}
			tasks, err := r.planner.Tasks().ListByProject(ctx, projectID)
			if err != nil {
				return r.errHandler.Handle("list tasks", err)
			}
			names, err := r.planner.MemberNames(ctx)
			if err != nil {
				return r.errHandler.Handle("list tasks", err)
			}
			r.printer().Tasks(tasks, names)
			return nil
		},
	}

	var days int
	upcomingCmd := &cobra.Command{
		Use:   "upcoming",
		Short: "List open tasks due soon",
		Long: `List Planned and InProgress tasks due within the next days,
earliest first. The horizon defaults to TP_UPCOMING_DAYS.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			horizon := r.config.Planner.UpcomingDays
			if cmd.Flags().Changed("days") {
				horizon = days
			}
			rows, err := r.planner.UpcomingWithin(ctx, horizon)
			if err != nil {
				return r.errHandler.Handle("list upcoming tasks", err)
			}
			r.printer().Upcoming(rows, horizon)
			return nil
		},
	}
	upcomingCmd.Flags().IntVar(&days, "days", 0, "Horizon in days")

	taskCmd.AddCommand(createCmd, showCmd, editCmd, assignCmd, unassignCmd, statusCmd, listCmd, upcomingCmd)
	return taskCmd
}
