package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"task-planner/internal/services"
)

func (r *RootCommand) newProjectCommand() *cobra.Command {
	projectCmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects and their members",
	}

	createCmd := &cobra.Command{
		Use:   "create <name> [description]",
		Short: "Create a project",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			req := services.CreateProjectRequest{Name: args[0]}
			if len(args) > 1 {
				req.Description = args[1]
			}
			project, err := r.planner.Projects().CreateProject(ctx, req)
			if err != nil {
				return r.errHandler.Handle("create project", err)
			}
			fmt.Fprintf(r.out, "Project created. Id: %s\n", project.ID)
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			projects, err := r.planner.Projects().ListProjects(ctx)
			if err != nil {
				return r.errHandler.Handle("list projects", err)
			}
			r.printer().Projects(projects)
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show <project id>",
		Short: "Show a project with its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			id, err := parseID("project_id", args[0])
			if err != nil {
				return r.errHandler.Handle("show project", err)
			}
			project, err := r.planner.Projects().GetProject(ctx, id)
			if err != nil {
				return r.errHandler.Handle("show project", err)
			}
			tasks, err := r.planner.Tasks().ListByProject(ctx, id)
			if err != nil {
				return r.errHandler.Handle("show project", err)
			}
			names, err := r.planner.MemberNames(ctx)
			if err != nil {
				return r.errHandler.Handle("show project", err)
			}

			p := r.printer()
			p.Project(*project)
			p.Tasks(tasks, names)
			return nil
		},
	}

	renameCmd := &cobra.Command{
		Use:   "rename <project id> <name> [description]",
		Short: "Rename a project and replace its description",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			id, err := parseID("project_id", args[0])
			if err != nil {
				return r.errHandler.Handle("rename project", err)
			}
			req := services.RenameProjectRequest{ProjectID: id, Name: args[1]}
			if len(args) > 2 {
				req.Description = args[2]
			}
			project, err := r.planner.Projects().RenameProject(ctx, req)
			if err != nil {
				return r.errHandler.Handle("rename project", err)
			}
			fmt.Fprintf(r.out, "Project renamed: %s\n", project.Name)
			return nil
		},
	}

	attachCmd := &cobra.Command{
		Use:   "attach <project id> <member id>",
		Short: "Add a member to a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.changeMembership("attach member", args, true)
		},
	}

	detachCmd := &cobra.Command{
		Use:   "detach <project id> <member id>",
		Short: "Remove a member from a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.changeMembership("detach member", args, false)
		},
	}

	projectCmd.AddCommand(createCmd, listCmd, showCmd, renameCmd, attachCmd, detachCmd)
	return projectCmd
}

func (r *RootCommand) changeMembership(operation string, args []string, attach bool) error {
	ctx, cancel := r.commandContext()
	defer cancel()

	projectID, err := parseID("project_id", args[0])
	if err != nil {
		return r.errHandler.Handle(operation, err)
	}
	memberID, err := parseID("member_id", args[1])
	if err != nil {
		return r.errHandler.Handle(operation, err)
	}

	if attach {
		err = r.planner.Projects().AttachMember(ctx, projectID, memberID)
	} else {
		err = r.planner.Projects().DetachMember(ctx, projectID, memberID)
	}
	if err != nil {
		return r.errHandler.Handle(operation, err)
	}

	if attach {
		fmt.Fprintln(r.out, "Member added to project.")
	} else {
		fmt.Fprintln(r.out, "Member removed from project.")
	}
	return nil
}
