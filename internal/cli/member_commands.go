package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"task-planner/internal/services"
)

func (r *RootCommand) newMemberCommand() *cobra.Command {
	memberCmd := &cobra.Command{
		Use:   "member",
		Short: "Manage team members",
	}

	registerCmd := &cobra.Command{
		Use:   "register <full name> <email>",
		Short: "Register a team member",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			member, err := r.planner.Members().RegisterMember(ctx, services.RegisterMemberRequest{
				FullName: args[0],
				Email:    args[1],
			})
			if err != nil {
				return r.errHandler.Handle("register member", err)
			}
			fmt.Fprintf(r.out, "Member registered: %s (%s). Id: %s\n", member.FullName, member.Email, member.ID)
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List team members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			members, err := r.planner.Members().ListMembers(ctx)
			if err != nil {
				return r.errHandler.Handle("list members", err)
			}
			r.printer().Members(members)
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show <member id>",
		Short: "Show a team member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			id, err := parseID("member_id", args[0])
			if err != nil {
				return r.errHandler.Handle("show member", err)
			}
			member, err := r.planner.Members().GetMember(ctx, id)
			if err != nil {
				return r.errHandler.Handle("show member", err)
			}
			r.printer().Member(*member)
			return nil
		},
	}

	renameCmd := &cobra.Command{
		Use:   "rename <member id> <full name>",
		Short: "Change a member's full name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			id, err := parseID("member_id", args[0])
			if err != nil {
				return r.errHandler.Handle("rename member", err)
			}
			member, err := r.planner.Members().RenameMember(ctx, id, args[1])
			if err != nil {
				return r.errHandler.Handle("rename member", err)
			}
			fmt.Fprintf(r.out, "Member renamed: %s\n", member.FullName)
			return nil
		},
	}

	emailCmd := &cobra.Command{
		Use:   "email <member id> <email>",
		Short: "Change a member's email address",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			id, err := parseID("member_id", args[0])
			if err != nil {
				return r.errHandler.Handle("change email", err)
			}
			member, err := r.planner.Members().ChangeEmail(ctx, id, args[1])
			if err != nil {
				return r.errHandler.Handle("change email", err)
			}
			fmt.Fprintf(r.out, "Email changed: %s\n", member.Email)
			return nil
		},
	}

	memberCmd.AddCommand(registerCmd, listCmd, showCmd, renameCmd, emailCmd)
	return memberCmd
}
