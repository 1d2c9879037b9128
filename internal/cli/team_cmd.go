package cli

import (
	"fmt"

	"github.com/alexanderramin/docspace/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTeamCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Show the team, their tasks and workload",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "members",
			Short: "List team members",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				members, err := app.Team.Members(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMembers(members))
				return nil
			},
		},
		&cobra.Command{
			Use:   "tasks",
			Short: "List tasks with their assignees",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				members, err := app.Team.Members(cmd.Context())
				if err != nil {
					return err
				}
				tasks, err := app.Team.Tasks(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTasks(tasks, members))
				return nil
			},
		},
		&cobra.Command{
			Use:   "workload",
			Short: "Show the workload balance",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				load, err := app.Team.Workload(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWorkload(workloadRows(load)))
				return nil
			},
		},
	)

	return cmd
}
