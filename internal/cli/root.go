package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/docspace/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Ideas     service.IdeaService
	Documents service.DocumentService
	Approvals service.ApprovalService
	Team      service.TeamService
	Imports   service.ImportService

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool

	// RunTUI starts the full-screen program. Tests replace it.
	RunTUI func(app *App, start StartOptions) error
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "docspace" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var openID string
	view := &viewFlag{}

	root := &cobra.Command{
		Use:   "docspace",
		Short: "Turn project ideas into reviewed documentation",
		Long: `docspace drafts a documentation skeleton from a free-text idea and
keeps the workspace around it: document sections, an approval board
and the team's workload.

Run without arguments in a terminal to open the interactive workspace.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if openID != "" {
				idea, err := app.Ideas.GetByID(ctx, openID)
				if err != nil {
					return fmt.Errorf("opening idea %q: %w", openID, err)
				}
				openID = idea.ID
			}
			if app.interactive() {
				run := app.RunTUI
				if run == nil {
					run = runTUI
				}
				return run(app, StartOptions{IdeaID: openID, View: view.view})
			}
			if view.view != "" {
				return writePanel(ctx, cmd.OutOrStdout(), app, view.view, openID)
			}
			return writeOverview(ctx, cmd.OutOrStdout(), app, openID)
		},
	}

	root.Flags().StringVar(&openID, "open", "", "Open the workspace with this idea selected")
	root.Flags().Var(view, "view", "Start on a workspace view: documents, approval or team")

	root.AddCommand(
		newIdeaCmd(app),
		newDocCmd(app),
		newApprovalCmd(app),
		newTeamCmd(app),
	)

	return root
}
