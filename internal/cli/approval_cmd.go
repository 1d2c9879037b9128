package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/docspace/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newApprovalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "approval",
		Aliases: []string{"approvals"},
		Short:   "Review items waiting for approval",
	}

	cmd.AddCommand(
		newApprovalListCmd(app),
		newApprovalDecideCmd(app),
		newApprovalHistoryCmd(app),
	)

	return cmd
}

func newApprovalListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the approval board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			buckets, err := app.Approvals.Buckets(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatApprovals(buckets))
			return nil
		},
	}
}

func newApprovalDecideCmd(app *App) *cobra.Command {
	decision := &decisionFlag{}
	var comment string

	cmd := &cobra.Command{
		Use:   "decide <item-id>",
		Short: "Record a review decision",
		Long: `Record approve, partial or disapprove for an approval item. The
decision is journaled and logged. The item stays in its bucket.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := app.Approvals.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if decision.decision == "" {
				if !app.interactive() {
					return errors.New("--decision is required (approve, partial or disapprove)")
				}
				if err := decisionForm(item, &decision.decision, &comment).Run(); err != nil {
					return err
				}
			}

			rec, err := app.Approvals.Decide(cmd.Context(), item.ID, decision.decision, comment)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDecision(item, rec))
			return nil
		},
	}

	cmd.Flags().Var(decision, "decision", "approve, partial or disapprove")
	cmd.Flags().StringVar(&comment, "comment", "", "Review comment")
	return cmd
}

func newApprovalHistoryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "history <item-id>",
		Short: "Show recorded decisions for an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := app.Approvals.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			history, err := app.Approvals.History(cmd.Context(), item.ID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(item, history))
			return nil
		},
	}
}
