package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/docspace/internal/cli/formatter"
	"github.com/alexanderramin/docspace/internal/service"
	"github.com/spf13/cobra"
)

func newIdeaCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "idea",
		Short: "Submit and browse project ideas",
	}

	cmd.AddCommand(
		newIdeaSubmitCmd(app),
		newIdeaListCmd(app),
		newIdeaShowCmd(app),
		newIdeaImportCmd(app),
	)

	return cmd
}

func newIdeaSubmitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "submit [text...]",
		Short: "Draft documentation for a new idea",
		Long: `Submit a free-text idea. The assistant drafts a documentation skeleton
and the idea is stored as a Draft. Without arguments in a terminal, a
prompt asks for the text.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if len(args) == 0 {
				if !app.interactive() {
					return errors.New("idea text is required")
				}
				if err := ideaTextForm(&text).Run(); err != nil {
					return err
				}
			}

			spin := formatter.NewSpinner(cmd.ErrOrStderr(), "Generating documentation...")
			if app.interactive() {
				spin.Start()
			}
			idea, err := app.Ideas.Submit(cmd.Context(), text)
			spin.Stop()
			if errors.Is(err, service.ErrEmptyIdea) {
				return errors.New("idea text is empty")
			}
			if err != nil {
				return err
			}

			sections, err := app.Documents.Sections(cmd.Context(), idea.ID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s Created %s [%s]\n", formatter.StyleGreen.Render("✔"), formatter.Bold(idea.Name), idea.ID)
			fmt.Fprint(out, formatter.FormatSectionTree(idea, sections))
			return nil
		},
	}
}

func newIdeaListCmd(app *App) *cobra.Command {
	status := &statusFlag{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List ideas, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ideas, err := app.Ideas.List(cmd.Context(), status.filter)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatIdeaList(ideas, status.filter))
			return nil
		},
	}

	cmd.Flags().Var(status, "status", "Filter by status: all, draft, in-review, approved, partial")
	return cmd
}

func newIdeaShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <idea-id>",
		Short: "Show an idea and its section outline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeIdea(cmd.Context(), cmd.OutOrStdout(), app, args[0])
		},
	}
}

func newIdeaImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import an idea and its sections from a JSON or YAML file",
		Long: `Import an idea written by hand or exported from another tool.

Files ending in .yaml or .yml are read as YAML, anything else as JSON
(comments and trailing commas allowed). Every validation error is
reported before anything is written.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Imports.ImportIdea(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			sections, err := app.Documents.Sections(cmd.Context(), res.Idea.ID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s Imported %s [%s] with %d sections\n",
				formatter.StyleGreen.Render("✔"), formatter.Bold(res.Idea.Name), res.Idea.ID, res.SectionCount)
			fmt.Fprint(out, formatter.FormatSectionTree(res.Idea, sections))
			return nil
		},
	}
}
