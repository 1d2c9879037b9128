package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/docspace/internal/cli/formatter"
	"github.com/alexanderramin/docspace/internal/domain"
	"github.com/spf13/cobra"
)

func newDocCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doc",
		Short: "Read and export an idea's documentation",
	}

	cmd.AddCommand(
		newDocSectionsCmd(app),
		newDocShowCmd(app),
		newDocSuggestCmd(app),
		newDocExportCmd(app),
	)

	return cmd
}

func newDocSectionsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sections <idea-id>",
		Short: "List the sections of an idea",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idea, err := app.Ideas.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			sections, err := app.Documents.Sections(cmd.Context(), idea.ID)
			if err != nil {
				return err
			}
			if len(sections) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No sections."))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSectionTree(idea, sections))
			return nil
		},
	}
}

func newDocShowCmd(app *App) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "show <idea-id> [section-id]",
		Short: "Render one section, the first when none is named",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			section, err := showSection(cmd.Context(), app, args)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSection(section, width))
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 80, "Wrap width")
	return cmd
}

// showSection resolves the section named in args, or the idea's first one.
func showSection(ctx context.Context, app *App, args []string) (*domain.DocumentSection, error) {
	if len(args) == 2 {
		return app.Documents.Section(ctx, args[0], args[1])
	}
	idea, err := app.Ideas.GetByID(ctx, args[0])
	if err != nil {
		return nil, err
	}
	sections, err := app.Documents.Sections(ctx, idea.ID)
	if err != nil {
		return nil, err
	}
	section := domain.FindSection(sections, "")
	if section == nil {
		return nil, fmt.Errorf("idea %q has no sections", idea.Name)
	}
	return section, nil
}

func newDocSuggestCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <idea-id> <section-id>",
		Short: "Ask the assistant for suggestions on a section",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			section, err := app.Documents.Section(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			suggestions, err := app.Documents.Suggestions(cmd.Context(), section)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSuggestions(section, suggestions))
			return nil
		},
	}
}

func newDocExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export <idea-id>",
		Short: "Export an idea as a markdown document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" || out == "-" {
				return app.Documents.Export(cmd.Context(), args[0], cmd.OutOrStdout())
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating %s: %w", out, err)
			}
			if err := app.Documents.Export(cmd.Context(), args[0], f); err != nil {
				f.Close()
				os.Remove(out)
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Exported to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to FILE instead of stdout")
	return cmd
}
