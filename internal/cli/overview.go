package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/alexanderramin/docspace/internal/cli/formatter"
	"github.com/alexanderramin/docspace/internal/domain"
)

// writeOverview prints the workspace summary used when stdin is not a
// terminal.
func writeOverview(ctx context.Context, w io.Writer, app *App, openID string) error {
	if openID != "" {
		return writeIdea(ctx, w, app, openID)
	}

	ideas, err := app.Ideas.List(ctx, domain.IdeaFilter{})
	if err != nil {
		return fmt.Errorf("listing ideas: %w", err)
	}
	buckets, err := app.Approvals.Buckets(ctx)
	if err != nil {
		return fmt.Errorf("loading approvals: %w", err)
	}
	unassigned, err := app.Team.Unassigned(ctx)
	if err != nil {
		return fmt.Errorf("loading tasks: %w", err)
	}

	fmt.Fprint(w, formatter.FormatIdeaList(ideas, domain.IdeaFilter{}))
	fmt.Fprintln(w)
	counts := buckets.Counts()
	fmt.Fprintf(w, "%s  %s %d  %s %d  %s %d\n",
		formatter.Header("Approvals"),
		formatter.StyleRed.Render(formatter.BucketTitles[0]), counts[0],
		formatter.StyleYellow.Render(formatter.BucketTitles[1]), counts[1],
		formatter.StyleGreen.Render(formatter.BucketTitles[2]), counts[2])
	fmt.Fprintf(w, "%s  %d unassigned\n", formatter.Header("Tasks"), unassigned)
	fmt.Fprintln(w)
	fmt.Fprintln(w, formatter.Dim("Run `docspace` in a terminal for the interactive workspace."))
	return nil
}

func writeIdea(ctx context.Context, w io.Writer, app *App, id string) error {
	idea, err := app.Ideas.GetByID(ctx, id)
	if err != nil {
		return err
	}
	sections, err := app.Documents.Sections(ctx, idea.ID)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, formatter.FormatIdea(idea, sections))
	return nil
}

// writePanel prints the plain-text counterpart of one workspace view.
func writePanel(ctx context.Context, w io.Writer, app *App, view domain.WorkspaceView, openID string) error {
	switch view {
	case domain.ViewApproval:
		buckets, err := app.Approvals.Buckets(ctx)
		if err != nil {
			return fmt.Errorf("loading approvals: %w", err)
		}
		fmt.Fprint(w, formatter.FormatApprovals(buckets))
		return nil
	case domain.ViewTeam:
		members, err := app.Team.Members(ctx)
		if err != nil {
			return fmt.Errorf("loading team: %w", err)
		}
		tasks, err := app.Team.Tasks(ctx)
		if err != nil {
			return fmt.Errorf("loading tasks: %w", err)
		}
		load, err := app.Team.Workload(ctx)
		if err != nil {
			return fmt.Errorf("loading workload: %w", err)
		}
		fmt.Fprint(w, formatter.FormatMembers(members))
		fmt.Fprintln(w)
		fmt.Fprint(w, formatter.FormatTasks(tasks, members))
		fmt.Fprintln(w)
		fmt.Fprint(w, formatter.FormatWorkload(workloadRows(load)))
		return nil
	}
	return writeOverview(ctx, w, app, openID)
}
