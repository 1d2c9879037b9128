package cli

import (
	"errors"
	"strings"

	"github.com/alexanderramin/docspace/internal/cli/formatter"
	"github.com/alexanderramin/docspace/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// docspaceHuhTheme returns a huh theme using the formatter palette.
func docspaceHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateIdeaText(s string) error {
	if domain.IsBlankIdea(s) {
		return errors.New("describe your idea first")
	}
	return nil
}

// ideaTextForm asks for the idea text.
func ideaTextForm(value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("What would you like to build?").
				Description("Describe your project idea. Documentation is drafted from it.").
				Placeholder("A mobile app that helps teams plan sprints...").
				CharLimit(4000).
				Value(value).
				Validate(validateIdeaText),
		),
	).WithTheme(docspaceHuhTheme()).WithShowHelp(false)
}

// decisionForm asks for a review decision and an optional comment.
func decisionForm(item *domain.ApprovalItem, decision *domain.Decision, comment *string) *huh.Form {
	options := make([]huh.Option[domain.Decision], 0, len(domain.Decisions))
	for _, d := range domain.Decisions {
		options = append(options, huh.NewOption(d.Label(), d))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.Decision]().
				Title("Review: "+item.Title).
				Description(strings.TrimSpace(item.Description)).
				Options(options...).
				Value(decision),
			huh.NewText().
				Title("Comment").
				Placeholder("Optional feedback for the submitter").
				Value(comment),
		),
	).WithTheme(docspaceHuhTheme()).WithShowHelp(false)
}
