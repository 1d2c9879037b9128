package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/alexanderramin/docspace/internal/cli/formatter"
	"github.com/alexanderramin/docspace/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ideaSubmittedMsg reports the outcome of an idea submission.
type ideaSubmittedMsg struct {
	idea *domain.Idea
	err  error
}

// landingView collects an idea and hands it to the assistant.
type landingView struct {
	state   *SharedState
	input   textarea.Model
	spinner spinner.Model

	generating bool
	cancel     context.CancelFunc
	err        error
}

func newLandingView(state *SharedState) *landingView {
	ta := textarea.New()
	ta.Placeholder = "Describe your project idea..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 4000
	ta.SetWidth(64)
	ta.SetHeight(5)
	ta.KeyMap.InsertNewline.SetEnabled(false)
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StylePurple

	return &landingView{state: state, input: ta, spinner: sp}
}

func (v *landingView) ID() ViewID    { return ViewLanding }
func (v *landingView) Title() string { return "" }

// CapturesInput is always true: the textarea owns the keyboard.
func (v *landingView) CapturesInput() bool { return true }

func (v *landingView) ShortHelp() []key.Binding {
	if v.generating {
		return []key.Binding{
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "generate")),
		key.NewBinding(key.WithKeys("alt+enter", "ctrl+j"), key.WithHelp("alt+enter", "new line")),
	}
}

func (v *landingView) Init() tea.Cmd {
	return textarea.Blink
}

// canSubmit reports whether the submit action is enabled.
func (v *landingView) canSubmit() bool {
	return !v.generating && !domain.IsBlankIdea(v.input.Value())
}

func (v *landingView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.input.SetWidth(min(max(msg.Width-8, 20), 80))
		return v, nil

	case spinner.TickMsg:
		if !v.generating {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case ideaSubmittedMsg:
		v.generating = false
		if v.cancel != nil {
			v.cancel()
			v.cancel = nil
		}
		if msg.err != nil {
			if !errors.Is(msg.err, context.Canceled) {
				v.err = msg.err
			}
			v.input.Focus()
			return v, nil
		}
		v.state.SetActiveIdea(msg.idea)
		return v, replaceView(newWorkspaceView(v.state))

	case tea.KeyMsg:
		return v.updateKey(msg)
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *landingView) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if v.generating {
		if msg.Type == tea.KeyEsc && v.cancel != nil {
			v.cancel()
		}
		return v, nil
	}

	switch msg.String() {
	case "enter":
		if !v.canSubmit() {
			return v, nil
		}
		return v, v.submit()
	case "alt+enter", "ctrl+j":
		v.input.InsertString("\n")
		return v, nil
	}

	v.err = nil
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *landingView) submit() tea.Cmd {
	text := v.input.Value()
	ctx, cancel := context.WithCancel(context.Background())
	v.cancel = cancel
	v.generating = true
	v.err = nil
	v.input.Blur()

	ideas := v.state.App.Ideas
	return tea.Batch(v.spinner.Tick, func() tea.Msg {
		idea, err := ideas.Submit(ctx, text)
		return ideaSubmittedMsg{idea: idea, err: err}
	})
}

func (v *landingView) View() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + formatter.StyleHeader.Render("What would you like to build?") + "\n")
	b.WriteString("  " + formatter.Dim("Describe your idea and docspace drafts the documentation to go with it.") + "\n\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(formatter.ColorDim).
		Padding(0, 1)
	if !v.generating {
		box = box.BorderForeground(formatter.ColorHeader)
	}
	b.WriteString(indent(box.Render(v.input.View()), "  ") + "\n\n")

	switch {
	case v.generating:
		b.WriteString("  " + v.spinner.View() + " " + formatter.StylePurple.Render("Generating documentation...") + "\n")
	case v.canSubmit():
		b.WriteString("  " + formatter.StyleSelected.Render(" Generate ✦ ") + "\n")
	default:
		b.WriteString("  " + formatter.Dim("[ Generate ✦ ]") + "\n")
	}

	if v.err != nil {
		b.WriteString("\n  " + formatter.StyleRed.Render("Error: "+v.err.Error()) + "\n")
	}
	return b.String()
}

// indent prefixes every line of s.
func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
