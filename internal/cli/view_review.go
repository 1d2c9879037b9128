package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/docspace/internal/cli/formatter"
	"github.com/alexanderramin/docspace/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// reviewButtons is the modal's action row. Index 0 cancels; the rest map
// onto domain.Decisions in order.
var reviewButtons = []string{"Cancel", "Disapprove", "Partial Approval", "Approve"}

// reviewView is the modal opened from the approval board. It records a
// decision and closes; the item itself is left where it is.
type reviewView struct {
	state   *SharedState
	item    *domain.ApprovalItem
	comment textarea.Model

	onButtons bool
	button    int
	busy      bool
}

func newReviewView(state *SharedState, item *domain.ApprovalItem) *reviewView {
	ta := textarea.New()
	ta.Placeholder = "Add a review comment..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 2000
	ta.SetWidth(56)
	ta.SetHeight(4)
	ta.Focus()
	return &reviewView{state: state, item: item, comment: ta, button: len(reviewButtons) - 1}
}

func (v *reviewView) ID() ViewID    { return ViewReview }
func (v *reviewView) Title() string { return "Review" }

// CapturesInput keeps q and esc away from the global bindings while the
// modal is open.
func (v *reviewView) CapturesInput() bool { return true }

func (v *reviewView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "comment/buttons")),
		key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←→", "choose")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (v *reviewView) Init() tea.Cmd {
	return textarea.Blink
}

func (v *reviewView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		v.comment, cmd = v.comment.Update(msg)
		return v, cmd
	}
	if v.busy {
		return v, nil
	}

	switch km.String() {
	case "esc":
		return v, v.close(0)
	case "tab", "shift+tab":
		v.onButtons = !v.onButtons
		if v.onButtons {
			v.comment.Blur()
		} else {
			v.comment.Focus()
		}
		return v, nil
	}

	if !v.onButtons {
		var cmd tea.Cmd
		v.comment, cmd = v.comment.Update(km)
		return v, cmd
	}

	switch km.String() {
	case "left", "h":
		if v.button > 0 {
			v.button--
		}
	case "right", "l":
		if v.button < len(reviewButtons)-1 {
			v.button++
		}
	case "enter", " ":
		return v, v.close(v.button)
	}
	return v, nil
}

// close runs the chosen action. Either way the comment is cleared and the
// app pops the modal on reviewClosedMsg.
func (v *reviewView) close(button int) tea.Cmd {
	item := v.item
	comment := strings.TrimSpace(v.comment.Value())
	v.comment.Reset()

	if button == 0 {
		return func() tea.Msg { return reviewClosedMsg{item: item} }
	}

	v.busy = true
	decision := domain.Decisions[button-1]
	approvals := v.state.App.Approvals
	return func() tea.Msg {
		rec, err := approvals.Decide(context.Background(), item.ID, decision, comment)
		return reviewClosedMsg{item: item, decision: rec, err: err}
	}
}

func (v *reviewView) View() string {
	it := v.item
	var b strings.Builder
	b.WriteString(formatter.StyleHeader.Render("Review: "+it.Title) + "\n\n")
	b.WriteString(formatter.Dim("Submitted by ") + it.Submitter +
		formatter.Dim(" · Due ") + formatter.DueDate(it.DueDate) +
		"  " + formatter.PriorityBadge(it.Priority) + "  " + formatter.ApprovalStatusBadge(it.Status) + "\n\n")
	if desc := strings.TrimSpace(it.Description); desc != "" {
		b.WriteString(formatter.Wrap(desc, 56) + "\n\n")
	}

	b.WriteString(formatter.StyleBold.Render("Comment") + "\n")
	b.WriteString(v.comment.View() + "\n\n")

	buttons := make([]string, len(reviewButtons))
	for i, label := range reviewButtons {
		style := lipgloss.NewStyle().Padding(0, 1).Foreground(formatter.ColorDim)
		if v.onButtons && i == v.button {
			style = style.Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Bold(true)
		} else if i > 0 {
			style = style.Foreground(buttonColor(domain.Decisions[i-1]))
		}
		buttons[i] = style.Render(label)
	}
	b.WriteString(strings.Join(buttons, " "))
	if v.busy {
		b.WriteString("\n\n" + formatter.Dim("Recording decision..."))
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(formatter.ColorHeader).
		Padding(1, 2).
		Render(b.String())
	return lipgloss.Place(v.state.ContentWidth(), v.state.ContentHeight(), lipgloss.Center, lipgloss.Center, modal)
}

func buttonColor(d domain.Decision) lipgloss.Color {
	switch d {
	case domain.DecisionApprove:
		return formatter.ColorGreen
	case domain.DecisionPartial:
		return formatter.ColorYellow
	}
	return formatter.ColorRed
}
