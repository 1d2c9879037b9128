package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/docspace/internal/cli/formatter"
	"github.com/alexanderramin/docspace/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type approvalsLoadedMsg struct {
	buckets domain.ApprovalBuckets
	err     error
}

// approvalsPanel shows the three review buckets side by side.
type approvalsPanel struct {
	state   *SharedState
	buckets domain.ApprovalBuckets
	loading bool
	err     error

	column int    // 0 disapproved, 1 in review, 2 approved
	rows   [3]int // cursor per column

	// selected is the item open in the review modal.
	selected *domain.ApprovalItem
	flash    string
}

func newApprovalsPanel(state *SharedState) approvalsPanel {
	return approvalsPanel{state: state, column: 1, loading: true}
}

func (p *approvalsPanel) load() tea.Cmd {
	app := p.state.App
	return func() tea.Msg {
		b, err := app.Approvals.Buckets(context.Background())
		return approvalsLoadedMsg{buckets: b, err: err}
	}
}

func (p *approvalsPanel) current() *domain.ApprovalItem {
	items := p.buckets.Column(p.column)
	r := p.rows[p.column]
	if r < 0 || r >= len(items) {
		return nil
	}
	return items[r]
}

func (p *approvalsPanel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case approvalsLoadedMsg:
		p.loading = false
		p.err = msg.err
		if msg.err == nil {
			p.buckets = msg.buckets
		}
		return nil

	case reviewClosedMsg:
		p.selected = nil
		switch {
		case msg.err != nil:
			p.flash = formatter.StyleRed.Render("Error: " + msg.err.Error())
		case msg.decision != nil:
			p.flash = formatter.DecisionBadge(msg.decision.Decision) + " " +
				formatter.Dim("recorded for "+msg.item.Title)
		default:
			p.flash = ""
		}
		return nil

	case tea.KeyMsg:
		return p.updateKey(msg)
	}
	return nil
}

func (p *approvalsPanel) updateKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "left", "h":
		if p.column > 0 {
			p.column--
		}
	case "right", "l":
		if p.column < 2 {
			p.column++
		}
	case "up", "k":
		if p.rows[p.column] > 0 {
			p.rows[p.column]--
		}
	case "down", "j":
		if p.rows[p.column] < len(p.buckets.Column(p.column))-1 {
			p.rows[p.column]++
		}
	case "enter":
		if it := p.current(); it != nil {
			p.selected = it
			p.flash = ""
			return pushView(newReviewView(p.state, it))
		}
	}
	return nil
}

func (p *approvalsPanel) view(width, height int) string {
	if p.loading {
		return "\n  " + formatter.Dim("Loading approvals...")
	}
	if p.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+p.err.Error())
	}

	var b strings.Builder
	b.WriteString("  " + formatter.StyleHeader.Render("Approval Workflow") + "  " +
		formatter.Dim("Review and approve documentation changes") + "\n\n")

	colWidth := max((width-4)/3-2, 18)
	counts := p.buckets.Counts()
	titleStyles := [3]lipgloss.Style{formatter.StyleRed, formatter.StyleYellow, formatter.StyleGreen}

	cols := make([]string, 3)
	for c := 0; c < 3; c++ {
		var col strings.Builder
		heading := titleStyles[c].Bold(true).Render(formatter.BucketTitles[c]) +
			formatter.Dim(fmt.Sprintf(" (%d)", counts[c]))
		col.WriteString(heading + "\n\n")

		items := p.buckets.Column(c)
		if len(items) == 0 {
			col.WriteString(formatter.Dim("Nothing here") + "\n")
		}
		for r, it := range items {
			col.WriteString(p.renderCard(it, colWidth, c == p.column && r == p.rows[c]))
			col.WriteString("\n")
		}

		border := formatter.ColorDim
		if c == p.column {
			border = formatter.ColorHeader
		}
		cols[c] = lipgloss.NewStyle().
			Width(colWidth).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1).
			Render(strings.TrimRight(col.String(), "\n"))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cols...))

	if p.flash != "" {
		b.WriteString("\n  " + p.flash)
	}
	return b.String()
}

func (p *approvalsPanel) renderCard(it *domain.ApprovalItem, width int, focused bool) string {
	title := formatter.Truncate(it.Title, width-2)
	if focused {
		title = formatter.StyleSelected.Render(title)
	} else {
		title = formatter.StyleBold.Render(title)
	}
	lines := []string{
		title,
		formatter.Dim(it.Submitter) + "  " + formatter.PriorityBadge(it.Priority),
		formatter.Dim("Due " + formatter.DueDate(it.DueDate) + " · " + string(it.Type)),
	}
	return strings.Join(lines, "\n") + "\n"
}
