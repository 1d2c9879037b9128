package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/docspace/internal/cli/formatter"
	"github.com/alexanderramin/docspace/internal/domain"
	"github.com/alexanderramin/docspace/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// teamLoadedMsg feeds both the sidebar roster and the team panel.
type teamLoadedMsg struct {
	members  []*domain.TeamMember
	tasks    []*domain.Task
	workload []service.MemberWorkload
	err      error
}

func loadTeam(app *App) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		members, err := app.Team.Members(ctx)
		if err != nil {
			return teamLoadedMsg{err: err}
		}
		tasks, err := app.Team.Tasks(ctx)
		if err != nil {
			return teamLoadedMsg{err: err}
		}
		load, err := app.Team.Workload(ctx)
		return teamLoadedMsg{members: members, tasks: tasks, workload: load, err: err}
	}
}

// teamPanel shows the roster, task list and workload balance. Assignment
// is display-only.
type teamPanel struct {
	members  []*domain.TeamMember
	tasks    []*domain.Task
	workload []service.MemberWorkload
	loading  bool
	err      error

	cursor int
	notice string
}

func newTeamPanel() teamPanel {
	return teamPanel{loading: true}
}

func (p *teamPanel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case teamLoadedMsg:
		p.loading = false
		p.err = msg.err
		if msg.err == nil {
			p.members = msg.members
			p.tasks = msg.tasks
			p.workload = msg.workload
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if p.cursor > 0 {
				p.cursor--
			}
		case "down", "j":
			if p.cursor < len(p.tasks)-1 {
				p.cursor++
			}
		case "a":
			p.notice = "Auto-assign is not available: assignments are read-only."
		case "enter":
			if p.cursor < len(p.tasks) {
				p.notice = fmt.Sprintf("Assigning %q is not available: assignments are read-only.", p.tasks[p.cursor].Title)
			}
		}
	}
	return nil
}

func (p *teamPanel) unassigned() int {
	return domain.CountUnassigned(p.tasks)
}

func (p *teamPanel) view(width, height int) string {
	if p.loading {
		return "\n  " + formatter.Dim("Loading team...")
	}
	if p.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+p.err.Error())
	}

	var b strings.Builder
	b.WriteString("  " + formatter.StyleHeader.Render("Team Management") + "  " +
		formatter.Dim("Members, tasks and workload") + "\n\n")

	left := p.renderMembers()
	right := p.renderTasks(max(width-lipgloss.Width(left)-6, 30))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, indent(left, "  "), "   ", right))
	b.WriteString("\n\n" + indent(p.renderBalance(), "  "))

	if p.notice != "" {
		b.WriteString("\n\n  " + formatter.StyleYellow.Render(p.notice))
	}
	return b.String()
}

func (p *teamPanel) renderMembers() string {
	var b strings.Builder
	b.WriteString(formatter.StyleBold.Render("Team Members") + "\n\n")
	for _, m := range p.members {
		b.WriteString(formatter.AvailabilityDot(m.Availability) + " " +
			formatter.StylePurple.Render(m.Initials) + " " + formatter.StyleBold.Render(m.Name) +
			" " + formatter.Dim(m.Role) + "\n")
		b.WriteString("     " + formatter.Dim(strings.Join(m.Skills, ", ")) + "\n")
		b.WriteString("     " + formatter.RenderWorkloadBar(m, 16) + "\n")
	}
	return b.String()
}

func (p *teamPanel) renderTasks(width int) string {
	var b strings.Builder
	head := formatter.StyleBold.Render("Task Assignment")
	if n := p.unassigned(); n > 0 {
		head += "  " + formatter.StyleYellowBold.Render(fmt.Sprintf("%d unassigned", n))
	}
	head += "  " + formatter.Dim("[a] Auto-assign")
	b.WriteString(head + "\n\n")

	for i, t := range p.tasks {
		title := formatter.Truncate(t.Title, max(width-24, 12))
		marker := "  "
		if i == p.cursor {
			marker = formatter.StyleGreen.Render("▸ ")
			title = formatter.StyleBold.Render(title)
		}
		assignee := formatter.StyleYellow.Render("Unassigned")
		if t.IsAssigned() {
			if m := domain.FindMember(p.members, *t.AssigneeID); m != nil {
				assignee = formatter.StylePurple.Render(m.Initials) + " " + m.Name
			}
		}
		b.WriteString(marker + title + "  " + formatter.TaskStatusPill(t.Status) + "\n")
		b.WriteString("    " + formatter.Dim(string(t.Type)+" · "+formatter.Hours(t.EstimatedHours)) +
			"  " + formatter.PriorityBadge(t.Priority) + "  " + assignee + "\n")
	}
	return b.String()
}

func (p *teamPanel) renderBalance() string {
	var b strings.Builder
	b.WriteString(formatter.StyleBold.Render("Workload Balance") + "\n")
	for _, w := range p.workload {
		b.WriteString(fmt.Sprintf("%-14s %s %s\n",
			formatter.Truncate(w.Member.Name, 14),
			formatter.RenderCompactBar(w.Ratio, 24),
			formatter.Dim(fmt.Sprintf("%3d%%", w.Percent))))
	}
	return b.String()
}
