package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/docspace/internal/domain"
)

// FormatMembers renders the team roster.
func FormatMembers(members []*domain.TeamMember) string {
	rows := make([][]string, 0, len(members))
	for _, m := range members {
		rows = append(rows, []string{
			AvailabilityDot(m.Availability) + " " + StylePurple.Render(m.Initials),
			Bold(m.Name),
			m.Role,
			strings.Join(m.Skills, ", "),
			RenderWorkloadBar(m, 10),
		})
	}
	return Header("Team") + "\n" +
		RenderTable([]string{"", "NAME", "ROLE", "SKILLS", "WORKLOAD"}, rows)
}

// FormatTasks renders the task list with assignee names resolved.
func FormatTasks(tasks []*domain.Task, members []*domain.TeamMember) string {
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		assignee := StyleYellow.Render("Unassigned")
		if t.IsAssigned() {
			if m := domain.FindMember(members, *t.AssigneeID); m != nil {
				assignee = m.Name
			}
		}
		rows = append(rows, []string{
			t.ID,
			Bold(t.Title),
			string(t.Type),
			Hours(t.EstimatedHours),
			PriorityBadge(t.Priority),
			assignee,
			TaskStatusPill(t.Status),
		})
	}
	return Header(fmt.Sprintf("Tasks (%d unassigned)", domain.CountUnassigned(tasks))) + "\n" +
		RenderTable([]string{"ID", "TITLE", "TYPE", "EST", "PRIORITY", "ASSIGNEE", "STATUS"}, rows)
}

// WorkloadRow is the formatter's view of one member's load.
type WorkloadRow struct {
	Member      *domain.TeamMember
	ActiveTasks int
}

// FormatWorkload renders the workload balance strip.
func FormatWorkload(rows []WorkloadRow) string {
	var b strings.Builder
	b.WriteString(Header("Workload Balance") + "\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "%-16s %s  %s\n",
			r.Member.Name,
			RenderWorkloadBar(r.Member, 20),
			Dim(fmt.Sprintf("%dh/%dh, %d active", r.Member.WorkloadHours, r.Member.CapacityHours, r.ActiveTasks)))
	}
	return b.String()
}
