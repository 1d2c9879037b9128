package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/docspace/internal/domain"
)

// BucketTitles are the approval column headings, in column order.
var BucketTitles = [3]string{"Disapproved", "In Review", "Approved"}

// FormatApprovals renders the three approval buckets with their counts.
func FormatApprovals(b domain.ApprovalBuckets) string {
	var out strings.Builder
	counts := b.Counts()
	for col := 0; col < 3; col++ {
		out.WriteString(Header(fmt.Sprintf("%s (%d)", BucketTitles[col], counts[col])) + "\n")
		items := b.Column(col)
		if len(items) == 0 {
			out.WriteString(Dim("  nothing here") + "\n\n")
			continue
		}
		rows := make([][]string, 0, len(items))
		for _, it := range items {
			rows = append(rows, []string{
				it.ID,
				Bold(it.Title),
				it.Submitter,
				DueDate(it.DueDate),
				PriorityBadge(it.Priority),
				string(it.Type),
			})
		}
		out.WriteString(RenderTable([]string{"ID", "TITLE", "SUBMITTER", "DUE", "PRIORITY", "TYPE"}, rows))
		out.WriteString("\n")
	}
	return out.String()
}

// FormatDecision confirms a recorded decision.
func FormatDecision(item *domain.ApprovalItem, d *domain.ApprovalDecision) string {
	msg := fmt.Sprintf("%s %s for %s", StyleGreen.Render("✔"), DecisionBadge(d.Decision), Bold(item.Title))
	if d.Comment != "" {
		msg += "\n  " + Dim("Comment: ") + d.Comment
	}
	return msg + "\n" + Dim("  Recorded in the review journal. Item status is unchanged.") + "\n"
}

// FormatHistory renders an item's decision journal.
func FormatHistory(item *domain.ApprovalItem, history []*domain.ApprovalDecision) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", Bold(item.Title), ApprovalStatusBadge(item.Status))
	if len(history) == 0 {
		b.WriteString(Dim("No decisions recorded.") + "\n")
		return b.String()
	}
	rows := make([][]string, 0, len(history))
	for _, d := range history {
		rows = append(rows, []string{
			d.DecidedAt.Local().Format("2006-01-02 15:04"),
			DecisionBadge(d.Decision),
			d.Comment,
		})
	}
	b.WriteString(RenderTable([]string{"WHEN", "DECISION", "COMMENT"}, rows))
	return b.String()
}
