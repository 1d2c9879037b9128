package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/docspace/internal/domain"
)

// FormatIdeaList renders the ideas table shown by `idea list`.
func FormatIdeaList(ideas []*domain.Idea, filter domain.IdeaFilter) string {
	if len(ideas) == 0 {
		if filter.IsAll() {
			return Dim("No ideas yet. Submit one with `docspace idea submit`.") + "\n"
		}
		return Dim(fmt.Sprintf("No ideas with status %s.", filter.Label())) + "\n"
	}

	rows := make([][]string, 0, len(ideas))
	for _, i := range ideas {
		rows = append(rows, []string{
			TruncID(i.ID),
			Bold(i.Name),
			IdeaStatusBadge(i.Status),
			strings.Join(i.Documents, ", "),
			Dim(UpdatedAgo(i.UpdatedAt)),
		})
	}
	title := "Ideas"
	if !filter.IsAll() {
		title += " · " + filter.Label()
	}
	return Header(title) + "\n" +
		RenderTable([]string{"ID", "NAME", "STATUS", "DOCUMENTS", "UPDATED"}, rows)
}

// FormatIdea renders one idea with its section outline.
func FormatIdea(idea *domain.Idea, sections []*domain.DocumentSection) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", Bold(idea.Name), IdeaStatusBadge(idea.Status))
	fmt.Fprintf(&b, "%s %s\n", Dim("ID:"), idea.ID)
	fmt.Fprintf(&b, "%s %s\n", Dim("Documents:"), strings.Join(idea.Documents, ", "))
	fmt.Fprintf(&b, "%s %s\n", Dim("Updated:"), UpdatedAgo(idea.UpdatedAt))
	if desc := strings.TrimSpace(idea.Description); desc != "" {
		b.WriteString("\n" + Wrap(desc, 72) + "\n")
	}
	if len(sections) > 0 {
		b.WriteString("\n" + FormatSectionTree(idea, sections))
	}
	return RenderBox("Idea", strings.TrimRight(b.String(), "\n"))
}

// FormatSectionTree lists an idea's sections under it.
func FormatSectionTree(idea *domain.Idea, sections []*domain.DocumentSection) string {
	items := []TreeItem{{Title: Bold(idea.Name)}}
	for i, s := range sections {
		detail := string(s.Status)
		if s.Comments > 0 {
			detail += fmt.Sprintf(", %d comments", s.Comments)
		}
		items = append(items, TreeItem{
			Title:  s.Title + " " + Dim("("+s.ID+")"),
			Icon:   SectionStatusIcon(s.Status),
			Level:  1,
			IsLast: i == len(sections)-1,
			Detail: detail,
		})
	}
	return RenderTree(items)
}

// FormatSection renders one section body as terminal markdown.
func FormatSection(s *domain.DocumentSection, width int) string {
	head := fmt.Sprintf("%s  %s", StyleHeader.Render(s.Title), SectionStatusBadge(s.Status))
	if s.Comments > 0 {
		head += Dim(fmt.Sprintf("  %d comments", s.Comments))
	}
	return head + "\n\n" + RenderMarkdown(s.Body, width) + "\n"
}

// FormatSuggestions renders assistant suggestions for a section.
func FormatSuggestions(section *domain.DocumentSection, suggestions []string) string {
	var b strings.Builder
	b.WriteString(StylePurple.Render("✦ Suggestions for \"" + section.Title + "\"") + "\n")
	for _, s := range suggestions {
		b.WriteString("  " + StyleYellow.Render("•") + " " + s + "\n")
	}
	return b.String()
}
