package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/docspace/internal/cli/formatter"
	"github.com/alexanderramin/docspace/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	sidebarWidth          = 30
	sidebarCollapsedWidth = 6
)

// sidebar lists ideas and team members. Filter, search and expansion
// state are local to it.
type sidebar struct {
	ideas   []*domain.Idea
	members []*domain.TeamMember
	err     error

	filter    domain.IdeaFilter
	searching bool
	query     string

	collapsed  bool
	ideasOpen  bool
	teamOpen   bool
	selectedID string
}

func newSidebar(selectedID string) sidebar {
	return sidebar{ideasOpen: true, teamOpen: true, selectedID: selectedID}
}

// visibleIdeas applies the status filter, then the name search.
func (s *sidebar) visibleIdeas() []*domain.Idea {
	return domain.SearchIdeas(domain.FilterIdeas(s.ideas, s.filter), s.query)
}

func (s *sidebar) selected() *domain.Idea {
	for _, i := range s.ideas {
		if i.ID == s.selectedID {
			return i
		}
	}
	return nil
}

// move selects the visible idea delta positions away from the current one.
// It reports whether the selection changed.
func (s *sidebar) move(delta int) bool {
	visible := s.visibleIdeas()
	if len(visible) == 0 {
		return false
	}
	idx := -1
	for i, idea := range visible {
		if idea.ID == s.selectedID {
			idx = i
		}
	}
	next := 0
	if idx >= 0 {
		next = min(max(idx+delta, 0), len(visible)-1)
	}
	if visible[next].ID == s.selectedID {
		return false
	}
	s.selectedID = visible[next].ID
	return true
}

// updateSearch edits the search query. It mirrors the project list filter:
// esc clears, enter keeps the query.
func (s *sidebar) updateSearch(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyEsc:
		s.searching = false
		s.query = ""
	case tea.KeyEnter:
		s.searching = false
	case tea.KeyBackspace:
		if len(s.query) > 0 {
			r := []rune(s.query)
			s.query = string(r[:len(r)-1])
		}
	case tea.KeyRunes:
		s.query += string(msg.Runes)
	case tea.KeySpace:
		s.query += " "
	}
}

func (s *sidebar) width() int {
	if s.collapsed {
		return sidebarCollapsedWidth
	}
	return sidebarWidth
}

func (s *sidebar) View(height int) string {
	style := lipgloss.NewStyle().
		Width(s.width()).
		Height(max(height, 1)).
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(formatter.ColorDim)

	if s.collapsed {
		return style.Render(s.collapsedView())
	}
	return style.Render(s.expandedView())
}

func (s *sidebar) collapsedView() string {
	var b strings.Builder
	b.WriteString(" " + formatter.StylePurple.Render("◆") + "\n\n")
	for _, i := range s.visibleIdeas() {
		initial := i.Initial()
		if i.ID == s.selectedID {
			initial = formatter.StyleSelected.Render(initial)
		} else {
			initial = formatter.IdeaStatusStyle(i.Status).Render(initial)
		}
		b.WriteString(" " + initial + "\n")
	}
	b.WriteString("\n")
	for _, m := range s.members {
		b.WriteString(" " + formatter.AvailabilityDot(m.Availability) + formatter.Dim(m.Initials) + "\n")
	}
	return b.String()
}

func (s *sidebar) expandedView() string {
	var b strings.Builder
	inner := sidebarWidth - 2

	arrow := func(open bool) string {
		if open {
			return "▾"
		}
		return "▸"
	}

	visible := s.visibleIdeas()
	b.WriteString(" " + formatter.StyleHeader.Render(arrow(s.ideasOpen)+" Ideas") +
		formatter.Dim(fmt.Sprintf(" (%d)", len(visible))) + "\n")
	if s.ideasOpen {
		b.WriteString(" " + formatter.Dim("Filter: ") + filterLabel(s.filter) + "\n")
		if s.searching || s.query != "" {
			cursor := ""
			if s.searching {
				cursor = "█"
			}
			b.WriteString(" " + formatter.StyleYellow.Render("/") + " " + s.query + cursor + "\n")
		}
		if s.err != nil {
			b.WriteString(" " + formatter.StyleRed.Render(formatter.Truncate(s.err.Error(), inner)) + "\n")
		}
		if len(visible) == 0 && s.err == nil {
			b.WriteString(" " + formatter.Dim("No ideas match.") + "\n")
		}
		for _, i := range visible {
			marker := "  "
			name := formatter.StyleFg.Render(formatter.Truncate(i.Name, inner-2))
			if i.ID == s.selectedID {
				marker = formatter.StyleGreen.Render("▸ ")
				name = formatter.StyleBold.Render(formatter.Truncate(i.Name, inner-2))
			}
			b.WriteString(" " + marker + name + "\n")
			b.WriteString("   " + formatter.IdeaStatusBadge(i.Status) + " " +
				formatter.Dim(formatter.UpdatedAgo(i.UpdatedAt)) + "\n")
		}
	}

	b.WriteString("\n " + formatter.StyleHeader.Render(arrow(s.teamOpen)+" Team") +
		formatter.Dim(fmt.Sprintf(" (%d)", len(s.members))) + "\n")
	if s.teamOpen {
		for _, m := range s.members {
			b.WriteString(" " + formatter.AvailabilityDot(m.Availability) + " " +
				formatter.Truncate(m.Name, inner-12) + " " +
				formatter.RenderCompactBar(m.WorkloadRatio(), 8) + "\n")
		}
	}
	return b.String()
}

func filterLabel(f domain.IdeaFilter) string {
	if f.IsAll() {
		return formatter.StyleFg.Render("All")
	}
	return formatter.IdeaStatusBadge(f.Status)
}
