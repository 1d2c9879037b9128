package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/docspace/internal/cli/formatter"
	"github.com/alexanderramin/docspace/internal/domain"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	tocWidth       = 28
	assistantWidth = 34
)

// documentsLoadedMsg carries the selected idea and its sections.
type documentsLoadedMsg struct {
	ideaID   string
	idea     *domain.Idea
	sections []*domain.DocumentSection
	err      error
}

type suggestionsLoadedMsg struct {
	ideaID      string
	sectionID   string
	suggestions []string
	err         error
}

// documentsPanel shows the selected idea's sections and a read-only editor
// for the current one, with an optional table of contents and assistant.
type documentsPanel struct {
	state *SharedState
	// sidebarW is the sidebar width the workspace currently draws.
	sidebarW int

	ideaID   string
	idea     *domain.Idea
	sections []*domain.DocumentSection
	cursor   int
	loading  bool
	err      error

	editor        viewport.Model
	showTOC       bool
	showAssistant bool
	suggestions   map[string][]string
	suggestErr    error
	notice        string
}

func newDocumentsPanel(state *SharedState) documentsPanel {
	return documentsPanel{
		state:         state,
		sidebarW:      sidebarWidth,
		editor:        viewport.New(40, 10),
		showTOC:       true,
		showAssistant: true,
		suggestions:   map[string][]string{},
	}
}

func (p *documentsPanel) current() *domain.DocumentSection {
	if p.cursor < 0 || p.cursor >= len(p.sections) {
		return nil
	}
	return p.sections[p.cursor]
}

// load fetches ideaID and its sections. An empty ideaID clears the panel.
func (p *documentsPanel) load(ideaID string) tea.Cmd {
	p.ideaID = ideaID
	p.idea = nil
	p.sections = nil
	p.cursor = 0
	p.err = nil
	p.notice = ""
	if ideaID == "" {
		p.loading = false
		return nil
	}
	p.loading = true

	app := p.state.App
	return func() tea.Msg {
		ctx := context.Background()
		idea, err := app.Ideas.GetByID(ctx, ideaID)
		if err != nil {
			return documentsLoadedMsg{ideaID: ideaID, err: err}
		}
		sections, err := app.Documents.Sections(ctx, ideaID)
		return documentsLoadedMsg{ideaID: ideaID, idea: idea, sections: sections, err: err}
	}
}

func (p *documentsPanel) loadSuggestions() tea.Cmd {
	sec := p.current()
	if sec == nil || !p.showAssistant {
		return nil
	}
	if _, ok := p.suggestions[sec.ID]; ok {
		return nil
	}
	app := p.state.App
	ideaID := p.ideaID
	return func() tea.Msg {
		s, err := app.Documents.Suggestions(context.Background(), sec)
		return suggestionsLoadedMsg{ideaID: ideaID, sectionID: sec.ID, suggestions: s, err: err}
	}
}

func (p *documentsPanel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case documentsLoadedMsg:
		if msg.ideaID != p.ideaID {
			return nil
		}
		p.loading = false
		if msg.err != nil {
			p.err = msg.err
			return nil
		}
		p.idea = msg.idea
		p.sections = msg.sections
		p.cursor = 0
		p.suggestions = map[string][]string{}
		p.refreshEditor()
		return p.loadSuggestions()

	case suggestionsLoadedMsg:
		if msg.ideaID != p.ideaID {
			return nil
		}
		if msg.err != nil {
			p.suggestErr = msg.err
			return nil
		}
		p.suggestErr = nil
		p.suggestions[msg.sectionID] = msg.suggestions
		return nil

	case tea.KeyMsg:
		return p.updateKey(msg)
	}
	return nil
}

func (p *documentsPanel) updateKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
			p.refreshEditor()
			return p.loadSuggestions()
		}
	case "down", "j":
		if p.cursor < len(p.sections)-1 {
			p.cursor++
			p.refreshEditor()
			return p.loadSuggestions()
		}
	case "pgdown", "pgup", "ctrl+d", "ctrl+u":
		var cmd tea.Cmd
		p.editor, cmd = p.editor.Update(msg)
		return cmd
	case "a":
		p.showAssistant = !p.showAssistant
		p.refreshEditor()
		return p.loadSuggestions()
	case "c":
		p.showTOC = !p.showTOC
		p.refreshEditor()
	case "s", "e", "x":
		p.notice = "Share, edit and export are read-only here. Use `docspace doc export`."
	default:
		// The editor is read-only: other input is discarded.
	}
	return nil
}

// editorWidth is what remains after the optional side columns.
func (p *documentsPanel) editorWidth(total int) int {
	w := total
	if p.showTOC {
		w -= tocWidth + 1
	}
	if p.showAssistant {
		w -= assistantWidth + 1
	}
	return max(w-4, 20)
}

func (p *documentsPanel) refreshEditor() {
	total := p.state.ContentWidth() - p.sidebarW - 2
	p.editor.Width = p.editorWidth(total)
	p.editor.Height = max(p.state.ContentHeight()-8, 5)
	sec := p.current()
	if sec == nil {
		p.editor.SetContent("")
		return
	}
	p.editor.SetContent(formatter.RenderMarkdown(sec.Body, p.editor.Width))
	p.editor.GotoTop()
}

func (p *documentsPanel) view(width, height int) string {
	if p.ideaID == "" {
		return "\n  " + formatter.Dim("No idea selected. Press b to submit one.")
	}
	if p.loading {
		return "\n  " + formatter.Dim("Loading documents...")
	}
	if p.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+p.err.Error())
	}

	var b strings.Builder
	b.WriteString(p.renderHeader(width))
	b.WriteString("\n")

	if len(p.sections) == 0 {
		b.WriteString("  " + formatter.Dim("This idea has no sections yet.") + "\n")
		return b.String()
	}

	var cols []string
	if p.showTOC {
		cols = append(cols, p.renderTOC())
	}
	cols = append(cols, p.renderEditor())
	if p.showAssistant {
		cols = append(cols, p.renderAssistant())
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cols...))

	if p.notice != "" {
		b.WriteString("\n  " + formatter.StyleYellow.Render(p.notice))
	}
	return b.String()
}

func (p *documentsPanel) renderHeader(width int) string {
	idea := p.idea
	var b strings.Builder
	b.WriteString("  " + formatter.StyleHeader.Render(idea.Name) + "  " + formatter.IdeaStatusBadge(idea.Status))
	b.WriteString("  " + formatter.Dim("Updated "+formatter.UpdatedAgo(idea.UpdatedAt)) + "\n")
	if len(idea.Documents) > 0 {
		b.WriteString("  " + formatter.Dim("Documents: "+strings.Join(idea.Documents, " · ")) + "\n")
	}
	if desc := strings.TrimSpace(idea.Description); desc != "" {
		b.WriteString(indent(formatter.Wrap(formatter.StyleFg.Render(desc), max(width-4, 20)), "  ") + "\n")
	}
	return b.String()
}

func (p *documentsPanel) renderTOC() string {
	var b strings.Builder
	b.WriteString(formatter.StyleBold.Render("Table of Contents") + "\n")
	for i, s := range p.sections {
		title := formatter.Truncate(s.Title, tocWidth-4)
		line := formatter.SectionStatusIcon(s.Status) + " " + title
		if i == p.cursor {
			line = formatter.StyleGreen.Render("▸") + formatter.SectionStatusIcon(s.Status) + " " + formatter.StyleBold.Render(title)
		} else {
			line = " " + line
		}
		b.WriteString(line + "\n")
		if s.Comments > 0 {
			b.WriteString("   " + formatter.Dim(fmt.Sprintf("%d comments", s.Comments)) + "\n")
		}
	}
	return lipgloss.NewStyle().Width(tocWidth).PaddingLeft(2).MarginRight(1).Render(b.String())
}

func (p *documentsPanel) renderEditor() string {
	sec := p.current()
	head := formatter.StyleBold.Render(sec.Title) + "  " + formatter.SectionStatusBadge(sec.Status) +
		"  " + formatter.Dim("read-only")
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(formatter.ColorDim).
		Padding(0, 1)
	return box.Render(head + "\n\n" + p.editor.View())
}

func (p *documentsPanel) renderAssistant() string {
	var b strings.Builder
	b.WriteString(formatter.StylePurple.Render("✦ AI Assistant") + "\n\n")
	sec := p.current()
	switch {
	case p.suggestErr != nil:
		b.WriteString(formatter.StyleRed.Render(formatter.Wrap(p.suggestErr.Error(), assistantWidth-2)) + "\n")
	case sec == nil:
	default:
		suggestions, ok := p.suggestions[sec.ID]
		if !ok {
			b.WriteString(formatter.Dim("Thinking...") + "\n")
			break
		}
		b.WriteString(formatter.Dim("Suggestions") + "\n")
		for _, s := range suggestions {
			b.WriteString(formatter.StyleYellow.Render("• ") + formatter.Wrap(s, assistantWidth-4) + "\n")
		}
	}
	return lipgloss.NewStyle().Width(assistantWidth).MarginLeft(1).Render(b.String())
}
