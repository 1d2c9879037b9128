package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/alexanderramin/docspace/internal/cli/formatter"
	"github.com/alexanderramin/docspace/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type ideasLoadedMsg struct {
	ideas []*domain.Idea
	err   error
}

// workspaceView is the shell around the sidebar and exactly one panel.
type workspaceView struct {
	state  *SharedState
	active domain.WorkspaceView

	sidebar   sidebar
	documents documentsPanel
	approvals approvalsPanel
	team      teamPanel
}

func newWorkspaceView(state *SharedState) *workspaceView {
	return &workspaceView{
		state:     state,
		active:    domain.ViewDocuments,
		sidebar:   newSidebar(state.ActiveIdeaID),
		documents: newDocumentsPanel(state),
		approvals: newApprovalsPanel(state),
		team:      newTeamPanel(),
	}
}

func (v *workspaceView) ID() ViewID    { return ViewWorkspace }
func (v *workspaceView) Title() string { return v.active.Label() }

// CapturesInput is true while the sidebar search is being typed.
func (v *workspaceView) CapturesInput() bool { return v.sidebar.searching }

func (v *workspaceView) ShortHelp() []key.Binding {
	if v.sidebar.searching {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "keep")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		}
	}
	hints := []key.Binding{
		key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1-3", "view")),
		key.NewBinding(key.WithKeys("J", "K"), key.WithHelp("J/K", "idea")),
		key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		key.NewBinding(key.WithKeys("["), key.WithHelp("[", "sidebar")),
	}
	switch v.active {
	case domain.ViewDocuments:
		hints = append(hints,
			key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "assistant")),
			key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "contents")))
	case domain.ViewApproval:
		hints = append(hints, key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "review")))
	case domain.ViewTeam:
		hints = append(hints, key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "auto-assign")))
	}
	return append(hints, key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "new idea")))
}

func (v *workspaceView) Init() tea.Cmd {
	app := v.state.App
	loadIdeas := func() tea.Msg {
		ideas, err := app.Ideas.List(context.Background(), domain.IdeaFilter{})
		return ideasLoadedMsg{ideas: ideas, err: err}
	}
	return tea.Batch(
		loadIdeas,
		v.documents.load(v.state.ActiveIdeaID),
		v.approvals.load(),
		loadTeam(app),
	)
}

func (v *workspaceView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.resizeEditor()
		return v, nil

	case ideasLoadedMsg:
		v.sidebar.err = msg.err
		if msg.err != nil {
			return v, nil
		}
		v.sidebar.ideas = msg.ideas
		if v.state.ActiveIdeaID == "" && len(msg.ideas) > 0 {
			return v, v.selectIdea(msg.ideas[0])
		}
		if sel := v.sidebar.selected(); sel != nil {
			v.state.SetActiveIdea(sel)
		}
		return v, nil

	case teamLoadedMsg:
		if msg.err == nil {
			v.sidebar.members = msg.members
		}
		return v, v.team.update(msg)

	case documentsLoadedMsg, suggestionsLoadedMsg:
		return v, v.documents.update(msg)

	case approvalsLoadedMsg, reviewClosedMsg:
		return v, v.approvals.update(msg)

	case tea.KeyMsg:
		return v.updateKey(msg)
	}
	return v, nil
}

func (v *workspaceView) resizeEditor() {
	v.documents.sidebarW = v.sidebar.width()
	v.documents.refreshEditor()
}

func (v *workspaceView) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if v.sidebar.searching {
		v.sidebar.updateSearch(msg)
		return v, nil
	}

	switch msg.String() {
	case "1":
		v.active = domain.ViewDocuments
		return v, nil
	case "2":
		v.active = domain.ViewApproval
		return v, nil
	case "3":
		v.active = domain.ViewTeam
		return v, nil
	case "tab":
		v.active = v.active.Next()
		return v, nil
	case "[":
		v.sidebar.collapsed = !v.sidebar.collapsed
		v.resizeEditor()
		return v, nil
	case "f":
		v.sidebar.filter = v.sidebar.filter.Next()
		return v, nil
	case "/":
		v.sidebar.searching = true
		v.sidebar.query = ""
		return v, nil
	case "i":
		v.sidebar.ideasOpen = !v.sidebar.ideasOpen
		return v, nil
	case "t":
		v.sidebar.teamOpen = !v.sidebar.teamOpen
		return v, nil
	case "J", "K":
		delta := 1
		if msg.String() == "K" {
			delta = -1
		}
		if v.sidebar.move(delta) {
			v.active = domain.ViewDocuments
			return v, v.selectIdea(v.sidebar.selected())
		}
		return v, nil
	case "b":
		v.state.ClearIdea()
		return v, replaceView(newLandingView(v.state))
	}

	switch v.active {
	case domain.ViewDocuments:
		return v, v.documents.update(msg)
	case domain.ViewApproval:
		return v, v.approvals.update(msg)
	case domain.ViewTeam:
		return v, v.team.update(msg)
	}
	return v, nil
}

// selectIdea makes idea the active one and reloads the documents panel.
func (v *workspaceView) selectIdea(idea *domain.Idea) tea.Cmd {
	v.state.SetActiveIdea(idea)
	v.sidebar.selectedID = v.state.ActiveIdeaID
	return v.documents.load(v.state.ActiveIdeaID)
}

func (v *workspaceView) View() string {
	height := v.state.ContentHeight()
	width := v.state.ContentWidth() - v.sidebar.width() - 2

	main := v.renderTabs() + "\n" + v.renderPanel(width, height-2)
	return lipgloss.JoinHorizontal(lipgloss.Top, v.sidebar.View(height), " ", main)
}

func (v *workspaceView) renderTabs() string {
	tabs := make([]string, 0, len(domain.WorkspaceViews))
	for i, wv := range domain.WorkspaceViews {
		label := string(rune('1'+i)) + " " + wv.Label()
		if wv == domain.ViewApproval {
			if n := v.approvals.buckets.Counts()[1]; n > 0 {
				label += " •" + strconv.Itoa(n)
			}
		}
		if wv == v.active {
			tabs = append(tabs, formatter.StyleSelected.Render(" "+label+" "))
		} else {
			tabs = append(tabs, formatter.Dim(" "+label+" "))
		}
	}
	return strings.Join(tabs, " ")
}

// renderPanel draws only the active panel.
func (v *workspaceView) renderPanel(width, height int) string {
	switch v.active {
	case domain.ViewApproval:
		return v.approvals.view(width, height)
	case domain.ViewTeam:
		return v.team.view(width, height)
	default:
		return v.documents.view(width, height)
	}
}
