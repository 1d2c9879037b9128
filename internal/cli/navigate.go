package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/docspace/internal/domain"
)

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// replaceViewMsg replaces the current top view with a new one.
type replaceViewMsg struct {
	view View
}

// reviewClosedMsg is sent when the review modal closes. The appModel pops
// the modal and forwards the message to the view underneath.
type reviewClosedMsg struct {
	item     *domain.ApprovalItem
	decision *domain.ApprovalDecision // nil on cancel
	err      error
}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func replaceView(v View) tea.Cmd {
	return func() tea.Msg { return replaceViewMsg{view: v} }
}
