package cli

import (
	"fmt"

	"github.com/alexanderramin/docspace/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

// StartOptions selects where the workspace program opens. The zero value
// starts on the landing view.
type StartOptions struct {
	IdeaID string
	View   domain.WorkspaceView
}

// skipsLanding reports whether the program opens straight in the workspace.
func (o StartOptions) skipsLanding() bool {
	return o.IdeaID != "" || o.View != ""
}

// runTUI runs the workspace program on the alternate screen.
func runTUI(app *App, start StartOptions) error {
	p := tea.NewProgram(newAppModel(app, start), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running workspace: %w", err)
	}
	return nil
}
