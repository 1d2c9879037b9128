package cli

import "github.com/alexanderramin/docspace/internal/domain"

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Selected idea, if any.
	ActiveIdeaID   string
	ActiveIdeaName string

	// Terminal dimensions
	Width  int
	Height int
}

// SetActiveIdea selects idea for the workspace.
func (s *SharedState) SetActiveIdea(idea *domain.Idea) {
	if idea == nil {
		s.ClearIdea()
		return
	}
	s.ActiveIdeaID = idea.ID
	s.ActiveIdeaName = idea.Name
}

func (s *SharedState) ClearIdea() {
	s.ActiveIdeaID = ""
	s.ActiveIdeaName = ""
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and
// status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	return max(s.Height-4, 1)
}

// ContentWidth is the terminal width with a sane default before the first
// WindowSizeMsg.
func (s *SharedState) ContentWidth() int {
	if s.Width <= 0 {
		return 100
	}
	return s.Width
}
