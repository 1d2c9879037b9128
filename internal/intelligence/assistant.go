// Package intelligence drafts documentation skeletons and section
// suggestions, either locally or through a language model.
package intelligence

import (
	"context"

	"github.com/alexanderramin/docspace/internal/domain"
)

// Draft is a generated documentation skeleton for a submitted idea.
type Draft struct {
	Name      string         `json:"name"`
	Documents []string       `json:"documents"`
	Sections  []DraftSection `json:"sections"`
}

type DraftSection struct {
	ID     string               `json:"id"`
	Title  string               `json:"title"`
	Body   string               `json:"body"`
	Status domain.SectionStatus `json:"-"`
}

// Assistant turns an idea into documentation and proposes edits.
type Assistant interface {
	// DraftDocumentation builds a skeleton for description. It blocks until
	// the draft is ready or ctx is done.
	DraftDocumentation(ctx context.Context, description string) (*Draft, error)

	// Suggest proposes improvements for one section.
	Suggest(ctx context.Context, section *domain.DocumentSection) ([]string, error)
}
