package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/docspace/internal/domain"
	"github.com/google/uuid"
)

// Converted is an idea and its sections ready for persistence.
type Converted struct {
	Idea     *domain.Idea
	Sections []*domain.DocumentSection
}

// Convert transforms a validated IdeaImport into domain objects.
// Call ValidateIdeaImport first; Convert assumes the schema is valid.
func Convert(schema *IdeaImport, now time.Time) (*Converted, error) {
	status := domain.IdeaDraft
	if schema.Status != "" {
		st, err := domain.ParseIdeaStatus(schema.Status)
		if err != nil {
			return nil, fmt.Errorf("parsing status: %w", err)
		}
		status = st
	}

	idea := &domain.Idea{
		ID:          uuid.New().String(),
		Name:        schema.Name,
		Status:      status,
		Description: schema.Description,
		Documents:   append([]string(nil), schema.Documents...),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	sections := make([]*domain.DocumentSection, 0, len(schema.Sections))
	for pos, s := range schema.Sections {
		st := domain.SectionNeedsReview
		if s.Status != "" {
			st = domain.SectionStatus(s.Status)
		}
		sections = append(sections, &domain.DocumentSection{
			IdeaID:   idea.ID,
			ID:       sectionID(s),
			Position: pos,
			Title:    s.Title,
			Body:     s.Body,
			Status:   st,
			Comments: s.Comments,
		})
	}

	return &Converted{Idea: idea, Sections: sections}, nil
}
