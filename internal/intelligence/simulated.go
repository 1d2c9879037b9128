package intelligence

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/alexanderramin/docspace/internal/domain"
)

const maxNameWords = 4

var defaultSuggestions = []string{
	"Add technical specifications for scalability requirements",
	"Include performance benchmarks and metrics",
	"Add risk assessment and mitigation strategies",
}

// SimulatedAssistant produces a fixed skeleton after Delay.
type SimulatedAssistant struct {
	Delay time.Duration
}

func NewSimulatedAssistant(delay time.Duration) *SimulatedAssistant {
	return &SimulatedAssistant{Delay: delay}
}

func (a *SimulatedAssistant) DraftDocumentation(ctx context.Context, description string) (*Draft, error) {
	if err := wait(ctx, a.Delay); err != nil {
		return nil, err
	}
	return DeterministicDraft(description), nil
}

func (a *SimulatedAssistant) Suggest(ctx context.Context, _ *domain.DocumentSection) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return DeterministicSuggestions(), nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// DeterministicDraft is the skeleton used without a model, and whenever
// the model reply is unusable.
func DeterministicDraft(description string) *Draft {
	desc := strings.TrimSpace(description)
	return &Draft{
		Name:      NameFromDescription(desc),
		Documents: []string{"Proposal", "SRS", "Architecture"},
		Sections: []DraftSection{
			{
				ID:     "executive-summary",
				Title:  "Executive Summary",
				Body:   desc,
				Status: domain.SectionNeedsReview,
			},
			{
				ID:     "objectives",
				Title:  "Project Objectives",
				Body:   "1. Define the core problem and target users\n2. Agree on measurable success criteria\n3. Identify the first deliverable",
				Status: domain.SectionNeedsReview,
			},
			{
				ID:     "requirements",
				Title:  "Requirements Specification",
				Body:   "Functional Requirements:\n\n- To be gathered with stakeholders\n\nNon-functional Requirements:\n\n- Performance, security and availability targets",
				Status: domain.SectionNeedsReview,
			},
			{
				ID:     "architecture",
				Title:  "System Architecture",
				Body:   "Describe the main components, their responsibilities and how they communicate.",
				Status: domain.SectionNeedsReview,
			},
		},
	}
}

func DeterministicSuggestions() []string {
	return append([]string(nil), defaultSuggestions...)
}

// NameFromDescription titles the first few words of the first line.
func NameFromDescription(description string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(description), "\n")
	words := strings.FieldsFunc(line, func(r rune) bool {
		return unicode.IsSpace(r) || r == '.' || r == ',' || r == ':' || r == ';'
	})
	if len(words) == 0 {
		return "Untitled Idea"
	}
	if len(words) > maxNameWords {
		words = words[:maxNameWords]
	}
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
