package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/docspace/internal/domain"
	"github.com/alexanderramin/docspace/internal/intelligence"
	"github.com/alexanderramin/docspace/internal/repository"
)

type documentService struct {
	ideas     repository.IdeaRepo
	sections  repository.SectionRepo
	assistant intelligence.Assistant
	observer  UseCaseObserver
}

func NewDocumentService(
	ideas repository.IdeaRepo,
	sections repository.SectionRepo,
	assistant intelligence.Assistant,
	observers ...UseCaseObserver,
) DocumentService {
	return &documentService{
		ideas:     ideas,
		sections:  sections,
		assistant: assistant,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *documentService) Sections(ctx context.Context, ideaID string) ([]*domain.DocumentSection, error) {
	return s.sections.ListByIdea(ctx, ideaID)
}

func (s *documentService) Section(ctx context.Context, ideaID, sectionID string) (*domain.DocumentSection, error) {
	return s.sections.Get(ctx, ideaID, sectionID)
}

func (s *documentService) Suggestions(ctx context.Context, section *domain.DocumentSection) ([]string, error) {
	return s.assistant.Suggest(ctx, section)
}

func (s *documentService) Export(ctx context.Context, ideaID string, w io.Writer) (err error) {
	fields := map[string]any{"idea_id": ideaID}
	done := observe(ctx, s.observer, "export-idea", fields)
	defer func() { done(err) }()

	idea, err := s.ideas.GetByID(ctx, ideaID)
	if err != nil {
		return err
	}
	sections, err := s.sections.ListByIdea(ctx, ideaID)
	if err != nil {
		return err
	}
	fields["sections"] = len(sections)

	if _, err = io.WriteString(w, RenderMarkdown(idea, sections)); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}

// RenderMarkdown lays out an idea as a standalone markdown document.
func RenderMarkdown(idea *domain.Idea, sections []*domain.DocumentSection) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", idea.Name)
	fmt.Fprintf(&b, "- Status: %s\n", idea.Status)
	if len(idea.Documents) > 0 {
		fmt.Fprintf(&b, "- Documents: %s\n", strings.Join(idea.Documents, ", "))
	}
	fmt.Fprintf(&b, "- Updated: %s\n", idea.UpdatedAt.Format("2006-01-02 15:04"))

	if desc := strings.TrimSpace(idea.Description); desc != "" {
		fmt.Fprintf(&b, "\n> %s\n", strings.ReplaceAll(desc, "\n", "\n> "))
	}

	for _, sec := range sections {
		fmt.Fprintf(&b, "\n## %s\n\n", sec.Title)
		fmt.Fprintf(&b, "_%s, %d comment(s)_\n\n", sec.Status, sec.Comments)
		b.WriteString(strings.TrimRight(sec.Body, "\n"))
		b.WriteString("\n")
	}
	return b.String()
}
