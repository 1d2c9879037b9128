package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/docspace/internal/db"
	"github.com/alexanderramin/docspace/internal/domain"
	"github.com/alexanderramin/docspace/internal/intelligence"
	"github.com/alexanderramin/docspace/internal/repository"
	"github.com/google/uuid"
)

type ideaService struct {
	ideas     repository.IdeaRepo
	assistant intelligence.Assistant
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

func NewIdeaService(
	ideas repository.IdeaRepo,
	assistant intelligence.Assistant,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) IdeaService {
	return &ideaService{
		ideas:     ideas,
		assistant: assistant,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *ideaService) Submit(ctx context.Context, text string) (idea *domain.Idea, err error) {
	fields := map[string]any{"length": len(text)}
	done := observe(ctx, s.observer, "submit-idea", fields)
	defer func() { done(err) }()

	if domain.IsBlankIdea(text) {
		return nil, ErrEmptyIdea
	}

	draft, err := s.assistant.DraftDocumentation(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("drafting documentation: %w", err)
	}

	now := time.Now().UTC()
	idea = &domain.Idea{
		ID:          uuid.New().String(),
		Name:        draft.Name,
		Status:      domain.IdeaDraft,
		Description: text,
		Documents:   draft.Documents,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	fields["idea_id"] = idea.ID
	fields["sections"] = len(draft.Sections)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteIdeaRepo(tx).Create(ctx, idea); err != nil {
			return err
		}
		sections := repository.NewSQLiteSectionRepo(tx)
		for pos, ds := range draft.Sections {
			if ds.Status == "" {
				ds.Status = domain.SectionNeedsReview
			}
			if err := sections.Create(ctx, &domain.DocumentSection{
				IdeaID:   idea.ID,
				ID:       ds.ID,
				Position: pos,
				Title:    ds.Title,
				Body:     ds.Body,
				Status:   ds.Status,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("saving idea: %w", err)
	}
	return idea, nil
}

func (s *ideaService) GetByID(ctx context.Context, id string) (*domain.Idea, error) {
	return s.ideas.GetByID(ctx, id)
}

func (s *ideaService) List(ctx context.Context, filter domain.IdeaFilter) ([]*domain.Idea, error) {
	if filter.IsAll() {
		return s.ideas.List(ctx)
	}
	return s.ideas.ListByStatus(ctx, filter.Status)
}
