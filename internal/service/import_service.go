package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/docspace/internal/db"
	"github.com/alexanderramin/docspace/internal/importer"
	"github.com/alexanderramin/docspace/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	now      func() time.Time
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{
		uow:      uow,
		now:      func() time.Time { return time.Now().UTC() },
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *importService) ImportIdea(ctx context.Context, path string) (*ImportResult, error) {
	schema, err := importer.LoadIdeaImport(path)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportIdeaFromSchema(ctx, schema)
}

func (s *importService) ImportIdeaFromSchema(ctx context.Context, schema *importer.IdeaImport) (res *ImportResult, err error) {
	fields := map[string]any{"sections": len(schema.Sections)}
	done := observe(ctx, s.observer, "import-idea", fields)
	defer func() { done(err) }()

	if errs := importer.ValidateIdeaImport(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	converted, err := importer.Convert(schema, s.now())
	if err != nil {
		return nil, fmt.Errorf("converting import schema: %w", err)
	}
	fields["idea_id"] = converted.Idea.ID

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteIdeaRepo(tx).Create(ctx, converted.Idea); err != nil {
			return fmt.Errorf("creating idea: %w", err)
		}
		sections := repository.NewSQLiteSectionRepo(tx)
		for _, sec := range converted.Sections {
			if err := sections.Create(ctx, sec); err != nil {
				return fmt.Errorf("creating section %q: %w", sec.Title, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ImportResult{Idea: converted.Idea, SectionCount: len(converted.Sections)}, nil
}

func formatValidationErrors(errs []error) error {
	var b strings.Builder
	fmt.Fprintf(&b, "import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		b.WriteString("\n  - ")
		b.WriteString(e.Error())
	}
	return fmt.Errorf("%s", b.String())
}
