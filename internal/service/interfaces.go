package service

import (
	"context"
	"errors"
	"io"

	"github.com/alexanderramin/docspace/internal/domain"
	"github.com/alexanderramin/docspace/internal/importer"
)

// ErrEmptyIdea is returned when a submitted idea is blank after trimming.
var ErrEmptyIdea = errors.New("idea text is empty")

type IdeaService interface {
	// Submit drafts documentation for text and stores the resulting idea.
	// Blank text yields ErrEmptyIdea and writes nothing.
	Submit(ctx context.Context, text string) (*domain.Idea, error)
	GetByID(ctx context.Context, id string) (*domain.Idea, error)
	List(ctx context.Context, filter domain.IdeaFilter) ([]*domain.Idea, error)
}

// ImportResult summarises one idea import.
type ImportResult struct {
	Idea         *domain.Idea
	SectionCount int
}

type ImportService interface {
	// ImportIdea loads an idea file (JSON or YAML), validates it and stores
	// the idea and its sections in one transaction.
	ImportIdea(ctx context.Context, path string) (*ImportResult, error)
	ImportIdeaFromSchema(ctx context.Context, schema *importer.IdeaImport) (*ImportResult, error)
}

type DocumentService interface {
	Sections(ctx context.Context, ideaID string) ([]*domain.DocumentSection, error)
	Section(ctx context.Context, ideaID, sectionID string) (*domain.DocumentSection, error)
	Suggestions(ctx context.Context, section *domain.DocumentSection) ([]string, error)
	// Export writes the idea and its sections as one markdown document.
	Export(ctx context.Context, ideaID string, w io.Writer) error
}

type ApprovalService interface {
	List(ctx context.Context) ([]*domain.ApprovalItem, error)
	Buckets(ctx context.Context) (domain.ApprovalBuckets, error)
	GetByID(ctx context.Context, id string) (*domain.ApprovalItem, error)
	// Decide records a review decision. The item keeps its status.
	Decide(ctx context.Context, itemID string, decision domain.Decision, comment string) (*domain.ApprovalDecision, error)
	History(ctx context.Context, itemID string) ([]*domain.ApprovalDecision, error)
}

type TeamService interface {
	Members(ctx context.Context) ([]*domain.TeamMember, error)
	Tasks(ctx context.Context) ([]*domain.Task, error)
	Workload(ctx context.Context) ([]MemberWorkload, error)
	Unassigned(ctx context.Context) (int, error)
}

// MemberWorkload is one row of the team workload balance.
type MemberWorkload struct {
	Member      *domain.TeamMember
	Ratio       float64
	Percent     int
	Level       domain.WorkloadLevel
	ActiveTasks int
}
