package repository

import (
	"context"

	"github.com/alexanderramin/docspace/internal/domain"
)

type IdeaRepo interface {
	Create(ctx context.Context, i *domain.Idea) error
	GetByID(ctx context.Context, id string) (*domain.Idea, error)
	List(ctx context.Context) ([]*domain.Idea, error)
	ListByStatus(ctx context.Context, status domain.IdeaStatus) ([]*domain.Idea, error)
}

type SectionRepo interface {
	Create(ctx context.Context, s *domain.DocumentSection) error
	Get(ctx context.Context, ideaID, id string) (*domain.DocumentSection, error)
	ListByIdea(ctx context.Context, ideaID string) ([]*domain.DocumentSection, error)
}

type ApprovalRepo interface {
	Create(ctx context.Context, a *domain.ApprovalItem) error
	GetByID(ctx context.Context, id string) (*domain.ApprovalItem, error)
	List(ctx context.Context) ([]*domain.ApprovalItem, error)
	RecordDecision(ctx context.Context, d *domain.ApprovalDecision) error
	ListDecisions(ctx context.Context, itemID string) ([]*domain.ApprovalDecision, error)
}

type MemberRepo interface {
	Create(ctx context.Context, m *domain.TeamMember) error
	GetByID(ctx context.Context, id string) (*domain.TeamMember, error)
	List(ctx context.Context) ([]*domain.TeamMember, error)
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	List(ctx context.Context) ([]*domain.Task, error)
	ListByAssignee(ctx context.Context, memberID string) ([]*domain.Task, error)
}

// SeedRepo tracks which fixtures have been applied.
type SeedRepo interface {
	Applied(ctx context.Context, name string) (bool, error)
	MarkApplied(ctx context.Context, name string) error
}
