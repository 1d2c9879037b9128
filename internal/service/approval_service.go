package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexanderramin/docspace/internal/domain"
	"github.com/alexanderramin/docspace/internal/repository"
	"github.com/google/uuid"
)

type approvalService struct {
	approvals repository.ApprovalRepo
	logger    *slog.Logger
	observer  UseCaseObserver
}

func NewApprovalService(
	approvals repository.ApprovalRepo,
	logger *slog.Logger,
	observers ...UseCaseObserver,
) ApprovalService {
	if logger == nil {
		logger = slog.Default()
	}
	return &approvalService{
		approvals: approvals,
		logger:    logger,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *approvalService) List(ctx context.Context) ([]*domain.ApprovalItem, error) {
	return s.approvals.List(ctx)
}

func (s *approvalService) Buckets(ctx context.Context) (domain.ApprovalBuckets, error) {
	items, err := s.approvals.List(ctx)
	if err != nil {
		return domain.ApprovalBuckets{}, err
	}
	return domain.BucketApprovals(items), nil
}

func (s *approvalService) GetByID(ctx context.Context, id string) (*domain.ApprovalItem, error) {
	return s.approvals.GetByID(ctx, id)
}

func (s *approvalService) Decide(ctx context.Context, itemID string, decision domain.Decision, comment string) (d *domain.ApprovalDecision, err error) {
	done := observe(ctx, s.observer, "decide-approval", map[string]any{
		"item_id":  itemID,
		"decision": string(decision),
	})
	defer func() { done(err) }()

	decision, err = domain.ParseDecision(string(decision))
	if err != nil {
		return nil, err
	}
	item, err := s.approvals.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	d = &domain.ApprovalDecision{
		ID:        uuid.New().String(),
		ItemID:    item.ID,
		Decision:  decision,
		Comment:   comment,
		DecidedAt: time.Now().UTC(),
	}
	if err = s.approvals.RecordDecision(ctx, d); err != nil {
		return nil, fmt.Errorf("recording decision: %w", err)
	}

	s.logger.InfoContext(ctx, "approval_decision",
		"item_id", item.ID,
		"title", item.Title,
		"decision", string(decision),
		"comment", comment,
	)
	return d, nil
}

func (s *approvalService) History(ctx context.Context, itemID string) ([]*domain.ApprovalDecision, error) {
	if _, err := s.approvals.GetByID(ctx, itemID); err != nil {
		return nil, err
	}
	return s.approvals.ListDecisions(ctx, itemID)
}
