package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/docspace/internal/domain"
	"github.com/alexanderramin/docspace/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApprovalService_Buckets(t *testing.T) {
	f := newSeededFixture(t)

	b, err := f.approvals.Buckets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, [3]int{1, 1, 1}, b.Counts())
	require.Len(t, b.Pending, 1)
	assert.Equal(t, "E-commerce Platform - Requirements Specification", b.Pending[0].Title)
}

func TestApprovalService_Decide_LogsAndJournalsWithoutMovingItem(t *testing.T) {
	f := newSeededFixture(t)
	ctx := context.Background()

	before, err := f.approvals.Buckets(ctx)
	require.NoError(t, err)

	for _, d := range domain.Decisions {
		rec, err := f.approvals.Decide(ctx, "1", d, "looks fine")
		require.NoError(t, err)
		assert.Equal(t, d, rec.Decision)
		assert.Equal(t, "1", rec.ItemID)
	}

	after, err := f.approvals.Buckets(ctx)
	require.NoError(t, err)
	assert.Equal(t, before.Counts(), after.Counts())

	item, err := f.approvals.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, domain.ApprovalPending, item.Status)

	history, err := f.approvals.History(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, history, 3)

	logs := f.logs.String()
	assert.Contains(t, logs, "msg=approval_decision")
	assert.Contains(t, logs, "decision=partial")
	assert.Contains(t, logs, `comment="looks fine"`)
}

func TestApprovalService_Decide_UnknownItem(t *testing.T) {
	f := newSeededFixture(t)

	_, err := f.approvals.Decide(context.Background(), "42", domain.DecisionApprove, "")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Empty(t, f.logs.String())
}

func TestApprovalService_Decide_UnknownDecision(t *testing.T) {
	f := newSeededFixture(t)

	_, err := f.approvals.Decide(context.Background(), "1", domain.Decision("reject"), "")
	assert.ErrorIs(t, err, domain.ErrUnknownDecision)

	history, err := f.approvals.History(context.Background(), "1")
	require.NoError(t, err)
	assert.Empty(t, history)
	assert.False(t, f.observer.last().Success)
}

func TestApprovalService_History_UnknownItem(t *testing.T) {
	f := newSeededFixture(t)

	_, err := f.approvals.History(context.Background(), "42")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
