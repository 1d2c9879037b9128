package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecision(t *testing.T) {
	for _, d := range Decisions {
		got, err := ParseDecision(" " + string(d) + " ")
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
	got, err := ParseDecision("APPROVE")
	require.NoError(t, err)
	assert.Equal(t, DecisionApprove, got)

	_, err = ParseDecision("reject")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownDecision))
}

func TestDecisionLabels(t *testing.T) {
	assert.Equal(t, "Approve", DecisionApprove.Label())
	assert.Equal(t, "Partial Approval", DecisionPartial.Label())
	assert.Equal(t, "Disapprove", DecisionDisapprove.Label())
}

func TestBucketApprovals(t *testing.T) {
	items := []*ApprovalItem{
		{ID: "1", Status: ApprovalPending},
		{ID: "2", Status: ApprovalApproved},
		{ID: "3", Status: ApprovalDisapproved},
		{ID: "4", Status: ApprovalPending},
	}
	b := BucketApprovals(items)

	assert.Equal(t, [3]int{1, 2, 1}, b.Counts())
	assert.Equal(t, "3", b.Column(0)[0].ID)
	assert.Equal(t, "4", b.Column(1)[1].ID)
	assert.Equal(t, "2", b.Column(2)[0].ID)
	assert.Nil(t, b.Column(3))
}
