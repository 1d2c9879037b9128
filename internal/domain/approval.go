package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownDecision is returned for a decision tag outside approve/partial/disapprove.
var ErrUnknownDecision = errors.New("unknown approval decision")

type ApprovalItem struct {
	ID          string
	Title       string
	Submitter   string
	DueDate     time.Time
	Priority    Priority
	Type        ApprovalType
	Description string
	Status      ApprovalStatus
}

type Decision string

const (
	DecisionApprove    Decision = "approve"
	DecisionPartial    Decision = "partial"
	DecisionDisapprove Decision = "disapprove"
)

// Decisions lists decision tags in review-modal button order.
var Decisions = []Decision{DecisionDisapprove, DecisionPartial, DecisionApprove}

func ParseDecision(s string) (Decision, error) {
	switch Decision(strings.ToLower(strings.TrimSpace(s))) {
	case DecisionApprove:
		return DecisionApprove, nil
	case DecisionPartial:
		return DecisionPartial, nil
	case DecisionDisapprove:
		return DecisionDisapprove, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDecision, s)
}

// Label is the button caption for a decision.
func (d Decision) Label() string {
	switch d {
	case DecisionApprove:
		return "Approve"
	case DecisionPartial:
		return "Partial Approval"
	case DecisionDisapprove:
		return "Disapprove"
	}
	return string(d)
}

// ApprovalDecision is one journal entry recorded by a reviewer.
type ApprovalDecision struct {
	ID        string
	ItemID    string
	Decision  Decision
	Comment   string
	DecidedAt time.Time
}

// ApprovalBuckets groups items by their review status.
type ApprovalBuckets struct {
	Disapproved []*ApprovalItem
	Pending     []*ApprovalItem
	Approved    []*ApprovalItem
}

// Counts returns bucket sizes in display order: disapproved, in review, approved.
func (b ApprovalBuckets) Counts() [3]int {
	return [3]int{len(b.Disapproved), len(b.Pending), len(b.Approved)}
}

// Column returns the bucket at display index i (0..2).
func (b ApprovalBuckets) Column(i int) []*ApprovalItem {
	switch i {
	case 0:
		return b.Disapproved
	case 1:
		return b.Pending
	case 2:
		return b.Approved
	}
	return nil
}

func BucketApprovals(items []*ApprovalItem) ApprovalBuckets {
	var b ApprovalBuckets
	for _, it := range items {
		switch it.Status {
		case ApprovalPending:
			b.Pending = append(b.Pending, it)
		case ApprovalApproved:
			b.Approved = append(b.Approved, it)
		case ApprovalDisapproved:
			b.Disapproved = append(b.Disapproved, it)
		}
	}
	return b
}
