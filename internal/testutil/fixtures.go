package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/docspace/internal/domain"
	"github.com/google/uuid"
)

var fixtureCounter atomic.Int64

func nextID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, fixtureCounter.Add(1))
}

// Idea options
type IdeaOption func(*domain.Idea)

func WithIdeaStatus(s domain.IdeaStatus) IdeaOption {
	return func(i *domain.Idea) { i.Status = s }
}

func WithDescription(d string) IdeaOption {
	return func(i *domain.Idea) { i.Description = d }
}

func WithDocuments(docs ...string) IdeaOption {
	return func(i *domain.Idea) { i.Documents = docs }
}

func WithUpdatedAt(t time.Time) IdeaOption {
	return func(i *domain.Idea) { i.UpdatedAt = t }
}

func WithIdeaID(id string) IdeaOption {
	return func(i *domain.Idea) { i.ID = id }
}

func NewTestIdea(name string, opts ...IdeaOption) *domain.Idea {
	now := time.Now().UTC().Truncate(time.Second)
	i := &domain.Idea{
		ID:        uuid.New().String(),
		Name:      name,
		Status:    domain.IdeaDraft,
		Documents: []string{"Proposal"},
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Section options
type SectionOption func(*domain.DocumentSection)

func WithSectionStatus(s domain.SectionStatus) SectionOption {
	return func(sec *domain.DocumentSection) { sec.Status = s }
}

func WithComments(n int) SectionOption {
	return func(sec *domain.DocumentSection) { sec.Comments = n }
}

func WithPosition(p int) SectionOption {
	return func(sec *domain.DocumentSection) { sec.Position = p }
}

func WithBody(b string) SectionOption {
	return func(sec *domain.DocumentSection) { sec.Body = b }
}

func NewTestSection(ideaID, title string, opts ...SectionOption) *domain.DocumentSection {
	s := &domain.DocumentSection{
		IdeaID: ideaID,
		ID:     strings.ReplaceAll(strings.ToLower(title), " ", "-"),
		Title:  title,
		Body:   title + " body.",
		Status: domain.SectionNeedsReview,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Approval options
type ApprovalOption func(*domain.ApprovalItem)

func WithApprovalStatus(s domain.ApprovalStatus) ApprovalOption {
	return func(a *domain.ApprovalItem) { a.Status = s }
}

func WithDueDate(d time.Time) ApprovalOption {
	return func(a *domain.ApprovalItem) { a.DueDate = d }
}

func WithPriority(p domain.Priority) ApprovalOption {
	return func(a *domain.ApprovalItem) { a.Priority = p }
}

func NewTestApprovalItem(title string, opts ...ApprovalOption) *domain.ApprovalItem {
	a := &domain.ApprovalItem{
		ID:          nextID("approval"),
		Title:       title,
		Submitter:   "Test Submitter",
		DueDate:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Priority:    domain.PriorityMedium,
		Type:        domain.ApprovalDocument,
		Description: "Review " + title,
		Status:      domain.ApprovalPending,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Member options
type MemberOption func(*domain.TeamMember)

func WithWorkload(hours, capacity int) MemberOption {
	return func(m *domain.TeamMember) {
		m.WorkloadHours = hours
		m.CapacityHours = capacity
	}
}

func WithAvailability(a domain.Availability) MemberOption {
	return func(m *domain.TeamMember) { m.Availability = a }
}

func WithSkills(skills ...string) MemberOption {
	return func(m *domain.TeamMember) { m.Skills = skills }
}

func NewTestMember(name string, opts ...MemberOption) *domain.TeamMember {
	var initials []byte
	for _, f := range strings.Fields(name) {
		initials = append(initials, strings.ToUpper(f[:1])[0])
	}
	m := &domain.TeamMember{
		ID:            nextID("member"),
		Name:          name,
		Role:          "Engineer",
		Skills:        []string{"Go"},
		WorkloadHours: 20,
		CapacityHours: 40,
		Initials:      string(initials),
		Availability:  domain.Available,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Task options
type TaskOption func(*domain.Task)

func WithAssignee(memberID string) TaskOption {
	return func(t *domain.Task) { t.AssigneeID = &memberID }
}

func WithTaskStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) { t.Status = s }
}

func WithEstimate(hours int) TaskOption {
	return func(t *domain.Task) { t.EstimatedHours = hours }
}

func NewTestTask(title string, opts ...TaskOption) *domain.Task {
	t := &domain.Task{
		ID:             nextID("task"),
		Title:          title,
		Type:           domain.TaskDocument,
		EstimatedHours: 4,
		Priority:       domain.PriorityMedium,
		Status:         domain.TaskPending,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}
