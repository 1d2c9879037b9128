package domain

type IdeaStatus string

const (
	IdeaDraft    IdeaStatus = "Draft"
	IdeaInReview IdeaStatus = "In Review"
	IdeaApproved IdeaStatus = "Approved"
	IdeaPartial  IdeaStatus = "Partial"
)

// IdeaStatuses lists every idea status in sidebar filter order.
var IdeaStatuses = []IdeaStatus{IdeaDraft, IdeaInReview, IdeaApproved, IdeaPartial}

type SectionStatus string

const (
	SectionApproved    SectionStatus = "approved"
	SectionPartial     SectionStatus = "partial"
	SectionNeedsReview SectionStatus = "needs-review"
)

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

type ApprovalType string

const (
	ApprovalDocument ApprovalType = "Document"
	ApprovalSection  ApprovalType = "Section"
	ApprovalProject  ApprovalType = "Project"
)

type ApprovalStatus string

const (
	ApprovalPending     ApprovalStatus = "pending"
	ApprovalApproved    ApprovalStatus = "approved"
	ApprovalDisapproved ApprovalStatus = "disapproved"
)

type Availability string

const (
	Available Availability = "available"
	Busy      Availability = "busy"
	Away      Availability = "away"
)

type TaskType string

const (
	TaskDocument TaskType = "Document"
	TaskReview   TaskType = "Review"
	TaskResearch TaskType = "Research"
	TaskDesign   TaskType = "Design"
)

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in-progress"
	TaskCompleted  TaskStatus = "completed"
)

// DocumentTypes is the canonical set of document labels an idea can carry.
var DocumentTypes = map[string]bool{
	"Proposal": true, "SRS": true, "Architecture": true, "API": true,
	"Tests": true, "Report": true, "Slides": true, "Demo": true,
	"IP": true, "Financial": true,
}
