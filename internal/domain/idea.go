package domain

import (
	"fmt"
	"strings"
	"time"
)

type Idea struct {
	ID          string
	Name        string
	Status      IdeaStatus
	Description string
	Documents   []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Initial returns the uppercase first letter of the idea name, used by the
// collapsed sidebar.
func (i *Idea) Initial() string {
	for _, r := range strings.TrimSpace(i.Name) {
		return strings.ToUpper(string(r))
	}
	return "?"
}

// ParseIdeaStatus matches s against the known statuses, ignoring case and
// treating "-" and "_" as spaces (so "in-review" works on the command line).
func ParseIdeaStatus(s string) (IdeaStatus, error) {
	norm := strings.NewReplacer("-", " ", "_", " ").Replace(strings.TrimSpace(s))
	for _, st := range IdeaStatuses {
		if strings.EqualFold(string(st), norm) {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown idea status %q (want Draft, In Review, Approved or Partial)", s)
}

// IdeaFilter selects ideas by status. The zero value shows everything.
type IdeaFilter struct {
	Status IdeaStatus
}

// FilterAll shows every idea.
var FilterAll = IdeaFilter{}

func (f IdeaFilter) IsAll() bool { return f.Status == "" }

func (f IdeaFilter) Label() string {
	if f.IsAll() {
		return "All"
	}
	return string(f.Status)
}

func (f IdeaFilter) Match(i *Idea) bool {
	return f.IsAll() || i.Status == f.Status
}

// Next returns the filter after f in the cycle All → Draft → ... → Partial → All.
func (f IdeaFilter) Next() IdeaFilter {
	if f.IsAll() {
		return IdeaFilter{Status: IdeaStatuses[0]}
	}
	for i, st := range IdeaStatuses {
		if st == f.Status && i+1 < len(IdeaStatuses) {
			return IdeaFilter{Status: IdeaStatuses[i+1]}
		}
	}
	return FilterAll
}

// FilterIdeas returns the ideas matching f, preserving order.
func FilterIdeas(ideas []*Idea, f IdeaFilter) []*Idea {
	if f.IsAll() {
		return ideas
	}
	var out []*Idea
	for _, i := range ideas {
		if f.Match(i) {
			out = append(out, i)
		}
	}
	return out
}

// SearchIdeas keeps ideas whose name contains query, case-insensitively.
func SearchIdeas(ideas []*Idea, query string) []*Idea {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return ideas
	}
	var out []*Idea
	for _, i := range ideas {
		if strings.Contains(strings.ToLower(i.Name), q) {
			out = append(out, i)
		}
	}
	return out
}

// IsBlankIdea reports whether submitted idea text carries no content.
func IsBlankIdea(text string) bool {
	return strings.TrimSpace(text) == ""
}
