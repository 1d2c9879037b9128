package domain

import "math"

type TeamMember struct {
	ID            string
	Name          string
	Role          string
	Skills        []string
	WorkloadHours int
	CapacityHours int
	Initials      string
	Availability  Availability
}

type WorkloadLevel int

const (
	WorkloadNormal WorkloadLevel = iota
	WorkloadElevated
	WorkloadOverloaded
)

// WorkloadRatio is workload hours over capacity hours. It is not clamped:
// a member may be booked past capacity. Zero capacity yields 0.
func (m *TeamMember) WorkloadRatio() float64 {
	if m.CapacityHours <= 0 {
		return 0
	}
	return float64(m.WorkloadHours) / float64(m.CapacityHours)
}

// WorkloadPercent is WorkloadRatio as a rounded percentage.
func (m *TeamMember) WorkloadPercent() int {
	return int(math.Round(m.WorkloadRatio() * 100))
}

func (m *TeamMember) WorkloadLevel() WorkloadLevel {
	pct := m.WorkloadRatio() * 100
	switch {
	case pct >= 90:
		return WorkloadOverloaded
	case pct >= 70:
		return WorkloadElevated
	default:
		return WorkloadNormal
	}
}

// FindMember returns the member with id, or nil.
func FindMember(members []*TeamMember, id string) *TeamMember {
	for _, m := range members {
		if m.ID == id {
			return m
		}
	}
	return nil
}
