package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkloadRatio_EqualsWorkloadOverCapacity(t *testing.T) {
	members := []TeamMember{
		{WorkloadHours: 32, CapacityHours: 40},
		{WorkloadHours: 38, CapacityHours: 40},
		{WorkloadHours: 20, CapacityHours: 40},
		{WorkloadHours: 15, CapacityHours: 40},
		{WorkloadHours: 50, CapacityHours: 40},
	}
	for _, m := range members {
		assert.InDelta(t, float64(m.WorkloadHours)/float64(m.CapacityHours), m.WorkloadRatio(), 1e-9)
	}
}

func TestWorkloadRatio_ZeroCapacity(t *testing.T) {
	m := TeamMember{WorkloadHours: 10, CapacityHours: 0}
	assert.Equal(t, 0.0, m.WorkloadRatio())
	assert.Equal(t, 0, m.WorkloadPercent())
}

func TestWorkloadPercent_Rounds(t *testing.T) {
	m := TeamMember{WorkloadHours: 38, CapacityHours: 40}
	assert.Equal(t, 95, m.WorkloadPercent())
	m = TeamMember{WorkloadHours: 1, CapacityHours: 3}
	assert.Equal(t, 33, m.WorkloadPercent())
}

func TestWorkloadLevel_Thresholds(t *testing.T) {
	cases := []struct {
		hours int
		want  WorkloadLevel
	}{
		{15, WorkloadNormal},
		{27, WorkloadNormal},
		{28, WorkloadElevated},
		{35, WorkloadElevated},
		{36, WorkloadOverloaded},
		{44, WorkloadOverloaded},
	}
	for _, tc := range cases {
		m := TeamMember{WorkloadHours: tc.hours, CapacityHours: 40}
		assert.Equal(t, tc.want, m.WorkloadLevel(), "hours=%d", tc.hours)
	}
}

func TestCountUnassigned(t *testing.T) {
	a := "1"
	tasks := []*Task{
		{ID: "1", Status: TaskInProgress, AssigneeID: &a},
		{ID: "2", Status: TaskPending},
		{ID: "3", Status: TaskPending},
		{ID: "4", Status: TaskCompleted, AssigneeID: &a},
	}
	assert.Equal(t, 2, CountUnassigned(tasks))
	assert.True(t, tasks[0].IsAssigned())
	assert.False(t, tasks[1].IsAssigned())
}
