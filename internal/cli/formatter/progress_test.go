package formatter

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/docspace/internal/domain"
)

func TestFilledCells(t *testing.T) {
	tests := []struct {
		ratio float64
		width int
		want  int
	}{
		{0, 10, 0},
		{0.5, 10, 5},
		{0.95, 10, 10},
		{0.94, 10, 9},
		{1, 10, 10},
		{1.8, 10, 10},
		{-0.2, 10, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FilledCells(tt.ratio, tt.width), "ratio %v", tt.ratio)
	}
}

func TestRenderWorkloadBar(t *testing.T) {
	bob := &domain.TeamMember{Name: "Bob Smith", WorkloadHours: 38, CapacityHours: 40}
	out := ansi.Strip(RenderWorkloadBar(bob, 20))
	assert.Contains(t, out, " 95%")
	assert.Equal(t, 19, strings.Count(out, filledBlock))
	assert.Equal(t, 1, strings.Count(out, emptyBlock))
}

func TestRenderWorkloadBar_OverCapacityClampsBarOnly(t *testing.T) {
	m := &domain.TeamMember{WorkloadHours: 60, CapacityHours: 40}
	out := ansi.Strip(RenderWorkloadBar(m, 10))
	assert.Contains(t, out, "150%")
	assert.Equal(t, 10, strings.Count(out, filledBlock))
	assert.Equal(t, 0, strings.Count(out, emptyBlock))
}

func TestRenderWorkloadBar_ZeroCapacity(t *testing.T) {
	m := &domain.TeamMember{WorkloadHours: 5, CapacityHours: 0}
	out := ansi.Strip(RenderWorkloadBar(m, 10))
	assert.Contains(t, out, "  0%")
	assert.Equal(t, 10, strings.Count(out, emptyBlock))
}

func TestRenderCompactBar(t *testing.T) {
	out := ansi.Strip(RenderCompactBar(0.3, 10))
	assert.Equal(t, 3, strings.Count(out, filledBlock))
	assert.Equal(t, 10, ansi.StringWidth(out))
}
