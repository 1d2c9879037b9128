package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/docspace/internal/domain"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// FilledCells is how many of width cells a bar at ratio fills. The ratio is
// clamped to [0,1] so an overbooked member never overflows the bar.
func FilledCells(ratio float64, width int) int {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return int(ratio*float64(width) + 0.5)
}

// RenderWorkloadBar renders [████░░░░] 80% colored by workload level.
// The percentage text is not clamped.
func RenderWorkloadBar(m *domain.TeamMember, width int) string {
	if width < 2 {
		width = 2
	}
	filled := FilledCells(m.WorkloadRatio(), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch m.WorkloadLevel() {
	case domain.WorkloadOverloaded:
		style = StyleRed
	case domain.WorkloadElevated:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3d%%", style.Render(bar), m.WorkloadPercent())
}

// RenderCompactBar is a bracketless bar for narrow columns.
func RenderCompactBar(ratio float64, width int) string {
	if width < 2 {
		width = 2
	}
	filled := FilledCells(ratio, width)
	return StyleBlue.Render(strings.Repeat(filledBlock, filled)) + StyleDim.Render(strings.Repeat(emptyBlock, width-filled))
}
