package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/docspace/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
	ColorBg     = lipgloss.Color("#3c3836")
)

var (
	StyleGreen      = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow     = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleYellowBold = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	StyleRed        = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue       = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple     = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim        = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg         = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader     = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold       = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StyleSelected   = lipgloss.NewStyle().Foreground(ColorFg).Background(ColorBg).Bold(true)
)

// IdeaStatusStyle colors an idea status the way the sidebar badges do.
func IdeaStatusStyle(s domain.IdeaStatus) lipgloss.Style {
	switch s {
	case domain.IdeaApproved:
		return StyleGreen
	case domain.IdeaInReview:
		return StyleBlue
	case domain.IdeaPartial:
		return StyleYellow
	default:
		return StyleDim
	}
}

func IdeaStatusBadge(s domain.IdeaStatus) string {
	return IdeaStatusStyle(s).Render("● " + string(s))
}

// SectionStatusIcon is the glyph shown next to a section title.
func SectionStatusIcon(s domain.SectionStatus) string {
	switch s {
	case domain.SectionApproved:
		return StyleGreen.Render("✔")
	case domain.SectionPartial:
		return StyleYellow.Render("◐")
	default:
		return StyleRed.Render("!")
	}
}

func SectionStatusBadge(s domain.SectionStatus) string {
	switch s {
	case domain.SectionApproved:
		return StyleGreen.Render("Approved")
	case domain.SectionPartial:
		return StyleYellow.Render("Partial")
	default:
		return StyleRed.Render("Needs Review")
	}
}

func ApprovalStatusBadge(s domain.ApprovalStatus) string {
	switch s {
	case domain.ApprovalApproved:
		return StyleGreen.Render("✔ Approved")
	case domain.ApprovalDisapproved:
		return StyleRed.Render("✖ Disapproved")
	default:
		return StyleYellow.Render("◷ In Review")
	}
}

func PriorityBadge(p domain.Priority) string {
	switch p {
	case domain.PriorityHigh:
		return StyleRed.Render(string(p))
	case domain.PriorityMedium:
		return StyleYellow.Render(string(p))
	default:
		return StyleGreen.Render(string(p))
	}
}

func AvailabilityDot(a domain.Availability) string {
	switch a {
	case domain.Available:
		return StyleGreen.Render("●")
	case domain.Busy:
		return StyleRed.Render("●")
	default:
		return StyleYellow.Render("●")
	}
}

func TaskStatusPill(s domain.TaskStatus) string {
	switch s {
	case domain.TaskCompleted:
		return StyleDim.Render("✔ completed")
	case domain.TaskInProgress:
		return StyleGreen.Render("▶ in-progress")
	default:
		return StyleBlue.Render("○ pending")
	}
}

func DecisionBadge(d domain.Decision) string {
	switch d {
	case domain.DecisionApprove:
		return StyleGreen.Render(d.Label())
	case domain.DecisionPartial:
		return StyleYellow.Render(d.Label())
	default:
		return StyleRed.Render(d.Label())
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
