package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/compass/internal/domain"
	"github.com/alexanderramin/compass/internal/scoring"
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
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// GateStatusIndicator returns a colored gate status string such as "● MET".
func GateStatusIndicator(status scoring.GateStatusKind) string {
	switch status {
	case scoring.GateMet:
		return StyleGreen.Render("● MET")
	case scoring.GateClose:
		return StyleYellow.Render("◐ CLOSE")
	case scoring.GateUnmet:
		return StyleRed.Render("○ UNMET")
	case scoring.GateOverridden:
		return StylePurple.Render("◆ OVERRIDDEN")
	default:
		return StyleDim.Render("? UNKNOWN")
	}
}

// PlanStatusPill returns a colored status indicator for an instantiation.
func PlanStatusPill(status domain.InstantiationStatus) string {
	switch status {
	case domain.InstantiationActive:
		return StyleGreen.Render("● Active")
	case domain.InstantiationBuilding:
		return StyleYellow.Render("○ Building")
	case domain.InstantiationFailed:
		return StyleRed.Render("✖ Failed")
	default:
		return StyleDim.Render(string(status))
	}
}

// PaceBadge returns a styled pace label.
func PaceBadge(pace domain.Pace) string {
	switch pace {
	case domain.PaceIntensive:
		return StyleRed.Render("▲ Intensive")
	case domain.PacePartTime:
		return StyleBlue.Render("▽ Part-time")
	default:
		return StyleFg.Render("■ Standard")
	}
}

// CategoryBadge returns a capitalized, purple-styled category label.
func CategoryBadge(c string) string {
	if c == "" {
		return StyleDim.Render("--")
	}
	label := strings.ToUpper(c[:1]) + c[1:]
	return StylePurple.Render(label)
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
