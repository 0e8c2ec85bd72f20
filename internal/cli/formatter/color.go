package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/itinera/internal/domain"
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

// UnitStyle colors an activity by how much of the day it takes.
func UnitStyle(u domain.UnitType) lipgloss.Style {
	switch u {
	case domain.UnitFullDay:
		return StyleYellow
	case domain.UnitHalfDay:
		return StyleGreen
	case domain.UnitTransfer:
		return StyleBlue
	default:
		return StylePurple
	}
}

// UnitBadge renders the unit-type label in its color.
func UnitBadge(u domain.UnitType) string {
	return UnitStyle(u).Render(u.Label())
}

// CategoryHeading renders "🚤 Marítimos (3)" for a catalog section.
func CategoryHeading(c domain.ActivityCategory, count int) string {
	return fmt.Sprintf("%s %s %s", c.Icon(), StyleHeader.Render(c.Label()), Dim(fmt.Sprintf("(%d)", count)))
}

// EligibilityIndicator renders the booking verdict for a party.
func EligibilityIndicator(valid bool) string {
	if valid {
		return StyleGreen.Render("● Disponível para o grupo")
	}
	return StyleRed.Render("● Indisponível para o grupo")
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
