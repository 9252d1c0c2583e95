package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
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

// SetColorMode applies the ui.color setting. "auto" keeps lipgloss's own
// terminal detection.
func SetColorMode(mode string) {
	switch strings.ToLower(mode) {
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	case "always":
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}

// PriorityStyle colors a priority label by urgency.
func PriorityStyle(p domain.PriorityLabel) lipgloss.Style {
	switch p {
	case domain.PriorityTop:
		return StyleRed
	case domain.PriorityHigh:
		return StyleYellow
	case domain.PriorityMedium:
		return StyleBlue
	case domain.PriorityLow:
		return StyleDim
	default:
		return StyleFg
	}
}

// PriorityBadge renders a label such as "● HIGH"; the empty label reads "default".
func PriorityBadge(p domain.PriorityLabel) string {
	if p == domain.PriorityNone {
		return StyleDim.Render("default")
	}
	return PriorityStyle(p).Render("● " + strings.ToUpper(string(p)))
}

// FocusBadge renders a study-window focus level.
func FocusBadge(f domain.FocusLevel) string {
	switch f {
	case domain.FocusHigh:
		return StyleGreen.Render("high")
	case domain.FocusMedium:
		return StyleYellow.Render("medium")
	case domain.FocusLow:
		return StyleDim.Render("low")
	default:
		return StyleDim.Render("-")
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
