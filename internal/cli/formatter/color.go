package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/floodstat/floodstat/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// RiskIndicator renders a contractor risk flag, red for high risk.
func RiskIndicator(flag domain.RiskFlag) string {
	switch flag {
	case domain.RiskHigh:
		return StyleRed.Render("● " + string(flag))
	case domain.RiskLow:
		return StyleGreen.Render("● " + string(flag))
	default:
		return StyleDim.Render("● unknown")
	}
}

// SignedStyle colors negative values red and positive values green.
func SignedStyle(v float64) lipgloss.Style {
	switch {
	case v < 0:
		return StyleRed
	case v > 0:
		return StyleGreen
	default:
		return StyleFg
	}
}

// Header renders an upper-cased section title with an underline.
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

// Success, Warning and Failure prefix one-line status messages.
func Success(text string) string { return StyleGreen.Render("✔ ") + text }
func Warning(text string) string { return StyleYellow.Render("! ") + text }
func Failure(text string) string { return StyleRed.Render("✖ ") + text }
