package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/scenariodialogue/internal/domain"
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

// SeverityStyle maps a concern severity to its color.
func SeverityStyle(s domain.Severity) lipgloss.Style {
	switch s {
	case domain.SeverityHigh:
		return StyleRed
	case domain.SeverityMedium:
		return StyleYellow
	case domain.SeverityLow:
		return StyleGreen
	default:
		return StyleDim
	}
}

// SeverityBadge returns a colored marker such as "● HIGH".
func SeverityBadge(s domain.Severity) string {
	label := strings.ToUpper(string(s))
	if label == "" {
		label = "UNKNOWN"
	}
	return SeverityStyle(s).Render("● " + label)
}

// SentimentIndicator renders a sentiment shift, e.g. "▲ positive (moderate)".
func SentimentIndicator(dir domain.SentimentDirection, mag domain.Magnitude) string {
	switch dir {
	case domain.SentimentPositive:
		return StyleGreen.Render(fmt.Sprintf("▲ positive (%s)", mag))
	case domain.SentimentNegative:
		return StyleRed.Render(fmt.Sprintf("▼ negative (%s)", mag))
	default:
		return StyleDim.Render("● neutral")
	}
}

// ImpactIndicator renders a directional impact, e.g. "↑ increase (significant)".
func ImpactIndicator(im domain.Impact) string {
	switch im.Direction {
	case domain.ImpactIncrease:
		return StyleBlue.Render(fmt.Sprintf("↑ increase (%s)", im.Magnitude))
	case domain.ImpactDecrease:
		return StylePurple.Render(fmt.Sprintf("↓ decrease (%s)", im.Magnitude))
	default:
		return StyleDim.Render("→ unchanged")
	}
}

// GenerationBadge labels how a response was produced.
func GenerationBadge(g domain.GenerationType) string {
	switch g {
	case domain.GenerationAIEnhanced:
		return StylePurple.Render("[AI]")
	case domain.GenerationEnhancedRuleBased:
		return StyleBlue.Render("[enhanced]")
	default:
		return StyleDim.Render("[rules]")
	}
}

// StakeholderStyle colors text with a profile's hex color, falling back to
// the foreground color.
func StakeholderStyle(hex string) lipgloss.Style {
	if !strings.HasPrefix(hex, "#") {
		return StyleBold
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Bold(true)
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
