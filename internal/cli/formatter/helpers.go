package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const wrapWidth = 76

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// Wrap soft-wraps text to the shared paragraph width.
func Wrap(text string) string {
	return lipgloss.NewStyle().Width(wrapWidth).Render(text)
}

// Bullets renders items as an indented list with a colored marker. Empty
// lists render the placeholder in dim text.
func Bullets(items []string, marker lipgloss.Style, placeholder string) string {
	if len(items) == 0 {
		return "  " + Dim(placeholder)
	}
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "  "+marker.Render("•")+" "+item)
	}
	return strings.Join(lines, "\n")
}

// Section renders a header followed by its body and a trailing blank line.
func Section(title, body string) string {
	return Header(title) + "\n" + body + "\n\n"
}
