package cli

import (
	"errors"
	"strings"

	"github.com/alexanderramin/scenariodialogue/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// dialogueHuhTheme styles huh forms in the formatter palette.
func dialogueHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// predictionForm asks for a free-text guess of how a stakeholder will react.
func predictionForm(name string, priorities []string, value *string) *huh.Form {
	desc := "What will they appreciate? What will worry them?"
	if len(priorities) > 0 {
		desc = "They care about: " + strings.Join(priorities, "; ")
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("How will " + name + " react?").
				Description(desc).
				CharLimit(2000).
				Value(value).
				Validate(validatePrediction),
		),
	).WithTheme(dialogueHuhTheme()).WithShowHelp(false)
}

func validatePrediction(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("write at least a few words")
	}
	return nil
}
