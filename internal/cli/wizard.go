package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/compass/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// compassHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func compassHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// wizardSelectTemplate creates a huh form to select a path template.
func wizardSelectTemplate(ctx context.Context, app *App, result *string) *huh.Form {
	templates, err := app.Templates.List(ctx)
	if err != nil || len(templates) == 0 {
		return nil
	}

	options := make([]huh.Option[string], 0, len(templates))
	for _, t := range templates {
		label := t.Title
		if t.Description != "" {
			label = fmt.Sprintf("%s — %s", t.Title, t.Description)
		}
		options = append(options, huh.NewOption(label, t.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which Path?").
				Options(options...).
				Value(result),
		),
	).WithTheme(compassHuhTheme()).WithShowHelp(false)
}

// wizardSelectPace creates a huh form to select a pace.
func wizardSelectPace(result *string) *huh.Form {
	*result = "standard" // default
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Pace").
				Options(
					huh.NewOption("Intensive (shortest durations)", "intensive"),
					huh.NewOption("Standard", "standard"),
					huh.NewOption("Part-time (longest durations)", "part_time"),
				).
				Value(result),
		),
	).WithTheme(compassHuhTheme()).WithShowHelp(false)
}

// wizardInputStartDate creates a huh form to enter the plan start date.
func wizardInputStartDate(result *string) *huh.Form {
	*result = time.Now().Format("2006-01-02")

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Start Date").
				Placeholder("YYYY-MM-DD").
				Value(result).
				Validate(validateDate),
		),
	).WithTheme(compassHuhTheme()).WithShowHelp(false)
}

// validateDate accepts a YYYY-MM-DD date string.
func validateDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}
