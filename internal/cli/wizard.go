package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/juku/internal/cli/formatter"
	"github.com/alexanderramin/juku/internal/domain"
	"github.com/alexanderramin/juku/internal/repository"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// jukuHuhTheme returns a huh theme matching the formatter palette.
func jukuHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// studentOptions lists the students visible to viewer as select options.
func studentOptions(ctx context.Context, app *App, viewer *domain.User) ([]huh.Option[int64], error) {
	students, err := app.Students.List(ctx, viewer, repository.StudentFilter{})
	if err != nil {
		return nil, err
	}
	if len(students) == 0 {
		return nil, fmt.Errorf("no students visible to %s", viewer.Username)
	}
	options := make([]huh.Option[int64], 0, len(students))
	for _, s := range students {
		options = append(options, huh.NewOption(fmt.Sprintf("#%d %s", s.ID, s.DisplayName()), s.ID))
	}
	return options, nil
}

// wizardSelectStudent creates a huh form to pick one of the viewer's
// students.
func wizardSelectStudent(ctx context.Context, app *App, viewer *domain.User, result *int64) (*huh.Form, error) {
	options, err := studentOptions(ctx, app, viewer)
	if err != nil {
		return nil, err
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int64]().
				Title("Which student?").
				Options(options...).
				Value(result),
		),
	).WithTheme(jukuHuhTheme()).WithShowHelp(false), nil
}

func wizardConfirm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(jukuHuhTheme()).WithShowHelp(false)
}
