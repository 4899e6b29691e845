package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/alexanderramin/juku/internal/domain"
	"github.com/alexanderramin/juku/internal/repository"
	"github.com/alexanderramin/juku/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Dashboard    service.DashboardService
	Calendar     service.CalendarService
	Progress     service.ProgressService
	Students     service.StudentService
	Users        service.UserService
	Textbooks    service.TextbookService
	Applications service.ApplicationService
	PastExams    service.PastExamService
	Homework     service.HomeworkService
	MockExams    service.MockExamService
	Eiken        service.EikenService
	Presets      service.PresetService
	Statistics   service.StatisticsService
	Import       service.ImportService

	// Username is the acting user. The --as flag overrides it.
	Username string

	// IsInteractive reports whether prompts and the month browser may run.
	// Nil means never.
	IsInteractive func() bool

	// Now defaults to time.Now.
	Now func() time.Time
}

// NewRootCmd creates the top-level "juku" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "juku",
		Short:         "Student progress and exam calendar for tutoring schools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&app.Username, "as", app.Username, "Act as this user (defaults to JUKU_USER)")

	root.AddCommand(
		newDashboardCmd(app),
		newCalendarCmd(app),
		newProgressCmd(app),
		newStudentCmd(app),
		newUserCmd(app),
		newTextbookCmd(app),
		newApplicationCmd(app),
		newExamCmd(app),
		newHomeworkCmd(app),
		newMockCmd(app),
		newEikenCmd(app),
		newPresetCmd(app),
		newStatsCmd(app),
		newImportCmd(app),
	)

	return root
}

// viewer resolves the acting user.
func (a *App) viewer(ctx context.Context) (*domain.User, error) {
	if a.Username == "" {
		return nil, fmt.Errorf("no acting user: set JUKU_USER or pass --as")
	}
	u, err := a.Users.GetByUsername(ctx, a.Username)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("unknown user %q", a.Username)
	}
	return u, err
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// today is the current calendar date.
func (a *App) today() time.Time {
	now := time.Now
	if a.Now != nil {
		now = a.Now
	}
	return domain.DateOf(now())
}

func parseID(kind, s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s ID %q", kind, s)
	}
	return id, nil
}

// resolveStudentID takes the student ID from the first argument, or asks
// for one when running interactively.
func resolveStudentID(ctx context.Context, app *App, viewer *domain.User, args []string) (int64, error) {
	if len(args) > 0 {
		return parseID("student", args[0])
	}
	if !app.interactive() {
		return 0, fmt.Errorf("student ID is required")
	}
	var picked int64
	form, err := wizardSelectStudent(ctx, app, viewer, &picked)
	if err != nil {
		return 0, err
	}
	if err := form.RunWithContext(ctx); err != nil {
		return 0, err
	}
	return picked, nil
}

// confirmRemoval returns nil when the removal may proceed.
func confirmRemoval(ctx context.Context, app *App, yes bool, what string) error {
	if yes {
		return nil
	}
	if !app.interactive() {
		return fmt.Errorf("refusing to remove %s without --yes", what)
	}
	ok := false
	if err := wizardConfirm(fmt.Sprintf("Remove %s?", what), &ok).RunWithContext(ctx); err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("cancelled")
	}
	return nil
}
