package cli

import (
	"fmt"
	"strings"
	"time"

	jukuapp "github.com/alexanderramin/juku/internal/app"
	"github.com/alexanderramin/juku/internal/calendar"
	"github.com/alexanderramin/juku/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newCalendarCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Show application deadlines, exams and announcements as month grids",
	}
	cmd.AddCommand(
		newCalendarShowCmd(app),
		newCalendarRangeCmd(app),
		newCalendarBrowseCmd(app),
	)
	return cmd
}

func newCalendarShowCmd(app *App) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "show [student-id]",
		Short: "Show one month (default: the nearest month with an upcoming date)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			viewer, err := app.viewer(ctx)
			if err != nil {
				return err
			}
			id, err := resolveStudentID(ctx, app, viewer, args)
			if err != nil {
				return err
			}
			today := app.today()
			req := jukuapp.CalendarRequest{StudentID: id, Viewer: viewer, Today: &today}
			if month != "" {
				ym, err := calendar.ParseYearMonth(month)
				if err != nil {
					return err
				}
				req.Month = &ym
			}

			resp, err := app.Calendar.GetMonth(ctx, req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatCalendarResponse(resp, today))
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Month to show (YYYY-MM)")

	return cmd
}

func newCalendarRangeCmd(app *App) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "range [student-id]",
		Short: "Show every month between --from and --to",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			viewer, err := app.viewer(ctx)
			if err != nil {
				return err
			}
			id, err := resolveStudentID(ctx, app, viewer, args)
			if err != nil {
				return err
			}
			fromYM, err := calendar.ParseYearMonth(from)
			if err != nil {
				return err
			}
			toYM, err := calendar.ParseYearMonth(to)
			if err != nil {
				return err
			}

			resp, err := app.Calendar.GetRange(ctx, jukuapp.CalendarRangeRequest{
				StudentID: id,
				Viewer:    viewer,
				From:      fromYM,
				To:        toYM,
			})
			if err != nil {
				return err
			}
			today := app.today()
			parts := make([]string, len(resp.Months))
			for i, m := range resp.Months {
				parts[i] = formatter.FormatMonth(m, today)
			}
			fmt.Fprint(cmd.OutOrStdout(), strings.Join(parts, "\n"))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "First month (YYYY-MM)")
	cmd.Flags().StringVar(&to, "to", "", "Last month (YYYY-MM)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newCalendarBrowseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse [student-id]",
		Short: "Page through months interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("calendar browse needs an interactive terminal; use calendar show")
			}
			ctx := cmd.Context()
			viewer, err := app.viewer(ctx)
			if err != nil {
				return err
			}
			id, err := resolveStudentID(ctx, app, viewer, args)
			if err != nil {
				return err
			}
			p := tea.NewProgram(newMonthBrowser(ctx, app, viewer, id), tea.WithContext(ctx))
			_, err = p.Run()
			return err
		},
	}
}

func formatCalendarResponse(resp *jukuapp.CalendarResponse, today time.Time) string {
	var b strings.Builder
	if resp.Student != nil {
		b.WriteString(formatter.Bold(resp.Student.DisplayName()))
		if resp.Defaulted {
			b.WriteString(formatter.Dim("  · nearest month with an upcoming date"))
		}
		b.WriteString("\n\n")
	}
	b.WriteString(formatter.FormatMonth(resp.Month, today))
	b.WriteString(formatter.FormatUndated(resp.Undated))
	return b.String()
}
