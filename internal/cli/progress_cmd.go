package cli

import (
	"context"
	"fmt"

	jukuapp "github.com/alexanderramin/juku/internal/app"
	"github.com/alexanderramin/juku/internal/cli/formatter"
	"github.com/alexanderramin/juku/internal/domain"
	"github.com/spf13/cobra"
)

func newProgressCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Record study progress on catalog books",
	}
	cmd.AddCommand(
		newProgressSetCmd(app),
		newProgressListCmd(app),
		newProgressUnplanCmd(app),
		newProgressPlanCmd(app),
	)
	return cmd
}

// accessibleStudent resolves the acting user and the student argument, and
// checks the user may see that student.
func accessibleStudent(ctx context.Context, app *App, args []string) (*domain.User, *domain.Student, error) {
	viewer, err := app.viewer(ctx)
	if err != nil {
		return nil, nil, err
	}
	id, err := resolveStudentID(ctx, app, viewer, args)
	if err != nil {
		return nil, nil, err
	}
	student, err := app.Students.Get(ctx, viewer, id)
	if err != nil {
		return nil, nil, err
	}
	return viewer, student, nil
}

func newProgressSetCmd(app *App) *cobra.Command {
	var (
		u         jukuapp.ProgressUpdate
		level     string
		hours     float64
		unplanned bool
		done      bool
	)

	cmd := &cobra.Command{
		Use:   "set [student-id]",
		Short: "Plan a book for a student or update its units",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			viewer, student, err := accessibleStudent(ctx, app, args)
			if err != nil {
				return err
			}

			u.Level = domain.Level(level)
			u.IsPlanned = !unplanned
			if cmd.Flags().Changed("hours") {
				h := hours
				u.Duration = &h
			}
			if cmd.Flags().Changed("done") {
				d := done
				u.IsDone = &d
			}

			if _, err := app.Progress.Upsert(ctx, viewer, student.ID, []jukuapp.ProgressUpdate{u}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s / %s / %s for %s\n", u.Subject, u.Level, u.ItemName, student.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&u.Subject, "subject", "", "Subject")
	cmd.Flags().StringVar(&level, "level", "", "Level")
	cmd.Flags().StringVar(&u.ItemName, "book", "", "Book name")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Override the catalog hours for this student")
	cmd.Flags().IntVar(&u.CompletedUnits, "completed", 0, "Completed units")
	cmd.Flags().IntVar(&u.TotalUnits, "total", 1, "Total units")
	cmd.Flags().BoolVar(&unplanned, "unplanned", false, "Store the book as not planned")
	cmd.Flags().BoolVar(&done, "done", false, "Mark done regardless of units (--done=false to force not done)")
	_ = cmd.MarkFlagRequired("subject")
	_ = cmd.MarkFlagRequired("level")
	_ = cmd.MarkFlagRequired("book")

	return cmd
}

func newProgressListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list [student-id]",
		Short: "List a student's progress rows",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			viewer, student, err := accessibleStudent(ctx, app, args)
			if err != nil {
				return err
			}
			items, err := app.Progress.List(ctx, viewer, student.ID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProgressList(items))
			return nil
		},
	}
}

func newProgressUnplanCmd(app *App) *cobra.Command {
	var subject, level, book string

	cmd := &cobra.Command{
		Use:   "unplan [student-id]",
		Short: "Take a book out of a student's plan, keeping the row",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			viewer, student, err := accessibleStudent(ctx, app, args)
			if err != nil {
				return err
			}
			if err := app.Progress.Unplan(ctx, viewer, student.ID, subject, domain.Level(level), book); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Unplanned %s / %s / %s for %s\n", subject, level, book, student.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Subject")
	cmd.Flags().StringVar(&level, "level", "", "Level")
	cmd.Flags().StringVar(&book, "book", "", "Book name")
	_ = cmd.MarkFlagRequired("subject")
	_ = cmd.MarkFlagRequired("level")
	_ = cmd.MarkFlagRequired("book")

	return cmd
}

func newProgressPlanCmd(app *App) *cobra.Command {
	var presetID int64

	cmd := &cobra.Command{
		Use:   "plan [student-id]",
		Short: "Plan every book of a bulk preset for a student",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			viewer, student, err := accessibleStudent(ctx, app, args)
			if err != nil {
				return err
			}
			res, err := app.Progress.ApplyPreset(ctx, viewer, student.ID, presetID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Applied %q to %s\n", res.Preset.Name, student.Name)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPresetApply(res))
			return nil
		},
	}

	cmd.Flags().Int64Var(&presetID, "preset", 0, "Bulk preset ID (see juku preset list)")
	_ = cmd.MarkFlagRequired("preset")

	return cmd
}
