package cli

import (
	"fmt"
	"strconv"

	jukuapp "github.com/alexanderramin/juku/internal/app"
	"github.com/alexanderramin/juku/internal/cli/formatter"
	"github.com/alexanderramin/juku/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newApplicationCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "application",
		Aliases: []string{"app"},
		Short:   "Track university applications and their dates",
	}
	cmd.AddCommand(
		newApplicationAddCmd(app),
		newApplicationListCmd(app),
		newApplicationUpdateCmd(app),
		newApplicationRemoveCmd(app),
	)
	return cmd
}

type applicationFlags struct {
	in jukuapp.ApplicationInput
}

// applicationFields maps flag names onto the input fields they set.
func applicationFields(in *jukuapp.ApplicationInput) map[string]*string {
	return map[string]*string{
		"university":   &in.University,
		"faculty":      &in.Faculty,
		"department":   &in.Department,
		"system":       &in.ExamSystem,
		"result":       &in.Result,
		"deadline":     &in.ApplicationDeadline,
		"exam":         &in.ExamDate,
		"announcement": &in.AnnouncementDate,
		"procedure":    &in.ProcedureDeadline,
	}
}

func (f *applicationFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.in.University, "university", "", "University")
	fs.StringVar(&f.in.Faculty, "faculty", "", "Faculty")
	fs.StringVar(&f.in.Department, "department", "", "Department")
	fs.StringVar(&f.in.ExamSystem, "system", "", "Exam system")
	fs.StringVar(&f.in.Result, "result", "", "Result (passed or failed; empty for pending)")
	fs.StringVar(&f.in.ApplicationDeadline, "deadline", "", "Application deadline (YYYY-MM-DD)")
	fs.StringVar(&f.in.ExamDate, "exam", "", "Exam date (YYYY-MM-DD)")
	fs.StringVar(&f.in.AnnouncementDate, "announcement", "", "Results announcement date (YYYY-MM-DD)")
	fs.StringVar(&f.in.ProcedureDeadline, "procedure", "", "Enrollment procedure deadline (YYYY-MM-DD)")
}

// applyTo copies the flags the user set onto in. Setting a date flag to ""
// clears that date.
func (f *applicationFlags) applyTo(fs *pflag.FlagSet, in *jukuapp.ApplicationInput) {
	dst := applicationFields(in)
	for name, src := range applicationFields(&f.in) {
		if fs.Changed(name) {
			*dst[name] = *src
		}
	}
}

func inputFromRecord(rec *domain.ApplicationRecord) jukuapp.ApplicationInput {
	return jukuapp.ApplicationInput{
		StudentID:           rec.StudentID,
		University:          rec.University,
		Faculty:             rec.Faculty,
		Department:          rec.Department,
		ExamSystem:          rec.ExamSystem,
		Result:              string(rec.Result),
		ApplicationDeadline: domain.FormatOptionalDate(rec.ApplicationDeadline),
		ExamDate:            domain.FormatOptionalDate(rec.ExamDate),
		AnnouncementDate:    domain.FormatOptionalDate(rec.AnnouncementDate),
		ProcedureDeadline:   domain.FormatOptionalDate(rec.ProcedureDeadline),
	}
}

func newApplicationAddCmd(app *App) *cobra.Command {
	var flags applicationFlags

	cmd := &cobra.Command{
		Use:   "add [student-id]",
		Short: "Record a university application",
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
			in := flags.in
			in.StudentID = id

			rec, err := app.Applications.Create(ctx, viewer, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded application %s [#%d]\n", rec.Title(), rec.ID)
			return nil
		},
	}

	flags.register(cmd.Flags())
	_ = cmd.MarkFlagRequired("university")

	return cmd
}

func newApplicationListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list [student-id]",
		Short: "List a student's applications, latest exam first",
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
			records, err := app.Applications.List(ctx, viewer, id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatApplications(records, app.today()))
			return nil
		},
	}
}

func newApplicationUpdateCmd(app *App) *cobra.Command {
	var flags applicationFlags

	cmd := &cobra.Command{
		Use:   "update <application-id>",
		Short: "Change an application; pass an empty date to clear it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			viewer, err := app.viewer(ctx)
			if err != nil {
				return err
			}
			id, err := parseID("application", args[0])
			if err != nil {
				return err
			}
			current, err := app.Applications.Get(ctx, viewer, id)
			if err != nil {
				return err
			}
			in := inputFromRecord(current)
			flags.applyTo(cmd.Flags(), &in)

			rec, err := app.Applications.Update(ctx, viewer, id, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated application %s [#%d]\n", rec.Title(), rec.ID)
			return nil
		},
	}

	flags.register(cmd.Flags())

	return cmd
}

func newApplicationRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove <application-id>",
		Short: "Delete an application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			viewer, err := app.viewer(ctx)
			if err != nil {
				return err
			}
			id, err := parseID("application", args[0])
			if err != nil {
				return err
			}
			if err := confirmRemoval(ctx, app, yes, "application #"+strconv.FormatInt(id, 10)); err != nil {
				return err
			}
			if err := app.Applications.Delete(ctx, viewer, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed application #%d\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
