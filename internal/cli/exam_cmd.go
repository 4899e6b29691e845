package cli

import (
	"fmt"
	"strconv"

	jukuapp "github.com/alexanderramin/juku/internal/app"
	"github.com/alexanderramin/juku/internal/cli/formatter"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newExamCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exam",
		Short: "Log past-exam practice",
	}
	cmd.AddCommand(
		newExamLogCmd(app),
		newExamListCmd(app),
		newExamRemoveCmd(app),
	)
	return cmd
}

// optionalInt sets *dst when the flag was given.
func optionalInt(fs *pflag.FlagSet, name string, v int, dst **int) {
	if fs.Changed(name) {
		*dst = &v
	}
}

func newExamLogCmd(app *App) *cobra.Command {
	var in jukuapp.PastExamInput
	var minutes, allowed, correct, questions int

	cmd := &cobra.Command{
		Use:   "log [student-id]",
		Short: "Record one past-exam attempt",
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
			in.StudentID = id
			if in.Date == "" {
				in.Date = app.today().Format("2006-01-02")
			}
			fs := cmd.Flags()
			optionalInt(fs, "minutes", minutes, &in.TimeRequiredMin)
			optionalInt(fs, "allowed", allowed, &in.TotalTimeAllowedMin)
			optionalInt(fs, "correct", correct, &in.CorrectAnswers)
			optionalInt(fs, "questions", questions, &in.TotalQuestions)

			r, err := app.PastExams.Log(ctx, viewer, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s %s (%s) [#%d]\n",
				r.University, r.Subject, formatter.FormatOptionalMinutes(r.TimeRequiredMin), r.ID)
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&in.Date, "date", "", "Date practiced (YYYY-MM-DD, default today)")
	fs.StringVar(&in.University, "university", "", "University")
	fs.StringVar(&in.Faculty, "faculty", "", "Faculty")
	fs.StringVar(&in.ExamSystem, "system", "", "Exam system")
	fs.IntVar(&in.Year, "year", 0, "Exam year practiced")
	fs.StringVar(&in.Subject, "subject", "", "Subject")
	fs.IntVar(&minutes, "minutes", 0, "Minutes taken")
	fs.IntVar(&allowed, "allowed", 0, "Minutes allowed")
	fs.IntVar(&correct, "correct", 0, "Correct answers")
	fs.IntVar(&questions, "questions", 0, "Total questions")
	_ = cmd.MarkFlagRequired("university")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}

func newExamListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list [student-id]",
		Short: "List a student's past-exam results with total practice time",
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
			results, err := app.PastExams.List(ctx, viewer, id)
			if err != nil {
				return err
			}
			hours, err := app.PastExams.TotalHours(ctx, viewer, id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPastExams(results, hours))
			return nil
		},
	}
}

func newExamRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove <result-id>",
		Short: "Delete a past-exam result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			viewer, err := app.viewer(ctx)
			if err != nil {
				return err
			}
			id, err := parseID("result", args[0])
			if err != nil {
				return err
			}
			if err := confirmRemoval(ctx, app, yes, "past exam #"+strconv.FormatInt(id, 10)); err != nil {
				return err
			}
			if err := app.PastExams.Delete(ctx, viewer, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed past exam #%d\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
