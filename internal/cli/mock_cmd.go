package cli

import (
	"fmt"
	"strconv"
	"strings"

	jukuapp "github.com/alexanderramin/juku/internal/app"
	"github.com/alexanderramin/juku/internal/cli/formatter"
	"github.com/alexanderramin/juku/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newMockCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mock",
		Short: "Record mock exam results",
	}
	cmd.AddCommand(
		newMockAddCmd(app),
		newMockListCmd(app),
		newMockUpdateCmd(app),
		newMockRemoveCmd(app),
	)
	return cmd
}

// mockFlags binds the result fields to fs. Scores are given as
// --score math1a=64,english_r=82.
func mockFlags(fs *pflag.FlagSet, in *jukuapp.MockExamInput) {
	fs.StringVar(&in.ResultType, "type", string(domain.MockSelfGraded), "self_graded or official")
	fs.StringVar(&in.Name, "name", "", "Mock exam name")
	fs.StringVar(&in.Format, "format", string(domain.MockFormatMark), "mark or written")
	fs.StringVar(&in.Grade, "grade", "", "School grade the exam targets")
	fs.StringVar(&in.Round, "round", "", "Round of the exam series")
	fs.StringVar(&in.ExamDate, "date", "", "Exam date (YYYY-MM-DD)")
	fs.StringToIntVar(&in.Scores, "score", nil, "Subject scores, e.g. math1a=64,english_r=82 (mark: "+
		strings.Join(domain.MockFormatMark.Subjects(), " ")+"; written: "+
		strings.Join(domain.MockFormatWritten.Subjects(), " ")+")")
}

func newMockAddCmd(app *App) *cobra.Command {
	var in jukuapp.MockExamInput

	cmd := &cobra.Command{
		Use:   "add [student-id]",
		Short: "Record a mock exam result",
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
			r, err := app.MockExams.Add(ctx, viewer, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s, total %d [#%d]\n", r.Name, r.Total(), r.ID)
			return nil
		},
	}

	mockFlags(cmd.Flags(), &in)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("grade")
	_ = cmd.MarkFlagRequired("round")

	return cmd
}

func newMockListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list [student-id]",
		Short: "List a student's mock exam results, newest first",
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
			results, err := app.MockExams.List(ctx, viewer, id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMockExams(results))
			return nil
		},
	}
}

func newMockUpdateCmd(app *App) *cobra.Command {
	var flags jukuapp.MockExamInput

	cmd := &cobra.Command{
		Use:   "update <result-id>",
		Short: "Change fields of a mock exam result",
		Long:  "Change fields of a mock exam result. Flags left out keep their stored value; --score replaces the whole score set.",
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
			existing, err := app.MockExams.Get(ctx, viewer, id)
			if err != nil {
				return err
			}

			in := jukuapp.MockExamInputFrom(existing)
			fs := cmd.Flags()
			for name, dst := range map[string]*string{
				"type": &in.ResultType, "name": &in.Name, "format": &in.Format,
				"grade": &in.Grade, "round": &in.Round, "date": &in.ExamDate,
			} {
				if fs.Changed(name) {
					v, _ := fs.GetString(name)
					*dst = v
				}
			}
			if fs.Changed("score") {
				in.Scores = flags.Scores
			}

			r, err := app.MockExams.Update(ctx, viewer, id, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s, total %d [#%d]\n", r.Name, r.Total(), r.ID)
			return nil
		},
	}

	mockFlags(cmd.Flags(), &flags)

	return cmd
}

func newMockRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove <result-id>",
		Short: "Delete a mock exam result",
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
			if err := confirmRemoval(ctx, app, yes, "mock exam #"+strconv.FormatInt(id, 10)); err != nil {
				return err
			}
			if err := app.MockExams.Delete(ctx, viewer, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed mock exam #%d\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
