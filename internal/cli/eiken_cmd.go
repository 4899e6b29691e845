package cli

import (
	"fmt"
	"strconv"

	jukuapp "github.com/alexanderramin/juku/internal/app"
	"github.com/alexanderramin/juku/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newEikenCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eiken",
		Short: "Record Eiken (STEP) results, one per grade",
	}
	cmd.AddCommand(
		newEikenSetCmd(app),
		newEikenListCmd(app),
		newEikenRemoveCmd(app),
	)
	return cmd
}

func newEikenSetCmd(app *App) *cobra.Command {
	var in jukuapp.EikenInput
	var score int

	cmd := &cobra.Command{
		Use:   "set [student-id]",
		Short: "Record the result for a grade, replacing an earlier one",
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
			optionalInt(cmd.Flags(), "cse", score, &in.CSEScore)

			r, err := app.Eiken.Record(ctx, viewer, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded grade %s (CSE %s) [#%d]\n",
				r.Grade.Label(), formatter.FormatOptionalInt(r.CSEScore), r.ID)
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&in.Grade, "grade", "", "Grade: 1, pre1, 2, pre2, 3, 4 or 5")
	fs.IntVar(&score, "cse", 0, "CSE score")
	fs.StringVar(&in.ExamDate, "date", "", "Exam date (YYYY-MM-DD)")
	fs.StringVar(&in.Result, "result", "", "Result, e.g. passed")
	_ = cmd.MarkFlagRequired("grade")

	return cmd
}

func newEikenListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list [student-id]",
		Short: "List a student's Eiken results, hardest grade first",
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
			results, err := app.Eiken.List(ctx, viewer, id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatEikenResults(results))
			return nil
		},
	}
}

func newEikenRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove <result-id>",
		Short: "Delete an Eiken result",
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
			if err := confirmRemoval(ctx, app, yes, "Eiken result #"+strconv.FormatInt(id, 10)); err != nil {
				return err
			}
			if err := app.Eiken.Delete(ctx, viewer, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed Eiken result #%d\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
