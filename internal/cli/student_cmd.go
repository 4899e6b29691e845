package cli

import (
	"fmt"
	"strconv"

	jukuapp "github.com/alexanderramin/juku/internal/app"
	"github.com/alexanderramin/juku/internal/cli/formatter"
	"github.com/alexanderramin/juku/internal/repository"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newStudentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "student",
		Short: "Manage students and their instructors",
	}

	cmd.AddCommand(
		newStudentAddCmd(app),
		newStudentListCmd(app),
		newStudentShowCmd(app),
		newStudentUpdateCmd(app),
		newStudentRemoveCmd(app),
		newStudentAssignCmd(app),
		newStudentUnassignCmd(app),
	)

	return cmd
}

// studentFlags binds the editable student fields.
type studentFlags struct {
	in        jukuapp.StudentInput
	deviation int
}

func (f *studentFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.in.Name, "name", "", "Student name")
	fs.StringVar(&f.in.School, "school", "", "School (classroom) name")
	fs.IntVar(&f.deviation, "deviation", 0, "Deviation value (0-100)")
	fs.StringVar(&f.in.TargetLevel, "target-level", "", "Target level (basic, tier2, tier3, tier4)")
	fs.StringVar(&f.in.Grade, "grade", "", "Grade")
	fs.StringVar(&f.in.PreviousSchool, "previous-school", "", "Previous school")
}

// applyTo copies only the flags the user set onto in.
func (f *studentFlags) applyTo(fs *pflag.FlagSet, in *jukuapp.StudentInput) {
	if fs.Changed("name") {
		in.Name = f.in.Name
	}
	if fs.Changed("school") {
		in.School = f.in.School
	}
	if fs.Changed("deviation") {
		v := f.deviation
		in.DeviationValue = &v
	}
	if fs.Changed("target-level") {
		in.TargetLevel = f.in.TargetLevel
	}
	if fs.Changed("grade") {
		in.Grade = f.in.Grade
	}
	if fs.Changed("previous-school") {
		in.PreviousSchool = f.in.PreviousSchool
	}
}

func newStudentAddCmd(app *App) *cobra.Command {
	var flags studentFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a student",
		RunE: func(cmd *cobra.Command, args []string) error {
			var in jukuapp.StudentInput
			flags.applyTo(cmd.Flags(), &in)

			s, err := app.Students.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created student %s [#%d]\n", s.DisplayName(), s.ID)
			return nil
		},
	}

	flags.register(cmd.Flags())
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("school")

	return cmd
}

func newStudentListCmd(app *App) *cobra.Command {
	var f repository.StudentFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the students you can see",
		RunE: func(cmd *cobra.Command, args []string) error {
			viewer, err := app.viewer(cmd.Context())
			if err != nil {
				return err
			}
			students, err := app.Students.List(cmd.Context(), viewer, f)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStudentList(students))
			return nil
		},
	}

	cmd.Flags().StringVar(&f.School, "school", "", "Only students of this school")
	cmd.Flags().StringVar(&f.Grade, "grade", "", "Only students of this grade")

	return cmd
}

func newStudentShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [student-id]",
		Short: "Show a student's profile",
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
			s, err := app.Students.Get(ctx, viewer, id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatStudentDetail(s))
			return nil
		},
	}
}

func newStudentUpdateCmd(app *App) *cobra.Command {
	var flags studentFlags

	cmd := &cobra.Command{
		Use:   "update <student-id>",
		Short: "Change a student's profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			viewer, err := app.viewer(ctx)
			if err != nil {
				return err
			}
			id, err := parseID("student", args[0])
			if err != nil {
				return err
			}
			current, err := app.Students.Get(ctx, viewer, id)
			if err != nil {
				return err
			}

			in := jukuapp.StudentInput{
				Name:           current.Name,
				School:         current.School,
				DeviationValue: current.DeviationValue,
				TargetLevel:    string(current.TargetLevel),
				Grade:          current.Grade,
				PreviousSchool: current.PreviousSchool,
			}
			flags.applyTo(cmd.Flags(), &in)

			s, err := app.Students.Update(ctx, viewer, id, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated student %s [#%d]\n", s.DisplayName(), s.ID)
			return nil
		},
	}

	flags.register(cmd.Flags())

	return cmd
}

func newStudentRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove <student-id>",
		Short: "Delete a student with all progress and exam records (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			viewer, err := app.viewer(ctx)
			if err != nil {
				return err
			}
			id, err := parseID("student", args[0])
			if err != nil {
				return err
			}
			if err := confirmRemoval(ctx, app, yes, "student #"+strconv.FormatInt(id, 10)); err != nil {
				return err
			}
			if err := app.Students.Delete(ctx, viewer, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed student #%d\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func newStudentAssignCmd(app *App) *cobra.Command {
	var sub bool

	cmd := &cobra.Command{
		Use:   "assign <student-id> <username>",
		Short: "Assign an instructor to a student",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("student", args[0])
			if err != nil {
				return err
			}
			if err := app.Students.AssignInstructor(cmd.Context(), id, args[1], !sub); err != nil {
				return err
			}
			role := "main"
			if sub {
				role = "sub"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Assigned %s as %s instructor of student #%d\n", args[1], role, id)
			return nil
		},
	}

	cmd.Flags().BoolVar(&sub, "sub", false, "Assign as a sub instructor instead of main")

	return cmd
}

func newStudentUnassignCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unassign <student-id> <username>",
		Short: "Remove an instructor from a student",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("student", args[0])
			if err != nil {
				return err
			}
			if err := app.Students.UnassignInstructor(cmd.Context(), id, args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Unassigned %s from student #%d\n", args[1], id)
			return nil
		},
	}
}
