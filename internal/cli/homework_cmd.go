package cli

import (
	"fmt"
	"strconv"
	"strings"

	jukuapp "github.com/alexanderramin/juku/internal/app"
	"github.com/alexanderramin/juku/internal/cli/formatter"
	"github.com/alexanderramin/juku/internal/domain"
	"github.com/spf13/cobra"
)

func newHomeworkCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "homework",
		Short: "Assign and track daily homework per book",
	}
	cmd.AddCommand(
		newHomeworkSetCmd(app),
		newHomeworkListCmd(app),
		newHomeworkStatusCmd(app),
		newHomeworkRemoveCmd(app),
	)
	return cmd
}

func newHomeworkSetCmd(app *App) *cobra.Command {
	var (
		in                  jukuapp.HomeworkInput
		pattern             string
		startPage, interval int
		achievement         int
	)

	cmd := &cobra.Command{
		Use:   "set [student-id]",
		Short: "Replace a book's homework with daily tasks",
		Long: `Replace a book's homework with one task per day starting at --start.

Give the tasks with --task (repeatable; an empty task leaves its day free),
or generate page ranges with --pattern, --start-page and --interval.
Pattern 4-2 is four days of new pages then two review days; 2-1 and 6-0
work the same way.`,
		Args: cobra.MaximumNArgs(1),
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
			if in.Start == "" {
				in.Start = app.today().Format(domain.DateLayout)
			}
			if pattern != "" {
				if len(in.Tasks) > 0 {
					return fmt.Errorf("give --task or --pattern, not both")
				}
				if in.Tasks, err = domain.PageSchedule(pattern, startPage, interval); err != nil {
					return err
				}
			}
			optionalInt(cmd.Flags(), "achievement", achievement, &in.Achievement)

			rows, err := app.Homework.Save(ctx, viewer, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %d tasks for %s\n", len(rows), bookLabel(in.Book, in.CustomBook))
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHomework(rows))
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&in.Subject, "subject", "", "Subject")
	fs.StringVar(&in.Book, "book", "", "Catalog book name")
	fs.StringVar(&in.CustomBook, "custom", "", "Book name outside the catalog")
	fs.StringVar(&in.Start, "start", "", "First task date (YYYY-MM-DD, default today)")
	fs.StringArrayVar(&in.Tasks, "task", nil, "Task for the next day (repeatable)")
	fs.StringVar(&pattern, "pattern", "", "Page pattern: "+strings.Join(domain.HomeworkPatterns, ", "))
	fs.IntVar(&startPage, "start-page", 1, "First page for --pattern")
	fs.IntVar(&interval, "interval", 1, "Pages per day for --pattern")
	fs.StringVar(&in.Remarks, "remarks", "", "Remarks")
	fs.StringVar(&in.TestResult, "test-result", "", "Check test result")
	fs.IntVar(&achievement, "achievement", 0, "Achievement rate (0-100)")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}

func bookLabel(book, custom string) string {
	if book != "" {
		return book
	}
	return custom + " (custom)"
}

func newHomeworkListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list [student-id]",
		Short: "List a student's homework by subject and book",
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
			rows, err := app.Homework.List(ctx, viewer, id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHomework(rows))
			return nil
		},
	}
}

func newHomeworkStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status <task-id> <not_started|in_progress|done>",
		Short: "Set the status of one homework task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			viewer, err := app.viewer(ctx)
			if err != nil {
				return err
			}
			id, err := parseID("task", args[0])
			if err != nil {
				return err
			}
			if err := app.Homework.SetStatus(ctx, viewer, id, domain.HomeworkStatus(args[1])); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Task #%d is now %s\n", id, args[1])
			return nil
		},
	}
}

func newHomeworkRemoveCmd(app *App) *cobra.Command {
	var subject, book, custom string
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove [student-id]",
		Short: "Delete all homework of one book",
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
			what := "homework for " + bookLabel(book, custom) + " of student #" + strconv.FormatInt(id, 10)
			if err := confirmRemoval(ctx, app, yes, what); err != nil {
				return err
			}
			n, err := app.Homework.DeleteBook(ctx, viewer, id, subject, book, custom)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d tasks\n", n)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Subject")
	cmd.Flags().StringVar(&book, "book", "", "Catalog book name")
	cmd.Flags().StringVar(&custom, "custom", "", "Book name outside the catalog")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
