package cli

import (
	"context"
	"fmt"
	"strconv"

	jukuapp "github.com/alexanderramin/juku/internal/app"
	"github.com/alexanderramin/juku/internal/cli/formatter"
	"github.com/alexanderramin/juku/internal/domain"
	"github.com/alexanderramin/juku/internal/repository"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newTextbookCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "textbook",
		Aliases: []string{"book"},
		Short:   "Manage the master textbook catalog",
	}

	cmd.AddCommand(
		newTextbookAddCmd(app),
		newTextbookListCmd(app),
		newTextbookUpdateCmd(app),
		newTextbookRemoveCmd(app),
	)

	return cmd
}

type textbookFlags struct {
	in    jukuapp.TextbookInput
	hours float64
}

func (f *textbookFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.in.Subject, "subject", "", "Subject")
	fs.StringVar(&f.in.Level, "level", "", "Level (basic, tier2, tier3, tier4)")
	fs.StringVar(&f.in.Name, "name", "", "Book name")
	fs.Float64Var(&f.hours, "hours", 0, "Nominal study hours")
}

func (f *textbookFlags) applyTo(fs *pflag.FlagSet, in *jukuapp.TextbookInput) {
	if fs.Changed("subject") {
		in.Subject = f.in.Subject
	}
	if fs.Changed("level") {
		in.Level = f.in.Level
	}
	if fs.Changed("name") {
		in.Name = f.in.Name
	}
	if fs.Changed("hours") {
		h := f.hours
		in.Duration = &h
	}
}

func newTextbookAddCmd(app *App) *cobra.Command {
	var flags textbookFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a book to the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			var in jukuapp.TextbookInput
			flags.applyTo(cmd.Flags(), &in)

			b, err := app.Textbooks.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s / %s / %s [#%d]\n", b.Subject, b.Level, b.Name, b.ID)
			return nil
		},
	}

	flags.register(cmd.Flags())
	_ = cmd.MarkFlagRequired("subject")
	_ = cmd.MarkFlagRequired("level")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newTextbookListCmd(app *App) *cobra.Command {
	var (
		f     repository.TextbookFilter
		level string
		flat  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the catalog grouped by subject and level",
		RunE: func(cmd *cobra.Command, args []string) error {
			f.Level = domain.Level(level)
			if flat {
				books, err := app.Textbooks.List(cmd.Context(), f)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTextbookList(books))
				return nil
			}
			catalog, err := app.Textbooks.ListGrouped(cmd.Context(), f)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCatalog(catalog))
			return nil
		},
	}

	cmd.Flags().StringVar(&f.Subject, "subject", "", "Only this subject")
	cmd.Flags().StringVar(&level, "level", "", "Only this level")
	cmd.Flags().StringVar(&f.Search, "search", "", "Match part of the book name")
	cmd.Flags().BoolVar(&flat, "flat", false, "Print a flat table instead of a tree")

	return cmd
}

// findTextbook looks a catalog entry up by ID.
func findTextbook(ctx context.Context, app *App, id int64) (*domain.MasterTextbook, error) {
	books, err := app.Textbooks.List(ctx, repository.TextbookFilter{})
	if err != nil {
		return nil, err
	}
	for _, b := range books {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, fmt.Errorf("textbook #%d: %w", id, repository.ErrNotFound)
}

func newTextbookUpdateCmd(app *App) *cobra.Command {
	var flags textbookFlags

	cmd := &cobra.Command{
		Use:   "update <textbook-id>",
		Short: "Change a catalog entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("textbook", args[0])
			if err != nil {
				return err
			}
			current, err := findTextbook(cmd.Context(), app, id)
			if err != nil {
				return err
			}
			in := jukuapp.TextbookInput{
				Subject:  current.Subject,
				Level:    string(current.Level),
				Name:     current.Name,
				Duration: current.Duration,
			}
			flags.applyTo(cmd.Flags(), &in)

			b, err := app.Textbooks.Update(cmd.Context(), id, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s / %s / %s [#%d]\n", b.Subject, b.Level, b.Name, b.ID)
			return nil
		},
	}

	flags.register(cmd.Flags())

	return cmd
}

func newTextbookRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove <textbook-id>",
		Short: "Delete a catalog entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("textbook", args[0])
			if err != nil {
				return err
			}
			if err := confirmRemoval(cmd.Context(), app, yes, "textbook #"+strconv.FormatInt(id, 10)); err != nil {
				return err
			}
			if err := app.Textbooks.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed textbook #%d\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
