package cli

import (
	"fmt"
	"strconv"

	jukuapp "github.com/alexanderramin/juku/internal/app"
	"github.com/alexanderramin/juku/internal/cli/formatter"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newPresetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage bulk presets of catalog books",
		Long:  "Manage bulk presets: named lists of catalog books of one subject that \"juku progress plan --preset\" plans in one go.",
	}
	cmd.AddCommand(
		newPresetAddCmd(app),
		newPresetListCmd(app),
		newPresetUpdateCmd(app),
		newPresetRemoveCmd(app),
	)
	return cmd
}

func presetFlags(fs *pflag.FlagSet, in *jukuapp.PresetInput) {
	fs.StringVar(&in.Subject, "subject", "", "Subject")
	fs.StringVar(&in.Name, "name", "", "Preset name")
	fs.StringArrayVar(&in.Books, "book", nil, "Catalog book name (repeatable, in plan order)")
}

func newPresetAddCmd(app *App) *cobra.Command {
	var in jukuapp.PresetInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a preset",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Presets.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added preset %s / %s with %d books [#%d]\n", p.Subject, p.Name, len(p.Books), p.ID)
			return nil
		},
	}

	presetFlags(cmd.Flags(), &in)
	_ = cmd.MarkFlagRequired("subject")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newPresetListCmd(app *App) *cobra.Command {
	var subject string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List presets by subject",
		RunE: func(cmd *cobra.Command, args []string) error {
			presets, err := app.Presets.List(cmd.Context(), subject)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPresets(presets))
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Only this subject")

	return cmd
}

func newPresetUpdateCmd(app *App) *cobra.Command {
	var flags jukuapp.PresetInput

	cmd := &cobra.Command{
		Use:   "update <preset-id>",
		Short: "Rename a preset or replace its books",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := parseID("preset", args[0])
			if err != nil {
				return err
			}
			existing, err := app.Presets.Get(ctx, id)
			if err != nil {
				return err
			}
			in := jukuapp.PresetInput{Subject: existing.Subject, Name: existing.Name, Books: existing.Books}
			fs := cmd.Flags()
			if fs.Changed("subject") {
				in.Subject = flags.Subject
			}
			if fs.Changed("name") {
				in.Name = flags.Name
			}
			if fs.Changed("book") {
				in.Books = flags.Books
			}

			p, err := app.Presets.Update(ctx, id, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated preset %s / %s [#%d]\n", p.Subject, p.Name, p.ID)
			return nil
		},
	}

	presetFlags(cmd.Flags(), &flags)

	return cmd
}

func newPresetRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove <preset-id>",
		Short: "Delete a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := parseID("preset", args[0])
			if err != nil {
				return err
			}
			if err := confirmRemoval(ctx, app, yes, "preset #"+strconv.FormatInt(id, 10)); err != nil {
				return err
			}
			if err := app.Presets.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed preset #%d\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
