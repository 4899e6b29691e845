package cli

import (
	"fmt"

	jukuapp "github.com/alexanderramin/juku/internal/app"
	"github.com/alexanderramin/juku/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newUserCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage admin and instructor accounts",
	}
	cmd.AddCommand(newUserAddCmd(app), newUserListCmd(app))
	return cmd
}

func newUserAddCmd(app *App) *cobra.Command {
	var in jukuapp.UserInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := app.Users.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s %s [#%d]\n", u.Role, u.Username, u.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Username, "username", "", "Login name")
	cmd.Flags().StringVar(&in.Role, "role", "instructor", "Role (admin or instructor)")
	cmd.Flags().StringVar(&in.School, "school", "", "School the user belongs to")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}

func newUserListCmd(app *App) *cobra.Command {
	var school string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := app.Users.List(cmd.Context(), school)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatUserList(users))
			return nil
		},
	}

	cmd.Flags().StringVar(&school, "school", "", "Only users of this school")

	return cmd
}
