package cli

import (
	"fmt"

	jukuapp "github.com/alexanderramin/juku/internal/app"
	"github.com/alexanderramin/juku/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	var subject string

	cmd := &cobra.Command{
		Use:     "dashboard [student-id]",
		Aliases: []string{"dash"},
		Short:   "Show a student's planned and achieved study hours",
		Args:    cobra.MaximumNArgs(1),
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
			resp, err := app.Dashboard.GetDashboard(ctx, jukuapp.DashboardRequest{
				StudentID: id,
				Viewer:    viewer,
				Subject:   subject,
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDashboard(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Only this subject (past-exam hours are left out)")

	return cmd
}
