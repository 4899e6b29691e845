package cli

import (
	"fmt"

	jukuapp "github.com/alexanderramin/juku/internal/app"
	"github.com/alexanderramin/juku/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	var req jukuapp.StatisticsRequest

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Count students who completed material at each level",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Statistics.LevelStatistics(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStatistics(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&req.School, "school", "", "Only students of this school")
	cmd.Flags().StringVar(&req.Grade, "grade", "", "Only students of this grade")

	return cmd
}
