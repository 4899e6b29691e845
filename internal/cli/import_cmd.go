package cli

import (
	"fmt"

	"github.com/alexanderramin/juku/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	var sheet string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Load catalog books from a CSV or Excel file",
		Long: `Load catalog books from a CSV or Excel workbook.

The first row is a header. Columns are level, subject, book name and an
optional duration in hours. Existing books (same subject, level and name)
get their duration updated.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Import.ImportTextbooks(cmd.Context(), args[0], sheet)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImportResult(res))
			return nil
		},
	}

	cmd.Flags().StringVar(&sheet, "sheet", "", "Worksheet to read (default: first sheet)")

	return cmd
}
