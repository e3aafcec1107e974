package cli

import (
	"fmt"

	"github.com/floodstat/floodstat/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Load a dataset and write every report",
		Example: `  floodstat report --input dpwh_flood_control_projects.csv --out reports/
  floodstat report -i projects.xlsx --workbook=false --sqlite snapshots.db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			loaded, err := app.Datasets.Load(ctx, app.Config.Input)
			if err != nil {
				return err
			}
			fmt.Fprint(out, formatter.FormatLoadResult(loaded))

			res, err := app.Reports.Generate(ctx, loaded.Dataset)
			if err != nil {
				return err
			}
			fmt.Fprint(out, formatter.FormatReports(res.Reports, res.Files))
			return nil
		},
	}
	cmd.Flags().StringP("input", "i", "", "dataset file (.csv or .xlsx)")
	cmd.Flags().StringP("out", "o", "", "directory for report files")
	cmd.Flags().Bool("workbook", true, "also write reports.xlsx")
	cmd.Flags().String("sqlite", "", "store the run in this SQLite database")
	return cmd
}
