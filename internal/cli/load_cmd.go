package cli

import (
	"fmt"

	"github.com/floodstat/floodstat/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newLoadCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load and validate a dataset without generating reports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := app.Datasets.Load(cmd.Context(), app.Config.Input)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatLoadResult(res))
			return nil
		},
	}
	cmd.Flags().StringP("input", "i", "", "dataset file (.csv or .xlsx)")
	return cmd
}
