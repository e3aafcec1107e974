package cli

import (
	"github.com/floodstat/floodstat/internal/config"
	"github.com/floodstat/floodstat/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds the services and settings shared by every command.
type App struct {
	Datasets service.DatasetService
	Reports  service.ReportService
	Config   config.Config

	// Wire builds Datasets and Reports once Config is resolved. Leave it nil
	// when the services are set directly.
	Wire func(app *App) error

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool
}

func (app *App) interactive() bool {
	return app.IsInteractive != nil && app.IsInteractive()
}

func (app *App) configure(configFile string, flags *pflag.FlagSet) error {
	cfg, err := config.LoadConfig(configFile,
		config.FlagBinding{Key: "input", Flag: flags.Lookup("input")},
		config.FlagBinding{Key: "output_dir", Flag: flags.Lookup("out")},
		config.FlagBinding{Key: "workbook", Flag: flags.Lookup("workbook")},
		config.FlagBinding{Key: "sqlite_path", Flag: flags.Lookup("sqlite")},
		config.FlagBinding{Key: "log.level", Flag: flags.Lookup("log-level")},
	)
	if err != nil {
		return err
	}
	app.Config = cfg
	if app.Wire != nil {
		return app.Wire(app)
	}
	return nil
}

// NewRootCmd creates the top-level "floodstat" command. Run without a
// subcommand it opens the menu on a terminal and prints help otherwise.
func NewRootCmd(app *App) *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           "floodstat",
		Short:         "Flood control project analytics for funding years 2021-2023",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.configure(configFile, cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if app.interactive() {
				return runMenu(cmd, app)
			}
			return cmd.Help()
		},
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml, json or toml)")
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(
		newLoadCmd(app),
		newReportCmd(app),
		newMenuCmd(app),
	)
	return root
}
