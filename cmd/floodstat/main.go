package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"

	"github.com/floodstat/floodstat/internal/analytics"
	"github.com/floodstat/floodstat/internal/cli"
	"github.com/floodstat/floodstat/internal/config"
	"github.com/floodstat/floodstat/internal/db"
	"github.com/floodstat/floodstat/internal/exporter"
	"github.com/floodstat/floodstat/internal/importer"
	"github.com/floodstat/floodstat/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var database *sql.DB
	defer func() {
		if database != nil {
			database.Close()
		}
	}()

	app := &cli.App{}

	// Services are built once flags, env and config file are resolved.
	app.Wire = func(app *cli.App) error {
		logger := config.NewLogger(app.Config.Log, os.Stderr)
		observer := service.NewLogUseCaseObserver(logger)

		exports := service.Exports{CSV: exporter.NewCSVExporter(logger)}
		if app.Config.Workbook {
			exports.Workbook = exporter.NewWorkbookExporter(logger)
		}
		if app.Config.SQLitePath != "" {
			var err error
			database, err = db.OpenDB(app.Config.SQLitePath)
			if err != nil {
				return fmt.Errorf("opening snapshot database: %w", err)
			}
			exports.Snapshots = db.NewSQLiteUnitOfWork(database)
		}

		app.Datasets = service.NewDatasetService(importer.NewLoader(logger), observer)
		app.Reports = service.NewReportService(app.Config.OutputDir, analytics.NewEngine(logger), exports, observer)
		return nil
	}

	// Detect interactive terminal for the huh menu and pager.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(ctx)
}
