package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/floodstat/floodstat/internal/cli/formatter"
	"github.com/floodstat/floodstat/internal/domain"
	"github.com/spf13/cobra"
)

type menuAction int

const (
	actionLoad menuAction = iota + 1
	actionGenerate
	actionExit
)

var menuLabels = map[menuAction]string{
	actionLoad:     fmt.Sprintf("Load dataset (filter %d-%d)", domain.MinFundingYear, domain.MaxFundingYear),
	actionGenerate: "Generate reports",
	actionExit:     "Exit",
}

var menuOrder = []menuAction{actionLoad, actionGenerate, actionExit}

// errInvalidChoice is returned by a prompter for input that maps to no action.
var errInvalidChoice = errors.New("invalid choice")

// prompter is the input side of the menu loop.
type prompter interface {
	Choose(ctx context.Context) (menuAction, error)
	Path(ctx context.Context, def string) (string, error)
	Show(content string) error
}

// menuSession owns the dataset for one interactive run. Nothing is shared
// across sessions.
type menuSession struct {
	app     *App
	out     io.Writer
	prompt  prompter
	dataset *domain.Dataset
}

func newMenuCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Interactive load and report loop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMenu(cmd, app)
		},
	}
}

func runMenu(cmd *cobra.Command, app *App) error {
	out := cmd.OutOrStdout()
	var p prompter
	if app.interactive() {
		p = newHuhPrompter()
	} else {
		p = newLinePrompter(cmd.InOrStdin(), out)
	}
	s := &menuSession{app: app, out: out, prompt: p}
	return s.run(cmd.Context())
}

func (s *menuSession) run(ctx context.Context) error {
	fmt.Fprintln(s.out, formatter.Header("DPWH Flood Control Data Analysis"))
	for {
		action, err := s.prompt.Choose(ctx)
		switch {
		case errors.Is(err, errInvalidChoice):
			fmt.Fprintln(s.out, formatter.Warning("Invalid choice, please try again."))
			continue
		case errors.Is(err, io.EOF), errors.Is(err, errAborted), errors.Is(err, context.Canceled):
			return nil
		case err != nil:
			return err
		}

		switch action {
		case actionLoad:
			s.load(ctx)
		case actionGenerate:
			s.generate(ctx)
		case actionExit:
			fmt.Fprintln(s.out, formatter.Dim("Exiting."))
			return nil
		}
	}
}

// load replaces the session dataset on success. A failed load keeps the
// previous dataset.
func (s *menuSession) load(ctx context.Context) {
	path, err := s.prompt.Path(ctx, s.app.Config.Input)
	if err != nil {
		fmt.Fprintln(s.out, formatter.Failure(fmt.Sprintf("reading path: %v", err)))
		return
	}
	fmt.Fprintln(s.out, formatter.Dim("Processing "+path+"..."))

	res, err := s.app.Datasets.Load(ctx, path)
	if err != nil {
		fmt.Fprintln(s.out, formatter.Failure(fmt.Sprintf("Failed to load data: %v", err)))
		return
	}
	s.dataset = res.Dataset
	fmt.Fprint(s.out, formatter.FormatLoadResult(res))
}

func (s *menuSession) generate(ctx context.Context) {
	if s.dataset == nil {
		fmt.Fprintln(s.out, formatter.Warning("Please load the dataset first (option 1)."))
		return
	}
	fmt.Fprintln(s.out, formatter.Dim("Generating reports..."))

	res, err := s.app.Reports.Generate(ctx, s.dataset)
	if err != nil {
		fmt.Fprintln(s.out, formatter.Failure(fmt.Sprintf("Failed to generate reports: %v", err)))
		return
	}
	if err := s.prompt.Show(formatter.FormatReports(res.Reports, res.Files)); err != nil {
		fmt.Fprintln(s.out, formatter.Failure(fmt.Sprintf("displaying reports: %v", err)))
	}
}
