package cli

import (
	"context"
	"errors"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/floodstat/floodstat/internal/cli/formatter"
)

// errAborted means the user cancelled a form (ctrl+c or esc).
var errAborted = errors.New("aborted")

func floodstatHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// huhPrompter drives the menu with huh forms and shows reports in the pager.
type huhPrompter struct {
	pager func(content string) error
}

func newHuhPrompter() *huhPrompter {
	return &huhPrompter{pager: runPager}
}

func (p *huhPrompter) Choose(ctx context.Context) (menuAction, error) {
	options := make([]huh.Option[menuAction], 0, len(menuOrder))
	for _, a := range menuOrder {
		options = append(options, huh.NewOption(menuLabels[a], a))
	}

	var action menuAction
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[menuAction]().
				Title("What next?").
				Options(options...).
				Value(&action),
		),
	).WithTheme(floodstatHuhTheme()).WithShowHelp(false)

	if err := form.RunWithContext(ctx); err != nil {
		return 0, formError(err)
	}
	return action, nil
}

func (p *huhPrompter) Path(ctx context.Context, def string) (string, error) {
	path := def
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Dataset path").
				Description(".csv or .xlsx").
				Value(&path).
				Validate(func(s string) error {
					if s == "" {
						return errors.New("path is required")
					}
					return nil
				}),
		),
	).WithTheme(floodstatHuhTheme()).WithShowHelp(false)

	if err := form.RunWithContext(ctx); err != nil {
		return "", formError(err)
	}
	return path, nil
}

func (p *huhPrompter) Show(content string) error {
	return p.pager(content)
}

func formError(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return errAborted
	}
	return err
}
