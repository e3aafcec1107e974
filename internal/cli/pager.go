package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/floodstat/floodstat/internal/cli/formatter"
)

type pagerKeyMap struct {
	Quit key.Binding
	Top  key.Binding
	End  key.Binding
}

var pagerKeys = pagerKeyMap{
	Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "close")),
	Top:  key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
	End:  key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "end")),
}

// pagerModel shows report output in a scrollable viewport.
type pagerModel struct {
	vp      viewport.Model
	content string
	ready   bool
}

func newPagerModel(content string) pagerModel {
	return pagerModel{content: content}
}

func (m pagerModel) Init() tea.Cmd { return nil }

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := max(msg.Height-1, 1)
		if !m.ready {
			m.vp = viewport.New(msg.Width, height)
			m.vp.SetContent(m.content)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = height
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, pagerKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, pagerKeys.Top):
			m.vp.GotoTop()
			return m, nil
		case key.Matches(msg, pagerKeys.End):
			m.vp.GotoBottom()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m pagerModel) View() string {
	if !m.ready {
		return "loading..."
	}
	return m.vp.View() + "\n" + m.statusLine()
}

func (m pagerModel) statusLine() string {
	hints := []string{}
	for _, b := range []key.Binding{pagerKeys.Quit, pagerKeys.Top, pagerKeys.End} {
		h := b.Help()
		hints = append(hints, formatter.Bold(h.Key)+" "+formatter.Dim(h.Desc))
	}
	return scrollIndicator(m.vp) + "  " + strings.Join(hints, "  ")
}

func scrollIndicator(vp viewport.Model) string {
	if vp.AtTop() {
		return formatter.Dim("[TOP]")
	}
	if vp.AtBottom() {
		return formatter.Dim("[END]")
	}
	return formatter.Dim(fmt.Sprintf("[%d%%]", int(vp.ScrollPercent()*100)))
}

// runPager blocks until the user closes the pager.
func runPager(content string) error {
	_, err := tea.NewProgram(newPagerModel(content), tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}
