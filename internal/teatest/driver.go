// Package teatest drives bubbletea models synchronously in tests.
//
// Update is called directly and returned Cmds are drained in place, so
// no tea.Program or goroutine scheduling is involved.
package teatest

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxDrainDepth bounds Cmd chains that keep producing messages.
const MaxDrainDepth = 50

// Cmds that do not return within cmdTimeout are dropped (timers, ticks).
const cmdTimeout = 10 * time.Millisecond

var namedKeys = map[string]tea.KeyType{
	"enter":  tea.KeyEnter,
	"esc":    tea.KeyEsc,
	"ctrl+c": tea.KeyCtrlC,
	"up":     tea.KeyUp,
	"down":   tea.KeyDown,
	"pgup":   tea.KeyPgUp,
	"pgdown": tea.KeyPgDown,
	"home":   tea.KeyHome,
	"end":    tea.KeyEnd,
}

// Driver feeds messages to a model and records whether it asked to quit.
type Driver struct {
	t     *testing.T
	model tea.Model
	quit  bool
}

// New returns a Driver sized to width x height.
func New(t *testing.T, model tea.Model, width, height int) *Driver {
	t.Helper()
	d := &Driver{t: t, model: model}
	d.drain(model.Init(), 0)
	d.Send(tea.WindowSizeMsg{Width: width, Height: height})
	return d
}

// Send dispatches msg and drains the resulting Cmds. Messages after a quit
// are ignored.
func (d *Driver) Send(msg tea.Msg) {
	d.t.Helper()
	if d.quit {
		return
	}
	next, cmd := d.model.Update(msg)
	d.model = next
	d.drain(cmd, 0)
}

// Press sends each key in turn. Names such as "esc" or "pgdown" map to
// their key type; anything else is sent as runes.
func (d *Driver) Press(keys ...string) {
	d.t.Helper()
	for _, k := range keys {
		if kt, ok := namedKeys[k]; ok {
			d.Send(tea.KeyMsg{Type: kt})
			continue
		}
		d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
	}
}

// Model returns the current model.
func (d *Driver) Model() tea.Model { return d.model }

// View renders the current model.
func (d *Driver) View() string { return d.model.View() }

// Quitting reports whether the model returned tea.Quit.
func (d *Driver) Quitting() bool { return d.quit }

func (d *Driver) drain(cmd tea.Cmd, depth int) {
	d.t.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDrainDepth {
		d.t.Logf("teatest: drain depth limit %d reached", MaxDrainDepth)
		return
	}

	switch msg := run(cmd).(type) {
	case nil:
	case tea.QuitMsg:
		d.quit = true
	case tea.BatchMsg:
		for _, sub := range msg {
			d.drain(sub, depth+1)
		}
	default:
		next, nextCmd := d.model.Update(msg)
		d.model = next
		d.drain(nextCmd, depth+1)
	}
}

func run(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}
