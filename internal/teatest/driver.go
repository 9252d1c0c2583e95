// Package teatest drives bubbletea models synchronously in tests.
//
// Update is called directly and returned Cmds are executed and fed back
// until none remain, so views can be exercised without a tea.Program or a
// terminal.
package teatest

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxDrainDepth bounds command chains so a model that keeps scheduling work
// cannot hang a test.
const MaxDrainDepth = 100

// cmdTimeout skips Cmds that block on timers (ticks, blinks).
const cmdTimeout = 50 * time.Millisecond

type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once tea.Quit has been returned.
	Quitting bool
}

type Option func(*Driver)

func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// WithSize sends an initial WindowSizeMsg.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.Model, _ = d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

// DrainInit runs the model's Init command and everything it leads to.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drain(d.Model.Init(), 0)
}

// Send dispatches msg through Update and drains the result.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	var cmd tea.Cmd
	d.Model, cmd = d.Model.Update(msg)
	d.drain(cmd, 0)
}

func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func (d *Driver) PressKeyType(k tea.KeyType) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: k})
}

func (d *Driver) View() string {
	return d.Model.View()
}

func (d *Driver) drain(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDrainDepth {
		d.T.Logf("teatest: drain depth limit (%d) reached", MaxDrainDepth)
		return
	}

	msg := execWithTimeout(cmd)
	switch msg := msg.(type) {
	case nil:
		return
	case tea.BatchMsg:
		for _, sub := range msg {
			d.drain(sub, depth+1)
		}
	case tea.QuitMsg:
		d.Quitting = true
	default:
		var next tea.Cmd
		d.Model, next = d.Model.Update(msg)
		d.drain(next, depth+1)
	}
}

func execWithTimeout(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}
