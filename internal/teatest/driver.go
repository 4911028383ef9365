// Package teatest drives bubbletea models synchronously in tests: Update is
// called directly and returned commands are run inline, so no tea.Program or
// terminal is needed.
package teatest

import (
	"regexp"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxDepth bounds command chains so a self-rescheduling command cannot hang
// a test.
const maxDepth = 50

// cmdTimeout skips commands that block, such as tickers.
const cmdTimeout = 20 * time.Millisecond

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// Driver feeds messages to a tea.Model and tracks whether it asked to quit.
type Driver struct {
	t        *testing.T
	Model    tea.Model
	Quitting bool
}

// New wraps model and sends an initial window size of w x h.
func New(t *testing.T, model tea.Model, w, h int) *Driver {
	t.Helper()
	d := &Driver{t: t, Model: model}
	d.run(model.Init(), 0)
	d.Send(tea.WindowSizeMsg{Width: w, Height: h})
	return d
}

// Send dispatches msg through Update and runs the resulting commands.
// Messages sent after the model quit are dropped.
func (d *Driver) Send(msg tea.Msg) {
	d.t.Helper()
	if d.Quitting {
		return
	}
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	d.run(cmd, 0)
}

// Press sends one key by its bubbletea name, e.g. "left", "q" or "ctrl+c",
// n times.
func (d *Driver) Press(name string, n int) {
	d.t.Helper()
	msg, ok := keyMsg(name)
	if !ok {
		d.t.Fatalf("teatest: unknown key %q", name)
	}
	for range n {
		d.Send(msg)
	}
}

// View returns the rendered model with terminal escape codes removed.
func (d *Driver) View() string {
	return ansiPattern.ReplaceAllString(d.Model.View(), "")
}

func (d *Driver) run(cmd tea.Cmd, depth int) {
	d.t.Helper()
	if cmd == nil {
		return
	}
	if depth >= maxDepth {
		d.t.Logf("teatest: command depth limit (%d) reached", maxDepth)
		return
	}

	switch msg := execWithTimeout(cmd).(type) {
	case nil:
	case tea.BatchMsg:
		for _, sub := range msg {
			d.run(sub, depth+1)
		}
	case tea.QuitMsg:
		d.Quitting = true
	default:
		updated, next := d.Model.Update(msg)
		d.Model = updated
		d.run(next, depth+1)
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

var namedKeys = map[string]tea.KeyType{
	"up":     tea.KeyUp,
	"down":   tea.KeyDown,
	"left":   tea.KeyLeft,
	"right":  tea.KeyRight,
	"enter":  tea.KeyEnter,
	"esc":    tea.KeyEsc,
	"tab":    tea.KeyTab,
	"ctrl+c": tea.KeyCtrlC,
}

func keyMsg(name string) (tea.KeyMsg, bool) {
	if kt, ok := namedKeys[name]; ok {
		return tea.KeyMsg{Type: kt}, true
	}
	r := []rune(name)
	if len(r) != 1 {
		return tea.KeyMsg{}, false
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: r}, true
}
