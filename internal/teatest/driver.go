// Package teatest drives bubbletea models synchronously in tests.
//
// Update is called directly and returned Cmds are drained in the test
// goroutine's order. Cmds that block on timers (cursor blink, spinner ticks,
// the simulated assistant delay) are abandoned after a short timeout.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// MaxDrainDepth bounds command chains so self-scheduling Cmds cannot loop.
const MaxDrainDepth = 100

// DefaultCmdTimeout separates instant Cmds (DB reads, message factories)
// from timer-driven ones.
const DefaultCmdTimeout = 50 * time.Millisecond

// Driver is a synchronous harness for any tea.Model.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once tea.QuitMsg is seen during a drain.
	Quitting bool

	cmdTimeout time.Duration
	ignore     []func(tea.Msg) bool
	seen       []tea.Msg
}

// Option configures the Driver during construction.
type Option func(*Driver)

// New creates a Driver for model and applies opts in order.
// Call DrainInit afterwards to run the model's Init command.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model, cmdTimeout: DefaultCmdTimeout}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// WithSize sends an initial WindowSizeMsg.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.T.Helper()
		updated, _ := d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
		d.Model = updated
	}
}

// WithCmdTimeout overrides how long a single Cmd may run before it is skipped.
func WithCmdTimeout(timeout time.Duration) Option {
	return func(d *Driver) { d.cmdTimeout = timeout }
}

// WithIgnore drops messages matching fn instead of feeding them to Update.
func WithIgnore(fn func(tea.Msg) bool) Option {
	return func(d *Driver) { d.ignore = append(d.ignore, fn) }
}

// DrainInit runs the model's Init command and drains the results.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drainCmd(d.Model.Init(), 0)
}

// Send dispatches msg through Update and drains all resulting Cmds.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	d.drainCmd(cmd, 0)
}

// WithinTimeout runs fn with a different per-Cmd timeout, for steps whose
// Cmds do real work (a submission, a DB write) while typing elsewhere in
// the test should still skip cursor blinks quickly.
func (d *Driver) WithinTimeout(timeout time.Duration, fn func()) {
	prev := d.cmdTimeout
	d.cmdTimeout = timeout
	defer func() { d.cmdTimeout = prev }()
	fn()
}

// Exec runs cmd as if the model had returned it.
func (d *Driver) Exec(cmd tea.Cmd) {
	d.T.Helper()
	d.drainCmd(cmd, 0)
}

// ── Keys ────────────────────────────────────────────────────────────────────

func (d *Driver) SendKey(msg tea.KeyMsg) {
	d.T.Helper()
	d.Send(msg)
}

// PressKey sends a single rune key.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func (d *Driver) PressEnter() {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyEnter})
}

// PressAltEnter sends alt+enter, the textarea newline chord.
func (d *Driver) PressAltEnter() {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyEnter, Alt: true})
}

func (d *Driver) PressEsc() {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyEsc})
}

func (d *Driver) PressTab() {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyTab})
}

func (d *Driver) PressCtrlC() {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyCtrlC})
}

func (d *Driver) PressUp() {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyUp})
}

func (d *Driver) PressDown() {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyDown})
}

func (d *Driver) PressLeft() {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyLeft})
}

func (d *Driver) PressRight() {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyRight})
}

// Type sends s one rune at a time.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.PressKey(r)
	}
}

// ── Output ──────────────────────────────────────────────────────────────────

// View returns the rendered model output.
func (d *Driver) View() string {
	return d.Model.View()
}

// PlainView returns the rendered output with ANSI sequences stripped.
func (d *Driver) PlainView() string {
	return ansi.Strip(d.Model.View())
}

// Seen returns every message the driver fed to Update, in order.
func (d *Driver) Seen() []tea.Msg {
	return d.seen
}

// ── Draining ────────────────────────────────────────────────────────────────

func (d *Driver) drainCmd(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDrainDepth {
		d.T.Logf("teatest.Driver: drain depth limit (%d) reached", MaxDrainDepth)
		return
	}

	msg := d.exec(cmd)
	if msg == nil || d.ignored(msg) {
		return
	}

	switch m := msg.(type) {
	case tea.BatchMsg:
		for _, sub := range m {
			d.drainCmd(sub, depth+1)
		}
		return
	case tea.QuitMsg:
		d.Quitting = true
	}

	d.seen = append(d.seen, msg)
	updated, next := d.Model.Update(msg)
	d.Model = updated
	if d.Quitting {
		return
	}
	d.drainCmd(next, depth+1)
}

// exec runs cmd in a goroutine and returns nil if it outlives the timeout.
func (d *Driver) exec(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() {
		ch <- cmd()
	}()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(d.cmdTimeout):
		return nil
	}
}

func (d *Driver) ignored(msg tea.Msg) bool {
	if isTimerMsg(msg) {
		return true
	}
	for _, fn := range d.ignore {
		if fn(msg) {
			return true
		}
	}
	return false
}

// isTimerMsg matches self-rescheduling animation messages: spinner ticks and
// the unexported cursor blink types.
func isTimerMsg(msg tea.Msg) bool {
	if _, ok := msg.(spinner.TickMsg); ok {
		return true
	}
	t := fmt.Sprintf("%T", msg)
	return strings.Contains(t, "Blink") || strings.Contains(t, "blink")
}
