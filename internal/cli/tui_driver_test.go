package cli

import (
	"testing"
	"time"

	"github.com/alexanderramin/docspace/internal/teatest"
)

// slowCmd covers Cmds that do real work: submissions, DB loads, decisions.
const slowCmd = 2 * time.Second

// TestDriver wraps the generic teatest.Driver with docspace-specific
// inspection helpers.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver creates a driver for the full app model, sized 140x45, with
// the initial view loaded.
func NewTestDriver(t *testing.T, app *App, openIdeaID string) *TestDriver {
	t.Helper()
	return NewTestDriverAt(t, app, StartOptions{IdeaID: openIdeaID})
}

// NewTestDriverAt starts the program with explicit start options.
func NewTestDriverAt(t *testing.T, app *App, start StartOptions) *TestDriver {
	t.Helper()

	m := newAppModel(app, start)
	d := teatest.New(t, m, teatest.WithSize(140, 45))
	d.WithinTimeout(slowCmd, d.DrainInit)

	return &TestDriver{Driver: d}
}

// Slow runs fn with the long Cmd timeout.
func (d *TestDriver) Slow(fn func()) {
	d.WithinTimeout(slowCmd, fn)
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// Landing returns the active landing view, or nil.
func (d *TestDriver) Landing() *landingView {
	m := d.appModel()
	v, _ := m.activeView().(*landingView)
	return v
}

// Review returns the active review modal, or nil.
func (d *TestDriver) Review() *reviewView {
	m := d.appModel()
	v, _ := m.activeView().(*reviewView)
	return v
}

// Workspace returns the workspace view wherever it sits on the stack.
func (d *TestDriver) Workspace() *workspaceView {
	for _, v := range d.appModel().viewStack {
		if w, ok := v.(*workspaceView); ok {
			return w
		}
	}
	return nil
}

func (d *TestDriver) IsQuitting() bool {
	return d.Quitting
}
