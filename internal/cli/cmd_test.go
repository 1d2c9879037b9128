package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/docspace/internal/domain"
	"github.com/alexanderramin/docspace/internal/intelligence"
	"github.com/alexanderramin/docspace/internal/repository"
	"github.com/alexanderramin/docspace/internal/seed"
	"github.com/alexanderramin/docspace/internal/service"
	"github.com/alexanderramin/docspace/internal/testutil"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires every service over an in-memory database holding the demo
// workspace. The assistant answers instantly.
func testApp(t *testing.T) *App {
	t.Helper()
	return testAppWithDelay(t, 0)
}

// testAppWithDelay is testApp with an assistant that takes delay to draft.
func testAppWithDelay(t *testing.T, delay time.Duration) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	_, err := seed.Apply(context.Background(), uow, time.Now())
	require.NoError(t, err)

	assistant := intelligence.NewSimulatedAssistant(delay)
	ideaRepo := repository.NewSQLiteIdeaRepo(database)
	sectionRepo := repository.NewSQLiteSectionRepo(database)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &App{
		Ideas:     service.NewIdeaService(ideaRepo, assistant, uow),
		Documents: service.NewDocumentService(ideaRepo, sectionRepo, assistant),
		Approvals: service.NewApprovalService(repository.NewSQLiteApprovalRepo(database), logger),
		Team: service.NewTeamService(
			repository.NewSQLiteMemberRepo(database),
			repository.NewSQLiteTaskRepo(database),
		),
		Imports: service.NewImportService(uow),
	}
}

// executeCmd runs a cobra command and captures stdout/stderr with ANSI
// styling stripped.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return ansi.Strip(buf.String()), err
}

// --- root ---

func TestRootCmd_NonInteractivePrintsOverview(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, out, "E-commerce Platform")
	assert.Contains(t, out, "Mobile App Design")
	assert.Contains(t, out, "In Review 1")
	assert.Contains(t, out, "2 unassigned")
}

func TestRootCmd_InteractiveRunsTUI(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return true }
	var opened *StartOptions
	app.RunTUI = func(_ *App, start StartOptions) error {
		opened = &start
		return nil
	}

	_, err := executeCmd(t, app, "--open", "project-2")
	require.NoError(t, err)
	require.NotNil(t, opened)
	assert.Equal(t, StartOptions{IdeaID: "project-2"}, *opened)

	_, err = executeCmd(t, app, "--view", "approval")
	require.NoError(t, err)
	assert.Equal(t, StartOptions{View: domain.ViewApproval}, *opened)
}

func TestRootCmd_ViewPrintsPanelWhenNotInteractive(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "--view", "team")
	require.NoError(t, err)
	assert.Contains(t, out, "TASKS (2 UNASSIGNED)")
	assert.Contains(t, out, "WORKLOAD BALANCE")

	out, err = executeCmd(t, app, "--view", "Approval")
	require.NoError(t, err)
	assert.Contains(t, out, "DISAPPROVED (1)")
}

func TestRootCmd_UnknownView(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "--view", "settings")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown view")
}

func TestRootCmd_OpenUnknownIdea(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "--open", "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

// --- idea ---

func TestIdeaSubmit(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "idea", "submit", "A", "recipe", "sharing", "site")
	require.NoError(t, err)
	assert.Contains(t, out, "Created A Recipe Sharing Site")
	assert.Contains(t, out, "Executive Summary")

	ideas, err := app.Ideas.List(context.Background(), domain.IdeaFilter{Status: domain.IdeaDraft})
	require.NoError(t, err)
	var found bool
	for _, i := range ideas {
		if i.Description == "A recipe sharing site" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestIdeaSubmit_RequiresTextWhenNotInteractive(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "idea", "submit")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}

func TestIdeaSubmit_BlankText(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "idea", "submit", "   ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")

	ideas, err := app.Ideas.List(context.Background(), domain.IdeaFilter{})
	require.NoError(t, err)
	assert.Len(t, ideas, 2)
}

func TestIdeaList_StatusFilter(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "idea", "list", "--status", "draft")
	require.NoError(t, err)
	assert.Contains(t, out, "Mobile App Design")
	assert.NotContains(t, out, "E-commerce Platform")

	out, err = executeCmd(t, app, "idea", "list", "--status", "in-review")
	require.NoError(t, err)
	assert.Contains(t, out, "E-commerce Platform")
	assert.NotContains(t, out, "Mobile App Design")

	out, err = executeCmd(t, app, "idea", "list", "--status", "approved")
	require.NoError(t, err)
	assert.Contains(t, out, "No ideas with status Approved")
}

func TestIdeaList_InvalidStatus(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "idea", "list", "--status", "shipped")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown idea status")
}

func TestIdeaShow(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "idea", "show", "project-1")
	require.NoError(t, err)
	assert.Contains(t, out, "E-commerce Platform")
	assert.Contains(t, out, "System Architecture")
}

func TestIdeaImport(t *testing.T) {
	app := testApp(t)
	path := filepath.Join(t.TempDir(), "kiosk.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
  "name": "Library Kiosk",
  "documents": ["Proposal"],
  "sections": [
    {"title": "Overview", "body": "Self-service checkout"},
    {"title": "Hardware", "status": "partial"}, // trailing comma below
  ],
}`), 0o644))

	out, err := executeCmd(t, app, "idea", "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported Library Kiosk")
	assert.Contains(t, out, "with 2 sections")
	assert.Contains(t, out, "Hardware")

	list, err := executeCmd(t, app, "idea", "list", "--status", "draft")
	require.NoError(t, err)
	assert.Contains(t, list, "Library Kiosk")
}

func TestIdeaImport_InvalidFile(t *testing.T) {
	app := testApp(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("status: shipped\nsections: []\n"), 0o644))

	_, err := executeCmd(t, app, "idea", "import", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "import validation failed (3 errors)")
}

// --- doc ---

func TestDocSectionsAndShow(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "doc", "sections", "project-1")
	require.NoError(t, err)
	assert.Contains(t, out, "Requirements Specification")
	assert.Contains(t, out, "(requirements)")

	out, err = executeCmd(t, app, "doc", "show", "project-1", "executive-summary")
	require.NoError(t, err)
	assert.Contains(t, out, "Executive Summary")
	assert.Contains(t, out, "Approved")
}

func TestDocShow_DefaultsToFirstSection(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "doc", "show", "project-2")
	require.NoError(t, err)
	assert.Contains(t, out, "Executive Summary")

	_, err = executeCmd(t, app, "doc", "show", "nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDocShow_UnknownSection(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "doc", "show", "project-1", "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDocSuggest(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "doc", "suggest", "project-1", "objectives")
	require.NoError(t, err)
	assert.Contains(t, out, `Suggestions for "Project Objectives"`)
	assert.Contains(t, out, "risk assessment")
}

func TestDocExport_ToFile(t *testing.T) {
	app := testApp(t)
	path := filepath.Join(t.TempDir(), "export.md")

	_, err := executeCmd(t, app, "doc", "export", "project-2", "--out", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Mobile App Design")
	assert.Contains(t, string(data), "## Executive Summary")
}

func TestDocExport_UnknownIdeaLeavesNoFile(t *testing.T) {
	app := testApp(t)
	path := filepath.Join(t.TempDir(), "export.md")

	_, err := executeCmd(t, app, "doc", "export", "nope", "--out", path)
	require.Error(t, err)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

// --- approval ---

func TestApprovalList(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "approval", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "DISAPPROVED (1)")
	assert.Contains(t, out, "IN REVIEW (1)")
	assert.Contains(t, out, "APPROVED (1)")
	assert.Contains(t, out, "API Documentation - Endpoints")
}

func TestApprovalDecide_RecordsWithoutMovingItem(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	before, err := app.Approvals.Buckets(ctx)
	require.NoError(t, err)

	out, err := executeCmd(t, app, "approval", "decide", "1", "--decision", "approve", "--comment", "ship it")
	require.NoError(t, err)
	assert.Contains(t, out, "Approve")
	assert.Contains(t, out, "ship it")

	after, err := app.Approvals.Buckets(ctx)
	require.NoError(t, err)
	assert.Equal(t, before.Counts(), after.Counts())

	out, err = executeCmd(t, app, "approval", "history", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "ship it")
}

func TestApprovalDecide_MissingDecision(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "approval", "decide", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--decision is required")
}

func TestApprovalDecide_InvalidDecision(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "approval", "decide", "1", "--decision", "maybe")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown approval decision")
}

func TestApprovalDecide_UnknownItem(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "approval", "decide", "99", "--decision", "partial")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestApprovalHistory_Empty(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "approval", "history", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "No decisions recorded.")
}

// --- team ---

func TestTeamCommands(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "team", "members")
	require.NoError(t, err)
	assert.Contains(t, out, "Alice Chen")
	assert.Contains(t, out, "95%")

	out, err = executeCmd(t, app, "team", "tasks")
	require.NoError(t, err)
	assert.Contains(t, out, "TASKS (2 UNASSIGNED)")
	assert.Contains(t, out, "Create API Documentation")
	assert.Contains(t, out, "Unassigned")

	out, err = executeCmd(t, app, "team", "workload")
	require.NoError(t, err)
	assert.Contains(t, out, "WORKLOAD BALANCE")
	assert.Contains(t, out, "David Liu")
}
