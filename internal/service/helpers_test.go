package service

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/docspace/internal/intelligence"
	"github.com/alexanderramin/docspace/internal/repository"
	"github.com/alexanderramin/docspace/internal/seed"
	"github.com/alexanderramin/docspace/internal/testutil"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	db        *sql.DB
	ideas     IdeaService
	documents DocumentService
	approvals ApprovalService
	team      TeamService
	imports   ImportService
	logs      *bytes.Buffer
	observer  *recordingObserver
}

// newSeededFixture wires every service over an in-memory database holding
// the demo workspace.
func newSeededFixture(t *testing.T) *fixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	_, err := seed.Apply(context.Background(), uow, time.Now())
	require.NoError(t, err)

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(logs, nil))
	obs := &recordingObserver{}
	assistant := intelligence.NewSimulatedAssistant(0)

	ideaRepo := repository.NewSQLiteIdeaRepo(database)
	sectionRepo := repository.NewSQLiteSectionRepo(database)
	approvalRepo := repository.NewSQLiteApprovalRepo(database)

	return &fixture{
		db:        database,
		ideas:     NewIdeaService(ideaRepo, assistant, uow, obs),
		documents: NewDocumentService(ideaRepo, sectionRepo, assistant, obs),
		approvals: NewApprovalService(approvalRepo, logger, obs),
		team: NewTeamService(
			repository.NewSQLiteMemberRepo(database),
			repository.NewSQLiteTaskRepo(database),
		),
		imports:  NewImportService(uow, obs),
		logs:     logs,
		observer: obs,
	}
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}
