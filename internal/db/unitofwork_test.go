package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/alexanderramin/docspace/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const insertIdea = `INSERT INTO ideas (id, name, created_at, updated_at)
	VALUES (?, ?, '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`

func newUoW(t *testing.T) (*sql.DB, *db.SQLiteUnitOfWork) {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database, db.NewSQLiteUnitOfWork(database)
}

func ideaExists(t *testing.T, database *sql.DB, id string) bool {
	t.Helper()
	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM ideas WHERE id = ?`, id).Scan(&n))
	return n == 1
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	database, uow := newUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		_, err := tx.ExecContext(ctx, insertIdea, "i1", "Inventory tracker")
		return err
	})
	require.NoError(t, err)
	assert.True(t, ideaExists(t, database, "i1"))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	database, uow := newUoW(t)
	sentinel := errors.New("generation failed")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, insertIdea, "i2", "Half written"); err != nil {
			return err
		}
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)
	assert.False(t, ideaExists(t, database, "i2"))
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	database, uow := newUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_, _ = tx.ExecContext(ctx, insertIdea, "i3", "Panicky")
			panic("boom")
		})
	})
	assert.False(t, ideaExists(t, database, "i3"))
}

func TestWithinTx_CancelledContext(t *testing.T) {
	_, uow := newUoW(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error { return nil })
	assert.Error(t, err)
}
