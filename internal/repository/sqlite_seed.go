package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/docspace/internal/db"
)

type SQLiteSeedRepo struct {
	db db.DBTX
}

func NewSQLiteSeedRepo(conn db.DBTX) *SQLiteSeedRepo {
	return &SQLiteSeedRepo{db: conn}
}

func (r *SQLiteSeedRepo) Applied(ctx context.Context, name string) (bool, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM seeds WHERE name = ?`, name).Scan(&n); err != nil {
		return false, fmt.Errorf("checking seed %s: %w", name, err)
	}
	return n > 0, nil
}

func (r *SQLiteSeedRepo) MarkApplied(ctx context.Context, name string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO seeds (name, applied_at) VALUES (?, ?)`, name, formatTime(time.Now()))
	if err != nil {
		return fmt.Errorf("marking seed %s: %w", name, err)
	}
	return nil
}
