package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/docspace/internal/db"
	"github.com/alexanderramin/docspace/internal/domain"
)

// SQLiteApprovalRepo stores approval items and the append-only decision journal.
type SQLiteApprovalRepo struct {
	db db.DBTX
}

func NewSQLiteApprovalRepo(conn db.DBTX) *SQLiteApprovalRepo {
	return &SQLiteApprovalRepo{db: conn}
}

const approvalColumns = `id, title, submitter, due_date, priority, type, description, status`

func (r *SQLiteApprovalRepo) Create(ctx context.Context, a *domain.ApprovalItem) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO approval_items (`+approvalColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Title, a.Submitter, a.DueDate.Format(dateLayout),
		string(a.Priority), string(a.Type), a.Description, string(a.Status))
	if err != nil {
		return fmt.Errorf("inserting approval item: %w", err)
	}
	return nil
}

func (r *SQLiteApprovalRepo) GetByID(ctx context.Context, id string) (*domain.ApprovalItem, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+approvalColumns+` FROM approval_items WHERE id = ?`, id)
	a, err := scanApproval(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("approval item", id)
	}
	return a, err
}

// List orders items by due date so the most urgent review comes first.
func (r *SQLiteApprovalRepo) List(ctx context.Context) ([]*domain.ApprovalItem, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+approvalColumns+` FROM approval_items ORDER BY due_date, id`)
	if err != nil {
		return nil, fmt.Errorf("listing approval items: %w", err)
	}
	defer rows.Close()

	var items []*domain.ApprovalItem
	for rows.Next() {
		a, err := scanApproval(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating approval items: %w", err)
	}
	return items, nil
}

func (r *SQLiteApprovalRepo) RecordDecision(ctx context.Context, d *domain.ApprovalDecision) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO approval_decisions (id, item_id, decision, comment, decided_at) VALUES (?, ?, ?, ?, ?)`,
		d.ID, d.ItemID, string(d.Decision), d.Comment, d.DecidedAt.UTC().Format(journalLayout))
	if err != nil {
		return fmt.Errorf("recording decision: %w", err)
	}
	return nil
}

// ListDecisions returns the journal for one item, newest first.
func (r *SQLiteApprovalRepo) ListDecisions(ctx context.Context, itemID string) ([]*domain.ApprovalDecision, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, item_id, decision, comment, decided_at FROM approval_decisions
		WHERE item_id = ? ORDER BY decided_at DESC, rowid DESC`, itemID)
	if err != nil {
		return nil, fmt.Errorf("listing decisions: %w", err)
	}
	defer rows.Close()

	var out []*domain.ApprovalDecision
	for rows.Next() {
		var d domain.ApprovalDecision
		var decision, decidedAt string
		if err := rows.Scan(&d.ID, &d.ItemID, &decision, &d.Comment, &decidedAt); err != nil {
			return nil, fmt.Errorf("scanning decision: %w", err)
		}
		d.Decision = domain.Decision(decision)
		t, err := time.Parse(journalLayout, decidedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing decided_at: %w", err)
		}
		d.DecidedAt = t
		out = append(out, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating decisions: %w", err)
	}
	return out, nil
}

func scanApproval(s scanner) (*domain.ApprovalItem, error) {
	var a domain.ApprovalItem
	var due, priority, typ, status string
	if err := s.Scan(&a.ID, &a.Title, &a.Submitter, &due, &priority, &typ, &a.Description, &status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning approval item: %w", err)
	}
	t, err := time.Parse(dateLayout, due)
	if err != nil {
		return nil, fmt.Errorf("parsing due_date: %w", err)
	}
	a.DueDate = t
	a.Priority = domain.Priority(priority)
	a.Type = domain.ApprovalType(typ)
	a.Status = domain.ApprovalStatus(status)
	return &a, nil
}
