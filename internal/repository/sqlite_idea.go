package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/docspace/internal/db"
	"github.com/alexanderramin/docspace/internal/domain"
)

// SQLiteIdeaRepo implements IdeaRepo on SQLite.
type SQLiteIdeaRepo struct {
	db db.DBTX
}

func NewSQLiteIdeaRepo(conn db.DBTX) *SQLiteIdeaRepo {
	return &SQLiteIdeaRepo{db: conn}
}

const ideaColumns = `id, name, status, description, documents, created_at, updated_at`

func (r *SQLiteIdeaRepo) Create(ctx context.Context, i *domain.Idea) error {
	docs, err := encodeList(i.Documents)
	if err != nil {
		return err
	}
	query := `INSERT INTO ideas (` + ideaColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		i.ID,
		i.Name,
		string(i.Status),
		i.Description,
		docs,
		formatTime(i.CreatedAt),
		formatTime(i.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting idea: %w", err)
	}
	return nil
}

func (r *SQLiteIdeaRepo) GetByID(ctx context.Context, id string) (*domain.Idea, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+ideaColumns+` FROM ideas WHERE id = ?`, id)
	i, err := scanIdea(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("idea", id)
	}
	return i, err
}

// List returns ideas most recently updated first.
func (r *SQLiteIdeaRepo) List(ctx context.Context) ([]*domain.Idea, error) {
	return r.query(ctx, `SELECT `+ideaColumns+` FROM ideas ORDER BY updated_at DESC, id`)
}

func (r *SQLiteIdeaRepo) ListByStatus(ctx context.Context, status domain.IdeaStatus) ([]*domain.Idea, error) {
	return r.query(ctx, `SELECT `+ideaColumns+` FROM ideas WHERE status = ? ORDER BY updated_at DESC, id`, string(status))
}

func (r *SQLiteIdeaRepo) query(ctx context.Context, query string, args ...any) ([]*domain.Idea, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing ideas: %w", err)
	}
	defer rows.Close()

	var ideas []*domain.Idea
	for rows.Next() {
		i, err := scanIdea(rows)
		if err != nil {
			return nil, err
		}
		ideas = append(ideas, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating ideas: %w", err)
	}
	return ideas, nil
}

func scanIdea(s scanner) (*domain.Idea, error) {
	var i domain.Idea
	var status, docs, createdAt, updatedAt string
	if err := s.Scan(&i.ID, &i.Name, &status, &i.Description, &docs, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning idea: %w", err)
	}
	i.Status = domain.IdeaStatus(status)

	var err error
	if i.Documents, err = decodeList(docs, "documents"); err != nil {
		return nil, err
	}
	if i.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if i.UpdatedAt, err = parseTime(updatedAt, "updated_at"); err != nil {
		return nil, err
	}
	return &i, nil
}
