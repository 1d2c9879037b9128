package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/docspace/internal/db"
	"github.com/alexanderramin/docspace/internal/domain"
)

type SQLiteSectionRepo struct {
	db db.DBTX
}

func NewSQLiteSectionRepo(conn db.DBTX) *SQLiteSectionRepo {
	return &SQLiteSectionRepo{db: conn}
}

const sectionColumns = `idea_id, id, position, title, body, status, comments`

func (r *SQLiteSectionRepo) Create(ctx context.Context, s *domain.DocumentSection) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO document_sections (`+sectionColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.IdeaID, s.ID, s.Position, s.Title, s.Body, string(s.Status), s.Comments)
	if err != nil {
		return fmt.Errorf("inserting section %s: %w", s.ID, err)
	}
	return nil
}

func (r *SQLiteSectionRepo) Get(ctx context.Context, ideaID, id string) (*domain.DocumentSection, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+sectionColumns+` FROM document_sections WHERE idea_id = ? AND id = ?`, ideaID, id)
	s, err := scanSection(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("section", ideaID+"/"+id)
	}
	return s, err
}

func (r *SQLiteSectionRepo) ListByIdea(ctx context.Context, ideaID string) ([]*domain.DocumentSection, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+sectionColumns+` FROM document_sections WHERE idea_id = ? ORDER BY position, id`, ideaID)
	if err != nil {
		return nil, fmt.Errorf("listing sections: %w", err)
	}
	defer rows.Close()

	var sections []*domain.DocumentSection
	for rows.Next() {
		s, err := scanSection(rows)
		if err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sections: %w", err)
	}
	return sections, nil
}

func scanSection(sc scanner) (*domain.DocumentSection, error) {
	var s domain.DocumentSection
	var status string
	if err := sc.Scan(&s.IdeaID, &s.ID, &s.Position, &s.Title, &s.Body, &status, &s.Comments); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning section: %w", err)
	}
	s.Status = domain.SectionStatus(status)
	return &s, nil
}
