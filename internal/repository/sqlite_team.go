package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/docspace/internal/db"
	"github.com/alexanderramin/docspace/internal/domain"
)

type SQLiteMemberRepo struct {
	db db.DBTX
}

func NewSQLiteMemberRepo(conn db.DBTX) *SQLiteMemberRepo {
	return &SQLiteMemberRepo{db: conn}
}

const memberColumns = `id, name, role, skills, workload_hours, capacity_hours, initials, availability`

func (r *SQLiteMemberRepo) Create(ctx context.Context, m *domain.TeamMember) error {
	skills, err := encodeList(m.Skills)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO team_members (`+memberColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.Name, m.Role, skills, m.WorkloadHours, m.CapacityHours, m.Initials, string(m.Availability))
	if err != nil {
		return fmt.Errorf("inserting team member: %w", err)
	}
	return nil
}

func (r *SQLiteMemberRepo) GetByID(ctx context.Context, id string) (*domain.TeamMember, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+memberColumns+` FROM team_members WHERE id = ?`, id)
	m, err := scanMember(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("team member", id)
	}
	return m, err
}

func (r *SQLiteMemberRepo) List(ctx context.Context) ([]*domain.TeamMember, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+memberColumns+` FROM team_members ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing team members: %w", err)
	}
	defer rows.Close()

	var members []*domain.TeamMember
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating team members: %w", err)
	}
	return members, nil
}

func scanMember(s scanner) (*domain.TeamMember, error) {
	var m domain.TeamMember
	var skills, availability string
	err := s.Scan(&m.ID, &m.Name, &m.Role, &skills, &m.WorkloadHours, &m.CapacityHours, &m.Initials, &availability)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning team member: %w", err)
	}
	if m.Skills, err = decodeList(skills, "skills"); err != nil {
		return nil, err
	}
	m.Availability = domain.Availability(availability)
	return &m, nil
}

type SQLiteTaskRepo struct {
	db db.DBTX
}

func NewSQLiteTaskRepo(conn db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: conn}
}

const taskColumns = `id, title, type, estimated_hours, priority, assignee_id, status`

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (`+taskColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Title, string(t.Type), t.EstimatedHours, string(t.Priority),
		nullableString(t.AssigneeID), string(t.Status))
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) List(ctx context.Context) ([]*domain.Task, error) {
	return r.query(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY id`)
}

func (r *SQLiteTaskRepo) ListByAssignee(ctx context.Context, memberID string) ([]*domain.Task, error) {
	return r.query(ctx, `SELECT `+taskColumns+` FROM tasks WHERE assignee_id = ? ORDER BY id`, memberID)
}

func (r *SQLiteTaskRepo) query(ctx context.Context, query string, args ...any) ([]*domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		var t domain.Task
		var typ, priority, status string
		var assignee sql.NullString
		if err := rows.Scan(&t.ID, &t.Title, &typ, &t.EstimatedHours, &priority, &assignee, &status); err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		t.Type = domain.TaskType(typ)
		t.Priority = domain.Priority(priority)
		t.Status = domain.TaskStatus(status)
		t.AssigneeID = stringPtr(assignee)
		tasks = append(tasks, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}
