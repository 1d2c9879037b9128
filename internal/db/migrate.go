package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies the schema. Every statement is idempotent so it runs on
// each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS ideas (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		status      TEXT NOT NULL DEFAULT 'Draft'
		            CHECK(status IN ('Draft','In Review','Approved','Partial')),
		description TEXT NOT NULL DEFAULT '',
		documents   TEXT NOT NULL DEFAULT '[]',
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_ideas_status ON ideas(status)`,

	`CREATE TABLE IF NOT EXISTS document_sections (
		idea_id   TEXT NOT NULL REFERENCES ideas(id) ON DELETE CASCADE,
		id        TEXT NOT NULL,
		position  INTEGER NOT NULL DEFAULT 0,
		title     TEXT NOT NULL,
		body      TEXT NOT NULL DEFAULT '',
		status    TEXT NOT NULL DEFAULT 'needs-review'
		          CHECK(status IN ('approved','partial','needs-review')),
		comments  INTEGER NOT NULL DEFAULT 0 CHECK(comments >= 0),
		PRIMARY KEY (idea_id, id)
	)`,

	`CREATE TABLE IF NOT EXISTS approval_items (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL,
		submitter   TEXT NOT NULL,
		due_date    TEXT NOT NULL,
		priority    TEXT NOT NULL CHECK(priority IN ('High','Medium','Low')),
		type        TEXT NOT NULL CHECK(type IN ('Document','Section','Project')),
		description TEXT NOT NULL DEFAULT '',
		status      TEXT NOT NULL DEFAULT 'pending'
		            CHECK(status IN ('pending','approved','disapproved'))
	)`,

	`CREATE TABLE IF NOT EXISTS approval_decisions (
		id         TEXT PRIMARY KEY,
		item_id    TEXT NOT NULL REFERENCES approval_items(id) ON DELETE CASCADE,
		decision   TEXT NOT NULL CHECK(decision IN ('approve','partial','disapprove')),
		comment    TEXT NOT NULL DEFAULT '',
		decided_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_decisions_item ON approval_decisions(item_id)`,

	`CREATE TABLE IF NOT EXISTS team_members (
		id             TEXT PRIMARY KEY,
		name           TEXT NOT NULL,
		role           TEXT NOT NULL DEFAULT '',
		skills         TEXT NOT NULL DEFAULT '[]',
		workload_hours INTEGER NOT NULL DEFAULT 0,
		capacity_hours INTEGER NOT NULL DEFAULT 40,
		initials       TEXT NOT NULL DEFAULT '',
		availability   TEXT NOT NULL DEFAULT 'available'
		               CHECK(availability IN ('available','busy','away'))
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id              TEXT PRIMARY KEY,
		title           TEXT NOT NULL,
		type            TEXT NOT NULL CHECK(type IN ('Document','Review','Research','Design')),
		estimated_hours INTEGER NOT NULL DEFAULT 0,
		priority        TEXT NOT NULL CHECK(priority IN ('High','Medium','Low')),
		assignee_id     TEXT REFERENCES team_members(id) ON DELETE SET NULL,
		status          TEXT NOT NULL DEFAULT 'pending'
		                CHECK(status IN ('pending','in-progress','completed'))
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_assignee ON tasks(assignee_id)`,

	// Seed bookkeeping: one row per applied fixture.
	`CREATE TABLE IF NOT EXISTS seeds (
		name       TEXT PRIMARY KEY,
		applied_at TEXT NOT NULL
	)`,
}
