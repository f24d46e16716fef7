package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies the schema. Every statement is safe to re-run.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form in SQLite.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_tasks_name ON tasks(name)`,

	`CREATE TABLE IF NOT EXISTS time_records (
		id         TEXT PRIMARY KEY,
		task_id    TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		started_at TEXT NOT NULL,
		ended_at   TEXT,
		CHECK(ended_at IS NULL OR ended_at >= started_at)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_time_records_task ON time_records(task_id)`,
	`CREATE INDEX IF NOT EXISTS idx_time_records_started ON time_records(started_at)`,

	// At most one open record per task.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_time_records_open ON time_records(task_id) WHERE ended_at IS NULL`,

	// Insertion order for task listing; created_at ties are common in bulk inserts.
	`ALTER TABLE tasks ADD COLUMN seq INTEGER NOT NULL DEFAULT 0`,
}
