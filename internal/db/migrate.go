package db

import (
	"database/sql"
	"fmt"
)

// Migrate creates the schema. Every statement is idempotent, so it runs on
// each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
		id               TEXT PRIMARY KEY,
		user_id          TEXT NOT NULL,
		name             TEXT NOT NULL,
		type             TEXT NOT NULL DEFAULT '',
		deadline         TEXT NOT NULL,
		priority         TEXT NOT NULL DEFAULT ''
		                 CHECK(priority IN ('','top','high','medium','low')),
		estimated_blocks INTEGER,
		done             INTEGER NOT NULL DEFAULT 0,
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_tasks_user_name ON tasks(user_id, name)`,

	`CREATE TABLE IF NOT EXISTS tests (
		id               TEXT PRIMARY KEY,
		user_id          TEXT NOT NULL,
		name             TEXT NOT NULL,
		type             TEXT NOT NULL DEFAULT '',
		date             TEXT NOT NULL,
		priority         TEXT NOT NULL DEFAULT ''
		                 CHECK(priority IN ('','top','high','medium','low')),
		estimated_blocks INTEGER,
		done             INTEGER NOT NULL DEFAULT 0,
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_tests_user_name ON tests(user_id, name)`,

	`CREATE TABLE IF NOT EXISTS classes (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		subject    TEXT NOT NULL,
		weekday    INTEGER NOT NULL CHECK(weekday BETWEEN 0 AND 6),
		start_min  INTEGER NOT NULL,
		end_min    INTEGER NOT NULL,
		created_at TEXT NOT NULL,
		CHECK(end_min > start_min)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_classes_user ON classes(user_id)`,

	`CREATE TABLE IF NOT EXISTS preferences (
		user_id    TEXT PRIMARY KEY,
		awake_min  INTEGER NOT NULL,
		sleep_min  INTEGER NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS study_windows (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		weekday    INTEGER NOT NULL CHECK(weekday BETWEEN 0 AND 6),
		start_min  INTEGER NOT NULL,
		end_min    INTEGER NOT NULL,
		focus      TEXT NOT NULL DEFAULT ''
		           CHECK(focus IN ('','high','medium','low')),
		created_at TEXT NOT NULL,
		CHECK(end_min > start_min)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_study_windows_user ON study_windows(user_id)`,

	`CREATE TABLE IF NOT EXISTS daily_overrides (
		id        TEXT PRIMARY KEY,
		user_id   TEXT NOT NULL,
		date      TEXT NOT NULL,
		start_min INTEGER NOT NULL,
		end_min   INTEGER NOT NULL,
		focus     TEXT NOT NULL DEFAULT ''
		          CHECK(focus IN ('','high','medium','low')),
		CHECK(end_min > start_min)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_daily_overrides_user_date ON daily_overrides(user_id, date)`,

	`CREATE TABLE IF NOT EXISTS plans (
		user_id      TEXT PRIMARY KEY,
		generated_at TEXT NOT NULL,
		stop_reason  TEXT NOT NULL DEFAULT '',
		entry_count  INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS plan_entries (
		user_id   TEXT NOT NULL REFERENCES plans(user_id) ON DELETE CASCADE,
		seq       INTEGER NOT NULL,
		date      TEXT NOT NULL,
		start_min INTEGER NOT NULL,
		end_min   INTEGER NOT NULL,
		item_name TEXT NOT NULL,
		PRIMARY KEY (user_id, seq)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_plan_entries_user_date ON plan_entries(user_id, date)`,
}
