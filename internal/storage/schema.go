package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		// Rituals and promoted habits share one table and one id
		// namespace; kind tags the collection.
		`CREATE TABLE IF NOT EXISTS items (
			id TEXT PRIMARY KEY,
			kind TEXT NOT NULL,
			name TEXT NOT NULL,

			trigger_kind TEXT,
			trigger_time TEXT,
			trigger_habit_id TEXT,
			trigger_habit_name TEXT,

			frequency TEXT NOT NULL,
			reward TEXT,

			streak INTEGER DEFAULT 0,
			frozen_streaks INTEGER DEFAULT 0,
			skip_used INTEGER DEFAULT 0,

			last_completed TEXT,
			created_at TEXT NOT NULL,
			became_habit_at TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS item_completions (
			item_id TEXT NOT NULL,
			completed_on TEXT NOT NULL,
			UNIQUE(item_id, completed_on),
			FOREIGN KEY(item_id) REFERENCES items(id)
		);`,
		`CREATE TABLE IF NOT EXISTS tasks (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			date TEXT NOT NULL,
			completed INTEGER DEFAULT 0,
			created_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS achievements (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL,
			icon TEXT NOT NULL,
			unlocked INTEGER DEFAULT 0,
			unlocked_at TEXT,
			progress INTEGER DEFAULT 0,
			max_progress INTEGER DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_items_kind ON items(kind);`,
		`CREATE INDEX IF NOT EXISTS idx_items_trigger_habit_id ON items(trigger_habit_id);`,
		`CREATE INDEX IF NOT EXISTS idx_item_completions_item_id ON item_completions(item_id, completed_on);`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_date ON tasks(date);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
