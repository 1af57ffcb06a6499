package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS game_state (
			key TEXT PRIMARY KEY,
			level INTEGER DEFAULT 1,
			xp INTEGER DEFAULT 0,
			total_xp_earned INTEGER DEFAULT 0,
			streak INTEGER DEFAULT 1,
			last_active_date TEXT DEFAULT '',
			perfect_days INTEGER DEFAULT 0,
			total_tasks_completed INTEGER DEFAULT 0,
			total_habits_completed INTEGER DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS habits (
			id TEXT PRIMARY KEY,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			icon TEXT NOT NULL DEFAULT '',
			completed_days TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS tasks (
			id TEXT PRIMARY KEY,
			position INTEGER NOT NULL,
			title TEXT NOT NULL,
			completed INTEGER DEFAULT 0,
			priority TEXT NOT NULL,
			xp_reward INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS achievements_unlocked (
			id TEXT PRIMARY KEY,
			position INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS challenge_completions (
			id TEXT PRIMARY KEY,
			anchor TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS days_used (
			day TEXT PRIMARY KEY
		);`,
		`CREATE INDEX IF NOT EXISTS idx_habits_position ON habits(position);`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_position ON tasks(position);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
