package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Dates are stored as YYYY-MM-DD text so that lexicographic comparison is
// chronological on both SQLite and PostgreSQL.
const schema = `
-- Habits
CREATE TABLE IF NOT EXISTS habits (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    created_at TEXT NOT NULL
);

-- Weekday recurrence rules (set semantics via the primary key)
CREATE TABLE IF NOT EXISTS habit_week_days (
    habit_id TEXT NOT NULL REFERENCES habits(id) ON DELETE CASCADE,
    week_day INTEGER NOT NULL CHECK (week_day BETWEEN 0 AND 6),
    PRIMARY KEY (habit_id, week_day)
);

CREATE INDEX IF NOT EXISTS idx_habit_week_days_week_day ON habit_week_days(week_day);

-- Day records, created lazily on first toggle; the UNIQUE constraint on
-- date arbitrates concurrent creation
CREATE TABLE IF NOT EXISTS days (
    id TEXT PRIMARY KEY,
    date TEXT NOT NULL UNIQUE
);

-- Completion membership: at most one row per (day, habit) pair
CREATE TABLE IF NOT EXISTS day_habits (
    day_id TEXT NOT NULL REFERENCES days(id) ON DELETE CASCADE,
    habit_id TEXT NOT NULL REFERENCES habits(id) ON DELETE CASCADE,
    PRIMARY KEY (day_id, habit_id)
);

CREATE INDEX IF NOT EXISTS idx_day_habits_habit_id ON day_habits(habit_id);
`
