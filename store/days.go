package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Ramon-Mateus/Habit/dateutil"
	"github.com/Ramon-Mateus/Habit/models"
)

// DayStore persists per-date day records and their completion sets.
type DayStore struct {
	db *sql.DB
}

func NewDayStore(db *sql.DB) *DayStore {
	return &DayStore{db: db}
}

// FindByDate looks up the day record for a calendar day. A nil result with
// a nil error means no record exists, which is a valid outcome: days are
// only created by toggles.
func (s *DayStore) FindByDate(ctx context.Context, date time.Time) (*models.Day, error) {
	var day models.Day
	err := s.db.QueryRowContext(ctx, `
		SELECT id, date FROM days WHERE date = $1
	`, dateutil.FormatDate(date)).Scan(&day.ID, &day.Date)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query day: %w", err)
	}
	return &day, nil
}

// GetOrCreate returns the day record for a calendar day, creating it if
// absent. The insert is conditional on the days.date uniqueness
// constraint, so concurrent callers for the same date all land on the one
// record that won.
func (s *DayStore) GetOrCreate(ctx context.Context, date time.Time) (models.Day, error) {
	formatted := dateutil.FormatDate(date)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO days (id, date)
		VALUES ($1, $2)
		ON CONFLICT (date) DO NOTHING
	`, uuid.NewString(), formatted)
	if err != nil {
		return models.Day{}, fmt.Errorf("failed to insert day: %w", err)
	}

	var day models.Day
	err = s.db.QueryRowContext(ctx, `
		SELECT id, date FROM days WHERE date = $1
	`, formatted).Scan(&day.ID, &day.Date)
	if err != nil {
		return models.Day{}, fmt.Errorf("failed to fetch day after insert: %w", err)
	}
	return day, nil
}

// IsCompleted reports whether the habit is marked complete on the day.
func (s *DayStore) IsCompleted(ctx context.Context, dayID, habitID string) (bool, error) {
	var completed bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM day_habits
			WHERE day_id = $1 AND habit_id = $2
		)
	`, dayID, habitID).Scan(&completed)
	if err != nil {
		return false, fmt.Errorf("failed to check completion: %w", err)
	}
	return completed, nil
}

// AddCompletion marks the habit complete on the day. A concurrent
// duplicate add collapses onto the existing row via the (day_id, habit_id)
// primary key.
func (s *DayStore) AddCompletion(ctx context.Context, dayID, habitID string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO day_habits (day_id, habit_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, dayID, habitID)
	if err != nil {
		return fmt.Errorf("failed to add completion: %w", err)
	}
	return nil
}

// RemoveCompletion unmarks the habit on the day. Removing an absent
// completion is a no-op.
func (s *DayStore) RemoveCompletion(ctx context.Context, dayID, habitID string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM day_habits
		WHERE day_id = $1 AND habit_id = $2
	`, dayID, habitID)
	if err != nil {
		return fmt.Errorf("failed to remove completion: %w", err)
	}
	return nil
}

// CompletedHabitIDs returns the ids of every habit completed on the
// calendar day. A date with no day record yields an empty set.
func (s *DayStore) CompletedHabitIDs(ctx context.Context, date time.Time) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT dh.habit_id
		FROM day_habits dh
		JOIN days d ON d.id = dh.day_id
		WHERE d.date = $1
		ORDER BY dh.habit_id
	`, dateutil.FormatDate(date))
	if err != nil {
		return nil, fmt.Errorf("failed to query completions: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan completion: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate completions: %w", err)
	}
	return ids, nil
}
