package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Ramon-Mateus/Habit/apperr"
	"github.com/Ramon-Mateus/Habit/dateutil"
	"github.com/Ramon-Mateus/Habit/models"
)

// HabitStore persists habit definitions and their weekday recurrence sets.
type HabitStore struct {
	db *sql.DB
}

func NewHabitStore(db *sql.DB) *HabitStore {
	return &HabitStore{db: db}
}

// Create validates and persists a new habit, stamping created_at with
// today's calendar day. Duplicate weekdays in the input collapse to a set.
func (s *HabitStore) Create(ctx context.Context, title string, weekDays []int) (models.Habit, error) {
	if strings.TrimSpace(title) == "" {
		return models.Habit{}, apperr.Validationf("title is required")
	}
	for _, wd := range weekDays {
		if wd < models.WeekdayMin || wd > models.WeekdayMax {
			return models.Habit{}, apperr.Validationf("week day %d out of range [0,6]", wd)
		}
	}

	habit := models.Habit{
		ID:        uuid.NewString(),
		Title:     title,
		CreatedAt: dateutil.FormatDate(dateutil.Normalize(time.Now())),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO habits (id, title, created_at)
		VALUES ($1, $2, $3)
	`, habit.ID, habit.Title, habit.CreatedAt)
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to insert habit: %w", err)
	}

	for _, wd := range weekDays {
		// ON CONFLICT DO NOTHING makes duplicate input entries a no-op
		_, err = tx.ExecContext(ctx, `
			INSERT INTO habit_week_days (habit_id, week_day)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, habit.ID, wd)
		if err != nil {
			return models.Habit{}, fmt.Errorf("failed to insert week day: %w", err)
		}
		if !contains(habit.WeekDays, wd) {
			habit.WeekDays = append(habit.WeekDays, wd)
		}
	}

	if err := tx.Commit(); err != nil {
		return models.Habit{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return habit, nil
}

// FindDueOn returns every habit due on the given calendar day: habits
// created on or before the day whose weekday set contains the day's
// weekday. Ordering is stable across calls.
func (s *HabitStore) FindDueOn(ctx context.Context, date time.Time) ([]models.Habit, error) {
	day := dateutil.FormatDate(date)
	weekday := dateutil.Weekday(date)

	rows, err := s.db.QueryContext(ctx, `
		SELECT h.id, h.title, h.created_at
		FROM habits h
		WHERE h.created_at <= $1
		  AND EXISTS (
			SELECT 1 FROM habit_week_days w
			WHERE w.habit_id = h.id AND w.week_day = $2
		  )
		ORDER BY h.created_at, h.id
	`, day, weekday)
	if err != nil {
		return nil, fmt.Errorf("failed to query due habits: %w", err)
	}
	defer rows.Close()

	habits := []models.Habit{}
	for rows.Next() {
		var h models.Habit
		if err := rows.Scan(&h.ID, &h.Title, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan habit: %w", err)
		}
		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate habits: %w", err)
	}

	for i := range habits {
		weekDays, err := s.weekDays(ctx, habits[i].ID)
		if err != nil {
			return nil, err
		}
		habits[i].WeekDays = weekDays
	}

	return habits, nil
}

// Exists reports whether a habit with the given id is persisted.
func (s *HabitStore) Exists(ctx context.Context, habitID string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM habits WHERE id = $1)
	`, habitID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check habit existence: %w", err)
	}
	return exists, nil
}

func (s *HabitStore) weekDays(ctx context.Context, habitID string) ([]int, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT week_day FROM habit_week_days
		WHERE habit_id = $1
		ORDER BY week_day
	`, habitID)
	if err != nil {
		return nil, fmt.Errorf("failed to query week days: %w", err)
	}
	defer rows.Close()

	weekDays := []int{}
	for rows.Next() {
		var wd int
		if err := rows.Scan(&wd); err != nil {
			return nil, fmt.Errorf("failed to scan week day: %w", err)
		}
		weekDays = append(weekDays, wd)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate week days: %w", err)
	}
	return weekDays, nil
}

func contains(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
