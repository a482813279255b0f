package tracker

import (
	"context"
	"time"

	"github.com/Ramon-Mateus/Habit/apperr"
	"github.com/Ramon-Mateus/Habit/dateutil"
	"github.com/Ramon-Mateus/Habit/store"
)

// Toggler flips a habit's completion state for today. It always targets
// the server's current calendar day; per-date toggling is intentionally
// not exposed.
type Toggler struct {
	habits *store.HabitStore
	days   *store.DayStore
	now    func() time.Time
}

func NewToggler(habits *store.HabitStore, days *store.DayStore) *Toggler {
	return &Toggler{habits: habits, days: days, now: time.Now}
}

// Toggle flips the habit's completion state for today and returns the new
// state (true = completed). Today's day record is created lazily on the
// first toggle for the date. Toggling an unknown habit fails with
// apperr.ErrNotFound rather than persisting an orphaned completion.
func (t *Toggler) Toggle(ctx context.Context, habitID string) (bool, error) {
	exists, err := t.habits.Exists(ctx, habitID)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, apperr.NotFoundf("habit %s", habitID)
	}

	today := dateutil.Normalize(t.now())
	day, err := t.days.GetOrCreate(ctx, today)
	if err != nil {
		return false, err
	}

	completed, err := t.days.IsCompleted(ctx, day.ID, habitID)
	if err != nil {
		return false, err
	}

	if completed {
		if err := t.days.RemoveCompletion(ctx, day.ID, habitID); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := t.days.AddCompletion(ctx, day.ID, habitID); err != nil {
		return false, err
	}
	return true, nil
}
