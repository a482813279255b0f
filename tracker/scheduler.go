package tracker

import (
	"context"
	"time"

	"github.com/Ramon-Mateus/Habit/dateutil"
	"github.com/Ramon-Mateus/Habit/models"
	"github.com/Ramon-Mateus/Habit/store"
)

// Scheduler resolves the recurrence rule: a habit is possible on a date
// exactly when the date's weekday is in the habit's weekday set and the
// date is on or after the habit's creation day. A habit is never possible
// before it was created, even on a matching weekday.
type Scheduler struct {
	habits *store.HabitStore
}

func NewScheduler(habits *store.HabitStore) *Scheduler {
	return &Scheduler{habits: habits}
}

// PossibleHabits returns the habits due on the calendar day containing the
// given timestamp.
func (s *Scheduler) PossibleHabits(ctx context.Context, date time.Time) ([]models.Habit, error) {
	return s.habits.FindDueOn(ctx, dateutil.Normalize(date))
}
