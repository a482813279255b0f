package tracker

import (
	"context"
	"time"

	"github.com/Ramon-Mateus/Habit/dateutil"
	"github.com/Ramon-Mateus/Habit/models"
	"github.com/Ramon-Mateus/Habit/store"
)

// DayQuery answers "what is due on a date and what is already done". It is
// strictly read-only: querying a date never creates its day record.
type DayQuery struct {
	scheduler *Scheduler
	days      *store.DayStore
}

func NewDayQuery(scheduler *Scheduler, days *store.DayStore) *DayQuery {
	return &DayQuery{scheduler: scheduler, days: days}
}

// GetDay returns the habits possible on the date's calendar day alongside
// the ids of habits completed on it. The two sets are independent:
// completion is a historical fact and is never filtered against the
// current recurrence projection.
func (q *DayQuery) GetDay(ctx context.Context, date time.Time) (possible []models.Habit, completedIDs []string, err error) {
	day := dateutil.Normalize(date)

	possible, err = q.scheduler.PossibleHabits(ctx, day)
	if err != nil {
		return nil, nil, err
	}

	completedIDs, err = q.days.CompletedHabitIDs(ctx, day)
	if err != nil {
		return nil, nil, err
	}

	return possible, completedIDs, nil
}
