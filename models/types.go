package models

// Weekday index bounds, 0 = Sunday
const (
	WeekdayMin = 0
	WeekdayMax = 6
)

// Request types

type CreateHabitRequest struct {
	Title    string `json:"title"`
	WeekDays []int  `json:"weekDays"`
}

// Response types

type CreateHabitResponse struct {
	HabitID string `json:"habit_id"`
}

type GetDayResponse struct {
	PossibleHabits    []Habit  `json:"possibleHabits"`
	CompletedHabitIDs []string `json:"completedHabitIds"`
}

type ToggleHabitResponse struct {
	HabitID   string `json:"habit_id"`
	Completed bool   `json:"completed"`
}

// Domain types

// Habit is a recurring task definition. CreatedAt is a calendar day in
// YYYY-MM-DD form; WeekDays is the set of 0=Sunday weekday indices the
// habit recurs on.
type Habit struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	CreatedAt string `json:"created_at"`
	WeekDays  []int  `json:"week_days"`
}

// Day is the persisted aggregate of completion facts for one calendar day.
// It exists only once some habit has been toggled on that date.
type Day struct {
	ID   string `json:"id"`
	Date string `json:"date"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
