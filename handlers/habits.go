package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/Ramon-Mateus/Habit/apperr"
	"github.com/Ramon-Mateus/Habit/middleware"
	"github.com/Ramon-Mateus/Habit/models"
	"github.com/Ramon-Mateus/Habit/store"
	"github.com/Ramon-Mateus/Habit/tracker"
)

type HabitHandler struct {
	habits  *store.HabitStore
	toggler *tracker.Toggler
}

func NewHabitHandler(habits *store.HabitStore, toggler *tracker.Toggler) *HabitHandler {
	return &HabitHandler{habits: habits, toggler: toggler}
}

// CreateHabit handles POST /habits
func (h *HabitHandler) CreateHabit(w http.ResponseWriter, r *http.Request) {
	var req models.CreateHabitRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input before any store mutation
	if req.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}
	for _, wd := range req.WeekDays {
		if wd < models.WeekdayMin || wd > models.WeekdayMax {
			middleware.ErrorResponse(w, http.StatusBadRequest, "weekDays entries must be between 0 and 6")
			return
		}
	}

	habit, err := h.habits.Create(r.Context(), req.Title, req.WeekDays)
	if err != nil {
		if errors.Is(err, apperr.ErrValidation) {
			middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("failed to create habit", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create habit")
		return
	}

	slog.Info("habit created", "habit_id", habit.ID, "title", habit.Title)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateHabitResponse{
		HabitID: habit.ID,
	})
}

// ToggleHabit handles PATCH /habits/:id/toggle
// Flips the habit's completion state for today's calendar day.
func (h *HabitHandler) ToggleHabit(w http.ResponseWriter, r *http.Request) {
	habitID := r.PathValue("id")
	if habitID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "habit id is required")
		return
	}
	if _, err := uuid.Parse(habitID); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "habit id must be a valid UUID")
		return
	}

	completed, err := h.toggler.Toggle(r.Context(), habitID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			middleware.ErrorResponse(w, http.StatusNotFound, "Habit not found")
			return
		}
		slog.Error("failed to toggle habit", "habit_id", habitID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to toggle habit")
		return
	}

	slog.Info("habit toggled", "habit_id", habitID, "completed", completed)

	middleware.JSONResponse(w, http.StatusOK, models.ToggleHabitResponse{
		HabitID:   habitID,
		Completed: completed,
	})
}
