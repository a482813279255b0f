package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Ramon-Mateus/Habit/dateutil"
	"github.com/Ramon-Mateus/Habit/middleware"
	"github.com/Ramon-Mateus/Habit/models"
	"github.com/Ramon-Mateus/Habit/tracker"
)

type DayHandler struct {
	query *tracker.DayQuery
}

func NewDayHandler(query *tracker.DayQuery) *DayHandler {
	return &DayHandler{query: query}
}

// GetDay handles GET /day?date=...
// Read-only: querying a date never creates its day record.
func (h *DayHandler) GetDay(w http.ResponseWriter, r *http.Request) {
	dateParam := r.URL.Query().Get("date")
	if dateParam == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "date query parameter is required")
		return
	}

	date, err := dateutil.ParseDate(dateParam)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "date must be an ISO-8601 date or date/time")
		return
	}

	possible, completed, err := h.query.GetDay(r.Context(), date)
	if err != nil {
		slog.Error("failed to query day", "date", dateParam, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to query day")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.GetDayResponse{
		PossibleHabits:    possible,
		CompletedHabitIDs: completed,
	})
}
