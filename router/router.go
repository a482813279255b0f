package router

import (
	"database/sql"
	"net/http"

	"github.com/Ramon-Mateus/Habit/handlers"
	"github.com/Ramon-Mateus/Habit/middleware"
	"github.com/Ramon-Mateus/Habit/store"
	"github.com/Ramon-Mateus/Habit/tracker"
)

func NewRouter(db *sql.DB) *http.ServeMux {
	mux := http.NewServeMux()

	// Wire stores and core components
	habitStore := store.NewHabitStore(db)
	dayStore := store.NewDayStore(db)
	scheduler := tracker.NewScheduler(habitStore)
	toggler := tracker.NewToggler(habitStore, dayStore)
	dayQuery := tracker.NewDayQuery(scheduler, dayStore)

	// Initialize handlers
	habitHandler := handlers.NewHabitHandler(habitStore, toggler)
	dayHandler := handlers.NewDayHandler(dayQuery)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Habit management
	mux.HandleFunc("POST /habits", middleware.WithLogging(habitHandler.CreateHabit))
	mux.HandleFunc("PATCH /habits/{id}/toggle", middleware.WithLogging(habitHandler.ToggleHabit))

	// Day query
	mux.HandleFunc("GET /day", middleware.WithLogging(dayHandler.GetDay))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("habit API v1"))
	})

	return mux
}
