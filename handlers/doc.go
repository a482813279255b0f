/*
Package handlers implements the HTTP request handlers.

# Handlers

  - HabitHandler: habit creation and completion toggling
  - DayHandler: the combined "what is due / what is done" day query

Handlers validate input at the boundary, delegate to the tracker/store
layers, and map the apperr taxonomy onto HTTP status codes:

  - apperr.ErrValidation → 400
  - apperr.ErrNotFound → 404
  - anything else → 500 (details logged, never leaked)

# Routes

  - POST /habits: create a habit with a title and weekday set
  - GET /day?date=...: habits possible and completed on a calendar day
  - PATCH /habits/{id}/toggle: flip a habit's completion for today
*/
package handlers
