/*
Package models defines the domain and API types.

# Domain Types

  - Habit: a recurring task with a weekday recurrence rule and a creation
    date; immutable after creation
  - Day: one calendar day's completion record, created lazily on first
    toggle

Calendar days appear everywhere as YYYY-MM-DD strings; weekday indices use
the 0=Sunday convention.

# API Types

Request/response structs for the three operations:

  - CreateHabitRequest / CreateHabitResponse (POST /habits)
  - GetDayResponse (GET /day)
  - ToggleHabitResponse (PATCH /habits/{id}/toggle)

ErrorResponse is the shared error envelope.
*/
package models
