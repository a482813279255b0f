/*
Package main provides the entry point for the Habit API server.

Habit is a small habit-tracking service: habits recur on a fixed set of
weekdays, and each calendar day carries the set of habits completed on it.

# Starting the Server

The server reads configuration from a .env file, environment variables, or
CLI flags:

	go run main.go

Or with flags:

	go run main.go -p 3838 -d "./data/habits.db" -t sqlite

# Configuration

Optional settings:

  - PORT (-p): Server port (default: 3838)
  - DATABASE_URL (-d): SQLite path or PostgreSQL connection string
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (habits, days)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Domain and request/response types
  - tracker: Scheduling, completion toggling, and day queries
  - store: Habit and day persistence over database/sql
  - db: Driver selection and schema creation
  - dateutil: Calendar-day normalization and weekday math
  - apperr: Error taxonomy shared across layers
  - cliparse: Configuration parsing
  - logging: Structured log setup

See package documentation for each component.
*/
package main
