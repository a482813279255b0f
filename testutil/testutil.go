package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/Ramon-Mateus/Habit/db"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full
// schema. The pool is pinned to a single connection so every statement
// sees the same in-memory database.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })
	return conn
}

// CreateTestHabit inserts a habit with the given creation day (YYYY-MM-DD)
// and weekday set, returning its id.
func CreateTestHabit(t *testing.T, conn *sql.DB, title, createdAt string, weekDays []int) string {
	t.Helper()

	habitID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO habits (id, title, created_at)
		VALUES ($1, $2, $3)
	`, habitID, title, createdAt)
	if err != nil {
		t.Fatalf("Failed to create test habit: %v", err)
	}

	for _, wd := range weekDays {
		_, err := conn.Exec(`
			INSERT INTO habit_week_days (habit_id, week_day)
			VALUES ($1, $2)
		`, habitID, wd)
		if err != nil {
			t.Fatalf("Failed to create test week day: %v", err)
		}
	}

	return habitID
}

// CreateTestDay inserts a day record for the given date (YYYY-MM-DD) and
// returns its id.
func CreateTestDay(t *testing.T, conn *sql.DB, date string) string {
	t.Helper()

	dayID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO days (id, date)
		VALUES ($1, $2)
	`, dayID, date)
	if err != nil {
		t.Fatalf("Failed to create test day: %v", err)
	}

	return dayID
}

// AddTestCompletion marks a habit complete on a day.
func AddTestCompletion(t *testing.T, conn *sql.DB, dayID, habitID string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO day_habits (day_id, habit_id)
		VALUES ($1, $2)
	`, dayID, habitID)
	if err != nil {
		t.Fatalf("Failed to create test completion: %v", err)
	}
}

// CountRows returns the number of rows in a table.
func CountRows(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()

	var n int
	if err := conn.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
