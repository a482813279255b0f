package handlers

import (
	"database/sql"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Ramon-Mateus/Habit/models"
	"github.com/Ramon-Mateus/Habit/store"
	"github.com/Ramon-Mateus/Habit/testutil"
	"github.com/Ramon-Mateus/Habit/tracker"
)

func newHabitHandler(conn *sql.DB) *HabitHandler {
	habits := store.NewHabitStore(conn)
	days := store.NewDayStore(conn)
	return NewHabitHandler(habits, tracker.NewToggler(habits, days))
}

func TestCreateHabit(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := newHabitHandler(conn)

	req := testutil.MakeRequest("POST", "/habits", models.CreateHabitRequest{
		Title:    "Run",
		WeekDays: []int{1, 3, 5},
	}, nil)
	w := httptest.NewRecorder()

	handler.CreateHabit(w, req)

	testutil.AssertStatus(t, w, 201)

	var resp models.CreateHabitResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.HabitID == "" {
		t.Error("expected a habit_id in the response")
	}

	if n := testutil.CountRows(t, conn, "habits"); n != 1 {
		t.Errorf("expected 1 habit row, got %d", n)
	}
}

func TestCreateHabitRejectsBadInput(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := newHabitHandler(conn)

	tests := []struct {
		name string
		body interface{}
	}{
		{"missing title", models.CreateHabitRequest{WeekDays: []int{1}}},
		{"week day out of range", models.CreateHabitRequest{Title: "Run", WeekDays: []int{7}}},
		{"negative week day", models.CreateHabitRequest{Title: "Run", WeekDays: []int{-1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/habits", tt.body, nil)
			w := httptest.NewRecorder()

			handler.CreateHabit(w, req)

			testutil.AssertStatus(t, w, 400)
		})
	}

	t.Run("malformed JSON", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/habits", strings.NewReader("{not json"))
		w := httptest.NewRecorder()

		handler.CreateHabit(w, req)

		testutil.AssertStatus(t, w, 400)
	})

	// No partial state from any rejected request
	if n := testutil.CountRows(t, conn, "habits"); n != 0 {
		t.Errorf("expected 0 habit rows after rejected creates, got %d", n)
	}
}

func TestToggleHabitTwiceRestoresState(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := newHabitHandler(conn)

	habitID := testutil.CreateTestHabit(t, conn, "Run", "2024-01-01", []int{1, 3, 5})

	toggle := func() models.ToggleHabitResponse {
		req := testutil.MakeRequest("PATCH", "/habits/"+habitID+"/toggle", nil, nil)
		req.SetPathValue("id", habitID)
		w := httptest.NewRecorder()

		handler.ToggleHabit(w, req)

		testutil.AssertStatus(t, w, 200)
		var resp models.ToggleHabitResponse
		testutil.AssertJSON(t, w, &resp)
		return resp
	}

	if resp := toggle(); !resp.Completed {
		t.Error("first toggle should mark the habit completed")
	}
	if n := testutil.CountRows(t, conn, "day_habits"); n != 1 {
		t.Errorf("expected 1 completion row, got %d", n)
	}

	if resp := toggle(); resp.Completed {
		t.Error("second toggle should mark the habit not completed")
	}
	if n := testutil.CountRows(t, conn, "day_habits"); n != 0 {
		t.Errorf("expected 0 completion rows, got %d", n)
	}

	// Both toggles hit the same lazily created day record
	if n := testutil.CountRows(t, conn, "days"); n != 1 {
		t.Errorf("expected 1 day row, got %d", n)
	}
}

func TestToggleHabitRejectsMalformedID(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := newHabitHandler(conn)

	req := testutil.MakeRequest("PATCH", "/habits/not-a-uuid/toggle", nil, nil)
	req.SetPathValue("id", "not-a-uuid")
	w := httptest.NewRecorder()

	handler.ToggleHabit(w, req)

	testutil.AssertStatus(t, w, 400)
	if n := testutil.CountRows(t, conn, "days"); n != 0 {
		t.Errorf("rejected toggle created %d day rows", n)
	}
}

func TestToggleHabitUnknownID(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := newHabitHandler(conn)

	unknown := "b31e6ce8-589d-46b2-b618-33b6d9b8f5a6"
	req := testutil.MakeRequest("PATCH", "/habits/"+unknown+"/toggle", nil, nil)
	req.SetPathValue("id", unknown)
	w := httptest.NewRecorder()

	handler.ToggleHabit(w, req)

	testutil.AssertStatus(t, w, 404)
	if n := testutil.CountRows(t, conn, "day_habits"); n != 0 {
		t.Errorf("toggle of unknown habit persisted %d completion rows", n)
	}
}
