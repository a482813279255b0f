package handlers

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/Ramon-Mateus/Habit/testutil"
)

// TestConcurrentTogglesSameFreshDay verifies that simultaneous toggles of
// different habits on a never-before-toggled date produce exactly one day
// record holding all the completions, not one record per toggle.
func TestConcurrentTogglesSameFreshDay(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := newHabitHandler(conn)

	numHabits := 10
	habitIDs := make([]string, numHabits)
	for i := 0; i < numHabits; i++ {
		title := "Habit " + string(rune('A'+i))
		habitIDs[i] = testutil.CreateTestHabit(t, conn, title, "2024-01-01", []int{0, 1, 2, 3, 4, 5, 6})
	}

	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numHabits; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			req := httptest.NewRequest("PATCH", "/habits/"+habitIDs[idx]+"/toggle", nil)
			req.SetPathValue("id", habitIDs[idx])
			w := httptest.NewRecorder()

			handler.ToggleHabit(w, req)

			if w.Code == http.StatusOK {
				successCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	if int(successCount.Load()) != numHabits {
		t.Errorf("Expected %d successful toggles, got %d", numHabits, successCount.Load())
	}

	// Exactly one day record for today, regardless of who created it
	if n := testutil.CountRows(t, conn, "days"); n != 1 {
		t.Errorf("Expected 1 day record, got %d", n)
	}

	// Every habit marked complete exactly once
	if n := testutil.CountRows(t, conn, "day_habits"); n != numHabits {
		t.Errorf("Expected %d completions, got %d", numHabits, n)
	}

	var distinct int
	err := conn.QueryRow("SELECT COUNT(DISTINCT habit_id) FROM day_habits").Scan(&distinct)
	if err != nil {
		t.Fatalf("Failed to count distinct completions: %v", err)
	}
	if distinct != numHabits {
		t.Errorf("Expected %d distinct completed habits, got %d (possible duplicates)", numHabits, distinct)
	}
}

// TestConcurrentTogglesSameHabit hammers one habit from many goroutines.
// The end state depends on interleaving, but the uniqueness constraints
// must hold: at most one completion row and exactly one day record.
func TestConcurrentTogglesSameHabit(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := newHabitHandler(conn)

	habitID := testutil.CreateTestHabit(t, conn, "Run", "2024-01-01", []int{0, 1, 2, 3, 4, 5, 6})

	numToggles := 8
	var wg sync.WaitGroup

	for i := 0; i < numToggles; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req := httptest.NewRequest("PATCH", "/habits/"+habitID+"/toggle", nil)
			req.SetPathValue("id", habitID)
			w := httptest.NewRecorder()

			handler.ToggleHabit(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("toggle failed with status %d: %s", w.Code, w.Body.String())
			}
		}()
	}

	wg.Wait()

	if n := testutil.CountRows(t, conn, "days"); n != 1 {
		t.Errorf("Expected 1 day record, got %d", n)
	}
	if n := testutil.CountRows(t, conn, "day_habits"); n > 1 {
		t.Errorf("Expected at most 1 completion row, got %d", n)
	}
}
