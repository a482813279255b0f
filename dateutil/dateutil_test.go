package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestNormalizeZeroesTimeOfDay(t *testing.T) {
	in := time.Date(2024, 3, 15, 18, 42, 7, 999, time.UTC)
	got := Normalize(in)

	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Normalize(%v) = %v, want %v", in, got, want)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	in := time.Date(2024, 3, 15, 18, 42, 7, 0, time.UTC)

	once := Normalize(in)
	twice := Normalize(once)
	if !once.Equal(twice) {
		t.Errorf("Normalize not idempotent: %v != %v", once, twice)
	}
}

func TestWeekday(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2024-01-07", 0}, // Sunday
		{"2024-01-01", 1}, // Monday
		{"2024-01-03", 3}, // Wednesday
		{"2024-01-06", 6}, // Saturday
	}

	for _, tt := range tests {
		d, err := ParseDate(tt.date)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", tt.date, err)
		}
		if got := Weekday(Normalize(d)); got != tt.want {
			t.Errorf("Weekday(%s) = %d, want %d", tt.date, got, tt.want)
		}
	}
}

func TestParseDateLayouts(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-01-01", "2024-01-01"},
		{"2024-01-01T10:30:00", "2024-01-01"},
		{"2024-01-01T10:30:00Z", "2024-01-01"},
	}

	for _, tt := range tests {
		d, err := ParseDate(tt.in)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", tt.in, err)
		}
		if got := FormatDate(Normalize(d)); got != tt.want {
			t.Errorf("ParseDate(%q) normalized to %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "tomorrow", "01/02/2024", "2024-13-40"} {
		if _, err := ParseDate(in); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("ParseDate(%q) err = %v, want ErrInvalidDate", in, err)
		}
	}
}

func TestTodayIsNormalized(t *testing.T) {
	today := Today()
	if !today.Equal(Normalize(today)) {
		t.Errorf("Today() = %v is not a normalized calendar day", today)
	}
}
