package dateutil

import (
	"errors"
	"time"
)

// DateFormat is the canonical calendar-day representation used throughout
// the system, in storage and over the wire.
const DateFormat = "2006-01-02"

// ErrInvalidDate is returned when a date string matches none of the
// accepted ISO-8601 layouts.
var ErrInvalidDate = errors.New("invalid date format")

// Normalize truncates a timestamp to its calendar day: the time-of-day
// component is zeroed and the result is anchored in UTC. Idempotent.
func Normalize(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Weekday returns the day-of-week index of a calendar day, 0 = Sunday.
func Weekday(t time.Time) int {
	return int(t.Weekday())
}

// Today returns the current calendar day.
func Today() time.Time {
	return Normalize(time.Now())
}

// FormatDate renders a calendar day as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// ParseDate parses an ISO-8601 date or date/time string. Accepted layouts,
// tried in order: RFC 3339, date-time without offset, plain date.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", DateFormat} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}
