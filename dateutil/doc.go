/*
Package dateutil provides calendar-day math for habit scheduling.

The unit of scheduling and completion is the calendar day: a timestamp with
its time-of-day zeroed, anchored in UTC. Normalize produces one, Weekday
extracts its 0=Sunday day-of-week index, and ParseDate/FormatDate convert
between calendar days and their YYYY-MM-DD wire/storage form.

Normalize is idempotent:

	dateutil.Normalize(dateutil.Normalize(t)) == dateutil.Normalize(t)
*/
package dateutil
