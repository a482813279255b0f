/*
Package store implements habit and day persistence over database/sql.

HabitStore owns habit definitions and their weekday recurrence sets;
DayStore owns per-date day records and completion membership. Both work
against either supported engine because all SQL stays inside the shared
dialect (see package db).

Concurrency-sensitive operations resolve races at the constraint level
rather than with explicit locking:

  - DayStore.GetOrCreate: conditional insert on days.date, then re-read -
    losers of a concurrent creation fetch the winner's record
  - DayStore.AddCompletion: ON CONFLICT DO NOTHING on the (day, habit)
    primary key - a duplicate add is absorbed, never a duplicate row

Input validation lives in HabitStore.Create and fails with
apperr.ErrValidation before any write.
*/
package store
