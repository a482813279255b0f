/*
Package tracker holds the core habit semantics on top of the store layer.

  - Scheduler: the recurrence rule mapping (habit, date) to applicability
  - Toggler: the two-state machine flipping today's completion per habit,
    creating today's day record lazily on first use
  - DayQuery: read-only composition of scheduling and completion state

Toggle is an involution: two sequential toggles of the same habit on the
same day restore the original state.
*/
package tracker
