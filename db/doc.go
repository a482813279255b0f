/*
Package db handles driver selection and database schema creation.

# Opening a Connection

Open dispatches on the configured database type:

	conn, err := db.Open(cfg) // sqlite (modernc.org/sqlite) or postgres (lib/pq)

SQL elsewhere in the codebase stays inside the dialect both engines share:
$N placeholders in first-use order, TEXT dates, ON CONFLICT DO NOTHING.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - habits: habit definitions (immutable after creation)
  - habit_week_days: weekday recurrence set per habit
  - days: one record per calendar day that has ever been toggled
  - day_habits: completion membership (day x habit)

# Relationships

	habits 1──* habit_week_days
	days   1──* day_habits
	habits 1──* day_habits

All foreign keys use ON DELETE CASCADE.

# Constraints

The semantics lean on two uniqueness constraints:

  - days.date UNIQUE: concurrent first toggles for a date collapse to a
    single day record
  - day_habits (day_id, habit_id) PRIMARY KEY: at most one completion per
    (day, habit) pair
*/
package db
