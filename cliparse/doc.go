/*
Package cliparse handles configuration from CLI flags and environment
variables.

# Precedence

CLI flags take precedence over environment variables, which take precedence
over defaults:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Settings

  - -p / PORT: server port (default 3838)
  - -d / DATABASE_URL: SQLite file path or PostgreSQL connection string
  - -t / DATABASE_TYPE: "sqlite" (default) or "postgres"

A database URL is required for postgres. For sqlite it defaults to
./data/habits.db.
*/
package cliparse
