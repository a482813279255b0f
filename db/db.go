package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/lib/pq"  // PostgreSQL driver
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/Ramon-Mateus/Habit/cliparse"
)

// Open connects to the configured database. For SQLite it creates the
// parent directory of the database file and enables foreign key
// enforcement; PostgreSQL enforces foreign keys unconditionally.
func Open(cfg cliparse.Config) (*sql.DB, error) {
	switch cfg.DatabaseType {
	case cliparse.DBPostgres:
		return sql.Open("postgres", cfg.DatabaseURL)

	case cliparse.DBSQLite:
		if !strings.Contains(cfg.DatabaseURL, ":memory:") {
			dir := filepath.Dir(cfg.DatabaseURL)
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		conn, err := sql.Open("sqlite", cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
		return conn, nil

	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.DatabaseType)
	}
}
