package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS profiles (
		id          TEXT PRIMARY KEY,
		gender      TEXT NOT NULL
		            CHECK(gender IN ('男','女')),
		birth_year  INTEGER NOT NULL,
		birth_month INTEGER NOT NULL,
		birth_day   INTEGER NOT NULL,
		birth_hour  TEXT NOT NULL,
		city        TEXT NOT NULL DEFAULT '',
		is_lunar    INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS readings (
		id         TEXT PRIMARY KEY,
		profile_id TEXT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
		kind       TEXT NOT NULL
		           CHECK(kind IN ('analysis','question','compat','divination')),
		topic      TEXT NOT NULL DEFAULT '',
		question   TEXT NOT NULL DEFAULT '',
		content    TEXT NOT NULL,
		model      TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_readings_profile ON readings(profile_id)`,
	`CREATE INDEX IF NOT EXISTS idx_readings_created ON readings(created_at)`,

	// Add session snapshots so a consultation can resume where it left off
	`ALTER TABLE profiles ADD COLUMN session_data TEXT NOT NULL DEFAULT ''`,

	// Add the daily divination ledger (one casting per profile per CST day)
	`ALTER TABLE profiles ADD COLUMN last_divination TEXT`,
}
