package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMigrate_UpgradePath_LegacyToCurrentSchema simulates upgrading a
// database created before the session and divination columns existed.
// Verifies that:
// 1. Data inserted under the old schema survives migration
// 2. New columns are added with correct defaults
// 3. Re-running migrations stays idempotent
func TestMigrate_UpgradePath_LegacyToCurrentSchema(t *testing.T) {
	// Create a raw DB without using OpenDB (to manually control schema).
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`PRAGMA foreign_keys = ON`)
	require.NoError(t, err)

	// Apply a "legacy" schema: profiles without session_data or
	// last_divination, no readings table at all.
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS profiles (
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
	)`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO profiles (id, gender, birth_year, birth_month, birth_day, birth_hour, created_at)
		VALUES ('legacy', '女', 1988, 8, 8, '辰时', '2024-01-01T00:00:00Z')`)
	require.NoError(t, err)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db), "second run should be idempotent")

	// Legacy row survives with the new columns defaulted.
	var sessionData string
	var lastDivination sql.NullString
	err = db.QueryRow(`SELECT session_data, last_divination FROM profiles WHERE id = 'legacy'`).
		Scan(&sessionData, &lastDivination)
	require.NoError(t, err)
	assert.Equal(t, "", sessionData)
	assert.False(t, lastDivination.Valid)

	// The readings table arrived with the cascade in place.
	_, err = db.Exec(`INSERT INTO readings (id, profile_id, kind, content, created_at)
		VALUES ('r1', 'legacy', 'question', 'text', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`DELETE FROM profiles WHERE id = 'legacy'`)
	require.NoError(t, err)
	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM readings`).Scan(&count))
	assert.Equal(t, 0, count)
}
