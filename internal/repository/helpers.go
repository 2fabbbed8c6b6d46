package repository

import (
	"database/sql"
	"fmt"
)

// nullableStr converts a string to a value suitable for SQLite storage.
// Returns nil (SQL NULL) for the empty string.
func nullableStr(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

// requireRow turns a zero-row UPDATE into ErrNotFound so callers can
// distinguish "no such entity" from a successful no-op.
func requireRow(res sql.Result, entity string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", entity, ErrNotFound)
	}
	return nil
}
