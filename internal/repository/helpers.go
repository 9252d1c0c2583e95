package repository

import (
	"database/sql"
	"fmt"
	"time"
)

// nullableIntToValue converts a *int to a value suitable for SQLite storage.
// Returns nil (SQL NULL) if the pointer is nil, otherwise returns the int value.
func nullableIntToValue(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

// intPtrFromNull converts a scanned nullable integer back to a *int.
func intPtrFromNull(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
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

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// parseStamps parses the created_at/updated_at pair. Empty strings leave the
// zero time so rows inserted by hand still load.
func parseStamps(created, updated string) (time.Time, time.Time, error) {
	var c, u time.Time
	var err error
	if created != "" {
		if c, err = time.Parse(time.RFC3339, created); err != nil {
			return c, u, fmt.Errorf("parsing created_at: %w", err)
		}
	}
	if updated != "" {
		if u, err = time.Parse(time.RFC3339, updated); err != nil {
			return c, u, fmt.Errorf("parsing updated_at: %w", err)
		}
	}
	return c, u, nil
}
