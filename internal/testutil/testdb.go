package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/studyplan/internal/db"
	"github.com/stretchr/testify/require"
)

// TestUser is the user ID fixtures are stored under unless a test needs two.
const TestUser = "tester"

// NewTestDB opens a migrated in-memory store that closes with the test.
func NewTestDB(t *testing.T) *sql.DB {
	return openStore(t, db.MemoryPath)
}

// NewFileTestDB opens a migrated store on disk under t.TempDir. Tests that
// drive the store from several goroutines need it, since the in-memory
// store is pinned to one connection.
func NewFileTestDB(t *testing.T) *sql.DB {
	return openStore(t, filepath.Join(t.TempDir(), "studyplan.db"))
}

func openStore(t *testing.T, path string) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(path)
	require.NoError(t, err, "opening test store %s", path)
	t.Cleanup(func() { database.Close() })
	return database
}
