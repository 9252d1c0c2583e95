package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory store instead of a file.
const MemoryPath = ":memory:"

// filePragmas only make sense for an on-disk store: WAL lets `studyplan
// week` read while another invocation writes, and the busy timeout makes a
// second writer wait instead of failing with SQLITE_BUSY.
var filePragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA busy_timeout = 5000",
}

// OpenDB opens the study-plan store at path, creating its directory with
// owner-only permissions, and migrates the schema. MemoryPath yields a
// single-connection in-memory store.
func OpenDB(path string) (*sql.DB, error) {
	memory := path == MemoryPath
	if !memory {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	pragmas := []string{"PRAGMA foreign_keys = ON"}
	if memory {
		// Every connection to :memory: is a separate empty database.
		db.SetMaxOpenConns(1)
	} else {
		pragmas = append(pragmas, filePragmas...)
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", p, err)
		}
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return db, nil
}
