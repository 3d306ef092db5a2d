// Package database opens the SQLite database and applies migrations.
package database

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/vmunix/frameflux/internal/migrations"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// pragmas are set through the DSN so each pooled connection applies them.
var pragmas = []string{
	"busy_timeout(5000)",
	"synchronous(NORMAL)",
}

func dsn(path string) string {
	params := url.Values{}
	for _, p := range pragmas {
		params.Add("_pragma", p)
	}
	if path != MemoryPath {
		params.Add("_pragma", "journal_mode(WAL)")
	}
	return path + "?" + params.Encode()
}

// Open opens (creating if needed) the database at path and migrates it.
func Open(path string) (*sql.DB, error) {
	if path != MemoryPath {
		if dir := filepath.Dir(path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("create db dir: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if path == MemoryPath {
		// every connection would otherwise see its own empty database
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := migrations.Up(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}
