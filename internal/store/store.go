// Package store is the SQLite side of the loader: schema bootstrap,
// append-only inserts, natural-key lookups, and the read/mutation
// surfaces consumed by the out-of-core collaborators.
//
// Table and column names are an external contract shared with those
// collaborators and must not drift.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // driver: sqlite
)

// Store wraps one open database handle. The loader assumes exclusive
// access for the duration of a run.
type Store struct {
	db *sql.DB
}

// Open opens (and creates, if absent) the database file at path.
// The caller must Close it on every exit path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}

	// Single-run batch process; one writer keeps SQLite happy.
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func dsn(path string) string {
	return "file:" + path + "?_pragma=foreign_keys(1)"
}
