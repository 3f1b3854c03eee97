package store

// bootstrap.go creates the database from the external schema script.
//
// Existence is judged by physical file presence, not by inspecting
// metadata: if the file is there, the schema is assumed applied and the
// call is a no-op. That makes Bootstrap safe to run at the start of
// every load. When the script fails partway, the fresh file is removed
// so no partial schema is left behind silently.

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"restaurant-loader/internal/core"
)

// Bootstrap ensures the database at dbPath exists with the schema from
// schemaPath applied. Idempotent: an existing database is never touched.
func Bootstrap(ctx context.Context, dbPath, schemaPath string) error {
	if _, err := os.Stat(dbPath); err == nil {
		slog.Info("database already exists, skipping schema", "path", dbPath)
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return &core.ConfigurationError{Path: dbPath, Reason: "cannot stat database", Err: err}
	}

	script, err := os.ReadFile(schemaPath)
	if err != nil {
		return &core.ConfigurationError{Path: schemaPath, Reason: "cannot read schema script", Err: err}
	}

	s, err := Open(dbPath)
	if err != nil {
		_ = os.Remove(dbPath)
		return &core.ConfigurationError{Path: dbPath, Reason: "cannot create database", Err: err}
	}

	if _, err := s.db.ExecContext(ctx, string(script)); err != nil {
		_ = s.Close()
		_ = os.Remove(dbPath)
		return &core.ConfigurationError{Path: schemaPath, Reason: "schema script failed", Err: err}
	}

	slog.Info("database created, schema applied", "path", dbPath, "schema", schemaPath)
	return s.Close()
}

// Drop deletes the database file. Operators use it between runs; the
// loader itself never deletes data.
func Drop(dbPath string) error {
	if _, err := os.Stat(dbPath); errors.Is(err, fs.ErrNotExist) {
		slog.Info("database does not exist, nothing to drop", "path", dbPath)
		return nil
	}
	if err := os.Remove(dbPath); err != nil {
		return err
	}
	slog.Info("database dropped", "path", dbPath)
	return nil
}
