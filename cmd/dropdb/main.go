// Command dropdb deletes the database file so the next loader run
// starts from a clean store. Fatal load errors leave partially-loaded
// state behind; the recovery path is drop then reload.
package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"restaurant-loader/internal/config"
	"restaurant-loader/internal/logging"
	"restaurant-loader/internal/store"
)

func main() {
	_ = godotenv.Overload()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	if err := store.Drop(cfg.Store.Path); err != nil {
		slog.Error("drop failed", "path", cfg.Store.Path, "error", err)
		os.Exit(1)
	}
}
