// Command loader runs one batch load: bootstrap the database if needed,
// read the workbook, and commit every entity type in dependency order.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"restaurant-loader/internal/config"
	"restaurant-loader/internal/core"
	"restaurant-loader/internal/excel"
	"restaurant-loader/internal/logging"
	"restaurant-loader/internal/store"
)

func main() {
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	ctx := context.Background()
	log := logging.WithFields(ctx, "run_id", uuid.NewString())

	log.Info("load starting",
		"spreadsheet", cfg.Source.Spreadsheet,
		"database", cfg.Store.Path,
	)

	if err := store.Bootstrap(ctx, cfg.Store.Path, cfg.Store.Schema); err != nil {
		log.Error("bootstrap failed", "error", err)
		os.Exit(1)
	}

	workbook, err := excel.Open(cfg.Source.Spreadsheet)
	if err != nil {
		log.Error("cannot open spreadsheet", "path", cfg.Source.Spreadsheet, "error", err)
		os.Exit(1)
	}
	defer workbook.Close()
	log.Info("workbook opened", "path", workbook.Path(), "sheets", len(workbook.Sheets()))

	st, err := store.Open(cfg.Store.Path)
	if err != nil {
		log.Error("cannot open database", "path", cfg.Store.Path, "error", err)
		os.Exit(1)
	}
	defer st.Close()

	summary, err := core.NewPipeline(workbook, st, log).Run(ctx)
	if err != nil {
		log.Error("load aborted", "error", err)
		os.Exit(1)
	}

	for entity, dropped := range summary.Dropped {
		if dropped > 0 {
			log.Warn("entity had filtered rows", "entity", string(entity), "dropped", dropped)
		}
	}
	log.Info("done")
}
