// Package config provides centralized configuration management for the
// loader and the reports server. It loads settings from environment
// variables with sensible defaults and validates everything on startup
// to fail fast on misconfiguration.
package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Source  SourceConfig
	Store   StoreConfig
	Logging LoggingConfig
	Reports ReportsConfig
}

// SourceConfig locates the input workbook.
type SourceConfig struct {
	// Spreadsheet is the path to the multi-sheet workbook to load.
	Spreadsheet string `env:"SOURCE_SPREADSHEET" default:"restaurant_data.xlsx"`
}

// StoreConfig locates the database and its schema script.
type StoreConfig struct {
	// Path is the SQLite database file.
	Path string `env:"STORE_PATH" default:"restaurant.db"`

	// Schema is the DDL script applied by the bootstrapper when the
	// database file does not exist yet.
	Schema string `env:"STORE_SCHEMA" default:"schema/schema.sql"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error.
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is "text" or "json".
	Format string `env:"LOG_FORMAT" default:"text"`
}

// ReportsConfig holds the reports HTTP server settings.
type ReportsConfig struct {
	// Host is the interface to bind to.
	Host string `env:"REPORTS_HOST" default:"0.0.0.0"`

	// Port is the port to listen on.
	Port int `env:"REPORTS_PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading a request.
	ReadTimeout time.Duration `env:"REPORTS_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing a response.
	WriteTimeout time.Duration `env:"REPORTS_WRITE_TIMEOUT" default:"30s"`

	// IdleTimeout is the keep-alive timeout.
	IdleTimeout time.Duration `env:"REPORTS_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum wait for graceful shutdown.
	ShutdownTimeout time.Duration `env:"REPORTS_SHUTDOWN_TIMEOUT" default:"30s"`

	// RequestTimeout is the per-request middleware timeout.
	RequestTimeout time.Duration `env:"REPORTS_REQUEST_TIMEOUT" default:"60s"`
}

// Validate checks configuration consistency.
func (c *Config) Validate() error {
	if c.Source.Spreadsheet == "" {
		return fmt.Errorf("SOURCE_SPREADSHEET must not be empty")
	}
	if c.Store.Path == "" {
		return fmt.Errorf("STORE_PATH must not be empty")
	}
	if c.Store.Schema == "" {
		return fmt.Errorf("STORE_SCHEMA must not be empty")
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.Logging.Format)
	}

	if c.Reports.Port < 1 || c.Reports.Port > 65535 {
		return fmt.Errorf("REPORTS_PORT must be between 1 and 65535, got %d", c.Reports.Port)
	}
	return nil
}

// ListenAddr returns the host:port the reports server binds to.
func (c *ReportsConfig) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
