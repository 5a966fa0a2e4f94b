package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/taskdeck/taskdeck/migrations"
)

// slogGooseLogger adapts goose's logger interface to slog.
type slogGooseLogger struct{}

func (*slogGooseLogger) Fatalf(format string, v ...interface{}) {
	slog.Error(fmt.Sprintf(format, v...), "component", "goose")
}

func (*slogGooseLogger) Printf(format string, v ...interface{}) {
	slog.Info(fmt.Sprintf(format, v...), "component", "goose")
}

// runMigrations applies all pending goose migrations from the embedded
// filesystem. It is idempotent: already-applied migrations are skipped, so
// running it on every startup is safe.
func runMigrations(db *sql.DB, logger *slog.Logger) error {
	correlationID := uuid.New().String()
	migrationLogger := logger.With(
		"correlation_id", correlationID,
		"component", "migrations",
	)

	startTime := time.Now()
	migrationLogger.Info("applying database migrations")

	goose.SetLogger(&slogGooseLogger{})
	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		migrationLogger.Error("migration failed", "error", err)
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	migrationLogger.Info("migrations applied",
		"duration_ms", time.Since(startTime).Milliseconds())
	return nil
}
