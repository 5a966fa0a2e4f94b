// Command server is the entry point for the taskdeck API: a to-do item
// CRUD service over PostgreSQL with an optional Gemini-backed translation
// endpoint.
package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/taskdeck/taskdeck/internal/config"
	"github.com/taskdeck/taskdeck/internal/platform/logger"
	"github.com/taskdeck/taskdeck/internal/redact"
)

func main() {
	// Load .env if present; real environment variables win.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	appLogger := logger.Setup(cfg.Server)

	appLogger.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"translation_enabled", cfg.Translation.Enabled())

	ctx := context.Background()

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		// Driver errors can echo the connection URL, credentials included.
		appLogger.Error("failed to set up database", "error", redact.Error(err))
		log.Fatalf("failed to set up database: %s", redact.Error(err))
	}

	// Schema must be in place before the server accepts requests.
	if err := runMigrations(db, appLogger); err != nil {
		appLogger.Error("failed to run migrations", "error", redact.Error(err))
		log.Fatalf("failed to run migrations: %s", redact.Error(err))
	}

	app, err := newApplication(ctx, cfg, appLogger, db)
	if err != nil {
		appLogger.Error("failed to initialize application", "error", err)
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		appLogger.Error("server error", "error", err)
		log.Fatalf("server error: %v", err)
	}

	slog.Info("server exited")
}
