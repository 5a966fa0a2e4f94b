package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/taskdeck/taskdeck/internal/config"
	"github.com/taskdeck/taskdeck/internal/platform/gemini"
	"github.com/taskdeck/taskdeck/internal/platform/postgres"
	"github.com/taskdeck/taskdeck/internal/service"
	"github.com/taskdeck/taskdeck/internal/store"
	"github.com/taskdeck/taskdeck/internal/translation"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	itemStore   store.ItemStore
	itemService service.ItemService
	translator  translation.Translator
}

// newApplication creates a new application instance with all dependencies
// initialized. The config, logger, and database connection must be
// established by the caller before application initialization.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.itemStore = postgres.NewPostgresItemStore(db, logger)

	var err error
	app.itemService, err = service.NewItemService(app.itemStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create item service: %w", err)
	}

	// A missing API key disables translation but never blocks CRUD.
	if cfg.Translation.Enabled() {
		app.translator, err = gemini.NewTranslator(
			ctx,
			logger.With("component", "translator"),
			cfg.Translation,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize translator: %w", err)
		}
		logger.Info("translation service initialized",
			"model", cfg.Translation.ModelName)
	} else {
		app.translator = gemini.NewDisabled()
		logger.Warn("translation disabled: no Gemini API key configured")
	}

	logger.Info("application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}

	app.logger.Info("application shutdown completed")
}
