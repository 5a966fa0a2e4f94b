package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/taskdeck/taskdeck/internal/api"
	apiMiddleware "github.com/taskdeck/taskdeck/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)

	itemHandler := api.NewItemHandler(app.itemService, app.logger)
	translateHandler := api.NewTranslateHandler(app.translator, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			r.Post("/", itemHandler.CreateItem)
			r.Get("/", itemHandler.ListItems)
			r.Get("/{id}", itemHandler.GetItem)
			r.Post("/{id}/complete", itemHandler.CompleteItem)
			r.Delete("/{id}", itemHandler.DeleteItem)
		})

		r.Post("/translate", translateHandler.Translate)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
