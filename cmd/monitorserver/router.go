package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/phrazzld/tarefas/internal/api"
	apiMiddleware "github.com/phrazzld/tarefas/internal/api/middleware"
)

// setupRouter creates the router with middleware and the monitor routes.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(apiMiddleware.Metrics(app.metrics))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))

	api.NewMonitorHandler(app.hub, app.broadcaster, app.metrics, app.logger).Routes(r)

	r.Get("/health", api.HealthHandler)
	r.Method(http.MethodGet, "/metrics", app.metrics.Handler())

	return r
}
