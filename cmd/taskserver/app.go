package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/phrazzld/tarefas/internal/config"
	"github.com/phrazzld/tarefas/internal/metrics"
	"github.com/phrazzld/tarefas/internal/platform/httpserver"
	"github.com/phrazzld/tarefas/internal/service"
	"github.com/phrazzld/tarefas/internal/store"
)

// application holds the shared dependencies of the task server and
// releases them on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	taskStore   store.TaskStore
	taskService service.TaskService
	metrics     *metrics.Metrics
}

// newApplication wires stores and services on top of an open database and
// makes sure the schema exists.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config:  cfg,
		logger:  logger,
		db:      db,
		metrics: metrics.New(),
	}

	var err error
	app.taskStore, err = newTaskStore(cfg.Database.Driver, db, logger)
	if err != nil {
		return nil, err
	}

	if err := app.taskStore.Init(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	logger.Info("task schema ready")

	app.taskService, err = service.NewTaskService(
		service.NewTaskRepositoryAdapter(app.taskStore, db),
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	logger.Info("application initialized successfully")
	return app, nil
}

// Run serves HTTP until ctx ends, then shuts down and releases resources.
func (app *application) Run(ctx context.Context) error {
	return httpserver.ListenAndServe(ctx, ":"+strconv.Itoa(app.config.Server.Port), app.setupRouter(),
		httpserver.Options{
			ShutdownTimeout: app.config.Server.ShutdownTimeout,
			Logger:          app.logger,
			Cleanup:         app.cleanup,
		})
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", slog.String("error", err.Error()))
		}
	}

	app.logger.Info("application shutdown completed")
}
