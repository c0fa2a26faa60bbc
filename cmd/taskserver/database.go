package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/tarefas/internal/config"
	"github.com/phrazzld/tarefas/internal/platform/postgres"
	"github.com/phrazzld/tarefas/internal/platform/sqlite"
	"github.com/phrazzld/tarefas/internal/redact"
	"github.com/phrazzld/tarefas/internal/store"
)

// setupAppDatabase opens the database selected by cfg.Driver.
func setupAppDatabase(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*sql.DB, error) {
	var (
		db  *sql.DB
		err error
	)

	switch cfg.Driver {
	case sqlite.DriverName:
		db, err = sqlite.Open(ctx, cfg.DSN)
	case postgres.DriverName:
		db, err = postgres.Open(ctx, cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	if err != nil {
		logger.Error("database connection failed",
			slog.String("driver", cfg.Driver),
			slog.String("error", redact.Error(err)))
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	logger.Info("database connection established", slog.String("driver", cfg.Driver))
	return db, nil
}

// newTaskStore builds the store implementation matching driver.
func newTaskStore(driver string, db *sql.DB, logger *slog.Logger) (store.TaskStore, error) {
	switch driver {
	case sqlite.DriverName:
		return sqlite.NewSQLiteTaskStore(db, logger), nil
	case postgres.DriverName:
		return postgres.NewPostgresTaskStore(db, logger), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}
