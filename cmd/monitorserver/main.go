// Package main implements the host monitor server: it pushes CPU, memory and
// disk utilization to every connected WebSocket client once per interval.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/tarefas/internal/config"
	"github.com/phrazzld/tarefas/internal/monitor"
	"github.com/phrazzld/tarefas/internal/platform/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Printf("monitor server failed: %v", err)
		stop()
		os.Exit(1)
	}
}

// run loads configuration, wires dependencies and serves until ctx ends.
func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	l = l.With(slog.String("service", "monitorserver"))

	l.Info("server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.Duration("interval", cfg.Monitor.Interval),
		slog.String("disk_path", cfg.Monitor.DiskPath))

	app := newApplication(cfg, l, monitor.NewHostSampler(cfg.Monitor.DiskPath))
	return app.Run(ctx)
}
