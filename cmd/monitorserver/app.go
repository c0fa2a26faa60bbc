package main

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/phrazzld/tarefas/internal/config"
	"github.com/phrazzld/tarefas/internal/events"
	"github.com/phrazzld/tarefas/internal/metrics"
	"github.com/phrazzld/tarefas/internal/monitor"
	"github.com/phrazzld/tarefas/internal/platform/httpserver"
)

// application holds the dependencies of the monitor server.
type application struct {
	config *config.Config
	logger *slog.Logger

	hub         *events.Hub
	guard       *monitor.StartGuard
	broadcaster *monitor.Broadcaster
	metrics     *metrics.Metrics
}

// newApplication wires the hub and broadcaster around sampler. The start
// guard is created here, once per process, and shared by every connection.
func newApplication(
	cfg *config.Config,
	logger *slog.Logger,
	sampler monitor.Sampler,
	opts ...monitor.Option,
) *application {
	app := &application{
		config:  cfg,
		logger:  logger,
		hub:     events.NewHub(cfg.Monitor.BufferSize, logger),
		guard:   monitor.NewStartGuard(),
		metrics: metrics.New(),
	}

	base := []monitor.Option{
		monitor.WithInterval(cfg.Monitor.Interval),
		monitor.WithWarmup(cfg.Monitor.Warmup),
		monitor.WithMetrics(app.metrics),
		monitor.WithLogger(logger),
	}
	app.broadcaster = monitor.NewBroadcaster(app.guard, sampler, app.hub, append(base, opts...)...)

	logger.Info("application initialized successfully")
	return app
}

// Run serves HTTP until ctx ends. The broadcast loop, once started, is not
// stopped; it ends with the process.
func (app *application) Run(ctx context.Context) error {
	return httpserver.ListenAndServe(ctx, ":"+strconv.Itoa(app.config.Server.Port), app.setupRouter(),
		httpserver.Options{
			ShutdownTimeout: app.config.Server.ShutdownTimeout,
			Logger:          app.logger,
			Cleanup:         app.cleanup,
		})
}

func (app *application) cleanup() {
	app.logger.Info("application shutdown completed",
		slog.Int("subscribers", app.hub.Count()),
		slog.Int64("loop_starts", app.broadcaster.LoopStarts()))
}
