// Package httpserver runs an http.Server until its context ends, then shuts
// it down gracefully.
package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"
)

// DefaultShutdownTimeout bounds Shutdown when none is configured.
const DefaultShutdownTimeout = 10 * time.Second

// Options configures Serve.
type Options struct {
	ShutdownTimeout time.Duration
	Logger          *slog.Logger
	// Cleanup runs after the server has stopped accepting requests.
	Cleanup func()
}

// ListenAndServe listens on addr and calls Serve.
func ListenAndServe(ctx context.Context, addr string, handler http.Handler, opts Options) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return Serve(ctx, ln, handler, opts)
}

// Serve accepts connections on ln until ctx is canceled or the server fails.
// It then shuts the server down, waiting up to opts.ShutdownTimeout for
// in-flight requests, and runs opts.Cleanup.
func Serve(ctx context.Context, ln net.Listener, handler http.Handler, opts Options) error {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	timeout := opts.ShutdownTimeout
	if timeout <= 0 {
		timeout = DefaultShutdownTimeout
	}

	server := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("starting server", slog.String("addr", ln.Addr().String()))
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		log.Info("shutting down server")
	case err := <-serveErr:
		if err != nil {
			log.Error("server failed", slog.String("error", err.Error()))
			runErr = fmt.Errorf("server error: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", slog.String("error", err.Error()))
		if runErr == nil {
			runErr = fmt.Errorf("server shutdown failed: %w", err)
		}
	}

	if opts.Cleanup != nil {
		opts.Cleanup()
	}

	log.Info("server shutdown completed")
	return runErr
}
