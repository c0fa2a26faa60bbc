// Package logger configures the process-wide log/slog logger from
// config.ServerConfig and carries request-scoped loggers in a context.
//
// Output is JSON on stdout. Handlers obtain their logger with FromContext,
// which falls back to slog.Default when nothing was attached.
package logger
