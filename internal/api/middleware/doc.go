// Package middleware provides the HTTP middleware shared by both servers:
// per-request trace IDs with a scoped logger, and Prometheus request metrics.
package middleware
