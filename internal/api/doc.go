// Package api handles incoming HTTP requests for both servers. TaskHandler
// exposes the task CRUD endpoints and MonitorHandler upgrades clients to
// WebSocket and streams host utilization to them. Handlers translate HTTP
// concerns to service calls and map errors to status codes.
package api
