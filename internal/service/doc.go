// Package service contains the task use cases. It sits between the HTTP
// handlers in internal/api and the storage interfaces in internal/store.
//
// Every operation runs inside its own short transaction obtained through
// store.RunInTransaction. Writes re-read the affected row before returning so
// callers always see what storage actually holds.
//
// Store sentinel errors are translated to service sentinels (ErrTaskNotFound)
// and unexpected failures are wrapped in TaskServiceError, which the API layer
// maps to HTTP status codes.
package service
