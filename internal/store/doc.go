// Package store defines interfaces for task persistence.
// These interfaces abstract the underlying database from the service layer,
// so business rules stay independent of the SQL dialect in use.
// Implementations live under internal/platform.
package store
