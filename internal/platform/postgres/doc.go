// Package postgres provides the PostgreSQL implementation of store.TaskStore,
// selected with database.driver=pgx. Connections go through the pgx stdlib
// adapter so the rest of the application keeps working with database/sql.
package postgres
