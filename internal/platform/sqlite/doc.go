// Package sqlite implements store.TaskStore on a local SQLite file using the
// pure-Go modernc.org/sqlite driver. It is the default backend of the task
// server. SQLite has no boolean type, so the completion flag is stored as
// 0/1 and converted at this boundary only.
package sqlite
