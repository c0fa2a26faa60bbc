package config

import "time"

// Config holds all application configuration.
// Both servers load the same structure and read the groups they need.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Monitor  MonitorConfig  `mapstructure:"monitor" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// ShutdownTimeout bounds graceful shutdown of the HTTP server.
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// DatabaseConfig selects the task storage backend.
type DatabaseConfig struct {
	// Driver is either "sqlite" (local file) or "pgx" (PostgreSQL).
	Driver string `mapstructure:"driver" validate:"required,oneof=sqlite pgx"`
	// DSN is the SQLite file name or the PostgreSQL connection URL.
	DSN string `mapstructure:"dsn" validate:"required"`
}

// MonitorConfig contains the settings of the metrics broadcaster.
type MonitorConfig struct {
	Interval time.Duration `mapstructure:"interval" validate:"gt=0"`
	// Warmup is the CPU baseline window measured before the first sample.
	Warmup     time.Duration `mapstructure:"warmup" validate:"gte=0"`
	DiskPath   string        `mapstructure:"disk_path" validate:"required"`
	BufferSize int           `mapstructure:"buffer_size" validate:"gt=0"`
}
