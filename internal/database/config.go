package database

import (
	"time"
)

type Config struct {
	Driver          string        `envconfig:"DATABASE_DRIVER" default:"sqlite3"`
	URL             string        `envconfig:"DATABASE_URL"` // postgres connection string
	DatabasePath    string        `envconfig:"DATABASE_PATH" default:"transfers.db"`
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"5m"`
	ConnMaxIdleTime time.Duration `envconfig:"CONN_MAX_IDLE_TIME" default:"1m"`
	BusyTimeout     time.Duration `envconfig:"BUSY_TIMEOUT" default:"30s"` // sqlite: time to wait for lock acquisition
	EnableWAL       bool          `envconfig:"ENABLE_WAL" default:"true"`  // sqlite: allows concurrent reads while writing
	Migrate         bool          `envconfig:"DATABASE_MIGRATE" default:"true"`
}
