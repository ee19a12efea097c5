package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

type Client struct {
	db      *sql.DB
	dialect Dialect
	config  Config
}

func NewClient(config Config) (*Client, error) {
	dialect, err := DialectFor(config.Driver)
	if err != nil {
		return nil, err
	}

	dsn, err := buildDSN(dialect, config)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(dialect.driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(config.MaxOpenConns)
	db.SetMaxIdleConns(config.MaxIdleConns)
	db.SetConnMaxLifetime(config.ConnMaxLifetime)
	db.SetConnMaxIdleTime(config.ConnMaxIdleTime)

	return &Client{
		db:      db,
		dialect: dialect,
		config:  config,
	}, nil
}

func buildDSN(dialect Dialect, config Config) (string, error) {
	if dialect.name == Postgres.name {
		if config.URL == "" {
			return "", errors.New("DATABASE_URL is required for the postgres driver")
		}
		return config.URL, nil
	}

	dsn := fmt.Sprintf("file:%s?", config.DatabasePath)

	dsn += fmt.Sprintf("_busy_timeout=%d", int(config.BusyTimeout.Milliseconds()))

	// IMMEDIATE transactions take the reserved lock at BEGIN, so two transfers
	// can never interleave their read of a balance with the other's update.
	dsn += "&_txlock=immediate"
	dsn += "&_foreign_keys=on"

	if config.EnableWAL {
		dsn += "&_journal_mode=WAL"
	}

	return dsn, nil
}

func (c *Client) DB() *sql.DB {
	return c.db
}

func (c *Client) Dialect() Dialect {
	return c.dialect
}

// Migrate creates the tables and indexes when they do not exist yet.
func (c *Client) Migrate(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx, c.dialect.schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (c *Client) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}
