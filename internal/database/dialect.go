package database

import (
	"fmt"
	"strconv"
	"strings"
)

// Dialect captures the few places where sqlite and postgres SQL differ.
// Queries are written with ? placeholders and rebound per dialect.
type Dialect struct {
	name       string
	driver     string
	positional bool
	lockSuffix string
	schema     string
}

var (
	SQLite = Dialect{
		name:   "sqlite3",
		driver: "sqlite3",
		schema: sqliteSchema,
	}
	Postgres = Dialect{
		name:       "postgres",
		driver:     "postgres",
		positional: true,
		lockSuffix: " FOR UPDATE",
		schema:     postgresSchema,
	}
)

func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case SQLite.name, "sqlite", "":
		return SQLite, nil
	case Postgres.name, "postgresql", "pq":
		return Postgres, nil
	default:
		return Dialect{}, fmt.Errorf("unsupported database driver %q", driver)
	}
}

func (d Dialect) Name() string {
	return d.name
}

// Rebind rewrites ? placeholders into $1, $2, ... for positional dialects.
func (d Dialect) Rebind(query string) string {
	if !d.positional {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)

	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}

const sqliteSchema = `
	CREATE TABLE IF NOT EXISTS accounts (
		id TEXT PRIMARY KEY,
		iban TEXT NOT NULL,
		balance_cents INTEGER NOT NULL DEFAULT 0,
		currency TEXT NOT NULL,
		country TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		name TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS accounts_iban_idx ON accounts (iban);

	CREATE TABLE IF NOT EXISTS transfers (
		id TEXT PRIMARY KEY,
		source_account_id TEXT NOT NULL REFERENCES accounts (id),
		amount_cents INTEGER NOT NULL CHECK (amount_cents > 0),
		recipient_name TEXT NOT NULL,
		target_iban TEXT NOT NULL,
		target_bic TEXT NOT NULL,
		reference TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
`

const postgresSchema = `
	CREATE TABLE IF NOT EXISTS accounts (
		id TEXT PRIMARY KEY,
		iban TEXT NOT NULL,
		balance_cents BIGINT NOT NULL DEFAULT 0,
		currency TEXT NOT NULL,
		country TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		name TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS accounts_iban_idx ON accounts (iban);

	CREATE TABLE IF NOT EXISTS transfers (
		id TEXT PRIMARY KEY,
		source_account_id TEXT NOT NULL REFERENCES accounts (id),
		amount_cents BIGINT NOT NULL CHECK (amount_cents > 0),
		recipient_name TEXT NOT NULL,
		target_iban TEXT NOT NULL,
		target_bic TEXT NOT NULL,
		reference TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
`
