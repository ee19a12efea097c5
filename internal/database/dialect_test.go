package database

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestDialect_Rebind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		dialect  Dialect
		query    string
		expected string
	}{
		{
			name:     "sqlite keeps question marks",
			dialect:  SQLite,
			query:    "SELECT id FROM accounts WHERE iban = ? AND balance_cents >= ?",
			expected: "SELECT id FROM accounts WHERE iban = ? AND balance_cents >= ?",
		},
		{
			name:     "postgres numbers placeholders",
			dialect:  Postgres,
			query:    "SELECT id FROM accounts WHERE iban = ? AND balance_cents >= ? LIMIT ? OFFSET ?",
			expected: "SELECT id FROM accounts WHERE iban = $1 AND balance_cents >= $2 LIMIT $3 OFFSET $4",
		},
		{
			name:     "postgres without placeholders",
			dialect:  Postgres,
			query:    "SELECT COUNT(*) FROM accounts",
			expected: "SELECT COUNT(*) FROM accounts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, tt.dialect.Rebind(tt.query))
		})
	}
}

func TestDialectFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		driver   string
		expected string
		wantErr  bool
	}{
		{driver: "", expected: "sqlite3"},
		{driver: "sqlite3", expected: "sqlite3"},
		{driver: "postgres", expected: "postgres"},
		{driver: "postgresql", expected: "postgres"},
		{driver: "mysql", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			t.Parallel()

			dialect, err := DialectFor(tt.driver)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.expected, dialect.Name())
		})
	}
}

func TestBuildDSN(t *testing.T) {
	t.Parallel()

	dsn, err := buildDSN(SQLite, Config{DatabasePath: "x.db", BusyTimeout: 1500 * time.Millisecond, EnableWAL: true})
	require.NoError(t, err)
	require.Equal(t, "file:x.db?_busy_timeout=1500&_txlock=immediate&_foreign_keys=on&_journal_mode=WAL", dsn)

	_, err = buildDSN(Postgres, Config{})
	require.Error(t, err)

	dsn, err = buildDSN(Postgres, Config{URL: "postgres://u:p@localhost/transfers"})
	require.NoError(t, err)
	require.Equal(t, "postgres://u:p@localhost/transfers", dsn)
}

func TestCents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		amount   string
		expected int64
		wantErr  error
	}{
		{amount: "0", expected: 0},
		{amount: "40", expected: 4000},
		{amount: "0.1", expected: 10},
		{amount: "-12.34", expected: -1234},
		{amount: "1.005", wantErr: ErrSubCentAmount},
		{amount: "1e30", wantErr: ErrAmountRange},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			t.Parallel()

			cents, err := toCents(decimal.RequireFromString(tt.amount))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.expected, cents)
			require.True(t, fromCents(cents).Equal(decimal.RequireFromString(tt.amount)))
		})
	}

	require.Equal(t, int64(1001), lowerBoundCents(decimal.RequireFromString("10.001")))
	require.Equal(t, int64(1000), upperBoundCents(decimal.RequireFromString("10.009")))
	require.Equal(t, int64(-1000), lowerBoundCents(decimal.RequireFromString("-10.009")))
}
