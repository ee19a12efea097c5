package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"transfers/internal/core"
)

type TestSuite struct {
	DB       *sql.DB
	DBPath   string
	Client   *Client
	Accounts AccountStore
	Transfer TransferStore
}

func NewTestSuite(t *testing.T) *TestSuite {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test_transfers.db")

	client, err := NewClient(Config{
		Driver:       "sqlite3",
		DatabasePath: dbPath,
		MaxOpenConns: 10,
		MaxIdleConns: 5,
		BusyTimeout:  30 * time.Second,
		EnableWAL:    true,
	})
	require.NoError(t, err, "failed to create test client")
	t.Cleanup(func() { client.Close() })

	require.NoError(t, client.Migrate(context.Background()), "failed to create schema")

	return &TestSuite{
		DB:       client.DB(),
		DBPath:   dbPath,
		Client:   client,
		Accounts: NewAccountStore(client.DB(), client.Dialect()),
		Transfer: NewTransferStore(client.DB(), client.Dialect()),
	}
}

func (s *TestSuite) SeedAccount(t *testing.T, id, name, iban string, balance string) core.Account {
	t.Helper()

	account := core.Account{
		ID:   id,
		IBAN: iban,
		Balances: core.Balances{
			Available: core.Money{Value: decimal.RequireFromString(balance), Currency: "EUR"},
		},
		Country:   "FR",
		CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Name:      name,
	}

	require.NoError(t, s.Accounts.Insert(context.Background(), []core.Account{account}), "failed to seed account")

	return account
}

func (s *TestSuite) AccountBalanceCents(t *testing.T, id string) int64 {
	t.Helper()

	var balance int64
	err := s.DB.QueryRow("SELECT balance_cents FROM accounts WHERE id = ?", id).Scan(&balance)
	require.NoError(t, err, "failed to get account balance")

	return balance
}

func (s *TestSuite) CountTransfers(t *testing.T, sourceID string) int {
	t.Helper()

	var count int
	err := s.DB.QueryRow("SELECT COUNT(*) FROM transfers WHERE source_account_id = ?", sourceID).Scan(&count)
	require.NoError(t, err, "failed to count transfers")

	return count
}

func (s *TestSuite) Begin(t *testing.T) *sql.Tx {
	t.Helper()

	tx, err := s.DB.BeginTx(context.Background(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = tx.Rollback() })

	return tx
}
