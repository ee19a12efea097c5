package database

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"transfers/internal/core"
)

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestAccountStore_Get(t *testing.T) {
	t.Parallel()

	suite := NewTestSuite(t)
	seeded := suite.SeedAccount(t, "acc-1", "Acme Corp", "FR1420041010050500013M02606", "1234.56")

	tests := []struct {
		name          string
		id            string
		expectedError error
	}{
		{
			name: "existing_account_returns_account",
			id:   "acc-1",
		},
		{
			name:          "unknown_account_returns_not_found",
			id:            "acc-404",
			expectedError: core.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account, err := suite.Accounts.Get(context.Background(), tt.id)

			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				return
			}

			require.NoError(t, err)
			require.Equal(t, seeded.ID, account.ID)
			require.Equal(t, seeded.IBAN, account.IBAN)
			require.Equal(t, seeded.Name, account.Name)
			require.Equal(t, seeded.Country, account.Country)
			require.Equal(t, seeded.CreatedAt, account.CreatedAt)
			require.Equal(t, "EUR", account.Balances.Available.Currency)
			require.True(t, account.Balances.Available.Value.Equal(decimal.RequireFromString("1234.56")))
		})
	}
}

func TestAccountStore_GetWithinTransaction(t *testing.T) {
	t.Parallel()

	suite := NewTestSuite(t)
	suite.SeedAccount(t, "acc-1", "Acme Corp", "FR1420041010050500013M02606", "10")

	tx := suite.Begin(t)
	account, err := suite.Accounts.Transacting(tx).Get(context.Background(), "acc-1")

	require.NoError(t, err)
	require.Equal(t, "acc-1", account.ID)
}

func TestAccountStore_ChangeBalance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		id            string
		delta         string
		expectedCents int64
		expectedError error
	}{
		{
			name:          "debit",
			id:            "acc-1",
			delta:         "-40",
			expectedCents: 6000,
		},
		{
			name:          "credit_with_cents",
			id:            "acc-1",
			delta:         "0.01",
			expectedCents: 10001,
		},
		{
			name:          "debit_below_zero_is_stored",
			id:            "acc-1",
			delta:         "-150.50",
			expectedCents: -5050,
		},
		{
			name:          "unknown_account",
			id:            "acc-404",
			delta:         "1",
			expectedCents: 10000,
			expectedError: core.ErrNotFound,
		},
		{
			name:          "sub_cent_delta",
			id:            "acc-1",
			delta:         "0.001",
			expectedCents: 10000,
			expectedError: ErrSubCentAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			suite := NewTestSuite(t)
			suite.SeedAccount(t, "acc-1", "Acme Corp", "FR1420041010050500013M02606", "100")

			err := suite.Accounts.ChangeBalance(context.Background(), tt.id, decimal.RequireFromString(tt.delta))

			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tt.expectedCents, suite.AccountBalanceCents(t, "acc-1"))
		})
	}
}

func TestAccountStore_Search(t *testing.T) {
	t.Parallel()

	suite := NewTestSuite(t)
	suite.SeedAccount(t, "acc-1", "One", "FR7630006000011234567890189", "10")
	suite.SeedAccount(t, "acc-2", "Two", "DE89370400440532013000", "50.50")
	suite.SeedAccount(t, "acc-3", "Three", "DE89370400440532013000", "100")
	suite.SeedAccount(t, "acc-4", "Four", "GB29NWBK60161331926819", "1000")

	tests := []struct {
		name          string
		filter        core.AccountFilter
		expectedCount int
		expectedIDs   []string
	}{
		{
			name:          "no_filter_returns_first_page",
			filter:        core.AccountFilter{},
			expectedCount: 4,
			expectedIDs:   []string{"acc-1", "acc-2", "acc-3", "acc-4"},
		},
		{
			name:          "by_iban",
			filter:        core.AccountFilter{IBAN: "DE89370400440532013000"},
			expectedCount: 2,
			expectedIDs:   []string{"acc-2", "acc-3"},
		},
		{
			name:          "unknown_iban",
			filter:        core.AccountFilter{IBAN: "NL91ABNA0417164300"},
			expectedCount: 0,
			expectedIDs:   []string{},
		},
		{
			name:          "inclusive_balance_range",
			filter:        core.AccountFilter{MinBalance: decimalPtr("10"), MaxBalance: decimalPtr("100")},
			expectedCount: 3,
			expectedIDs:   []string{"acc-1", "acc-2", "acc-3"},
		},
		{
			name:          "fractional_bounds_round_inward",
			filter:        core.AccountFilter{MinBalance: decimalPtr("50.505"), MaxBalance: decimalPtr("100.009")},
			expectedCount: 1,
			expectedIDs:   []string{"acc-3"},
		},
		{
			name:          "second_page",
			filter:        core.AccountFilter{Page: 2, PageSize: 3},
			expectedCount: 4,
			expectedIDs:   []string{"acc-4"},
		},
		{
			name:          "page_past_the_end",
			filter:        core.AccountFilter{Page: 5, PageSize: 3},
			expectedCount: 4,
			expectedIDs:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := suite.Accounts.Search(context.Background(), tt.filter)

			require.NoError(t, err)
			require.Equal(t, tt.expectedCount, page.Count)

			ids := make([]string, 0, len(page.Results))
			for _, a := range page.Results {
				ids = append(ids, a.ID)
			}
			require.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestAccountStore_Insert(t *testing.T) {
	t.Parallel()

	t.Run("bulk_insert_spans_batches", func(t *testing.T) {
		t.Parallel()

		suite := NewTestSuite(t)

		accounts := make([]core.Account, 0, 250)
		for i := range 250 {
			accounts = append(accounts, core.Account{
				ID:   fmt.Sprintf("acc-%03d", i),
				IBAN: fmt.Sprintf("FR76300060000112345678%05d", i),
				Balances: core.Balances{
					Available: core.Money{Value: decimal.NewFromInt(int64(i)), Currency: "EUR"},
				},
				Country: "FR",
				Name:    "Bulk",
			})
		}

		require.NoError(t, suite.Accounts.Insert(context.Background(), accounts))

		page, err := suite.Accounts.Search(context.Background(), core.AccountFilter{})
		require.NoError(t, err)
		require.Equal(t, 250, page.Count)
	})

	t.Run("failing_batch_stores_nothing", func(t *testing.T) {
		t.Parallel()

		suite := NewTestSuite(t)

		accounts := []core.Account{
			{ID: "acc-1", IBAN: "FR1", Balances: core.Balances{Available: core.Money{Value: decimal.NewFromInt(1), Currency: "EUR"}}},
			{ID: "acc-1", IBAN: "FR2", Balances: core.Balances{Available: core.Money{Value: decimal.NewFromInt(2), Currency: "EUR"}}},
		}

		require.Error(t, suite.Accounts.Insert(context.Background(), accounts))

		page, err := suite.Accounts.Search(context.Background(), core.AccountFilter{})
		require.NoError(t, err)
		require.Zero(t, page.Count)
	})

	t.Run("sub_cent_balance_is_rejected", func(t *testing.T) {
		t.Parallel()

		suite := NewTestSuite(t)

		err := suite.Accounts.Insert(context.Background(), []core.Account{
			{ID: "acc-1", Balances: core.Balances{Available: core.Money{Value: decimal.RequireFromString("1.234"), Currency: "EUR"}}},
		})
		require.ErrorIs(t, err, ErrSubCentAmount)
	})

	t.Run("empty_batch_is_noop", func(t *testing.T) {
		t.Parallel()

		suite := NewTestSuite(t)
		require.NoError(t, suite.Accounts.Insert(context.Background(), nil))
	})
}

func TestAccountStore_TransactingRejectsForeignScope(t *testing.T) {
	t.Parallel()

	suite := NewTestSuite(t)

	require.Panics(t, func() {
		suite.Accounts.Transacting("not-a-tx")
	})
}
