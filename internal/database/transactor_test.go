package database

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"transfers/internal/core"
)

func TestTransactor_Transaction(t *testing.T) {
	t.Parallel()

	errWork := errors.New("work failed")

	tests := []struct {
		name          string
		work          func(ctx context.Context, accounts core.AccountRepository) error
		expectedError error
		expectedCents int64
	}{
		{
			name: "commits_on_success",
			work: func(ctx context.Context, accounts core.AccountRepository) error {
				return accounts.ChangeBalance(ctx, "acc-1", decimal.NewFromInt(-25))
			},
			expectedCents: 7500,
		},
		{
			name: "rolls_back_on_error",
			work: func(ctx context.Context, accounts core.AccountRepository) error {
				if err := accounts.ChangeBalance(ctx, "acc-1", decimal.NewFromInt(-25)); err != nil {
					return err
				}
				return errWork
			},
			expectedError: errWork,
			expectedCents: 10000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			suite := NewTestSuite(t)
			suite.SeedAccount(t, "acc-1", "Acme Corp", "FR1420041010050500013M02606", "100")

			err := NewTransactor(suite.DB).Transaction(context.Background(), func(ctx context.Context, scope core.Scope) error {
				return tt.work(ctx, suite.Accounts.Transacting(scope))
			})

			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tt.expectedCents, suite.AccountBalanceCents(t, "acc-1"))
		})
	}
}

func TestTransactor_RollsBackOnPanic(t *testing.T) {
	t.Parallel()

	suite := NewTestSuite(t)
	suite.SeedAccount(t, "acc-1", "Acme Corp", "FR1420041010050500013M02606", "100")

	require.PanicsWithValue(t, "boom", func() {
		_ = NewTransactor(suite.DB).Transaction(context.Background(), func(ctx context.Context, scope core.Scope) error {
			require.NoError(t, suite.Accounts.Transacting(scope).ChangeBalance(ctx, "acc-1", decimal.NewFromInt(-25)))
			panic("boom")
		})
	})

	require.Equal(t, int64(10000), suite.AccountBalanceCents(t, "acc-1"))
}
