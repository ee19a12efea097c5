package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInTransaction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		workErr       error
		commitErr     error
		expected      string
		expectedError error
	}{
		{
			name:     "returns work result",
			expected: "done",
		},
		{
			name:          "work error wins and result is discarded",
			workErr:       ErrInsufficientFunds,
			expectedError: ErrInsufficientFunds,
		},
		{
			name:          "commit failure discards result",
			commitErr:     errors.New("commit failed"),
			expectedError: errors.New("commit failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			transactor := NewMockTransactable(ctrl)
			transactor.EXPECT().
				Transaction(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, work func(context.Context, Scope) error) error {
					if err := work(ctx, testScope); err != nil {
						return err
					}
					return tt.commitErr
				})

			got, err := InTransaction(context.Background(), transactor, func(ctx context.Context, scope Scope) (string, error) {
				require.Equal(t, Scope(testScope), scope)
				if tt.workErr != nil {
					return "partial", tt.workErr
				}
				return "done", nil
			})

			if tt.expectedError != nil {
				require.EqualError(t, err, tt.expectedError.Error())
				require.Empty(t, got)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.expected, got)
		})
	}
}
