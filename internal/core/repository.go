package core

import (
	"context"

	"github.com/shopspring/decimal"
)

//go:generate go tool go.uber.org/mock/mockgen -source=repository.go -destination=repository_mock.go -package=core

// Transactable begins a transaction, passes its scope to work, commits when
// work succeeds and rolls back otherwise. The error from work is returned as is.
type Transactable interface {
	Transaction(ctx context.Context, work func(ctx context.Context, scope Scope) error) error
}

type AccountRepository interface {
	Gettable[Account]
	Insertable[Account]
	Search(ctx context.Context, filter AccountFilter) (AccountPage, error)
	// ChangeBalance adds delta to the available balance in a single statement.
	ChangeBalance(ctx context.Context, id string, delta decimal.Decimal) error
	Transacting(scope Scope) AccountRepository
}

type TransferRepository interface {
	Gettable[Transfer]
	Insertable[Transfer]
	Transacting(scope Scope) TransferRepository
}

type MonetaryCodes interface {
	ResolveBankID(iban string) string
	// Validate wraps ErrInvalidMonetaryCodes when bic does not belong to iban.
	Validate(ctx context.Context, iban string, bic string) error
}
