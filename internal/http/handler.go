package http

import (
	"context"

	"transfers/internal/core"
)

//go:generate go tool go.uber.org/mock/mockgen -source=handler.go -destination=service_mock.go -package=http

type TransferCreator interface {
	CreateTransfer(ctx context.Context, draft core.Transfer) (core.Transfer, error)
}

type TransferGetter interface {
	GetTransfer(ctx context.Context, id string) (core.Transfer, error)
}

type AccountSearcher interface {
	SearchAccounts(ctx context.Context, filter core.AccountFilter) (core.SearchResult, error)
}

// AccountSearcherFunc lets a plain function, such as a cached search, serve
// as an AccountSearcher.
type AccountSearcherFunc func(ctx context.Context, filter core.AccountFilter) (core.SearchResult, error)

func (f AccountSearcherFunc) SearchAccounts(ctx context.Context, filter core.AccountFilter) (core.SearchResult, error) {
	return f(ctx, filter)
}

type Handler struct {
	transferCreator TransferCreator
	transferGetter  TransferGetter
	accountSearcher AccountSearcher
	logger          Logger
}

func NewHandler(
	transferCreator TransferCreator,
	transferGetter TransferGetter,
	accountSearcher AccountSearcher,
	logger Logger,
) Handler {
	return Handler{
		transferCreator: transferCreator,
		transferGetter:  transferGetter,
		accountSearcher: accountSearcher,
		logger:          logger,
	}
}
