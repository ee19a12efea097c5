package core

import (
	"context"
)

// Scope is an open transaction handle. Its concrete type belongs to the store
// adapter that issued it; repositories of another adapter must not receive it.
type Scope any

type Gettable[T any] interface {
	// Get returns ErrNotFound when no entity has the given id.
	Get(ctx context.Context, id string) (T, error)
}

type Insertable[T any] interface {
	// Insert stores the whole batch or nothing.
	Insert(ctx context.Context, entities []T) error
}

// InTransaction runs work inside t.Transaction and hands back its result. The
// transaction commits only when work returns a nil error.
func InTransaction[R any](ctx context.Context, t Transactable, work func(ctx context.Context, scope Scope) (R, error)) (R, error) {
	var result R
	err := t.Transaction(ctx, func(ctx context.Context, scope Scope) error {
		r, err := work(ctx, scope)
		if err != nil {
			return err
		}

		result = r
		return nil
	})
	if err != nil {
		var zero R
		return zero, err
	}

	return result, nil
}
