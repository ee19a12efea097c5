package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"transfers/internal/core"
)

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Transactor struct {
	db *sql.DB
}

func NewTransactor(db *sql.DB) Transactor {
	return Transactor{
		db: db,
	}
}

// Transaction hands work a *sql.Tx as its scope. On sqlite the transaction is
// BEGIN IMMEDIATE (configured via _txlock=immediate in the DSN), which
// serialises writers; on postgres account rows read through a scoped
// repository are locked with SELECT ... FOR UPDATE.
func (t Transactor) Transaction(ctx context.Context, work func(ctx context.Context, scope core.Scope) error) error {
	tx, err := t.db.BeginTx(ctx, &sql.TxOptions{
		Isolation: sql.LevelDefault,
	})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err = work(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return fmt.Errorf("transaction error: %w, rollback error: %w", err, rbErr)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func txFromScope(scope core.Scope) *sql.Tx {
	tx, ok := scope.(*sql.Tx)
	if !ok || tx == nil {
		panic(fmt.Sprintf("database: unsupported transaction scope %T", scope))
	}

	return tx
}
