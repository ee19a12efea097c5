package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"transfers/internal/core"
)

const transferColumns = "id, source_account_id, amount_cents, recipient_name, target_iban, target_bic, reference"

type TransferStore struct {
	db      *sql.DB
	tx      *sql.Tx
	dialect Dialect
}

func NewTransferStore(db *sql.DB, dialect Dialect) TransferStore {
	return TransferStore{
		db:      db,
		dialect: dialect,
	}
}

func (s TransferStore) Transacting(scope core.Scope) core.TransferRepository {
	return TransferStore{
		db:      s.db,
		tx:      txFromScope(scope),
		dialect: s.dialect,
	}
}

func (s TransferStore) conn() querier {
	if s.tx != nil {
		return s.tx
	}
	return s.db
}

func (s TransferStore) Get(ctx context.Context, id string) (core.Transfer, error) {
	query := s.dialect.Rebind("SELECT " + transferColumns + " FROM transfers WHERE id = ?")

	var (
		transfer core.Transfer
		cents    int64
	)
	err := s.conn().QueryRowContext(ctx, query, id).Scan(
		&transfer.ID,
		&transfer.SourceAccount,
		&cents,
		&transfer.RecipientName,
		&transfer.TargetIBAN,
		&transfer.TargetBIC,
		&transfer.Reference,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Transfer{}, fmt.Errorf("transfer %s: %w", id, core.ErrNotFound)
		}

		return core.Transfer{}, fmt.Errorf("failed to get transfer: %w", err)
	}

	transfer.Amount = fromCents(cents)

	return transfer, nil
}

func (s TransferStore) Insert(ctx context.Context, transfers []core.Transfer) error {
	if len(transfers) == 0 {
		return nil
	}

	if s.tx == nil {
		return NewTransactor(s.db).Transaction(ctx, func(ctx context.Context, scope core.Scope) error {
			return s.Transacting(scope).Insert(ctx, transfers)
		})
	}

	for i := 0; i < len(transfers); i += batchSize {
		end := min(i+batchSize, len(transfers))
		if err := s.insert(ctx, transfers[i:end]); err != nil {
			return err
		}
	}

	return nil
}

func (s TransferStore) insert(ctx context.Context, transfers []core.Transfer) error {
	valuePlaceholder := "(?, ?, ?, ?, ?, ?, ?)"

	query := "INSERT INTO transfers (" + transferColumns + ") VALUES " + valuePlaceholder
	for i := 1; i < len(transfers); i++ {
		query += ", " + valuePlaceholder
	}

	args := make([]any, 0, len(transfers)*7)
	for _, transfer := range transfers {
		if transfer.SourceAccount == "" {
			return fmt.Errorf("transfer %s missing source account", transfer.ID)
		}

		cents, err := toCents(transfer.Amount)
		if err != nil {
			return fmt.Errorf("transfer %s: %w", transfer.ID, err)
		}

		args = append(args,
			transfer.ID,
			transfer.SourceAccount,
			cents,
			transfer.RecipientName,
			transfer.TargetIBAN,
			transfer.TargetBIC,
			transfer.Reference,
		)
	}

	if _, err := s.tx.ExecContext(ctx, s.dialect.Rebind(query), args...); err != nil {
		return fmt.Errorf("failed to bulk insert transfers: %w", err)
	}

	return nil
}
