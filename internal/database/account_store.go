package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"transfers/internal/core"
)

// sqlite limits a statement to 999 parameters; 7 per account keeps a batch of
// 100 well below it.
const batchSize = 100

const accountColumns = "id, iban, balance_cents, currency, country, created_at, name"

type AccountStore struct {
	db      *sql.DB
	tx      *sql.Tx
	dialect Dialect
}

func NewAccountStore(db *sql.DB, dialect Dialect) AccountStore {
	return AccountStore{
		db:      db,
		dialect: dialect,
	}
}

func (s AccountStore) Transacting(scope core.Scope) core.AccountRepository {
	return AccountStore{
		db:      s.db,
		tx:      txFromScope(scope),
		dialect: s.dialect,
	}
}

func (s AccountStore) conn() querier {
	if s.tx != nil {
		return s.tx
	}
	return s.db
}

// Get locks the row until the end of the transaction when called through a
// transaction scope.
func (s AccountStore) Get(ctx context.Context, id string) (core.Account, error) {
	query := "SELECT " + accountColumns + " FROM accounts WHERE id = ?"
	if s.tx != nil {
		query += s.dialect.lockSuffix
	}

	account, err := scanAccount(s.conn().QueryRowContext(ctx, s.dialect.Rebind(query), id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Account{}, fmt.Errorf("account %s: %w", id, core.ErrNotFound)
		}

		return core.Account{}, fmt.Errorf("failed to get account: %w", err)
	}

	return account, nil
}

func (s AccountStore) Search(ctx context.Context, filter core.AccountFilter) (core.AccountPage, error) {
	filter = filter.Normalize()

	var (
		conditions []string
		args       []any
	)
	if filter.IBAN != "" {
		conditions = append(conditions, "iban = ?")
		args = append(args, filter.IBAN)
	}
	if filter.MinBalance != nil {
		conditions = append(conditions, "balance_cents >= ?")
		args = append(args, lowerBoundCents(*filter.MinBalance))
	}
	if filter.MaxBalance != nil {
		conditions = append(conditions, "balance_cents <= ?")
		args = append(args, upperBoundCents(*filter.MaxBalance))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var count int
	countQuery := s.dialect.Rebind("SELECT COUNT(*) FROM accounts" + where)
	if err := s.conn().QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return core.AccountPage{}, fmt.Errorf("failed to count accounts: %w", err)
	}

	if count == 0 || filter.Offset() >= count {
		return core.AccountPage{Count: count, Results: []core.Account{}}, nil
	}

	pageQuery := s.dialect.Rebind("SELECT " + accountColumns + " FROM accounts" + where + " ORDER BY id LIMIT ? OFFSET ?")
	pageArgs := append(append([]any{}, args...), filter.PageSize, filter.Offset())

	rows, err := s.conn().QueryContext(ctx, pageQuery, pageArgs...)
	if err != nil {
		return core.AccountPage{}, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	results := make([]core.Account, 0, filter.PageSize)
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return core.AccountPage{}, fmt.Errorf("failed to scan account: %w", err)
		}
		results = append(results, account)
	}
	if err = rows.Err(); err != nil {
		return core.AccountPage{}, fmt.Errorf("failed to iterate accounts: %w", err)
	}

	return core.AccountPage{
		Count:   count,
		Results: results,
	}, nil
}

func (s AccountStore) ChangeBalance(ctx context.Context, id string, delta decimal.Decimal) error {
	cents, err := toCents(delta)
	if err != nil {
		return fmt.Errorf("invalid balance change: %w", err)
	}

	query := s.dialect.Rebind(`
		UPDATE accounts
		SET balance_cents = balance_cents + ?
		WHERE id = ?
	`)

	result, err := s.conn().ExecContext(ctx, query, cents, id)
	if err != nil {
		return fmt.Errorf("failed to execute update: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("account %s: %w", id, core.ErrNotFound)
	}

	return nil
}

// Insert outside of a transaction scope opens its own transaction so that a
// batch is stored entirely or not at all.
func (s AccountStore) Insert(ctx context.Context, accounts []core.Account) error {
	if len(accounts) == 0 {
		return nil
	}

	if s.tx == nil {
		return NewTransactor(s.db).Transaction(ctx, func(ctx context.Context, scope core.Scope) error {
			return s.Transacting(scope).Insert(ctx, accounts)
		})
	}

	for i := 0; i < len(accounts); i += batchSize {
		end := min(i+batchSize, len(accounts))
		if err := s.insert(ctx, accounts[i:end]); err != nil {
			return err
		}
	}

	return nil
}

func (s AccountStore) insert(ctx context.Context, accounts []core.Account) error {
	valuePlaceholder := "(?, ?, ?, ?, ?, ?, ?)"

	query := "INSERT INTO accounts (" + accountColumns + ") VALUES " + valuePlaceholder
	for i := 1; i < len(accounts); i++ {
		query += ", " + valuePlaceholder
	}

	args := make([]any, 0, len(accounts)*7)
	for _, account := range accounts {
		cents, err := toCents(account.Balances.Available.Value)
		if err != nil {
			return fmt.Errorf("account %s: %w", account.ID, err)
		}

		args = append(args,
			account.ID,
			account.IBAN,
			cents,
			account.Balances.Available.Currency,
			account.Country,
			account.CreatedAt.UTC(),
			account.Name,
		)
	}

	if _, err := s.tx.ExecContext(ctx, s.dialect.Rebind(query), args...); err != nil {
		return fmt.Errorf("failed to bulk insert accounts: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (core.Account, error) {
	var (
		account core.Account
		cents   int64
	)
	err := row.Scan(
		&account.ID,
		&account.IBAN,
		&cents,
		&account.Balances.Available.Currency,
		&account.Country,
		&account.CreatedAt,
		&account.Name,
	)
	if err != nil {
		return core.Account{}, err
	}

	account.Balances.Available.Value = fromCents(cents)
	account.CreatedAt = account.CreatedAt.UTC()

	return account, nil
}
