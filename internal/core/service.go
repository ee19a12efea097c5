package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type Config struct {
	Currency string `envconfig:"BALANCE_CURRENCY" default:"EUR"`
	PageSize int    `envconfig:"PAGE_SIZE" default:"10"`
}

type Service struct {
	accountRepository  AccountRepository
	transferRepository TransferRepository
	transactor         Transactable
	monetaryCodes      MonetaryCodes
	logger             Logger
	config             Config
	newID              func() string
}

func NewService(
	accountRepo AccountRepository,
	transferRepo TransferRepository,
	transactor Transactable,
	monetaryCodes MonetaryCodes,
	logger Logger,
	config Config,
) Service {
	if config.PageSize <= 0 {
		config.PageSize = DefaultPageSize
	}

	return Service{
		accountRepository:  accountRepo,
		transferRepository: transferRepo,
		transactor:         transactor,
		monetaryCodes:      monetaryCodes,
		logger:             logger,
		config:             config,
		newID:              uuid.NewString,
	}
}

// CreateTransfer debits the source account, records the transfer and credits
// the target account when exactly one account holds the target IBAN. A target
// unknown to this system is debited without a matching credit. Every step runs
// in one transaction.
func (s Service) CreateTransfer(ctx context.Context, draft Transfer) (Transfer, error) {
	if !draft.Amount.IsPositive() {
		return Transfer{}, ErrNonPositiveAmount
	}

	transfer, err := InTransaction(ctx, s.transactor, func(ctx context.Context, scope Scope) (Transfer, error) {
		accounts := s.accountRepository.Transacting(scope)
		transfers := s.transferRepository.Transacting(scope)

		if err := s.monetaryCodes.Validate(ctx, draft.TargetIBAN, draft.TargetBIC); err != nil {
			if errors.Is(err, ErrInvalidMonetaryCodes) {
				return Transfer{}, newTransferError(ErrInvalidTargetIBANOrBIC, err)
			}
			return Transfer{}, fmt.Errorf("failed to validate target codes: %w", err)
		}

		source, err := accounts.Get(ctx, draft.SourceAccount)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return Transfer{}, newTransferError(ErrMissingSourceAccount, err)
			}
			return Transfer{}, fmt.Errorf("failed to load source account: %w", err)
		}

		if !source.HasSufficientFunds(draft.Amount) {
			return Transfer{}, ErrInsufficientFunds
		}

		targets, err := accounts.Search(ctx, AccountFilter{IBAN: draft.TargetIBAN})
		if err != nil {
			return Transfer{}, fmt.Errorf("failed to resolve target account: %w", err)
		}
		if targets.Count > 1 {
			s.logger.ErrorContext(ctx, "Target IBAN matches more than one account",
				"iban", draft.TargetIBAN,
				"matches", targets.Count,
			)
			return Transfer{}, fmt.Errorf("target IBAN %s: %w", draft.TargetIBAN, ErrMultipleAccountsSameIBAN)
		}

		transfer := draft
		transfer.ID = s.newID()

		if err = accounts.ChangeBalance(ctx, source.ID, transfer.Amount.Neg()); err != nil {
			return Transfer{}, fmt.Errorf("failed to debit source account: %w", err)
		}

		if err = transfers.Insert(ctx, []Transfer{transfer}); err != nil {
			return Transfer{}, fmt.Errorf("failed to record transfer: %w", err)
		}

		if targets.Count == 1 && len(targets.Results) == 1 {
			if err = accounts.ChangeBalance(ctx, targets.Results[0].ID, transfer.Amount); err != nil {
				return Transfer{}, fmt.Errorf("failed to credit target account: %w", err)
			}
		}

		return transfer, nil
	})
	if err != nil {
		return Transfer{}, err
	}

	s.logger.InfoContext(ctx, "Transfer created",
		"transfer_id", transfer.ID,
		"source_account", transfer.SourceAccount,
		"amount", transfer.Amount.String(),
	)

	return transfer, nil
}

func (s Service) GetTransfer(ctx context.Context, id string) (Transfer, error) {
	return s.transferRepository.Get(ctx, id)
}

func (s Service) SearchAccounts(ctx context.Context, filter AccountFilter) (SearchResult, error) {
	if filter.PageSize <= 0 {
		filter.PageSize = s.config.PageSize
	}
	filter = filter.Normalize()

	page, err := s.accountRepository.Search(ctx, filter)
	if err != nil {
		return SearchResult{}, fmt.Errorf("failed to search accounts: %w", err)
	}

	results := page.Results
	if results == nil {
		results = []Account{}
	}

	return SearchResult{
		Count:        page.Count,
		Page:         filter.Page,
		TotalPages:   TotalPages(page.Count, filter.PageSize),
		TotalBalance: SumAvailable(results, s.config.Currency),
		Results:      results,
	}, nil
}

func (s Service) SeedAccounts(ctx context.Context, accounts []Account) error {
	if len(accounts) == 0 {
		return nil
	}

	if err := s.accountRepository.Insert(ctx, accounts); err != nil {
		return fmt.Errorf("failed to seed accounts: %w", err)
	}

	s.logger.InfoContext(ctx, "Accounts seeded", "count", len(accounts))
	return nil
}
