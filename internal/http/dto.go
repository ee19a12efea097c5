package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"transfers/internal/core"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type CreateTransferRequest struct {
	Data TransferInput `json:"data"`
}

type TransferInput struct {
	SourceAccount string      `json:"sourceAccount" validate:"required"`
	Amount        json.Number `json:"amount" validate:"required"`
	RecipientName string      `json:"recipientName" validate:"required"`
	TargetIBAN    string      `json:"targetIBAN" validate:"required"`
	TargetBIC     string      `json:"targetBIC" validate:"required"`
	Reference     string      `json:"reference"`
}

// ParseAmount accepts positive amounts with at most two decimal places.
func ParseAmount(amount json.Number) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(amount.String()))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount format: %w", err)
	}

	if !value.IsPositive() {
		return decimal.Decimal{}, errors.New("amount must be positive")
	}

	if !value.Shift(2).IsInteger() {
		return decimal.Decimal{}, errors.New("amount cannot have more than two decimal places")
	}

	return value, nil
}

func (req CreateTransferRequest) ToDomain() (core.Transfer, error) {
	amount, err := ParseAmount(req.Data.Amount)
	if err != nil {
		return core.Transfer{}, err
	}

	return core.Transfer{
		SourceAccount: req.Data.SourceAccount,
		Amount:        amount,
		RecipientName: req.Data.RecipientName,
		TargetIBAN:    req.Data.TargetIBAN,
		TargetBIC:     req.Data.TargetBIC,
		Reference:     req.Data.Reference,
	}, nil
}

type TransferResponse struct {
	ID            string      `json:"id"`
	SourceAccount string      `json:"sourceAccount"`
	Amount        json.Number `json:"amount"`
	RecipientName string      `json:"recipientName"`
	TargetIBAN    string      `json:"targetIBAN"`
	TargetBIC     string      `json:"targetBIC"`
	Reference     string      `json:"reference"`
}

type TransferEnvelope struct {
	Data TransferResponse `json:"data"`
}

func NewTransferResponse(t core.Transfer) TransferResponse {
	return TransferResponse{
		ID:            t.ID,
		SourceAccount: t.SourceAccount,
		Amount:        json.Number(t.Amount.String()),
		RecipientName: t.RecipientName,
		TargetIBAN:    t.TargetIBAN,
		TargetBIC:     t.TargetBIC,
		Reference:     t.Reference,
	}
}

type MoneyResponse struct {
	Value    json.Number `json:"value"`
	Currency string      `json:"currency"`
}

type AccountResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IBAN     string `json:"IBAN"`
	Country  string `json:"country"`
	Balances struct {
		Available MoneyResponse `json:"available"`
	} `json:"balances"`
	CreatedAt time.Time `json:"createdAt"`
}

type SearchAccountsResponse struct {
	Count        int               `json:"count"`
	Page         int               `json:"page"`
	TotalPages   int               `json:"totalPages"`
	TotalBalance MoneyResponse     `json:"totalBalance"`
	Results      []AccountResponse `json:"results"`
}

func newMoneyResponse(m core.Money) MoneyResponse {
	return MoneyResponse{
		Value:    json.Number(m.Value.String()),
		Currency: m.Currency,
	}
}

func NewSearchAccountsResponse(result core.SearchResult) SearchAccountsResponse {
	results := make([]AccountResponse, 0, len(result.Results))
	for _, a := range result.Results {
		var account AccountResponse
		account.ID = a.ID
		account.Name = a.Name
		account.IBAN = a.IBAN
		account.Country = a.Country
		account.Balances.Available = newMoneyResponse(a.Balances.Available)
		account.CreatedAt = a.CreatedAt

		results = append(results, account)
	}

	return SearchAccountsResponse{
		Count:        result.Count,
		Page:         result.Page,
		TotalPages:   result.TotalPages,
		TotalBalance: newMoneyResponse(result.TotalBalance),
		Results:      results,
	}
}

// ParseAccountFilter reads IBAN, minBalance, maxBalance and page from the
// query string. Absent parameters leave the filter unconstrained; a page below
// 1 is read as the first page.
func ParseAccountFilter(query url.Values) (core.AccountFilter, error) {
	filter := core.AccountFilter{
		IBAN: strings.TrimSpace(query.Get("IBAN")),
		Page: 1,
	}

	for name, target := range map[string]**decimal.Decimal{
		"minBalance": &filter.MinBalance,
		"maxBalance": &filter.MaxBalance,
	} {
		raw := strings.TrimSpace(query.Get(name))
		if raw == "" {
			continue
		}

		value, err := decimal.NewFromString(raw)
		if err != nil {
			return core.AccountFilter{}, fmt.Errorf("invalid %s: %w", name, err)
		}
		*target = &value
	}

	if raw := strings.TrimSpace(query.Get("page")); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return core.AccountFilter{}, fmt.Errorf("invalid page %q", raw)
		}
		filter.Page = max(page, 1)
	}

	if filter.MinBalance != nil && filter.MaxBalance != nil && filter.MinBalance.GreaterThan(*filter.MaxBalance) {
		return core.AccountFilter{}, errors.New("minBalance cannot exceed maxBalance")
	}

	return filter, nil
}
