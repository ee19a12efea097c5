package core

import (
	"time"

	"github.com/shopspring/decimal"
)

const DefaultPageSize = 10

type Money struct {
	Value    decimal.Decimal `json:"value"`
	Currency string          `json:"currency"`
}

type Balances struct {
	Available Money `json:"available"`
}

type Account struct {
	ID        string    `json:"id"`
	IBAN      string    `json:"IBAN"`
	Balances  Balances  `json:"balances"`
	Country   string    `json:"country"`
	CreatedAt time.Time `json:"createdAt"`
	Name      string    `json:"name"`
}

func (a Account) HasSufficientFunds(amount decimal.Decimal) bool {
	return a.Balances.Available.Value.GreaterThanOrEqual(amount)
}

// Transfer doubles as the draft accepted by CreateTransfer, in which case ID is
// ignored and replaced by a generated one.
type Transfer struct {
	ID            string          `json:"id"`
	SourceAccount string          `json:"sourceAccount"`
	Amount        decimal.Decimal `json:"amount"`
	RecipientName string          `json:"recipientName"`
	TargetIBAN    string          `json:"targetIBAN"`
	TargetBIC     string          `json:"targetBIC"`
	Reference     string          `json:"reference"`
}

// AccountFilter selects accounts by exact IBAN and an inclusive balance range.
// Zero values mean "no constraint"; pages are 1-based.
type AccountFilter struct {
	IBAN       string           `json:"iban,omitempty"`
	MinBalance *decimal.Decimal `json:"minBalance,omitempty"`
	MaxBalance *decimal.Decimal `json:"maxBalance,omitempty"`
	Page       int              `json:"page,omitempty"`
	PageSize   int              `json:"pageSize,omitempty"`
}

func (f AccountFilter) Normalize() AccountFilter {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PageSize <= 0 {
		f.PageSize = DefaultPageSize
	}

	return f
}

func (f AccountFilter) Offset() int {
	n := f.Normalize()
	return (n.Page - 1) * n.PageSize
}

type AccountPage struct {
	Count   int       `json:"count"`
	Results []Account `json:"results"`
}

type SearchResult struct {
	Count        int       `json:"count"`
	Page         int       `json:"page"`
	TotalPages   int       `json:"totalPages"`
	TotalBalance Money     `json:"totalBalance"`
	Results      []Account `json:"results"`
}

// TotalPages is ceil(count / pageSize).
func TotalPages(count, pageSize int) int {
	if pageSize <= 0 || count <= 0 {
		return 0
	}

	return (count + pageSize - 1) / pageSize
}

// SumAvailable adds up the available balances held in currency, skipping
// accounts held in any other currency.
func SumAvailable(accounts []Account, currency string) Money {
	total := decimal.Zero
	for _, a := range accounts {
		if a.Balances.Available.Currency != currency {
			continue
		}
		total = total.Add(a.Balances.Available.Value)
	}

	return Money{Value: total, Currency: currency}
}
