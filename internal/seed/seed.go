// Package seed reads account fixtures in the {"data": [...]} file format.
package seed

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"transfers/internal/core"
)

var ErrInvalidSeed = errors.New("invalid seed file")

var validate = validator.New(validator.WithRequiredStructEnabled())

type File struct {
	Data []Account `json:"data" validate:"dive"`
}

type Account struct {
	ID       string `json:"id" validate:"required"`
	IBAN     string `json:"IBAN" validate:"required"`
	Balances struct {
		Available struct {
			Value    decimal.Decimal `json:"value"`
			Currency string          `json:"currency" validate:"required,len=3,uppercase"`
		} `json:"available"`
	} `json:"balances"`
	Country   string    `json:"country" validate:"required"`
	CreatedAt time.Time `json:"createdAt" validate:"required"`
	Name      string    `json:"name" validate:"required"`
}

func (a Account) ToDomain() core.Account {
	return core.Account{
		ID:   a.ID,
		IBAN: a.IBAN,
		Balances: core.Balances{
			Available: core.Money{
				Value:    a.Balances.Available.Value,
				Currency: a.Balances.Available.Currency,
			},
		},
		Country:   a.Country,
		CreatedAt: a.CreatedAt.UTC(),
		Name:      a.Name,
	}
}

func Decode(r io.Reader) ([]core.Account, error) {
	var file File
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSeed, err)
	}

	if err := validate.Struct(file); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSeed, err)
	}

	accounts := make([]core.Account, 0, len(file.Data))
	for _, a := range file.Data {
		accounts = append(accounts, a.ToDomain())
	}

	return accounts, nil
}
