// Package monetary resolves and checks bank identifiers for account numbers.
// The checks are naive: a BIC is accepted for an IBAN when the
// IBAN contains it.
package monetary

import (
	"context"
	"fmt"
	"strings"

	"transfers/internal/core"
)

const bankIDLength = 4

type Service struct{}

func NewService() Service {
	return Service{}
}

func (Service) ResolveBankID(iban string) string {
	iban = normalize(iban)
	if len(iban) < bankIDLength {
		return iban
	}

	return iban[:bankIDLength]
}

// Validate is an exact, case-sensitive substring check.
func (Service) Validate(_ context.Context, iban string, bic string) error {
	if iban == "" || bic == "" {
		return fmt.Errorf("empty IBAN or BIC: %w", core.ErrInvalidMonetaryCodes)
	}

	if !strings.Contains(iban, bic) {
		return fmt.Errorf("BIC %s does not belong to IBAN %s: %w", bic, iban, core.ErrInvalidMonetaryCodes)
	}

	return nil
}

func normalize(code string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(code), " ", ""))
}
