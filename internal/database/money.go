package database

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Amounts are stored as integer cents so that balance updates can be done by
// the database in a single exact statement.
const centsExponent = 2

var (
	ErrSubCentAmount = errors.New("amount has more than two decimal places")
	ErrAmountRange   = errors.New("amount out of storable range")

	maxCents = decimal.NewFromInt(math.MaxInt64)
	minCents = decimal.NewFromInt(math.MinInt64)
)

func toCents(amount decimal.Decimal) (int64, error) {
	shifted := amount.Shift(centsExponent)
	if !shifted.IsInteger() {
		return 0, fmt.Errorf("%s: %w", amount, ErrSubCentAmount)
	}
	if shifted.GreaterThan(maxCents) || shifted.LessThan(minCents) {
		return 0, fmt.Errorf("%s: %w", amount, ErrAmountRange)
	}

	return shifted.IntPart(), nil
}

func fromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -centsExponent)
}

// Range bounds round inward so that an inclusive filter on cents selects the
// same accounts as the exact decimal filter would.
func lowerBoundCents(amount decimal.Decimal) int64 {
	return amount.Shift(centsExponent).Ceil().IntPart()
}

func upperBoundCents(amount decimal.Decimal) int64 {
	return amount.Shift(centsExponent).Floor().IntPart()
}
