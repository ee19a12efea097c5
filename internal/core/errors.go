package core

import (
	"errors"
)

var (
	ErrNotFound                 = errors.New("not found")
	ErrInvalidMonetaryCodes     = errors.New("IBAN and BIC are invalid")
	ErrNonPositiveAmount        = errors.New("transfer amount must be positive")
	ErrMultipleAccountsSameIBAN = errors.New("multiple accounts share the same IBAN")
)

type TransferErrorKind int

const (
	KindUnknown TransferErrorKind = iota
	KindMissingSourceAccount
	KindInvalidTargetIBANOrBIC
	KindInsufficientFunds
)

func (k TransferErrorKind) String() string {
	switch k {
	case KindMissingSourceAccount:
		return "MISSING_SOURCE_ACCOUNT"
	case KindInvalidTargetIBANOrBIC:
		return "INVALID_TARGET_IBAN_OR_BIC"
	case KindInsufficientFunds:
		return "INSUFFICIENT_FUNDS"
	default:
		return "UNKNOWN"
	}
}

// TransferError is a business failure of the transfer workflow that the caller
// can correct. Two TransferErrors match under errors.Is when their kinds match.
type TransferError struct {
	Kind    TransferErrorKind
	Message string
	Err     error
}

func (e *TransferError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}

	return e.Message
}

func (e *TransferError) Unwrap() error {
	return e.Err
}

func (e *TransferError) Is(target error) bool {
	t, ok := target.(*TransferError)
	return ok && t.Kind == e.Kind
}

var (
	ErrMissingSourceAccount   = &TransferError{Kind: KindMissingSourceAccount, Message: "source account not found"}
	ErrInvalidTargetIBANOrBIC = &TransferError{Kind: KindInvalidTargetIBANOrBIC, Message: "invalid target IBAN or BIC"}
	ErrInsufficientFunds      = &TransferError{Kind: KindInsufficientFunds, Message: "insufficient funds"}
)

func newTransferError(sentinel *TransferError, cause error) *TransferError {
	return &TransferError{
		Kind:    sentinel.Kind,
		Message: sentinel.Message,
		Err:     cause,
	}
}

// KindOf reports the classified kind carried by err, or KindUnknown.
func KindOf(err error) TransferErrorKind {
	var te *TransferError
	if errors.As(err, &te) {
		return te.Kind
	}

	return KindUnknown
}
