package ticker

import (
	"errors"
	"fmt"
)

// Kind classifies why a Record could not be constructed.
type Kind int

const (
	// InvalidDateRange means the start of the window is not before its end.
	InvalidDateRange Kind = iota + 1
	// UnknownSymbol means the symbol is empty or the provider does not know it.
	UnknownSymbol
)

func (k Kind) String() string {
	switch k {
	case InvalidDateRange:
		return "InvalidDateRange"
	case UnknownSymbol:
		return "UnknownSymbol"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

var (
	ErrInvalidDateRange = errors.New("start date should be before end date")
	ErrUnknownSymbol    = errors.New("unknown ticker symbol")
)

// ValidationError is returned by New when a record cannot be built.
type ValidationError struct {
	Kind   Kind
	Symbol string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Symbol == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
	}
	return fmt.Sprintf("%s: %s (ticker %q)", e.Kind, e.Reason, e.Symbol)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *ValidationError) Unwrap() error {
	switch e.Kind {
	case InvalidDateRange:
		return ErrInvalidDateRange
	case UnknownSymbol:
		return ErrUnknownSymbol
	default:
		return nil
	}
}

// IsValidationError reports whether err is a construction failure of the given kind.
func IsValidationError(err error, kind Kind) bool {
	var ve *ValidationError
	return errors.As(err, &ve) && ve.Kind == kind
}
