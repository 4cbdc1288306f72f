// Package provider talks to the external market data service that supplies
// daily price bars and descriptive metadata for ticker symbols.
package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Metadata fields read by the application.
const (
	LongNameKey = "longName"
	CurrencyKey = "currency"
)

// Bar is a single daily bar as returned by the provider. Time keeps whatever
// time-of-day and location the provider reported.
type Bar struct {
	Time     time.Time
	Open     decimal.Decimal
	High     decimal.Decimal
	Low      decimal.Decimal
	Close    decimal.Decimal
	AdjClose decimal.Decimal
	Volume   int64
}

// Metadata is the provider supplied description of a symbol.
type Metadata map[string]any

// String returns the value stored under key when it is a non-empty string.
func (m Metadata) String(key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}

// Fetcher is the boundary to the market data provider.
//
// Dates are calendar dates formatted YYYY-MM-DD; end is exclusive.
type Fetcher interface {
	FetchHistory(ctx context.Context, symbol, start, end string) ([]Bar, error)
	FetchInfo(ctx context.Context, symbol string) (Metadata, error)
}

// APIError is returned when the provider answers with an error payload or a
// non-200 status.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("provider error: %s: %s (status: %d, endpoint: %s)", e.Code, e.Message, e.StatusCode, e.Endpoint)
	}
	return fmt.Sprintf("provider error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}
