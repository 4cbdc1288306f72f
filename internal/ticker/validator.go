package ticker

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/guttosm/tickerview/internal/logger"
	"github.com/guttosm/tickerview/internal/provider"
)

// Validator answers whether a symbol resolves to a real instrument.
// It never caches: every call asks the provider.
type Validator struct {
	fetcher provider.Fetcher
	log     zerolog.Logger
}

// NewValidator builds a Validator on top of fetcher.
func NewValidator(fetcher provider.Fetcher) *Validator {
	return &Validator{fetcher: fetcher, log: logger.Component("ticker")}
}

// IsValid reports whether the provider returns non-empty metadata for symbol.
// Provider failures are logged and reported as false, never returned.
func (v *Validator) IsValid(ctx context.Context, symbol string) bool {
	if strings.TrimSpace(symbol) == "" {
		v.log.Warn().Msg("invalid ticker: empty symbol")
		return false
	}
	info, err := v.fetcher.FetchInfo(ctx, symbol)
	if err != nil {
		v.log.Warn().Err(err).Str("ticker", symbol).Msg("invalid ticker")
		return false
	}
	if len(info) == 0 {
		v.log.Warn().Str("ticker", symbol).Msg("invalid ticker: empty metadata")
		return false
	}
	return true
}
