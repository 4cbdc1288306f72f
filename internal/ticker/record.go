// Package ticker holds the validated, lazily loaded view of one ticker's
// price history and metadata.
package ticker

import (
	"context"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/guttosm/tickerview/internal/domain/models"
	"github.com/guttosm/tickerview/internal/logger"
	"github.com/guttosm/tickerview/internal/provider"
)

// DefaultWindow is the history length used when no start date is given.
const DefaultWindow = 365 * 24 * time.Hour

// Record is a validated ticker over a fixed date window.
//
// Identity fields never change after New returns. Price series, metadata and
// display name are fetched on first access and cached for the life of the
// record.
type Record struct {
	symbol string
	start  time.Time
	end    time.Time

	fetcher provider.Fetcher
	log     zerolog.Logger

	series memo[[]models.PriceRow]
	meta   memo[provider.Metadata]
	name   memo[string]
}

type options struct {
	start *time.Time
	end   *time.Time
	now   func() time.Time
}

// Option customises New.
type Option func(*options)

// WithStart sets the first day of the window.
func WithStart(t time.Time) Option {
	return func(o *options) { o.start = &t }
}

// WithEnd sets the end of the window.
func WithEnd(t time.Time) Option {
	return func(o *options) { o.end = &t }
}

// WithRange sets both bounds. A nil bound keeps its default.
func WithRange(start, end *time.Time) Option {
	return func(o *options) {
		if start != nil {
			o.start = start
		}
		if end != nil {
			o.end = end
		}
	}
}

// WithClock replaces time.Now when computing default bounds.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// New validates symbol against the provider and the date window, and returns
// a record whose derived fields are still unevaluated.
//
// Missing bounds default to end = now and start = now - DefaultWindow, each
// read from the clock on its own.
//
// Errors:
//   - *ValidationError{Kind: UnknownSymbol} when symbol is empty or unknown.
//   - *ValidationError{Kind: InvalidDateRange} when start is not before end.
func New(ctx context.Context, fetcher provider.Fetcher, symbol string, opts ...Option) (*Record, error) {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	var end, start time.Time
	if o.end != nil {
		end = *o.end
	} else {
		end = o.now()
	}
	if o.start != nil {
		start = *o.start
	} else {
		start = o.now().Add(-DefaultWindow)
	}

	if strings.TrimSpace(symbol) == "" {
		return nil, &ValidationError{Kind: UnknownSymbol, Reason: "ticker cannot be empty"}
	}
	if !NewValidator(fetcher).IsValid(ctx, symbol) {
		return nil, &ValidationError{Kind: UnknownSymbol, Symbol: symbol, Reason: "could not find ticker on the market data provider"}
	}
	if !start.Before(end) {
		return nil, &ValidationError{
			Kind:   InvalidDateRange,
			Symbol: symbol,
			Reason: "start " + start.Format(models.DateLayout) + " is not before end " + end.Format(models.DateLayout),
		}
	}

	return &Record{
		symbol:  symbol,
		start:   start,
		end:     end,
		fetcher: fetcher,
		log:     logger.Component("ticker").With().Str("ticker", symbol).Logger(),
	}, nil
}

// Symbol returns the ticker symbol.
func (r *Record) Symbol() string { return r.symbol }

// Start returns the first instant of the window.
func (r *Record) Start() time.Time { return r.start }

// End returns the end of the window.
func (r *Record) End() time.Time { return r.end }

// PriceSeries returns the daily rows of the window, ordered by date.
//
// The first call fetches once from the provider; later calls reuse that
// result. A failed or empty fetch yields an empty series.
func (r *Record) PriceSeries(ctx context.Context) []models.PriceRow {
	rows := r.series.get(func() []models.PriceRow {
		return r.loadSeries(ctx)
	})
	return slices.Clone(rows)
}

func (r *Record) loadSeries(ctx context.Context) []models.PriceRow {
	start := r.start.Format(models.DateLayout)
	end := r.end.Format(models.DateLayout)

	bars, err := r.fetcher.FetchHistory(ctx, r.symbol, start, end)
	if err != nil {
		r.log.Warn().Err(err).Str("start", start).Str("end", end).Msg("price history unavailable")
		return []models.PriceRow{}
	}
	if len(bars) == 0 {
		r.log.Warn().Str("start", start).Str("end", end).Msg("price history empty")
		return []models.PriceRow{}
	}

	rows := make([]models.PriceRow, 0, len(bars))
	for _, b := range bars {
		rows = append(rows, models.PriceRow{
			Date:     models.TruncateToDate(b.Time),
			Open:     b.Open,
			High:     b.High,
			Low:      b.Low,
			Close:    b.Close,
			AdjClose: b.AdjClose,
			Volume:   b.Volume,
		})
	}
	slices.SortStableFunc(rows, func(a, b models.PriceRow) int { return a.Date.Compare(b.Date) })

	r.log.Debug().Int("rows", len(rows)).Msg("price history loaded")
	return rows
}

// Metadata returns the provider description of the symbol, fetched once.
// A failed fetch yields an empty mapping.
func (r *Record) Metadata(ctx context.Context) provider.Metadata {
	meta := r.meta.get(func() provider.Metadata {
		info, err := r.fetcher.FetchInfo(ctx, r.symbol)
		if err != nil {
			r.log.Warn().Err(err).Msg("metadata unavailable")
			return provider.Metadata{}
		}
		if info == nil {
			return provider.Metadata{}
		}
		return info
	})
	return maps.Clone(meta)
}

// DisplayName returns the long name from the metadata, or "" when the
// provider has none.
func (r *Record) DisplayName(ctx context.Context) string {
	return r.name.get(func() string {
		return r.Metadata(ctx).String(provider.LongNameKey)
	})
}

// Series bundles symbol, display name, quote currency and price rows for
// plotting.
func (r *Record) Series(ctx context.Context) models.NamedSeries {
	return models.NamedSeries{
		Symbol:   r.symbol,
		Name:     r.DisplayName(ctx),
		Currency: r.Metadata(ctx).String(provider.CurrencyKey),
		Rows:     r.PriceSeries(ctx),
	}
}
