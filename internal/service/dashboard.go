package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/guttosm/tickerview/internal/domain/models"
	"github.com/guttosm/tickerview/internal/logger"
	"github.com/guttosm/tickerview/internal/provider"
	"github.com/guttosm/tickerview/internal/ticker"
)

// ErrInvalidTicker is returned by AddTicker when the provider does not know the symbol.
var ErrInvalidTicker = errors.New("invalid ticker")

// TickerValidator reports whether a symbol resolves to a real instrument.
type TickerValidator interface {
	IsValid(ctx context.Context, symbol string) bool
}

// RecordFactory builds a validated ticker record.
type RecordFactory func(ctx context.Context, symbol string, opts ...ticker.Option) (*ticker.Record, error)

// RecordsFrom returns a RecordFactory backed by fetcher.
func RecordsFrom(fetcher provider.Fetcher) RecordFactory {
	return func(ctx context.Context, symbol string, opts ...ticker.Option) (*ticker.Record, error) {
		return ticker.New(ctx, fetcher, symbol, opts...)
	}
}

// SkippedTicker is a selected symbol that could not be plotted.
type SkippedTicker struct {
	Symbol string
	Reason string
}

// DashboardService is the controller behind the dashboard page.
//
// It owns the set of selectable tickers and turns a user selection into one
// named series per ticker.
type DashboardService interface {
	Options() []string
	AddTicker(ctx context.Context, symbol string) ([]string, error)
	Series(ctx context.Context, sel ticker.Selection, start, end *time.Time) ([]models.NamedSeries, []SkippedTicker)
}

type dashboardService struct {
	validator   TickerValidator
	newRecord   RecordFactory
	parallel    int
	historyDays int
	now         func() time.Time
	log         zerolog.Logger

	mu      sync.RWMutex
	options []string
}

// Option configures the dashboard service.
type Option func(*dashboardService)

// WithParallelism bounds how many tickers are fetched at once.
func WithParallelism(n int) Option {
	return func(s *dashboardService) {
		if n > 0 {
			s.parallel = n
		}
	}
}

// WithHistoryDays sets the window used when a request has no start date.
func WithHistoryDays(days int) Option {
	return func(s *dashboardService) { s.historyDays = days }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *dashboardService) { s.now = now }
}

// NewDashboardService wires the controller with its validator, record factory
// and the initial selectable tickers.
func NewDashboardService(v TickerValidator, newRecord RecordFactory, initial []string, opts ...Option) DashboardService {
	s := &dashboardService{
		validator: v,
		newRecord: newRecord,
		parallel:  4,
		now:       time.Now,
		log:       logger.Component("dashboard"),
		options:   ticker.Multi(initial).Symbols(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Options returns a copy of the selectable tickers in insertion order.
func (s *dashboardService) Options() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.options)
}

func (s *dashboardService) has(sym string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.options, sym)
}

// AddTicker appends symbol to the selectable set once it has been validated.
//
// Blank input is a no-op. A symbol already in the set is never duplicated and
// costs no provider call. An unknown symbol leaves the set unchanged and
// returns ErrInvalidTicker.
func (s *dashboardService) AddTicker(ctx context.Context, symbol string) ([]string, error) {
	sym := ticker.Normalize(symbol)
	if sym == "" || s.has(sym) {
		return s.Options(), nil
	}

	if !s.validator.IsValid(ctx, sym) {
		s.log.Warn().Str("ticker", sym).Msg("rejected new ticker")
		return s.Options(), fmt.Errorf("%w: %q", ErrInvalidTicker, sym)
	}

	s.mu.Lock()
	if !slices.Contains(s.options, sym) {
		s.options = append(s.options, sym)
		s.log.Info().Str("ticker", sym).Int("options", len(s.options)).Msg("ticker added")
	}
	out := slices.Clone(s.options)
	s.mu.Unlock()

	return out, nil
}

// Series builds one named series per selected ticker, in selection order.
//
// Tickers are fetched concurrently. A ticker that fails validation is
// reported in the skipped list instead of failing the whole request.
func (s *dashboardService) Series(ctx context.Context, sel ticker.Selection, start, end *time.Time) ([]models.NamedSeries, []SkippedTicker) {
	symbols := sel.Symbols()
	opts := s.rangeOptions(start, end)

	type result struct {
		series  models.NamedSeries
		skipped *SkippedTicker
	}
	results := make([]result, len(symbols))

	var g errgroup.Group
	g.SetLimit(s.parallel)
	for i, sym := range symbols {
		g.Go(func() error {
			rec, err := s.newRecord(ctx, sym, opts...)
			if err != nil {
				s.log.Warn().Err(err).Str("ticker", sym).Msg("skipping ticker")
				results[i].skipped = &SkippedTicker{Symbol: sym, Reason: err.Error()}
				return nil
			}
			results[i].series = rec.Series(ctx)
			return nil
		})
	}
	_ = g.Wait()

	series := make([]models.NamedSeries, 0, len(symbols))
	var skipped []SkippedTicker
	for _, r := range results {
		if r.skipped != nil {
			skipped = append(skipped, *r.skipped)
			continue
		}
		series = append(series, r.series)
	}
	return series, skipped
}

// rangeOptions turns optional request bounds into record options. Without a
// start date the window is historyDays long, ending at end (or now).
func (s *dashboardService) rangeOptions(start, end *time.Time) []ticker.Option {
	if start == nil && s.historyDays > 0 {
		anchor := s.now()
		if end != nil {
			anchor = *end
		}
		from := anchor.AddDate(0, 0, -s.historyDays)
		start = &from
	}
	return []ticker.Option{ticker.WithRange(start, end)}
}
