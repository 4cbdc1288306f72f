package api

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/guttosm/tickerview/internal/domain/models"
	"github.com/guttosm/tickerview/internal/service"
	"github.com/guttosm/tickerview/internal/ticker"
)

// mockDashboard implements service.DashboardService for handler tests.
type mockDashboard struct {
	mu      sync.Mutex
	options []string
	valid   map[string]bool
	addErr  error
	series  map[string]models.NamedSeries

	gotSymbols []string
	gotStart   *time.Time
	gotEnd     *time.Time
}

var _ service.DashboardService = (*mockDashboard)(nil)

func (m *mockDashboard) Options() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.options...)
}

func (m *mockDashboard) AddTicker(_ context.Context, symbol string) ([]string, error) {
	if m.addErr != nil {
		return m.Options(), m.addErr
	}
	if !m.valid[symbol] {
		return m.Options(), fmt.Errorf("%w: %q", service.ErrInvalidTicker, symbol)
	}
	m.mu.Lock()
	m.options = append(m.options, symbol)
	m.mu.Unlock()
	return m.Options(), nil
}

func (m *mockDashboard) Series(_ context.Context, sel ticker.Selection, start, end *time.Time) ([]models.NamedSeries, []service.SkippedTicker) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gotSymbols = sel.Symbols()
	m.gotStart, m.gotEnd = start, end

	var out []models.NamedSeries
	var skipped []service.SkippedTicker
	for _, sym := range sel.Symbols() {
		s, ok := m.series[sym]
		if !ok {
			skipped = append(skipped, service.SkippedTicker{Symbol: sym, Reason: "UnknownSymbol"})
			continue
		}
		out = append(out, s)
	}
	return out, skipped
}

func namedSeries(sym, name string, closes ...string) models.NamedSeries {
	s := models.NamedSeries{Symbol: sym, Name: name}
	day := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		px := decimal.RequireFromString(c)
		s.Rows = append(s.Rows, models.PriceRow{
			Date:     day.AddDate(0, 0, i),
			Open:     px,
			High:     px,
			Low:      px,
			Close:    px,
			AdjClose: px,
		})
	}
	return s
}

func newMock() *mockDashboard {
	return &mockDashboard{
		options: []string{"AMZN", "IVV"},
		valid:   map[string]bool{"META": true},
		series: map[string]models.NamedSeries{
			"IVV":  namedSeries("IVV", "iShares Core S&P 500 ETF", "470.1", "471.3", "469.8"),
			"AMZN": namedSeries("AMZN", "Amazon.com, Inc.", "151.9", "153.2"),
			"FLAT": namedSeries("FLAT", "", "1"),
		},
	}
}
