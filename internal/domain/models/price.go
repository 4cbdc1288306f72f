package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used on the wire and towards the provider.
const DateLayout = "2006-01-02"

// PriceRow is one trading day of a symbol's history.
//
// Date carries no time-of-day: it is always midnight UTC of the trading day.
//
// swagger:model PriceRow
type PriceRow struct {
	Date     time.Time       `json:"date" swaggertype:"string" example:"2024-03-01"`
	Open     decimal.Decimal `json:"open" swaggertype:"string" example:"509.12"`
	High     decimal.Decimal `json:"high" swaggertype:"string" example:"512.40"`
	Low      decimal.Decimal `json:"low" swaggertype:"string" example:"507.85"`
	Close    decimal.Decimal `json:"close" swaggertype:"string" example:"511.70"`
	AdjClose decimal.Decimal `json:"adj_close" swaggertype:"string" example:"511.70"`
	Volume   int64           `json:"volume" example:"4200000"`
}

// MarshalJSON renders Date as YYYY-MM-DD.
func (r PriceRow) MarshalJSON() ([]byte, error) {
	type alias PriceRow
	return json.Marshal(struct {
		Date string `json:"date"`
		alias
	}{
		Date:  r.Date.Format(DateLayout),
		alias: alias(r),
	})
}

// UnmarshalJSON reads Date back from YYYY-MM-DD.
func (r *PriceRow) UnmarshalJSON(b []byte) error {
	type alias PriceRow
	aux := struct {
		Date string `json:"date"`
		*alias
	}{alias: (*alias)(r)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if aux.Date == "" {
		r.Date = time.Time{}
		return nil
	}
	d, err := time.Parse(DateLayout, aux.Date)
	if err != nil {
		return fmt.Errorf("price row date: %w", err)
	}
	r.Date = d
	return nil
}

// TruncateToDate drops the time-of-day of t, keeping the calendar day as seen
// in t's own location, and returns midnight UTC of that day.
func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NamedSeries is the price history of one symbol ready to be plotted.
//
// swagger:model NamedSeries
type NamedSeries struct {
	Symbol   string     `json:"symbol" example:"IVV"`
	Name     string     `json:"name" example:"iShares Core S&P 500 ETF"`
	Currency string     `json:"currency,omitempty" example:"USD"`
	Rows     []PriceRow `json:"rows"`
}

// Label is the legend text of the series: the display name, or the symbol when
// the provider had no name for it.
func (s NamedSeries) Label() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Symbol
}

// Closes splits the series into parallel date and closing-price slices.
func (s NamedSeries) Closes() ([]time.Time, []float64) {
	xs := make([]time.Time, len(s.Rows))
	ys := make([]float64, len(s.Rows))
	for i, r := range s.Rows {
		xs[i] = r.Date
		ys[i] = r.Close.InexactFloat64()
	}
	return xs, ys
}
