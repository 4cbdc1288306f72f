// Package chart renders named price series as a PNG line chart.
package chart

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/guttosm/tickerview/internal/domain/models"
)

// ErrNoData is returned when no series has enough points to draw a line.
var ErrNoData = errors.New("no plottable series")

const (
	DefaultTitle  = "Stock price analysis"
	DefaultWidth  = 1024
	DefaultHeight = 480
	// DefaultCurrency labels the price axis when the series disagree or
	// carry no currency.
	DefaultCurrency = money.USD
)

var palette = []string{
	"2563eb", // blue
	"dc2626", // red
	"16a34a", // green
	"9333ea", // purple
	"ea580c", // orange
	"0891b2", // cyan
	"4b5563", // gray
}

// Options controls the chart frame.
type Options struct {
	Title    string
	Width    int
	Height   int
	Currency string // ISO 4217 code of the price axis, see DefaultCurrency
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.Currency == "" {
		o.Currency = DefaultCurrency
	}
	return o
}

// axisCurrency is the currency shared by every plotted series, or fallback.
func axisCurrency(series []models.NamedSeries, fallback string) string {
	code := ""
	for _, s := range series {
		if s.Currency == "" {
			return fallback
		}
		if code != "" && code != s.Currency {
			return fallback
		}
		code = s.Currency
	}
	if code == "" {
		return fallback
	}
	return code
}

// subunits maps quote currencies that count in hundredths (London pence,
// Johannesburg cents, Tel Aviv agorot) to the currency they divide.
var subunits = map[string]string{
	"GBp": "GBP",
	"GBX": "GBP",
	"ZAc": "ZAR",
	"ILA": "ILS",
}

// priceFormatter renders axis ticks as money, e.g. "$1,234.50" or "€12.30".
// Subunit quotes are shown in their main currency. Unknown currency codes
// fall back to DefaultCurrency.
func priceFormatter(code string) chart.ValueFormatter {
	var shift int32
	if main, ok := subunits[code]; ok {
		code, shift = main, -2
	}
	cur := money.GetCurrency(code)
	if cur == nil {
		cur, shift = money.GetCurrency(DefaultCurrency), 0
	}
	f := cur.Formatter()
	return func(v interface{}) string {
		x, ok := v.(float64)
		if !ok {
			return ""
		}
		minor := decimal.NewFromFloat(x).Shift(shift + int32(cur.Fraction)).Round(0).IntPart()
		return f.Format(minor)
	}
}

// RenderPNG draws one closing-price line per series, labelled by display name.
// Series with fewer than two rows are left out.
func RenderPNG(series []models.NamedSeries, opts Options) ([]byte, error) {
	opts = opts.withDefaults()

	var lines []chart.Series
	var plotted []models.NamedSeries
	for _, s := range series {
		if len(s.Rows) < 2 {
			continue
		}
		plotted = append(plotted, s)
		xs, ys := s.Closes()
		lines = append(lines, chart.TimeSeries{
			Name: s.Label(),
			Style: chart.Style{
				StrokeColor: drawing.ColorFromHex(palette[len(lines)%len(palette)]),
				StrokeWidth: 2,
			},
			XValues: xs,
			YValues: ys,
		})
	}
	if len(lines) == 0 {
		return nil, ErrNoData
	}

	graph := chart.Chart{
		Title:  opts.Title,
		Width:  opts.Width,
		Height: opts.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			Name:           "Date",
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis: chart.YAxis{
			Name:           "Price",
			ValueFormatter: priceFormatter(axisCurrency(plotted, opts.Currency)),
		},
		Series: lines,
	}
	graph.Elements = []chart.Renderable{
		chart.LegendLeft(&graph),
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}
