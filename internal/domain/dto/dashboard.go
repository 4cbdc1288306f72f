package dto

import "github.com/guttosm/tickerview/internal/domain/models"

// OptionsResponse is returned by GET/POST /api/v1/tickers.
type OptionsResponse struct {
	Tickers []string `json:"tickers" example:"AMZN,META,NFLX,TSLA,IVV,EXXT.F"`
}

// AddTickerRequest is the body of POST /api/v1/tickers.
type AddTickerRequest struct {
	Ticker string `json:"ticker" binding:"required" example:"META"`
}

// SkippedTicker explains why a selected ticker has no line on the chart.
type SkippedTicker struct {
	Symbol string `json:"symbol" example:"NOT_A_REAL_TICKER"`
	Reason string `json:"reason" example:"UnknownSymbol: could not find ticker on the market data provider"`
}

// SeriesResponse is returned by GET /api/v1/series.
//
// Fields match the API contract and may differ from internal domain models.
type SeriesResponse struct {
	Start   string               `json:"start,omitempty" example:"2024-01-01"`
	End     string               `json:"end,omitempty" example:"2024-06-01"`
	Series  []models.NamedSeries `json:"series"`
	Skipped []SkippedTicker      `json:"skipped,omitempty"`
}
