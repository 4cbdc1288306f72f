package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/guttosm/tickerview/config"
	"github.com/guttosm/tickerview/internal/domain/models"
	"github.com/guttosm/tickerview/internal/logger"
	"github.com/guttosm/tickerview/internal/ticker"
)

// ErrNothingFetched is returned by RunFetch when no ticker produced a series.
var ErrNothingFetched = errors.New("no ticker could be fetched")

// FetchSummary describes one fetched series.
type FetchSummary struct {
	Symbol    string
	Name      string
	Rows      int
	First     string
	Last      string
	LastClose string
}

func summarize(s models.NamedSeries) FetchSummary {
	out := FetchSummary{Symbol: s.Symbol, Name: s.Name, Rows: len(s.Rows)}
	if n := len(s.Rows); n > 0 {
		out.First = s.Rows[0].Date.Format(models.DateLayout)
		out.Last = s.Rows[n-1].Date.Format(models.DateLayout)
		out.LastClose = s.Rows[n-1].Close.StringFixed(2)
	}
	return out
}

// RunFetch loads the series of symbols once and logs a summary line per
// ticker. Without symbols the configured tickers are used.
//
// Returns ErrNothingFetched when every ticker was skipped.
func RunFetch(ctx context.Context, cfg config.Config, symbols []string, start, end *time.Time) ([]FetchSummary, error) {
	md, err := providerOpener(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize provider: %w", err)
	}
	defer md.Close()

	if len(symbols) == 0 {
		symbols = cfg.Dashboard.Tickers
	}
	sel := ticker.ParseSelection(symbols)

	log := logger.Component("fetch")
	series, skipped := newDashboard(cfg, md).Series(ctx, sel, start, end)
	for _, s := range skipped {
		log.Warn().Str("ticker", s.Symbol).Str("reason", s.Reason).Msg("ticker skipped")
	}

	out := make([]FetchSummary, 0, len(series))
	for _, s := range series {
		sum := summarize(s)
		log.Info().
			Str("ticker", sum.Symbol).
			Str("name", sum.Name).
			Int("rows", sum.Rows).
			Str("first", sum.First).
			Str("last", sum.Last).
			Str("last_close", sum.LastClose).
			Msg("series fetched")
		out = append(out, sum)
	}

	if len(out) == 0 {
		return nil, ErrNothingFetched
	}
	return out, nil
}
