package app

import (
	"context"
	"fmt"
	"net/url"

	"github.com/guttosm/tickerview/config"
	"github.com/guttosm/tickerview/internal/provider"
)

// marketData is what the application needs from the market data provider.
type marketData interface {
	provider.Fetcher
	Ping(ctx context.Context, symbol string) error
	Close()
}

// providerOpener allows tests to replace the provider.
var providerOpener = func(cfg config.Config) (marketData, error) {
	return InitProvider(cfg)
}

// InitProvider builds the Yahoo Finance client from the provider settings.
//
// Behavior:
//   - Rejects a base URL that is not absolute http(s).
//   - Applies timeout, outbound rate limit and user agent.
//   - Does not contact the provider; readiness is checked by /readyz.
//
// Returns:
//   - *provider.YahooClient: a client safe for concurrent use.
//   - error: if the configuration cannot produce a usable client.
func InitProvider(cfg config.Config) (*provider.YahooClient, error) {
	u, err := url.Parse(cfg.Provider.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid provider base url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid provider base url %q: expected http(s)://host", cfg.Provider.BaseURL)
	}

	opts := []provider.Option{provider.WithBaseURL(cfg.Provider.BaseURL)}
	if cfg.Provider.Timeout > 0 {
		opts = append(opts, provider.WithTimeout(cfg.Provider.Timeout))
	}
	if cfg.Provider.RateLimit > 0 {
		opts = append(opts, provider.WithRateLimit(cfg.Provider.RateLimit))
	}
	if cfg.Provider.UserAgent != "" {
		opts = append(opts, provider.WithUserAgent(cfg.Provider.UserAgent))
	}
	return provider.NewYahooClient(opts...), nil
}

// pingSymbol picks the ticker used to probe the provider.
func pingSymbol(cfg config.Config) string {
	if cfg.Dashboard.DefaultTicker != "" {
		return cfg.Dashboard.DefaultTicker
	}
	if len(cfg.Dashboard.Tickers) > 0 {
		return cfg.Dashboard.Tickers[0]
	}
	return "IVV"
}
