package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"
	_ "time/tzdata" // exchange timezones in minimal containers

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"

	"github.com/guttosm/tickerview/internal/domain/models"
	"github.com/guttosm/tickerview/internal/logger"
)

const (
	DefaultBaseURL   = "https://query1.finance.yahoo.com"
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 5 // requests per second
	DefaultUserAgent = "Mozilla/5.0"

	chartPath = "/v8/finance/chart/"
)

// YahooClient implements Fetcher on top of the Yahoo Finance chart API.
type YahooClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
	log        zerolog.Logger
}

// Option configures the client.
type Option func(*YahooClient)

// WithBaseURL sets the base URL (scheme and host).
func WithBaseURL(baseURL string) Option {
	return func(c *YahooClient) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *YahooClient) {
		c.httpClient.Timeout = timeout
	}
}

// WithRateLimit sets the outbound request rate.
func WithRateLimit(requestsPerSecond int) Option {
	return func(c *YahooClient) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *YahooClient) {
		c.userAgent = ua
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *YahooClient) {
		c.httpClient = hc
	}
}

// NewYahooClient creates a chart API client with sane defaults.
func NewYahooClient(opts ...Option) *YahooClient {
	c := &YahooClient{
		baseURL:    DefaultBaseURL,
		userAgent:  DefaultUserAgent,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		log:        logger.Component("provider"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// chartResponse is the envelope of /v8/finance/chart.
type chartResponse struct {
	Chart struct {
		Result []chartResult `json:"result"`
		Error  *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

type chartResult struct {
	Meta       json.RawMessage `json:"meta"`
	Timestamp  []int64         `json:"timestamp"`
	Indicators struct {
		Quote []struct {
			Open   []*float64 `json:"open"`
			High   []*float64 `json:"high"`
			Low    []*float64 `json:"low"`
			Close  []*float64 `json:"close"`
			Volume []*int64   `json:"volume"`
		} `json:"quote"`
		AdjClose []struct {
			AdjClose []*float64 `json:"adjclose"`
		} `json:"adjclose"`
	} `json:"indicators"`
}

// chart performs a rate-limited GET against the chart endpoint of symbol.
func (c *YahooClient) chart(ctx context.Context, symbol string, params url.Values) (*chartResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	endpoint := chartPath + url.PathEscape(symbol)
	reqURL := c.baseURL + endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch %s: %w", symbol, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	c.log.Debug().
		Str("symbol", symbol).
		Int("status", resp.StatusCode).
		Int64("latency_ms", time.Since(start).Milliseconds()).
		Msg("chart request")

	var out chartResponse
	if err := json.Unmarshal(body, &out); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, &APIError{StatusCode: resp.StatusCode, Message: truncate(string(body), 200), Endpoint: endpoint}
		}
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if out.Chart.Error != nil {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Code:       out.Chart.Error.Code,
			Message:    out.Chart.Error.Description,
			Endpoint:   endpoint,
		}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode), Endpoint: endpoint}
	}
	if len(out.Chart.Result) == 0 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: "empty result", Endpoint: endpoint}
	}
	return &out.Chart.Result[0], nil
}

// FetchHistory returns the daily bars of symbol in [start, end), sorted by time.
// A range without trading days yields an empty slice and no error.
func (c *YahooClient) FetchHistory(ctx context.Context, symbol, start, end string) ([]Bar, error) {
	from, err := time.Parse(models.DateLayout, start)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", start, err)
	}
	to, err := time.Parse(models.DateLayout, end)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", end, err)
	}

	params := url.Values{}
	params.Set("period1", strconv.FormatInt(from.Unix(), 10))
	params.Set("period2", strconv.FormatInt(to.Unix(), 10))
	params.Set("interval", "1d")
	params.Set("includeAdjustedClose", "true")

	res, err := c.chart(ctx, symbol, params)
	if err != nil {
		return nil, err
	}
	return res.bars(), nil
}

// FetchInfo returns the meta object the chart API attaches to symbol.
func (c *YahooClient) FetchInfo(ctx context.Context, symbol string) (Metadata, error) {
	params := url.Values{}
	params.Set("range", "1d")
	params.Set("interval", "1d")

	res, err := c.chart(ctx, symbol, params)
	if err != nil {
		return nil, err
	}
	meta := Metadata{}
	if len(res.Meta) > 0 {
		if err := json.Unmarshal(res.Meta, &meta); err != nil {
			return nil, fmt.Errorf("yahoo decode meta: %w", err)
		}
	}
	return meta, nil
}

// Ping checks that the provider answers for symbol.
func (c *YahooClient) Ping(ctx context.Context, symbol string) error {
	_, err := c.FetchInfo(ctx, symbol)
	return err
}

// Close releases idle connections held by the HTTP client.
func (c *YahooClient) Close() {
	c.httpClient.CloseIdleConnections()
}

// bars converts the column oriented quote arrays into rows, skipping days
// the provider reports without a close.
func (r *chartResult) bars() []Bar {
	if len(r.Timestamp) == 0 || len(r.Indicators.Quote) == 0 {
		return []Bar{}
	}
	loc := r.location()
	q := r.Indicators.Quote[0]
	var adj []*float64
	if len(r.Indicators.AdjClose) > 0 {
		adj = r.Indicators.AdjClose[0].AdjClose
	}

	out := make([]Bar, 0, len(r.Timestamp))
	for i, ts := range r.Timestamp {
		closePx := at(q.Close, i)
		if closePx == nil {
			continue
		}
		b := Bar{
			Time:     time.Unix(ts, 0).In(loc),
			Open:     dec(at(q.Open, i)),
			High:     dec(at(q.High, i)),
			Low:      dec(at(q.Low, i)),
			Close:    dec(closePx),
			AdjClose: dec(closePx),
		}
		if a := at(adj, i); a != nil {
			b.AdjClose = dec(a)
		}
		if i < len(q.Volume) && q.Volume[i] != nil {
			b.Volume = *q.Volume[i]
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time.Before(out[j].Time) })
	return out
}

// location resolves the exchange timezone so timestamps land on the right day.
func (r *chartResult) location() *time.Location {
	var meta struct {
		Timezone  string `json:"exchangeTimezoneName"`
		GMTOffset int    `json:"gmtoffset"`
	}
	if len(r.Meta) > 0 {
		_ = json.Unmarshal(r.Meta, &meta)
	}
	if meta.Timezone != "" {
		if loc, err := time.LoadLocation(meta.Timezone); err == nil {
			return loc
		}
	}
	return time.FixedZone("exchange", meta.GMTOffset)
}

func at(xs []*float64, i int) *float64 {
	if i < len(xs) {
		return xs[i]
	}
	return nil
}

func dec(v *float64) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return decimal.NewFromFloat(*v)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
