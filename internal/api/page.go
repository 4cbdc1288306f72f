package api

import (
	_ "embed"
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/tickerview/internal/logger"
	"github.com/guttosm/tickerview/internal/service"
	"github.com/guttosm/tickerview/internal/ticker"
)

//go:embed templates/index.html
var indexHTML string

const indexTemplateName = "index.html"

var pageTemplate = template.Must(template.New(indexTemplateName).Parse(indexHTML))

type pageOption struct {
	Symbol   string
	Selected bool
}

type pageData struct {
	Title    string
	Author   string
	Warning  string
	ChartURL string
	Options  []pageOption
	Selected []string
	Start    string
	End      string
}

// Index renders the dashboard: the chart of the current selection, the
// ticker picker and the form that adds a new ticker.
//
// The chart itself is an <img> pointing at /api/v1/chart.png, so rendering
// the page never waits on the market data provider.
func (h *Handler) Index(c *gin.Context) {
	data := pageData{
		Title:   h.page.Title,
		Author:  h.page.Author,
		Warning: c.Query("warning"),
	}

	q, err := h.parseSeriesQuery(c)
	if err != nil {
		data.Warning = err.Error()
		q.start, q.end = nil, nil
	}
	data.Selected = q.selection.Symbols()
	data.Start = formatDate(q.start)
	data.End = formatDate(q.end)

	options := h.svc.Options()
	for _, sym := range data.Selected {
		if !slices.Contains(options, sym) {
			options = append(options, sym)
		}
	}
	for _, sym := range options {
		data.Options = append(data.Options, pageOption{Symbol: sym, Selected: slices.Contains(data.Selected, sym)})
	}

	values := url.Values{}
	for _, sym := range data.Selected {
		values.Add("ticker", sym)
	}
	if data.Start != "" {
		values.Set("start", data.Start)
	}
	if data.End != "" {
		values.Set("end", data.End)
	}
	data.ChartURL = "/api/v1/chart.png?" + values.Encode()

	c.HTML(http.StatusOK, indexTemplateName, data)
}

// AddTickerForm handles the free-text form of the page. It always redirects
// back to the dashboard, carrying a warning when the ticker was rejected.
func (h *Handler) AddTickerForm(c *gin.Context) {
	values := url.Values{}
	for _, sym := range ticker.Multi(c.PostFormArray("selected")).Symbols() {
		values.Add("ticker", sym)
	}

	symbol := ticker.Normalize(c.PostForm("ticker"))
	if _, err := h.svc.AddTicker(c.Request.Context(), symbol); err != nil {
		logger.L().Warn().Err(err).Str("ticker", symbol).Msg("add ticker rejected")
		if errors.Is(err, service.ErrInvalidTicker) {
			values.Set("warning", "Could not find ticker "+symbol+", it was not added.")
		} else {
			values.Set("warning", "Could not add ticker "+symbol+", please try again.")
		}
	}

	target := "/"
	if len(values) > 0 {
		target += "?" + values.Encode()
	}
	c.Redirect(http.StatusSeeOther, target)
}
