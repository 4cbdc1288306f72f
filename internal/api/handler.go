package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/tickerview/internal/chart"
	"github.com/guttosm/tickerview/internal/domain/dto"
	"github.com/guttosm/tickerview/internal/domain/models"
	"github.com/guttosm/tickerview/internal/middleware"
	"github.com/guttosm/tickerview/internal/service"
	"github.com/guttosm/tickerview/internal/ticker"
)

// Page holds the static parts of the dashboard page.
type Page struct {
	Title         string
	Author        string
	DefaultTicker string
}

// Handler provides HTTP handlers for the dashboard and its JSON API.
//
// Responsibilities:
//   - Validate incoming query, form and JSON parameters
//   - Turn raw ticker values into a ticker.Selection
//   - Delegate to the dashboard service
//   - Render JSON, PNG or HTML with the appropriate status codes
type Handler struct {
	svc  service.DashboardService
	page Page
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc (service.DashboardService): controller owning the selectable tickers.
//   - page (Page): title, author line and default selection of the page.
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(svc service.DashboardService, page Page) *Handler {
	if page.Title == "" {
		page.Title = chart.DefaultTitle
	}
	page.DefaultTicker = ticker.Normalize(page.DefaultTicker)
	return &Handler{svc: svc, page: page}
}

// seriesQuery is the parsed form of ?ticker=..&start=..&end=..
type seriesQuery struct {
	selection ticker.Selection
	start     *time.Time
	end       *time.Time
}

// parseSeriesQuery reads the ticker selection and optional date bounds.
// Without any ticker the default ticker is selected.
func (h *Handler) parseSeriesQuery(c *gin.Context) (seriesQuery, error) {
	var q seriesQuery

	q.selection = ticker.ParseSelection(c.QueryArray("ticker"))
	if len(q.selection.Symbols()) == 0 && h.page.DefaultTicker != "" {
		q.selection = ticker.Single(h.page.DefaultTicker)
	}

	var err error
	if q.start, err = parseDate(c.Query("start")); err != nil {
		return q, errors.New("invalid start format, expected YYYY-MM-DD")
	}
	if q.end, err = parseDate(c.Query("end")); err != nil {
		return q, errors.New("invalid end format, expected YYYY-MM-DD")
	}
	return q, nil
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(models.DateLayout)
}

func toSkippedDTO(in []service.SkippedTicker) []dto.SkippedTicker {
	if len(in) == 0 {
		return nil
	}
	out := make([]dto.SkippedTicker, len(in))
	for i, s := range in {
		out[i] = dto.SkippedTicker{Symbol: s.Symbol, Reason: s.Reason}
	}
	return out
}

// ListTickers godoc
// @Summary      List selectable tickers
// @Description  Returns the tickers offered by the dashboard, in insertion order
// @Tags         tickers
// @Produce      json
// @Success      200  {object}  dto.OptionsResponse
// @Router       /api/v1/tickers [get]
func (h *Handler) ListTickers(c *gin.Context) {
	c.JSON(http.StatusOK, dto.OptionsResponse{Tickers: h.svc.Options()})
}

// AddTicker handles POST /api/v1/tickers.
//
// Responses:
//   - 200 OK: the symbol is (now) selectable; body lists all options.
//   - 400 Bad Request: malformed body or missing ticker.
//   - 422 Unprocessable Entity: the provider does not know the symbol.
//
// AddTicker godoc
// @Summary      Add a ticker
// @Description  Validates the ticker against the market data provider and appends it to the selectable set
// @Tags         tickers
// @Accept       json
// @Produce      json
// @Param        body  body      dto.AddTickerRequest  true  "Ticker to add"
// @Success      200   {object}  dto.OptionsResponse
// @Failure      400   {object}  dto.ErrorResponse  "Bad Request"
// @Failure      422   {object}  dto.ErrorResponse  "Unknown ticker"
// @Router       /api/v1/tickers [post]
func (h *Handler) AddTicker(c *gin.Context) {
	var req dto.AddTickerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("ticker is required", err))
		return
	}

	options, err := h.svc.AddTicker(c.Request.Context(), req.Ticker)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTicker) {
			c.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse("could not find ticker on the market data provider", err))
			return
		}
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to add ticker", err)
		return
	}

	c.JSON(http.StatusOK, dto.OptionsResponse{Tickers: options})
}

// GetSeries godoc
// @Summary      Price series of the selected tickers
// @Description  Returns one daily price series per ticker. Unknown tickers are listed as skipped instead of failing the request.
// @Tags         series
// @Produce      json
// @Param        ticker  query     []string  false  "Ticker, repeatable or comma separated (default from config)"  collectionFormat(multi)
// @Param        start   query     string    false  "Start date in YYYY-MM-DD"  example(2024-01-01)
// @Param        end     query     string    false  "End date in YYYY-MM-DD, exclusive"  example(2024-06-01)
// @Success      200     {object}  dto.SeriesResponse
// @Failure      400     {object}  dto.ErrorResponse  "Bad Request"
// @Router       /api/v1/series [get]
func (h *Handler) GetSeries(c *gin.Context) {
	q, err := h.parseSeriesQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error(), nil))
		return
	}

	series, skipped := h.svc.Series(c.Request.Context(), q.selection, q.start, q.end)
	if series == nil {
		series = []models.NamedSeries{}
	}

	c.JSON(http.StatusOK, dto.SeriesResponse{
		Start:   formatDate(q.start),
		End:     formatDate(q.end),
		Series:  series,
		Skipped: toSkippedDTO(skipped),
	})
}

// GetChart godoc
// @Summary      Chart of the selected tickers
// @Description  Renders the closing prices of the selected tickers as a PNG line chart
// @Tags         series
// @Produce      png
// @Param        ticker  query     []string  false  "Ticker, repeatable or comma separated (default from config)"  collectionFormat(multi)
// @Param        start   query     string    false  "Start date in YYYY-MM-DD"
// @Param        end     query     string    false  "End date in YYYY-MM-DD, exclusive"
// @Success      200     {file}    binary
// @Failure      400     {object}  dto.ErrorResponse  "Bad Request"
// @Failure      404     {object}  dto.ErrorResponse  "Nothing to plot"
// @Failure      500     {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/chart.png [get]
func (h *Handler) GetChart(c *gin.Context) {
	q, err := h.parseSeriesQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error(), nil))
		return
	}

	series, skipped := h.svc.Series(c.Request.Context(), q.selection, q.start, q.end)
	png, err := chart.RenderPNG(series, chart.Options{Title: h.page.Title})
	if err != nil {
		if errors.Is(err, chart.ErrNoData) {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse("no data to plot", err))
			return
		}
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to render chart", err)
		return
	}

	for _, s := range skipped {
		c.Writer.Header().Add("X-Skipped-Ticker", s.Symbol)
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", png)
}
