package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/tickerview/config"
	"github.com/guttosm/tickerview/internal/api"
	"github.com/guttosm/tickerview/internal/service"
	"github.com/guttosm/tickerview/internal/ticker"
)

// readyTimeout bounds the provider probe behind /readyz.
var readyTimeout = 5 * time.Second

// newDashboard wires the validator, record factory and options of the
// dashboard controller from the configuration.
func newDashboard(cfg config.Config, md marketData) service.DashboardService {
	return service.NewDashboardService(
		ticker.NewValidator(md),
		service.RecordsFrom(md),
		cfg.Dashboard.Tickers,
		service.WithParallelism(cfg.Dashboard.FetchParallel),
		service.WithHistoryDays(cfg.Dashboard.HistoryDays),
	)
}

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the market data client using InitProvider().
//   - Initializes the dashboard service with the configured tickers.
//   - Creates the HTTP handler layer to handle requests.
//   - Configures the Gin router with the page and API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to release provider connections.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// indirection for unit testing
	md, err := providerOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize provider: %w", err)
	}

	svc := newDashboard(cfg, md)

	handler := api.NewHandler(svc, api.Page{
		Title:         cfg.Dashboard.Title,
		Author:        cfg.Dashboard.Author,
		DefaultTicker: cfg.Dashboard.DefaultTicker,
	})

	router := api.NewRouter(handler)

	// Register health and readiness probes
	symbol := pingSymbol(cfg)
	healthHandler := api.NewHealthHandler(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), readyTimeout)
		defer cancel()
		return md.Ping(ctx, symbol)
	})
	healthHandler.Register(router)

	cleanup := func() {
		md.Close()
	}

	return router, cleanup, nil
}
