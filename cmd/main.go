package main

//
//  @title           tickerview API
//  @version         1.0
//  @description     Stock ticker dashboard: validated tickers, daily price series and charts.
//  @termsOfService  https://github.com/guttosm/tickerview
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/tickerview
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        tickers
//  @tag.description Selectable tickers of the dashboard
//
//  @tag.name        series
//  @tag.description Price series and charts
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/guttosm/tickerview/config"
	_ "github.com/guttosm/tickerview/docs" // swagger docs
	"github.com/guttosm/tickerview/internal/app"
	"github.com/guttosm/tickerview/internal/domain/models"
	"github.com/guttosm/tickerview/internal/logger"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources (e.g., provider connections).
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// parseBound parses an optional YYYY-MM-DD flag value.
func parseBound(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(models.DateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s %q, expected YYYY-MM-DD", name, value)
	}
	return &t, nil
}

// splitList splits a comma separated flag value, dropping blanks.
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// main is the entry point of the tickerview application.
//
// Modes (selected via --mode flag):
//   - api:   Starts the dashboard and its REST API.
//   - fetch: Loads the series of the given tickers once and logs a summary.
//
// Flags:
//   - --mode:    Execution mode ("api" or "fetch"). Default: "api".
//   - --port:    Port for the API server. Defaults to value from config (SERVER_PORT).
//   - --tickers: Comma separated tickers for fetch mode. Defaults to DASHBOARD_TICKERS.
//   - --start:   First day (YYYY-MM-DD) for fetch mode.
//   - --end:     Exclusive last day (YYYY-MM-DD) for fetch mode.
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Configure(config.AppConfig.Log.Level, config.AppConfig.Log.Pretty)

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "api", "Mode: api or fetch")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	tickers := flag.String("tickers", "", "Comma separated tickers for fetch mode (default: DASHBOARD_TICKERS)")
	start := flag.String("start", "", "First day for fetch mode, YYYY-MM-DD")
	end := flag.String("end", "", "Exclusive last day for fetch mode, YYYY-MM-DD")
	flag.Parse()

	switch *mode {
	case "fetch":
		from, err := parseBound("start", *start)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("bad flag")
		}
		to, err := parseBound("end", *end)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("bad flag")
		}

		logger.L().Info().Msg("running fetch")
		if _, err := app.RunFetch(ctx, config.AppConfig, splitList(*tickers), from, to); err != nil {
			logger.L().Fatal().Err(err).Msg("fetch failed")
		}
		logger.L().Info().Msg("fetch completed successfully")

	case "api":
		// API mode: start the HTTP server
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
