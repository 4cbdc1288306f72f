package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system,
// such as server settings, the market data provider and the dashboard itself.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	PROVIDER_BASE_URL=https://query1.finance.yahoo.com
//	PROVIDER_TIMEOUT=30s
//	PROVIDER_RATE_LIMIT=5
//	DASHBOARD_TICKERS=AMZN,META,NFLX,TSLA,IVV,EXXT.F
//	DASHBOARD_DEFAULT_TICKER=IVV
//	DASHBOARD_HISTORY_DAYS=365
type Config struct {
	Server    ServerConfig    // HTTP server configuration
	Provider  ProviderConfig  // Market data provider settings
	Dashboard DashboardConfig // Dashboard defaults
	Log       LogConfig       // Logger settings
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// ProviderConfig defines how the Yahoo Finance chart API is reached.
//
// Fields:
//   - BaseURL: scheme and host of the chart API.
//   - Timeout: per-request HTTP client timeout.
//   - RateLimit: outbound requests per second.
//   - UserAgent: header sent on every request (Yahoo rejects empty agents).
type ProviderConfig struct {
	BaseURL   string
	Timeout   time.Duration
	RateLimit int
	UserAgent string
}

// DashboardConfig holds the selectable tickers and history defaults.
type DashboardConfig struct {
	Title         string
	Author        string // shown above the chart when set
	Tickers       []string
	DefaultTicker string
	HistoryDays   int
	FetchParallel int
}

// LogConfig controls the zerolog output.
type LogConfig struct {
	Level  string
	Pretty bool
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() will terminate the app
//     with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("PROVIDER_BASE_URL", "https://query1.finance.yahoo.com")
	viper.SetDefault("PROVIDER_TIMEOUT", "30s")
	viper.SetDefault("PROVIDER_RATE_LIMIT", 5)
	viper.SetDefault("PROVIDER_USER_AGENT", "Mozilla/5.0")

	viper.SetDefault("DASHBOARD_TITLE", "Stock price analysis")
	viper.SetDefault("DASHBOARD_AUTHOR", "")
	viper.SetDefault("DASHBOARD_TICKERS", "AMZN,META,NFLX,TSLA,IVV,EXXT.F")
	viper.SetDefault("DASHBOARD_DEFAULT_TICKER", "IVV")
	viper.SetDefault("DASHBOARD_HISTORY_DAYS", 365)
	viper.SetDefault("DASHBOARD_FETCH_PARALLEL", 4)

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_PRETTY", false)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Provider: ProviderConfig{
			BaseURL:   strings.TrimRight(viper.GetString("PROVIDER_BASE_URL"), "/"),
			Timeout:   viper.GetDuration("PROVIDER_TIMEOUT"),
			RateLimit: viper.GetInt("PROVIDER_RATE_LIMIT"),
			UserAgent: viper.GetString("PROVIDER_USER_AGENT"),
		},
		Dashboard: DashboardConfig{
			Title:         viper.GetString("DASHBOARD_TITLE"),
			Author:        viper.GetString("DASHBOARD_AUTHOR"),
			Tickers:       splitTickers(viper.GetString("DASHBOARD_TICKERS")),
			DefaultTicker: strings.ToUpper(strings.TrimSpace(viper.GetString("DASHBOARD_DEFAULT_TICKER"))),
			HistoryDays:   viper.GetInt("DASHBOARD_HISTORY_DAYS"),
			FetchParallel: viper.GetInt("DASHBOARD_FETCH_PARALLEL"),
		},
		Log: LogConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Pretty: viper.GetBool("LOG_PRETTY"),
		},
	}

	// Validate critical fields
	validateConfig()
}

// splitTickers turns a comma separated list into upper-cased symbols,
// dropping blanks and repeats while keeping the original order.
func splitTickers(raw string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, part := range strings.Split(raw, ",") {
		s := strings.ToUpper(strings.TrimSpace(part))
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Provider.BaseURL == "" {
		missing = append(missing, "PROVIDER_BASE_URL")
	}
	if AppConfig.Provider.Timeout <= 0 {
		missing = append(missing, "PROVIDER_TIMEOUT")
	}
	if AppConfig.Provider.RateLimit <= 0 {
		missing = append(missing, "PROVIDER_RATE_LIMIT")
	}
	if len(AppConfig.Dashboard.Tickers) == 0 {
		missing = append(missing, "DASHBOARD_TICKERS")
	}
	if AppConfig.Dashboard.HistoryDays <= 0 {
		missing = append(missing, "DASHBOARD_HISTORY_DAYS")
	}

	if len(missing) > 0 {
		log.Fatalf("❌ Missing required environment variables: %v\n", missing)
	}
}
