package config

import (
	"os"
	"os/exec"
	"reflect"
	"testing"
	"time"
)

// TestLoadConfig_Defaults verifies that defaults are loaded when no env is set.
func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{
		"SERVER_PORT",
		"PROVIDER_BASE_URL",
		"PROVIDER_TIMEOUT",
		"PROVIDER_RATE_LIMIT",
		"DASHBOARD_TICKERS",
		"DASHBOARD_DEFAULT_TICKER",
		"DASHBOARD_HISTORY_DAYS",
	} {
		_ = os.Unsetenv(k)
	}

	LoadConfig()

	if AppConfig.Server.Port != "8080" {
		t.Fatalf("expected default SERVER_PORT=8080, got %q", AppConfig.Server.Port)
	}
	if AppConfig.Provider.BaseURL != "https://query1.finance.yahoo.com" || AppConfig.Provider.Timeout != 30*time.Second || AppConfig.Provider.RateLimit != 5 {
		t.Fatalf("unexpected provider defaults: %+v", AppConfig.Provider)
	}
	want := []string{"AMZN", "META", "NFLX", "TSLA", "IVV", "EXXT.F"}
	if !reflect.DeepEqual(AppConfig.Dashboard.Tickers, want) {
		t.Fatalf("tickers=%v, want %v", AppConfig.Dashboard.Tickers, want)
	}
	if AppConfig.Dashboard.DefaultTicker != "IVV" || AppConfig.Dashboard.HistoryDays != 365 {
		t.Fatalf("unexpected dashboard defaults: %+v", AppConfig.Dashboard)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DASHBOARD_TICKERS", " aapl, msft ,,AAPL")
	t.Setenv("PROVIDER_BASE_URL", "http://localhost:9999/")
	t.Setenv("DASHBOARD_AUTHOR", "Jane Doe")

	LoadConfig()

	if AppConfig.Dashboard.Author != "Jane Doe" {
		t.Fatalf("author=%q", AppConfig.Dashboard.Author)
	}

	if !reflect.DeepEqual(AppConfig.Dashboard.Tickers, []string{"AAPL", "MSFT"}) {
		t.Fatalf("tickers=%v", AppConfig.Dashboard.Tickers)
	}
	if AppConfig.Provider.BaseURL != "http://localhost:9999" {
		t.Fatalf("base url=%q", AppConfig.Provider.BaseURL)
	}
}

func TestSplitTickers(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"ivv", []string{"IVV"}},
		{"IVV, meta ,IVV", []string{"IVV", "META"}},
		{" , ,", nil},
	}
	for _, c := range cases {
		if got := splitTickers(c.in); !reflect.DeepEqual(got, c.want) {
			t.Fatalf("splitTickers(%q)=%v, want %v", c.in, got, c.want)
		}
	}
}

// TestValidateConfig_Fatal uses a subprocess to assert that validateConfig triggers a fatal exit
// when required fields are missing.
func TestValidateConfig_Fatal(t *testing.T) {
	if os.Getenv("RUN_VALIDATE_FATAL") == "1" {
		AppConfig = Config{}
		validateConfig()
		t.Fatalf("validateConfig should have exited the process")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run", "TestValidateConfig_Fatal")
	cmd.Env = append(os.Environ(), "RUN_VALIDATE_FATAL=1")
	err := cmd.Run()
	if err == nil {
		t.Fatalf("expected process to exit with error, got nil")
	}
}
