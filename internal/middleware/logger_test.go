package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/guttosm/tickerview/internal/logger"
)

func TestToString(t *testing.T) {
	if s := toString(nil); s != "" {
		t.Fatalf("nil -> %q, want empty", s)
	}
	if s := toString("abc"); s != "abc" {
		t.Fatalf("string -> %q, want 'abc'", s)
	}
	if s := toString(123); s != "" {
		t.Fatalf("non-string -> %q, want empty", s)
	}
}

func TestRequestLogger_LevelByStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	logger.SetOutput(&buf, zerolog.DebugLevel)
	t.Cleanup(logger.Init)

	router := gin.New()
	router.Use(RequestID(), RequestLogger())
	router.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	router.GET("/bad", func(c *gin.Context) { c.String(http.StatusBadRequest, "nope") })
	router.GET("/boom", func(c *gin.Context) {
		_ = c.Error(assertErr{})
		c.String(http.StatusBadGateway, "upstream")
	})

	cases := []struct {
		path  string
		level string
	}{
		{"/ok?ticker=IVV", "info"},
		{"/bad", "warn"},
		{"/boom", "error"},
	}
	for _, tc := range cases {
		buf.Reset()
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))

		var line map[string]any
		if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
			t.Fatalf("%s: invalid log line %q: %v", tc.path, buf.String(), err)
		}
		if line["level"] != tc.level {
			t.Fatalf("%s: level=%v, want %s", tc.path, line["level"], tc.level)
		}
		if line["request_id"] == "" || line["message"] != "http_request" {
			t.Fatalf("%s: unexpected line %v", tc.path, line)
		}
	}
}

func TestRequestLogger_QueryAndErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	logger.SetOutput(&buf, zerolog.InfoLevel)
	t.Cleanup(logger.Init)

	router := gin.New()
	router.Use(RequestLogger())
	router.GET("/x", func(c *gin.Context) {
		_ = c.Error(assertErr{})
		c.Status(http.StatusInternalServerError)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x?ticker=META", nil))
	out := buf.String()
	if !strings.Contains(out, `"query":"ticker=META"`) || !strings.Contains(out, "boom") {
		t.Fatalf("unexpected log line: %s", out)
	}
}
