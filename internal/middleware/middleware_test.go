package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/iliyamo/cinema-billboard/internal/config"
	"github.com/iliyamo/cinema-billboard/internal/logging"
	"github.com/iliyamo/cinema-billboard/internal/metrics"
)

func TestRateLimit_NilClientPassesThrough(t *testing.T) {
	e := echo.New()
	mw := RateLimit(config.RateLimitConfig{Enabled: true, Capacity: 1}, nil, logging.Discard())
	e.GET("/api/billboard", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, mw)

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/billboard", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, rec.Code)
		}
		if rec.Header().Get("X-RateLimit-Limit") != "" {
			t.Fatal("limiter headers set while limiter is inactive")
		}
	}
}

func TestRateKey(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/theatre", nil)
	req.Header.Set(echo.HeaderXRealIP, "10.0.0.7")
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/api/theatre")

	cases := map[string]string{
		"ip":       "rl:ip:10.0.0.7",
		"route":    "rl:route:GET /api/theatre",
		"ip_route": "rl:ip:10.0.0.7:route:GET /api/theatre",
		"bogus":    "rl:ip:10.0.0.7:route:GET /api/theatre",
	}
	for strategy, want := range cases {
		got := rateKey(config.RateLimitConfig{Prefix: "rl", KeyStrategy: strategy}, c)
		if got != want {
			t.Errorf("%s: expected %q, got %q", strategy, want, got)
		}
	}
}

func TestToInt64(t *testing.T) {
	if toInt64(int64(3)) != 3 || toInt64("7") != 7 || toInt64(float64(2)) != 2 {
		t.Fatal("unexpected conversion")
	}
}

func TestRequestLogger_LevelsByStatus(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New("test", "debug", "json", &buf)

	e := echo.New()
	e.Use(RequestLogger(log))
	e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusBadGateway, "upstream")
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}

	out := buf.String()
	if !strings.Contains(out, `"level":"info"`) || !strings.Contains(out, `"level":"error"`) {
		t.Fatalf("expected info and error lines, got %s", out)
	}
	if !strings.Contains(out, `"route":"/boom"`) {
		t.Fatalf("route field missing: %s", out)
	}
}

func TestMetrics_CountsByRoute(t *testing.T) {
	e := echo.New()
	e.Use(Metrics())
	e.GET("/probe/:id", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	before := testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues("GET", "/probe/:id", "204"))
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/probe/1", nil))
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/probe/2", nil))
	after := testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues("GET", "/probe/:id", "204"))

	if after-before != 2 {
		t.Fatalf("expected 2 observations, got %v", after-before)
	}
}
