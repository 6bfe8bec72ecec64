package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/cinema-billboard/internal/config"
	"github.com/iliyamo/cinema-billboard/internal/logging"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func limitedEcho(cfg config.RateLimitConfig, rdb *redis.Client) *echo.Echo {
	e := echo.New()
	e.GET("/api/billboard", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, RateLimit(cfg, rdb, logging.Discard()))
	return e
}

func hit(e *echo.Echo) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/billboard", nil)
	req.RemoteAddr = "192.0.2.10:4321"
	e.ServeHTTP(rec, req)
	return rec
}

func TestRateLimit_BlocksOnceCapacityIsUsed(t *testing.T) {
	mr, rdb := newRedis(t)
	e := limitedEcho(config.RateLimitConfig{
		Enabled:        true,
		Capacity:       2,
		RefillTokens:   1,
		RefillInterval: time.Minute,
		TTL:            10 * time.Minute,
		KeyStrategy:    "ip",
		Prefix:         "rl",
	}, rdb)

	var codes []int
	var recs []*httptest.ResponseRecorder
	for i := 0; i < 4; i++ {
		rec := hit(e)
		recs = append(recs, rec)
		codes = append(codes, rec.Code)
	}
	want := []int{200, 200, 429, 429}
	for i := range want {
		if codes[i] != want[i] {
			t.Fatalf("expected codes %v, got %v", want, codes)
		}
	}

	if got := recs[0].Header().Get("X-RateLimit-Remaining"); got != "1" {
		t.Fatalf("expected 1 remaining after first request, got %q", got)
	}
	if got := recs[1].Header().Get("X-RateLimit-Remaining"); got != "0" {
		t.Fatalf("expected 0 remaining after second request, got %q", got)
	}
	if got := recs[2].Header().Get("X-RateLimit-Limit"); got != "2" {
		t.Fatalf("expected limit 2, got %q", got)
	}
	secs, err := strconv.Atoi(recs[2].Header().Get("Retry-After"))
	if err != nil || secs < 1 || secs > 60 {
		t.Fatalf("expected Retry-After within the refill interval, got %q", recs[2].Header().Get("Retry-After"))
	}
	if !strings.Contains(recs[2].Body.String(), "retry_after") {
		t.Fatalf("unexpected 429 body %s", recs[2].Body.String())
	}
	if ttl := mr.TTL("rl:ip:192.0.2.10"); ttl <= 0 {
		t.Fatalf("expected bucket key to carry a TTL, got %v", ttl)
	}
}

func TestRateLimit_RefillsAfterInterval(t *testing.T) {
	_, rdb := newRedis(t)
	e := limitedEcho(config.RateLimitConfig{
		Enabled:        true,
		Capacity:       1,
		RefillTokens:   1,
		RefillInterval: 300 * time.Millisecond,
		TTL:            time.Minute,
		KeyStrategy:    "ip",
		Prefix:         "rl",
	}, rdb)

	if rec := hit(e); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec := hit(e); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	time.Sleep(400 * time.Millisecond)
	if rec := hit(e); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 after refill, got %d", rec.Code)
	}
}

func TestTokenBucket_ZeroIntervalDoesNotRefill(t *testing.T) {
	_, rdb := newRedis(t)
	ctx := context.Background()
	now := time.Now().UnixMilli()

	var allowed []int64
	for i := 0; i < 3; i++ {
		res, err := tokenBucket.Run(ctx, rdb, []string{"rl:zero"}, now, 2, 1, 0, 60).Result()
		if err != nil {
			t.Fatalf("script failed: %v", err)
		}
		arr := res.([]interface{})
		allowed = append(allowed, toInt64(arr[0]))
	}
	if allowed[0] != 1 || allowed[1] != 1 || allowed[2] != 0 {
		t.Fatalf("expected [1 1 0], got %v", allowed)
	}
}

func TestRateLimit_SubMillisecondConfigIsClamped(t *testing.T) {
	mr, rdb := newRedis(t)
	e := limitedEcho(config.RateLimitConfig{
		Enabled:        true,
		Capacity:       1,
		RefillTokens:   1,
		RefillInterval: 500 * time.Microsecond,
		KeyStrategy:    "ip",
		Prefix:         "rl",
	}, rdb)

	if rec := hit(e); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ttl := mr.TTL("rl:ip:192.0.2.10"); ttl != time.Second {
		t.Fatalf("expected key TTL clamped to 1s, got %v", ttl)
	}
}

func TestRateLimit_FailsOpenWhenRedisIsDown(t *testing.T) {
	mr, rdb := newRedis(t)
	e := limitedEcho(config.RateLimitConfig{Enabled: true, Capacity: 1, RefillInterval: time.Minute, Prefix: "rl"}, rdb)
	mr.Close()

	for i := 0; i < 3; i++ {
		if rec := hit(e); rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200 while redis is down, got %d", i, rec.Code)
		}
	}
}
