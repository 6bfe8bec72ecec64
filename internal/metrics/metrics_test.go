package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveUpstream_StatusOutcome(t *testing.T) {
	before := testutil.ToFloat64(UpstreamRequests.WithLabelValues("billboard", "503"))
	ObserveUpstream("billboard", 503, 10*time.Millisecond)
	after := testutil.ToFloat64(UpstreamRequests.WithLabelValues("billboard", "503"))
	if after-before != 1 {
		t.Fatalf("expected counter to increase by 1, got %v", after-before)
	}
}

func TestObserveUpstream_TransportErrorOutcome(t *testing.T) {
	before := testutil.ToFloat64(UpstreamRequests.WithLabelValues("theatres", "error"))
	ObserveUpstream("theatres", 0, time.Millisecond)
	after := testutil.ToFloat64(UpstreamRequests.WithLabelValues("theatres", "error"))
	if after-before != 1 {
		t.Fatalf("expected error outcome to increase by 1, got %v", after-before)
	}
}

func TestObserveHTTP_EmptyRouteIsUnmatched(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequests.WithLabelValues("GET", "unmatched", "404"))
	ObserveHTTP("GET", "", 404, time.Millisecond)
	after := testutil.ToFloat64(HTTPRequests.WithLabelValues("GET", "unmatched", "404"))
	if after-before != 1 {
		t.Fatalf("expected unmatched counter to increase by 1, got %v", after-before)
	}
}

func TestHandler_ExposesMetrics(t *testing.T) {
	ObserveHTTP("GET", "/api/billboard", 200, time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "billboard_http_requests_total") {
		t.Error("expected billboard_http_requests_total in scrape output")
	}
}
