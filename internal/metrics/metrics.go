// Package metrics provides Prometheus instrumentation for the billboard
// gateway.
//
// Metrics registered here:
//
//	billboard_http_requests_total            counter, method/route/status
//	billboard_http_request_duration_seconds  histogram, method/route
//	billboard_upstream_requests_total        counter, resource/outcome
//	billboard_upstream_duration_seconds      histogram, resource
//	billboard_reminders_total                counter, result
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPRequests counts requests served by route template and status.
var HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "billboard_http_requests_total",
	Help: "Total HTTP requests handled.",
}, []string{"method", "route", "status"})

// HTTPDuration tracks request latency.
var HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "billboard_http_request_duration_seconds",
	Help:    "HTTP request latency in seconds.",
	Buckets: prometheus.DefBuckets,
}, []string{"method", "route"})

// UpstreamRequests counts upstream fetches.  outcome is the HTTP status, or
// "error" when no response was received.
var UpstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "billboard_upstream_requests_total",
	Help: "Upstream API requests by resource and outcome.",
}, []string{"resource", "outcome"})

// UpstreamDuration tracks upstream latency per resource.
var UpstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "billboard_upstream_duration_seconds",
	Help:    "Upstream API latency in seconds.",
	Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 15},
}, []string{"resource"})

// Reminders counts release reminder requests by result (queued, invalid, failed).
var Reminders = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "billboard_reminders_total",
	Help: "Release reminder requests by result.",
}, []string{"result"})

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveUpstream records one upstream call.  status 0 means the request
// never produced a response.
func ObserveUpstream(resource string, status int, d time.Duration) {
	outcome := "error"
	if status > 0 {
		outcome = strconv.Itoa(status)
	}
	UpstreamRequests.WithLabelValues(resource, outcome).Inc()
	UpstreamDuration.WithLabelValues(resource).Observe(d.Seconds())
}

// ObserveHTTP records one served request.
func ObserveHTTP(method, route string, status int, d time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
