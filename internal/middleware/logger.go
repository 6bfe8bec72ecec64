package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/cinema-billboard/internal/metrics"
)

// RequestLogger logs one structured line per request.  5xx responses are
// logged at error level, 4xx at warn and the rest at info.
func RequestLogger(log *logrus.Entry) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			entry := log.WithFields(logrus.Fields{
				"method":      c.Request().Method,
				"path":        c.Request().URL.Path,
				"route":       c.Path(),
				"status":      status,
				"duration_ms": time.Since(start).Milliseconds(),
				"remote_ip":   c.RealIP(),
			})
			switch {
			case status >= 500:
				entry.Error("request")
			case status >= 400:
				entry.Warn("request")
			default:
				entry.Info("request")
			}
			return nil
		}
	}
}

// Metrics records request count and latency keyed by the matched route
// template, so query strings and path params do not inflate cardinality.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			metrics.ObserveHTTP(c.Request().Method, c.Path(), c.Response().Status, time.Since(start))
			return nil
		}
	}
}
