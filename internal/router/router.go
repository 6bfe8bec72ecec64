// Package router wires handlers and middleware onto an Echo instance.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/cinema-billboard/internal/config"
	"github.com/iliyamo/cinema-billboard/internal/handler"
	"github.com/iliyamo/cinema-billboard/internal/metrics"
	"github.com/iliyamo/cinema-billboard/internal/middleware"
)

// Deps are the shared components routes are built from.  Redis is optional;
// without it the rate limiter lets every request through.
type Deps struct {
	Handler   *handler.Handler
	RateLimit config.RateLimitConfig
	Redis     *redis.Client
	Log       *logrus.Entry
}

// RegisterRoutes mounts the operational endpoints at the root and the
// gateway under /api.
func RegisterRoutes(e *echo.Echo, d Deps) {
	e.Use(middleware.RequestLogger(d.Log))
	e.Use(middleware.Metrics())

	e.GET("/healthz", handler.Health)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	api := e.Group("/api", middleware.RateLimit(d.RateLimit, d.Redis, d.Log))
	api.GET("/billboard", d.Handler.GetBillboard)
	api.GET("/coming-soon", d.Handler.GetComingSoon)
	api.GET("/theatre", d.Handler.GetTheatres)

	views := api.Group("/views")
	views.GET("/showtimes", d.Handler.GetShowtimesView)
	views.GET("/movies", d.Handler.GetMoviesView)
	views.GET("/theatres", d.Handler.GetTheatresView)

	api.POST("/reminders", d.Handler.CreateReminder)
}
