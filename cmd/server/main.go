package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata" // TIMEZONE must resolve on images without zoneinfo

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/cinema-billboard/internal/config"
	"github.com/iliyamo/cinema-billboard/internal/handler"
	"github.com/iliyamo/cinema-billboard/internal/logging"
	"github.com/iliyamo/cinema-billboard/internal/queue"
	"github.com/iliyamo/cinema-billboard/internal/router"
	"github.com/iliyamo/cinema-billboard/internal/service"
	"github.com/iliyamo/cinema-billboard/internal/upstream"
)

func main() {
	// .env is optional; real environment variables take precedence.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.New("billboard-api", "info", "json", nil).WithError(err).Fatal("load config")
	}
	log := logging.New("billboard-api", cfg.LogLevel, cfg.LogFormat, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var rdb *redis.Client
	if cfg.RateLimit.Enabled {
		rdb, err = config.NewRedisClient(cfg.Redis)
		if err != nil {
			log.WithError(err).Warn("redis unavailable; rate limiting disabled")
		} else {
			defer rdb.Close()
		}
	}

	opts := handler.Options{
		DefaultCinemaID: cfg.DefaultCinemaID,
		Location:        cfg.Location,
		PosterBaseURL:   cfg.PosterBaseURL,
		PosterVersion:   cfg.PosterVersion,
		Log:             log,
	}
	if cfg.Reminders.Enabled {
		opts.Reminders = service.NewReminderPublisher(cfg.Reminders.BrokerURL, cfg.Reminders.Queue)
		if cfg.Reminders.RunConsumer {
			c := &queue.Consumer{
				URL:    cfg.Reminders.BrokerURL,
				Queue:  cfg.Reminders.Queue,
				LogDir: cfg.Reminders.LogDir,
				Log:    log.WithField("component", "reminder-consumer"),
			}
			go func() {
				if err := c.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
					log.WithError(err).Error("reminder consumer stopped")
				}
			}()
		}
	}

	src := upstream.NewClient(cfg.UpstreamBaseURL, &http.Client{Timeout: cfg.UpstreamTimeout}, log.WithField("component", "upstream"))

	e := echo.New()
	e.HideBanner = true
	router.RegisterRoutes(e, router.Deps{
		Handler:   handler.New(src, opts),
		RateLimit: cfg.RateLimit,
		Redis:     rdb,
		Log:       log,
	})

	addr := ":" + cfg.Port
	go func() {
		log.WithField("env", cfg.Env).Infof("listening on %s", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
}
