// Package handler exposes the gateway's HTTP handlers.  Proxy handlers pass
// the upstream JSON through verbatim; view handlers combine one or more
// upstream feeds into page-ready view models.
package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/cinema-billboard/internal/catalog"
	"github.com/iliyamo/cinema-billboard/internal/logging"
	"github.com/iliyamo/cinema-billboard/internal/model"
	"github.com/iliyamo/cinema-billboard/internal/upstream"
)

// Source is the upstream API as seen by the handlers.  *upstream.Client
// satisfies it.
type Source interface {
	Billboard(ctx context.Context, cinemaID string) (json.RawMessage, error)
	ComingSoon(ctx context.Context) (json.RawMessage, error)
	Theatres(ctx context.Context) (json.RawMessage, error)
	BillboardDays(ctx context.Context, cinemaID string) ([]model.BillboardDay, error)
	ComingSoonMovies(ctx context.Context) ([]model.ComingSoonMovie, error)
	TheatreGroups(ctx context.Context) ([]model.TheatreGroup, error)
}

// Options configures a Handler.  Zero values fall back to sensible defaults.
type Options struct {
	DefaultCinemaID string
	Location        *time.Location
	PosterBaseURL   string
	PosterVersion   string
	Reminders       ReminderPublisher // nil disables POST /api/reminders
	Log             *logrus.Entry
	Now             func() time.Time
}

// Handler aggregates the dependencies every route needs.
type Handler struct {
	src             Source
	classifier      catalog.Classifier
	defaultCinemaID string
	posterBase      string
	posterVersion   string
	reminders       ReminderPublisher
	log             *logrus.Entry
	now             func() time.Time
}

// New builds a Handler over src.
func New(src Source, opts Options) *Handler {
	h := &Handler{
		src:             src,
		classifier:      catalog.New(opts.Location),
		defaultCinemaID: opts.DefaultCinemaID,
		posterBase:      opts.PosterBaseURL,
		posterVersion:   opts.PosterVersion,
		reminders:       opts.Reminders,
		log:             opts.Log,
		now:             opts.Now,
	}
	if h.defaultCinemaID == "" {
		h.defaultCinemaID = upstream.DefaultCinemaID
	}
	if h.log == nil {
		h.log = logging.Discard()
	}
	if h.now == nil {
		h.now = time.Now
	}
	return h
}

func (h *Handler) cinemaID(c echo.Context) string {
	if id := strings.TrimSpace(c.QueryParam("cinema_id")); id != "" {
		return id
	}
	return h.defaultCinemaID
}

func (h *Handler) posterURL(corporateFilmID string) string {
	return model.PosterURL(h.posterBase, h.posterVersion, corporateFilmID)
}

// fail writes err as {"error": msg} with the status mapped by the upstream
// package: the upstream status for non-2xx answers, 500 for anything else.
func fail(c echo.Context, err error) error {
	status, msg := upstream.HTTPStatus(err)
	return c.JSON(status, echo.Map{"error": msg})
}

// errorMessages renders per-resource failures for view responses.  A nil
// error is omitted.
func errorMessages(errs map[upstream.Resource]error) map[string]string {
	out := make(map[string]string)
	for res, err := range errs {
		if err == nil {
			continue
		}
		_, msg := upstream.HTTPStatus(err)
		out[string(res)] = msg
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// allFailed returns the first failure, in resource order, when every
// resource in order failed.  It returns nil if any of them succeeded.
func allFailed(order []upstream.Resource, errs map[upstream.Resource]error) error {
	for _, res := range order {
		if errs[res] == nil {
			return nil
		}
	}
	if len(order) == 0 {
		return nil
	}
	return errs[order[0]]
}

var _ Source = (*upstream.Client)(nil)

// Health answers liveness probes.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
