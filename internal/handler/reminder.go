package handler

import (
	"context"
	"errors"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinema-billboard/internal/metrics"
	"github.com/iliyamo/cinema-billboard/internal/model"
	"github.com/iliyamo/cinema-billboard/internal/queue"
)

// ReminderPublisher hands a release reminder request to the broker.
// *service.ReminderPublisher satisfies it.
type ReminderPublisher interface {
	PublishReminder(ctx context.Context, ev queue.ReleaseReminderRequested) error
}

var (
	// ErrMissingFilm is returned when the request has no corporate film id.
	ErrMissingFilm = errors.New("corporate_film_id es requerido")
	// ErrInvalidEmail is returned when the email does not parse as an address.
	ErrInvalidEmail = errors.New("email no válido")
	// ErrFilmNotListed is returned when the film is not in the coming-soon feed.
	ErrFilmNotListed = errors.New("la película no figura en próximos estrenos")
)

// ReminderRequest is the POST /api/reminders body.
type ReminderRequest struct {
	CorporateFilmID string `json:"corporate_film_id"`
	Email           string `json:"email"`
}

// Validate trims the fields and checks them.  The email is normalised to
// its bare address.
func (r *ReminderRequest) Validate() error {
	r.CorporateFilmID = strings.TrimSpace(r.CorporateFilmID)
	if r.CorporateFilmID == "" {
		return ErrMissingFilm
	}
	addr, err := mail.ParseAddress(strings.TrimSpace(r.Email))
	if err != nil {
		return ErrInvalidEmail
	}
	r.Email = strings.ToLower(addr.Address)
	return nil
}

// CreateReminder queues a "remind me on release" request for a coming-soon
// title.  The title must be present in the coming-soon feed.
func (h *Handler) CreateReminder(c echo.Context) error {
	if h.reminders == nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "Recordatorios no disponibles"})
	}

	var req ReminderRequest
	if err := c.Bind(&req); err != nil {
		metrics.Reminders.WithLabelValues("invalid").Inc()
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Solicitud no válida"})
	}
	if err := req.Validate(); err != nil {
		metrics.Reminders.WithLabelValues("invalid").Inc()
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx := c.Request().Context()
	movies, err := h.src.ComingSoonMovies(ctx)
	if err != nil {
		metrics.Reminders.WithLabelValues("failed").Inc()
		return fail(c, err)
	}
	ev := queue.ReleaseReminderRequested{
		CorporateFilmID: req.CorporateFilmID,
		Email:           req.Email,
		RequestedAt:     h.now().UTC().Format(time.RFC3339),
	}
	found := false
	for _, m := range movies {
		if m.CorporateFilmID == req.CorporateFilmID {
			ev.Title = model.FromComingSoon(m).Title()
			ev.OpeningDate = m.OpeningDate
			found = true
			break
		}
	}
	if !found {
		metrics.Reminders.WithLabelValues("invalid").Inc()
		return c.JSON(http.StatusNotFound, echo.Map{"error": ErrFilmNotListed.Error()})
	}

	if err := h.reminders.PublishReminder(ctx, ev); err != nil {
		metrics.Reminders.WithLabelValues("failed").Inc()
		h.log.WithError(err).WithField("corporate_film_id", ev.CorporateFilmID).Error("publish reminder failed")
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "No se pudo registrar el recordatorio"})
	}
	metrics.Reminders.WithLabelValues("queued").Inc()
	return c.JSON(http.StatusAccepted, echo.Map{
		"status":            "queued",
		"corporate_film_id": ev.CorporateFilmID,
		"title":             ev.Title,
	})
}
