package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GetBillboard proxies the billboard for ?cinema_id (default theatre when
// absent).  The upstream body is returned byte for byte.
func (h *Handler) GetBillboard(c echo.Context) error {
	raw, err := h.src.Billboard(c.Request().Context(), h.cinemaID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSONBlob(http.StatusOK, raw)
}

// GetComingSoon proxies the coming-soon feed.
func (h *Handler) GetComingSoon(c echo.Context) error {
	raw, err := h.src.ComingSoon(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSONBlob(http.StatusOK, raw)
}

// GetTheatres proxies the theatre directory.
func (h *Handler) GetTheatres(c echo.Context) error {
	raw, err := h.src.Theatres(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSONBlob(http.StatusOK, raw)
}
