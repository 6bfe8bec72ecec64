package upstream

import (
	"errors"
	"fmt"
	"net/http"
)

// MsgInternal is the body message returned for any local failure while
// talking to the upstream API.
const MsgInternal = "Error interno del servidor"

// Resource names one of the upstream feeds.  Each carries the Spanish
// message surfaced to clients when the upstream answers with a non-2xx.
type Resource string

const (
	ResourceBillboard  Resource = "billboard"
	ResourceComingSoon Resource = "coming_soon"
	ResourceTheatres   Resource = "theatres"
)

// FailureMessage returns the localized message for a failed fetch of r.
func (r Resource) FailureMessage() string {
	switch r {
	case ResourceBillboard:
		return "Error al obtener datos de la cartelera"
	case ResourceComingSoon:
		return "Error al obtener datos de próximos estrenos"
	case ResourceTheatres:
		return "Error al obtener datos de cines"
	}
	return MsgInternal
}

// UpstreamError is returned when the upstream API answers with a non-2xx
// status.  StatusCode is passed through to the client unchanged.
type UpstreamError struct {
	Resource   Resource
	StatusCode int
	Message    string
	Body       string
}

// Error implements error.
func (e *UpstreamError) Error() string {
	if e == nil {
		return "upstream error"
	}
	return fmt.Sprintf("upstream %s: status %d: %s", e.Resource, e.StatusCode, e.Message)
}

// InternalError wraps transport and decoding failures.
type InternalError struct {
	Resource Resource
	Err      error
}

// Error implements error.
func (e *InternalError) Error() string {
	if e == nil {
		return "internal error"
	}
	return fmt.Sprintf("upstream %s: %v", e.Resource, e.Err)
}

// Unwrap returns the underlying cause.
func (e *InternalError) Unwrap() error { return e.Err }

// HTTPStatus maps an error from this package to the status and message a
// handler should answer with.
func HTTPStatus(err error) (int, string) {
	var up *UpstreamError
	if errors.As(err, &up) {
		return up.StatusCode, up.Message
	}
	return http.StatusInternalServerError, MsgInternal
}

// IsUpstream reports whether err came from a non-2xx upstream response.
func IsUpstream(err error) bool {
	var up *UpstreamError
	return errors.As(err, &up)
}
