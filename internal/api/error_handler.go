package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/clinicore/user-system/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
// Details carries diagnostic information and is only populated outside
// production configurations.
type errorResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
	Details   any       `json:"details,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps the core's failure kinds to their HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the uniform envelope {status, message, path, timestamp, details?}.
func NewHTTPErrorHandler(log zerolog.Logger, includeDetails bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)

		resp := errorResponse{
			Status:    "failed",
			Message:   msg,
			Path:      c.Request().URL.Path,
			Timestamp: time.Now().UTC(),
		}
		if includeDetails {
			resp.Details = map[string]string{"error": err.Error()}
		}
		_ = c.JSON(code, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	var dup *domain.DuplicateKeyError
	if errors.As(err, &dup) {
		return http.StatusConflict, dup.Error()
	}

	// Known failure kinds → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, domain.ErrInvalidCredentials.Error()
	case errors.Is(err, domain.ErrTokenMalformed),
		errors.Is(err, domain.ErrTokenSignatureInvalid),
		errors.Is(err, domain.ErrTokenExpired):
		return http.StatusUnauthorized, "invalid token"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, domain.ErrBadRequest):
		return http.StatusBadRequest, err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "An unexpected error occurred"
}
