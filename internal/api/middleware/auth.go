package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/clinicore/user-system/internal/api/metrics"
	"github.com/clinicore/user-system/internal/core/domain"
	"github.com/clinicore/user-system/internal/core/service"
)

// Context keys for claims resolved by the Auth middleware.
const (
	CtxUserID = "user_id"
	CtxEmail  = "email"
	CtxRole   = "role"
)

// Auth validates the bearer token and injects the resolved claims into the
// request context. All failure kinds respond 401; the distinct reasons feed
// logs and metrics only.
func Auth(tokens *service.TokenService, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokensRejectedTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokensRejectedTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				metrics.TokensRejectedTotal.WithLabelValues(rejectionReason(err)).Inc()
				log.Debug().Err(err).Str("path", c.Path()).Msg("token rejected")
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(CtxUserID, claims.Subject)
			c.Set(CtxEmail, claims.Email)
			c.Set(CtxRole, string(claims.Role))

			return next(c)
		}
	}
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrTokenSignatureInvalid):
		return "signature"
	default:
		return "malformed"
	}
}
