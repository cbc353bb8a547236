package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/clinicore/user-system/internal/core/domain"
)

// RBAC enforces that the role resolved by Auth is in the route's allowed set.
// The allowed set is plain per-route data; the check itself is stateless.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(string)
			if _, ok := allowed[role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
