package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRole guards the admin-only property and user management routes.
// It runs after RequireAuth, which put the caller's role on the context.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			currentRole, ok := RoleFromContext(c)
			if !ok || currentRole != role {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
