package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireAdmin must run after RequireAuth.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := UserFromContext(c)
		if !ok || !user.IsAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "admin access only")
		}
		return next(c)
	}
}
