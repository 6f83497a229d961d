package middleware

import (
	"net/http"

	"jobhunt/internal/repository"
	"jobhunt/internal/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const SessionCookieName = "token"

// AuthMiddleware validates the session cookie and resolves the account it
// names. Handlers downstream see the account via the request context, with
// the password hash stripped.
type AuthMiddleware struct {
	JWT   *utils.JWTManager
	Users repository.UserRepository
}

func (m AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.JWT == nil || m.Users == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "not authorized, no token")
		}
		cookie, err := c.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "not authorized, no token")
		}
		claims, err := m.JWT.ParseSessionToken(cookie.Value)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "not authorized, invalid token")
		}
		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "not authorized, invalid token")
		}
		user, err := m.Users.FindByID(c.Request().Context(), userID)
		if err != nil || user == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "not authorized, invalid token")
		}
		user.PasswordHash = ""
		SetAuthContext(c, user)
		return next(c)
	}
}
