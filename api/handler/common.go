package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"jobhunt/internal/service"

	"github.com/labstack/echo/v4"
)

func decodeJSON(c echo.Context, target any) error {
	decoder := json.NewDecoder(c.Request().Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(target)
}

func writeError(c echo.Context, status int, err error) error {
	return c.JSON(status, map[string]string{"message": err.Error()})
}

// writeServiceError maps service sentinel errors onto the wire contract:
// business-rule failures are 400, an unverified login is 401, a missing job
// is 404, everything else is a 500 with a generic body.
func writeServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken),
		errors.Is(err, service.ErrInvalidOTP),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrAlreadyVerified),
		errors.Is(err, service.ErrPasswordMismatch),
		errors.Is(err, service.ErrJobAlreadySaved):
		return writeError(c, http.StatusBadRequest, err)
	case errors.Is(err, service.ErrNotVerified):
		return writeError(c, http.StatusUnauthorized, err)
	case errors.Is(err, service.ErrJobNotFound):
		return writeError(c, http.StatusNotFound, err)
	}
	c.Logger().Error(err)
	return writeError(c, http.StatusInternalServerError, errors.New("something went wrong"))
}

func parsePageLimit(c echo.Context) (int, int) {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return page, limit
}

func stringPtr(value string) *string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return &value
}
