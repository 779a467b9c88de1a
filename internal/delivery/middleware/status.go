// Package middleware holds the echo middleware shared by every route.
package middleware

import (
	"net/http"

	domainerrors "leafcare/internal/domain/errors"
	"leafcare/internal/errors"

	"github.com/labstack/echo/v4"
)

// responseStatus predicts the status the error handler will write for err.
// Middleware runs before the error handler, so res.Status is still 200 for failed requests.
func responseStatus(c echo.Context, err error) int {
	if err == nil {
		return c.Response().Status
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
