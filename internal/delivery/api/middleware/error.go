// Package middleware holds the API-specific echo error handler.
package middleware

import (
	"log/slog"
	"net/http"

	"leafcare/internal/delivery/api/response"
	deliverycontext "leafcare/internal/delivery/context"
	domainerrors "leafcare/internal/domain/errors"
	"leafcare/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logUnhandled(c, err)
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		_ = response.Error(c, httpErr.Code, httpErrorCode(httpErr.Code), http.StatusText(httpErr.Code), httpErrorDetails(httpErr))

		return
	}

	m.logUnhandled(c, err)
	_ = response.InternalServerError(c)
}

func (m *ErrorMiddleware) logUnhandled(c echo.Context, err error) {
	ctx := c.Request().Context()
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).ErrorContext(ctx, "Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}

func httpErrorCode(status int) string {
	switch status {
	case http.StatusNotFound:
		return domainerrors.ErrNotFound.ErrorCode()
	case http.StatusBadRequest, http.StatusRequestEntityTooLarge, http.StatusUnsupportedMediaType:
		return domainerrors.ErrValidationFailed.ErrorCode()
	case http.StatusConflict:
		return domainerrors.ErrConflict.ErrorCode()
	default:
		if status >= http.StatusInternalServerError {
			return domainerrors.ErrInternalError.ErrorCode()
		}

		return "HTTP_ERROR"
	}
}

func httpErrorDetails(httpErr *echo.HTTPError) string {
	if msg, ok := httpErr.Message.(string); ok && msg != http.StatusText(httpErr.Code) {
		return msg
	}

	return ""
}
