package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"leafcare/config"
	deliverycontext "leafcare/internal/delivery/context"
	domainerrors "leafcare/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mw := NewRequestIDMiddleware(logger)

	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{name: "client id kept", header: "client-123", wantSame: true},
		{name: "missing id generated"},
		{name: "oversized id replaced", header: string(bytes.Repeat([]byte("x"), maxRequestIDLength+1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/plants", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seen string
			err := mw.Process(func(c echo.Context) error {
				seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				assert.NotNil(t, deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil))

				return nil
			})(c)
			require.NoError(t, err)

			assert.NotEmpty(t, seen)
			assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
			assert.Equal(t, seen, deliverycontext.GetRequestID(c))
			if tt.wantSame {
				assert.Equal(t, tt.header, seen)
			} else {
				assert.NotEqual(t, tt.header, seen)
			}
		})
	}
}

func TestLoggerMiddleware_LevelFollowsStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	mw := NewLoggerMiddleware(logger, &config.Config{})

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/care-logs", nil), httptest.NewRecorder())
	c.SetPath("/care-logs")

	appErr := domainerrors.Conflict("duplicate")
	err := mw.Handle(func(echo.Context) error { return appErr })(c)
	assert.Equal(t, appErr, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, float64(http.StatusConflict), entry["status"])
	assert.Equal(t, "/care-logs", entry["route"])
}

func TestLoggerMiddleware_QuietHealthChecks(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	mw := NewLoggerMiddleware(logger, &config.Config{})

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), httptest.NewRecorder())
	c.SetPath("/health")

	require.NoError(t, mw.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c))
	assert.Empty(t, buf.String())
}

func TestMetricsMiddleware(t *testing.T) {
	registry := prometheus.NewRegistry()
	mw := NewMetricsMiddleware(registry)

	e := echo.New()
	e.Use(mw.Handle)
	e.GET("/species/:id", func(c echo.Context) error {
		if c.Param("id") == "missing" {
			return domainerrors.NotFound("species missing not found")
		}

		return c.NoContent(http.StatusOK)
	})

	for _, path := range []string{"/species/a", "/species/b", "/species/missing"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(mw.requests.WithLabelValues(http.MethodGet, "/species/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(mw.requests.WithLabelValues(http.MethodGet, "/species/:id", "404")))
}
