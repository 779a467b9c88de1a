package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"leafcare/config"
	"leafcare/internal/delivery/api/response"
	domainerrors "leafcare/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const pingTimeout = 2 * time.Second

// Pinger reports whether the backing store is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	Config *config.Config
	DB     Pinger
	Logger *slog.Logger
}

// HealthHandler serves the liveness endpoints
type HealthHandler struct {
	service string
	db      Pinger
	logger  *slog.Logger
}

// HealthResponse is the body of GET / and GET /health
type HealthResponse struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Database string `json:"database,omitempty"`
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{
		service: params.Config.Env.ServiceName,
		db:      params.DB,
		logger:  params.Logger,
	}
}

// Root handles GET /
func (h *HealthHandler) Root(c echo.Context) error {
	return response.Success(c, http.StatusOK, HealthResponse{Status: "ok", Service: h.service})
}

// Health handles GET /health and pings the database
func (h *HealthHandler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), pingTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Error("Database ping failed", slog.Any("error", err))

		return response.HandleAppError(c, domainerrors.ErrServiceUnavailable)
	}

	return response.Success(c, http.StatusOK, HealthResponse{Status: "ok", Service: h.service, Database: "up"})
}
