package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"leafcare/internal/delivery/api/response"
	"leafcare/internal/domain/repository"
	"leafcare/internal/errors"
	"leafcare/internal/usecase"
	"leafcare/internal/util"

	"cloud.google.com/go/civil"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CareLogHandlerParams holds dependencies for CareLogHandler, injected by Fx.
type CareLogHandlerParams struct {
	fx.In

	LogUC  usecase.CareLogUsecase
	Logger *slog.Logger
}

// CareLogHandler serves the care log routes
type CareLogHandler struct {
	logUC  usecase.CareLogUsecase
	logger *slog.Logger
}

// NewCareLogHandler is the constructor for CareLogHandler
func NewCareLogHandler(params CareLogHandlerParams) *CareLogHandler {
	return &CareLogHandler{
		logUC:  params.LogUC,
		logger: params.Logger,
	}
}

// CareLogQuery are the filters accepted by GET /care-logs.
// From and To bound the log date inclusively.
type CareLogQuery struct {
	PlantID string `query:"plantId" validate:"omitempty,uuid"`
	Type    string `query:"type" validate:"omitempty,oneof=watering fertilizing pruning repotting cleaning other"`
	Success string `query:"success" validate:"omitempty,oneof=true false"`
	From    string `query:"from" validate:"omitempty,date"`
	To      string `query:"to" validate:"omitempty,date"`
}

func (q CareLogQuery) filter() (repository.CareLogFilter, error) {
	filter := repository.CareLogFilter{
		PlantID: optionalUUID(q.PlantID),
		Type:    q.Type,
	}

	if q.Success != "" {
		success, err := strconv.ParseBool(q.Success)
		if err != nil {
			return filter, errors.WithStack(err)
		}
		filter.Success = &success
	}

	var err error
	if filter.From, err = optionalDate(q.From); err != nil {
		return filter, err
	}
	if filter.To, err = optionalDate(q.To); err != nil {
		return filter, err
	}

	return filter, nil
}

func optionalDate(value string) (civil.Date, error) {
	if value == "" {
		return civil.Date{}, nil
	}

	return util.ParseDate(value)
}

// CreateLog handles POST /care-logs
func (h *CareLogHandler) CreateLog(c echo.Context) error {
	var input usecase.CreateCareLogInput
	if err := bindBody(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	log, err := h.logUC.CreateLog(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, log)
}

// ListLogs handles GET /care-logs
func (h *CareLogHandler) ListLogs(c echo.Context) error {
	var query CareLogQuery
	if err := bindQuery(c, &query); err != nil {
		return response.HandleAppError(c, err)
	}

	filter, err := query.filter()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	logs, err := h.logUC.ListLogs(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, logs)
}

// ListRecent handles GET /care-logs/recent
func (h *CareLogHandler) ListRecent(c echo.Context) error {
	logs, err := h.logUC.ListRecent(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, logs)
}

// Stats handles GET /care-logs/stats
func (h *CareLogHandler) Stats(c echo.Context) error {
	stats, err := h.logUC.Stats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// GetLog handles GET /care-logs/:id
func (h *CareLogHandler) GetLog(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	log, err := h.logUC.GetLog(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, log)
}

// UpdateLog handles PATCH /care-logs/:id
func (h *CareLogHandler) UpdateLog(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input usecase.UpdateCareLogInput
	if err := bindBody(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	log, err := h.logUC.UpdateLog(c.Request().Context(), id, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, log)
}

// DeleteLog handles DELETE /care-logs/:id
func (h *CareLogHandler) DeleteLog(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.logUC.DeleteLog(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
