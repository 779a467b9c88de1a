package handler

import (
	"log/slog"
	"net/http"

	"leafcare/internal/delivery/api/response"
	"leafcare/internal/domain/repository"
	"leafcare/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CareReminderHandlerParams holds dependencies for CareReminderHandler, injected by Fx.
type CareReminderHandlerParams struct {
	fx.In

	ReminderUC usecase.CareReminderUsecase
	Logger     *slog.Logger
}

// CareReminderHandler serves the care reminder routes
type CareReminderHandler struct {
	reminderUC usecase.CareReminderUsecase
	logger     *slog.Logger
}

// NewCareReminderHandler is the constructor for CareReminderHandler
func NewCareReminderHandler(params CareReminderHandlerParams) *CareReminderHandler {
	return &CareReminderHandler{
		reminderUC: params.ReminderUC,
		logger:     params.Logger,
	}
}

// ReminderQuery are the filters accepted by GET /care-reminders
type ReminderQuery struct {
	PlantID string `query:"plantId" validate:"omitempty,uuid"`
	Type    string `query:"type" validate:"omitempty,oneof=watering fertilizing pruning sunlight other"`
	Active  bool   `query:"active"`
}

// CreateReminder handles POST /care-reminders
func (h *CareReminderHandler) CreateReminder(c echo.Context) error {
	var input usecase.CreateCareReminderInput
	if err := bindBody(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	reminder, err := h.reminderUC.CreateReminder(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, reminder)
}

// ListReminders handles GET /care-reminders
func (h *CareReminderHandler) ListReminders(c echo.Context) error {
	var query ReminderQuery
	if err := bindQuery(c, &query); err != nil {
		return response.HandleAppError(c, err)
	}

	reminders, err := h.reminderUC.ListReminders(c.Request().Context(), repository.CareReminderFilter{
		PlantID:    optionalUUID(query.PlantID),
		Type:       query.Type,
		ActiveOnly: query.Active,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reminders)
}

// ListOverdue handles GET /care-reminders/overdue
func (h *CareReminderHandler) ListOverdue(c echo.Context) error {
	reminders, err := h.reminderUC.ListOverdue(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reminders)
}

// ListUpcoming handles GET /care-reminders/upcoming
func (h *CareReminderHandler) ListUpcoming(c echo.Context) error {
	reminders, err := h.reminderUC.ListUpcoming(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reminders)
}

// ListActive handles GET /care-reminders/active
func (h *CareReminderHandler) ListActive(c echo.Context) error {
	reminders, err := h.reminderUC.ListActive(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reminders)
}

// GetReminder handles GET /care-reminders/:id
func (h *CareReminderHandler) GetReminder(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	reminder, err := h.reminderUC.GetReminder(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reminder)
}

// UpdateReminder handles PATCH /care-reminders/:id
func (h *CareReminderHandler) UpdateReminder(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input usecase.UpdateCareReminderInput
	if err := bindBody(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	reminder, err := h.reminderUC.UpdateReminder(c.Request().Context(), id, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reminder)
}

// MarkDone handles PATCH /care-reminders/:id/mark-done
func (h *CareReminderHandler) MarkDone(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	reminder, err := h.reminderUC.MarkDone(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reminder)
}

// DeleteReminder handles DELETE /care-reminders/:id
func (h *CareReminderHandler) DeleteReminder(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.reminderUC.DeleteReminder(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
