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

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler serves the location catalog routes
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// LocationQuery are the filters accepted by GET /locations
type LocationQuery struct {
	Type     string `query:"type" validate:"omitempty,oneof=indoor outdoor balcony garden terrace"`
	Sunlight string `query:"sunlight" validate:"omitempty,oneof=full partial shade"`
	Humidity string `query:"humidity" validate:"omitempty,oneof=low medium high"`
}

// IsEmptyResponse answers GET /locations/:id/is-empty
type IsEmptyResponse struct {
	IsEmpty    bool  `json:"isEmpty"`
	PlantCount int64 `json:"plantCount"`
}

// CreateLocation handles POST /locations
func (h *LocationHandler) CreateLocation(c echo.Context) error {
	var input usecase.CreateLocationInput
	if err := bindBody(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	location, err := h.locationUC.CreateLocation(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, location)
}

// ListLocations handles GET /locations
func (h *LocationHandler) ListLocations(c echo.Context) error {
	var query LocationQuery
	if err := bindQuery(c, &query); err != nil {
		return response.HandleAppError(c, err)
	}

	locations, err := h.locationUC.ListLocations(c.Request().Context(), repository.LocationFilter(query))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, locations)
}

// Stats handles GET /locations/stats
func (h *LocationHandler) Stats(c echo.Context) error {
	stats, err := h.locationUC.Stats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// GetLocation handles GET /locations/:id
func (h *LocationHandler) GetLocation(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	location, err := h.locationUC.GetLocation(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, location)
}

// IsEmpty handles GET /locations/:id/is-empty
func (h *LocationHandler) IsEmpty(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	empty, count, err := h.locationUC.IsEmpty(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, IsEmptyResponse{IsEmpty: empty, PlantCount: count})
}

// UpdateLocation handles PATCH /locations/:id
func (h *LocationHandler) UpdateLocation(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input usecase.UpdateLocationInput
	if err := bindBody(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	location, err := h.locationUC.UpdateLocation(c.Request().Context(), id, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, location)
}

// DeleteLocation handles DELETE /locations/:id
func (h *LocationHandler) DeleteLocation(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.locationUC.DeleteLocation(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
