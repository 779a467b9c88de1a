package handler

import (
	"log/slog"
	"net/http"

	"leafcare/internal/delivery/api/response"
	domainerrors "leafcare/internal/domain/errors"
	"leafcare/internal/domain/repository"
	"leafcare/internal/errors"
	"leafcare/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PlantHandlerParams holds dependencies for PlantHandler, injected by Fx.
type PlantHandlerParams struct {
	fx.In

	PlantUC usecase.PlantUsecase
	Logger  *slog.Logger
}

// PlantHandler serves the plant registry routes
type PlantHandler struct {
	plantUC usecase.PlantUsecase
	logger  *slog.Logger
}

// NewPlantHandler is the constructor for PlantHandler
func NewPlantHandler(params PlantHandlerParams) *PlantHandler {
	return &PlantHandler{
		plantUC: params.PlantUC,
		logger:  params.Logger,
	}
}

// PlantQuery are the filters accepted by GET /plants
type PlantQuery struct {
	HealthStatus string `query:"healthStatus" validate:"omitempty,oneof=healthy needs_care sick"`
}

// PlantSearchQuery is the query of GET /plants/search
type PlantSearchQuery struct {
	Name string `query:"name" validate:"notblank"`
}

// CreatePlant handles POST /plants
func (h *PlantHandler) CreatePlant(c echo.Context) error {
	var input usecase.CreatePlantInput
	if err := bindBody(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	plant, err := h.plantUC.CreatePlant(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, plant)
}

// ListPlants handles GET /plants
func (h *PlantHandler) ListPlants(c echo.Context) error {
	var query PlantQuery
	if err := bindQuery(c, &query); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.list(c, repository.PlantFilter{HealthStatus: query.HealthStatus})
}

// ListByLocation handles GET /plants/location/:locationId
func (h *PlantHandler) ListByLocation(c echo.Context) error {
	id, err := pathID(c, "locationId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.list(c, repository.PlantFilter{LocationID: id})
}

// ListBySpecies handles GET /plants/species/:speciesId
func (h *PlantHandler) ListBySpecies(c echo.Context) error {
	id, err := pathID(c, "speciesId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.list(c, repository.PlantFilter{SpeciesID: id})
}

func (h *PlantHandler) list(c echo.Context, filter repository.PlantFilter) error {
	plants, err := h.plantUC.ListPlants(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, plants)
}

// SearchByName handles GET /plants/search?name=
func (h *PlantHandler) SearchByName(c echo.Context) error {
	var query PlantSearchQuery
	if err := bindQuery(c, &query); err != nil {
		return response.HandleAppError(c, err)
	}

	plant, err := h.plantUC.FindByName(c.Request().Context(), query.Name)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if plant == nil {
		return response.HandleAppError(c, errors.WithStack(domainerrors.NotFound("no plant matches %q", query.Name)))
	}

	return response.Success(c, http.StatusOK, plant)
}

// GetPlant handles GET /plants/:id
func (h *PlantHandler) GetPlant(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	plant, err := h.plantUC.GetPlant(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, plant)
}

// PlantLabel handles GET /plants/:id/qr
func (h *PlantHandler) PlantLabel(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.plantUC.PlantLabel(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `inline; filename="`+labelFilename(id)+`"`)

	return c.Blob(http.StatusOK, "image/png", png)
}

// UpdatePlant handles PATCH /plants/:id
func (h *PlantHandler) UpdatePlant(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input usecase.UpdatePlantInput
	if err := bindBody(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	plant, err := h.plantUC.UpdatePlant(c.Request().Context(), id, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, plant)
}

// DeletePlant handles DELETE /plants/:id
func (h *PlantHandler) DeletePlant(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.plantUC.DeletePlant(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

func labelFilename(id uuid.UUID) string {
	return "plant-" + id.String() + ".png"
}
