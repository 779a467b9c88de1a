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

// SpeciesHandlerParams holds dependencies for SpeciesHandler, injected by Fx.
type SpeciesHandlerParams struct {
	fx.In

	SpeciesUC usecase.SpeciesUsecase
	Logger    *slog.Logger
}

// SpeciesHandler serves the species catalog routes
type SpeciesHandler struct {
	speciesUC usecase.SpeciesUsecase
	logger    *slog.Logger
}

// NewSpeciesHandler is the constructor for SpeciesHandler
func NewSpeciesHandler(params SpeciesHandlerParams) *SpeciesHandler {
	return &SpeciesHandler{
		speciesUC: params.SpeciesUC,
		logger:    params.Logger,
	}
}

// SpeciesQuery are the filters accepted by GET /species
type SpeciesQuery struct {
	LightRequirement string `query:"lightRequirement" validate:"omitempty,oneof=low medium high"`
	WaterFrequency   string `query:"waterFrequency" validate:"omitempty,oneof=low medium high"`
	CareLevel        string `query:"careLevel" validate:"omitempty,oneof=easy moderate hard"`
}

// CanRemoveResponse answers GET /species/:id/can-remove
type CanRemoveResponse struct {
	CanRemove  bool  `json:"canRemove"`
	PlantCount int64 `json:"plantCount"`
}

// CreateSpecies handles POST /species
func (h *SpeciesHandler) CreateSpecies(c echo.Context) error {
	var input usecase.CreateSpeciesInput
	if err := bindBody(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	species, err := h.speciesUC.CreateSpecies(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, species)
}

// ListSpecies handles GET /species
func (h *SpeciesHandler) ListSpecies(c echo.Context) error {
	var query SpeciesQuery
	if err := bindQuery(c, &query); err != nil {
		return response.HandleAppError(c, err)
	}

	species, err := h.speciesUC.ListSpecies(c.Request().Context(), repository.SpeciesFilter(query))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, species)
}

// LightRequirementStats handles GET /species/stats/light-requirements
func (h *SpeciesHandler) LightRequirementStats(c echo.Context) error {
	stats, err := h.speciesUC.LightRequirementStats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// WaterFrequencyStats handles GET /species/stats/water-frequency
func (h *SpeciesHandler) WaterFrequencyStats(c echo.Context) error {
	stats, err := h.speciesUC.WaterFrequencyStats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// ListEasyCare handles GET /species/easy-care
func (h *SpeciesHandler) ListEasyCare(c echo.Context) error {
	species, err := h.speciesUC.ListEasyCare(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, species)
}

// GetSpecies handles GET /species/:id
func (h *SpeciesHandler) GetSpecies(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	species, err := h.speciesUC.GetSpecies(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, species)
}

// CanRemove handles GET /species/:id/can-remove
func (h *SpeciesHandler) CanRemove(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	count, err := h.speciesUC.CountPlants(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, CanRemoveResponse{CanRemove: count == 0, PlantCount: count})
}

// UpdateSpecies handles PATCH /species/:id
func (h *SpeciesHandler) UpdateSpecies(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input usecase.UpdateSpeciesInput
	if err := bindBody(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	species, err := h.speciesUC.UpdateSpecies(c.Request().Context(), id, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, species)
}

// DeleteSpecies handles DELETE /species/:id
func (h *SpeciesHandler) DeleteSpecies(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.speciesUC.DeleteSpecies(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
