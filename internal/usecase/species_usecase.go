package usecase

import (
	"context"

	"leafcare/internal/domain/entity"
	"leafcare/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateSpeciesInput represents the input for adding a species to the catalog
type CreateSpeciesInput struct {
	Name             string `json:"name" validate:"notblank,letters,max=100"`
	CommonName       string `json:"commonName" validate:"notblank,letters,max=100"`
	Description      string `json:"description" validate:"notblank,max=500"`
	CareInstructions string `json:"careInstructions" validate:"notblank,max=500"`
	IdealConditions  string `json:"idealConditions" validate:"notblank,max=500"`
	Photo            string `json:"photo,omitempty" validate:"omitempty,imageuri"`
	LightRequirement string `json:"lightRequirement,omitempty" validate:"omitempty,oneof=low medium high"`
	WaterFrequency   string `json:"waterFrequency,omitempty" validate:"omitempty,oneof=low medium high"`
	CareLevel        string `json:"careLevel,omitempty" validate:"omitempty,oneof=easy moderate hard"`
}

// UpdateSpeciesInput represents a partial species update; nil fields are left unchanged
type UpdateSpeciesInput struct {
	Name             *string `json:"name,omitempty" validate:"omitnil,notblank,letters,max=100"`
	CommonName       *string `json:"commonName,omitempty" validate:"omitnil,notblank,letters,max=100"`
	Description      *string `json:"description,omitempty" validate:"omitnil,notblank,max=500"`
	CareInstructions *string `json:"careInstructions,omitempty" validate:"omitnil,notblank,max=500"`
	IdealConditions  *string `json:"idealConditions,omitempty" validate:"omitnil,notblank,max=500"`
	Photo            *string `json:"photo,omitempty" validate:"omitnil,imageuri"`
	LightRequirement *string `json:"lightRequirement,omitempty" validate:"omitnil,oneof=low medium high"`
	WaterFrequency   *string `json:"waterFrequency,omitempty" validate:"omitnil,oneof=low medium high"`
	CareLevel        *string `json:"careLevel,omitempty" validate:"omitnil,oneof=easy moderate hard"`
}

// SpeciesUsecase defines the species catalog use cases
type SpeciesUsecase interface {
	CreateSpecies(ctx context.Context, input *CreateSpeciesInput) (*entity.Species, error)
	ListSpecies(ctx context.Context, filter repository.SpeciesFilter) ([]*entity.Species, error)
	GetSpecies(ctx context.Context, id uuid.UUID) (*entity.Species, error)
	UpdateSpecies(ctx context.Context, id uuid.UUID, input *UpdateSpeciesInput) (*entity.Species, error)
	// DeleteSpecies refuses while any plant references the species.
	DeleteSpecies(ctx context.Context, id uuid.UUID) error
	// CountPlants returns how many plants reference the species.
	CountPlants(ctx context.Context, id uuid.UUID) (int64, error)
	LightRequirementStats(ctx context.Context) ([]entity.ValueCount, error)
	WaterFrequencyStats(ctx context.Context) ([]entity.ValueCount, error)
	ListEasyCare(ctx context.Context) ([]*entity.Species, error)
}
