package impl

import (
	"context"
	"strings"

	"leafcare/internal/domain/entity"
	domainerrors "leafcare/internal/domain/errors"
	"leafcare/internal/domain/repository"
	"leafcare/internal/errors"
	"leafcare/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type speciesService struct {
	speciesRepo repository.SpeciesRepository
	plantRepo   repository.PlantRepository
}

// SpeciesServiceParams holds dependencies for SpeciesService, injected by Fx.
type SpeciesServiceParams struct {
	fx.In

	SpeciesRepo repository.SpeciesRepository
	PlantRepo   repository.PlantRepository
}

// NewSpeciesService creates a new species service instance
func NewSpeciesService(params SpeciesServiceParams) usecase.SpeciesUsecase {
	return &speciesService{
		speciesRepo: params.SpeciesRepo,
		plantRepo:   params.PlantRepo,
	}
}

// CreateSpecies adds a new species to the catalog
func (s *speciesService) CreateSpecies(ctx context.Context, input *usecase.CreateSpeciesInput) (*entity.Species, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	species := &entity.Species{
		Name:             strings.TrimSpace(input.Name),
		CommonName:       strings.TrimSpace(input.CommonName),
		Description:      input.Description,
		CareInstructions: input.CareInstructions,
		IdealConditions:  input.IdealConditions,
		Photo:            input.Photo,
		LightRequirement: input.LightRequirement,
		WaterFrequency:   input.WaterFrequency,
		CareLevel:        input.CareLevel,
	}

	if err := s.ensureNameFree(ctx, species.Name, uuid.Nil); err != nil {
		return nil, err
	}

	if err := s.speciesRepo.Create(ctx, species); err != nil {
		return nil, writeError(err, "failed to create species", "species %q already exists", species.Name)
	}

	return species, nil
}

// ListSpecies retrieves species matching the filter
func (s *speciesService) ListSpecies(ctx context.Context, filter repository.SpeciesFilter) ([]*entity.Species, error) {
	species, err := s.speciesRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, domainerrors.Unexpected(err, "failed to list species")
	}

	return species, nil
}

// GetSpecies retrieves a species by ID
func (s *speciesService) GetSpecies(ctx context.Context, id uuid.UUID) (*entity.Species, error) {
	species, err := s.speciesRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "failed to find species", "species %s not found", id)
	}

	return species, nil
}

// UpdateSpecies updates an existing species
func (s *speciesService) UpdateSpecies(ctx context.Context, id uuid.UUID, input *usecase.UpdateSpeciesInput) (*entity.Species, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	species, err := s.GetSpecies(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name != species.Name {
			if err := s.ensureNameFree(ctx, name, species.ID); err != nil {
				return nil, err
			}
		}
		species.Name = name
	}
	if input.CommonName != nil {
		species.CommonName = strings.TrimSpace(*input.CommonName)
	}
	if input.Description != nil {
		species.Description = *input.Description
	}
	if input.CareInstructions != nil {
		species.CareInstructions = *input.CareInstructions
	}
	if input.IdealConditions != nil {
		species.IdealConditions = *input.IdealConditions
	}
	if input.Photo != nil {
		species.Photo = *input.Photo
	}
	if input.LightRequirement != nil {
		species.LightRequirement = *input.LightRequirement
	}
	if input.WaterFrequency != nil {
		species.WaterFrequency = *input.WaterFrequency
	}
	if input.CareLevel != nil {
		species.CareLevel = *input.CareLevel
	}

	if err := s.speciesRepo.Update(ctx, species); err != nil {
		return nil, writeError(err, "failed to update species", "species %q already exists", species.Name)
	}

	return s.GetSpecies(ctx, id)
}

// DeleteSpecies removes a species that no plant uses
func (s *speciesService) DeleteSpecies(ctx context.Context, id uuid.UUID) error {
	species, err := s.GetSpecies(ctx, id)
	if err != nil {
		return err
	}

	count, err := s.plantRepo.CountBySpecies(ctx, id)
	if err != nil {
		return domainerrors.Unexpected(err, "failed to count plants of species")
	}
	if count > 0 {
		return errors.WithStack(domainerrors.Conflict(
			"species %q cannot be removed: %d plant(s) still reference it", species.Name, count))
	}

	if err := s.speciesRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrReferenced) {
			return errors.WithStack(domainerrors.Conflict("species %q cannot be removed: plants still reference it", species.Name))
		}

		return lookupError(err, "failed to delete species", "species %s not found", id)
	}

	return nil
}

// CountPlants counts the plants of a species
func (s *speciesService) CountPlants(ctx context.Context, id uuid.UUID) (int64, error) {
	if _, err := s.GetSpecies(ctx, id); err != nil {
		return 0, err
	}

	count, err := s.plantRepo.CountBySpecies(ctx, id)
	if err != nil {
		return 0, domainerrors.Unexpected(err, "failed to count plants of species")
	}

	return count, nil
}

// LightRequirementStats counts species per light requirement
func (s *speciesService) LightRequirementStats(ctx context.Context) ([]entity.ValueCount, error) {
	return s.countBy(ctx, "light_requirement")
}

// WaterFrequencyStats counts species per watering frequency
func (s *speciesService) WaterFrequencyStats(ctx context.Context) ([]entity.ValueCount, error) {
	return s.countBy(ctx, "water_frequency")
}

func (s *speciesService) countBy(ctx context.Context, column string) ([]entity.ValueCount, error) {
	counts, err := s.speciesRepo.CountBy(ctx, column)
	if err != nil {
		return nil, domainerrors.Unexpected(err, "failed to compute species stats")
	}

	return counts, nil
}

// ListEasyCare retrieves species with an easy care level
func (s *speciesService) ListEasyCare(ctx context.Context) ([]*entity.Species, error) {
	return s.ListSpecies(ctx, repository.SpeciesFilter{CareLevel: entity.CareLevelEasy})
}

// ensureNameFree fails with CONFLICT when another species already uses name.
func (s *speciesService) ensureNameFree(ctx context.Context, name string, self uuid.UUID) error {
	existing, err := s.speciesRepo.FindByName(ctx, name)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return nil
	case err != nil:
		return domainerrors.Unexpected(err, "failed to check species name")
	case existing.ID != self:
		return errors.WithStack(domainerrors.Conflict("species %q already exists", name))
	default:
		return nil
	}
}
