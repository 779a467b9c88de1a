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

type locationService struct {
	locationRepo repository.LocationRepository
	plantRepo    repository.PlantRepository
}

// LocationServiceParams holds dependencies for LocationService, injected by Fx.
type LocationServiceParams struct {
	fx.In

	LocationRepo repository.LocationRepository
	PlantRepo    repository.PlantRepository
}

// NewLocationService creates a new location service instance
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	return &locationService{
		locationRepo: params.LocationRepo,
		plantRepo:    params.PlantRepo,
	}
}

// CreateLocation adds a new location
func (s *locationService) CreateLocation(ctx context.Context, input *usecase.CreateLocationInput) (*entity.Location, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	location := &entity.Location{
		Name:        strings.TrimSpace(input.Name),
		Type:        input.Type,
		Sunlight:    input.Sunlight,
		Humidity:    input.Humidity,
		Description: input.Description,
		Photo:       input.Photo,
	}

	if err := s.ensureNameFree(ctx, location.Name, uuid.Nil); err != nil {
		return nil, err
	}

	if err := s.locationRepo.Create(ctx, location); err != nil {
		return nil, writeError(err, "failed to create location", "location %q already exists", location.Name)
	}

	return location, nil
}

// ListLocations retrieves locations matching the filter
func (s *locationService) ListLocations(ctx context.Context, filter repository.LocationFilter) ([]*entity.Location, error) {
	locations, err := s.locationRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, domainerrors.Unexpected(err, "failed to list locations")
	}

	return locations, nil
}

// GetLocation retrieves a location by ID
func (s *locationService) GetLocation(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	location, err := s.locationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "failed to find location", "location %s not found", id)
	}

	return location, nil
}

// UpdateLocation updates an existing location
func (s *locationService) UpdateLocation(ctx context.Context, id uuid.UUID, input *usecase.UpdateLocationInput) (*entity.Location, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	location, err := s.GetLocation(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name != location.Name {
			if err := s.ensureNameFree(ctx, name, location.ID); err != nil {
				return nil, err
			}
		}
		location.Name = name
	}
	if input.Type != nil {
		location.Type = *input.Type
	}
	if input.Sunlight != nil {
		location.Sunlight = *input.Sunlight
	}
	if input.Humidity != nil {
		location.Humidity = *input.Humidity
	}
	if input.Description != nil {
		location.Description = *input.Description
	}
	if input.Photo != nil {
		location.Photo = *input.Photo
	}

	if err := s.locationRepo.Update(ctx, location); err != nil {
		return nil, writeError(err, "failed to update location", "location %q already exists", location.Name)
	}

	return s.GetLocation(ctx, id)
}

// DeleteLocation removes a location that holds no plants
func (s *locationService) DeleteLocation(ctx context.Context, id uuid.UUID) error {
	location, err := s.GetLocation(ctx, id)
	if err != nil {
		return err
	}

	count, err := s.plantRepo.CountByLocation(ctx, id)
	if err != nil {
		return domainerrors.Unexpected(err, "failed to count plants in location")
	}
	if count > 0 {
		return errors.WithStack(domainerrors.Conflict(
			"location %q cannot be removed: %d plant(s) are kept there", location.Name, count))
	}

	if err := s.locationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrReferenced) {
			return errors.WithStack(domainerrors.Conflict("location %q cannot be removed: plants are kept there", location.Name))
		}

		return lookupError(err, "failed to delete location", "location %s not found", id)
	}

	return nil
}

// IsEmpty reports whether a location holds no plants, with the plant count
func (s *locationService) IsEmpty(ctx context.Context, id uuid.UUID) (bool, int64, error) {
	if _, err := s.GetLocation(ctx, id); err != nil {
		return false, 0, err
	}

	count, err := s.plantRepo.CountByLocation(ctx, id)
	if err != nil {
		return false, 0, domainerrors.Unexpected(err, "failed to count plants in location")
	}

	return count == 0, count, nil
}

// Stats retrieves the plant count of every location
func (s *locationService) Stats(ctx context.Context) ([]entity.LocationStat, error) {
	stats, err := s.locationRepo.Stats(ctx)
	if err != nil {
		return nil, domainerrors.Unexpected(err, "failed to compute location stats")
	}

	return stats, nil
}

// ensureNameFree fails with CONFLICT when another location already uses name.
func (s *locationService) ensureNameFree(ctx context.Context, name string, self uuid.UUID) error {
	existing, err := s.locationRepo.FindByName(ctx, name)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return nil
	case err != nil:
		return domainerrors.Unexpected(err, "failed to check location name")
	case existing.ID != self:
		return errors.WithStack(domainerrors.Conflict("location %q already exists", name))
	default:
		return nil
	}
}
