package repository

import (
	"context"

	"leafcare/internal/domain/entity"

	"github.com/google/uuid"
)

// PlantFilter narrows plant listings. Zero values do not filter.
type PlantFilter struct {
	SpeciesID    uuid.UUID
	LocationID   uuid.UUID
	HealthStatus string
}

// PlantRepository defines the persistence operations of the plant registry.
// Reads return plants with Species and Location populated.
type PlantRepository interface {
	Create(ctx context.Context, plant *entity.Plant) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Plant, error)
	FindAll(ctx context.Context, filter PlantFilter) ([]*entity.Plant, error)
	// FindByNameFold matches the whole name ignoring case.
	FindByNameFold(ctx context.Context, name string) (*entity.Plant, error)
	// FindByNameContains matches a case-insensitive substring of the name.
	FindByNameContains(ctx context.Context, fragment string) (*entity.Plant, error)
	Update(ctx context.Context, plant *entity.Plant) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) (int64, error)
	CountBySpecies(ctx context.Context, speciesID uuid.UUID) (int64, error)
	CountByLocation(ctx context.Context, locationID uuid.UUID) (int64, error)
}
