package repository

import (
	"context"

	"leafcare/internal/domain/entity"

	"github.com/google/uuid"
)

// SpeciesFilter narrows species listings. Empty fields do not filter.
type SpeciesFilter struct {
	LightRequirement string
	WaterFrequency   string
	CareLevel        string
}

// SpeciesRepository defines the persistence operations of the species catalog.
type SpeciesRepository interface {
	Create(ctx context.Context, species *entity.Species) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Species, error)
	// FindByName matches the exact name.
	FindByName(ctx context.Context, name string) (*entity.Species, error)
	FindAll(ctx context.Context, filter SpeciesFilter) ([]*entity.Species, error)
	Update(ctx context.Context, species *entity.Species) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
	// CountBy groups species by one classification column ("light_requirement" or "water_frequency").
	CountBy(ctx context.Context, column string) ([]entity.ValueCount, error)
}
