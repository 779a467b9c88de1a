package repository

import (
	"context"

	"leafcare/internal/domain/entity"

	"github.com/google/uuid"
)

// LocationFilter narrows location listings. Empty fields do not filter.
type LocationFilter struct {
	Type     string
	Sunlight string
	Humidity string
}

// LocationRepository defines the persistence operations of the location catalog.
type LocationRepository interface {
	Create(ctx context.Context, location *entity.Location) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)
	// FindByName matches the exact name.
	FindByName(ctx context.Context, name string) (*entity.Location, error)
	FindAll(ctx context.Context, filter LocationFilter) ([]*entity.Location, error)
	Update(ctx context.Context, location *entity.Location) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
	// Stats returns every location with the number of plants kept there.
	Stats(ctx context.Context) ([]entity.LocationStat, error)
}
