package usecase

import (
	"context"

	"leafcare/internal/domain/entity"
	"leafcare/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateLocationInput represents the input for adding a location
type CreateLocationInput struct {
	Name        string `json:"name" validate:"notblank,lettersnum,max=100"`
	Type        string `json:"type" validate:"required,oneof=indoor outdoor balcony garden terrace"`
	Sunlight    string `json:"sunlight" validate:"required,oneof=full partial shade"`
	Humidity    string `json:"humidity" validate:"required,oneof=low medium high"`
	Description string `json:"description" validate:"notblank,max=500"`
	Photo       string `json:"photo,omitempty" validate:"omitempty,httpurl"`
}

// UpdateLocationInput represents a partial location update; nil fields are left unchanged
type UpdateLocationInput struct {
	Name        *string `json:"name,omitempty" validate:"omitnil,notblank,lettersnum,max=100"`
	Type        *string `json:"type,omitempty" validate:"omitnil,oneof=indoor outdoor balcony garden terrace"`
	Sunlight    *string `json:"sunlight,omitempty" validate:"omitnil,oneof=full partial shade"`
	Humidity    *string `json:"humidity,omitempty" validate:"omitnil,oneof=low medium high"`
	Description *string `json:"description,omitempty" validate:"omitnil,notblank,max=500"`
	Photo       *string `json:"photo,omitempty" validate:"omitnil,httpurl"`
}

// LocationUsecase defines the location catalog use cases
type LocationUsecase interface {
	CreateLocation(ctx context.Context, input *CreateLocationInput) (*entity.Location, error)
	ListLocations(ctx context.Context, filter repository.LocationFilter) ([]*entity.Location, error)
	GetLocation(ctx context.Context, id uuid.UUID) (*entity.Location, error)
	UpdateLocation(ctx context.Context, id uuid.UUID, input *UpdateLocationInput) (*entity.Location, error)
	// DeleteLocation refuses while any plant is kept in the location.
	DeleteLocation(ctx context.Context, id uuid.UUID) error
	// IsEmpty reports whether no plant is kept in the location, along with the plant count.
	IsEmpty(ctx context.Context, id uuid.UUID) (bool, int64, error)
	Stats(ctx context.Context) ([]entity.LocationStat, error)
}
