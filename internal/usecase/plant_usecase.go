package usecase

import (
	"context"

	"leafcare/internal/domain/entity"
	"leafcare/internal/domain/repository"

	"github.com/google/uuid"
)

// CreatePlantInput represents the input for registering a plant.
// Species and location are referenced by their exact catalog names.
type CreatePlantInput struct {
	Name         string `json:"name" validate:"notblank,letters,max=100"`
	SpeciesName  string `json:"speciesName" validate:"notblank"`
	LocationName string `json:"locationName" validate:"notblank"`
	PurchaseDate string `json:"purchaseDate" validate:"notblank,date"`
	Notes        string `json:"notes" validate:"notblank,max=500"`
	Photo        string `json:"photo,omitempty" validate:"omitempty,photo"`
	HealthStatus string `json:"healthStatus,omitempty" validate:"omitempty,oneof=healthy needs_care sick"`
}

// UpdatePlantInput represents a partial plant update; nil fields are left unchanged
type UpdatePlantInput struct {
	Name         *string `json:"name,omitempty" validate:"omitnil,notblank,letters,max=100"`
	SpeciesName  *string `json:"speciesName,omitempty" validate:"omitnil,notblank"`
	LocationName *string `json:"locationName,omitempty" validate:"omitnil,notblank"`
	PurchaseDate *string `json:"purchaseDate,omitempty" validate:"omitnil,notblank,date"`
	Notes        *string `json:"notes,omitempty" validate:"omitnil,notblank,max=500"`
	Photo        *string `json:"photo,omitempty" validate:"omitnil,photo"`
	HealthStatus *string `json:"healthStatus,omitempty" validate:"omitnil,oneof=healthy needs_care sick"`
}

// ResetResult reports how many rows RemoveAll deleted.
type ResetResult struct {
	Reminders int64 `json:"reminders"`
	Logs      int64 `json:"logs"`
	Plants    int64 `json:"plants"`
}

// PlantUsecase defines the plant registry use cases
type PlantUsecase interface {
	CreatePlant(ctx context.Context, input *CreatePlantInput) (*entity.Plant, error)
	ListPlants(ctx context.Context, filter repository.PlantFilter) ([]*entity.Plant, error)
	GetPlant(ctx context.Context, id uuid.UUID) (*entity.Plant, error)
	// FindByName resolves a human-entered plant name; it returns nil, nil when nothing matches.
	FindByName(ctx context.Context, name string) (*entity.Plant, error)
	UpdatePlant(ctx context.Context, id uuid.UUID, input *UpdatePlantInput) (*entity.Plant, error)
	// DeletePlant removes the plant together with its reminders and logs.
	DeletePlant(ctx context.Context, id uuid.UUID) error
	// RemoveAll deletes every reminder, log and plant in one transaction.
	RemoveAll(ctx context.Context) (*ResetResult, error)
	// PlantLabel renders the printable QR label of a plant as PNG.
	PlantLabel(ctx context.Context, id uuid.UUID) ([]byte, error)
}
