package usecase

import (
	"context"

	"leafcare/internal/domain/entity"
	"leafcare/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateCareLogInput represents the input for recording a care action
type CreateCareLogInput struct {
	PlantName string `json:"plantName" validate:"notblank"`
	Type      string `json:"type" validate:"required,oneof=watering fertilizing pruning repotting cleaning other"`
	Date      string `json:"date" validate:"notblank,date"`
	Notes     string `json:"notes" validate:"notblank,max=500"`
	Photo     string `json:"photo,omitempty" validate:"omitempty,photo"`
	Success   *bool  `json:"success" validate:"required"`
}

// UpdateCareLogInput represents a partial care log update.
// PlantName, Type and Date form the log's key and are rejected when present.
type UpdateCareLogInput struct {
	PlantName *string `json:"plantName,omitempty"`
	Type      *string `json:"type,omitempty"`
	Date      *string `json:"date,omitempty"`
	Notes     *string `json:"notes,omitempty" validate:"omitnil,notblank,max=500"`
	Photo     *string `json:"photo,omitempty" validate:"omitnil,photo"`
	Success   *bool   `json:"success,omitempty"`
}

// CareLogUsecase defines the care log use cases
type CareLogUsecase interface {
	CreateLog(ctx context.Context, input *CreateCareLogInput) (*entity.CareLog, error)
	ListLogs(ctx context.Context, filter repository.CareLogFilter) ([]*entity.CareLog, error)
	// ListRecent returns the logs of the configured recent window ending today.
	ListRecent(ctx context.Context) ([]*entity.CareLog, error)
	GetLog(ctx context.Context, id uuid.UUID) (*entity.CareLog, error)
	Stats(ctx context.Context) ([]entity.CareTypeCount, error)
	UpdateLog(ctx context.Context, id uuid.UUID, input *UpdateCareLogInput) (*entity.CareLog, error)
	DeleteLog(ctx context.Context, id uuid.UUID) error
}
