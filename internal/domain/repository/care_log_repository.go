package repository

import (
	"context"

	"leafcare/internal/domain/entity"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

// CareLogFilter narrows care log listings. Zero values do not filter; From and To are inclusive.
type CareLogFilter struct {
	PlantID uuid.UUID
	Type    string
	Success *bool
	From    civil.Date
	To      civil.Date
}

// CareLogRepository defines the persistence operations for care logs.
// Listings are ordered by date descending.
type CareLogRepository interface {
	Create(ctx context.Context, log *entity.CareLog) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CareLog, error)
	// FindByKey looks up the log holding the composite key.
	FindByKey(ctx context.Context, plantID uuid.UUID, careType string, date civil.Date) (*entity.CareLog, error)
	FindAll(ctx context.Context, filter CareLogFilter) ([]*entity.CareLog, error)
	CountByType(ctx context.Context) ([]entity.CareTypeCount, error)
	Update(ctx context.Context, log *entity.CareLog) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteByPlant removes every log of one plant.
	DeleteByPlant(ctx context.Context, plantID uuid.UUID) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}
