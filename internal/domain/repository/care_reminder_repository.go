package repository

import (
	"context"

	"leafcare/internal/domain/entity"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

// CareReminderFilter narrows reminder listings. Zero values do not filter.
type CareReminderFilter struct {
	PlantID    uuid.UUID
	Type       string
	ActiveOnly bool
}

// CareReminderRepository defines the persistence operations for care reminders.
// Listings are ordered by next due date ascending unless stated otherwise.
type CareReminderRepository interface {
	Create(ctx context.Context, reminder *entity.CareReminder) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CareReminder, error)
	// FindByKey looks up the reminder holding the composite key.
	FindByKey(ctx context.Context, plantID uuid.UUID, careType string, nextDue civil.Date) (*entity.CareReminder, error)
	FindAll(ctx context.Context, filter CareReminderFilter) ([]*entity.CareReminder, error)
	// FindActiveLastDoneOnOrBefore lists active reminders with lastDone <= day, ordered by lastDone ascending.
	FindActiveLastDoneOnOrBefore(ctx context.Context, day civil.Date) ([]*entity.CareReminder, error)
	// FindActiveDueAfter lists active reminders with nextDue > day.
	FindActiveDueAfter(ctx context.Context, day civil.Date) ([]*entity.CareReminder, error)
	// FindActiveDueOnOrBefore lists active reminders with nextDue <= day.
	FindActiveDueOnOrBefore(ctx context.Context, day civil.Date) ([]*entity.CareReminder, error)
	Update(ctx context.Context, reminder *entity.CareReminder) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteByPlant removes every reminder of one plant.
	DeleteByPlant(ctx context.Context, plantID uuid.UUID) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}
