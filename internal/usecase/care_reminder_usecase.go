package usecase

import (
	"context"

	"leafcare/internal/domain/entity"
	"leafcare/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateCareReminderInput represents the input for scheduling recurring care
type CreateCareReminderInput struct {
	PlantName string `json:"plantName" validate:"notblank"`
	Type      string `json:"type" validate:"required,oneof=watering fertilizing pruning sunlight other"`
	Frequency int    `json:"frequency" validate:"required,min=1,max=99"`
	LastDone  string `json:"lastDone" validate:"notblank,date"`
	NextDue   string `json:"nextDue" validate:"notblank,date"`
	Notes     string `json:"notes" validate:"notblank,max=500"`
	IsActive  *bool  `json:"isActive,omitempty"`
}

// UpdateCareReminderInput represents a partial reminder update.
// PlantName, Type and NextDue form the reminder's key: they are only decoded so that
// an attempt to change them can be rejected.
type UpdateCareReminderInput struct {
	PlantName *string `json:"plantName,omitempty"`
	Type      *string `json:"type,omitempty"`
	NextDue   *string `json:"nextDue,omitempty"`
	Frequency *int    `json:"frequency,omitempty" validate:"omitnil,min=1,max=99"`
	LastDone  *string `json:"lastDone,omitempty" validate:"omitnil,notblank,date"`
	Notes     *string `json:"notes,omitempty" validate:"omitnil,notblank,max=500"`
	IsActive  *bool   `json:"isActive,omitempty"`
}

// CareReminderUsecase defines the care reminder use cases
type CareReminderUsecase interface {
	CreateReminder(ctx context.Context, input *CreateCareReminderInput) (*entity.CareReminder, error)
	ListReminders(ctx context.Context, filter repository.CareReminderFilter) ([]*entity.CareReminder, error)
	GetReminder(ctx context.Context, id uuid.UUID) (*entity.CareReminder, error)
	// ListOverdue returns active reminders whose lastDone is on or before today.
	ListOverdue(ctx context.Context) ([]*entity.CareReminder, error)
	// ListUpcoming returns active reminders whose nextDue is after today.
	ListUpcoming(ctx context.Context) ([]*entity.CareReminder, error)
	ListActive(ctx context.Context) ([]*entity.CareReminder, error)
	UpdateReminder(ctx context.Context, id uuid.UUID, input *UpdateCareReminderInput) (*entity.CareReminder, error)
	// MarkDone records the care as done today and schedules the next occurrence.
	MarkDone(ctx context.Context, id uuid.UUID) (*entity.CareReminder, error)
	DeleteReminder(ctx context.Context, id uuid.UUID) error
	// NotifyDue pushes a notification for every active reminder due today or earlier
	// and returns how many were sent.
	NotifyDue(ctx context.Context) (int, error)
}
