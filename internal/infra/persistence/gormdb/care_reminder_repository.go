package gormdb

import (
	"context"

	"leafcare/internal/domain/entity"
	"leafcare/internal/domain/repository"
	"leafcare/internal/errors"
	"leafcare/internal/infra/persistence/model"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// careReminderRepository implements the repository.CareReminderRepository interface.
type careReminderRepository struct {
	db *gorm.DB
}

// NewCareReminderRepository is the constructor for careReminderRepository.
func NewCareReminderRepository(db *gorm.DB) repository.CareReminderRepository {
	return &careReminderRepository{db: db}
}

// withPlant preloads the plant of every reminder read.
func (repo *careReminderRepository) withPlant(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Preload("Plant")
}

// Create persists a new care reminder.
func (repo *careReminderRepository) Create(ctx context.Context, reminder *entity.CareReminder) error {
	reminderM := fromCareReminderDomain(reminder)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(reminderM).Error; err != nil {
		return translateWriteError(err, "failed to create care reminder")
	}

	reminder.ID = reminderM.ID
	reminder.CreatedAt = reminderM.CreatedAt
	reminder.UpdatedAt = reminderM.UpdatedAt

	return nil
}

// FindByID retrieves a care reminder by its unique ID, with its plant.
func (repo *careReminderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CareReminder, error) {
	var reminderM model.CareReminderModel

	if err := repo.withPlant(ctx).Where("id = ?", id).First(&reminderM).Error; err != nil {
		return nil, translateReadError(err, "failed to find care reminder by ID")
	}

	return toCareReminderDomain(&reminderM), nil
}

// FindByKey retrieves the reminder identified by plant, type and next due date.
func (repo *careReminderRepository) FindByKey(ctx context.Context, plantID uuid.UUID, careType string, nextDue civil.Date) (*entity.CareReminder, error) {
	var reminderM model.CareReminderModel

	if err := repo.db.WithContext(ctx).
		Where("plant_id = ? AND type = ? AND next_due = ?", plantID, careType, nextDue.String()).
		First(&reminderM).Error; err != nil {
		return nil, translateReadError(err, "failed to find care reminder by key")
	}

	return toCareReminderDomain(&reminderM), nil
}

// FindAll lists care reminders matching the filter, soonest first.
func (repo *careReminderRepository) FindAll(ctx context.Context, filter repository.CareReminderFilter) ([]*entity.CareReminder, error) {
	query := repo.withPlant(ctx).Model(&model.CareReminderModel{})
	if filter.PlantID != uuid.Nil {
		query = query.Where("plant_id = ?", filter.PlantID)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	return repo.list(query.Order("next_due ASC"), "failed to list care reminders")
}

// FindActiveLastDoneOnOrBefore lists active reminders last done on or before day.
func (repo *careReminderRepository) FindActiveLastDoneOnOrBefore(ctx context.Context, day civil.Date) ([]*entity.CareReminder, error) {
	query := repo.withPlant(ctx).
		Where("is_active = ? AND last_done <= ?", true, day.String()).
		Order("last_done ASC")

	return repo.list(query, "failed to list overdue care reminders")
}

// FindActiveDueAfter lists active reminders due strictly after day.
func (repo *careReminderRepository) FindActiveDueAfter(ctx context.Context, day civil.Date) ([]*entity.CareReminder, error) {
	query := repo.withPlant(ctx).
		Where("is_active = ? AND next_due > ?", true, day.String()).
		Order("next_due ASC")

	return repo.list(query, "failed to list upcoming care reminders")
}

// FindActiveDueOnOrBefore lists active reminders due on or before day.
func (repo *careReminderRepository) FindActiveDueOnOrBefore(ctx context.Context, day civil.Date) ([]*entity.CareReminder, error) {
	query := repo.withPlant(ctx).
		Where("is_active = ? AND next_due <= ?", true, day.String()).
		Order("next_due ASC")

	return repo.list(query, "failed to list due care reminders")
}

func (repo *careReminderRepository) list(query *gorm.DB, action string) ([]*entity.CareReminder, error) {
	var reminderModels []*model.CareReminderModel
	if err := query.Order("created_at ASC").Find(&reminderModels).Error; err != nil {
		return nil, errors.Wrap(err, action)
	}

	reminders := make([]*entity.CareReminder, 0, len(reminderModels))
	for _, reminderM := range reminderModels {
		reminders = append(reminders, toCareReminderDomain(reminderM))
	}

	return reminders, nil
}

// Update writes the mutable fields of an existing care reminder.
func (repo *careReminderRepository) Update(ctx context.Context, reminder *entity.CareReminder) error {
	reminderM := fromCareReminderDomain(reminder)

	result := repo.db.WithContext(ctx).
		Model(&model.CareReminderModel{}).
		Where("id = ?", reminder.ID).
		Select("*").
		Omit("id", "created_at", clause.Associations).
		Updates(reminderM)
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update care reminder")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Delete removes a care reminder by its ID.
func (repo *careReminderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CareReminderModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete care reminder")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// DeleteByPlant removes every reminder of a plant and returns how many were deleted.
func (repo *careReminderRepository) DeleteByPlant(ctx context.Context, plantID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).Where("plant_id = ?", plantID).Delete(&model.CareReminderModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete plant care reminders")
	}

	return result.RowsAffected, nil
}

// DeleteAll removes every care reminder.
func (repo *careReminderRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).Where("1 = 1").Delete(&model.CareReminderModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete care reminders")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toCareReminderDomain converts a GORM CareReminderModel to a domain CareReminder entity.
func toCareReminderDomain(data *model.CareReminderModel) *entity.CareReminder {
	if data == nil {
		return nil
	}

	return &entity.CareReminder{
		ID:        data.ID,
		PlantID:   data.PlantID,
		Type:      data.Type,
		Frequency: data.Frequency,
		LastDone:  parseStoredDate(data.LastDone),
		NextDue:   parseStoredDate(data.NextDue),
		Notes:     data.Notes,
		IsActive:  data.IsActive,
		Plant:     toPlantDomain(data.Plant),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromCareReminderDomain converts a domain CareReminder entity to a GORM CareReminderModel.
func fromCareReminderDomain(data *entity.CareReminder) *model.CareReminderModel {
	if data == nil {
		return nil
	}

	return &model.CareReminderModel{
		ID:        data.ID,
		PlantID:   data.PlantID,
		Type:      data.Type,
		Frequency: data.Frequency,
		LastDone:  data.LastDone.String(),
		NextDue:   data.NextDue.String(),
		Notes:     data.Notes,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
