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

// careLogRepository implements the repository.CareLogRepository interface.
type careLogRepository struct {
	db *gorm.DB
}

// NewCareLogRepository is the constructor for careLogRepository.
func NewCareLogRepository(db *gorm.DB) repository.CareLogRepository {
	return &careLogRepository{db: db}
}

// Create persists a new care log.
func (repo *careLogRepository) Create(ctx context.Context, log *entity.CareLog) error {
	logM := fromCareLogDomain(log)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(logM).Error; err != nil {
		return translateWriteError(err, "failed to create care log")
	}

	log.ID = logM.ID
	log.CreatedAt = logM.CreatedAt
	log.UpdatedAt = logM.UpdatedAt

	return nil
}

// FindByID retrieves a care log by its unique ID, with its plant.
func (repo *careLogRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CareLog, error) {
	var logM model.CareLogModel

	if err := repo.db.WithContext(ctx).Preload("Plant").Where("id = ?", id).First(&logM).Error; err != nil {
		return nil, translateReadError(err, "failed to find care log by ID")
	}

	return toCareLogDomain(&logM), nil
}

// FindByKey retrieves the care log identified by plant, type and date.
func (repo *careLogRepository) FindByKey(ctx context.Context, plantID uuid.UUID, careType string, date civil.Date) (*entity.CareLog, error) {
	var logM model.CareLogModel

	if err := repo.db.WithContext(ctx).
		Where("plant_id = ? AND type = ? AND care_date = ?", plantID, careType, date.String()).
		First(&logM).Error; err != nil {
		return nil, translateReadError(err, "failed to find care log by key")
	}

	return toCareLogDomain(&logM), nil
}

// FindAll lists care logs matching the filter, newest date first.
func (repo *careLogRepository) FindAll(ctx context.Context, filter repository.CareLogFilter) ([]*entity.CareLog, error) {
	query := repo.db.WithContext(ctx).Preload("Plant").Model(&model.CareLogModel{})
	if filter.PlantID != uuid.Nil {
		query = query.Where("plant_id = ?", filter.PlantID)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Success != nil {
		query = query.Where("success = ?", *filter.Success)
	}
	if !filter.From.IsZero() {
		query = query.Where("care_date >= ?", filter.From.String())
	}
	if !filter.To.IsZero() {
		query = query.Where("care_date <= ?", filter.To.String())
	}

	var logModels []*model.CareLogModel
	if err := query.Order("care_date DESC").Order("created_at DESC").Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list care logs")
	}

	logs := make([]*entity.CareLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, toCareLogDomain(logM))
	}

	return logs, nil
}

// CountByType counts care logs per care type.
func (repo *careLogRepository) CountByType(ctx context.Context) ([]entity.CareTypeCount, error) {
	var rows []groupCountRow
	if err := repo.db.WithContext(ctx).
		Model(&model.CareLogModel{}).
		Select("type AS bucket, COUNT(*) AS total").
		Group("type").
		Order("total DESC, bucket ASC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count care logs by type")
	}

	counts := make([]entity.CareTypeCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, entity.CareTypeCount{Type: row.Bucket, Count: row.Total})
	}

	return counts, nil
}

// Update writes the mutable fields of an existing care log.
func (repo *careLogRepository) Update(ctx context.Context, log *entity.CareLog) error {
	logM := fromCareLogDomain(log)

	result := repo.db.WithContext(ctx).
		Model(&model.CareLogModel{}).
		Where("id = ?", log.ID).
		Select("*").
		Omit("id", "created_at", clause.Associations).
		Updates(logM)
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update care log")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Delete removes a care log by its ID.
func (repo *careLogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CareLogModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete care log")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// DeleteByPlant removes every care log of a plant and returns how many were deleted.
func (repo *careLogRepository) DeleteByPlant(ctx context.Context, plantID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).Where("plant_id = ?", plantID).Delete(&model.CareLogModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete plant care logs")
	}

	return result.RowsAffected, nil
}

// DeleteAll removes every care log.
func (repo *careLogRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).Where("1 = 1").Delete(&model.CareLogModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete care logs")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toCareLogDomain converts a GORM CareLogModel to a domain CareLog entity.
func toCareLogDomain(data *model.CareLogModel) *entity.CareLog {
	if data == nil {
		return nil
	}

	return &entity.CareLog{
		ID:        data.ID,
		PlantID:   data.PlantID,
		Type:      data.Type,
		Date:      parseStoredDate(data.Date),
		Notes:     data.Notes,
		Photo:     data.Photo,
		Success:   data.Success,
		Plant:     toPlantDomain(data.Plant),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromCareLogDomain converts a domain CareLog entity to a GORM CareLogModel.
func fromCareLogDomain(data *entity.CareLog) *model.CareLogModel {
	if data == nil {
		return nil
	}

	return &model.CareLogModel{
		ID:        data.ID,
		PlantID:   data.PlantID,
		Type:      data.Type,
		Date:      data.Date.String(),
		Notes:     data.Notes,
		Photo:     data.Photo,
		Success:   data.Success,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
