package gormdb

import (
	"context"

	"leafcare/internal/domain/entity"
	"leafcare/internal/domain/repository"
	"leafcare/internal/errors"
	"leafcare/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

// Create persists a new location.
func (repo *locationRepository) Create(ctx context.Context, location *entity.Location) error {
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).Create(locationM).Error; err != nil {
		return translateWriteError(err, "failed to create location")
	}

	location.ID = locationM.ID
	location.CreatedAt = locationM.CreatedAt
	location.UpdatedAt = locationM.UpdatedAt

	return nil
}

// FindByID retrieves a location by its unique ID.
func (repo *locationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	var locationM model.LocationModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&locationM).Error; err != nil {
		return nil, translateReadError(err, "failed to find location by ID")
	}

	return toLocationDomain(&locationM), nil
}

// FindByName retrieves a location by its exact name.
func (repo *locationRepository) FindByName(ctx context.Context, name string) (*entity.Location, error) {
	var locationM model.LocationModel

	if err := repo.db.WithContext(ctx).Where("name = ?", name).First(&locationM).Error; err != nil {
		return nil, translateReadError(err, "failed to find location by name")
	}

	return toLocationDomain(&locationM), nil
}

// FindAll lists locations matching the filter, ordered by name.
func (repo *locationRepository) FindAll(ctx context.Context, filter repository.LocationFilter) ([]*entity.Location, error) {
	query := repo.db.WithContext(ctx).Model(&model.LocationModel{})
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Sunlight != "" {
		query = query.Where("sunlight = ?", filter.Sunlight)
	}
	if filter.Humidity != "" {
		query = query.Where("humidity = ?", filter.Humidity)
	}

	var locationModels []*model.LocationModel
	if err := query.Order("name ASC").Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list locations")
	}

	locations := make([]*entity.Location, 0, len(locationModels))
	for _, locationM := range locationModels {
		locations = append(locations, toLocationDomain(locationM))
	}

	return locations, nil
}

// Update writes the mutable fields of an existing location.
func (repo *locationRepository) Update(ctx context.Context, location *entity.Location) error {
	locationM := fromLocationDomain(location)

	result := repo.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Where("id = ?", location.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(locationM)
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update location")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	location.UpdatedAt = locationM.UpdatedAt

	return nil
}

// Delete removes a location by its ID.
func (repo *locationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.LocationModel{})
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to delete location")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Count returns the number of stored locations.
func (repo *locationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.LocationModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count locations")
	}

	return count, nil
}

// Stats returns every location with the number of plants placed in it.
func (repo *locationRepository) Stats(ctx context.Context) ([]entity.LocationStat, error) {
	var rows []struct {
		ID         uuid.UUID
		Name       string
		Type       string
		PlantCount int64
	}

	if err := repo.db.WithContext(ctx).
		Table("locations").
		Select("locations.id AS id, locations.name AS name, locations.type AS type, COUNT(plants.id) AS plant_count").
		Joins("LEFT JOIN plants ON plants.location_id = locations.id").
		Group("locations.id, locations.name, locations.type").
		Order("plant_count DESC, locations.name ASC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to compute location stats")
	}

	stats := make([]entity.LocationStat, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, entity.LocationStat{
			LocationID: row.ID,
			Name:       row.Name,
			Type:       row.Type,
			PlantCount: row.PlantCount,
		})
	}

	return stats, nil
}

// --- Mapper Functions ---

// toLocationDomain converts a GORM LocationModel to a domain Location entity.
func toLocationDomain(data *model.LocationModel) *entity.Location {
	if data == nil {
		return nil
	}

	return &entity.Location{
		ID:          data.ID,
		Name:        data.Name,
		Type:        data.Type,
		Sunlight:    data.Sunlight,
		Humidity:    data.Humidity,
		Description: data.Description,
		Photo:       data.Photo,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromLocationDomain converts a domain Location entity to a GORM LocationModel.
func fromLocationDomain(data *entity.Location) *model.LocationModel {
	if data == nil {
		return nil
	}

	return &model.LocationModel{
		ID:          data.ID,
		Name:        data.Name,
		Type:        data.Type,
		Sunlight:    data.Sunlight,
		Humidity:    data.Humidity,
		Description: data.Description,
		Photo:       data.Photo,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
