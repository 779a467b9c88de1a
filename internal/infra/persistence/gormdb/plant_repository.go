package gormdb

import (
	"context"
	"strings"

	"leafcare/internal/domain/entity"
	"leafcare/internal/domain/repository"
	"leafcare/internal/errors"
	"leafcare/internal/infra/persistence/model"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// plantRepository implements the repository.PlantRepository interface.
type plantRepository struct {
	db *gorm.DB
}

// NewPlantRepository is the constructor for plantRepository.
func NewPlantRepository(db *gorm.DB) repository.PlantRepository {
	return &plantRepository{db: db}
}

// expanded preloads the species and location of every plant read.
func (repo *plantRepository) expanded(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Preload("Species").Preload("Location")
}

// Create persists a new plant.
func (repo *plantRepository) Create(ctx context.Context, plant *entity.Plant) error {
	plantM := fromPlantDomain(plant)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(plantM).Error; err != nil {
		return translateWriteError(err, "failed to create plant")
	}

	plant.ID = plantM.ID
	plant.CreatedAt = plantM.CreatedAt
	plant.UpdatedAt = plantM.UpdatedAt

	return nil
}

// FindByID retrieves a plant by its unique ID, with species and location.
func (repo *plantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Plant, error) {
	var plantM model.PlantModel

	if err := repo.expanded(ctx).Where("id = ?", id).First(&plantM).Error; err != nil {
		return nil, translateReadError(err, "failed to find plant by ID")
	}

	return toPlantDomain(&plantM), nil
}

// FindAll lists plants matching the filter, ordered by name.
func (repo *plantRepository) FindAll(ctx context.Context, filter repository.PlantFilter) ([]*entity.Plant, error) {
	query := repo.expanded(ctx).Model(&model.PlantModel{})
	if filter.SpeciesID != uuid.Nil {
		query = query.Where("species_id = ?", filter.SpeciesID)
	}
	if filter.LocationID != uuid.Nil {
		query = query.Where("location_id = ?", filter.LocationID)
	}
	if filter.HealthStatus != "" {
		query = query.Where("health_status = ?", filter.HealthStatus)
	}

	var plantModels []*model.PlantModel
	if err := query.Order("name ASC").Order("created_at ASC").Find(&plantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list plants")
	}

	return toPlantDomains(plantModels), nil
}

// FindByNameFold returns the oldest plant whose whole name equals name under Unicode case folding.
func (repo *plantRepository) FindByNameFold(ctx context.Context, name string) (*entity.Plant, error) {
	wanted := foldName(name)

	return repo.findFirstByName(ctx, "failed to find plant by name", func(candidate string) bool {
		return foldName(candidate) == wanted
	})
}

// FindByNameContains returns the oldest plant whose name contains fragment under Unicode case folding.
func (repo *plantRepository) FindByNameContains(ctx context.Context, fragment string) (*entity.Plant, error) {
	wanted := foldName(fragment)

	return repo.findFirstByName(ctx, "failed to find plant by name fragment", func(candidate string) bool {
		return strings.Contains(foldName(candidate), wanted)
	})
}

// findFirstByName matches names in Go because SQL LOWER and LIKE fold only ASCII on SQLite and MySQL.
func (repo *plantRepository) findFirstByName(ctx context.Context, action string, match func(name string) bool) (*entity.Plant, error) {
	var candidates []plantName
	if err := repo.db.WithContext(ctx).
		Model(&model.PlantModel{}).
		Select("id", "name").
		Order("created_at ASC").
		Find(&candidates).Error; err != nil {
		return nil, errors.Wrap(err, action)
	}

	for _, candidate := range candidates {
		if match(candidate.Name) {
			return repo.FindByID(ctx, candidate.ID)
		}
	}

	return nil, repository.ErrNotFound
}

type plantName struct {
	ID   uuid.UUID
	Name string
}

func foldName(s string) string {
	return cases.Fold().String(s)
}

// Update writes the mutable fields of an existing plant.
func (repo *plantRepository) Update(ctx context.Context, plant *entity.Plant) error {
	plantM := fromPlantDomain(plant)

	result := repo.db.WithContext(ctx).
		Model(&model.PlantModel{}).
		Where("id = ?", plant.ID).
		Select("*").
		Omit("id", "created_at", clause.Associations).
		Updates(plantM)
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update plant")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Delete removes a plant by its ID.
func (repo *plantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PlantModel{})
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to delete plant")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// DeleteAll removes every plant.
func (repo *plantRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).Where("1 = 1").Delete(&model.PlantModel{})
	if result.Error != nil {
		return 0, translateWriteError(result.Error, "failed to delete plants")
	}

	return result.RowsAffected, nil
}

// CountBySpecies counts the plants of a species.
func (repo *plantRepository) CountBySpecies(ctx context.Context, speciesID uuid.UUID) (int64, error) {
	return repo.countWhere(ctx, "species_id = ?", speciesID)
}

// CountByLocation counts the plants placed in a location.
func (repo *plantRepository) CountByLocation(ctx context.Context, locationID uuid.UUID) (int64, error) {
	return repo.countWhere(ctx, "location_id = ?", locationID)
}

func (repo *plantRepository) countWhere(ctx context.Context, cond string, arg any) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.PlantModel{}).Where(cond, arg).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count plants")
	}

	return count, nil
}

// --- Mapper Functions ---

// toPlantDomain converts a GORM PlantModel to a domain Plant entity.
func toPlantDomain(data *model.PlantModel) *entity.Plant {
	if data == nil {
		return nil
	}

	return &entity.Plant{
		ID:           data.ID,
		Name:         data.Name,
		SpeciesID:    data.SpeciesID,
		LocationID:   data.LocationID,
		PurchaseDate: parseStoredDate(data.PurchaseDate),
		Notes:        data.Notes,
		Photo:        data.Photo,
		HealthStatus: data.HealthStatus,
		Species:      toSpeciesDomain(data.Species),
		Location:     toLocationDomain(data.Location),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toPlantDomains(plantModels []*model.PlantModel) []*entity.Plant {
	plants := make([]*entity.Plant, 0, len(plantModels))
	for _, plantM := range plantModels {
		plants = append(plants, toPlantDomain(plantM))
	}

	return plants
}

// fromPlantDomain converts a domain Plant entity to a GORM PlantModel.
func fromPlantDomain(data *entity.Plant) *model.PlantModel {
	if data == nil {
		return nil
	}

	return &model.PlantModel{
		ID:           data.ID,
		Name:         data.Name,
		SpeciesID:    data.SpeciesID,
		LocationID:   data.LocationID,
		PurchaseDate: data.PurchaseDate.String(),
		Notes:        data.Notes,
		Photo:        data.Photo,
		HealthStatus: data.HealthStatus,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// parseStoredDate reads a YYYY-MM-DD column. Rows are only written through the mappers,
// so a malformed value leaves the zero date.
func parseStoredDate(value string) civil.Date {
	d, err := civil.ParseDate(value)
	if err != nil {
		return civil.Date{}
	}

	return d
}
