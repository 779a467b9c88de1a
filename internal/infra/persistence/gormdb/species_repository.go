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

// Species columns that can be grouped by CountBy.
var speciesGroupColumns = map[string]struct{}{
	"light_requirement": {},
	"water_frequency":   {},
	"care_level":        {},
}

// speciesRepository implements the repository.SpeciesRepository interface.
type speciesRepository struct {
	db *gorm.DB
}

// NewSpeciesRepository is the constructor for speciesRepository.
func NewSpeciesRepository(db *gorm.DB) repository.SpeciesRepository {
	return &speciesRepository{db: db}
}

// Create persists a new species.
func (repo *speciesRepository) Create(ctx context.Context, species *entity.Species) error {
	speciesM := fromSpeciesDomain(species)

	if err := repo.db.WithContext(ctx).Create(speciesM).Error; err != nil {
		return translateWriteError(err, "failed to create species")
	}

	species.ID = speciesM.ID
	species.CreatedAt = speciesM.CreatedAt
	species.UpdatedAt = speciesM.UpdatedAt

	return nil
}

// FindByID retrieves a species by its unique ID.
func (repo *speciesRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Species, error) {
	var speciesM model.SpeciesModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&speciesM).Error; err != nil {
		return nil, translateReadError(err, "failed to find species by ID")
	}

	return toSpeciesDomain(&speciesM), nil
}

// FindByName retrieves a species by its exact name.
func (repo *speciesRepository) FindByName(ctx context.Context, name string) (*entity.Species, error) {
	var speciesM model.SpeciesModel

	if err := repo.db.WithContext(ctx).Where("name = ?", name).First(&speciesM).Error; err != nil {
		return nil, translateReadError(err, "failed to find species by name")
	}

	return toSpeciesDomain(&speciesM), nil
}

// FindAll lists species matching the filter, ordered by name.
func (repo *speciesRepository) FindAll(ctx context.Context, filter repository.SpeciesFilter) ([]*entity.Species, error) {
	query := repo.db.WithContext(ctx).Model(&model.SpeciesModel{})
	if filter.LightRequirement != "" {
		query = query.Where("light_requirement = ?", filter.LightRequirement)
	}
	if filter.WaterFrequency != "" {
		query = query.Where("water_frequency = ?", filter.WaterFrequency)
	}
	if filter.CareLevel != "" {
		query = query.Where("care_level = ?", filter.CareLevel)
	}

	var speciesModels []*model.SpeciesModel
	if err := query.Order("name ASC").Find(&speciesModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list species")
	}

	species := make([]*entity.Species, 0, len(speciesModels))
	for _, speciesM := range speciesModels {
		species = append(species, toSpeciesDomain(speciesM))
	}

	return species, nil
}

// Update writes the mutable fields of an existing species.
func (repo *speciesRepository) Update(ctx context.Context, species *entity.Species) error {
	speciesM := fromSpeciesDomain(species)

	result := repo.db.WithContext(ctx).
		Model(&model.SpeciesModel{}).
		Where("id = ?", species.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(speciesM)
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update species")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	species.UpdatedAt = speciesM.UpdatedAt

	return nil
}

// Delete removes a species by its ID.
func (repo *speciesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.SpeciesModel{})
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to delete species")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Count returns the number of stored species.
func (repo *speciesRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.SpeciesModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count species")
	}

	return count, nil
}

// CountBy groups species by one of the classification columns.
func (repo *speciesRepository) CountBy(ctx context.Context, column string) ([]entity.ValueCount, error) {
	if _, ok := speciesGroupColumns[column]; !ok {
		return nil, errors.Errorf("species cannot be grouped by %q", column)
	}

	var rows []groupCountRow
	if err := repo.db.WithContext(ctx).
		Model(&model.SpeciesModel{}).
		Select(column + " AS bucket, COUNT(*) AS total").
		Where(column + " <> ''").
		Group(column).
		Order("total DESC, bucket ASC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to count species by %s", column)
	}

	counts := make([]entity.ValueCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, entity.ValueCount{Value: row.Bucket, Count: row.Total})
	}

	return counts, nil
}

// groupCountRow receives "bucket, total" aggregates.
type groupCountRow struct {
	Bucket string
	Total  int64
}

// --- Mapper Functions ---

// toSpeciesDomain converts a GORM SpeciesModel to a domain Species entity.
func toSpeciesDomain(data *model.SpeciesModel) *entity.Species {
	if data == nil {
		return nil
	}

	return &entity.Species{
		ID:               data.ID,
		Name:             data.Name,
		CommonName:       data.CommonName,
		Description:      data.Description,
		CareInstructions: data.CareInstructions,
		IdealConditions:  data.IdealConditions,
		Photo:            data.Photo,
		LightRequirement: data.LightRequirement,
		WaterFrequency:   data.WaterFrequency,
		CareLevel:        data.CareLevel,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromSpeciesDomain converts a domain Species entity to a GORM SpeciesModel.
func fromSpeciesDomain(data *entity.Species) *model.SpeciesModel {
	if data == nil {
		return nil
	}

	return &model.SpeciesModel{
		ID:               data.ID,
		Name:             data.Name,
		CommonName:       data.CommonName,
		Description:      data.Description,
		CareInstructions: data.CareInstructions,
		IdealConditions:  data.IdealConditions,
		Photo:            data.Photo,
		LightRequirement: data.LightRequirement,
		WaterFrequency:   data.WaterFrequency,
		CareLevel:        data.CareLevel,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
