package gormdb

import (
	"context"
	"testing"

	"leafcare/internal/domain/entity"
	"leafcare/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpeciesRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewSpeciesRepository(db)
	ctx := context.Background()

	created := seedSpecies(t, db, "Monstera deliciosa")
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	byID, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Monstera deliciosa", byID.Name)
	assert.Equal(t, entity.CareLevelEasy, byID.CareLevel)

	byName, err := repo.FindByName(ctx, "Monstera deliciosa")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	_, err = repo.FindByName(ctx, "monstera deliciosa")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSpeciesRepository_DuplicateName(t *testing.T) {
	db := newTestDB(t)
	seedSpecies(t, db, "Ficus lyrata")

	err := NewSpeciesRepository(db).Create(context.Background(), &entity.Species{
		Name:             "Ficus lyrata",
		CommonName:       "Figueira",
		Description:      "d",
		CareInstructions: "c",
		IdealConditions:  "i",
	})
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestSpeciesRepository_FilterAndCountBy(t *testing.T) {
	db := newTestDB(t)
	repo := NewSpeciesRepository(db)
	ctx := context.Background()

	seedSpecies(t, db, "Monstera deliciosa")
	seedSpecies(t, db, "Ficus lyrata")
	hard := seedSpecies(t, db, "Calathea orbifolia")
	hard.CareLevel = entity.CareLevelHard
	hard.LightRequirement = entity.LevelLow
	require.NoError(t, repo.Update(ctx, hard))

	easy, err := repo.FindAll(ctx, repository.SpeciesFilter{CareLevel: entity.CareLevelEasy})
	require.NoError(t, err)
	require.Len(t, easy, 2)
	assert.Equal(t, "Ficus lyrata", easy[0].Name)

	counts, err := repo.CountBy(ctx, "light_requirement")
	require.NoError(t, err)
	assert.Equal(t, []entity.ValueCount{
		{Value: entity.LevelMedium, Count: 2},
		{Value: entity.LevelLow, Count: 1},
	}, counts)

	_, err = repo.CountBy(ctx, "name; DROP TABLE species")
	assert.Error(t, err)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
}

func TestSpeciesRepository_UpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewSpeciesRepository(db)
	ctx := context.Background()

	species := seedSpecies(t, db, "Monstera deliciosa")
	species.Photo = ""
	species.CommonName = "Monstera"
	require.NoError(t, repo.Update(ctx, species))

	reloaded, err := repo.FindByID(ctx, species.ID)
	require.NoError(t, err)
	assert.Equal(t, "Monstera", reloaded.CommonName)
	assert.Equal(t, species.CreatedAt.Unix(), reloaded.CreatedAt.Unix())

	missing := *species
	missing.ID = uuid.New()
	assert.ErrorIs(t, repo.Update(ctx, &missing), repository.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, species.ID))
	assert.ErrorIs(t, repo.Delete(ctx, species.ID), repository.ErrNotFound)
}

func TestSpeciesRepository_DeleteReferencedByPlant(t *testing.T) {
	db := newTestDB(t)
	species := seedSpecies(t, db, "Monstera deliciosa")
	location := seedLocation(t, db, "Sala de Estar")
	seedPlant(t, db, "Planta X", species, location)

	err := NewSpeciesRepository(db).Delete(context.Background(), species.ID)
	assert.ErrorIs(t, err, repository.ErrReferenced)
}

func TestLocationRepository_FilterAndStats(t *testing.T) {
	db := newTestDB(t)
	repo := NewLocationRepository(db)
	ctx := context.Background()

	species := seedSpecies(t, db, "Monstera deliciosa")
	living := seedLocation(t, db, "Sala de Estar")
	balcony := seedLocation(t, db, "Varanda")
	balcony.Type = entity.LocationTypeBalcony
	balcony.Sunlight = entity.SunlightFull
	require.NoError(t, repo.Update(ctx, balcony))

	seedPlant(t, db, "Planta X", species, living)
	seedPlant(t, db, "Planta Y", species, living)

	found, err := repo.FindAll(ctx, repository.LocationFilter{Type: entity.LocationTypeBalcony})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Varanda", found[0].Name)

	found, err = repo.FindAll(ctx, repository.LocationFilter{Sunlight: entity.SunlightShade})
	require.NoError(t, err)
	assert.Empty(t, found)

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, entity.LocationStat{LocationID: living.ID, Name: "Sala de Estar", Type: entity.LocationTypeIndoor, PlantCount: 2}, stats[0])
	assert.Equal(t, int64(0), stats[1].PlantCount)

	assert.ErrorIs(t, repo.Delete(ctx, living.ID), repository.ErrReferenced)
	require.NoError(t, repo.Delete(ctx, balcony.ID))
}
