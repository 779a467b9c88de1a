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

func TestPlantRepository_ReadsAreExpanded(t *testing.T) {
	db := newTestDB(t)
	repo := NewPlantRepository(db)
	ctx := context.Background()

	species := seedSpecies(t, db, "Monstera deliciosa")
	location := seedLocation(t, db, "Sala de Estar")
	plant := seedPlant(t, db, "Planta X", species, location)

	found, err := repo.FindByID(ctx, plant.ID)
	require.NoError(t, err)
	require.NotNil(t, found.Species)
	require.NotNil(t, found.Location)
	assert.Equal(t, "Monstera deliciosa", found.Species.Name)
	assert.Equal(t, "Sala de Estar", found.Location.Name)
	assert.Equal(t, "2024-01-10", found.PurchaseDate.String())
}

func TestPlantRepository_Filters(t *testing.T) {
	db := newTestDB(t)
	repo := NewPlantRepository(db)
	ctx := context.Background()

	monstera := seedSpecies(t, db, "Monstera deliciosa")
	ficus := seedSpecies(t, db, "Ficus lyrata")
	living := seedLocation(t, db, "Sala de Estar")
	balcony := seedLocation(t, db, "Varanda")

	seedPlant(t, db, "Planta X", monstera, living)
	sick := seedPlant(t, db, "Planta Y", ficus, balcony)
	sick.HealthStatus = entity.HealthSick
	require.NoError(t, repo.Update(ctx, sick))

	all, err := repo.FindAll(ctx, repository.PlantFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	bySpecies, err := repo.FindAll(ctx, repository.PlantFilter{SpeciesID: ficus.ID})
	require.NoError(t, err)
	require.Len(t, bySpecies, 1)
	assert.Equal(t, "Planta Y", bySpecies[0].Name)

	byLocation, err := repo.FindAll(ctx, repository.PlantFilter{LocationID: living.ID})
	require.NoError(t, err)
	require.Len(t, byLocation, 1)
	assert.Equal(t, "Planta X", byLocation[0].Name)

	byHealth, err := repo.FindAll(ctx, repository.PlantFilter{HealthStatus: entity.HealthSick})
	require.NoError(t, err)
	require.Len(t, byHealth, 1)
	assert.Equal(t, sick.ID, byHealth[0].ID)

	count, err := repo.CountBySpecies(ctx, monstera.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	count, err = repo.CountByLocation(ctx, uuid.New())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestPlantRepository_NameLookups(t *testing.T) {
	db := newTestDB(t)
	repo := NewPlantRepository(db)
	ctx := context.Background()

	species := seedSpecies(t, db, "Monstera deliciosa")
	location := seedLocation(t, db, "Sala de Estar")
	plant := seedPlant(t, db, "Planta X", species, location)

	found, err := repo.FindByNameFold(ctx, "PLANTA x")
	require.NoError(t, err)
	assert.Equal(t, plant.ID, found.ID)

	found, err = repo.FindByNameContains(ctx, "anta")
	require.NoError(t, err)
	assert.Equal(t, plant.ID, found.ID)

	_, err = repo.FindByNameContains(ctx, "%")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.FindByNameFold(ctx, "Planta")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPlantRepository_CreateWithUnknownSpecies(t *testing.T) {
	db := newTestDB(t)
	location := seedLocation(t, db, "Sala de Estar")

	err := NewPlantRepository(db).Create(context.Background(), &entity.Plant{
		Name:         "Planta X",
		SpeciesID:    uuid.New(),
		LocationID:   location.ID,
		PurchaseDate: mustDate(t, "2024-01-10"),
		Notes:        "n",
		HealthStatus: entity.HealthHealthy,
	})
	assert.ErrorIs(t, err, repository.ErrReferenced)
}

func TestPlantRepository_DeleteAll(t *testing.T) {
	db := newTestDB(t)
	repo := NewPlantRepository(db)
	ctx := context.Background()

	species := seedSpecies(t, db, "Monstera deliciosa")
	location := seedLocation(t, db, "Sala de Estar")
	seedPlant(t, db, "Planta X", species, location)
	seedPlant(t, db, "Planta Y", species, location)

	deleted, err := repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, deleted)

	all, err := repo.FindAll(ctx, repository.PlantFilter{})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestPlantRepository_NameLookupsFoldAccentedCapitals(t *testing.T) {
	db := newTestDB(t)
	repo := NewPlantRepository(db)
	ctx := context.Background()

	species := seedSpecies(t, db, "Monstera deliciosa")
	location := seedLocation(t, db, "Sala de Estar")
	plant := seedPlant(t, db, "Árbol Grande", species, location)

	tests := []struct {
		name   string
		lookup func(ctx context.Context, value string) (*entity.Plant, error)
		value  string
	}{
		{name: "whole name lower case", lookup: repo.FindByNameFold, value: "árbol grande"},
		{name: "whole name upper case", lookup: repo.FindByNameFold, value: "ÁRBOL GRANDE"},
		{name: "fragment as stored", lookup: repo.FindByNameContains, value: "Árbol"},
		{name: "fragment lower case", lookup: repo.FindByNameContains, value: "árbol"},
		{name: "ascii fragment", lookup: repo.FindByNameContains, value: "GRANDE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := tt.lookup(ctx, tt.value)
			require.NoError(t, err)
			assert.Equal(t, plant.ID, found.ID)
			require.NotNil(t, found.Species)
			assert.Equal(t, species.ID, found.Species.ID)
		})
	}

	_, err := repo.FindByNameFold(ctx, "arbol grande")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
