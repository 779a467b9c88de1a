package gormdb

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"leafcare/config"
	"leafcare/internal/domain/entity"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{}
	cfg.Database.Driver = DriverSQLite
	cfg.Database.DSN = "file::memory:?_pragma=foreign_keys(1)"
	cfg.Database.MaxOpenConns = 1

	db, err := Open(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(context.Background(), db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func mustDate(t *testing.T, value string) civil.Date {
	t.Helper()

	d, err := civil.ParseDate(value)
	require.NoError(t, err)

	return d
}

func seedSpecies(t *testing.T, db *gorm.DB, name string) *entity.Species {
	t.Helper()

	species := &entity.Species{
		Name:             name,
		CommonName:       "Costela de Adao",
		Description:      "Tropical climber",
		CareInstructions: "Water weekly",
		IdealConditions:  "Bright indirect light",
		LightRequirement: entity.LevelMedium,
		WaterFrequency:   entity.LevelMedium,
		CareLevel:        entity.CareLevelEasy,
	}
	require.NoError(t, NewSpeciesRepository(db).Create(context.Background(), species))

	return species
}

func seedLocation(t *testing.T, db *gorm.DB, name string) *entity.Location {
	t.Helper()

	location := &entity.Location{
		Name:        name,
		Type:        entity.LocationTypeIndoor,
		Sunlight:    entity.SunlightPartial,
		Humidity:    entity.LevelMedium,
		Description: "Living room by the window",
	}
	require.NoError(t, NewLocationRepository(db).Create(context.Background(), location))

	return location
}

func seedPlant(t *testing.T, db *gorm.DB, name string, species *entity.Species, location *entity.Location) *entity.Plant {
	t.Helper()

	plant := &entity.Plant{
		Name:         name,
		SpeciesID:    species.ID,
		LocationID:   location.ID,
		PurchaseDate: mustDate(t, "2024-01-10"),
		Notes:        "Bought at the market",
		HealthStatus: entity.HealthHealthy,
	}
	require.NoError(t, NewPlantRepository(db).Create(context.Background(), plant))

	return plant
}
