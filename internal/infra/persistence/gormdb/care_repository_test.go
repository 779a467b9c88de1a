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

func seedPlantFixture(t *testing.T) (*entity.Plant, *careFixture) {
	t.Helper()

	db := newTestDB(t)
	species := seedSpecies(t, db, "Monstera deliciosa")
	location := seedLocation(t, db, "Sala de Estar")
	plant := seedPlant(t, db, "Planta X", species, location)

	return plant, &careFixture{
		reminders: NewCareReminderRepository(db),
		logs:      NewCareLogRepository(db),
		plants:    NewPlantRepository(db),
		txManager: NewTransactionManager(db),
	}
}

type careFixture struct {
	reminders repository.CareReminderRepository
	logs      repository.CareLogRepository
	plants    repository.PlantRepository
	txManager repository.TransactionManager
}

func (f *careFixture) reminder(t *testing.T, plantID uuid.UUID, careType, lastDone, nextDue string, active bool) *entity.CareReminder {
	t.Helper()

	reminder := &entity.CareReminder{
		PlantID:   plantID,
		Type:      careType,
		Frequency: 7,
		LastDone:  mustDate(t, lastDone),
		NextDue:   mustDate(t, nextDue),
		Notes:     "weekly",
		IsActive:  active,
	}
	require.NoError(t, f.reminders.Create(context.Background(), reminder))

	return reminder
}

func (f *careFixture) log(t *testing.T, plantID uuid.UUID, careType, date string, success bool) *entity.CareLog {
	t.Helper()

	log := &entity.CareLog{
		PlantID: plantID,
		Type:    careType,
		Date:    mustDate(t, date),
		Notes:   "ok",
		Success: success,
	}
	require.NoError(t, f.logs.Create(context.Background(), log))

	return log
}

func TestCareReminderRepository_CompositeKey(t *testing.T) {
	plant, f := seedPlantFixture(t)
	ctx := context.Background()

	created := f.reminder(t, plant.ID, entity.CareTypeWatering, "2024-01-10", "2024-01-17", true)

	found, err := f.reminders.FindByKey(ctx, plant.ID, entity.CareTypeWatering, mustDate(t, "2024-01-17"))
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = f.reminders.FindByKey(ctx, plant.ID, entity.CareTypePruning, mustDate(t, "2024-01-17"))
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = f.reminders.Create(ctx, &entity.CareReminder{
		PlantID:   plant.ID,
		Type:      entity.CareTypeWatering,
		Frequency: 3,
		LastDone:  mustDate(t, "2024-01-01"),
		NextDue:   mustDate(t, "2024-01-17"),
		Notes:     "again",
		IsActive:  true,
	})
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestCareReminderRepository_DateQueries(t *testing.T) {
	plant, f := seedPlantFixture(t)
	ctx := context.Background()
	today := mustDate(t, "2024-01-15")

	early := f.reminder(t, plant.ID, entity.CareTypeWatering, "2024-01-01", "2024-01-08", true)
	late := f.reminder(t, plant.ID, entity.CareTypePruning, "2024-01-14", "2024-02-14", true)
	future := f.reminder(t, plant.ID, entity.CareTypeFertilizing, "2024-01-15", "2024-01-16", true)
	f.reminder(t, plant.ID, entity.CareTypeSunlight, "2024-01-02", "2024-01-20", false)

	overdue, err := f.reminders.FindActiveLastDoneOnOrBefore(ctx, today)
	require.NoError(t, err)
	require.Len(t, overdue, 3)
	assert.Equal(t, []uuid.UUID{early.ID, late.ID, future.ID}, reminderIDs(overdue))

	upcoming, err := f.reminders.FindActiveDueAfter(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{future.ID, late.ID}, reminderIDs(upcoming))

	due, err := f.reminders.FindActiveDueOnOrBefore(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{early.ID}, reminderIDs(due))
	require.NotNil(t, due[0].Plant)
	assert.Equal(t, "Planta X", due[0].Plant.Name)

	active, err := f.reminders.FindAll(ctx, repository.CareReminderFilter{ActiveOnly: true})
	require.NoError(t, err)
	assert.Len(t, active, 3)

	byType, err := f.reminders.FindAll(ctx, repository.CareReminderFilter{PlantID: plant.ID, Type: entity.CareTypeSunlight})
	require.NoError(t, err)
	require.Len(t, byType, 1)
	assert.False(t, byType[0].IsActive)
}

func TestCareReminderRepository_UpdateAndDelete(t *testing.T) {
	plant, f := seedPlantFixture(t)
	ctx := context.Background()

	reminder := f.reminder(t, plant.ID, entity.CareTypeWatering, "2024-01-10", "2024-01-17", true)
	reminder.LastDone = mustDate(t, "2024-01-15")
	reminder.NextDue = mustDate(t, "2024-01-22")
	reminder.IsActive = false
	require.NoError(t, f.reminders.Update(ctx, reminder))

	reloaded, err := f.reminders.FindByID(ctx, reminder.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-22", reloaded.NextDue.String())
	assert.False(t, reloaded.IsActive)

	require.NoError(t, f.reminders.Delete(ctx, reminder.ID))
	_, err = f.reminders.FindByID(ctx, reminder.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCareLogRepository_FiltersAndStats(t *testing.T) {
	plant, f := seedPlantFixture(t)
	ctx := context.Background()

	first := f.log(t, plant.ID, entity.CareTypeWatering, "2024-01-10", true)
	second := f.log(t, plant.ID, entity.CareTypeWatering, "2024-01-15", false)
	third := f.log(t, plant.ID, entity.CareTypeRepotting, "2024-01-12", true)

	all, err := f.logs.FindAll(ctx, repository.CareLogFilter{PlantID: plant.ID})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{second.ID, third.ID, first.ID}, logIDs(all))

	successful := true
	onlyOK, err := f.logs.FindAll(ctx, repository.CareLogFilter{Success: &successful})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{third.ID, first.ID}, logIDs(onlyOK))

	ranged, err := f.logs.FindAll(ctx, repository.CareLogFilter{From: mustDate(t, "2024-01-12"), To: mustDate(t, "2024-01-15")})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{second.ID, third.ID}, logIDs(ranged))

	byType, err := f.logs.FindAll(ctx, repository.CareLogFilter{Type: entity.CareTypeRepotting})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{third.ID}, logIDs(byType))

	stats, err := f.logs.CountByType(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entity.CareTypeCount{
		{Type: entity.CareTypeWatering, Count: 2},
		{Type: entity.CareTypeRepotting, Count: 1},
	}, stats)
}

func TestCareLogRepository_CompositeKey(t *testing.T) {
	plant, f := seedPlantFixture(t)
	ctx := context.Background()

	created := f.log(t, plant.ID, entity.CareTypeWatering, "2024-01-15", true)

	found, err := f.logs.FindByKey(ctx, plant.ID, entity.CareTypeWatering, mustDate(t, "2024-01-15"))
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	err = f.logs.Create(ctx, &entity.CareLog{
		PlantID: plant.ID,
		Type:    entity.CareTypeWatering,
		Date:    mustDate(t, "2024-01-15"),
		Notes:   "duplicate",
		Success: true,
	})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	created.Notes = "updated"
	require.NoError(t, f.logs.Update(ctx, created))
	reloaded, err := f.logs.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "updated", reloaded.Notes)
	assert.True(t, reloaded.Success)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	plant, f := seedPlantFixture(t)
	ctx := context.Background()
	f.reminder(t, plant.ID, entity.CareTypeWatering, "2024-01-10", "2024-01-17", true)
	f.log(t, plant.ID, entity.CareTypeWatering, "2024-01-15", true)

	sentinel := assert.AnError
	err := f.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if _, err := factory.NewCareReminderRepository().DeleteAll(ctx); err != nil {
			return err
		}

		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	remaining, err := f.reminders.FindAll(ctx, repository.CareReminderFilter{})
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestTransactionManager_DeletesInDependencyOrder(t *testing.T) {
	plant, f := seedPlantFixture(t)
	ctx := context.Background()
	f.reminder(t, plant.ID, entity.CareTypeWatering, "2024-01-10", "2024-01-17", true)
	f.log(t, plant.ID, entity.CareTypeWatering, "2024-01-15", true)

	// Plants are still referenced, so deleting them first must fail.
	_, err := f.plants.DeleteAll(ctx)
	require.ErrorIs(t, err, repository.ErrReferenced)

	err = f.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if _, err := factory.NewCareReminderRepository().DeleteAll(ctx); err != nil {
			return err
		}
		if _, err := factory.NewCareLogRepository().DeleteAll(ctx); err != nil {
			return err
		}
		_, err := factory.NewPlantRepository().DeleteAll(ctx)

		return err
	})
	require.NoError(t, err)

	plants, err := f.plants.FindAll(ctx, repository.PlantFilter{})
	require.NoError(t, err)
	assert.Empty(t, plants)
}

func TestCareRepositories_DeleteByPlant(t *testing.T) {
	plant, f := seedPlantFixture(t)
	ctx := context.Background()

	other := &entity.Plant{
		Name:         "Planta Y",
		SpeciesID:    plant.SpeciesID,
		LocationID:   plant.LocationID,
		PurchaseDate: mustDate(t, "2024-02-01"),
		Notes:        "Gift",
		HealthStatus: entity.HealthHealthy,
	}
	require.NoError(t, f.plants.Create(ctx, other))

	f.reminder(t, plant.ID, entity.CareTypeWatering, "2024-01-10", "2024-01-17", true)
	f.reminder(t, plant.ID, entity.CareTypeFertilizing, "2024-01-10", "2024-02-10", true)
	kept := f.reminder(t, other.ID, entity.CareTypeWatering, "2024-01-10", "2024-01-17", true)
	f.log(t, plant.ID, entity.CareTypeWatering, "2024-01-15", true)
	keptLog := f.log(t, other.ID, entity.CareTypeWatering, "2024-01-15", true)

	removed, err := f.reminders.DeleteByPlant(ctx, plant.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	removed, err = f.logs.DeleteByPlant(ctx, plant.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	require.NoError(t, f.plants.Delete(ctx, plant.ID))

	reminders, err := f.reminders.FindAll(ctx, repository.CareReminderFilter{})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{kept.ID}, reminderIDs(reminders))

	logs, err := f.logs.FindAll(ctx, repository.CareLogFilter{})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{keptLog.ID}, logIDs(logs))
}

func reminderIDs(reminders []*entity.CareReminder) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(reminders))
	for _, r := range reminders {
		ids = append(ids, r.ID)
	}

	return ids
}

func logIDs(logs []*entity.CareLog) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(logs))
	for _, l := range logs {
		ids = append(ids, l.ID)
	}

	return ids
}
