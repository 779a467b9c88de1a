package impl

import (
	"context"
	"testing"

	"leafcare/internal/domain/entity"
	domainerrors "leafcare/internal/domain/errors"
	"leafcare/internal/domain/repository"
	mockRepo "leafcare/internal/mocks/repository"
	mockService "leafcare/internal/mocks/service"
	"leafcare/internal/usecase"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type plantServiceFixtures struct {
	service      usecase.PlantUsecase
	plantRepo    *mockRepo.MockPlantRepository
	speciesRepo  *mockRepo.MockSpeciesRepository
	locationRepo *mockRepo.MockLocationRepository
	txManager    *mockRepo.MockTransactionManager
	qrCode       *mockService.MockQRCodeService
}

func createTestPlantService(t *testing.T) plantServiceFixtures {
	fx := plantServiceFixtures{
		plantRepo:    mockRepo.NewMockPlantRepository(t),
		speciesRepo:  mockRepo.NewMockSpeciesRepository(t),
		locationRepo: mockRepo.NewMockLocationRepository(t),
		txManager:    mockRepo.NewMockTransactionManager(t),
		qrCode:       mockService.NewMockQRCodeService(t),
	}
	fx.service = NewPlantService(PlantServiceParams{
		PlantRepo:    fx.plantRepo,
		SpeciesRepo:  fx.speciesRepo,
		LocationRepo: fx.locationRepo,
		TxManager:    fx.txManager,
		QRCode:       fx.qrCode,
		Logger:       discardLogger(),
		Now:          fixedNow,
	})

	return fx
}

// runInTransaction makes the transaction manager mock call fn with factory.
func runInTransaction(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func validPlantInput() *usecase.CreatePlantInput {
	return &usecase.CreatePlantInput{
		Name:         "Planta X",
		SpeciesName:  "Monstera deliciosa",
		LocationName: "Sala de Estar",
		PurchaseDate: "2024-01-15",
		Notes:        "Presente de aniversário",
	}
}

func TestPlantService_CreatePlant_Success(t *testing.T) {
	fx := createTestPlantService(t)

	ctx := context.Background()
	species := &entity.Species{ID: uuid.New(), Name: "Monstera deliciosa"}
	location := &entity.Location{ID: uuid.New(), Name: "Sala de Estar"}
	plantID := uuid.New()

	fx.speciesRepo.EXPECT().FindByName(ctx, "Monstera deliciosa").Return(species, nil)
	fx.locationRepo.EXPECT().FindByName(ctx, "Sala de Estar").Return(location, nil)
	fx.plantRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Plant")).
		Run(func(_ context.Context, plant *entity.Plant) {
			assert.Equal(t, species.ID, plant.SpeciesID)
			assert.Equal(t, location.ID, plant.LocationID)
			assert.Equal(t, civil.Date{Year: 2024, Month: 1, Day: 15}, plant.PurchaseDate)
			assert.Equal(t, entity.HealthHealthy, plant.HealthStatus)
			plant.ID = plantID
		}).
		Return(nil)
	fx.plantRepo.EXPECT().
		FindByID(ctx, plantID).
		Return(&entity.Plant{ID: plantID, Name: "Planta X", Species: species, Location: location}, nil)

	plant, err := fx.service.CreatePlant(ctx, validPlantInput())
	require.NoError(t, err)
	assert.Equal(t, plantID, plant.ID)
	assert.Equal(t, species, plant.Species)
	assert.Equal(t, location, plant.Location)
}

func TestPlantService_CreatePlant_PurchaseDate(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		wantErr bool
	}{
		{name: "today", date: testToday.String()},
		{name: "tomorrow", date: testToday.AddDays(1).String(), wantErr: true},
		{name: "not a date", date: "2024-13-45", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPlantService(t)

			ctx := context.Background()
			input := validPlantInput()
			input.PurchaseDate = tt.date

			if tt.wantErr {
				_, err := fx.service.CreatePlant(ctx, input)
				requireAppError(t, err, domainerrors.ErrValidationFailed)

				return
			}

			fx.speciesRepo.EXPECT().FindByName(ctx, mock.Anything).Return(&entity.Species{ID: uuid.New()}, nil)
			fx.locationRepo.EXPECT().FindByName(ctx, mock.Anything).Return(&entity.Location{ID: uuid.New()}, nil)
			fx.plantRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
			fx.plantRepo.EXPECT().FindByID(ctx, mock.Anything).Return(&entity.Plant{}, nil)

			_, err := fx.service.CreatePlant(ctx, input)
			require.NoError(t, err)
		})
	}
}

func TestPlantService_CreatePlant_RejectsDigitsInName(t *testing.T) {
	fx := createTestPlantService(t)

	input := validPlantInput()
	input.Name = "Planta 2"

	_, err := fx.service.CreatePlant(context.Background(), input)
	requireAppError(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "name")
}

func TestPlantService_CreatePlant_UnknownSpecies(t *testing.T) {
	fx := createTestPlantService(t)

	ctx := context.Background()

	fx.speciesRepo.EXPECT().FindByName(ctx, "Monstera deliciosa").Return(nil, repository.ErrNotFound)

	_, err := fx.service.CreatePlant(ctx, validPlantInput())
	requireAppError(t, err, domainerrors.ErrNotFound)
	assert.Contains(t, err.Error(), "Monstera deliciosa")
}

func TestPlantService_UpdatePlant_ReResolvesLocation(t *testing.T) {
	fx := createTestPlantService(t)

	ctx := context.Background()
	id := uuid.New()
	newLocation := &entity.Location{ID: uuid.New(), Name: "Varanda"}
	existing := &entity.Plant{
		ID:         id,
		Name:       "Planta X",
		SpeciesID:  uuid.New(),
		LocationID: uuid.New(),
		Species:    &entity.Species{},
		Location:   &entity.Location{},
	}

	fx.plantRepo.EXPECT().FindByID(ctx, id).Return(existing, nil)
	fx.locationRepo.EXPECT().FindByName(ctx, "Varanda").Return(newLocation, nil)
	fx.plantRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(p *entity.Plant) bool {
			return p.LocationID == newLocation.ID && p.Name == "Planta X"
		})).
		Return(nil)

	plant, err := fx.service.UpdatePlant(ctx, id, &usecase.UpdatePlantInput{LocationName: ptr("Varanda")})
	require.NoError(t, err)
	assert.Equal(t, newLocation.ID, plant.LocationID)
}

func TestPlantService_FindByName_Miss(t *testing.T) {
	fx := createTestPlantService(t)

	ctx := context.Background()

	fx.plantRepo.EXPECT().FindByNameFold(ctx, "Cacto").Return(nil, repository.ErrNotFound)
	fx.plantRepo.EXPECT().FindByNameContains(ctx, "Cacto").Return(nil, repository.ErrNotFound)
	fx.plantRepo.EXPECT().FindAll(ctx, repository.PlantFilter{}).Return(nil, nil)

	plant, err := fx.service.FindByName(ctx, "Cacto")
	require.NoError(t, err)
	assert.Nil(t, plant)
}

func TestPlantService_DeletePlant_RemovesCareHistory(t *testing.T) {
	fx := createTestPlantService(t)

	ctx := context.Background()
	id := uuid.New()
	factory := mockRepo.NewMockRepositoryFactory(t)
	reminders := mockRepo.NewMockCareReminderRepository(t)
	logs := mockRepo.NewMockCareLogRepository(t)
	plants := mockRepo.NewMockPlantRepository(t)

	fx.plantRepo.EXPECT().FindByID(ctx, id).Return(&entity.Plant{ID: id}, nil)
	runInTransaction(fx.txManager, factory)
	factory.EXPECT().NewCareReminderRepository().Return(reminders)
	factory.EXPECT().NewCareLogRepository().Return(logs)
	factory.EXPECT().NewPlantRepository().Return(plants)
	reminders.EXPECT().DeleteByPlant(ctx, id).Return(int64(2), nil)
	logs.EXPECT().DeleteByPlant(ctx, id).Return(int64(5), nil)
	plants.EXPECT().Delete(ctx, id).Return(nil)

	require.NoError(t, fx.service.DeletePlant(ctx, id))
}

func TestPlantService_DeletePlant_NotFound(t *testing.T) {
	fx := createTestPlantService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.plantRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrNotFound)

	err := fx.service.DeletePlant(ctx, id)
	requireAppError(t, err, domainerrors.ErrNotFound)
}

func TestPlantService_RemoveAll_DeletesInDependencyOrder(t *testing.T) {
	fx := createTestPlantService(t)

	ctx := context.Background()
	factory := mockRepo.NewMockRepositoryFactory(t)
	reminders := mockRepo.NewMockCareReminderRepository(t)
	logs := mockRepo.NewMockCareLogRepository(t)
	plants := mockRepo.NewMockPlantRepository(t)

	var order []string
	runInTransaction(fx.txManager, factory)
	factory.EXPECT().NewCareReminderRepository().Return(reminders)
	factory.EXPECT().NewCareLogRepository().Return(logs)
	factory.EXPECT().NewPlantRepository().Return(plants)
	reminders.EXPECT().DeleteAll(ctx).
		Run(func(context.Context) { order = append(order, "reminders") }).
		Return(int64(3), nil)
	logs.EXPECT().DeleteAll(ctx).
		Run(func(context.Context) { order = append(order, "logs") }).
		Return(int64(7), nil)
	plants.EXPECT().DeleteAll(ctx).
		Run(func(context.Context) { order = append(order, "plants") }).
		Return(int64(2), nil)

	result, err := fx.service.RemoveAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"reminders", "logs", "plants"}, order)
	assert.Equal(t, &usecase.ResetResult{Reminders: 3, Logs: 7, Plants: 2}, result)
}

func TestPlantService_RemoveAll_RollsBackOnFailure(t *testing.T) {
	fx := createTestPlantService(t)

	ctx := context.Background()
	factory := mockRepo.NewMockRepositoryFactory(t)
	reminders := mockRepo.NewMockCareReminderRepository(t)
	logs := mockRepo.NewMockCareLogRepository(t)

	runInTransaction(fx.txManager, factory)
	factory.EXPECT().NewCareReminderRepository().Return(reminders)
	factory.EXPECT().NewCareLogRepository().Return(logs)
	reminders.EXPECT().DeleteAll(ctx).Return(int64(3), nil)
	logs.EXPECT().DeleteAll(ctx).Return(int64(0), errors.New("disk full"))

	result, err := fx.service.RemoveAll(ctx)
	requireAppError(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "disk full")
	assert.Nil(t, result)
}

func TestPlantService_PlantLabel(t *testing.T) {
	fx := createTestPlantService(t)

	ctx := context.Background()
	id := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.plantRepo.EXPECT().FindByID(ctx, id).Return(&entity.Plant{ID: id, Name: "Planta X"}, nil)
	fx.qrCode.EXPECT().GeneratePlantLabel(id, "Planta X").Return(png, nil)

	label, err := fx.service.PlantLabel(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, png, label)
}
