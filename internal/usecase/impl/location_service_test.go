package impl

import (
	"context"
	"testing"

	"leafcare/internal/domain/entity"
	domainerrors "leafcare/internal/domain/errors"
	"leafcare/internal/domain/repository"
	mockRepo "leafcare/internal/mocks/repository"
	"leafcare/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type locationServiceFixtures struct {
	service      usecase.LocationUsecase
	locationRepo *mockRepo.MockLocationRepository
	plantRepo    *mockRepo.MockPlantRepository
}

func createTestLocationService(t *testing.T) locationServiceFixtures {
	locationRepo := mockRepo.NewMockLocationRepository(t)
	plantRepo := mockRepo.NewMockPlantRepository(t)

	return locationServiceFixtures{
		service: NewLocationService(LocationServiceParams{
			LocationRepo: locationRepo,
			PlantRepo:    plantRepo,
		}),
		locationRepo: locationRepo,
		plantRepo:    plantRepo,
	}
}

func TestLocationService_CreateLocation_Success(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	input := &usecase.CreateLocationInput{
		Name:        "Sala de Estar 2",
		Type:        entity.LocationTypeIndoor,
		Sunlight:    entity.SunlightPartial,
		Humidity:    entity.LevelMedium,
		Description: "Sala com janela",
		Photo:       "https://example.com/sala.jpg",
	}

	fx.locationRepo.EXPECT().FindByName(ctx, "Sala de Estar 2").Return(nil, repository.ErrNotFound)
	fx.locationRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Location")).Return(nil)

	location, err := fx.service.CreateLocation(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, input.Name, location.Name)
	assert.Equal(t, input.Photo, location.Photo)
}

func TestLocationService_CreateLocation_InvalidEnum(t *testing.T) {
	fx := createTestLocationService(t)

	input := &usecase.CreateLocationInput{
		Name:        "Sótão",
		Type:        "attic",
		Sunlight:    "dim",
		Humidity:    entity.LevelLow,
		Description: "Sótão escuro",
	}

	_, err := fx.service.CreateLocation(context.Background(), input)
	requireAppError(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "type")
	assert.Contains(t, err.Error(), "sunlight")
}

func TestLocationService_IsEmpty(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.locationRepo.EXPECT().FindByID(ctx, id).Return(&entity.Location{ID: id}, nil)
	fx.plantRepo.EXPECT().CountByLocation(ctx, id).Return(int64(3), nil)

	empty, count, err := fx.service.IsEmpty(ctx, id)
	require.NoError(t, err)
	assert.False(t, empty)
	assert.Equal(t, int64(3), count)
}

func TestLocationService_IsEmpty_UnknownLocation(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.locationRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrNotFound)

	_, _, err := fx.service.IsEmpty(ctx, id)
	requireAppError(t, err, domainerrors.ErrNotFound)
}

func TestLocationService_DeleteLocation_Blocked(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.locationRepo.EXPECT().FindByID(ctx, id).Return(&entity.Location{ID: id, Name: "Varanda"}, nil)
	fx.plantRepo.EXPECT().CountByLocation(ctx, id).Return(int64(1), nil)

	err := fx.service.DeleteLocation(ctx, id)
	requireAppError(t, err, domainerrors.ErrConflict)
	assert.Contains(t, err.Error(), "1 plant(s)")
}

func TestLocationService_DeleteLocation_Empty(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.locationRepo.EXPECT().FindByID(ctx, id).Return(&entity.Location{ID: id, Name: "Varanda"}, nil)
	fx.plantRepo.EXPECT().CountByLocation(ctx, id).Return(int64(0), nil)
	fx.locationRepo.EXPECT().Delete(ctx, id).Return(nil)

	require.NoError(t, fx.service.DeleteLocation(ctx, id))
}

func TestLocationService_UpdateLocation_KeepsOwnName(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	id := uuid.New()
	existing := &entity.Location{ID: id, Name: "Quarto", Type: entity.LocationTypeIndoor}

	fx.locationRepo.EXPECT().FindByID(ctx, id).Return(existing, nil)
	fx.locationRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(l *entity.Location) bool {
			return l.Name == "Quarto" && l.Sunlight == entity.SunlightShade
		})).
		Return(nil)

	location, err := fx.service.UpdateLocation(ctx, id, &usecase.UpdateLocationInput{
		Name:     ptr("Quarto"),
		Sunlight: ptr(entity.SunlightShade),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.SunlightShade, location.Sunlight)
}

func TestLocationService_Stats(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	expected := []entity.LocationStat{{LocationID: uuid.New(), Name: "Jardim", PlantCount: 4}}

	fx.locationRepo.EXPECT().Stats(ctx).Return(expected, nil)

	stats, err := fx.service.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, stats)
}
