package impl

import (
	"context"
	"testing"

	"leafcare/config"
	"leafcare/internal/domain/constants"
	"leafcare/internal/domain/entity"
	domainerrors "leafcare/internal/domain/errors"
	"leafcare/internal/domain/repository"
	"leafcare/internal/domain/service"
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

type careLogServiceFixtures struct {
	service   usecase.CareLogUsecase
	logRepo   *mockRepo.MockCareLogRepository
	plantRepo *mockRepo.MockPlantRepository
	publisher *mockService.MockEventPublisher
}

func createTestCareLogService(t *testing.T, cfg *config.Config) careLogServiceFixtures {
	fx := careLogServiceFixtures{
		logRepo:   mockRepo.NewMockCareLogRepository(t),
		plantRepo: mockRepo.NewMockPlantRepository(t),
		publisher: mockService.NewMockEventPublisher(t),
	}
	fx.service = NewCareLogService(CareLogServiceParams{
		Config:    cfg,
		LogRepo:   fx.logRepo,
		PlantRepo: fx.plantRepo,
		Publisher: fx.publisher,
		Logger:    discardLogger(),
		Now:       fixedNow,
	})

	return fx
}

func validLogInput(date string) *usecase.CreateCareLogInput {
	return &usecase.CreateCareLogInput{
		PlantName: "Planta X",
		Type:      entity.CareTypeWatering,
		Date:      date,
		Notes:     "ok",
		Success:   ptr(true),
	}
}

func TestCareLogService_CreateLog_Today(t *testing.T) {
	fx := createTestCareLogService(t, nil)

	ctx := context.Background()
	plant := &entity.Plant{ID: uuid.New(), Name: "Planta X"}
	logID := uuid.New()

	fx.plantRepo.EXPECT().FindByNameFold(ctx, "Planta X").Return(plant, nil)
	fx.logRepo.EXPECT().FindByKey(ctx, plant.ID, entity.CareTypeWatering, testToday).Return(nil, repository.ErrNotFound)
	fx.logRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.CareLog")).
		Run(func(_ context.Context, log *entity.CareLog) {
			assert.Equal(t, testToday, log.Date)
			assert.True(t, log.Success)
			log.ID = logID
		}).
		Return(nil)
	fx.publisher.EXPECT().
		PublishCareEvent(ctx, mock.MatchedBy(func(e *service.CareEvent) bool {
			return e.EventType == constants.EventCareLogCreated &&
				e.EntityID == logID.String() &&
				e.PlantID == plant.ID.String() &&
				e.Date == testToday.String()
		})).
		Return(nil)
	fx.logRepo.EXPECT().FindByID(ctx, logID).Return(&entity.CareLog{ID: logID, PlantID: plant.ID, Date: testToday}, nil)

	careLog, err := fx.service.CreateLog(ctx, validLogInput(testToday.String()))
	require.NoError(t, err)
	assert.Equal(t, logID, careLog.ID)
}

func TestCareLogService_CreateLog_FutureDate(t *testing.T) {
	fx := createTestCareLogService(t, nil)

	_, err := fx.service.CreateLog(context.Background(), validLogInput(testToday.AddDays(1).String()))
	requireAppError(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "future")
}

func TestCareLogService_CreateLog_RequiresSuccess(t *testing.T) {
	fx := createTestCareLogService(t, nil)

	input := validLogInput("2024-01-15")
	input.Success = nil

	_, err := fx.service.CreateLog(context.Background(), input)
	requireAppError(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "success")
}

func TestCareLogService_CreateLog_Duplicate(t *testing.T) {
	fx := createTestCareLogService(t, nil)

	ctx := context.Background()
	plant := &entity.Plant{ID: uuid.New(), Name: "Planta X"}
	date := civil.Date{Year: 2024, Month: 1, Day: 15}

	fx.plantRepo.EXPECT().FindByNameFold(ctx, "Planta X").Return(plant, nil)
	fx.logRepo.EXPECT().
		FindByKey(ctx, plant.ID, entity.CareTypeWatering, date).
		Return(&entity.CareLog{ID: uuid.New()}, nil)

	_, err := fx.service.CreateLog(ctx, validLogInput("2024-01-15"))
	requireAppError(t, err, domainerrors.ErrConflict)
	assert.Contains(t, err.Error(), "2024-01-15")
}

func TestCareLogService_CreateLog_PublishFailureIsNotFatal(t *testing.T) {
	fx := createTestCareLogService(t, nil)

	ctx := context.Background()
	plant := &entity.Plant{ID: uuid.New(), Name: "Planta X"}

	fx.plantRepo.EXPECT().FindByNameFold(ctx, "Planta X").Return(plant, nil)
	fx.logRepo.EXPECT().FindByKey(ctx, plant.ID, mock.Anything, mock.Anything).Return(nil, repository.ErrNotFound)
	fx.logRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishCareEvent(ctx, mock.Anything).Return(errors.New("topic not found"))
	fx.logRepo.EXPECT().FindByID(ctx, mock.Anything).Return(&entity.CareLog{}, nil)

	_, err := fx.service.CreateLog(ctx, validLogInput("2024-01-15"))
	require.NoError(t, err)
}

func TestCareLogService_UpdateLog_RejectsKeyFields(t *testing.T) {
	fx := createTestCareLogService(t, nil)

	_, err := fx.service.UpdateLog(context.Background(), uuid.New(), &usecase.UpdateCareLogInput{
		Date:  ptr("2024-01-16"),
		Notes: ptr("valid"),
	})
	requireAppError(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "date cannot be changed")
}

func TestCareLogService_UpdateLog_Success(t *testing.T) {
	fx := createTestCareLogService(t, nil)

	ctx := context.Background()
	id := uuid.New()
	existing := &entity.CareLog{ID: id, Notes: "ok", Success: true, Plant: &entity.Plant{}}

	fx.logRepo.EXPECT().FindByID(ctx, id).Return(existing, nil)
	fx.logRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(l *entity.CareLog) bool {
			return l.Notes == "folhas amareladas" && !l.Success && l.Plant == nil
		})).
		Return(nil)

	careLog, err := fx.service.UpdateLog(ctx, id, &usecase.UpdateCareLogInput{
		Notes:   ptr("folhas amareladas"),
		Success: ptr(false),
	})
	require.NoError(t, err)
	assert.False(t, careLog.Success)
}

func TestCareLogService_ListRecent(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *config.Config
		wantFrom civil.Date
	}{
		{name: "default window", cfg: nil, wantFrom: civil.Date{Year: 2024, Month: 5, Day: 16}},
		{name: "configured window", cfg: &config.Config{CareLog: config.CareLogConfig{RecentDays: 7}}, wantFrom: civil.Date{Year: 2024, Month: 6, Day: 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCareLogService(t, tt.cfg)

			ctx := context.Background()

			fx.logRepo.EXPECT().
				FindAll(ctx, repository.CareLogFilter{From: tt.wantFrom, To: testToday}).
				Return([]*entity.CareLog{}, nil)

			_, err := fx.service.ListRecent(ctx)
			require.NoError(t, err)
		})
	}
}

func TestCareLogService_ListLogs_InvertedRange(t *testing.T) {
	fx := createTestCareLogService(t, nil)

	_, err := fx.service.ListLogs(context.Background(), repository.CareLogFilter{
		From: civil.Date{Year: 2024, Month: 6, Day: 10},
		To:   civil.Date{Year: 2024, Month: 6, Day: 1},
	})
	requireAppError(t, err, domainerrors.ErrValidationFailed)
}

func TestCareLogService_Stats(t *testing.T) {
	fx := createTestCareLogService(t, nil)

	ctx := context.Background()
	expected := []entity.CareTypeCount{{Type: entity.CareTypeWatering, Count: 12}}

	fx.logRepo.EXPECT().CountByType(ctx).Return(expected, nil)

	stats, err := fx.service.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, stats)
}

func TestCareLogService_DeleteLog(t *testing.T) {
	fx := createTestCareLogService(t, nil)

	ctx := context.Background()
	id := uuid.New()

	fx.logRepo.EXPECT().Delete(ctx, id).Return(nil)

	require.NoError(t, fx.service.DeleteLog(ctx, id))
}
