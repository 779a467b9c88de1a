package impl

import (
	"context"
	"testing"

	domainerrors "leafcare/internal/domain/errors"
	"leafcare/internal/domain/repository"
	mockRepo "leafcare/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMaintenanceService_SeedDefaults_EmptyCatalogs(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	speciesRepo := mockRepo.NewMockSpeciesRepository(t)
	locationRepo := mockRepo.NewMockLocationRepository(t)
	service := NewMaintenanceService(MaintenanceServiceParams{TxManager: txManager, Logger: discardLogger()})

	ctx := context.Background()

	runInTransaction(txManager, factory)
	factory.EXPECT().NewSpeciesRepository().Return(speciesRepo)
	factory.EXPECT().NewLocationRepository().Return(locationRepo)
	speciesRepo.EXPECT().Count(ctx).Return(int64(0), nil)
	speciesRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Species")).Return(nil).Times(5)
	locationRepo.EXPECT().Count(ctx).Return(int64(0), nil)
	locationRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Location")).Return(nil).Times(5)

	result, err := service.SeedDefaults(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, result.Species)
	assert.Equal(t, 5, result.Locations)
}

func TestMaintenanceService_SeedDefaults_Idempotent(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	speciesRepo := mockRepo.NewMockSpeciesRepository(t)
	locationRepo := mockRepo.NewMockLocationRepository(t)
	service := NewMaintenanceService(MaintenanceServiceParams{TxManager: txManager, Logger: discardLogger()})

	ctx := context.Background()

	runInTransaction(txManager, factory)
	factory.EXPECT().NewSpeciesRepository().Return(speciesRepo)
	factory.EXPECT().NewLocationRepository().Return(locationRepo)
	speciesRepo.EXPECT().Count(ctx).Return(int64(5), nil)
	locationRepo.EXPECT().Count(ctx).Return(int64(2), nil)

	result, err := service.SeedDefaults(ctx)
	require.NoError(t, err)
	assert.Zero(t, result.Species)
	assert.Zero(t, result.Locations)
}

func TestMaintenanceService_SeedDefaults_Failure(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	speciesRepo := mockRepo.NewMockSpeciesRepository(t)
	service := NewMaintenanceService(MaintenanceServiceParams{TxManager: txManager, Logger: discardLogger()})

	ctx := context.Background()

	runInTransaction(txManager, factory)
	factory.EXPECT().NewSpeciesRepository().Return(speciesRepo)
	speciesRepo.EXPECT().Count(ctx).Return(int64(0), nil)
	speciesRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicate).Once()

	_, err := service.SeedDefaults(ctx)
	requireAppError(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "Monstera deliciosa")
}
