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
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type speciesServiceFixtures struct {
	service     usecase.SpeciesUsecase
	speciesRepo *mockRepo.MockSpeciesRepository
	plantRepo   *mockRepo.MockPlantRepository
}

func createTestSpeciesService(t *testing.T) speciesServiceFixtures {
	speciesRepo := mockRepo.NewMockSpeciesRepository(t)
	plantRepo := mockRepo.NewMockPlantRepository(t)

	return speciesServiceFixtures{
		service: NewSpeciesService(SpeciesServiceParams{
			SpeciesRepo: speciesRepo,
			PlantRepo:   plantRepo,
		}),
		speciesRepo: speciesRepo,
		plantRepo:   plantRepo,
	}
}

func validSpeciesInput() *usecase.CreateSpeciesInput {
	return &usecase.CreateSpeciesInput{
		Name:             "Monstera deliciosa",
		CommonName:       "Costela de Adão",
		Description:      "Trepadeira tropical",
		CareInstructions: "Regar uma vez por semana",
		IdealConditions:  "Luz indireta",
		CareLevel:        entity.CareLevelEasy,
	}
}

func TestSpeciesService_CreateSpecies_Success(t *testing.T) {
	fx := createTestSpeciesService(t)

	ctx := context.Background()
	input := validSpeciesInput()

	fx.speciesRepo.EXPECT().FindByName(ctx, "Monstera deliciosa").Return(nil, repository.ErrNotFound)
	fx.speciesRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Species")).Return(nil)

	species, err := fx.service.CreateSpecies(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "Monstera deliciosa", species.Name)
	assert.Equal(t, "Costela de Adão", species.CommonName)
	assert.Equal(t, entity.CareLevelEasy, species.CareLevel)
}

func TestSpeciesService_CreateSpecies_DuplicateName(t *testing.T) {
	fx := createTestSpeciesService(t)

	ctx := context.Background()

	fx.speciesRepo.EXPECT().
		FindByName(ctx, "Monstera deliciosa").
		Return(&entity.Species{ID: uuid.New(), Name: "Monstera deliciosa"}, nil)

	species, err := fx.service.CreateSpecies(ctx, validSpeciesInput())
	requireAppError(t, err, domainerrors.ErrConflict)
	assert.Nil(t, species)
}

func TestSpeciesService_CreateSpecies_StoreDuplicate(t *testing.T) {
	fx := createTestSpeciesService(t)

	ctx := context.Background()

	fx.speciesRepo.EXPECT().FindByName(ctx, "Monstera deliciosa").Return(nil, repository.ErrNotFound)
	fx.speciesRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicate)

	_, err := fx.service.CreateSpecies(ctx, validSpeciesInput())
	requireAppError(t, err, domainerrors.ErrConflict)
}

func TestSpeciesService_CreateSpecies_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *usecase.CreateSpeciesInput)
		field  string
	}{
		{name: "digits in name", mutate: func(in *usecase.CreateSpeciesInput) { in.Name = "Monstera 2" }, field: "name"},
		{name: "blank common name", mutate: func(in *usecase.CreateSpeciesInput) { in.CommonName = "  " }, field: "commonName"},
		{name: "photo is not a data uri", mutate: func(in *usecase.CreateSpeciesInput) { in.Photo = "https://x/y.png" }, field: "photo"},
		{name: "unknown care level", mutate: func(in *usecase.CreateSpeciesInput) { in.CareLevel = "trivial" }, field: "careLevel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSpeciesService(t)
			input := validSpeciesInput()
			tt.mutate(input)

			_, err := fx.service.CreateSpecies(context.Background(), input)
			requireAppError(t, err, domainerrors.ErrValidationFailed)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestSpeciesService_GetSpecies_NotFound(t *testing.T) {
	fx := createTestSpeciesService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.speciesRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrNotFound)

	_, err := fx.service.GetSpecies(ctx, id)
	requireAppError(t, err, domainerrors.ErrNotFound)
}

func TestSpeciesService_ListSpecies_StoreFailure(t *testing.T) {
	fx := createTestSpeciesService(t)

	ctx := context.Background()

	fx.speciesRepo.EXPECT().
		FindAll(ctx, repository.SpeciesFilter{}).
		Return(nil, errors.New("database is locked"))

	_, err := fx.service.ListSpecies(ctx, repository.SpeciesFilter{})
	requireAppError(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "database is locked")
}

func TestSpeciesService_UpdateSpecies_RenameToTakenName(t *testing.T) {
	fx := createTestSpeciesService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.speciesRepo.EXPECT().FindByID(ctx, id).Return(&entity.Species{ID: id, Name: "Ficus lyrata"}, nil)
	fx.speciesRepo.EXPECT().
		FindByName(ctx, "Monstera deliciosa").
		Return(&entity.Species{ID: uuid.New(), Name: "Monstera deliciosa"}, nil)

	_, err := fx.service.UpdateSpecies(ctx, id, &usecase.UpdateSpeciesInput{Name: ptr("Monstera deliciosa")})
	requireAppError(t, err, domainerrors.ErrConflict)
}

func TestSpeciesService_UpdateSpecies_OnlyPresentFields(t *testing.T) {
	fx := createTestSpeciesService(t)

	ctx := context.Background()
	id := uuid.New()
	existing := &entity.Species{ID: id, Name: "Ficus lyrata", CommonName: "Figueira", Description: "antiga"}

	fx.speciesRepo.EXPECT().FindByID(ctx, id).Return(existing, nil).Once()
	fx.speciesRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(s *entity.Species) bool {
			return s.Name == "Ficus lyrata" && s.CommonName == "Figueira" && s.Description == "nova"
		})).
		Return(nil)
	fx.speciesRepo.EXPECT().FindByID(ctx, id).Return(existing, nil).Once()

	species, err := fx.service.UpdateSpecies(ctx, id, &usecase.UpdateSpeciesInput{Description: ptr("nova")})
	require.NoError(t, err)
	assert.Equal(t, "nova", species.Description)
}

func TestSpeciesService_DeleteSpecies(t *testing.T) {
	tests := []struct {
		name      string
		count     int64
		wantErr   *domainerrors.BaseError
		wantCount string
	}{
		{name: "referenced by plants", count: 2, wantErr: domainerrors.ErrConflict, wantCount: "2 plant(s)"},
		{name: "unreferenced", count: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSpeciesService(t)

			ctx := context.Background()
			id := uuid.New()

			fx.speciesRepo.EXPECT().FindByID(ctx, id).Return(&entity.Species{ID: id, Name: "Ficus lyrata"}, nil)
			fx.plantRepo.EXPECT().CountBySpecies(ctx, id).Return(tt.count, nil)
			if tt.wantErr == nil {
				fx.speciesRepo.EXPECT().Delete(ctx, id).Return(nil)
			}

			err := fx.service.DeleteSpecies(ctx, id)
			if tt.wantErr != nil {
				requireAppError(t, err, tt.wantErr)
				assert.Contains(t, err.Error(), tt.wantCount)

				return
			}
			require.NoError(t, err)
		})
	}
}

func TestSpeciesService_DeleteSpecies_RaceWithNewPlant(t *testing.T) {
	fx := createTestSpeciesService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.speciesRepo.EXPECT().FindByID(ctx, id).Return(&entity.Species{ID: id, Name: "Ficus lyrata"}, nil)
	fx.plantRepo.EXPECT().CountBySpecies(ctx, id).Return(int64(0), nil)
	fx.speciesRepo.EXPECT().Delete(ctx, id).Return(repository.ErrReferenced)

	err := fx.service.DeleteSpecies(ctx, id)
	requireAppError(t, err, domainerrors.ErrConflict)
}

func TestSpeciesService_ListEasyCare(t *testing.T) {
	fx := createTestSpeciesService(t)

	ctx := context.Background()
	expected := []*entity.Species{{ID: uuid.New(), Name: "Zamioculcas zamiifolia"}}

	fx.speciesRepo.EXPECT().
		FindAll(ctx, repository.SpeciesFilter{CareLevel: entity.CareLevelEasy}).
		Return(expected, nil)

	species, err := fx.service.ListEasyCare(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, species)
}

func TestSpeciesService_Stats(t *testing.T) {
	fx := createTestSpeciesService(t)

	ctx := context.Background()
	light := []entity.ValueCount{{Value: "low", Count: 2}}
	water := []entity.ValueCount{{Value: "medium", Count: 3}}

	fx.speciesRepo.EXPECT().CountBy(ctx, "light_requirement").Return(light, nil)
	fx.speciesRepo.EXPECT().CountBy(ctx, "water_frequency").Return(water, nil)

	gotLight, err := fx.service.LightRequirementStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, light, gotLight)

	gotWater, err := fx.service.WaterFrequencyStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, water, gotWater)
}
