package impl

import (
	"context"
	"testing"

	"leafcare/internal/domain/entity"
	domainerrors "leafcare/internal/domain/errors"
	"leafcare/internal/domain/repository"
	mockRepo "leafcare/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlantResolver_ExactMatchIgnoringCase(t *testing.T) {
	plantRepo := mockRepo.NewMockPlantRepository(t)
	resolver := newPlantResolver(plantRepo)

	ctx := context.Background()
	plant := &entity.Plant{ID: uuid.New(), Name: "Planta X"}

	plantRepo.EXPECT().FindByNameFold(ctx, "planta x").Return(plant, nil)

	got, err := resolver.Resolve(ctx, "  planta x ")
	require.NoError(t, err)
	assert.Equal(t, plant, got)
}

func TestPlantResolver_FallsBackToSubstring(t *testing.T) {
	plantRepo := mockRepo.NewMockPlantRepository(t)
	resolver := newPlantResolver(plantRepo)

	ctx := context.Background()
	plant := &entity.Plant{ID: uuid.New(), Name: "Monstera da sala"}

	plantRepo.EXPECT().FindByNameFold(ctx, "monstera").Return(nil, repository.ErrNotFound)
	plantRepo.EXPECT().FindByNameContains(ctx, "monstera").Return(plant, nil)

	got, err := resolver.Resolve(ctx, "monstera")
	require.NoError(t, err)
	assert.Equal(t, plant, got)
}

func TestPlantResolver_FallsBackToNormalizedScan(t *testing.T) {
	plantRepo := mockRepo.NewMockPlantRepository(t)
	resolver := newPlantResolver(plantRepo)

	ctx := context.Background()
	other := &entity.Plant{ID: uuid.New(), Name: "Samambaia"}
	plant := &entity.Plant{ID: uuid.New(), Name: "Jibóia  São   José"}

	plantRepo.EXPECT().FindByNameFold(ctx, "jiboia sao jose").Return(nil, repository.ErrNotFound)
	plantRepo.EXPECT().FindByNameContains(ctx, "jiboia sao jose").Return(nil, repository.ErrNotFound)
	plantRepo.EXPECT().FindAll(ctx, repository.PlantFilter{}).Return([]*entity.Plant{other, plant}, nil)

	got, err := resolver.Resolve(ctx, "jiboia sao jose")
	require.NoError(t, err)
	assert.Equal(t, plant, got)
}

func TestPlantResolver_NoMatch(t *testing.T) {
	plantRepo := mockRepo.NewMockPlantRepository(t)
	resolver := newPlantResolver(plantRepo)

	ctx := context.Background()

	plantRepo.EXPECT().FindByNameFold(ctx, "Cacto").Return(nil, repository.ErrNotFound)
	plantRepo.EXPECT().FindByNameContains(ctx, "Cacto").Return(nil, repository.ErrNotFound)
	plantRepo.EXPECT().FindAll(ctx, repository.PlantFilter{}).Return([]*entity.Plant{{Name: "Samambaia"}}, nil)

	got, err := resolver.Resolve(ctx, "Cacto")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPlantResolver_BlankNameSkipsLookups(t *testing.T) {
	plantRepo := mockRepo.NewMockPlantRepository(t)
	resolver := newPlantResolver(plantRepo)

	got, err := resolver.Resolve(context.Background(), "   ")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPlantResolver_RepositoryError(t *testing.T) {
	plantRepo := mockRepo.NewMockPlantRepository(t)
	resolver := newPlantResolver(plantRepo)

	ctx := context.Background()
	dbErr := errors.New("connection reset")

	plantRepo.EXPECT().FindByNameFold(ctx, "Planta X").Return(nil, dbErr)

	got, err := resolver.Resolve(ctx, "Planta X")
	assert.ErrorIs(t, err, dbErr)
	assert.Nil(t, got)
}

func TestPlantResolver_RequireMiss(t *testing.T) {
	plantRepo := mockRepo.NewMockPlantRepository(t)
	resolver := newPlantResolver(plantRepo)

	ctx := context.Background()

	plantRepo.EXPECT().FindByNameFold(ctx, "Cacto").Return(nil, repository.ErrNotFound)
	plantRepo.EXPECT().FindByNameContains(ctx, "Cacto").Return(nil, repository.ErrNotFound)
	plantRepo.EXPECT().FindAll(ctx, repository.PlantFilter{}).Return(nil, nil)

	got, err := resolver.Require(ctx, "Cacto")
	requireAppError(t, err, domainerrors.ErrNotFound)
	assert.Contains(t, err.Error(), `"Cacto"`)
	assert.Nil(t, got)
}

func TestNormalizeName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "Planta X", want: "planta x"},
		{in: "  Jibóia   São José ", want: "jiboia sao jose"},
		{in: "COSTELA DE ADÃO", want: "costela de adao"},
		{in: "Espada\tde\nSão Jorge", want: "espada de sao jorge"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, normalizeName(tt.in))
		})
	}
}
