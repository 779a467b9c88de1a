package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "leafcare/internal/delivery/context"
	"leafcare/internal/domain/entity"
	domainerrors "leafcare/internal/domain/errors"
	"leafcare/internal/domain/repository"
	"leafcare/internal/domain/service"
	"leafcare/internal/errors"
	"leafcare/internal/usecase"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

type plantService struct {
	plantRepo    repository.PlantRepository
	speciesRepo  repository.SpeciesRepository
	locationRepo repository.LocationRepository
	txManager    repository.TransactionManager
	qrCode       service.QRCodeService
	resolver     *plantResolver
	clock        clock
	logger       *slog.Logger
}

// PlantServiceParams holds dependencies for PlantService, injected by Fx.
type PlantServiceParams struct {
	fx.In

	PlantRepo    repository.PlantRepository
	SpeciesRepo  repository.SpeciesRepository
	LocationRepo repository.LocationRepository
	TxManager    repository.TransactionManager
	QRCode       service.QRCodeService
	Logger       *slog.Logger
	Now          func() time.Time `optional:"true"`
}

// NewPlantService creates a new plant service instance
func NewPlantService(params PlantServiceParams) usecase.PlantUsecase {
	return &plantService{
		plantRepo:    params.PlantRepo,
		speciesRepo:  params.SpeciesRepo,
		locationRepo: params.LocationRepo,
		txManager:    params.TxManager,
		qrCode:       params.QRCode,
		resolver:     newPlantResolver(params.PlantRepo),
		clock:        newClock(params.Now),
		logger:       params.Logger,
	}
}

// CreatePlant registers a new plant under a species and location given by name
func (s *plantService) CreatePlant(ctx context.Context, input *usecase.CreatePlantInput) (*entity.Plant, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	purchaseDate, err := s.purchaseDate(input.PurchaseDate)
	if err != nil {
		return nil, err
	}

	// Resolve catalog references
	species, err := s.speciesByName(ctx, input.SpeciesName)
	if err != nil {
		return nil, err
	}
	location, err := s.locationByName(ctx, input.LocationName)
	if err != nil {
		return nil, err
	}

	// Create new plant
	plant := &entity.Plant{
		Name:         strings.TrimSpace(input.Name),
		SpeciesID:    species.ID,
		LocationID:   location.ID,
		PurchaseDate: purchaseDate,
		Notes:        input.Notes,
		Photo:        input.Photo,
		HealthStatus: input.HealthStatus,
	}
	if plant.HealthStatus == "" {
		plant.HealthStatus = entity.HealthHealthy
	}

	if err := s.plantRepo.Create(ctx, plant); err != nil {
		return nil, writeError(err, "failed to create plant", "plant %q already exists", plant.Name)
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).InfoContext(ctx, "Plant registered",
		slog.String("plant_id", plant.ID.String()),
		slog.String("species", species.Name),
		slog.String("location", location.Name),
	)

	return s.GetPlant(ctx, plant.ID)
}

// ListPlants retrieves plants matching the filter
func (s *plantService) ListPlants(ctx context.Context, filter repository.PlantFilter) ([]*entity.Plant, error) {
	plants, err := s.plantRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, domainerrors.Unexpected(err, "failed to list plants")
	}

	return plants, nil
}

// GetPlant retrieves a plant by ID
func (s *plantService) GetPlant(ctx context.Context, id uuid.UUID) (*entity.Plant, error) {
	plant, err := s.plantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "failed to find plant", "plant %s not found", id)
	}

	return plant, nil
}

// FindByName resolves a human-entered name to a plant, or nil when nothing matches
func (s *plantService) FindByName(ctx context.Context, name string) (*entity.Plant, error) {
	plant, err := s.resolver.Resolve(ctx, name)
	if err != nil {
		return nil, domainerrors.Unexpected(err, "failed to look up plant by name")
	}

	return plant, nil
}

// UpdatePlant updates an existing plant
func (s *plantService) UpdatePlant(ctx context.Context, id uuid.UUID, input *usecase.UpdatePlantInput) (*entity.Plant, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	plant, err := s.GetPlant(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		plant.Name = strings.TrimSpace(*input.Name)
	}
	if input.PurchaseDate != nil {
		if plant.PurchaseDate, err = s.purchaseDate(*input.PurchaseDate); err != nil {
			return nil, err
		}
	}
	if input.SpeciesName != nil {
		species, err := s.speciesByName(ctx, *input.SpeciesName)
		if err != nil {
			return nil, err
		}
		plant.SpeciesID = species.ID
	}
	if input.LocationName != nil {
		location, err := s.locationByName(ctx, *input.LocationName)
		if err != nil {
			return nil, err
		}
		plant.LocationID = location.ID
	}
	if input.Notes != nil {
		plant.Notes = *input.Notes
	}
	if input.Photo != nil {
		plant.Photo = *input.Photo
	}
	if input.HealthStatus != nil {
		plant.HealthStatus = *input.HealthStatus
	}

	// Relations were loaded by GetPlant; the IDs above are authoritative.
	plant.Species, plant.Location = nil, nil

	if err := s.plantRepo.Update(ctx, plant); err != nil {
		return nil, writeError(err, "failed to update plant", "plant %q already exists", plant.Name)
	}

	return s.GetPlant(ctx, id)
}

// DeletePlant removes a plant together with its reminders and care logs
func (s *plantService) DeletePlant(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetPlant(ctx, id); err != nil {
		return err
	}

	err := s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if _, err := repos.NewCareReminderRepository().DeleteByPlant(ctx, id); err != nil {
			return errors.Wrap(err, "delete reminders")
		}
		if _, err := repos.NewCareLogRepository().DeleteByPlant(ctx, id); err != nil {
			return errors.Wrap(err, "delete logs")
		}

		return repos.NewPlantRepository().Delete(ctx, id)
	})
	if err != nil {
		return lookupError(err, "failed to delete plant", "plant %s not found", id)
	}

	return nil
}

// RemoveAll deletes every plant, reminder and care log in one transaction
func (s *plantService) RemoveAll(ctx context.Context) (*usecase.ResetResult, error) {
	result := &usecase.ResetResult{}

	err := s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		var err error
		if result.Reminders, err = repos.NewCareReminderRepository().DeleteAll(ctx); err != nil {
			return errors.Wrap(err, "delete reminders")
		}
		if result.Logs, err = repos.NewCareLogRepository().DeleteAll(ctx); err != nil {
			return errors.Wrap(err, "delete logs")
		}
		if result.Plants, err = repos.NewPlantRepository().DeleteAll(ctx); err != nil {
			return errors.Wrap(err, "delete plants")
		}

		return nil
	})
	if err != nil {
		return nil, domainerrors.Unexpected(err, "failed to remove all plants")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).WarnContext(ctx, "Plant registry reset",
		slog.Int64("reminders", result.Reminders),
		slog.Int64("logs", result.Logs),
		slog.Int64("plants", result.Plants),
	)

	return result, nil
}

// PlantLabel renders the QR label of a plant as PNG
func (s *plantService) PlantLabel(ctx context.Context, id uuid.UUID) ([]byte, error) {
	plant, err := s.GetPlant(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := s.qrCode.GeneratePlantLabel(plant.ID, plant.Name)
	if err != nil {
		return nil, domainerrors.Unexpected(err, "failed to generate plant label")
	}

	return png, nil
}

// purchaseDate parses the purchase date and refuses days after today.
func (s *plantService) purchaseDate(value string) (civil.Date, error) {
	d, err := parseDate("purchaseDate", value)
	if err != nil {
		return civil.Date{}, err
	}
	if today := s.clock.today(); d.After(today) {
		return civil.Date{}, errors.WithStack(domainerrors.Validation(
			"purchaseDate %s cannot be in the future (today is %s)", d, today))
	}

	return d, nil
}

func (s *plantService) speciesByName(ctx context.Context, name string) (*entity.Species, error) {
	name = strings.TrimSpace(name)
	species, err := s.speciesRepo.FindByName(ctx, name)
	if err != nil {
		return nil, lookupError(err, "failed to find species", "species %q not found", name)
	}

	return species, nil
}

func (s *plantService) locationByName(ctx context.Context, name string) (*entity.Location, error) {
	name = strings.TrimSpace(name)
	location, err := s.locationRepo.FindByName(ctx, name)
	if err != nil {
		return nil, lookupError(err, "failed to find location", "location %q not found", name)
	}

	return location, nil
}
