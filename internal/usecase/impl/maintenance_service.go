package impl

import (
	"context"
	"log/slog"

	deliverycontext "leafcare/internal/delivery/context"
	"leafcare/internal/domain/entity"
	domainerrors "leafcare/internal/domain/errors"
	"leafcare/internal/domain/repository"
	"leafcare/internal/errors"
	"leafcare/internal/usecase"

	"go.uber.org/fx"
)

type maintenanceService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// MaintenanceServiceParams holds dependencies for MaintenanceService, injected by Fx.
type MaintenanceServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewMaintenanceService creates a new maintenance service instance
func NewMaintenanceService(params MaintenanceServiceParams) usecase.MaintenanceUsecase {
	return &maintenanceService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

// SeedDefaults fills empty species and location catalogs with the default entries
func (s *maintenanceService) SeedDefaults(ctx context.Context) (*usecase.SeedResult, error) {
	result := &usecase.SeedResult{}

	err := s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		speciesRepo := repos.NewSpeciesRepository()
		count, err := speciesRepo.Count(ctx)
		if err != nil {
			return errors.Wrap(err, "count species")
		}
		if count == 0 {
			for _, species := range defaultSpecies() {
				if err := speciesRepo.Create(ctx, species); err != nil {
					return errors.Wrapf(err, "seed species %q", species.Name)
				}
				result.Species++
			}
		}

		locationRepo := repos.NewLocationRepository()
		count, err = locationRepo.Count(ctx)
		if err != nil {
			return errors.Wrap(err, "count locations")
		}
		if count == 0 {
			for _, location := range defaultLocations() {
				if err := locationRepo.Create(ctx, location); err != nil {
					return errors.Wrapf(err, "seed location %q", location.Name)
				}
				result.Locations++
			}
		}

		return nil
	})
	if err != nil {
		return nil, domainerrors.Unexpected(err, "failed to seed default catalogs")
	}

	if result.Species > 0 || result.Locations > 0 {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).InfoContext(ctx, "Seeded default catalogs",
			slog.Int("species", result.Species),
			slog.Int("locations", result.Locations),
		)
	}

	return result, nil
}

func defaultSpecies() []*entity.Species {
	return []*entity.Species{
		{
			Name:             "Monstera deliciosa",
			CommonName:       "Costela de Adão",
			Description:      "Trepadeira tropical de folhas grandes e recortadas.",
			CareInstructions: "Regar quando o substrato secar na superfície e limpar as folhas com pano úmido.",
			IdealConditions:  "Luz indireta abundante, temperatura entre 18 e 30 graus e boa umidade.",
			LightRequirement: entity.LevelMedium,
			WaterFrequency:   entity.LevelMedium,
			CareLevel:        entity.CareLevelEasy,
		},
		{
			Name:             "Ficus lyrata",
			CommonName:       "Figueira Lira",
			Description:      "Arbusto de folhas largas em formato de lira, muito usado em interiores.",
			CareInstructions: "Regar com moderação e evitar mudanças frequentes de lugar.",
			IdealConditions:  "Luz intensa filtrada, sem correntes de ar frio.",
			LightRequirement: entity.LevelHigh,
			WaterFrequency:   entity.LevelMedium,
			CareLevel:        entity.CareLevelModerate,
		},
		{
			Name:             "Sansevieria trifasciata",
			CommonName:       "Espada de São Jorge",
			Description:      "Suculenta de folhas eretas e rígidas, muito resistente.",
			CareInstructions: "Regar pouco e apenas com o substrato completamente seco.",
			IdealConditions:  "Tolera sombra e sol, prefere ambientes secos.",
			LightRequirement: entity.LevelLow,
			WaterFrequency:   entity.LevelLow,
			CareLevel:        entity.CareLevelEasy,
		},
		{
			Name:             "Epipremnum aureum",
			CommonName:       "Jiboia",
			Description:      "Trepadeira pendente de folhas em formato de coração.",
			CareInstructions: "Manter o substrato levemente úmido e podar ramos longos.",
			IdealConditions:  "Meia sombra e umidade moderada.",
			LightRequirement: entity.LevelMedium,
			WaterFrequency:   entity.LevelMedium,
			CareLevel:        entity.CareLevelEasy,
		},
		{
			Name:             "Zamioculcas zamiifolia",
			CommonName:       "Zamioculca",
			Description:      "Planta de folhas brilhantes que armazena água nos rizomas.",
			CareInstructions: "Regar a cada duas ou três semanas e evitar encharcar.",
			IdealConditions:  "Luz indireta ou sombra, temperatura amena.",
			LightRequirement: entity.LevelLow,
			WaterFrequency:   entity.LevelLow,
			CareLevel:        entity.CareLevelEasy,
		},
	}
}

func defaultLocations() []*entity.Location {
	return []*entity.Location{
		{
			Name:        "Sala de Estar",
			Type:        entity.LocationTypeIndoor,
			Sunlight:    entity.SunlightPartial,
			Humidity:    entity.LevelMedium,
			Description: "Sala principal com janela ampla voltada para o leste.",
		},
		{
			Name:        "Quarto",
			Type:        entity.LocationTypeIndoor,
			Sunlight:    entity.SunlightShade,
			Humidity:    entity.LevelLow,
			Description: "Quarto com pouca luz direta durante o dia.",
		},
		{
			Name:        "Cozinha",
			Type:        entity.LocationTypeIndoor,
			Sunlight:    entity.SunlightPartial,
			Humidity:    entity.LevelHigh,
			Description: "Cozinha arejada com umidade elevada.",
		},
		{
			Name:        "Varanda",
			Type:        entity.LocationTypeBalcony,
			Sunlight:    entity.SunlightFull,
			Humidity:    entity.LevelMedium,
			Description: "Varanda com sol da manhã e proteção contra chuva.",
		},
		{
			Name:        "Jardim",
			Type:        entity.LocationTypeGarden,
			Sunlight:    entity.SunlightFull,
			Humidity:    entity.LevelHigh,
			Description: "Área externa com canteiros e sol pleno.",
		},
	}
}
