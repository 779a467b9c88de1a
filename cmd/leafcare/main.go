package main

import (
	"context"
	"log/slog"
	"os"

	"leafcare/config"
	"leafcare/internal/bootstrap"
	"leafcare/internal/delivery"
	"leafcare/internal/delivery/api"
	"leafcare/internal/delivery/api/router/handler"
	"leafcare/internal/errors"
	"leafcare/internal/usecase"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type seedParams struct {
	fx.In
	fx.Lifecycle

	Config      *config.Config
	Maintenance usecase.MaintenanceUsecase
	Logger      *slog.Logger
}

func main() {
	fx.New(
		bootstrap.Core(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			seedDefaults,
			startServer,
		),
	).Run()
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			newDBPinger,
			handler.NewHealthHandler,
			handler.NewSpeciesHandler,
			handler.NewLocationHandler,
			handler.NewPlantHandler,
			handler.NewCareReminderHandler,
			handler.NewCareLogHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// newDBPinger exposes the pool behind the GORM handle to the health check
func newDBPinger(db *gorm.DB) (handler.Pinger, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}

	return sqlDB, nil
}

// seedDefaults runs after the database hook has pinged and migrated.
func seedDefaults(params seedParams) {
	if !params.Config.Database.Seed {
		return
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			_, err := params.Maintenance.SeedDefaults(ctx)

			return err
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
