// Package bootstrap groups the fx providers shared by the API server and the operator CLI.
package bootstrap

import (
	"context"

	"leafcare/config"
	logs "leafcare/internal/infra/log"
	"leafcare/internal/infra/notification"
	"leafcare/internal/infra/persistence/gormdb"
	"leafcare/internal/infra/pubsub"
	"leafcare/internal/infra/qrcode"
	"leafcare/internal/usecase/impl"

	"go.uber.org/fx"
)

// Infra provides configuration, logging and the database handle.
func Infra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		gormdb.New,
	)
}

// Repositories provides the GORM repositories and the transaction manager.
func Repositories() fx.Option {
	return fx.Options(
		fx.Provide(
			gormdb.NewSpeciesRepository,
			gormdb.NewLocationRepository,
			gormdb.NewPlantRepository,
			gormdb.NewCareReminderRepository,
			gormdb.NewCareLogRepository,
			gormdb.NewTransactionManager,
		),
	)
}

// Services provides the outbound ports: events, push notifications and QR labels.
func Services() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			notification.New,
			qrcode.New,
		),
	)
}

// Usecases provides the application services.
func Usecases() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSpeciesService,
			impl.NewLocationService,
			impl.NewPlantService,
			impl.NewCareReminderService,
			impl.NewCareLogService,
			impl.NewMaintenanceService,
		),
	)
}

// Core is everything below the delivery layer.
func Core() fx.Option {
	return fx.Options(
		Infra(),
		Repositories(),
		Services(),
		Usecases(),
	)
}
