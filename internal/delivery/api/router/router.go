// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"leafcare/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler       *handler.HealthHandler
	SpeciesHandler      *handler.SpeciesHandler
	LocationHandler     *handler.LocationHandler
	PlantHandler        *handler.PlantHandler
	CareReminderHandler *handler.CareReminderHandler
	CareLogHandler      *handler.CareLogHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler       *handler.HealthHandler
	speciesHandler      *handler.SpeciesHandler
	locationHandler     *handler.LocationHandler
	plantHandler        *handler.PlantHandler
	careReminderHandler *handler.CareReminderHandler
	careLogHandler      *handler.CareLogHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:       params.HealthHandler,
		speciesHandler:      params.SpeciesHandler,
		locationHandler:     params.LocationHandler,
		plantHandler:        params.PlantHandler,
		careReminderHandler: params.CareReminderHandler,
		careLogHandler:      params.CareLogHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Liveness
	e.GET("/", r.healthHandler.Root)
	e.GET("/health", r.healthHandler.Health)

	speciesGroup := e.Group("/species")
	{
		speciesGroup.POST("", r.speciesHandler.CreateSpecies)
		speciesGroup.GET("", r.speciesHandler.ListSpecies)
		speciesGroup.GET("/stats/light-requirements", r.speciesHandler.LightRequirementStats)
		speciesGroup.GET("/stats/water-frequency", r.speciesHandler.WaterFrequencyStats)
		speciesGroup.GET("/easy-care", r.speciesHandler.ListEasyCare)
		speciesGroup.GET("/:id", r.speciesHandler.GetSpecies)
		speciesGroup.GET("/:id/can-remove", r.speciesHandler.CanRemove)
		speciesGroup.PATCH("/:id", r.speciesHandler.UpdateSpecies)
		speciesGroup.DELETE("/:id", r.speciesHandler.DeleteSpecies)
	}

	locationsGroup := e.Group("/locations")
	{
		locationsGroup.POST("", r.locationHandler.CreateLocation)
		locationsGroup.GET("", r.locationHandler.ListLocations)
		locationsGroup.GET("/stats", r.locationHandler.Stats)
		locationsGroup.GET("/:id", r.locationHandler.GetLocation)
		locationsGroup.GET("/:id/is-empty", r.locationHandler.IsEmpty)
		locationsGroup.PATCH("/:id", r.locationHandler.UpdateLocation)
		locationsGroup.DELETE("/:id", r.locationHandler.DeleteLocation)
	}

	plantsGroup := e.Group("/plants")
	{
		plantsGroup.POST("", r.plantHandler.CreatePlant)
		plantsGroup.GET("", r.plantHandler.ListPlants)
		plantsGroup.GET("/search", r.plantHandler.SearchByName)
		plantsGroup.GET("/location/:locationId", r.plantHandler.ListByLocation)
		plantsGroup.GET("/species/:speciesId", r.plantHandler.ListBySpecies)
		plantsGroup.GET("/:id", r.plantHandler.GetPlant)
		plantsGroup.GET("/:id/qr", r.plantHandler.PlantLabel)
		plantsGroup.PATCH("/:id", r.plantHandler.UpdatePlant)
		plantsGroup.DELETE("/:id", r.plantHandler.DeletePlant)
	}

	remindersGroup := e.Group("/care-reminders")
	{
		remindersGroup.POST("", r.careReminderHandler.CreateReminder)
		remindersGroup.GET("", r.careReminderHandler.ListReminders)
		remindersGroup.GET("/overdue", r.careReminderHandler.ListOverdue)
		remindersGroup.GET("/upcoming", r.careReminderHandler.ListUpcoming)
		remindersGroup.GET("/active", r.careReminderHandler.ListActive)
		remindersGroup.GET("/:id", r.careReminderHandler.GetReminder)
		remindersGroup.PATCH("/:id", r.careReminderHandler.UpdateReminder)
		remindersGroup.PATCH("/:id/mark-done", r.careReminderHandler.MarkDone)
		remindersGroup.DELETE("/:id", r.careReminderHandler.DeleteReminder)
	}

	logsGroup := e.Group("/care-logs")
	{
		logsGroup.POST("", r.careLogHandler.CreateLog)
		logsGroup.GET("", r.careLogHandler.ListLogs)
		logsGroup.GET("/recent", r.careLogHandler.ListRecent)
		logsGroup.GET("/stats", r.careLogHandler.Stats)
		logsGroup.GET("/:id", r.careLogHandler.GetLog)
		logsGroup.PATCH("/:id", r.careLogHandler.UpdateLog)
		logsGroup.DELETE("/:id", r.careLogHandler.DeleteLog)
	}
}

// RegisterMetricsRoute exposes the registry in the Prometheus text format.
func (r *router) RegisterMetricsRoute(e *echo.Echo, gatherer prometheus.Gatherer) {
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}
