package main

import (
	"context"

	"leafcare/internal/domain/entity"
	"leafcare/internal/domain/service"
	"leafcare/internal/errors"
	"leafcare/internal/infra/persistence/gormdb"
	"leafcare/internal/usecase"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var db *gorm.DB

		return withApp(cmd.Context(), func(ctx context.Context) error {
			if err := gormdb.AutoMigrate(ctx, db); err != nil {
				return err
			}

			return report(cmd.OutOrStdout(), map[string]bool{"migrated": true}, "schema is up to date")
		}, &db)
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the default species and locations into empty catalogs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var maintenance usecase.MaintenanceUsecase

		return withApp(cmd.Context(), func(ctx context.Context) error {
			result, err := maintenance.SeedDefaults(ctx)
			if err != nil {
				return err
			}

			return report(cmd.OutOrStdout(), result, "seeded %d species and %d locations", result.Species, result.Locations)
		}, &maintenance)
	},
}

var flagResetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every plant together with its reminders and care logs",
	Long: `reset removes all care reminders, care logs and plants in one transaction.
The species and location catalogs are kept.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !flagResetYes {
			return errors.New("reset deletes every plant; pass --yes to confirm")
		}

		var plants usecase.PlantUsecase

		return withApp(cmd.Context(), func(ctx context.Context) error {
			result, err := plants.RemoveAll(ctx)
			if err != nil {
				return err
			}

			return report(cmd.OutOrStdout(), result, "removed %d plants, %d reminders and %d care logs",
				result.Plants, result.Reminders, result.Logs)
		}, &plants)
	},
}

var notifyDueCmd = &cobra.Command{
	Use:   "notify-due",
	Short: "Send push notifications for active reminders due today or earlier",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var reminders usecase.CareReminderUsecase

		return withApp(cmd.Context(), func(ctx context.Context) error {
			sent, err := reminders.NotifyDue(ctx)
			if err != nil {
				return err
			}

			return report(cmd.OutOrStdout(), map[string]int{"sent": sent}, "sent %d notifications", sent)
		}, &reminders)
	},
}

var scanCmd = &cobra.Command{
	Use:   "scan <label-payload>",
	Short: "Look up the plant behind a scanned QR label",
	Long: `scan reads the JSON payload of a printed plant label, as returned by
GET /plants/:id/qr, and prints the plant it points to.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			labels service.QRCodeService
			plants usecase.PlantUsecase
		)

		return withApp(cmd.Context(), func(ctx context.Context) error {
			plantID, err := labels.ParsePlantLabel(args[0])
			if err != nil {
				return err
			}

			plant, err := plants.GetPlant(ctx, plantID)
			if err != nil {
				return err
			}

			return report(cmd.OutOrStdout(), plant, "%s (%s) at %s", plant.Name, plant.ID, plantLocationName(plant))
		}, &labels, &plants)
	},
}

func init() {
	resetCmd.Flags().BoolVar(&flagResetYes, "yes", false, "confirm deleting all plants")
}

func plantLocationName(plant *entity.Plant) string {
	if plant.Location == nil {
		return "unknown location"
	}

	return plant.Location.Name
}
