package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"leafcare/config"
	deliverycontext "leafcare/internal/delivery/context"
	"leafcare/internal/domain/constants"
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

const defaultReminderTopic = "care-reminders"

type careReminderService struct {
	reminderRepo repository.CareReminderRepository
	txManager    repository.TransactionManager
	resolver     *plantResolver
	publisher    service.EventPublisher
	notifier     service.NotificationService
	topic        string
	clock        clock
	logger       *slog.Logger
}

// CareReminderServiceParams holds dependencies for CareReminderService, injected by Fx.
type CareReminderServiceParams struct {
	fx.In

	Config       *config.Config
	ReminderRepo repository.CareReminderRepository
	PlantRepo    repository.PlantRepository
	TxManager    repository.TransactionManager
	Publisher    service.EventPublisher
	Notifier     service.NotificationService
	Logger       *slog.Logger
	Now          func() time.Time `optional:"true"`
}

// NewCareReminderService creates a new care reminder service instance
func NewCareReminderService(params CareReminderServiceParams) usecase.CareReminderUsecase {
	topic := defaultReminderTopic
	if params.Config != nil && params.Config.Firebase != nil && params.Config.Firebase.Topic != "" {
		topic = params.Config.Firebase.Topic
	}

	return &careReminderService{
		reminderRepo: params.ReminderRepo,
		txManager:    params.TxManager,
		resolver:     newPlantResolver(params.PlantRepo),
		publisher:    params.Publisher,
		notifier:     params.Notifier,
		topic:        topic,
		clock:        newClock(params.Now),
		logger:       params.Logger,
	}
}

// CreateReminder schedules a new care reminder for a plant named in the input
func (s *careReminderService) CreateReminder(ctx context.Context, input *usecase.CreateCareReminderInput) (*entity.CareReminder, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	lastDone, err := parseDate("lastDone", input.LastDone)
	if err != nil {
		return nil, err
	}
	nextDue, err := parseDate("nextDue", input.NextDue)
	if err != nil {
		return nil, err
	}

	today := s.clock.today()
	if lastDone.After(today) {
		return nil, errors.WithStack(domainerrors.Validation("lastDone %s cannot be in the future (today is %s)", lastDone, today))
	}
	if !nextDue.After(today) {
		return nil, errors.WithStack(domainerrors.Validation("nextDue %s must be after today (%s)", nextDue, today))
	}
	if !nextDue.After(lastDone) {
		return nil, errors.WithStack(domainerrors.Validation("nextDue %s must be after lastDone %s", nextDue, lastDone))
	}

	plant, err := s.resolver.Require(ctx, input.PlantName)
	if err != nil {
		return nil, err
	}

	if err := s.ensureKeyFree(ctx, plant, input.Type, nextDue); err != nil {
		return nil, err
	}

	reminder := &entity.CareReminder{
		PlantID:   plant.ID,
		Type:      input.Type,
		Frequency: input.Frequency,
		LastDone:  lastDone,
		NextDue:   nextDue,
		Notes:     input.Notes,
		IsActive:  true,
	}
	if input.IsActive != nil {
		reminder.IsActive = *input.IsActive
	}

	if err := s.reminderRepo.Create(ctx, reminder); err != nil {
		return nil, writeError(err, "failed to create care reminder", duplicateReminderMessage, input.Type, plant.Name, nextDue)
	}

	return s.GetReminder(ctx, reminder.ID)
}

// ListReminders retrieves care reminders matching the filter
func (s *careReminderService) ListReminders(ctx context.Context, filter repository.CareReminderFilter) ([]*entity.CareReminder, error) {
	reminders, err := s.reminderRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, domainerrors.Unexpected(err, "failed to list care reminders")
	}

	return reminders, nil
}

// GetReminder retrieves a care reminder by ID
func (s *careReminderService) GetReminder(ctx context.Context, id uuid.UUID) (*entity.CareReminder, error) {
	reminder, err := s.reminderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "failed to find care reminder", "care reminder %s not found", id)
	}

	return reminder, nil
}

// ListOverdue retrieves active reminders last done today or earlier
func (s *careReminderService) ListOverdue(ctx context.Context) ([]*entity.CareReminder, error) {
	reminders, err := s.reminderRepo.FindActiveLastDoneOnOrBefore(ctx, s.clock.today())
	if err != nil {
		return nil, domainerrors.Unexpected(err, "failed to list overdue care reminders")
	}

	return reminders, nil
}

// ListUpcoming retrieves active reminders due after today
func (s *careReminderService) ListUpcoming(ctx context.Context) ([]*entity.CareReminder, error) {
	reminders, err := s.reminderRepo.FindActiveDueAfter(ctx, s.clock.today())
	if err != nil {
		return nil, domainerrors.Unexpected(err, "failed to list upcoming care reminders")
	}

	return reminders, nil
}

// ListActive retrieves every active reminder
func (s *careReminderService) ListActive(ctx context.Context) ([]*entity.CareReminder, error) {
	return s.ListReminders(ctx, repository.CareReminderFilter{ActiveOnly: true})
}

// UpdateReminder updates the mutable fields of a care reminder
func (s *careReminderService) UpdateReminder(ctx context.Context, id uuid.UUID, input *usecase.UpdateCareReminderInput) (*entity.CareReminder, error) {
	if input != nil {
		if fields := reminderKeyFields(input); len(fields) > 0 {
			return nil, errors.WithStack(domainerrors.Validation(
				"%s cannot be changed after creation; create a new reminder instead", strings.Join(fields, ", ")))
		}
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	reminder, err := s.GetReminder(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.LastDone != nil {
		lastDone, err := parseDate("lastDone", *input.LastDone)
		if err != nil {
			return nil, err
		}
		if today := s.clock.today(); lastDone.After(today) {
			return nil, errors.WithStack(domainerrors.Validation("lastDone %s cannot be in the future (today is %s)", lastDone, today))
		}
		reminder.LastDone = lastDone
	}
	if input.Frequency != nil {
		reminder.Frequency = *input.Frequency
	}
	if input.Notes != nil {
		reminder.Notes = *input.Notes
	}
	if input.IsActive != nil {
		reminder.IsActive = *input.IsActive
	}
	reminder.Plant = nil

	if err := s.reminderRepo.Update(ctx, reminder); err != nil {
		return nil, writeError(err, "failed to update care reminder", "care reminder %s conflicts with another reminder", id)
	}

	return s.GetReminder(ctx, id)
}

// MarkDone records today as the last care day and moves nextDue one frequency ahead.
// The key check and the update share one transaction.
func (s *careReminderService) MarkDone(ctx context.Context, id uuid.UUID) (*entity.CareReminder, error) {
	today := s.clock.today()

	var done *entity.CareReminder
	err := s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		reminders := repos.NewCareReminderRepository()

		// 1. Reload the reminder inside the transaction
		reminder, err := reminders.FindByID(ctx, id)
		if err != nil {
			return lookupError(err, "failed to find care reminder", "care reminder %s not found", id)
		}

		nextDue := today.AddDays(reminder.Frequency)
		plantName := reminderPlantName(reminder)

		// 2. Another reminder may already own the new composite key
		if nextDue != reminder.NextDue {
			existing, err := reminders.FindByKey(ctx, reminder.PlantID, reminder.Type, nextDue)
			switch {
			case err == nil && existing.ID != reminder.ID:
				return errors.WithStack(domainerrors.Conflict(duplicateReminderMessage, reminder.Type, plantName, nextDue))
			case err != nil && !errors.Is(err, repository.ErrNotFound):
				return errors.Wrap(err, "failed to check care reminder key")
			}
		}

		// 3. Store the new schedule
		plant := reminder.Plant
		reminder.LastDone = today
		reminder.NextDue = nextDue
		reminder.Plant = nil
		if err := reminders.Update(ctx, reminder); err != nil {
			return writeError(err, "failed to mark care reminder done", duplicateReminderMessage, reminder.Type, plantName, nextDue)
		}
		reminder.Plant = plant
		done = reminder

		return nil
	})
	if err != nil {
		return nil, domainerrors.Unexpected(err, "failed to mark care reminder done")
	}

	publishCareEvent(ctx, s.publisher, s.logger, &service.CareEvent{
		EventType: constants.EventCareReminderCompleted,
		EntityID:  done.ID.String(),
		PlantID:   done.PlantID.String(),
		PlantName: reminderPlantName(done),
		CareType:  done.Type,
		Date:      today.String(),
	})

	return s.GetReminder(ctx, id)
}

func reminderPlantName(reminder *entity.CareReminder) string {
	if reminder.Plant == nil {
		return ""
	}

	return reminder.Plant.Name
}

// DeleteReminder removes a care reminder
func (s *careReminderService) DeleteReminder(ctx context.Context, id uuid.UUID) error {
	if err := s.reminderRepo.Delete(ctx, id); err != nil {
		return lookupError(err, "failed to delete care reminder", "care reminder %s not found", id)
	}

	return nil
}

// NotifyDue sends a topic notification for each active reminder due today or earlier
func (s *careReminderService) NotifyDue(ctx context.Context) (int, error) {
	today := s.clock.today()
	reminders, err := s.reminderRepo.FindActiveDueOnOrBefore(ctx, today)
	if err != nil {
		return 0, domainerrors.Unexpected(err, "failed to list due care reminders")
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	sent := 0
	var errs []error
	for _, reminder := range reminders {
		plantName := reminder.PlantID.String()
		if reminder.Plant != nil {
			plantName = reminder.Plant.Name
		}

		title := fmt.Sprintf("%s is due for %s", plantName, reminder.Type)
		body := fmt.Sprintf("Scheduled for %s. %s", reminder.NextDue, reminder.Notes)
		data := map[string]string{
			"reminder_id": reminder.ID.String(),
			"plant_id":    reminder.PlantID.String(),
			"care_type":   reminder.Type,
			"next_due":    reminder.NextDue.String(),
		}

		_, err := s.notifier.SendTopicNotification(ctx, s.topic, title, body, data)
		if errors.Is(err, service.ErrNotificationsDisabled) {
			logger.InfoContext(ctx, "Push notifications disabled, skipping due reminders",
				slog.Int("due", len(reminders)))

			return 0, nil
		}
		if err != nil {
			errs = append(errs, errors.Wrapf(err, "reminder %s", reminder.ID))

			continue
		}
		sent++
	}

	if len(errs) > 0 {
		logger.WarnContext(ctx, "Some due reminder notifications failed",
			slog.Int("sent", sent),
			slog.Int("failed", len(errs)),
			slog.Any("error", errors.Join(errs...)),
		)
	}

	return sent, nil
}

const duplicateReminderMessage = "a %s reminder for plant %q due on %s already exists"

func (s *careReminderService) ensureKeyFree(ctx context.Context, plant *entity.Plant, careType string, nextDue civil.Date) error {
	_, err := s.reminderRepo.FindByKey(ctx, plant.ID, careType, nextDue)
	switch {
	case err == nil:
		return errors.WithStack(domainerrors.Conflict(duplicateReminderMessage, careType, plant.Name, nextDue))
	case errors.Is(err, repository.ErrNotFound):
		return nil
	default:
		return domainerrors.Unexpected(err, "failed to check care reminder key")
	}
}

// reminderKeyFields lists the immutable key fields present in a partial update.
func reminderKeyFields(input *usecase.UpdateCareReminderInput) []string {
	var fields []string
	if input.PlantName != nil {
		fields = append(fields, "plantName")
	}
	if input.Type != nil {
		fields = append(fields, "type")
	}
	if input.NextDue != nil {
		fields = append(fields, "nextDue")
	}

	return fields
}
