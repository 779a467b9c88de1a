package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"leafcare/config"
	"leafcare/internal/domain/constants"
	"leafcare/internal/domain/entity"
	domainerrors "leafcare/internal/domain/errors"
	"leafcare/internal/domain/repository"
	"leafcare/internal/domain/service"
	"leafcare/internal/errors"
	"leafcare/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultRecentDays = 30

type careLogService struct {
	logRepo    repository.CareLogRepository
	resolver   *plantResolver
	publisher  service.EventPublisher
	recentDays int
	clock      clock
	logger     *slog.Logger
}

// CareLogServiceParams holds dependencies for CareLogService, injected by Fx.
type CareLogServiceParams struct {
	fx.In

	Config    *config.Config
	LogRepo   repository.CareLogRepository
	PlantRepo repository.PlantRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
	Now       func() time.Time `optional:"true"`
}

// NewCareLogService creates a new care log service instance
func NewCareLogService(params CareLogServiceParams) usecase.CareLogUsecase {
	recentDays := defaultRecentDays
	if params.Config != nil && params.Config.CareLog.RecentDays > 0 {
		recentDays = params.Config.CareLog.RecentDays
	}

	return &careLogService{
		logRepo:    params.LogRepo,
		resolver:   newPlantResolver(params.PlantRepo),
		publisher:  params.Publisher,
		recentDays: recentDays,
		clock:      newClock(params.Now),
		logger:     params.Logger,
	}
}

// CreateLog records a care action for a plant named in the input
func (s *careLogService) CreateLog(ctx context.Context, input *usecase.CreateCareLogInput) (*entity.CareLog, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	date, err := parseDate("date", input.Date)
	if err != nil {
		return nil, err
	}
	if today := s.clock.today(); date.After(today) {
		return nil, errors.WithStack(domainerrors.Validation("date %s cannot be in the future (today is %s)", date, today))
	}

	plant, err := s.resolver.Require(ctx, input.PlantName)
	if err != nil {
		return nil, err
	}

	// Check the plant/type/date key
	_, err = s.logRepo.FindByKey(ctx, plant.ID, input.Type, date)
	switch {
	case err == nil:
		return nil, errors.WithStack(domainerrors.Conflict(duplicateLogMessage, input.Type, plant.Name, date))
	case !errors.Is(err, repository.ErrNotFound):
		return nil, domainerrors.Unexpected(err, "failed to check care log key")
	}

	careLog := &entity.CareLog{
		PlantID: plant.ID,
		Type:    input.Type,
		Date:    date,
		Notes:   input.Notes,
		Photo:   input.Photo,
		Success: *input.Success,
	}

	if err := s.logRepo.Create(ctx, careLog); err != nil {
		return nil, writeError(err, "failed to create care log", duplicateLogMessage, input.Type, plant.Name, date)
	}

	// Notify subscribers
	publishCareEvent(ctx, s.publisher, s.logger, &service.CareEvent{
		EventType: constants.EventCareLogCreated,
		EntityID:  careLog.ID.String(),
		PlantID:   plant.ID.String(),
		PlantName: plant.Name,
		CareType:  careLog.Type,
		Date:      date.String(),
	})

	return s.GetLog(ctx, careLog.ID)
}

// ListLogs retrieves care logs matching the filter
func (s *careLogService) ListLogs(ctx context.Context, filter repository.CareLogFilter) ([]*entity.CareLog, error) {
	if filter.From.IsValid() && filter.To.IsValid() && filter.From.After(filter.To) {
		return nil, errors.WithStack(domainerrors.Validation("from %s must not be after to %s", filter.From, filter.To))
	}

	logs, err := s.logRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, domainerrors.Unexpected(err, "failed to list care logs")
	}

	return logs, nil
}

// ListRecent retrieves care logs from the configured recent window up to today
func (s *careLogService) ListRecent(ctx context.Context) ([]*entity.CareLog, error) {
	today := s.clock.today()

	return s.ListLogs(ctx, repository.CareLogFilter{
		From: today.AddDays(-s.recentDays),
		To:   today,
	})
}

// GetLog retrieves a care log by ID
func (s *careLogService) GetLog(ctx context.Context, id uuid.UUID) (*entity.CareLog, error) {
	careLog, err := s.logRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "failed to find care log", "care log %s not found", id)
	}

	return careLog, nil
}

// Stats counts care logs per care type
func (s *careLogService) Stats(ctx context.Context) ([]entity.CareTypeCount, error) {
	stats, err := s.logRepo.CountByType(ctx)
	if err != nil {
		return nil, domainerrors.Unexpected(err, "failed to compute care log stats")
	}

	return stats, nil
}

// UpdateLog updates the notes or outcome of a care log
func (s *careLogService) UpdateLog(ctx context.Context, id uuid.UUID, input *usecase.UpdateCareLogInput) (*entity.CareLog, error) {
	if input != nil {
		if fields := logKeyFields(input); len(fields) > 0 {
			return nil, errors.WithStack(domainerrors.Validation(
				"%s cannot be changed after creation; record a new care log instead", strings.Join(fields, ", ")))
		}
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	careLog, err := s.GetLog(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Notes != nil {
		careLog.Notes = *input.Notes
	}
	if input.Photo != nil {
		careLog.Photo = *input.Photo
	}
	if input.Success != nil {
		careLog.Success = *input.Success
	}
	careLog.Plant = nil

	if err := s.logRepo.Update(ctx, careLog); err != nil {
		return nil, writeError(err, "failed to update care log", "care log %s conflicts with another log", id)
	}

	return s.GetLog(ctx, id)
}

// DeleteLog removes a care log
func (s *careLogService) DeleteLog(ctx context.Context, id uuid.UUID) error {
	if err := s.logRepo.Delete(ctx, id); err != nil {
		return lookupError(err, "failed to delete care log", "care log %s not found", id)
	}

	return nil
}

const duplicateLogMessage = "a %s log for plant %q on %s already exists"

// logKeyFields lists the immutable key fields present in a partial update.
func logKeyFields(input *usecase.UpdateCareLogInput) []string {
	var fields []string
	if input.PlantName != nil {
		fields = append(fields, "plantName")
	}
	if input.Type != nil {
		fields = append(fields, "type")
	}
	if input.Date != nil {
		fields = append(fields, "date")
	}

	return fields
}
