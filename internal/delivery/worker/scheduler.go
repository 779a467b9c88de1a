package worker

import (
	"context"
	"log/slog"
	"time"

	"leafcare/config"
	"leafcare/internal/delivery"
	"leafcare/internal/domain/lifecycle"
	"leafcare/internal/usecase"

	"go.uber.org/fx"
)

// reminderScheduler sends due-reminder notifications every interval.
type reminderScheduler struct {
	interval  time.Duration
	reminders usecase.CareReminderUsecase
	logger    *slog.Logger
	done      chan struct{}
}

// SchedulerParams holds dependencies for the reminder scheduler
type SchedulerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	Reminders usecase.CareReminderUsecase
}

// NewReminderScheduler creates the scheduler delivery. A zero worker.notifyInterval disables it.
func NewReminderScheduler(params SchedulerParams) (delivery.Delivery, error) {
	s := &reminderScheduler{
		interval:  params.Cfg.Worker.NotifyInterval,
		reminders: params.Reminders,
		logger:    params.Logger,
		done:      make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			close(s.done)

			return nil
		},
	})

	return s, nil
}

// Serve sweeps once immediately and then on every tick until stopped.
func (s *reminderScheduler) Serve(ctx context.Context) error {
	if s.interval <= 0 {
		s.logger.Info("Reminder scheduler disabled")

		return nil
	}

	s.logger.Info("Starting reminder scheduler", slog.Duration("interval", s.interval))
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.sweep(ctx)

		select {
		case <-ctx.Done():
			return nil
		case <-s.done:
			return nil
		case <-ticker.C:
		}
	}
}

func (s *reminderScheduler) sweep(ctx context.Context) {
	sweepCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	sent, err := s.reminders.NotifyDue(sweepCtx)
	if err != nil {
		s.logger.Error("Due reminder sweep failed", slog.Any("error", err))

		return
	}

	s.logger.Info("Due reminder sweep finished", slog.Int("sent", sent))
}
