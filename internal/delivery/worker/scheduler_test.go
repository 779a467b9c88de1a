package worker

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"leafcare/config"
	"leafcare/internal/errors"
	mockusecase "leafcare/internal/mocks/usecase"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestScheduler(t *testing.T, interval time.Duration, reminders *mockusecase.MockCareReminderUsecase) (*fxtest.Lifecycle, *reminderScheduler) {
	t.Helper()

	lc := fxtest.NewLifecycle(t)
	cfg := &config.Config{Worker: config.WorkerConfig{NotifyInterval: interval}}

	d, err := NewReminderScheduler(SchedulerParams{
		Lc:        lc,
		Cfg:       cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Reminders: reminders,
	})
	require.NoError(t, err)

	return lc, d.(*reminderScheduler)
}

func TestReminderScheduler_Disabled(t *testing.T) {
	t.Parallel()

	_, s := newTestScheduler(t, 0, mockusecase.NewMockCareReminderUsecase(t))

	require.NoError(t, s.Serve(t.Context()))
}

func TestReminderScheduler_SweepsUntilStopped(t *testing.T) {
	t.Parallel()

	reminders := mockusecase.NewMockCareReminderUsecase(t)
	swept := make(chan struct{}, 1)
	reminders.EXPECT().NotifyDue(mock.Anything).
		Run(func(context.Context) {
			select {
			case swept <- struct{}{}:
			default:
			}
		}).
		Return(2, nil)

	lc, s := newTestScheduler(t, time.Hour, reminders)
	lc.RequireStart()

	served := make(chan error, 1)
	go func() { served <- s.Serve(t.Context()) }()

	select {
	case <-swept:
	case <-time.After(5 * time.Second):
		t.Fatal("first sweep did not run")
	}

	lc.RequireStop()

	select {
	case err := <-served:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestReminderScheduler_SweepErrorKeepsRunning(t *testing.T) {
	t.Parallel()

	reminders := mockusecase.NewMockCareReminderUsecase(t)
	reminders.EXPECT().NotifyDue(mock.Anything).Return(0, errors.New("db down")).Once()

	_, s := newTestScheduler(t, time.Hour, reminders)

	s.sweep(t.Context())
}
