package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	domainerrors "leafcare/internal/domain/errors"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testToday is the calendar day every service test runs on.
var testToday = civil.Date{Year: 2024, Month: time.June, Day: 15}

func fixedNow() time.Time {
	return time.Date(2024, time.June, 15, 12, 0, 0, 0, time.Local)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr[T any](v T) *T {
	return &v
}

func requireAppError(t *testing.T, err error, target *domainerrors.BaseError) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, target)
}
