// Package impl contains the use case implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "leafcare/internal/delivery/context"
	domainerrors "leafcare/internal/domain/errors"
	"leafcare/internal/domain/repository"
	"leafcare/internal/domain/service"
	"leafcare/internal/domain/validation"
	"leafcare/internal/errors"
	"leafcare/internal/util"

	"cloud.google.com/go/civil"
)

// clock returns today's calendar date in the server's local zone.
type clock func() time.Time

func newClock(now func() time.Time) clock {
	if now == nil {
		return time.Now
	}

	return now
}

func (c clock) today() civil.Date {
	return util.Today(c())
}

// validateInput runs the struct tag rules and reports every failing field in one error.
func validateInput(input any) error {
	if input == nil {
		return domainerrors.Validation("request body is required")
	}
	if err := validation.Struct(input); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(validation.Describe(err)))
	}

	return nil
}

// parseDate parses a date field that already passed the "date" rule.
func parseDate(field, value string) (civil.Date, error) {
	d, err := util.ParseDate(value)
	if err != nil {
		return civil.Date{}, domainerrors.Validation("%s must be a valid date", field)
	}

	return d, nil
}

// lookupError turns a repository miss into NOT_FOUND and anything else into the generic failure.
func lookupError(err error, action, format string, args ...any) error {
	if errors.Is(err, repository.ErrNotFound) {
		return errors.WithStack(domainerrors.NotFound(format, args...))
	}

	return domainerrors.Unexpected(err, action)
}

// writeError turns a unique-index collision into CONFLICT and anything else into the generic failure.
func writeError(err error, action, format string, args ...any) error {
	switch {
	case errors.Is(err, repository.ErrDuplicate):
		return errors.WithStack(domainerrors.Conflict(format, args...))
	case errors.Is(err, repository.ErrNotFound):
		return errors.WithStack(domainerrors.NotFound("the record no longer exists"))
	default:
		return domainerrors.Unexpected(err, action)
	}
}

// publishCareEvent sends a care event and only logs failures; the care action is already stored.
func publishCareEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *service.CareEvent) {
	if publisher == nil {
		return
	}

	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	if err := publisher.PublishCareEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, logger).WarnContext(ctx, "Failed to publish care event",
			slog.String("event_type", event.EventType),
			slog.String("entity_id", event.EntityID),
			slog.Any("error", err),
		)
	}
}

func stringValue(p *string) string {
	if p == nil {
		return ""
	}

	return *p
}
