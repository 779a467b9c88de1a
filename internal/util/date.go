// Package util holds small helpers shared across layers.
package util

import (
	"regexp"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/pkg/errors"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// ErrInvalidDate is returned when a value cannot be read as a calendar date.
var ErrInvalidDate = errors.New("invalid date")

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// fallbackLayouts are tried in order when the value is not a bare YYYY-MM-DD.
var fallbackLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.RFC1123Z,
	time.RFC1123,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"January 2, 2006",
	"Jan 2, 2006",
}

// ParseLocalDate reads value as a calendar date at local midnight.
//
// A bare YYYY-MM-DD is built from its year, month and day in time.Local, so the
// calendar day never shifts with the host's UTC offset. Layouts without an offset
// are read in time.Local; values carrying an offset are converted to local time
// and then truncated to that local day.
func ParseLocalDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errors.Wrap(ErrInvalidDate, "empty value")
	}

	if isoDatePattern.MatchString(value) {
		d, err := civil.ParseDate(value)
		if err != nil || !d.IsValid() {
			return time.Time{}, errors.Wrapf(ErrInvalidDate, "%q", value)
		}

		return d.In(time.Local), nil
	}

	for _, layout := range fallbackLayouts {
		t, err := time.ParseInLocation(layout, value, time.Local)
		if err != nil {
			continue
		}

		return civil.DateOf(t.In(time.Local)).In(time.Local), nil
	}

	return time.Time{}, errors.Wrapf(ErrInvalidDate, "%q", value)
}

// ParseDate is ParseLocalDate reduced to the calendar date.
func ParseDate(value string) (civil.Date, error) {
	t, err := ParseLocalDate(value)
	if err != nil {
		return civil.Date{}, err
	}

	return civil.DateOf(t), nil
}

// Today returns the local calendar date of now.
func Today(now time.Time) civil.Date {
	return civil.DateOf(now.In(time.Local))
}
