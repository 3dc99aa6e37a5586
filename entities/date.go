package entities

import (
	"errors"
	"strings"
	"time"
)

const (
	// DateLayout is the display form of an exercise date, e.g. "Sun Jan 15 2023".
	DateLayout = "Mon Jan 02 2006"
	// DayLayout is the storage form used for range filtering.
	DayLayout = "2006-01-02"
)

var ErrUnparseableDate = errors.New("unparseable date")

// calendar layouts carry no time of day; they name a day, not an instant.
var calendarLayouts = []string{
	DayLayout,
	DateLayout,
	"2006/01/02",
	"January 2, 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"Mon, 02 Jan 2006",
}

var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05.000",
}

var zonedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.RFC1123Z,
	time.RFC1123,
}

// FormatDate renders t the way exercise dates are displayed.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatDay renders t as its sortable calendar day.
func FormatDay(t time.Time) string {
	return t.Format(DayLayout)
}

// ParseDate reads a client supplied date. Calendar dates are taken as that
// day in loc; timestamps with an offset are converted to loc first.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrUnparseableDate
	}
	if loc == nil {
		loc = time.Local
	}

	for _, layout := range calendarLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.In(loc), nil
		}
	}
	return time.Time{}, ErrUnparseableDate
}
