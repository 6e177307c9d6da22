package entity

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidRecordDate is returned when a date is in neither accepted format.
var ErrInvalidRecordDate = errors.New("invalid date, use DD/MM/YYYY or YYYY-MM-DD")

const (
	// DisplayDateLayout is the layout used when a date is generated server-side.
	DisplayDateLayout = "02/01/2006"

	dayFirstLayout = "2/1/2006"
	isoLayout      = "2006-1-2"
)

// RecordDate pairs the date string shown to staff with a calendar key used
// for ordering. The display string is kept exactly as entered.
type RecordDate struct {
	Display string
	Key     time.Time
}

// ParseCalendarDate accepts D/M/YYYY (when the text contains a slash) or
// YYYY-M-D and returns the date at midnight UTC.
func ParseCalendarDate(text string) (time.Time, error) {
	text = strings.TrimSpace(text)
	layout := isoLayout
	if strings.Contains(text, "/") {
		layout = dayFirstLayout
	}
	t, err := time.Parse(layout, text)
	if err != nil {
		return time.Time{}, ErrInvalidRecordDate
	}
	return t, nil
}

// ParseRecordDate validates a user-supplied date. An empty string means
// "today" and renders as DD/MM/YYYY.
func ParseRecordDate(text string, now time.Time) (RecordDate, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		return RecordDate{Display: day.Format(DisplayDateLayout), Key: day}, nil
	}
	key, err := ParseCalendarDate(text)
	if err != nil {
		return RecordDate{}, err
	}
	return RecordDate{Display: text, Key: key}, nil
}
