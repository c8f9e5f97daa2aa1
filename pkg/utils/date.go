package utils

import (
	"strings"
	"time"
)

// ParseCalendarDate aceita YYYY-MM-DD ou um timestamp RFC3339 e devolve
// apenas a data de calendário, à meia-noite no fuso informado
func ParseCalendarDate(dateStr string, loc *time.Location) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)

	date, err := time.ParseInLocation(time.DateOnly, dateStr, loc)
	if err == nil {
		return date, nil
	}

	ts, tsErr := time.Parse(time.RFC3339, dateStr)
	if tsErr != nil {
		return time.Time{}, err
	}

	return StartOfDay(ts.In(loc)), nil
}

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func FirstDayOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}
