package timeutil

import (
	"fmt"
	"time"
)

// LayoutISO is the date key layout, one record per day.
const LayoutISO = "2006-01-02"

// DateKey formats a moment as the key of the day it falls on, in local time.
func DateKey(t time.Time) string {
	return t.Local().Format(LayoutISO)
}

// Today returns the date key for the current day.
func Today() string {
	return DateKey(time.Now())
}

// ParseDateKey validates a YYYY-MM-DD key.
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.Parse(LayoutISO, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("timeutil: malformed date key %q: %w", key, err)
	}
	return t, nil
}
