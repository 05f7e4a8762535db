// utils/dates.go
package utils

import (
	"fmt"
	"time"
)

const isoDateLayout = "2006-01-02"

// ParseISODate parses a YYYY-MM-DD string into a UTC midnight time.
// Building the result from explicit year/month/day components keeps
// date comparisons deterministic regardless of host timezone.
func ParseISODate(s string) (time.Time, error) {
	t, err := time.Parse(isoDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid ISO date %q: %w", s, err)
	}
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), nil
}

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}
