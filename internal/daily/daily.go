// Package daily maps calendar days to dictionary positions, the way the
// game assigns one answer per day counted from a fixed epoch.
package daily

import (
	"math"
	"time"
)

// DefaultEpoch is the first day of the game.
var DefaultEpoch = time.Date(2021, time.June, 19, 0, 0, 0, 0, time.UTC)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// ParseDateKey is the inverse of DateKey.
func ParseDateKey(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.UTC)
}

// DaysSince returns the whole number of days between epoch and day,
// rounding partial days up.
func DaysSince(epoch, day time.Time) int {
	return int(math.Ceil(math.Abs(day.Sub(epoch).Hours()) / 24))
}

// WordIndex returns the dictionary index of the answer for day: one past
// the day count, wrapped to the dictionary size.
func WordIndex(epoch, day time.Time, answersLen int) int {
	if answersLen <= 0 {
		return 0
	}
	return (DaysSince(epoch, day) + 1) % answersLen
}

// Day returns the date i days after epoch.
func Day(epoch time.Time, i int) time.Time {
	return epoch.AddDate(0, 0, i)
}
