package dashboard

import (
	"time"

	"github.com/2beens/fitadapt/internal/fitness"
)

// CurrentStreak counts consecutive days with at least one workout, ending today or yesterday.
// dates must be distinct and sorted newest first; future dates are skipped.
func CurrentStreak(dates []string, today time.Time) int {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	var expected time.Time
	streak := 0
	for _, raw := range dates {
		d, err := time.Parse(fitness.DateLayout, raw)
		if err != nil || d.After(day) {
			continue
		}
		if streak == 0 {
			if d.Before(day.AddDate(0, 0, -1)) {
				return 0
			}
			expected = d
		}
		if !d.Equal(expected) {
			break
		}
		streak++
		expected = expected.AddDate(0, 0, -1)
	}
	return streak
}
