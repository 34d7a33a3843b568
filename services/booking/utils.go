package booking

import (
	"fmt"
	"time"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// normalizeClock parses a wall-clock string and returns it zero padded as
// "HH:MM", so lexicographic comparison matches chronological order.
func normalizeClock(s string) (string, error) {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(clockLayout), nil
		}
	}
	return "", fmt.Errorf("invalid time %q, expected HH:MM", s)
}

// parseDate validates a calendar date string.
func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.Local)
}

// combineDateTime builds the absolute start instant of a booking from its
// date and wall-clock strings.
func combineDateTime(date, clock string) (time.Time, error) {
	return time.ParseInLocation(dateLayout+" "+clockLayout, date+" "+clock, time.Local)
}

// clockToMinutes converts a normalized "HH:MM" string to minutes from midnight.
func clockToMinutes(clock string) int {
	t, err := time.Parse(clockLayout, clock)
	if err != nil {
		return 0
	}
	return t.Hour()*60 + t.Minute()
}

// minutesToClock converts minutes from midnight to a normalized "HH:MM" string.
func minutesToClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// overlaps tests two half-open [start, end) ranges of normalized clock
// strings. Touching boundaries do not overlap.
func overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && aEnd > bStart
}
