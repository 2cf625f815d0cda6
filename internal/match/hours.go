package match

import (
	"strings"
	"time"
)

// hoursSeparator splits an opening-hours string like "09:00 - 22:00".
const hoursSeparator = " - "

// hoursUpdatingSentinel is what the crawler writes when a schedule is unknown.
const hoursUpdatingSentinel = "updating"

// IsOpenAt reports whether a schedule string covers the given instant.
// Unknown, "updating" and malformed schedules count as open: hiding a
// restaurant because of an upstream data-entry gap is worse than showing
// one that turns out to be closed. A closing time earlier than the opening
// time means the window crosses midnight ("22:00 - 06:00").
func IsOpenAt(openingHours string, now time.Time) bool {
	s := strings.TrimSpace(openingHours)
	if s == "" || strings.EqualFold(s, hoursUpdatingSentinel) {
		return true
	}

	parts := strings.SplitN(s, hoursSeparator, 2)
	if len(parts) != 2 {
		return true
	}

	start, ok := parseClock(parts[0])
	if !ok {
		return true
	}
	end, ok := parseClock(parts[1])
	if !ok {
		return true
	}

	minute := now.Hour()*60 + now.Minute()
	if start < end {
		return start <= minute && minute <= end
	}
	// Cross-midnight window.
	return minute >= start || minute <= end
}

// parseClock parses "HH:MM" into minutes since midnight.
func parseClock(s string) (int, bool) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}
