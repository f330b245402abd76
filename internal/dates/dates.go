package dates

import (
	"time"
)

const (
	// DayKey is the canonical task date layout. Lexicographic order on day
	// keys matches chronological order, so keys are compared as strings.
	DayKey = "2006-01-02"

	// ClockKey is the optional task time layout (24-hour).
	ClockKey = "15:04"
)

// ParseDay parses a day key in local time. Callers must treat an error as
// "display degrades", not as a failure: malformed dates flow through the
// system untouched.
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(DayKey, s, time.Local)
}

func FormatDay(t time.Time) string {
	return t.Format(DayKey)
}

// Today truncates now to its day key.
func Today(now time.Time) string {
	return now.Format(DayKey)
}

func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// AddDays returns the day key n calendar days after the given key. The key
// is returned unchanged when it does not parse.
func AddDays(day string, n int) string {
	t, err := ParseDay(day)
	if err != nil {
		return day
	}
	return FormatDay(t.AddDate(0, 0, n))
}
