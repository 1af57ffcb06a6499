package clock

import "time"

// DayKeyFormat is the canonical date key used for rollover and anchors.
const DayKeyFormat = "2006-01-02"

// Clock supplies the current time. The engine never calls time.Now directly
// so tests can pin "now" for rollover, anchor, and time-of-day rules.
type Clock interface {
	Now() time.Time
}

// System is the wall-clock implementation.
type System struct{}

func (System) Now() time.Time { return time.Now() }

// Fixed always returns the same instant.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time { return f.T }

// DayKey returns the YYYY-MM-DD key for t in its own location.
func DayKey(t time.Time) string {
	return t.Format(DayKeyFormat)
}

// DayIndex returns the Monday-first weekday index: Monday=0 .. Sunday=6.
func DayIndex(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 6
	}
	return wd - 1
}

// WeekStart returns midnight of the Monday of the week containing t.
func WeekStart(t time.Time) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return midnight.AddDate(0, 0, -DayIndex(t))
}

// WeekStartKey returns the day key of the Monday of the week containing t.
// It anchors weekly challenge completions.
func WeekStartKey(t time.Time) string {
	return DayKey(WeekStart(t))
}

// IsWeekend reports whether t falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	return DayIndex(t) >= 5
}
