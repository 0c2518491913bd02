package utils

import "time"

// DateRangePreset is a named shorthand for a calendar-relative date range.
type DateRangePreset string

const (
	PresetToday     DateRangePreset = "today"
	PresetYesterday DateRangePreset = "yesterday"
	PresetThisWeek  DateRangePreset = "thisWeek"
	PresetLastWeek  DateRangePreset = "lastWeek"
	PresetThisMonth DateRangePreset = "thisMonth"
	PresetLastMonth DateRangePreset = "lastMonth"
	PresetCustom    DateRangePreset = "custom"
)

// ResolveDateRange maps a preset to a concrete [start, end] pair relative to
// now. Weeks start on Monday and both boundaries cover their full calendar
// day. Unrecognized presets (including "custom") fall back to Monday of the
// current week through the end of the current day.
func ResolveDateRange(preset DateRangePreset, now time.Time) (start, end time.Time) {
	switch preset {
	case PresetToday:
		return StartOfDay(now), EndOfDay(now)
	case PresetYesterday:
		yesterday := now.AddDate(0, 0, -1)
		return StartOfDay(yesterday), EndOfDay(yesterday)
	case PresetThisWeek:
		return WeekRange(now)
	case PresetLastWeek:
		return WeekRange(now.AddDate(0, 0, -7))
	case PresetThisMonth:
		return MonthRange(now)
	case PresetLastMonth:
		firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return MonthRange(firstOfMonth.AddDate(0, -1, 0))
	default:
		monday, _ := WeekRange(now)
		return monday, EndOfDay(now)
	}
}

// StartOfDay returns 00:00:00.000 of the same day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of the same day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
}

// WeekRange returns the Monday 00:00 and Sunday end-of-day bounding t.
func WeekRange(t time.Time) (monday, sunday time.Time) {
	// Go's weekday: Sunday=0, Monday=1, ..., Saturday=6
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	monday = StartOfDay(t.AddDate(0, 0, -(weekday - 1)))
	sunday = EndOfDay(monday.AddDate(0, 0, 6))
	return monday, sunday
}

// MonthRange returns the first and last day of t's month, full-day bounds.
func MonthRange(t time.Time) (first, last time.Time) {
	first = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last = EndOfDay(first.AddDate(0, 1, -1))
	return first, last
}
