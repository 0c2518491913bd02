package utils_test

import (
	"testing"
	"time"

	"tracktime-report/internal/utils"
)

// 2025-03-12 is a Wednesday.
var wednesday = time.Date(2025, 3, 12, 15, 30, 0, 0, time.UTC)

func TestResolveDateRange(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
	}
	endOf := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
	}

	tests := []struct {
		preset    utils.DateRangePreset
		wantStart time.Time
		wantEnd   time.Time
	}{
		{utils.PresetToday, day(12), endOf(day(12))},
		{utils.PresetYesterday, day(11), endOf(day(11))},
		{utils.PresetThisWeek, day(10), endOf(day(16))},
		{utils.PresetLastWeek, day(3), endOf(day(9))},
		{utils.PresetThisMonth, day(1), endOf(day(31))},
		{utils.PresetLastMonth, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), endOf(time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC))},
		{utils.PresetCustom, day(10), endOf(day(12))},
		{utils.DateRangePreset("bogus"), day(10), endOf(day(12))},
	}
	for _, tt := range tests {
		start, end := utils.ResolveDateRange(tt.preset, wednesday)
		if !start.Equal(tt.wantStart) {
			t.Errorf("%s: start = %v, want %v", tt.preset, start, tt.wantStart)
		}
		if !end.Equal(tt.wantEnd) {
			t.Errorf("%s: end = %v, want %v", tt.preset, end, tt.wantEnd)
		}
	}
}

func TestResolveDateRangeSundayBelongsToItsWeek(t *testing.T) {
	// A Sunday must resolve to the Monday six days earlier, not the next day.
	sunday := time.Date(2025, 3, 16, 9, 0, 0, 0, time.UTC)
	start, end := utils.ResolveDateRange(utils.PresetThisWeek, sunday)

	wantStart := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	if !start.Equal(wantStart) {
		t.Errorf("thisWeek on a Sunday: start = %v, want %v", start, wantStart)
	}
	if end.Day() != 16 {
		t.Errorf("thisWeek on a Sunday: end day = %d, want 16", end.Day())
	}
}

func TestMonthRangeAcrossYearBoundary(t *testing.T) {
	january := time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC)
	start, end := utils.ResolveDateRange(utils.PresetLastMonth, january)

	if start.Year() != 2024 || start.Month() != time.December || start.Day() != 1 {
		t.Errorf("lastMonth from January: start = %v, want 2024-12-01", start)
	}
	if end.Year() != 2024 || end.Month() != time.December || end.Day() != 31 {
		t.Errorf("lastMonth from January: end = %v, want 2024-12-31", end)
	}
}
