package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Locale carries the display conventions that vary by region. The dashboard
// ships with Brazilian Portuguese defaults.
type Locale struct {
	DecimalSeparator string
}

// BrazilianPortuguese is the default display locale.
var BrazilianPortuguese = Locale{DecimalSeparator: ","}

// FormatHoursDisplay formats fractional hours as "Xh Ymin", dropping either
// component when it is zero. NaN and negative values render as "0min", and
// anything under 0.1h is shown in minutes only.
func FormatHoursDisplay(hours float64) string {
	if math.IsNaN(hours) || hours < 0 {
		return "0min"
	}
	if hours < 0.1 {
		return fmt.Sprintf("%dmin", int(math.Round(hours*60)))
	}
	h := int(hours)
	m := int(math.Round((hours - float64(h)) * 60))
	if h == 0 {
		return fmt.Sprintf("%dmin", m)
	}
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dmin", h, m)
}

// FormatDuration formats a raw millisecond duration token as "Xh Ymin".
func FormatDuration(raw string) string {
	totalMinutes := ParseDuration(raw) / (1000 * 60)
	hours := totalMinutes / 60
	minutes := totalMinutes % 60
	if hours == 0 {
		return fmt.Sprintf("%dmin", minutes)
	}
	if minutes == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dmin", hours, minutes)
}

// FormatHoursDecimal formats hours with one fractional digit and the locale's
// decimal separator, e.g. "2,5h".
func (l Locale) FormatHoursDecimal(hours float64) string {
	if math.IsNaN(hours) || hours < 0 {
		return "0" + l.DecimalSeparator + "0h"
	}
	return strings.Replace(strconv.FormatFloat(hours, 'f', 1, 64), ".", l.DecimalSeparator, 1) + "h"
}

// FormatDate formats a date value as dd/MM/yyyy. It accepts a time.Time, an
// epoch-milliseconds number, a digit-only epoch string or an ISO-8601 string.
func FormatDate(value any) string {
	return coerceTime(value).Format("02/01/2006")
}

// FormatDateTime formats a date value as dd/MM/yyyy HH:mm.
func FormatDateTime(value any) string {
	return coerceTime(value).Format("02/01/2006 15:04")
}

// FormatTime formats a time.Time as HH:MM in 24-hour format
func FormatTime(t time.Time) string {
	return t.Format("15:04")
}

// FormatDayKey formats a time.Time as the yyyy-MM-dd grouping key
func FormatDayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func coerceTime(value any) time.Time {
	switch v := value.(type) {
	case time.Time:
		return v
	case int64:
		return time.UnixMilli(v)
	case int:
		return time.UnixMilli(int64(v))
	case float64:
		return time.UnixMilli(int64(v))
	case string:
		if digitsOnly(v) {
			return ParseTimestamp(v)
		}
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t
		}
		if t, err := time.Parse("2006-01-02", v); err == nil {
			return t
		}
		return time.Now()
	default:
		return time.Now()
	}
}

func digitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
