package utils

import (
	"log"
	"strconv"
	"strings"
	"time"
)

// MaxEntryDurationMs is the plausibility ceiling for a single entry: 365 days
// in milliseconds. Anything above it is assumed to be in the wrong unit.
const MaxEntryDurationMs int64 = 365 * 24 * 60 * 60 * 1000

const millisPerHour = 1000 * 60 * 60

// ParseDuration defensively parses a raw duration token (the upstream API
// sends durations either as numbers or as decimal strings) into milliseconds.
// Unparsable, negative or implausibly large values yield 0; it never fails.
func ParseDuration(raw string) int64 {
	ms, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || ms < 0 {
		return 0
	}
	if ms > MaxEntryDurationMs {
		log.Printf("WARNING: duration %d ms exceeds plausible range, treating as malformed", ms)
		return 0
	}
	return ms
}

// MsToHours converts a raw duration token to fractional hours.
func MsToHours(raw string) float64 {
	return float64(ParseDuration(raw)) / millisPerHour
}

// ParseTimestamp parses a raw epoch-milliseconds token into a time.Time.
// A value that fails to parse falls back to the current instant rather than
// failing; a broken record should never take down the whole report.
func ParseTimestamp(raw string) time.Time {
	ms, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return time.Now()
	}
	return time.UnixMilli(ms)
}
