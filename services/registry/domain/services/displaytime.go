// Package services contains stateless domain services for the registry
// bounded context. Domain services enforce business rules that operate purely
// on domain types and have zero external dependencies beyond stdlib and the
// domain layer.
package services

import (
	"strings"
	"time"
)

// EAT is the fixed display timezone: UTC+3, no daylight saving, regardless of
// the host's local zone or geographic rules.
var EAT = time.FixedZone("EAT", 3*60*60)

const (
	humanLayout = "Jan 2, 2006, 3:04 PM MST"
	csvLayout   = "01/02/2006 15:04:05 MST"

	// Sentinels for timestamps that cannot be formatted.
	unknownDate = "Unknown date"
	invalidDate = "Invalid date"
	notAvail    = "N/A"
)

// ToDisplay converts an absolute instant to EAT wall-clock time.
func ToDisplay(t time.Time) time.Time {
	return t.In(EAT)
}

// FormatHuman renders t for display: 12-hour clock, abbreviated month,
// unpadded day and hour, e.g. "Jan 1, 2024, 3:00 AM EAT".
// A zero instant renders as "Unknown date".
func FormatHuman(t time.Time) string {
	if t.IsZero() {
		return unknownDate
	}
	return t.In(EAT).Format(humanLayout)
}

// FormatCSV renders t for export: 24-hour clock, every numeric field
// zero-padded, e.g. "01/01/2024 03:00:00 EAT".
// A zero instant renders as "N/A".
func FormatCSV(t time.Time) string {
	if t.IsZero() {
		return notAvail
	}
	return t.In(EAT).Format(csvLayout)
}

// FormatHumanISO is FormatHuman over a persisted ISO-8601 string.
// Empty input renders as "Unknown date", unparseable input as "Invalid date".
// Never panics.
func FormatHumanISO(s string) string {
	if strings.TrimSpace(s) == "" {
		return unknownDate
	}
	t, err := ParseInstant(s)
	if err != nil {
		return invalidDate
	}
	return FormatHuman(t)
}

// FormatCSVISO is FormatCSV over a persisted ISO-8601 string.
// Empty and unparseable input both render as "N/A". Never panics.
func FormatCSVISO(s string) string {
	if strings.TrimSpace(s) == "" {
		return notAvail
	}
	t, err := ParseInstant(s)
	if err != nil {
		return notAvail
	}
	return FormatCSV(t)
}

// ParseInstant parses a persisted ISO-8601 timestamp into an absolute instant.
func ParseInstant(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, strings.TrimSpace(s))
}
