package models

import (
	"strings"
	"time"
)

// DefaultName is stored when a scan is registered without a name.
const DefaultName = "Unnamed"

// DisplayOffsetMinutes is the fixed UTC offset (EAT) recorded alongside each
// record. Informational only — display and export recompute the shift.
const DisplayOffsetMinutes = 180

// Record is the core aggregate: one scanned code, the name it was registered
// under, and the instant of first registration. CreatedAt is immutable; only
// Name may change after creation.
type Record struct {
	Code      Code
	Name      string
	CreatedAt time.Time
}

// NewRecord constructs a Record for a fresh registration. A blank name falls
// back to DefaultName; the creation instant is captured once, in UTC.
func NewRecord(code Code, rawName string) *Record {
	return &Record{
		Code:      code,
		Name:      ResolveName(rawName),
		CreatedAt: time.Now().UTC(),
	}
}

// ResolveName trims raw and substitutes DefaultName when nothing remains.
func ResolveName(raw string) string {
	if s := strings.TrimSpace(raw); s != "" {
		return s
	}
	return DefaultName
}

// Rename replaces the record's name with the trimmed newName.
// Returns false (and leaves the record untouched) when newName is blank:
// a stored name is never empty.
func (r *Record) Rename(newName string) bool {
	s := strings.TrimSpace(newName)
	if s == "" {
		return false
	}
	r.Name = s
	return true
}
