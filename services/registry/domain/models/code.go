package models

import (
	"fmt"
	"strings"
)

// Code is a value object for the decoded QR payload. It is the primary key
// of the record set: always trimmed, never empty. Both the registration path
// and the duplicate pre-check build a Code first, so the two can never
// disagree on what counts as the same scan.
type Code string

// maxCodeLength matches the byte capacity of a version-40 QR symbol.
const maxCodeLength = 2953

// NewCode trims raw and constructs a valid Code, or returns an error if the
// result is empty or exceeds QR capacity.
func NewCode(raw string) (Code, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("code must not be empty after trimming")
	}
	if len(s) > maxCodeLength {
		return "", fmt.Errorf("code must not exceed %d bytes", maxCodeLength)
	}
	return Code(s), nil
}

// String returns the underlying string value.
func (c Code) String() string {
	return string(c)
}
