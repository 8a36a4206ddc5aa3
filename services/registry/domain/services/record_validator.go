package services

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ghuser/scanregistry/services/registry/domain/models"
)

// ValidateName enforces business rules for a record name beyond the
// blank-name fallback applied at construction.
//
// Business rules:
//   - No leading or trailing whitespace
//   - Must not be only whitespace characters
//   - No control characters (Unicode category Cc) — they corrupt CSV rows
func ValidateName(name string) error {
	if name != strings.TrimSpace(name) {
		return fmt.Errorf("name must not have leading or trailing whitespace")
	}

	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name must not be only whitespace")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return fmt.Errorf("name must not contain control characters")
		}
	}

	return nil
}

// ValidateRecordForRegistration performs cross-field validation on a
// fully-constructed Record before it is persisted. It assumes the Record was
// built via models.NewRecord (so trimming and the name fallback are already
// applied) and adds checks that span multiple fields.
func ValidateRecordForRegistration(rec *models.Record) error {
	if rec == nil {
		return fmt.Errorf("record cannot be nil")
	}

	if rec.Code == "" {
		return fmt.Errorf("code must be set")
	}

	if err := ValidateName(rec.Name); err != nil {
		return fmt.Errorf("invalid name: %w", err)
	}

	if rec.CreatedAt.IsZero() {
		return fmt.Errorf("created_at must be set")
	}

	return nil
}
