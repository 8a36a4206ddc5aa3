package repositories

import (
	"context"

	"github.com/ghuser/scanregistry/services/registry/domain/models"
)

// RecordRepository is the persistence interface for the record set.
// The domain layer owns this interface; infrastructure implements it.
//
// The collection holds at most one record per code at all times. Every
// mutation is atomic: when a call returns an error the prior durable state
// is intact, and a successful return is visible to the next read.
type RecordRepository interface {
	// LoadAll returns every stored record in unspecified order.
	LoadAll(ctx context.Context) ([]*models.Record, error)

	// GetByCode retrieves one record. Returns domain.ErrRecordNotFound
	// when no record has that code.
	GetByCode(ctx context.Context, code models.Code) (*models.Record, error)

	// Create inserts a new record. When a record with the same code is
	// already committed it returns domain.ErrDuplicateCode and writes
	// nothing; the uniqueness re-check happens atomically with the insert,
	// so a pre-check that raced another writer cannot slip a second
	// registration through.
	Create(ctx context.Context, rec *models.Record) error

	// Upsert inserts the record or, when one with the same code exists,
	// replaces it entirely. Intended for edits to known records; new
	// registrations go through Create.
	Upsert(ctx context.Context, rec *models.Record) error

	// DeleteByCode removes the record with that code. Deleting an absent
	// code is a no-op, not an error; the bool reports whether a row went away.
	DeleteByCode(ctx context.Context, code models.Code) (bool, error)

	// ExistsByCode reports whether a record with the given code is
	// committed. Always reads durable state, never a cache.
	ExistsByCode(ctx context.Context, code models.Code) (bool, error)
}
