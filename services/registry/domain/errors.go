package domain

import "errors"

// Sentinel errors for the registry domain. Use errors.Is() to check these.
var (
	// ErrRecordNotFound indicates no record exists for the requested code.
	ErrRecordNotFound = errors.New("record not found")

	// ErrDuplicateCode indicates the scanned code is already registered.
	// This is a normal outcome, not a fault; the caller acknowledges it
	// and performs no registration.
	ErrDuplicateCode = errors.New("code already registered")

	// ErrEmptyCode indicates the scanned payload is empty after trimming.
	ErrEmptyCode = errors.New("empty code")

	// ErrInvalidName indicates a name that violates domain constraints,
	// e.g. an edit attempting to store a blank name.
	ErrInvalidName = errors.New("invalid name")

	// ErrPersistence indicates the backing store failed to read or write.
	// The durable state is unchanged; the operation may be retried.
	ErrPersistence = errors.New("persistence failure")

	// ErrNothingToExport indicates an export was requested with zero records.
	ErrNothingToExport = errors.New("nothing to export")

	// ErrExportFailed indicates every delivery mechanism was exhausted.
	ErrExportFailed = errors.New("all export delivery mechanisms failed")
)
