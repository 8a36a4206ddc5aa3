package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ghuser/scanregistry/pkg/database"
	registrydomain "github.com/ghuser/scanregistry/services/registry/domain"
	"github.com/ghuser/scanregistry/services/registry/domain/models"
)

// RecordRepository implements repositories.RecordRepository against the local
// SQLite store. Every mutation runs in its own transaction, so a failed write
// leaves the previously committed collection untouched. Registrations insert
// through Create, where the code PRIMARY KEY rejects a conflicting row in the
// same transaction that writes it; Upsert's replace semantics are reserved
// for edits to records already known to exist.
type RecordRepository struct {
	db *database.Database
}

// NewRecordRepository returns a RecordRepository backed by the given database.
func NewRecordRepository(db *database.Database) *RecordRepository {
	return &RecordRepository{db: db}
}

// LoadAll returns every stored record in unspecified order.
func (r *RecordRepository) LoadAll(ctx context.Context) ([]*models.Record, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT code, name, created_at FROM records`)
	if err != nil {
		return nil, fmt.Errorf("%w: load records: %w", registrydomain.ErrPersistence, err)
	}
	defer rows.Close()

	var recs []*models.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: load records: %w", registrydomain.ErrPersistence, err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: load records: %w", registrydomain.ErrPersistence, err)
	}
	return recs, nil
}

// GetByCode retrieves one record. Returns ErrRecordNotFound when absent.
func (r *RecordRepository) GetByCode(ctx context.Context, code models.Code) (*models.Record, error) {
	row := r.db.DB().QueryRowContext(ctx,
		`SELECT code, name, created_at FROM records WHERE code = ?`, code.String())

	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, registrydomain.ErrRecordNotFound
		}
		return nil, fmt.Errorf("%w: get record: %w", registrydomain.ErrPersistence, err)
	}
	return rec, nil
}

// Create inserts rec as a new record. ON CONFLICT DO NOTHING leaves an
// existing row untouched and reports zero affected rows, which maps to
// ErrDuplicateCode — the losing writer of a race gets the duplicate outcome
// instead of silently replacing the first registration.
func (r *RecordRepository) Create(ctx context.Context, rec *models.Record) error {
	var inserted bool
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO records (code, name, created_at, tz_offset_minutes)
			 VALUES (?, ?, ?, ?)
			 ON CONFLICT (code) DO NOTHING`,
			rec.Code.String(),
			rec.Name,
			rec.CreatedAt.UTC().Format(time.RFC3339Nano),
			models.DisplayOffsetMinutes,
		)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		inserted = n > 0
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: create record: %w", registrydomain.ErrPersistence, err)
	}
	if !inserted {
		return registrydomain.ErrDuplicateCode
	}
	return nil
}

// Upsert inserts rec or replaces the record with the same code entirely.
// Durable on return.
func (r *RecordRepository) Upsert(ctx context.Context, rec *models.Record) error {
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO records (code, name, created_at, tz_offset_minutes)
			 VALUES (?, ?, ?, ?)
			 ON CONFLICT (code) DO UPDATE SET
			   name       = excluded.name,
			   created_at = excluded.created_at`,
			rec.Code.String(),
			rec.Name,
			rec.CreatedAt.UTC().Format(time.RFC3339Nano),
			models.DisplayOffsetMinutes,
		)
		return err
	})
	if err != nil {
		return fmt.Errorf("%w: upsert record: %w", registrydomain.ErrPersistence, err)
	}
	return nil
}

// DeleteByCode removes the record with that code. Absent codes are a no-op;
// the bool reports whether a row was actually deleted.
func (r *RecordRepository) DeleteByCode(ctx context.Context, code models.Code) (bool, error) {
	var removed bool
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`DELETE FROM records WHERE code = ?`, code.String())
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		removed = n > 0
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("%w: delete record: %w", registrydomain.ErrPersistence, err)
	}
	return removed, nil
}

// ExistsByCode reports whether a committed record has the given code.
func (r *RecordRepository) ExistsByCode(ctx context.Context, code models.Code) (bool, error) {
	var exists bool
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM records WHERE code = ?)`, code.String()).
		Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%w: check record exists: %w", registrydomain.ErrPersistence, err)
	}
	return exists, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (*models.Record, error) {
	var (
		code      string
		name      string
		createdAt string
	)
	if err := s.Scan(&code, &name, &createdAt); err != nil {
		return nil, err
	}

	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		// Corrupt timestamp text; keep the record visible with a zero
		// instant rather than dropping the row. Display renders it as
		// "Unknown date", export as "N/A".
		ts = time.Time{}
	}

	return &models.Record{
		Code:      models.Code(code),
		Name:      name,
		CreatedAt: ts.UTC(),
	}, nil
}
