package services

import (
	"context"
	"fmt"

	"github.com/ghuser/scanregistry/pkg/config"
	"github.com/ghuser/scanregistry/pkg/logger"
	registrydomain "github.com/ghuser/scanregistry/services/registry/domain"
	"github.com/ghuser/scanregistry/services/registry/domain/models"
)

// fakeRecordRepository is an in-memory RecordRepository for service tests.
// Errors can be forced per method to exercise failure paths.
type fakeRecordRepository struct {
	records map[models.Code]*models.Record

	// staleExists makes ExistsByCode report false regardless of contents,
	// simulating a pre-check that raced a concurrent writer. Create still
	// enforces uniqueness, as the real store does.
	staleExists bool

	loadErr   error
	getErr    error
	createErr error
	upsertErr error
	deleteErr error
	existsErr error
}

func newFakeRepo() *fakeRecordRepository {
	return &fakeRecordRepository{records: map[models.Code]*models.Record{}}
}

func (f *fakeRecordRepository) LoadAll(_ context.Context) ([]*models.Record, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	out := make([]*models.Record, 0, len(f.records))
	for _, rec := range f.records {
		cp := *rec
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeRecordRepository) GetByCode(_ context.Context, code models.Code) (*models.Record, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	rec, ok := f.records[code]
	if !ok {
		return nil, fmt.Errorf("%w: %s", registrydomain.ErrRecordNotFound, code)
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeRecordRepository) Create(_ context.Context, rec *models.Record) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.records[rec.Code]; ok {
		return registrydomain.ErrDuplicateCode
	}
	cp := *rec
	f.records[rec.Code] = &cp
	return nil
}

func (f *fakeRecordRepository) Upsert(_ context.Context, rec *models.Record) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	cp := *rec
	f.records[rec.Code] = &cp
	return nil
}

func (f *fakeRecordRepository) DeleteByCode(_ context.Context, code models.Code) (bool, error) {
	if f.deleteErr != nil {
		return false, f.deleteErr
	}
	_, ok := f.records[code]
	delete(f.records, code)
	return ok, nil
}

func (f *fakeRecordRepository) ExistsByCode(_ context.Context, code models.Code) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	if f.staleExists {
		return false, nil
	}
	_, ok := f.records[code]
	return ok, nil
}

func testLogger() logger.Logger {
	return logger.New(&config.Config{LogLevel: "error"})
}
