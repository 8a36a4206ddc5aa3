package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/scanregistry/pkg/events"
	"github.com/ghuser/scanregistry/pkg/logger"
	registrydomain "github.com/ghuser/scanregistry/services/registry/domain"
	domainevents "github.com/ghuser/scanregistry/services/registry/domain/events"
	"github.com/ghuser/scanregistry/services/registry/domain/models"
	"github.com/ghuser/scanregistry/services/registry/domain/repositories"
	domainsvcs "github.com/ghuser/scanregistry/services/registry/domain/services"
)

// RecordsQuery is the read-and-maintain path over the record set: listing for
// display and export, name edits, and deletions. It never creates records.
type RecordsQuery struct {
	repo repositories.RecordRepository
	bus  *events.EventBus
	log  logger.Logger
}

// NewRecordsQuery returns a RecordsQuery wired with the given repository and
// event bus.
func NewRecordsQuery(repo repositories.RecordRepository, bus *events.EventBus, log logger.Logger) *RecordsQuery {
	return &RecordsQuery{repo: repo, bus: bus, log: log}
}

// ListAll returns every record sorted newest-first. Ties keep the store's
// order (stable sort). Pure read — calling it twice without intervening
// writes returns identical sequences.
func (q *RecordsQuery) ListAll(ctx context.Context) ([]*models.Record, error) {
	recs, err := q.repo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].CreatedAt.After(recs[j].CreatedAt)
	})
	return recs, nil
}

// EditName replaces the name of the record with the given code. The trimmed
// newName must satisfy the same rules registration enforces (ErrInvalidName);
// an unknown code returns ErrRecordNotFound. CreatedAt is carried over
// unchanged.
func (q *RecordsQuery) EditName(ctx context.Context, rawCode, newName string) (*models.Record, error) {
	code, err := models.NewCode(rawCode)
	if err != nil {
		// An unrepresentable code cannot name a stored record.
		return nil, registrydomain.ErrRecordNotFound
	}

	trimmed := strings.TrimSpace(newName)
	if err := domainsvcs.ValidateName(trimmed); err != nil {
		return nil, fmt.Errorf("%w: %w", registrydomain.ErrInvalidName, err)
	}

	rec, err := q.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("get record: %w", err)
	}

	oldName := rec.Name
	if !rec.Rename(trimmed) {
		return nil, fmt.Errorf("%w: name must not be blank", registrydomain.ErrInvalidName)
	}

	if err := q.repo.Upsert(ctx, rec); err != nil {
		return nil, fmt.Errorf("save record: %w", err)
	}

	q.publishRenamed(ctx, rec, oldName)
	return rec, nil
}

// Remove deletes the record with the given code. An unknown code returns
// ErrRecordNotFound so the caller can tell "removed" from "was never there";
// neither is a fault and the collection is unchanged in the second case.
func (q *RecordsQuery) Remove(ctx context.Context, rawCode string) error {
	code, err := models.NewCode(rawCode)
	if err != nil {
		return registrydomain.ErrRecordNotFound
	}

	removed, err := q.repo.DeleteByCode(ctx, code)
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	if !removed {
		return registrydomain.ErrRecordNotFound
	}

	q.publishRemoved(ctx, code)
	return nil
}

func (q *RecordsQuery) publishRenamed(ctx context.Context, rec *models.Record, oldName string) {
	if q.bus == nil {
		return
	}
	event := domainevents.ScanRenamedEvent{
		EventID:    uuid.New(),
		Version:    1,
		Code:       rec.Code.String(),
		OldName:    oldName,
		NewName:    rec.Name,
		OccurredAt: time.Now().UTC(),
	}
	if err := publishEvent(ctx, q.bus, domainevents.TopicScanRenamed, event.EventID, event); err != nil {
		q.log.ErrorContext(ctx, "publish scan renamed", "error", err, "code", rec.Code.String())
	}
}

func (q *RecordsQuery) publishRemoved(ctx context.Context, code models.Code) {
	if q.bus == nil {
		return
	}
	event := domainevents.ScanRemovedEvent{
		EventID:    uuid.New(),
		Version:    1,
		Code:       code.String(),
		OccurredAt: time.Now().UTC(),
	}
	if err := publishEvent(ctx, q.bus, domainevents.TopicScanRemoved, event.EventID, event); err != nil {
		q.log.ErrorContext(ctx, "publish scan removed", "error", err, "code", code.String())
	}
}
