package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/ghuser/scanregistry/pkg/events"
	"github.com/ghuser/scanregistry/pkg/logger"
	registrydomain "github.com/ghuser/scanregistry/services/registry/domain"
	domainevents "github.com/ghuser/scanregistry/services/registry/domain/events"
	"github.com/ghuser/scanregistry/services/registry/domain/models"
	"github.com/ghuser/scanregistry/services/registry/domain/repositories"
	domainsvcs "github.com/ghuser/scanregistry/services/registry/domain/services"
)

// RegistrationService orchestrates the scan-to-record flow: duplicate check,
// record construction, durable save, event signal. It is the only component
// that creates records.
type RegistrationService struct {
	repo repositories.RecordRepository
	bus  *events.EventBus
	log  logger.Logger
}

// NewRegistrationService returns a RegistrationService wired with the given
// repository and event bus.
func NewRegistrationService(repo repositories.RecordRepository, bus *events.EventBus, log logger.Logger) *RegistrationService {
	return &RegistrationService{repo: repo, bus: bus, log: log}
}

// RegisterScan registers a decoded scan under a name.
//
// The raw code is trimmed and must be non-empty (ErrEmptyCode). A code that
// is already registered returns ErrDuplicateCode with no side effects. A
// blank name falls back to models.DefaultName. The creation instant is
// captured once, in UTC, and never changes afterward.
//
// The pre-check reads committed state for an early duplicate answer, but the
// insert itself is the authoritative one: Create re-checks uniqueness
// atomically with the write, so two registrations racing past the pre-check
// still resolve to one stored record and one ErrDuplicateCode.
func (s *RegistrationService) RegisterScan(ctx context.Context, rawCode, rawName string) (*models.Record, error) {
	code, err := models.NewCode(rawCode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", registrydomain.ErrEmptyCode, err)
	}

	exists, err := s.repo.ExistsByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("check duplicate: %w", err)
	}
	if exists {
		return nil, registrydomain.ErrDuplicateCode
	}

	rec := models.NewRecord(code, rawName)

	if err := domainsvcs.ValidateRecordForRegistration(rec); err != nil {
		return nil, fmt.Errorf("%w: %w", registrydomain.ErrInvalidName, err)
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		if errors.Is(err, registrydomain.ErrDuplicateCode) {
			return nil, registrydomain.ErrDuplicateCode
		}
		return nil, fmt.Errorf("save record: %w", err)
	}

	s.publishRegistered(ctx, rec)
	return rec, nil
}

// CheckDuplicate reports whether rawCode is already registered. It shares
// the trim+compare path with RegisterScan, so the scanner's pre-check warning
// and the registration outcome can never disagree.
func (s *RegistrationService) CheckDuplicate(ctx context.Context, rawCode string) (bool, error) {
	code, err := models.NewCode(rawCode)
	if err != nil {
		return false, fmt.Errorf("%w: %w", registrydomain.ErrEmptyCode, err)
	}

	exists, err := s.repo.ExistsByCode(ctx, code)
	if err != nil {
		return false, fmt.Errorf("check duplicate: %w", err)
	}
	return exists, nil
}

// publishRegistered signals the registration after the durable write. The
// record set is already correct at this point, so a publish failure is
// logged rather than surfaced — the event drives feedback, not state.
func (s *RegistrationService) publishRegistered(ctx context.Context, rec *models.Record) {
	if s.bus == nil {
		return
	}
	event := domainevents.ScanRegisteredEvent{
		EventID:    uuid.New(),
		Version:    1,
		Code:       rec.Code.String(),
		Name:       rec.Name,
		OccurredAt: rec.CreatedAt,
	}
	if err := publishEvent(ctx, s.bus, domainevents.TopicScanRegistered, event.EventID, event); err != nil {
		s.log.ErrorContext(ctx, "publish scan registered", "error", err, "code", rec.Code.String())
	}
}

// publishEvent marshals event and publishes it with standard metadata.
func publishEvent(ctx context.Context, bus *events.EventBus, topic string, eventID uuid.UUID, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", eventID.String())
	msg.Metadata.Set("event_version", "1")
	msg.Metadata.Set("published_at", time.Now().UTC().Format(time.RFC3339Nano))
	return bus.Publish(ctx, topic, msg)
}
