package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics for record lifecycle events. The UI collaborator's
// feedback signals (banner, haptic) and the audit trail both hang off these.
const (
	TopicScanRegistered = "scan.registered"
	TopicScanRenamed    = "scan.renamed"
	TopicScanRemoved    = "scan.removed"
)

// ScanRegisteredEvent is published after a new record is durably saved.
type ScanRegisteredEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	Code       string    `json:"code"`
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ScanRenamedEvent is published after a record's name edit is durably saved.
type ScanRenamedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	Code       string    `json:"code"`
	OldName    string    `json:"old_name"`
	NewName    string    `json:"new_name"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ScanRemovedEvent is published after a record is durably deleted.
type ScanRemovedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	Code       string    `json:"code"`
	OccurredAt time.Time `json:"occurred_at"`
}
