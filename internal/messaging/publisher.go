package messaging

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/phygrid/engine/internal/domain"
)

// EventKind classifies an engine outcome event
type EventKind string

const (
	// EventCheckInRecorded is emitted after each successful check-in append
	EventCheckInRecorded EventKind = "checkin.recorded"
	// EventTransferCompleted is emitted when a transfer code is claimed
	EventTransferCompleted EventKind = "transfer.completed"
	// EventBidUpdated is emitted on every bid state transition
	EventBidUpdated EventKind = "bid.updated"
	// EventLedgerReconciled is emitted when a chain write lands
	EventLedgerReconciled EventKind = "ledger.reconciled"
)

// OutcomeEvent is the structured outcome the engine emits for subscribers
// (ledger mint-on-first-visit, analytics). Formatting and sinks live
// outside the core.
type OutcomeEvent struct {
	// EventID is a sortable unique id, stamped at publish time when empty
	EventID    string            `json:"event_id,omitempty"`
	Kind       EventKind         `json:"kind"`
	RecordType domain.RecordType `json:"record_type"`
	RecordID   uuid.UUID         `json:"record_id"`
	// SubjectID is the transfer, bid, or check-in the event refers to
	SubjectID string `json:"subject_id"`
	// Actor is the username whose action produced the outcome
	Actor string `json:"actor"`
	// Status carries the resulting state, when the subject has one
	Status    string    `json:"status,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Publisher defines the interface for publishing outcome events
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishOutcome publishes an outcome event to the message broker
	PublishOutcome(ctx context.Context, event *OutcomeEvent) error
	// Close closes the connection
	Close()
}
