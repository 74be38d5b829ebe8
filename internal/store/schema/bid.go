package schema

import (
	"time"

	"github.com/google/uuid"

	"github.com/phygrid/engine/internal/domain"
)

// BidStatus represents the lifecycle state of a bid negotiation
type BidStatus string

const (
	// BidStatusPending means the bid awaits the owner's response
	BidStatusPending BidStatus = "pending"
	// BidStatusCountered means the owner proposed a counter amount
	BidStatusCountered BidStatus = "countered"
	// BidStatusAccepted means both parties agreed; the ownership transfer
	// has not yet been executed
	BidStatusAccepted BidStatus = "accepted"
	// BidStatusCompleted means the agreed transfer executed and reconciled
	BidStatusCompleted BidStatus = "completed"
	// BidStatusRejected means one party declined
	BidStatusRejected BidStatus = "rejected"
	// BidStatusCancelled means the bidder withdrew a pending bid
	BidStatusCancelled BidStatus = "cancelled"
	// BidStatusExpired means the negotiation passed its deadline
	BidStatusExpired BidStatus = "expired"
)

// Terminal reports whether no further transitions are permitted.
// Accepted is not terminal: it still awaits the ownership transfer.
func (s BidStatus) Terminal() bool {
	switch s {
	case BidStatusCompleted, BidStatusRejected, BidStatusCancelled, BidStatusExpired:
		return true
	}
	return false
}

// Bid represents the bids table - a negotiated-price acquisition proposal
// between a bidder and the current owner of an asset record.
type Bid struct {
	ID         uuid.UUID         `gorm:"column:id;primaryKey;type:uuid"`
	RecordType domain.RecordType `gorm:"column:record_type;not null;type:text"`
	RecordID   uuid.UUID         `gorm:"column:record_id;not null;type:uuid;index"`
	BuildingID *uuid.UUID        `gorm:"column:building_id;type:uuid"`

	BidderUsername string `gorm:"column:bidder_username;not null;type:text;index"`
	OwnerUsername  string `gorm:"column:owner_username;not null;type:text;index"`

	// BidAmount is the bidder's offer in currency minor units
	BidAmount int64 `gorm:"column:bid_amount;not null"`
	// CounterAmount is set only once the bid has passed through countered.
	// The schema keeps a single counter round: a re-counter overwrites it.
	CounterAmount *int64 `gorm:"column:counter_amount"`

	BidderContact *string `gorm:"column:bidder_contact;type:text"`
	OwnerContact  *string `gorm:"column:owner_contact;type:text"`
	BidderMessage *string `gorm:"column:bidder_message;type:text"`
	OwnerMessage  *string `gorm:"column:owner_message;type:text"`

	Status BidStatus `gorm:"column:status;not null;type:text;index"`
	// Version is the optimistic concurrency token for status transitions
	Version int64 `gorm:"column:version;not null;default:0"`

	CreatedAt   time.Time  `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
	ExpiresAt   time.Time  `gorm:"column:expires_at;not null;type:timestamptz;index"`
	CompletedAt *time.Time `gorm:"column:completed_at;type:timestamptz"`
}

// TableName specifies the table name for the Bid model
func (Bid) TableName() string {
	return "bids"
}

// IsExpired reports whether the negotiation deadline has passed
func (b *Bid) IsExpired(now time.Time) bool {
	return now.After(b.ExpiresAt)
}
