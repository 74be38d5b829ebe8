package schema

import (
	"time"

	"github.com/google/uuid"
)

// TransferType classifies how ownership moved
type TransferType string

const (
	// TransferTypeMint is the initial registration of a record
	TransferTypeMint TransferType = "mint"
	// TransferTypeBid is an ownership change driven by an accepted bid
	TransferTypeBid TransferType = "bid"
	// TransferTypeGift is an ownership change via a claimed transfer code
	TransferTypeGift TransferType = "gift"
	// TransferTypeBurn is the destruction of a record's token
	TransferTypeBurn TransferType = "burn"
)

// NFTTransferHistory represents the nft_transfer_history table - the
// append-only audit chain of one ownership record. Entries are never
// mutated or deleted. The (ownership_record_id, cause_id) unique index
// makes ledger reconciliation idempotent under at-least-once delivery.
type NFTTransferHistory struct {
	// ID is the internal database primary key; chain order follows it
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// OwnershipRecordID references the owning ledger record
	OwnershipRecordID uuid.UUID `gorm:"column:ownership_record_id;not null;type:uuid;uniqueIndex:uq_nft_transfer_history_cause,priority:1"`
	// CauseID is the idempotency key: the originating transfer or bid id,
	// or a mint marker. Replays of the same cause insert nothing.
	CauseID string `gorm:"column:cause_id;not null;type:text;uniqueIndex:uq_nft_transfer_history_cause,priority:2"`
	// TransferType classifies the entry (mint, bid, gift, burn)
	TransferType TransferType `gorm:"column:transfer_type;not null;type:text"`
	// FromUser is the prior owner (nil for mint)
	FromUser *string `gorm:"column:from_user;type:text"`
	// ToUser is the new owner (empty for burn)
	ToUser string `gorm:"column:to_user;not null;type:text"`
	// BidID back-references the originating bid when applicable
	BidID *uuid.UUID `gorm:"column:bid_id;type:uuid"`
	// TxHash is the chain transaction hash; nil means the chain write is
	// still outstanding for this entry
	TxHash *string `gorm:"column:tx_hash;type:text"`
	// CreatedAt is when the entry was appended
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	OwnershipRecord NFTOwnershipRecord `gorm:"foreignKey:OwnershipRecordID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the NFTTransferHistory model
func (NFTTransferHistory) TableName() string {
	return "nft_transfer_history"
}
