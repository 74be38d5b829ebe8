package schema

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/phygrid/engine/internal/domain"
)

// NFTOwnershipRecord represents the nft_ownership_records table - the
// off-chain mirror of an asset record's on-chain token. Created once at
// mint; the current owner changes only via an appended NFTTransferHistory
// entry, and the original minter never changes.
type NFTOwnershipRecord struct {
	// ID is the ledger record's generated unique identifier
	ID uuid.UUID `gorm:"column:id;primaryKey;type:uuid"`
	// RecordType/RecordID reference the originating asset record; one
	// ledger record exists per asset record
	RecordType domain.RecordType `gorm:"column:record_type;not null;type:text;uniqueIndex:uq_nft_ownership_record,priority:1"`
	RecordID   uuid.UUID         `gorm:"column:record_id;not null;type:uuid;uniqueIndex:uq_nft_ownership_record,priority:2"`
	// TokenID is the on-chain token identifier
	TokenID string `gorm:"column:token_id;not null;type:text"`
	// ContractAddress is the on-chain contract holding the token
	ContractAddress string `gorm:"column:contract_address;not null;type:text"`
	// CurrentOwner is the present holder of the record
	CurrentOwner string `gorm:"column:current_owner;not null;type:text;index"`
	// OriginalMinter is the first owner; immutable after mint
	OriginalMinter string `gorm:"column:original_minter;not null;type:text"`
	// MintedAt is when the record was first registered
	MintedAt time.Time `gorm:"column:minted_at;not null;type:timestamptz"`
	// LastTransferredAt is set on each completed transfer or bid
	LastTransferredAt *time.Time `gorm:"column:last_transferred_at;type:timestamptz"`
	// TxHash is the mint transaction hash; nil means the chain write is
	// still outstanding (ownership changed locally, reconciliation pending)
	TxHash *string `gorm:"column:tx_hash;type:text"`
	// Metadata holds the optional descriptive payload (OwnershipMetadata)
	Metadata datatypes.JSON `gorm:"column:metadata;type:jsonb"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	TransferHistory []NFTTransferHistory `gorm:"foreignKey:OwnershipRecordID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the NFTOwnershipRecord model
func (NFTOwnershipRecord) TableName() string {
	return "nft_ownership_records"
}

// OwnershipMetadata is the descriptive payload stored in the Metadata JSON
// column: display fields, building linkage, GPS location, trait attributes.
type OwnershipMetadata struct {
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	ImageURI    string           `json:"image_uri,omitempty"`
	BuildingID  *uuid.UUID       `json:"building_id,omitempty"`
	Latitude    *float64         `json:"latitude,omitempty"`
	Longitude   *float64         `json:"longitude,omitempty"`
	Attributes  []TraitAttribute `json:"attributes,omitempty"`
}

// TraitAttribute is one name/value trait pair
type TraitAttribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}
