package schema

import (
	"time"

	"github.com/google/uuid"

	"github.com/phygrid/engine/internal/domain"
)

// TransferStatus represents the lifecycle state of a transfer request
type TransferStatus string

const (
	// TransferStatusPending means the code is live and claimable
	TransferStatusPending TransferStatus = "pending"
	// TransferStatusCompleted means exactly one recipient claimed the code
	TransferStatusCompleted TransferStatus = "completed"
	// TransferStatusExpired means the code passed its deadline unclaimed
	TransferStatusExpired TransferStatus = "expired"
	// TransferStatusCancelled means the owner withdrew the code
	TransferStatusCancelled TransferStatus = "cancelled"
)

// Terminal reports whether no further transitions are permitted
func (s TransferStatus) Terminal() bool {
	return s == TransferStatusCompleted || s == TransferStatusExpired || s == TransferStatusCancelled
}

// TransferRequest represents the transfer_requests table - a single-use,
// time-boxed authorization for one ownership claim.
type TransferRequest struct {
	// ID is the transfer's generated unique identifier
	ID uuid.UUID `gorm:"column:id;primaryKey;type:uuid"`
	// Code is the opaque single-use token handed to the recipient
	Code string `gorm:"column:code;not null;uniqueIndex;type:text"`
	// RecordType identifies which check-in namespace owns the record
	RecordType domain.RecordType `gorm:"column:record_type;not null;type:text"`
	// RecordID references the asset record being transferred
	RecordID uuid.UUID `gorm:"column:record_id;not null;type:uuid;index"`
	// BuildingID links to the record's building (nil for non-building records)
	BuildingID *uuid.UUID `gorm:"column:building_id;type:uuid"`
	// NFCUUID is the tag bound to the record
	NFCUUID string `gorm:"column:nfc_uuid;not null;type:text"`
	// Display fields carried for the receiving party's preview
	AssetName        string  `gorm:"column:asset_name;not null;type:text"`
	AssetDescription string  `gorm:"column:asset_description;not null;type:text"`
	ImageURL         *string `gorm:"column:image_url;type:text"`
	// FromUser is the owner that created the transfer
	FromUser string `gorm:"column:from_user;not null;type:text"`
	// ToUser is nil until the code is claimed
	ToUser *string `gorm:"column:to_user;type:text"`
	// Status is the lifecycle state; terminal states never mutate again
	Status TransferStatus `gorm:"column:status;not null;type:text;index"`
	// Version is the optimistic concurrency token; every status transition
	// is a compare-and-swap against it
	Version int64 `gorm:"column:version;not null;default:0"`
	// CreatedAt is when the code was generated
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// ExpiresAt is the claim deadline
	ExpiresAt time.Time `gorm:"column:expires_at;not null;type:timestamptz;index"`
	// CompletedAt is set when the claim succeeds
	CompletedAt *time.Time `gorm:"column:completed_at;type:timestamptz"`
	// UpdatedAt is the timestamp of the last transition
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the TransferRequest model
func (TransferRequest) TableName() string {
	return "transfer_requests"
}

// IsExpired reports whether the claim deadline has passed
func (t *TransferRequest) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// CanReceive reports whether the code is still claimable
func (t *TransferRequest) CanReceive(now time.Time) bool {
	return t.Status == TransferStatusPending && !t.IsExpired(now)
}
