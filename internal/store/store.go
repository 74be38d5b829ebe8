package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/phygrid/engine/internal/domain"
	"github.com/phygrid/engine/internal/store/schema"
)

// CompleteTransferInput carries the conditional update that consumes a
// transfer code
type CompleteTransferInput struct {
	ID              uuid.UUID
	ExpectedVersion int64
	ToUser          string
	CompletedAt     time.Time
}

// TransitionBidInput carries a conditional bid status transition. Optional
// fields are applied only when non-nil.
type TransitionBidInput struct {
	ID              uuid.UUID
	ExpectedVersion int64
	Status          schema.BidStatus
	CounterAmount   *int64
	OwnerMessage    *string
	BidderMessage   *string
	CompletedAt     *time.Time
}

// ApplyMintInput creates a ledger record and its mint history entry
type ApplyMintInput struct {
	RecordType      domain.RecordType
	RecordID        uuid.UUID
	TokenID         string
	ContractAddress string
	Owner           string
	CauseID         string
	Metadata        *schema.OwnershipMetadata
	Now             time.Time
}

// ApplyTransferInput moves ownership of an existing ledger record
type ApplyTransferInput struct {
	RecordType   domain.RecordType
	RecordID     uuid.UUID
	TransferType schema.TransferType
	ToUser       string
	CauseID      string
	BidID        *uuid.UUID
	Now          time.Time
}

// Store defines the interface for database operations. It is the single
// source of truth and the sole arbiter of concurrent conditional updates:
// every state transition on transfers and bids is a compare-and-swap on the
// row's version and surfaces domain.ErrVersionConflict when the race is
// lost.
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// CreateAsset registers a new asset at a grid cell
	CreateAsset(ctx context.Context, asset *schema.Asset) error
	// GetAssetByID retrieves an asset by its id (nil when missing)
	GetAssetByID(ctx context.Context, id uuid.UUID) (*schema.Asset, error)
	// GetAssetByNFCUUID retrieves an asset by its NFC tag identifier
	GetAssetByNFCUUID(ctx context.Context, nfcUUID string) (*schema.Asset, error)
	// UpdateAssetDisplay edits an asset's name/description/image
	UpdateAssetDisplay(ctx context.Context, id uuid.UUID, name, description string, imageURL *string) error

	// AppendCheckIn appends one immutable check-in row
	AppendCheckIn(ctx context.Context, checkIn *schema.CheckIn) error
	// ListCheckIns returns up to limit check-ins for an asset with id >
	// afterID, in insertion order (backs the lazy history sequence)
	ListCheckIns(ctx context.Context, assetID uuid.UUID, afterID uint64, limit int) ([]schema.CheckIn, error)
	// CountCheckIns returns the number of check-ins recorded for an asset
	CountCheckIns(ctx context.Context, assetID uuid.UUID) (int64, error)

	// CreateTransferRequest stores a freshly generated transfer code
	CreateTransferRequest(ctx context.Context, transfer *schema.TransferRequest) error
	// GetTransferByID retrieves a transfer request by id (nil when missing)
	GetTransferByID(ctx context.Context, id uuid.UUID) (*schema.TransferRequest, error)
	// GetTransferByCode retrieves a transfer request by its code
	GetTransferByCode(ctx context.Context, code string) (*schema.TransferRequest, error)
	// CompleteTransfer binds the recipient and marks the code consumed,
	// conditional on the expected version
	CompleteTransfer(ctx context.Context, input CompleteTransferInput) error
	// UpdateTransferStatus transitions a transfer's status, conditional on
	// the expected version (used for cancellation and lazy expiry)
	UpdateTransferStatus(ctx context.Context, id uuid.UUID, expectedVersion int64, status schema.TransferStatus) error
	// ListExpiredPendingTransfers returns pending transfers past their
	// deadline, for the sweeper
	ListExpiredPendingTransfers(ctx context.Context, now time.Time, limit int) ([]schema.TransferRequest, error)

	// CreateBid stores a new bid
	CreateBid(ctx context.Context, bid *schema.Bid) error
	// GetBidByID retrieves a bid by id (nil when missing)
	GetBidByID(ctx context.Context, id uuid.UUID) (*schema.Bid, error)
	// TransitionBid applies a conditional bid status transition
	TransitionBid(ctx context.Context, input TransitionBidInput) error
	// ListBidsForRecord returns all bids referencing a record, newest first
	ListBidsForRecord(ctx context.Context, recordType domain.RecordType, recordID uuid.UUID) ([]schema.Bid, error)
	// ListBidsByParty returns all bids where the user is bidder or owner
	ListBidsByParty(ctx context.Context, username string) ([]schema.Bid, error)
	// ListExpiredOpenBids returns pending/countered bids past their
	// deadline, for the sweeper
	ListExpiredOpenBids(ctx context.Context, now time.Time, limit int) ([]schema.Bid, error)

	// GetOwnershipRecord retrieves the ledger record mirroring an asset
	// record (nil when the record is not yet minted)
	GetOwnershipRecord(ctx context.Context, recordType domain.RecordType, recordID uuid.UUID) (*schema.NFTOwnershipRecord, error)
	// ApplyMint creates the ledger record and its mint history entry.
	// Idempotent: a replay of the same cause appends nothing and reports
	// appended = false.
	ApplyMint(ctx context.Context, input ApplyMintInput) (record *schema.NFTOwnershipRecord, appended bool, err error)
	// ApplyTransfer moves ownership and appends one history entry.
	// Idempotent keyed by (record, cause id).
	ApplyTransfer(ctx context.Context, input ApplyTransferInput) (record *schema.NFTOwnershipRecord, appended bool, err error)
	// MarkHistoryReconciled records the chain transaction hash for a cause
	// once the chain write lands
	MarkHistoryReconciled(ctx context.Context, ownershipRecordID uuid.UUID, causeID string, txHash string) error
	// ListTransferHistory returns a record's audit chain in append order
	ListTransferHistory(ctx context.Context, ownershipRecordID uuid.UUID) ([]schema.NFTTransferHistory, error)
	// ListPendingReconciliations returns history entries whose chain write
	// is still outstanding (tx_hash null)
	ListPendingReconciliations(ctx context.Context, limit int) ([]schema.NFTTransferHistory, error)
}
