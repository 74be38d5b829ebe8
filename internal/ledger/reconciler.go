package ledger

import (
	"context"
	"fmt"
	"math/big"

	"github.com/google/uuid"

	"github.com/phygrid/engine/internal/adapter"
	"github.com/phygrid/engine/internal/domain"
	"github.com/phygrid/engine/internal/store"
	"github.com/phygrid/engine/internal/store/schema"
)

// Config holds ledger configuration
type Config struct {
	// ContractAddress is the NFT contract all engine tokens live under
	ContractAddress string
}

// Reconciler applies confirmed ownership changes to the append-only NFT
// ledger. It is invoked only as the final step of a successful transfer
// claim or a completed bid, and every write is idempotent keyed by
// (record, cause id) so at-least-once delivery never double-appends
// history.
type Reconciler struct {
	cfg   Config
	store store.Store
	clock adapter.Clock
}

// NewReconciler creates a ledger reconciler
func NewReconciler(cfg Config, st store.Store, clock adapter.Clock) *Reconciler {
	return &Reconciler{cfg: cfg, store: st, clock: clock}
}

// ApplyInput describes one confirmed ownership change to reconcile
type ApplyInput struct {
	RecordType domain.RecordType
	RecordID   uuid.UUID
	// TransferType is bid or gift; the mint path is taken automatically
	// when the record has no ledger entry yet
	TransferType schema.TransferType
	NewOwner     string
	// CauseID is the originating transfer or bid id (idempotency key)
	CauseID string
	// BidID back-references the bid for bid-driven changes
	BidID    *uuid.UUID
	Metadata *schema.OwnershipMetadata
}

// MintCauseID builds the idempotency key for a record's initial mint
func MintCauseID(recordID uuid.UUID) string {
	return "mint:" + recordID.String()
}

// TransferCauseID builds the idempotency key for a claimed transfer code
func TransferCauseID(transferID uuid.UUID) string {
	return "transfer:" + transferID.String()
}

// BidCauseID builds the idempotency key for an accepted bid's settlement
func BidCauseID(bidID uuid.UUID) string {
	return "bid:" + bidID.String()
}

// TokenIDForRecord derives the numeric on-chain token id from a record id
func TokenIDForRecord(recordID uuid.UUID) string {
	return new(big.Int).SetBytes(recordID[:]).String()
}

// Mint registers a record on the ledger for the first time. The new owner
// becomes both the current owner and the immutable original minter, and a
// mint history entry with no prior owner is appended. Replays append
// nothing.
func (r *Reconciler) Mint(ctx context.Context, recordType domain.RecordType, recordID uuid.UUID, owner string, metadata *schema.OwnershipMetadata) (*schema.NFTOwnershipRecord, bool, error) {
	record, appended, err := r.store.ApplyMint(ctx, store.ApplyMintInput{
		RecordType:      recordType,
		RecordID:        recordID,
		TokenID:         TokenIDForRecord(recordID),
		ContractAddress: r.cfg.ContractAddress,
		Owner:           owner,
		CauseID:         MintCauseID(recordID),
		Metadata:        metadata,
		Now:             r.clock.Now(),
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to reconcile mint: %w", err)
	}
	return record, appended, nil
}

// Apply reconciles one ownership change. Records without a ledger entry
// take the mint path (the recipient becomes original minter); existing
// records take the transfer path: current owner moves, lastTransferredAt
// is set, and one history entry referencing the cause is appended.
func (r *Reconciler) Apply(ctx context.Context, input ApplyInput) (*schema.NFTOwnershipRecord, bool, error) {
	existing, err := r.store.GetOwnershipRecord(ctx, input.RecordType, input.RecordID)
	if err != nil {
		return nil, false, err
	}

	if existing == nil {
		// First registration of this record
		record, appended, err := r.store.ApplyMint(ctx, store.ApplyMintInput{
			RecordType:      input.RecordType,
			RecordID:        input.RecordID,
			TokenID:         TokenIDForRecord(input.RecordID),
			ContractAddress: r.cfg.ContractAddress,
			Owner:           input.NewOwner,
			CauseID:         input.CauseID,
			Metadata:        input.Metadata,
			Now:             r.clock.Now(),
		})
		if err != nil {
			return nil, false, fmt.Errorf("failed to reconcile mint: %w", err)
		}
		return record, appended, nil
	}

	record, appended, err := r.store.ApplyTransfer(ctx, store.ApplyTransferInput{
		RecordType:   input.RecordType,
		RecordID:     input.RecordID,
		TransferType: input.TransferType,
		ToUser:       input.NewOwner,
		CauseID:      input.CauseID,
		BidID:        input.BidID,
		Now:          r.clock.Now(),
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to reconcile transfer: %w", err)
	}
	return record, appended, nil
}

// MarkReconciled records the chain transaction hash for a cause once the
// chain write lands. Until then the entry's nil hash means "ownership
// changed locally, chain write outstanding".
func (r *Reconciler) MarkReconciled(ctx context.Context, ownershipRecordID uuid.UUID, causeID string, txHash string) error {
	return r.store.MarkHistoryReconciled(ctx, ownershipRecordID, causeID, txHash)
}

// Record returns the ledger record mirroring an asset record, or
// domain.ErrNotFound when the record has never been minted
func (r *Reconciler) Record(ctx context.Context, recordType domain.RecordType, recordID uuid.UUID) (*schema.NFTOwnershipRecord, error) {
	record, err := r.store.GetOwnershipRecord(ctx, recordType, recordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	return record, nil
}

// History returns a record's full transfer chain in append order
func (r *Reconciler) History(ctx context.Context, recordType domain.RecordType, recordID uuid.UUID) ([]schema.NFTTransferHistory, error) {
	record, err := r.Record(ctx, recordType, recordID)
	if err != nil {
		return nil, err
	}
	return r.store.ListTransferHistory(ctx, record.ID)
}

// Pending returns history entries whose chain write is still outstanding
func (r *Reconciler) Pending(ctx context.Context, limit int) ([]schema.NFTTransferHistory, error) {
	return r.store.ListPendingReconciliations(ctx, limit)
}

// CurrentOwner resolves who presently holds an asset record: the ledger's
// current owner once minted, otherwise the fallback (the asset's
// registrant).
func (r *Reconciler) CurrentOwner(ctx context.Context, recordType domain.RecordType, recordID uuid.UUID, fallback string) (string, error) {
	record, err := r.store.GetOwnershipRecord(ctx, recordType, recordID)
	if err != nil {
		return "", err
	}
	if record == nil {
		return fallback, nil
	}
	return record.CurrentOwner, nil
}
