package workflows

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/phygrid/engine/internal/adapter"
	"github.com/phygrid/engine/internal/chain"
	"github.com/phygrid/engine/internal/domain"
	"github.com/phygrid/engine/internal/ledger"
	"github.com/phygrid/engine/internal/logger"
	"github.com/phygrid/engine/internal/messaging"
	"github.com/phygrid/engine/internal/store"
	"github.com/phygrid/engine/internal/store/schema"
)

// OwnershipState is what a reconciliation activity reports back to its
// workflow: enough to drive the chain leg without re-reading the store
// inside workflow code.
type OwnershipState struct {
	OwnershipRecordID uuid.UUID `json:"ownership_record_id"`
	TokenID           string    `json:"token_id"`
	ContractAddress   string    `json:"contract_address"`
	PriorOwner        string    `json:"prior_owner"`
	CurrentOwner      string    `json:"current_owner"`
	// Minted reports whether this cause took the mint path
	Minted bool `json:"minted"`
	// Appended reports whether this run appended history (false = replay)
	Appended bool `json:"appended"`
}

// Executor defines the activities behind the reconciliation workflows
//
//go:generate mockgen -source=executor.go -destination=../mocks/executor.go -package=mocks -mock_names=Executor=MockExecutor
type Executor interface {
	// ApplyOwnershipChange applies the off-chain ledger write for a cause.
	// Idempotent: replays return the existing state with Appended false.
	ApplyOwnershipChange(ctx context.Context, input ledger.ApplyInput) (*OwnershipState, error)

	// SubmitChainMint submits the mint transaction for a freshly minted
	// record and returns the transaction hash
	SubmitChainMint(ctx context.Context, state *OwnershipState, requestID string) (string, error)

	// SubmitChainTransfer submits the transfer transaction and returns
	// the transaction hash
	SubmitChainTransfer(ctx context.Context, state *OwnershipState, requestID string) (string, error)

	// MarkReconciled stamps the cause's history entry with the chain
	// transaction hash
	MarkReconciled(ctx context.Context, ownershipRecordID uuid.UUID, causeID string, txHash string) error

	// CompleteBid moves an accepted bid to completed once its ownership
	// change has been executed and ledger-reconciled
	CompleteBid(ctx context.Context, bidID uuid.UUID) error
}

type executor struct {
	store      store.Store
	reconciler *ledger.Reconciler
	chain      chain.Service
	publisher  messaging.Publisher
	clock      adapter.Clock
}

// NewExecutor creates the activity executor
func NewExecutor(st store.Store, reconciler *ledger.Reconciler, chainSvc chain.Service, publisher messaging.Publisher, clock adapter.Clock) Executor {
	return &executor{
		store:      st,
		reconciler: reconciler,
		chain:      chainSvc,
		publisher:  publisher,
		clock:      clock,
	}
}

func (e *executor) ApplyOwnershipChange(ctx context.Context, input ledger.ApplyInput) (*OwnershipState, error) {
	existing, err := e.store.GetOwnershipRecord(ctx, input.RecordType, input.RecordID)
	if err != nil {
		return nil, err
	}
	priorOwner := ""
	if existing != nil {
		priorOwner = existing.CurrentOwner
	}

	record, appended, err := e.reconciler.Apply(ctx, input)
	if err != nil {
		return nil, err
	}

	return &OwnershipState{
		OwnershipRecordID: record.ID,
		TokenID:           record.TokenID,
		ContractAddress:   record.ContractAddress,
		PriorOwner:        priorOwner,
		CurrentOwner:      record.CurrentOwner,
		Minted:            existing == nil,
		Appended:          appended,
	}, nil
}

func (e *executor) SubmitChainMint(ctx context.Context, state *OwnershipState, requestID string) (string, error) {
	return e.chain.Mint(ctx, chain.MintRequest{
		RequestID:       requestID,
		TokenID:         state.TokenID,
		ContractAddress: state.ContractAddress,
		Owner:           state.CurrentOwner,
	})
}

func (e *executor) SubmitChainTransfer(ctx context.Context, state *OwnershipState, requestID string) (string, error) {
	return e.chain.Transfer(ctx, chain.TransferRequest{
		RequestID:       requestID,
		TokenID:         state.TokenID,
		ContractAddress: state.ContractAddress,
		FromUser:        state.PriorOwner,
		ToUser:          state.CurrentOwner,
	})
}

func (e *executor) MarkReconciled(ctx context.Context, ownershipRecordID uuid.UUID, causeID string, txHash string) error {
	if err := e.reconciler.MarkReconciled(ctx, ownershipRecordID, causeID, txHash); err != nil {
		return err
	}

	event := &messaging.OutcomeEvent{
		Kind:      messaging.EventLedgerReconciled,
		SubjectID: causeID,
		Status:    txHash,
		Timestamp: e.clock.Now(),
	}
	if err := e.publisher.PublishOutcome(ctx, event); err != nil {
		// Reconciliation itself succeeded; a lost event is not worth a retry loop
		logger.WarnCtx(ctx, "Failed to publish reconciliation event",
			zap.Error(err), zap.String("cause_id", causeID))
	}

	return nil
}

func (e *executor) CompleteBid(ctx context.Context, bidID uuid.UUID) error {
	bid, err := e.store.GetBidByID(ctx, bidID)
	if err != nil {
		return err
	}
	if bid == nil {
		return fmt.Errorf("%w: bid %s", domain.ErrNotFound, bidID)
	}

	switch bid.Status {
	case schema.BidStatusCompleted:
		// Replay of an already-completed cause
		return nil
	case schema.BidStatusAccepted:
	default:
		return fmt.Errorf("%w: bid %s is %s, not accepted", domain.ErrInvalidState, bidID, bid.Status)
	}

	now := e.clock.Now()
	err = e.store.TransitionBid(ctx, store.TransitionBidInput{
		ID:              bid.ID,
		ExpectedVersion: bid.Version,
		Status:          schema.BidStatusCompleted,
		CompletedAt:     &now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrVersionConflict) {
			// Lost the race; re-check whether someone else completed it
			current, getErr := e.store.GetBidByID(ctx, bidID)
			if getErr == nil && current != nil && current.Status == schema.BidStatusCompleted {
				return nil
			}
		}
		return err
	}

	event := &messaging.OutcomeEvent{
		Kind:       messaging.EventBidUpdated,
		RecordType: bid.RecordType,
		RecordID:   bid.RecordID,
		SubjectID:  bid.ID.String(),
		Actor:      bid.BidderUsername,
		Status:     string(schema.BidStatusCompleted),
		Timestamp:  now,
	}
	if err := e.publisher.PublishOutcome(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish bid completion event",
			zap.Error(err), zap.String("bid_id", bidID.String()))
	}

	return nil
}
