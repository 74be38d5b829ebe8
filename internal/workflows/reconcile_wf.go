package workflows

import (
	"time"

	"github.com/google/uuid"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/phygrid/engine/internal/domain"
	"github.com/phygrid/engine/internal/ledger"
	"github.com/phygrid/engine/internal/logger"
	"github.com/phygrid/engine/internal/store/schema"
)

// Workflow type names, used by callers that start executions by name
const (
	ReconcileMintWorkflowName     = "ReconcileMint"
	ReconcileTransferWorkflowName = "ReconcileTransfer"
)

// MintJob starts ledger reconciliation for a newly registered record
type MintJob struct {
	RecordType domain.RecordType         `json:"record_type"`
	RecordID   uuid.UUID                 `json:"record_id"`
	Owner      string                    `json:"owner"`
	Metadata   *schema.OwnershipMetadata `json:"metadata,omitempty"`
	// RequestID is the chain idempotency key for this job
	RequestID string `json:"request_id"`
}

// TransferJob reconciles a confirmed ownership change (claimed transfer or
// accepted bid) onto the chain
type TransferJob struct {
	RecordType   domain.RecordType   `json:"record_type"`
	RecordID     uuid.UUID           `json:"record_id"`
	TransferType schema.TransferType `json:"transfer_type"`
	NewOwner     string              `json:"new_owner"`
	CauseID      string              `json:"cause_id"`
	BidID        *uuid.UUID          `json:"bid_id,omitempty"`
	RequestID    string              `json:"request_id"`
}

// Reconciler defines the reconciliation workflows hosted by the worker
//
//go:generate mockgen -source=reconcile_wf.go -destination=../mocks/reconciler_worker.go -package=mocks -mock_names=Reconciler=MockReconcilerWorker
type Reconciler interface {
	// ReconcileMint writes the off-chain ledger rows for a mint, submits
	// the chain mint, and stamps the resulting transaction hash
	ReconcileMint(ctx workflow.Context, job MintJob) error

	// ReconcileTransfer applies an ownership change off-chain (a replay
	// when the claim already applied it), submits the chain transfer,
	// stamps the hash, and completes the originating bid if any
	ReconcileTransfer(ctx workflow.Context, job TransferJob) error
}

type reconciler struct {
	executor Executor
}

// NewReconciler creates the workflow host
func NewReconciler(executor Executor) Reconciler {
	return &reconciler{executor: executor}
}

// chainActivityOptions is used for the chain-facing activities: the signer
// call is idempotent by request id, so generous retries are safe
func chainActivityOptions(ctx workflow.Context) workflow.Context {
	return workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 5 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    5 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    2 * time.Minute,
			MaximumAttempts:    10,
		},
	})
}

// storeActivityOptions is used for store-facing activities
func storeActivityOptions(ctx workflow.Context) workflow.Context {
	return workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    30 * time.Second,
			MaximumAttempts:    5,
		},
	})
}

func (r *reconciler) ReconcileMint(ctx workflow.Context, job MintJob) error {
	logger.InfoWf(ctx, "Reconciling mint",
		zap.String("record_id", job.RecordID.String()),
		zap.String("owner", job.Owner),
	)

	// Step 1: off-chain ledger rows (idempotent)
	var state OwnershipState
	storeCtx := storeActivityOptions(ctx)
	err := workflow.ExecuteActivity(storeCtx, r.executor.ApplyOwnershipChange, ledger.ApplyInput{
		RecordType: job.RecordType,
		RecordID:   job.RecordID,
		NewOwner:   job.Owner,
		CauseID:    ledger.MintCauseID(job.RecordID),
		Metadata:   job.Metadata,
	}).Get(ctx, &state)
	if err != nil {
		logger.ErrorWf(ctx, err, zap.String("record_id", job.RecordID.String()))
		return err
	}

	// Step 2: chain mint
	var txHash string
	chainCtx := chainActivityOptions(ctx)
	err = workflow.ExecuteActivity(chainCtx, r.executor.SubmitChainMint, &state, job.RequestID).Get(ctx, &txHash)
	if err != nil {
		// Off-chain ownership stands; the entry stays pending for retry
		logger.ErrorWf(ctx, err, zap.String("record_id", job.RecordID.String()))
		return err
	}

	// Step 3: stamp the transaction hash
	err = workflow.ExecuteActivity(storeCtx, r.executor.MarkReconciled,
		state.OwnershipRecordID, ledger.MintCauseID(job.RecordID), txHash).Get(ctx, nil)
	if err != nil {
		logger.ErrorWf(ctx, err, zap.String("record_id", job.RecordID.String()))
		return err
	}

	logger.InfoWf(ctx, "Mint reconciled",
		zap.String("record_id", job.RecordID.String()),
		zap.String("tx_hash", txHash),
	)
	return nil
}

func (r *reconciler) ReconcileTransfer(ctx workflow.Context, job TransferJob) error {
	logger.InfoWf(ctx, "Reconciling ownership transfer",
		zap.String("record_id", job.RecordID.String()),
		zap.String("cause_id", job.CauseID),
		zap.String("new_owner", job.NewOwner),
	)

	// Step 1: off-chain ledger rows. The transfer claim usually already
	// applied this; idempotency makes the replay a no-op.
	var state OwnershipState
	storeCtx := storeActivityOptions(ctx)
	err := workflow.ExecuteActivity(storeCtx, r.executor.ApplyOwnershipChange, ledger.ApplyInput{
		RecordType:   job.RecordType,
		RecordID:     job.RecordID,
		TransferType: job.TransferType,
		NewOwner:     job.NewOwner,
		CauseID:      job.CauseID,
		BidID:        job.BidID,
	}).Get(ctx, &state)
	if err != nil {
		logger.ErrorWf(ctx, err, zap.String("cause_id", job.CauseID))
		return err
	}

	// Step 2: chain leg. A record that took the mint path here needs a
	// mint transaction, not a transfer.
	var txHash string
	chainCtx := chainActivityOptions(ctx)
	if state.Minted {
		err = workflow.ExecuteActivity(chainCtx, r.executor.SubmitChainMint, &state, job.RequestID).Get(ctx, &txHash)
	} else {
		err = workflow.ExecuteActivity(chainCtx, r.executor.SubmitChainTransfer, &state, job.RequestID).Get(ctx, &txHash)
	}
	if err != nil {
		logger.ErrorWf(ctx, err, zap.String("cause_id", job.CauseID))
		return err
	}

	// Step 3: stamp the transaction hash
	err = workflow.ExecuteActivity(storeCtx, r.executor.MarkReconciled,
		state.OwnershipRecordID, job.CauseID, txHash).Get(ctx, nil)
	if err != nil {
		logger.ErrorWf(ctx, err, zap.String("cause_id", job.CauseID))
		return err
	}

	// Step 4: a bid-driven change completes its bid only after the
	// ownership change has been executed and reconciled
	if job.BidID != nil {
		err = workflow.ExecuteActivity(storeCtx, r.executor.CompleteBid, *job.BidID).Get(ctx, nil)
		if err != nil {
			logger.ErrorWf(ctx, err, zap.String("bid_id", job.BidID.String()))
			return err
		}
	}

	logger.InfoWf(ctx, "Ownership transfer reconciled",
		zap.String("cause_id", job.CauseID),
		zap.String("tx_hash", txHash),
	)
	return nil
}
