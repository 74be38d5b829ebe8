package transfer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"
	"go.uber.org/zap"

	"github.com/phygrid/engine/internal/adapter"
	"github.com/phygrid/engine/internal/domain"
	"github.com/phygrid/engine/internal/geo"
	"github.com/phygrid/engine/internal/ledger"
	"github.com/phygrid/engine/internal/logger"
	"github.com/phygrid/engine/internal/messaging"
	"github.com/phygrid/engine/internal/providers/temporal"
	"github.com/phygrid/engine/internal/store"
	"github.com/phygrid/engine/internal/store/schema"
	"github.com/phygrid/engine/internal/workflows"
)

// DefaultCodeTTL is how long a transfer code stays claimable when the
// caller does not pick a deadline
const DefaultCodeTTL = 24 * time.Hour

// Config holds the transfer service configuration
type Config struct {
	// CodeTTL bounds how long generated codes stay live
	CodeTTL time.Duration
	// TaskQueue is the Temporal task queue for reconciliation workflows
	TaskQueue string
}

// Service manages single-use, time-boxed ownership transfer codes
type Service struct {
	cfg          Config
	store        store.Store
	reconciler   *ledger.Reconciler
	orchestrator temporal.TemporalOrchestrator
	publisher    messaging.Publisher
	clock        adapter.Clock
}

// NewService creates a transfer service
func NewService(
	cfg Config,
	st store.Store,
	reconciler *ledger.Reconciler,
	orchestrator temporal.TemporalOrchestrator,
	publisher messaging.Publisher,
	clock adapter.Clock,
) *Service {
	if cfg.CodeTTL <= 0 {
		cfg.CodeTTL = DefaultCodeTTL
	}
	return &Service{
		cfg:          cfg,
		store:        st,
		reconciler:   reconciler,
		orchestrator: orchestrator,
		publisher:    publisher,
		clock:        clock,
	}
}

// Create generates a single-use transfer code for an asset. Only the
// current owner may offer a transfer.
func (s *Service) Create(ctx context.Context, assetID uuid.UUID, fromUser string) (*schema.TransferRequest, error) {
	if fromUser == "" {
		return nil, fmt.Errorf("%w: from_user is required", domain.ErrMalformedPayload)
	}

	asset, err := s.store.GetAssetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, fmt.Errorf("%w: asset %s", domain.ErrNotFound, assetID)
	}

	owner, err := s.reconciler.CurrentOwner(ctx, asset.RecordType, asset.ID, asset.RegisteredBy)
	if err != nil {
		return nil, err
	}
	if owner != fromUser {
		return nil, fmt.Errorf("%w: %s does not own asset %s", domain.ErrForbidden, fromUser, asset.ID)
	}

	code, err := domain.NewTransferCode()
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	transfer := &schema.TransferRequest{
		ID:               uuid.New(),
		Code:             code,
		RecordType:       asset.RecordType,
		RecordID:         asset.ID,
		BuildingID:       asset.BuildingID,
		NFCUUID:          asset.NFCUUID,
		AssetName:        asset.Name,
		AssetDescription: asset.Description,
		ImageURL:         asset.ImageURL,
		FromUser:         fromUser,
		Status:           schema.TransferStatusPending,
		CreatedAt:        now,
		ExpiresAt:        now.Add(s.cfg.CodeTTL),
		UpdatedAt:        now,
	}
	if err := s.store.CreateTransferRequest(ctx, transfer); err != nil {
		return nil, err
	}

	return transfer, nil
}

// QR builds the out-of-band QR payload for a pending transfer. Only the
// offering owner may export it.
func (s *Service) QR(ctx context.Context, transferID uuid.UUID, username string) (string, error) {
	transfer, err := s.Get(ctx, transferID)
	if err != nil {
		return "", err
	}
	if transfer.FromUser != username {
		return "", fmt.Errorf("%w: %s did not create transfer %s", domain.ErrForbidden, username, transferID)
	}
	if !transfer.CanReceive(s.clock.Now()) {
		return "", fmt.Errorf("%w: transfer %s is not claimable", domain.ErrInvalidState, transferID)
	}

	asset, err := s.store.GetAssetByID(ctx, transfer.RecordID)
	if err != nil {
		return "", err
	}
	buildingName := ""
	if asset != nil {
		buildingName = asset.BuildingName
	}

	payload := domain.TransferQRData{
		TransferCode: transfer.Code,
		NFCUUID:      transfer.NFCUUID,
		BuildingName: buildingName,
		AssetName:    transfer.AssetName,
		FromUser:     transfer.FromUser,
		ExpiresAt:    transfer.ExpiresAt,
	}
	return payload.Encode()
}

// ParseQR decodes a QR payload. The result is a snapshot: Claim
// re-validates everything against live state.
func (s *Service) ParseQR(payload string) (*domain.TransferQRData, error) {
	return domain.DecodeTransferQR(payload)
}

// Claim consumes a transfer code and hands ownership to the claimant.
// Exactly one claim can win: the completion is a compare-and-swap on the
// row version, and a lost race surfaces as already-claimed. The claimant
// must be at the asset when both sides have a GPS fix.
func (s *Service) Claim(ctx context.Context, code string, toUser string, location *geo.Point) (*schema.TransferRequest, error) {
	if code == "" || toUser == "" {
		return nil, fmt.Errorf("%w: code and to_user are required", domain.ErrMalformedPayload)
	}

	transfer, err := s.store.GetTransferByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if transfer == nil {
		return nil, fmt.Errorf("%w: transfer code not found", domain.ErrNotFound)
	}

	now := s.clock.Now()
	switch transfer.Status {
	case schema.TransferStatusCompleted:
		return nil, fmt.Errorf("%w: transfer code already used", domain.ErrAlreadyClaimed)
	case schema.TransferStatusExpired:
		return nil, fmt.Errorf("%w: transfer code expired", domain.ErrExpired)
	case schema.TransferStatusCancelled:
		return nil, fmt.Errorf("%w: transfer was cancelled", domain.ErrAlreadyClaimed)
	}

	if transfer.IsExpired(now) {
		s.expireLazily(ctx, transfer)
		return nil, fmt.Errorf("%w: transfer code expired", domain.ErrExpired)
	}

	if transfer.FromUser == toUser {
		return nil, fmt.Errorf("%w: cannot claim your own transfer", domain.ErrForbidden)
	}

	asset, err := s.store.GetAssetByID(ctx, transfer.RecordID)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, fmt.Errorf("%w: asset %s", domain.ErrNotFound, transfer.RecordID)
	}
	if err := geo.VerifyProximity(location, asset.AnchorPoint()); err != nil {
		return nil, err
	}

	err = s.store.CompleteTransfer(ctx, store.CompleteTransferInput{
		ID:              transfer.ID,
		ExpectedVersion: transfer.Version,
		ToUser:          toUser,
		CompletedAt:     now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrVersionConflict) {
			// Another claim or a cancellation won the race
			return nil, fmt.Errorf("%w: transfer code already used", domain.ErrAlreadyClaimed)
		}
		return nil, err
	}

	transfer.Status = schema.TransferStatusCompleted
	transfer.ToUser = &toUser
	transfer.CompletedAt = &now
	transfer.Version++

	// Ownership moves off-chain immediately; the chain leg follows
	// asynchronously and is idempotent against this same cause
	_, _, err = s.reconciler.Apply(ctx, ledger.ApplyInput{
		RecordType:   transfer.RecordType,
		RecordID:     transfer.RecordID,
		TransferType: schema.TransferTypeGift,
		NewOwner:     toUser,
		CauseID:      ledger.TransferCauseID(transfer.ID),
	})
	if err != nil {
		// The claim stands; the workflow replays the ledger write
		logger.ErrorCtx(ctx, fmt.Errorf("failed to apply ownership change: %w", err),
			zap.String("transfer_id", transfer.ID.String()))
	}

	s.startReconcileWorkflow(ctx, transfer, toUser)

	event := &messaging.OutcomeEvent{
		Kind:       messaging.EventTransferCompleted,
		RecordType: transfer.RecordType,
		RecordID:   transfer.RecordID,
		SubjectID:  transfer.ID.String(),
		Actor:      toUser,
		Status:     string(schema.TransferStatusCompleted),
		Timestamp:  now,
	}
	if err := s.publisher.PublishOutcome(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish transfer event",
			zap.Error(err), zap.String("transfer_id", transfer.ID.String()))
	}

	return transfer, nil
}

// expireLazily persists the expired status discovered on read. Losing the
// update race is fine: whoever wins writes the same terminal state.
func (s *Service) expireLazily(ctx context.Context, transfer *schema.TransferRequest) {
	err := s.store.UpdateTransferStatus(ctx, transfer.ID, transfer.Version, schema.TransferStatusExpired)
	if err != nil && !errors.Is(err, domain.ErrVersionConflict) {
		logger.WarnCtx(ctx, "Failed to persist transfer expiry",
			zap.Error(err), zap.String("transfer_id", transfer.ID.String()))
	}
}

func (s *Service) startReconcileWorkflow(ctx context.Context, transfer *schema.TransferRequest, toUser string) {
	job := workflows.TransferJob{
		RecordType:   transfer.RecordType,
		RecordID:     transfer.RecordID,
		TransferType: schema.TransferTypeGift,
		NewOwner:     toUser,
		CauseID:      ledger.TransferCauseID(transfer.ID),
		RequestID:    ledger.TransferCauseID(transfer.ID),
	}

	options := client.StartWorkflowOptions{
		ID:                    fmt.Sprintf("reconcile-transfer-%s", transfer.ID),
		TaskQueue:             s.cfg.TaskQueue,
		WorkflowRunTimeout:    30 * time.Minute,
		WorkflowIDReusePolicy: enums.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE,
	}

	w := workflows.NewReconciler(nil)
	if _, err := s.orchestrator.ExecuteWorkflow(ctx, options, w.ReconcileTransfer, job); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to start transfer reconciliation: %w", err),
			zap.String("transfer_id", transfer.ID.String()))
	}
}

// Cancel withdraws a pending transfer. Only the offering owner may cancel,
// and only while the code is unclaimed.
func (s *Service) Cancel(ctx context.Context, transferID uuid.UUID, username string) (*schema.TransferRequest, error) {
	transfer, err := s.Get(ctx, transferID)
	if err != nil {
		return nil, err
	}
	if transfer.FromUser != username {
		return nil, fmt.Errorf("%w: %s did not create transfer %s", domain.ErrForbidden, username, transferID)
	}
	if transfer.Status != schema.TransferStatusPending {
		return nil, fmt.Errorf("%w: transfer %s is %s", domain.ErrInvalidState, transferID, transfer.Status)
	}

	err = s.store.UpdateTransferStatus(ctx, transfer.ID, transfer.Version, schema.TransferStatusCancelled)
	if err != nil {
		if errors.Is(err, domain.ErrVersionConflict) {
			return nil, fmt.Errorf("%w: transfer %s changed state", domain.ErrInvalidState, transferID)
		}
		return nil, err
	}

	transfer.Status = schema.TransferStatusCancelled
	transfer.Version++
	return transfer, nil
}

// Get retrieves a transfer request by id
func (s *Service) Get(ctx context.Context, transferID uuid.UUID) (*schema.TransferRequest, error) {
	transfer, err := s.store.GetTransferByID(ctx, transferID)
	if err != nil {
		return nil, err
	}
	if transfer == nil {
		return nil, fmt.Errorf("%w: transfer %s", domain.ErrNotFound, transferID)
	}
	return transfer, nil
}

// GetByCode retrieves a transfer request by its code, reporting expiry
// lazily so a stale pending row reads as expired.
func (s *Service) GetByCode(ctx context.Context, code string) (*schema.TransferRequest, error) {
	transfer, err := s.store.GetTransferByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if transfer == nil {
		return nil, fmt.Errorf("%w: transfer code not found", domain.ErrNotFound)
	}
	if transfer.Status == schema.TransferStatusPending && transfer.IsExpired(s.clock.Now()) {
		s.expireLazily(ctx, transfer)
		transfer.Status = schema.TransferStatusExpired
	}
	return transfer, nil
}
