package bid

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
	"github.com/phygrid/engine/internal/ledger"
	"github.com/phygrid/engine/internal/logger"
	"github.com/phygrid/engine/internal/messaging"
	"github.com/phygrid/engine/internal/providers/temporal"
	"github.com/phygrid/engine/internal/store"
	"github.com/phygrid/engine/internal/store/schema"
	"github.com/phygrid/engine/internal/workflows"
)

// DefaultBidTTL is how long an open negotiation stays live when the caller
// does not pick a deadline
const DefaultBidTTL = 7 * 24 * time.Hour

// Config holds the bid service configuration
type Config struct {
	// BidTTL bounds how long a negotiation stays open
	BidTTL time.Duration
	// TaskQueue is the Temporal task queue for settlement workflows
	TaskQueue string
}

// Service runs the bid negotiation state machine between a bidder and the
// current owner of an asset record.
type Service struct {
	cfg          Config
	store        store.Store
	reconciler   *ledger.Reconciler
	orchestrator temporal.TemporalOrchestrator
	publisher    messaging.Publisher
	clock        adapter.Clock
}

// NewService creates a bid service
func NewService(
	cfg Config,
	st store.Store,
	reconciler *ledger.Reconciler,
	orchestrator temporal.TemporalOrchestrator,
	publisher messaging.Publisher,
	clock adapter.Clock,
) *Service {
	if cfg.BidTTL <= 0 {
		cfg.BidTTL = DefaultBidTTL
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

// PlaceInput carries a new acquisition proposal
type PlaceInput struct {
	AssetID        uuid.UUID
	BidderUsername string
	// Amount is the offer in currency minor units
	Amount  int64
	Contact *string
	Message *string
}

// Place opens a negotiation on an asset. The bidder cannot be the current
// owner, and the amount must be positive.
func (s *Service) Place(ctx context.Context, input PlaceInput) (*schema.Bid, error) {
	if input.BidderUsername == "" {
		return nil, fmt.Errorf("%w: bidder_username is required", domain.ErrMalformedPayload)
	}
	if !domain.ValidAmount(input.Amount) {
		return nil, fmt.Errorf("%w: bid amount must be positive", domain.ErrMalformedPayload)
	}

	asset, err := s.store.GetAssetByID(ctx, input.AssetID)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, fmt.Errorf("%w: asset %s", domain.ErrNotFound, input.AssetID)
	}

	owner, err := s.reconciler.CurrentOwner(ctx, asset.RecordType, asset.ID, asset.RegisteredBy)
	if err != nil {
		return nil, err
	}
	if owner == input.BidderUsername {
		return nil, fmt.Errorf("%w: cannot bid on your own asset", domain.ErrForbidden)
	}

	now := s.clock.Now()
	bid := &schema.Bid{
		ID:             uuid.New(),
		RecordType:     asset.RecordType,
		RecordID:       asset.ID,
		BuildingID:     asset.BuildingID,
		BidderUsername: input.BidderUsername,
		OwnerUsername:  owner,
		BidAmount:      input.Amount,
		BidderContact:  input.Contact,
		BidderMessage:  input.Message,
		Status:         schema.BidStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
		ExpiresAt:      now.Add(s.cfg.BidTTL),
	}
	if err := s.store.CreateBid(ctx, bid); err != nil {
		return nil, err
	}

	s.publishUpdate(ctx, bid, input.BidderUsername)
	return bid, nil
}

// Counter proposes a different amount to the other party. The owner counters
// a pending bid; once countered, either side may counter again, overwriting
// the previous counter amount on the same bid.
func (s *Service) Counter(ctx context.Context, bidID uuid.UUID, username string, amount int64, message *string) (*schema.Bid, error) {
	if !domain.ValidAmount(amount) {
		return nil, fmt.Errorf("%w: counter amount must be positive", domain.ErrMalformedPayload)
	}

	bid, err := s.getOpen(ctx, bidID)
	if err != nil {
		return nil, err
	}

	switch bid.Status {
	case schema.BidStatusPending:
		if bid.OwnerUsername != username {
			return nil, fmt.Errorf("%w: only the owner may counter a pending bid", domain.ErrForbidden)
		}
	case schema.BidStatusCountered:
		if bid.OwnerUsername != username && bid.BidderUsername != username {
			return nil, fmt.Errorf("%w: only a negotiation party may counter", domain.ErrForbidden)
		}
	default:
		return nil, fmt.Errorf("%w: bid %s is %s", domain.ErrInvalidState, bidID, bid.Status)
	}

	input := store.TransitionBidInput{
		ID:              bid.ID,
		ExpectedVersion: bid.Version,
		Status:          schema.BidStatusCountered,
		CounterAmount:   &amount,
	}
	if username == bid.BidderUsername {
		input.BidderMessage = message
	} else {
		input.OwnerMessage = message
	}

	if err := s.transition(ctx, bid, input); err != nil {
		return nil, err
	}

	bid.Status = schema.BidStatusCountered
	bid.CounterAmount = &amount
	if username == bid.BidderUsername {
		bid.BidderMessage = message
	} else {
		bid.OwnerMessage = message
	}
	bid.Version++

	s.publishUpdate(ctx, bid, username)
	return bid, nil
}

// Accept closes the negotiation at the amount on the table. A pending bid
// is accepted by the owner at the bid amount; a countered bid is accepted
// by the bidder at the counter amount. Acceptance hands the ownership
// change to the settlement workflow; the bid completes only once that
// change executes and reconciles.
func (s *Service) Accept(ctx context.Context, bidID uuid.UUID, username string) (*schema.Bid, error) {
	bid, err := s.getOpen(ctx, bidID)
	if err != nil {
		return nil, err
	}

	switch bid.Status {
	case schema.BidStatusPending:
		if bid.OwnerUsername != username {
			return nil, fmt.Errorf("%w: only the owner may accept a pending bid", domain.ErrForbidden)
		}
	case schema.BidStatusCountered:
		if bid.BidderUsername != username {
			return nil, fmt.Errorf("%w: only the bidder may accept a counter", domain.ErrForbidden)
		}
	default:
		return nil, fmt.Errorf("%w: bid %s is %s", domain.ErrInvalidState, bidID, bid.Status)
	}

	err = s.transition(ctx, bid, store.TransitionBidInput{
		ID:              bid.ID,
		ExpectedVersion: bid.Version,
		Status:          schema.BidStatusAccepted,
	})
	if err != nil {
		return nil, err
	}

	bid.Status = schema.BidStatusAccepted
	bid.Version++

	s.startSettlementWorkflow(ctx, bid)
	s.publishUpdate(ctx, bid, username)
	return bid, nil
}

// Reject declines the amount on the table. The owner may reject a pending
// bid; the bidder may reject a counter. The owner may also reject a bid
// they previously countered, withdrawing the counter.
func (s *Service) Reject(ctx context.Context, bidID uuid.UUID, username string, message *string) (*schema.Bid, error) {
	bid, err := s.getOpen(ctx, bidID)
	if err != nil {
		return nil, err
	}

	switch bid.Status {
	case schema.BidStatusPending:
		if bid.OwnerUsername != username {
			return nil, fmt.Errorf("%w: only the owner may reject a pending bid", domain.ErrForbidden)
		}
	case schema.BidStatusCountered:
		if bid.BidderUsername != username && bid.OwnerUsername != username {
			return nil, fmt.Errorf("%w: %s is not a party to bid %s", domain.ErrForbidden, username, bidID)
		}
	default:
		return nil, fmt.Errorf("%w: bid %s is %s", domain.ErrInvalidState, bidID, bid.Status)
	}

	input := store.TransitionBidInput{
		ID:              bid.ID,
		ExpectedVersion: bid.Version,
		Status:          schema.BidStatusRejected,
	}
	if bid.OwnerUsername == username {
		input.OwnerMessage = message
	} else {
		input.BidderMessage = message
	}

	if err := s.transition(ctx, bid, input); err != nil {
		return nil, err
	}

	bid.Status = schema.BidStatusRejected
	bid.Version++

	s.publishUpdate(ctx, bid, username)
	return bid, nil
}

// Cancel withdraws a bid. Only the bidder may cancel, and only while the
// bid is pending; once countered the bidder answers with accept or reject.
func (s *Service) Cancel(ctx context.Context, bidID uuid.UUID, username string) (*schema.Bid, error) {
	bid, err := s.getOpen(ctx, bidID)
	if err != nil {
		return nil, err
	}
	if bid.BidderUsername != username {
		return nil, fmt.Errorf("%w: only the bidder may cancel", domain.ErrForbidden)
	}
	if bid.Status != schema.BidStatusPending {
		return nil, fmt.Errorf("%w: bid %s is %s", domain.ErrInvalidState, bidID, bid.Status)
	}

	err = s.transition(ctx, bid, store.TransitionBidInput{
		ID:              bid.ID,
		ExpectedVersion: bid.Version,
		Status:          schema.BidStatusCancelled,
	})
	if err != nil {
		return nil, err
	}

	bid.Status = schema.BidStatusCancelled
	bid.Version++

	s.publishUpdate(ctx, bid, username)
	return bid, nil
}

// Settle re-enqueues the settlement workflow for an accepted bid whose
// earlier settlement did not land (operator retry path).
func (s *Service) Settle(ctx context.Context, bidID uuid.UUID) (*schema.Bid, error) {
	bid, err := s.Get(ctx, bidID)
	if err != nil {
		return nil, err
	}
	if bid.Status != schema.BidStatusAccepted {
		return nil, fmt.Errorf("%w: bid %s is %s, not accepted", domain.ErrInvalidState, bidID, bid.Status)
	}
	s.startSettlementWorkflow(ctx, bid)
	return bid, nil
}

// Get retrieves a bid by id
func (s *Service) Get(ctx context.Context, bidID uuid.UUID) (*schema.Bid, error) {
	bid, err := s.store.GetBidByID(ctx, bidID)
	if err != nil {
		return nil, err
	}
	if bid == nil {
		return nil, fmt.Errorf("%w: bid %s", domain.ErrNotFound, bidID)
	}
	return bid, nil
}

// ListForRecord returns all bids on a record, newest first
func (s *Service) ListForRecord(ctx context.Context, recordType domain.RecordType, recordID uuid.UUID) ([]schema.Bid, error) {
	return s.store.ListBidsForRecord(ctx, recordType, recordID)
}

// ListForUser returns all bids in which the user is bidder or owner
func (s *Service) ListForUser(ctx context.Context, username string) ([]schema.Bid, error) {
	return s.store.ListBidsByParty(ctx, username)
}

// getOpen retrieves a bid and applies lazy expiry: an open bid past its
// deadline is persisted as expired and reported so.
func (s *Service) getOpen(ctx context.Context, bidID uuid.UUID) (*schema.Bid, error) {
	bid, err := s.Get(ctx, bidID)
	if err != nil {
		return nil, err
	}

	open := bid.Status == schema.BidStatusPending || bid.Status == schema.BidStatusCountered
	if open && bid.IsExpired(s.clock.Now()) {
		s.expireLazily(ctx, bid)
		return nil, fmt.Errorf("%w: bid %s expired", domain.ErrExpired, bidID)
	}
	return bid, nil
}

// expireLazily persists expiry discovered on read. Losing the race is
// fine: whoever wins writes the same terminal state.
func (s *Service) expireLazily(ctx context.Context, bid *schema.Bid) {
	err := s.store.TransitionBid(ctx, store.TransitionBidInput{
		ID:              bid.ID,
		ExpectedVersion: bid.Version,
		Status:          schema.BidStatusExpired,
	})
	if err != nil && !errors.Is(err, domain.ErrVersionConflict) {
		logger.WarnCtx(ctx, "Failed to persist bid expiry",
			zap.Error(err), zap.String("bid_id", bid.ID.String()))
	}
}

// transition applies a conditional status change, mapping a lost version
// race to an invalid-state error for the caller.
func (s *Service) transition(ctx context.Context, bid *schema.Bid, input store.TransitionBidInput) error {
	err := s.store.TransitionBid(ctx, input)
	if errors.Is(err, domain.ErrVersionConflict) {
		return fmt.Errorf("%w: bid %s changed state concurrently", domain.ErrInvalidState, bid.ID)
	}
	return err
}

func (s *Service) startSettlementWorkflow(ctx context.Context, bid *schema.Bid) {
	bidID := bid.ID
	job := workflows.TransferJob{
		RecordType:   bid.RecordType,
		RecordID:     bid.RecordID,
		TransferType: schema.TransferTypeBid,
		NewOwner:     bid.BidderUsername,
		CauseID:      ledger.BidCauseID(bid.ID),
		BidID:        &bidID,
		RequestID:    ledger.BidCauseID(bid.ID),
	}

	options := client.StartWorkflowOptions{
		ID:                    fmt.Sprintf("settle-bid-%s", bid.ID),
		TaskQueue:             s.cfg.TaskQueue,
		WorkflowRunTimeout:    30 * time.Minute,
		WorkflowIDReusePolicy: enums.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE,
	}

	w := workflows.NewReconciler(nil)
	if _, err := s.orchestrator.ExecuteWorkflow(ctx, options, w.ReconcileTransfer, job); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to start bid settlement: %w", err),
			zap.String("bid_id", bid.ID.String()))
	}
}

func (s *Service) publishUpdate(ctx context.Context, bid *schema.Bid, actor string) {
	event := &messaging.OutcomeEvent{
		Kind:       messaging.EventBidUpdated,
		RecordType: bid.RecordType,
		RecordID:   bid.RecordID,
		SubjectID:  bid.ID.String(),
		Actor:      actor,
		Status:     string(bid.Status),
		Timestamp:  s.clock.Now(),
	}
	if err := s.publisher.PublishOutcome(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish bid event",
			zap.Error(err), zap.String("bid_id", bid.ID.String()))
	}
}
