package workflows_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phygrid/engine/internal/chain"
	"github.com/phygrid/engine/internal/domain"
	"github.com/phygrid/engine/internal/ledger"
	"github.com/phygrid/engine/internal/logger"
	"github.com/phygrid/engine/internal/mocks"
	"github.com/phygrid/engine/internal/store"
	"github.com/phygrid/engine/internal/store/schema"
	"github.com/phygrid/engine/internal/workflows"
)

// testExecutorMocks contains all the mocks needed for testing the executor
type testExecutorMocks struct {
	ctrl      *gomock.Controller
	store     *mocks.MockStore
	chain     *mocks.MockChainService
	publisher *mocks.MockPublisher
	clock     *mocks.MockClock
	executor  workflows.Executor
	now       time.Time
}

// setupTestExecutor creates all the mocks and executor for testing
func setupTestExecutor(t *testing.T) *testExecutorMocks {
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	ctrl := gomock.NewController(t)

	tm := &testExecutorMocks{
		ctrl:      ctrl,
		store:     mocks.NewMockStore(ctrl),
		chain:     mocks.NewMockChainService(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
		clock:     mocks.NewMockClock(ctrl),
		now:       time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
	tm.clock.EXPECT().Now().Return(tm.now).AnyTimes()

	reconciler := ledger.NewReconciler(ledger.Config{
		ContractAddress: "0xcontract",
	}, tm.store, tm.clock)

	tm.executor = workflows.NewExecutor(tm.store, reconciler, tm.chain, tm.publisher, tm.clock)

	return tm
}

func tearDownTestExecutor(mocks *testExecutorMocks) {
	mocks.ctrl.Finish()
}

func stringPtr(s string) *string {
	return &s
}

func TestApplyOwnershipChange_MintPath(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	recordID := uuid.New()
	ledgerID := uuid.New()

	tm.store.EXPECT().
		GetOwnershipRecord(gomock.Any(), domain.RecordTypeBuilding, recordID).
		Return(nil, nil).
		Times(2) // once by the executor for prior owner, once inside Apply
	tm.store.EXPECT().
		ApplyMint(gomock.Any(), gomock.Any()).
		Return(&schema.NFTOwnershipRecord{
			ID:              ledgerID,
			TokenID:         "42",
			ContractAddress: "0xcontract",
			CurrentOwner:    "alice",
			OriginalMinter:  "alice",
		}, true, nil)

	state, err := tm.executor.ApplyOwnershipChange(context.Background(), ledger.ApplyInput{
		RecordType: domain.RecordTypeBuilding,
		RecordID:   recordID,
		NewOwner:   "alice",
		CauseID:    ledger.MintCauseID(recordID),
	})
	require.NoError(t, err)
	assert.Equal(t, ledgerID, state.OwnershipRecordID)
	assert.Equal(t, "alice", state.CurrentOwner)
	assert.Empty(t, state.PriorOwner)
	assert.True(t, state.Minted)
	assert.True(t, state.Appended)
}

func TestApplyOwnershipChange_TransferPath(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	recordID := uuid.New()
	transferID := uuid.New()
	ledgerID := uuid.New()
	existing := &schema.NFTOwnershipRecord{
		ID:           ledgerID,
		CurrentOwner: "alice",
	}

	tm.store.EXPECT().
		GetOwnershipRecord(gomock.Any(), domain.RecordTypeBuilding, recordID).
		Return(existing, nil).
		Times(2)
	tm.store.EXPECT().
		ApplyTransfer(gomock.Any(), store.ApplyTransferInput{
			RecordType:   domain.RecordTypeBuilding,
			RecordID:     recordID,
			TransferType: schema.TransferTypeGift,
			ToUser:       "bob",
			CauseID:      ledger.TransferCauseID(transferID),
			Now:          tm.now,
		}).
		Return(&schema.NFTOwnershipRecord{
			ID:           ledgerID,
			TokenID:      "42",
			CurrentOwner: "bob",
		}, true, nil)

	state, err := tm.executor.ApplyOwnershipChange(context.Background(), ledger.ApplyInput{
		RecordType:   domain.RecordTypeBuilding,
		RecordID:     recordID,
		TransferType: schema.TransferTypeGift,
		NewOwner:     "bob",
		CauseID:      ledger.TransferCauseID(transferID),
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", state.PriorOwner)
	assert.Equal(t, "bob", state.CurrentOwner)
	assert.False(t, state.Minted)
	assert.True(t, state.Appended)
}

func TestSubmitChainMint(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	state := &workflows.OwnershipState{
		TokenID:         "42",
		ContractAddress: "0xcontract",
		CurrentOwner:    "alice",
	}

	tm.chain.EXPECT().
		Mint(gomock.Any(), chain.MintRequest{
			RequestID:       "mint:req",
			TokenID:         "42",
			ContractAddress: "0xcontract",
			Owner:           "alice",
		}).
		Return("0xtxhash", nil)

	txHash, err := tm.executor.SubmitChainMint(context.Background(), state, "mint:req")
	require.NoError(t, err)
	assert.Equal(t, "0xtxhash", txHash)
}

func TestSubmitChainTransfer(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	state := &workflows.OwnershipState{
		TokenID:         "42",
		ContractAddress: "0xcontract",
		PriorOwner:      "alice",
		CurrentOwner:    "bob",
	}

	tm.chain.EXPECT().
		Transfer(gomock.Any(), chain.TransferRequest{
			RequestID:       "transfer:req",
			TokenID:         "42",
			ContractAddress: "0xcontract",
			FromUser:        "alice",
			ToUser:          "bob",
		}).
		Return("0xtxhash", nil)

	txHash, err := tm.executor.SubmitChainTransfer(context.Background(), state, "transfer:req")
	require.NoError(t, err)
	assert.Equal(t, "0xtxhash", txHash)
}

func TestMarkReconciled(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	ledgerID := uuid.New()

	tm.store.EXPECT().
		MarkHistoryReconciled(gomock.Any(), ledgerID, "transfer:abc", "0xtxhash").
		Return(nil)
	tm.publisher.EXPECT().
		PublishOutcome(gomock.Any(), gomock.Any()).
		Return(nil)

	err := tm.executor.MarkReconciled(context.Background(), ledgerID, "transfer:abc", "0xtxhash")
	assert.NoError(t, err)
}

func TestMarkReconciled_PublishFailureIsNonFatal(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	ledgerID := uuid.New()

	tm.store.EXPECT().
		MarkHistoryReconciled(gomock.Any(), ledgerID, "transfer:abc", "0xtxhash").
		Return(nil)
	tm.publisher.EXPECT().
		PublishOutcome(gomock.Any(), gomock.Any()).
		Return(errors.New("broker down"))

	err := tm.executor.MarkReconciled(context.Background(), ledgerID, "transfer:abc", "0xtxhash")
	assert.NoError(t, err)
}

func TestCompleteBid_Success(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	bidID := uuid.New()
	recordID := uuid.New()
	bid := &schema.Bid{
		ID:             bidID,
		RecordType:     domain.RecordTypeBuilding,
		RecordID:       recordID,
		BidderUsername: "bob",
		Status:         schema.BidStatusAccepted,
		Version:        3,
	}

	tm.store.EXPECT().GetBidByID(gomock.Any(), bidID).Return(bid, nil)
	tm.store.EXPECT().
		TransitionBid(gomock.Any(), store.TransitionBidInput{
			ID:              bidID,
			ExpectedVersion: 3,
			Status:          schema.BidStatusCompleted,
			CompletedAt:     &tm.now,
		}).
		Return(nil)
	tm.publisher.EXPECT().PublishOutcome(gomock.Any(), gomock.Any()).Return(nil)

	err := tm.executor.CompleteBid(context.Background(), bidID)
	assert.NoError(t, err)
}

func TestCompleteBid_ReplayOfCompletedBid(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	bidID := uuid.New()

	tm.store.EXPECT().
		GetBidByID(gomock.Any(), bidID).
		Return(&schema.Bid{ID: bidID, Status: schema.BidStatusCompleted}, nil)

	// Already completed by a previous run of the same workflow
	err := tm.executor.CompleteBid(context.Background(), bidID)
	assert.NoError(t, err)
}

func TestCompleteBid_NotAccepted(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	bidID := uuid.New()

	tm.store.EXPECT().
		GetBidByID(gomock.Any(), bidID).
		Return(&schema.Bid{ID: bidID, Status: schema.BidStatusPending}, nil)

	err := tm.executor.CompleteBid(context.Background(), bidID)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestCompleteBid_LostRaceToCompletion(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	bidID := uuid.New()
	accepted := &schema.Bid{
		ID:      bidID,
		Status:  schema.BidStatusAccepted,
		Version: 3,
	}

	tm.store.EXPECT().GetBidByID(gomock.Any(), bidID).Return(accepted, nil)
	tm.store.EXPECT().
		TransitionBid(gomock.Any(), gomock.Any()).
		Return(domain.ErrVersionConflict)
	// Re-check shows a concurrent run already completed it
	tm.store.EXPECT().
		GetBidByID(gomock.Any(), bidID).
		Return(&schema.Bid{ID: bidID, Status: schema.BidStatusCompleted, Version: 4}, nil)

	err := tm.executor.CompleteBid(context.Background(), bidID)
	assert.NoError(t, err)
}

func TestCompleteBid_NotFound(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	bidID := uuid.New()

	tm.store.EXPECT().GetBidByID(gomock.Any(), bidID).Return(nil, nil)

	err := tm.executor.CompleteBid(context.Background(), bidID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
