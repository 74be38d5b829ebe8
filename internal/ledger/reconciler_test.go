package ledger_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phygrid/engine/internal/domain"
	"github.com/phygrid/engine/internal/ledger"
	"github.com/phygrid/engine/internal/logger"
	"github.com/phygrid/engine/internal/mocks"
	"github.com/phygrid/engine/internal/store"
	"github.com/phygrid/engine/internal/store/schema"
)

const testContract = "0x89Af512f4e8bD9F1a6c0C7D5a8b1C23d45E67f89"

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{Debug: false})
	if err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type testLedgerMocks struct {
	ctrl       *gomock.Controller
	store      *mocks.MockStore
	clock      *mocks.MockClock
	reconciler *ledger.Reconciler
	now        time.Time
}

func setupTestLedger(t *testing.T) *testLedgerMocks {
	ctrl := gomock.NewController(t)

	tm := &testLedgerMocks{
		ctrl:  ctrl,
		store: mocks.NewMockStore(ctrl),
		clock: mocks.NewMockClock(ctrl),
		now:   time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
	tm.clock.EXPECT().Now().Return(tm.now).AnyTimes()

	tm.reconciler = ledger.NewReconciler(ledger.Config{
		ContractAddress: testContract,
	}, tm.store, tm.clock)

	return tm
}

func TestCauseIDs(t *testing.T) {
	id := uuid.MustParse("a3bb189e-8bf9-3888-9912-ace4e6543002")

	assert.Equal(t, "mint:"+id.String(), ledger.MintCauseID(id))
	assert.Equal(t, "transfer:"+id.String(), ledger.TransferCauseID(id))
	assert.Equal(t, "bid:"+id.String(), ledger.BidCauseID(id))
}

func TestTokenIDForRecord(t *testing.T) {
	// Token id is the record uuid's 128-bit value in decimal
	id := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	assert.Equal(t, "1", ledger.TokenIDForRecord(id))

	other := uuid.New()
	assert.NotEqual(t, ledger.TokenIDForRecord(id), ledger.TokenIDForRecord(other))
}

func TestReconciler_Mint(t *testing.T) {
	tm := setupTestLedger(t)
	defer tm.ctrl.Finish()

	recordID := uuid.New()
	minted := &schema.NFTOwnershipRecord{
		ID:              uuid.New(),
		RecordType:      domain.RecordTypeBuilding,
		RecordID:        recordID,
		CurrentOwner:    "alice",
		OriginalMinter:  "alice",
		ContractAddress: testContract,
	}

	tm.store.EXPECT().
		ApplyMint(gomock.Any(), store.ApplyMintInput{
			RecordType:      domain.RecordTypeBuilding,
			RecordID:        recordID,
			TokenID:         ledger.TokenIDForRecord(recordID),
			ContractAddress: testContract,
			Owner:           "alice",
			CauseID:         ledger.MintCauseID(recordID),
			Now:             tm.now,
		}).
		Return(minted, true, nil)

	record, appended, err := tm.reconciler.Mint(context.Background(), domain.RecordTypeBuilding, recordID, "alice", nil)
	require.NoError(t, err)
	assert.True(t, appended)
	assert.Equal(t, "alice", record.CurrentOwner)
}

func TestReconciler_Apply_MintPathWhenUnminted(t *testing.T) {
	tm := setupTestLedger(t)
	defer tm.ctrl.Finish()

	recordID := uuid.New()
	transferID := uuid.New()

	// No ledger entry yet: the transfer recipient becomes original minter
	tm.store.EXPECT().
		GetOwnershipRecord(gomock.Any(), domain.RecordTypeBuilding, recordID).
		Return(nil, nil)
	tm.store.EXPECT().
		ApplyMint(gomock.Any(), store.ApplyMintInput{
			RecordType:      domain.RecordTypeBuilding,
			RecordID:        recordID,
			TokenID:         ledger.TokenIDForRecord(recordID),
			ContractAddress: testContract,
			Owner:           "bob",
			CauseID:         ledger.TransferCauseID(transferID),
			Now:             tm.now,
		}).
		Return(&schema.NFTOwnershipRecord{CurrentOwner: "bob", OriginalMinter: "bob"}, true, nil)

	record, appended, err := tm.reconciler.Apply(context.Background(), ledger.ApplyInput{
		RecordType:   domain.RecordTypeBuilding,
		RecordID:     recordID,
		TransferType: schema.TransferTypeGift,
		NewOwner:     "bob",
		CauseID:      ledger.TransferCauseID(transferID),
	})
	require.NoError(t, err)
	assert.True(t, appended)
	assert.Equal(t, "bob", record.OriginalMinter)
}

func TestReconciler_Apply_TransferPath(t *testing.T) {
	tm := setupTestLedger(t)
	defer tm.ctrl.Finish()

	recordID := uuid.New()
	bidID := uuid.New()

	tm.store.EXPECT().
		GetOwnershipRecord(gomock.Any(), domain.RecordTypeBuilding, recordID).
		Return(&schema.NFTOwnershipRecord{ID: uuid.New(), CurrentOwner: "alice"}, nil)
	tm.store.EXPECT().
		ApplyTransfer(gomock.Any(), store.ApplyTransferInput{
			RecordType:   domain.RecordTypeBuilding,
			RecordID:     recordID,
			TransferType: schema.TransferTypeBid,
			ToUser:       "bob",
			CauseID:      ledger.BidCauseID(bidID),
			BidID:        &bidID,
			Now:          tm.now,
		}).
		Return(&schema.NFTOwnershipRecord{CurrentOwner: "bob", OriginalMinter: "alice"}, true, nil)

	record, appended, err := tm.reconciler.Apply(context.Background(), ledger.ApplyInput{
		RecordType:   domain.RecordTypeBuilding,
		RecordID:     recordID,
		TransferType: schema.TransferTypeBid,
		NewOwner:     "bob",
		CauseID:      ledger.BidCauseID(bidID),
		BidID:        &bidID,
	})
	require.NoError(t, err)
	assert.True(t, appended)
	assert.Equal(t, "bob", record.CurrentOwner)
	// Original minter never changes on transfer
	assert.Equal(t, "alice", record.OriginalMinter)
}

func TestReconciler_Apply_ReplayAppendsNothing(t *testing.T) {
	tm := setupTestLedger(t)
	defer tm.ctrl.Finish()

	recordID := uuid.New()

	tm.store.EXPECT().
		GetOwnershipRecord(gomock.Any(), domain.RecordTypeBuilding, recordID).
		Return(&schema.NFTOwnershipRecord{ID: uuid.New(), CurrentOwner: "bob"}, nil)
	tm.store.EXPECT().
		ApplyTransfer(gomock.Any(), gomock.Any()).
		Return(&schema.NFTOwnershipRecord{CurrentOwner: "bob"}, false, nil)

	record, appended, err := tm.reconciler.Apply(context.Background(), ledger.ApplyInput{
		RecordType:   domain.RecordTypeBuilding,
		RecordID:     recordID,
		TransferType: schema.TransferTypeGift,
		NewOwner:     "bob",
		CauseID:      "transfer:already-applied",
	})
	require.NoError(t, err)
	assert.False(t, appended)
	assert.Equal(t, "bob", record.CurrentOwner)
}

func TestReconciler_Apply_StoreError(t *testing.T) {
	tm := setupTestLedger(t)
	defer tm.ctrl.Finish()

	recordID := uuid.New()
	dbErr := errors.New("connection reset")

	tm.store.EXPECT().
		GetOwnershipRecord(gomock.Any(), domain.RecordTypeBuilding, recordID).
		Return(nil, dbErr)

	_, _, err := tm.reconciler.Apply(context.Background(), ledger.ApplyInput{
		RecordType: domain.RecordTypeBuilding,
		RecordID:   recordID,
	})
	assert.ErrorIs(t, err, dbErr)
}

func TestReconciler_Record(t *testing.T) {
	tm := setupTestLedger(t)
	defer tm.ctrl.Finish()

	recordID := uuid.New()

	tm.store.EXPECT().
		GetOwnershipRecord(gomock.Any(), domain.RecordTypeOvalOffice, recordID).
		Return(nil, nil)

	_, err := tm.reconciler.Record(context.Background(), domain.RecordTypeOvalOffice, recordID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReconciler_CurrentOwner(t *testing.T) {
	tm := setupTestLedger(t)
	defer tm.ctrl.Finish()

	recordID := uuid.New()

	// Unminted records fall back to the registrant
	tm.store.EXPECT().
		GetOwnershipRecord(gomock.Any(), domain.RecordTypeBuilding, recordID).
		Return(nil, nil)
	owner, err := tm.reconciler.CurrentOwner(context.Background(), domain.RecordTypeBuilding, recordID, "registrant")
	require.NoError(t, err)
	assert.Equal(t, "registrant", owner)

	// Minted records report the ledger owner
	tm.store.EXPECT().
		GetOwnershipRecord(gomock.Any(), domain.RecordTypeBuilding, recordID).
		Return(&schema.NFTOwnershipRecord{CurrentOwner: "bob"}, nil)
	owner, err = tm.reconciler.CurrentOwner(context.Background(), domain.RecordTypeBuilding, recordID, "registrant")
	require.NoError(t, err)
	assert.Equal(t, "bob", owner)
}
