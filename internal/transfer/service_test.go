package transfer_test

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
	"github.com/phygrid/engine/internal/geo"
	"github.com/phygrid/engine/internal/ledger"
	"github.com/phygrid/engine/internal/logger"
	"github.com/phygrid/engine/internal/mocks"
	"github.com/phygrid/engine/internal/store"
	"github.com/phygrid/engine/internal/store/schema"
	"github.com/phygrid/engine/internal/transfer"
)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{Debug: false})
	if err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type testTransferMocks struct {
	ctrl         *gomock.Controller
	store        *mocks.MockStore
	orchestrator *mocks.MockTemporalOrchestrator
	publisher    *mocks.MockPublisher
	clock        *mocks.MockClock
	service      *transfer.Service
	now          time.Time
}

func setupTestService(t *testing.T) *testTransferMocks {
	ctrl := gomock.NewController(t)

	tm := &testTransferMocks{
		ctrl:         ctrl,
		store:        mocks.NewMockStore(ctrl),
		orchestrator: mocks.NewMockTemporalOrchestrator(ctrl),
		publisher:    mocks.NewMockPublisher(ctrl),
		clock:        mocks.NewMockClock(ctrl),
		now:          time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
	tm.clock.EXPECT().Now().Return(tm.now).AnyTimes()

	reconciler := ledger.NewReconciler(ledger.Config{
		ContractAddress: "0xcontract",
	}, tm.store, tm.clock)

	tm.service = transfer.NewService(
		transfer.Config{TaskQueue: "ownership-reconciliation"},
		tm.store,
		reconciler,
		tm.orchestrator,
		tm.publisher,
		tm.clock,
	)

	return tm
}

func tearDownTestService(mocks *testTransferMocks) {
	mocks.ctrl.Finish()
}

func floatPtr(f float64) *float64 {
	return &f
}

func testAsset() *schema.Asset {
	return &schema.Asset{
		ID:           uuid.New(),
		RecordType:   domain.RecordTypeBuilding,
		Name:         "Lobby Mural",
		Description:  "A mural in the lobby",
		NFCUUID:      "04:A3:B2",
		BuildingName: "Transamerica Pyramid",
		Latitude:     floatPtr(37.7749),
		Longitude:    floatPtr(-122.4194),
		RegisteredBy: "alice",
	}
}

func pendingTransfer(asset *schema.Asset, expiresAt time.Time) *schema.TransferRequest {
	return &schema.TransferRequest{
		ID:               uuid.New(),
		Code:             "ABCDEFGHJKMNPQRS",
		RecordType:       asset.RecordType,
		RecordID:         asset.ID,
		NFCUUID:          asset.NFCUUID,
		AssetName:        asset.Name,
		AssetDescription: asset.Description,
		FromUser:         "alice",
		Status:           schema.TransferStatusPending,
		Version:          0,
		ExpiresAt:        expiresAt,
	}
}

func TestCreate_Success(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	ctx := context.Background()
	asset := testAsset()

	tm.store.EXPECT().GetAssetByID(ctx, asset.ID).Return(asset, nil)
	tm.store.EXPECT().GetOwnershipRecord(ctx, asset.RecordType, asset.ID).Return(nil, nil)
	tm.store.EXPECT().
		CreateTransferRequest(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, tr *schema.TransferRequest) error {
			assert.Equal(t, asset.ID, tr.RecordID)
			assert.Equal(t, "alice", tr.FromUser)
			assert.Equal(t, schema.TransferStatusPending, tr.Status)
			assert.Len(t, tr.Code, 16)
			// Display fields are snapshotted for the recipient's preview
			assert.Equal(t, asset.Name, tr.AssetName)
			assert.Equal(t, tm.now.Add(transfer.DefaultCodeTTL), tr.ExpiresAt)
			return nil
		})

	tr, err := tm.service.Create(ctx, asset.ID, "alice")
	require.NoError(t, err)
	assert.NotEmpty(t, tr.Code)
}

func TestCreate_NotOwner(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	ctx := context.Background()
	asset := testAsset()

	tm.store.EXPECT().GetAssetByID(ctx, asset.ID).Return(asset, nil)
	tm.store.EXPECT().GetOwnershipRecord(ctx, asset.RecordType, asset.ID).Return(nil, nil)

	_, err := tm.service.Create(ctx, asset.ID, "mallory")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCreate_LedgerOwnerOverridesRegistrant(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	ctx := context.Background()
	asset := testAsset()

	// Ownership moved to bob; the registrant can no longer offer transfers
	tm.store.EXPECT().GetAssetByID(ctx, asset.ID).Return(asset, nil)
	tm.store.EXPECT().
		GetOwnershipRecord(ctx, asset.RecordType, asset.ID).
		Return(&schema.NFTOwnershipRecord{CurrentOwner: "bob"}, nil)

	_, err := tm.service.Create(ctx, asset.ID, "alice")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestQR_RoundTrip(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	ctx := context.Background()
	asset := testAsset()
	tr := pendingTransfer(asset, tm.now.Add(time.Hour))

	tm.store.EXPECT().GetTransferByID(ctx, tr.ID).Return(tr, nil)
	tm.store.EXPECT().GetAssetByID(ctx, asset.ID).Return(asset, nil)

	payload, err := tm.service.QR(ctx, tr.ID, "alice")
	require.NoError(t, err)

	decoded, err := tm.service.ParseQR(payload)
	require.NoError(t, err)
	assert.Equal(t, tr.Code, decoded.TransferCode)
	assert.Equal(t, asset.BuildingName, decoded.BuildingName)
	assert.Equal(t, "alice", decoded.FromUser)
}

func TestQR_CreatorOnly(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	ctx := context.Background()
	tr := pendingTransfer(testAsset(), tm.now.Add(time.Hour))

	tm.store.EXPECT().GetTransferByID(ctx, tr.ID).Return(tr, nil)

	_, err := tm.service.QR(ctx, tr.ID, "bob")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestQR_NotClaimable(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	ctx := context.Background()
	tr := pendingTransfer(testAsset(), tm.now.Add(-time.Hour))

	tm.store.EXPECT().GetTransferByID(ctx, tr.ID).Return(tr, nil)

	_, err := tm.service.QR(ctx, tr.ID, "alice")
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestClaim_Success(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	ctx := context.Background()
	asset := testAsset()
	tr := pendingTransfer(asset, tm.now.Add(time.Hour))

	tm.store.EXPECT().GetTransferByCode(ctx, tr.Code).Return(tr, nil)
	tm.store.EXPECT().GetAssetByID(ctx, asset.ID).Return(asset, nil)
	tm.store.EXPECT().
		CompleteTransfer(ctx, store.CompleteTransferInput{
			ID:              tr.ID,
			ExpectedVersion: 0,
			ToUser:          "bob",
			CompletedAt:     tm.now,
		}).
		Return(nil)
	// Ownership moves off-chain at claim time
	tm.store.EXPECT().GetOwnershipRecord(ctx, asset.RecordType, asset.ID).Return(nil, nil)
	tm.store.EXPECT().
		ApplyMint(ctx, gomock.Any()).
		Return(&schema.NFTOwnershipRecord{CurrentOwner: "bob"}, true, nil)
	tm.orchestrator.EXPECT().
		ExecuteWorkflow(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)
	tm.publisher.EXPECT().PublishOutcome(ctx, gomock.Any()).Return(nil)

	claimed, err := tm.service.Claim(ctx, tr.Code, "bob", &geo.Point{
		Latitude:  37.7749,
		Longitude: -122.4194,
	})
	require.NoError(t, err)
	assert.Equal(t, schema.TransferStatusCompleted, claimed.Status)
	require.NotNil(t, claimed.ToUser)
	assert.Equal(t, "bob", *claimed.ToUser)
}

func TestClaim_LostRaceReadsAsAlreadyClaimed(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	ctx := context.Background()
	asset := testAsset()
	tr := pendingTransfer(asset, tm.now.Add(time.Hour))

	tm.store.EXPECT().GetTransferByCode(ctx, tr.Code).Return(tr, nil)
	tm.store.EXPECT().GetAssetByID(ctx, asset.ID).Return(asset, nil)
	// A concurrent claim bumped the version first
	tm.store.EXPECT().
		CompleteTransfer(ctx, gomock.Any()).
		Return(domain.ErrVersionConflict)

	_, err := tm.service.Claim(ctx, tr.Code, "bob", nil)
	assert.ErrorIs(t, err, domain.ErrAlreadyClaimed)
}

func TestClaim_TerminalStates(t *testing.T) {
	tests := []struct {
		name    string
		status  schema.TransferStatus
		wantErr error
	}{
		{
			name:    "already completed",
			status:  schema.TransferStatusCompleted,
			wantErr: domain.ErrAlreadyClaimed,
		},
		{
			name:    "expired",
			status:  schema.TransferStatusExpired,
			wantErr: domain.ErrExpired,
		},
		{
			// A cancelled code is spent the same as a claimed one;
			// the caller only learns the code will never succeed.
			name:    "cancelled",
			status:  schema.TransferStatusCancelled,
			wantErr: domain.ErrAlreadyClaimed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTestService(t)
			defer tearDownTestService(tm)

			ctx := context.Background()
			tr := pendingTransfer(testAsset(), tm.now.Add(time.Hour))
			tr.Status = tt.status

			tm.store.EXPECT().GetTransferByCode(ctx, tr.Code).Return(tr, nil)

			_, err := tm.service.Claim(ctx, tr.Code, "bob", nil)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClaim_LazyExpiry(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	ctx := context.Background()
	tr := pendingTransfer(testAsset(), tm.now.Add(-time.Minute))

	tm.store.EXPECT().GetTransferByCode(ctx, tr.Code).Return(tr, nil)
	// The stale pending row is marked expired on read
	tm.store.EXPECT().
		UpdateTransferStatus(ctx, tr.ID, tr.Version, schema.TransferStatusExpired).
		Return(nil)

	_, err := tm.service.Claim(ctx, tr.Code, "bob", nil)
	assert.ErrorIs(t, err, domain.ErrExpired)
}

func TestClaim_SelfClaimForbidden(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	ctx := context.Background()
	tr := pendingTransfer(testAsset(), tm.now.Add(time.Hour))

	tm.store.EXPECT().GetTransferByCode(ctx, tr.Code).Return(tr, nil)

	_, err := tm.service.Claim(ctx, tr.Code, "alice", nil)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestClaim_OutsideProximityTolerance(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	ctx := context.Background()
	asset := testAsset()
	tr := pendingTransfer(asset, tm.now.Add(time.Hour))

	tm.store.EXPECT().GetTransferByCode(ctx, tr.Code).Return(tr, nil)
	tm.store.EXPECT().GetAssetByID(ctx, asset.ID).Return(asset, nil)

	_, err := tm.service.Claim(ctx, tr.Code, "bob", &geo.Point{
		Latitude:  37.7849, // ~1.1km north
		Longitude: -122.4194,
	})
	assert.ErrorIs(t, err, domain.ErrLocationMismatch)
}

func TestClaim_UnknownCode(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	ctx := context.Background()

	tm.store.EXPECT().GetTransferByCode(ctx, "NOSUCHCODE").Return(nil, nil)

	_, err := tm.service.Claim(ctx, "NOSUCHCODE", "bob", nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCancel_Success(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	ctx := context.Background()
	tr := pendingTransfer(testAsset(), tm.now.Add(time.Hour))

	tm.store.EXPECT().GetTransferByID(ctx, tr.ID).Return(tr, nil)
	tm.store.EXPECT().
		UpdateTransferStatus(ctx, tr.ID, int64(0), schema.TransferStatusCancelled).
		Return(nil)

	cancelled, err := tm.service.Cancel(ctx, tr.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, schema.TransferStatusCancelled, cancelled.Status)
}

func TestCancel_CreatorOnly(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	ctx := context.Background()
	tr := pendingTransfer(testAsset(), tm.now.Add(time.Hour))

	tm.store.EXPECT().GetTransferByID(ctx, tr.ID).Return(tr, nil)

	_, err := tm.service.Cancel(ctx, tr.ID, "bob")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCancel_LostRace(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	ctx := context.Background()
	tr := pendingTransfer(testAsset(), tm.now.Add(time.Hour))

	tm.store.EXPECT().GetTransferByID(ctx, tr.ID).Return(tr, nil)
	// A claim landed between the read and the cancellation
	tm.store.EXPECT().
		UpdateTransferStatus(ctx, tr.ID, int64(0), schema.TransferStatusCancelled).
		Return(domain.ErrVersionConflict)

	_, err := tm.service.Cancel(ctx, tr.ID, "alice")
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestGetByCode_ReportsExpiryLazily(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	ctx := context.Background()
	tr := pendingTransfer(testAsset(), tm.now.Add(-time.Minute))

	tm.store.EXPECT().GetTransferByCode(ctx, tr.Code).Return(tr, nil)
	tm.store.EXPECT().
		UpdateTransferStatus(ctx, tr.ID, tr.Version, schema.TransferStatusExpired).
		Return(nil)

	got, err := tm.service.GetByCode(ctx, tr.Code)
	require.NoError(t, err)
	assert.Equal(t, schema.TransferStatusExpired, got.Status)
}

func TestClaim_LedgerFailureDoesNotBlockClaim(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	ctx := context.Background()
	asset := testAsset()
	tr := pendingTransfer(asset, tm.now.Add(time.Hour))

	tm.store.EXPECT().GetTransferByCode(ctx, tr.Code).Return(tr, nil)
	tm.store.EXPECT().GetAssetByID(ctx, asset.ID).Return(asset, nil)
	tm.store.EXPECT().CompleteTransfer(ctx, gomock.Any()).Return(nil)
	tm.store.EXPECT().
		GetOwnershipRecord(ctx, asset.RecordType, asset.ID).
		Return(nil, errors.New("connection reset"))
	// The workflow still starts and replays the ledger write
	tm.orchestrator.EXPECT().
		ExecuteWorkflow(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)
	tm.publisher.EXPECT().PublishOutcome(ctx, gomock.Any()).Return(nil)

	claimed, err := tm.service.Claim(ctx, tr.Code, "bob", nil)
	require.NoError(t, err)
	assert.Equal(t, schema.TransferStatusCompleted, claimed.Status)
}
