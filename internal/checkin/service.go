package checkin

import (
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/google/uuid"
	"go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"
	"go.uber.org/zap"

	"github.com/phygrid/engine/internal/adapter"
	"github.com/phygrid/engine/internal/blob"
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

// historyPageSize is how many check-ins one History page fetch pulls
const historyPageSize = 100

// Config holds the check-in service configuration
type Config struct {
	// TaskQueue is the Temporal task queue for reconciliation workflows
	TaskQueue string
}

// Service handles asset registration and proximity-gated check-ins
type Service struct {
	cfg          Config
	store        store.Store
	blobs        blob.Store
	reconciler   *ledger.Reconciler
	orchestrator temporal.TemporalOrchestrator
	publisher    messaging.Publisher
	clock        adapter.Clock
}

// NewService creates a check-in service
func NewService(
	cfg Config,
	st store.Store,
	blobs blob.Store,
	reconciler *ledger.Reconciler,
	orchestrator temporal.TemporalOrchestrator,
	publisher messaging.Publisher,
	clock adapter.Clock,
) *Service {
	return &Service{
		cfg:          cfg,
		store:        st,
		blobs:        blobs,
		reconciler:   reconciler,
		orchestrator: orchestrator,
		publisher:    publisher,
		clock:        clock,
	}
}

// RegisterAssetInput carries everything needed to place a new asset
type RegisterAssetInput struct {
	RecordType   domain.RecordType
	Cell         domain.GridCoordinate
	Name         string
	Description  string
	NFCUUID      string
	BuildingID   *uuid.UUID
	BuildingName string
	// Location is the tag's GPS fix recorded at placement (nil when the
	// registering device has no fix; proximity checks are then skipped)
	Location *geo.Point
	// Image is an optional photo uploaded to the blob store
	Image        []byte
	RegisteredBy string
}

// RegisterAsset places a new asset at a grid cell, binds it to its NFC tag,
// and kicks off minting of the backing ownership token. The registrant
// becomes the original minter and first owner.
func (s *Service) RegisterAsset(ctx context.Context, input RegisterAssetInput) (*schema.Asset, error) {
	if !input.RecordType.Valid() {
		return nil, fmt.Errorf("%w: unknown record type %q", domain.ErrMalformedPayload, input.RecordType)
	}
	if input.Name == "" || input.NFCUUID == "" || input.RegisteredBy == "" {
		return nil, fmt.Errorf("%w: name, nfc_uuid and registered_by are required", domain.ErrMalformedPayload)
	}

	// One tag, one asset
	existing, err := s.store.GetAssetByNFCUUID(ctx, input.NFCUUID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: nfc tag %s is already bound to asset %s",
			domain.ErrAlreadyClaimed, input.NFCUUID, existing.ID)
	}

	var imageURL *string
	if len(input.Image) > 0 {
		url, err := s.blobs.Upload(ctx, input.Image)
		if err != nil {
			return nil, fmt.Errorf("failed to upload asset image: %w", err)
		}
		imageURL = &url
	}

	now := s.clock.Now()
	asset := &schema.Asset{
		ID:           uuid.New(),
		RecordType:   input.RecordType,
		GridX:        input.Cell.X,
		GridY:        input.Cell.Y,
		Name:         input.Name,
		Description:  input.Description,
		ImageURL:     imageURL,
		NFCUUID:      input.NFCUUID,
		BuildingID:   input.BuildingID,
		BuildingName: input.BuildingName,
		RegisteredBy: input.RegisteredBy,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if input.Location != nil {
		asset.Latitude = &input.Location.Latitude
		asset.Longitude = &input.Location.Longitude
	}

	if err := s.store.CreateAsset(ctx, asset); err != nil {
		return nil, err
	}

	s.startMintWorkflow(ctx, asset)

	return asset, nil
}

// startMintWorkflow enqueues ledger and chain reconciliation for a newly
// placed asset. Registration already succeeded: a failed enqueue is logged
// and left for the reconciler sweep to pick up.
func (s *Service) startMintWorkflow(ctx context.Context, asset *schema.Asset) {
	job := workflows.MintJob{
		RecordType: asset.RecordType,
		RecordID:   asset.ID,
		Owner:      asset.RegisteredBy,
		Metadata:   mintMetadata(asset),
		RequestID:  ledger.MintCauseID(asset.ID),
	}

	options := client.StartWorkflowOptions{
		ID:                    fmt.Sprintf("reconcile-mint-%s", asset.ID),
		TaskQueue:             s.cfg.TaskQueue,
		WorkflowRunTimeout:    30 * time.Minute,
		WorkflowIDReusePolicy: enums.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE,
	}

	w := workflows.NewReconciler(nil)
	if _, err := s.orchestrator.ExecuteWorkflow(ctx, options, w.ReconcileMint, job); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to start mint reconciliation: %w", err),
			zap.String("asset_id", asset.ID.String()))
	}
}

// mintMetadata projects an asset's descriptive fields into the token
// metadata stored on its ledger record
func mintMetadata(asset *schema.Asset) *schema.OwnershipMetadata {
	md := &schema.OwnershipMetadata{
		Name:        asset.Name,
		Description: asset.Description,
		BuildingID:  asset.BuildingID,
		Latitude:    asset.Latitude,
		Longitude:   asset.Longitude,
	}
	if asset.ImageURL != nil {
		md.ImageURI = *asset.ImageURL
	}
	return md
}

// RecordInput carries one visit to an asset
type RecordInput struct {
	// NFCUUID is the identifier read off the physical tag
	NFCUUID  string
	Username string
	// Location is the visitor's GPS fix at scan time
	Location *geo.Point
	// Photo is an optional picture taken at check-in
	Photo []byte
}

// Record appends one check-in for the asset bound to the scanned tag. The
// visitor must be within proximity tolerance of the asset's registered
// location when both sides have a GPS fix.
func (s *Service) Record(ctx context.Context, input RecordInput) (*schema.CheckIn, error) {
	if input.NFCUUID == "" || input.Username == "" {
		return nil, fmt.Errorf("%w: nfc_uuid and username are required", domain.ErrMalformedPayload)
	}

	asset, err := s.store.GetAssetByNFCUUID(ctx, input.NFCUUID)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, fmt.Errorf("%w: no asset bound to nfc tag %s", domain.ErrNotFound, input.NFCUUID)
	}

	if err := geo.VerifyProximity(input.Location, asset.AnchorPoint()); err != nil {
		return nil, err
	}

	var photoURL *string
	if len(input.Photo) > 0 {
		url, err := s.blobs.Upload(ctx, input.Photo)
		if err != nil {
			return nil, fmt.Errorf("failed to upload check-in photo: %w", err)
		}
		photoURL = &url
	}

	// Snapshot the display fields so later edits never rewrite history
	checkIn := &schema.CheckIn{
		AssetID:          asset.ID,
		Username:         input.Username,
		AssetName:        asset.Name,
		AssetDescription: asset.Description,
		ImageURL:         photoURL,
		CreatedAt:        s.clock.Now(),
	}
	if err := s.store.AppendCheckIn(ctx, checkIn); err != nil {
		return nil, err
	}

	event := &messaging.OutcomeEvent{
		Kind:       messaging.EventCheckInRecorded,
		RecordType: asset.RecordType,
		RecordID:   asset.ID,
		SubjectID:  fmt.Sprintf("%d", checkIn.ID),
		Actor:      input.Username,
		Timestamp:  checkIn.CreatedAt,
	}
	if err := s.publisher.PublishOutcome(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish check-in event",
			zap.Error(err), zap.String("asset_id", asset.ID.String()))
	}

	return checkIn, nil
}

// History returns an asset's check-ins as a lazy sequence in insertion
// order. Pages are fetched on demand; iteration can be replayed from the
// start by ranging again.
func (s *Service) History(ctx context.Context, assetID uuid.UUID) iter.Seq2[schema.CheckIn, error] {
	return func(yield func(schema.CheckIn, error) bool) {
		var afterID uint64
		for {
			page, err := s.store.ListCheckIns(ctx, assetID, afterID, historyPageSize)
			if err != nil {
				yield(schema.CheckIn{}, err)
				return
			}
			for _, c := range page {
				if !yield(c, nil) {
					return
				}
				afterID = c.ID
			}
			if len(page) < historyPageSize {
				return
			}
		}
	}
}

// Count returns the number of check-ins recorded for an asset
func (s *Service) Count(ctx context.Context, assetID uuid.UUID) (int64, error) {
	return s.store.CountCheckIns(ctx, assetID)
}

// GetAsset retrieves an asset by id
func (s *Service) GetAsset(ctx context.Context, id uuid.UUID) (*schema.Asset, error) {
	asset, err := s.store.GetAssetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, fmt.Errorf("%w: asset %s", domain.ErrNotFound, id)
	}
	return asset, nil
}

// GetAssetByNFC retrieves the asset bound to a tag
func (s *Service) GetAssetByNFC(ctx context.Context, nfcUUID string) (*schema.Asset, error) {
	asset, err := s.store.GetAssetByNFCUUID(ctx, nfcUUID)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, fmt.Errorf("%w: no asset bound to nfc tag %s", domain.ErrNotFound, nfcUUID)
	}
	return asset, nil
}

// EditAssetInput updates an asset's display fields
type EditAssetInput struct {
	AssetID     uuid.UUID
	Username    string
	Name        string
	Description string
	// Image optionally replaces the asset image
	Image []byte
}

// EditAsset updates an asset's name, description, and image. Only the
// current owner per the ownership ledger (falling back to the registrant
// before the mint lands) may edit.
func (s *Service) EditAsset(ctx context.Context, input EditAssetInput) (*schema.Asset, error) {
	asset, err := s.GetAsset(ctx, input.AssetID)
	if err != nil {
		return nil, err
	}

	owner, err := s.reconciler.CurrentOwner(ctx, asset.RecordType, asset.ID, asset.RegisteredBy)
	if err != nil {
		return nil, err
	}
	if owner != input.Username {
		return nil, fmt.Errorf("%w: %s does not own asset %s", domain.ErrForbidden, input.Username, asset.ID)
	}

	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrMalformedPayload)
	}

	imageURL := asset.ImageURL
	if len(input.Image) > 0 {
		url, err := s.blobs.Upload(ctx, input.Image)
		if err != nil {
			return nil, fmt.Errorf("failed to upload asset image: %w", err)
		}
		imageURL = &url
	}

	if err := s.store.UpdateAssetDisplay(ctx, asset.ID, input.Name, input.Description, imageURL); err != nil {
		return nil, err
	}

	asset.Name = input.Name
	asset.Description = input.Description
	asset.ImageURL = imageURL
	return asset, nil
}
