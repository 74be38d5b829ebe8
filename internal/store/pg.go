package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/phygrid/engine/internal/domain"
	"github.com/phygrid/engine/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// Migrate creates or updates the engine's tables
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&schema.Asset{},
		&schema.CheckIn{},
		&schema.TransferRequest{},
		&schema.Bid{},
		&schema.NFTOwnershipRecord{},
		&schema.NFTTransferHistory{},
	)
}

// ConfigureConnectionPool configures the connection pool settings for a
// GORM database connection, applying defaults for zero values.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	// database/sql treats MaxIdleConns above MaxOpenConns as MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// ============================================================================
// Assets
// ============================================================================

func (s *pgStore) CreateAsset(ctx context.Context, asset *schema.Asset) error {
	if asset.ID == uuid.Nil {
		asset.ID = uuid.New()
	}
	if err := s.db.WithContext(ctx).Create(asset).Error; err != nil {
		return fmt.Errorf("failed to create asset: %w", err)
	}
	return nil
}

func (s *pgStore) GetAssetByID(ctx context.Context, id uuid.UUID) (*schema.Asset, error) {
	var asset schema.Asset
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&asset).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	return &asset, nil
}

func (s *pgStore) GetAssetByNFCUUID(ctx context.Context, nfcUUID string) (*schema.Asset, error) {
	var asset schema.Asset
	err := s.db.WithContext(ctx).Where("nfc_uuid = ?", nfcUUID).First(&asset).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get asset by NFC UUID: %w", err)
	}
	return &asset, nil
}

func (s *pgStore) UpdateAssetDisplay(ctx context.Context, id uuid.UUID, name, description string, imageURL *string) error {
	updates := map[string]interface{}{
		"name":        name,
		"description": description,
		"updated_at":  time.Now().UTC(),
	}
	if imageURL != nil {
		updates["image_url"] = *imageURL
	}

	result := s.db.WithContext(ctx).Model(&schema.Asset{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update asset: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ============================================================================
// Check-ins
// ============================================================================

func (s *pgStore) AppendCheckIn(ctx context.Context, checkIn *schema.CheckIn) error {
	if err := s.db.WithContext(ctx).Create(checkIn).Error; err != nil {
		return fmt.Errorf("failed to append check-in: %w", err)
	}
	return nil
}

func (s *pgStore) ListCheckIns(ctx context.Context, assetID uuid.UUID, afterID uint64, limit int) ([]schema.CheckIn, error) {
	var checkIns []schema.CheckIn
	err := s.db.WithContext(ctx).
		Where("asset_id = ? AND id > ?", assetID, afterID).
		Order("id ASC").
		Limit(limit).
		Find(&checkIns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list check-ins: %w", err)
	}
	return checkIns, nil
}

func (s *pgStore) CountCheckIns(ctx context.Context, assetID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&schema.CheckIn{}).
		Where("asset_id = ?", assetID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count check-ins: %w", err)
	}
	return count, nil
}

// ============================================================================
// Transfer requests
// ============================================================================

func (s *pgStore) CreateTransferRequest(ctx context.Context, transfer *schema.TransferRequest) error {
	if transfer.ID == uuid.Nil {
		transfer.ID = uuid.New()
	}
	if err := s.db.WithContext(ctx).Create(transfer).Error; err != nil {
		return fmt.Errorf("failed to create transfer request: %w", err)
	}
	return nil
}

func (s *pgStore) GetTransferByID(ctx context.Context, id uuid.UUID) (*schema.TransferRequest, error) {
	var transfer schema.TransferRequest
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&transfer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get transfer: %w", err)
	}
	return &transfer, nil
}

func (s *pgStore) GetTransferByCode(ctx context.Context, code string) (*schema.TransferRequest, error) {
	var transfer schema.TransferRequest
	err := s.db.WithContext(ctx).Where("code = ?", code).First(&transfer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get transfer by code: %w", err)
	}
	return &transfer, nil
}

func (s *pgStore) CompleteTransfer(ctx context.Context, input CompleteTransferInput) error {
	result := s.db.WithContext(ctx).Model(&schema.TransferRequest{}).
		Where("id = ? AND version = ? AND status = ?", input.ID, input.ExpectedVersion, schema.TransferStatusPending).
		Updates(map[string]interface{}{
			"status":       schema.TransferStatusCompleted,
			"to_user":      input.ToUser,
			"completed_at": input.CompletedAt,
			"updated_at":   input.CompletedAt,
			"version":      gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to complete transfer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return s.transferConflict(ctx, input.ID)
	}
	return nil
}

func (s *pgStore) UpdateTransferStatus(ctx context.Context, id uuid.UUID, expectedVersion int64, status schema.TransferStatus) error {
	result := s.db.WithContext(ctx).Model(&schema.TransferRequest{}).
		Where("id = ? AND version = ?", id, expectedVersion).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now().UTC(),
			"version":    gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update transfer status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return s.transferConflict(ctx, id)
	}
	return nil
}

// transferConflict distinguishes a lost CAS race from a missing row
func (s *pgStore) transferConflict(ctx context.Context, id uuid.UUID) error {
	existing, err := s.GetTransferByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return domain.ErrVersionConflict
}

func (s *pgStore) ListExpiredPendingTransfers(ctx context.Context, now time.Time, limit int) ([]schema.TransferRequest, error) {
	var transfers []schema.TransferRequest
	err := s.db.WithContext(ctx).
		Where("status = ? AND expires_at < ?", schema.TransferStatusPending, now).
		Order("expires_at ASC").
		Limit(limit).
		Find(&transfers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list expired transfers: %w", err)
	}
	return transfers, nil
}

// ============================================================================
// Bids
// ============================================================================

func (s *pgStore) CreateBid(ctx context.Context, bid *schema.Bid) error {
	if bid.ID == uuid.Nil {
		bid.ID = uuid.New()
	}
	if err := s.db.WithContext(ctx).Create(bid).Error; err != nil {
		return fmt.Errorf("failed to create bid: %w", err)
	}
	return nil
}

func (s *pgStore) GetBidByID(ctx context.Context, id uuid.UUID) (*schema.Bid, error) {
	var bid schema.Bid
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&bid).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get bid: %w", err)
	}
	return &bid, nil
}

func (s *pgStore) TransitionBid(ctx context.Context, input TransitionBidInput) error {
	updates := map[string]interface{}{
		"status":     input.Status,
		"updated_at": time.Now().UTC(),
		"version":    gorm.Expr("version + 1"),
	}
	if input.CounterAmount != nil {
		updates["counter_amount"] = *input.CounterAmount
	}
	if input.OwnerMessage != nil {
		updates["owner_message"] = *input.OwnerMessage
	}
	if input.BidderMessage != nil {
		updates["bidder_message"] = *input.BidderMessage
	}
	if input.CompletedAt != nil {
		updates["completed_at"] = *input.CompletedAt
	}

	result := s.db.WithContext(ctx).Model(&schema.Bid{}).
		Where("id = ? AND version = ?", input.ID, input.ExpectedVersion).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to transition bid: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		existing, err := s.GetBidByID(ctx, input.ID)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		return domain.ErrVersionConflict
	}
	return nil
}

func (s *pgStore) ListBidsForRecord(ctx context.Context, recordType domain.RecordType, recordID uuid.UUID) ([]schema.Bid, error) {
	var bids []schema.Bid
	err := s.db.WithContext(ctx).
		Where("record_type = ? AND record_id = ?", recordType, recordID).
		Order("created_at DESC").
		Find(&bids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bids for record: %w", err)
	}
	return bids, nil
}

func (s *pgStore) ListBidsByParty(ctx context.Context, username string) ([]schema.Bid, error) {
	var bids []schema.Bid
	err := s.db.WithContext(ctx).
		Where("bidder_username = ? OR owner_username = ?", username, username).
		Order("created_at DESC").
		Find(&bids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bids by party: %w", err)
	}
	return bids, nil
}

func (s *pgStore) ListExpiredOpenBids(ctx context.Context, now time.Time, limit int) ([]schema.Bid, error) {
	var bids []schema.Bid
	err := s.db.WithContext(ctx).
		Where("status IN ? AND expires_at < ?",
			[]schema.BidStatus{schema.BidStatusPending, schema.BidStatusCountered}, now).
		Order("expires_at ASC").
		Limit(limit).
		Find(&bids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list expired bids: %w", err)
	}
	return bids, nil
}

// ============================================================================
// NFT ledger
// ============================================================================

func marshalMetadata(meta *schema.OwnershipMetadata) (datatypes.JSON, error) {
	raw, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ownership metadata: %w", err)
	}
	return datatypes.JSON(raw), nil
}

func (s *pgStore) GetOwnershipRecord(ctx context.Context, recordType domain.RecordType, recordID uuid.UUID) (*schema.NFTOwnershipRecord, error) {
	var record schema.NFTOwnershipRecord
	err := s.db.WithContext(ctx).
		Where("record_type = ? AND record_id = ?", recordType, recordID).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ownership record: %w", err)
	}
	return &record, nil
}

func (s *pgStore) ApplyMint(ctx context.Context, input ApplyMintInput) (*schema.NFTOwnershipRecord, bool, error) {
	var record schema.NFTOwnershipRecord
	appended := false

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Re-check under the transaction; the unique (record_type,
		// record_id) index arbitrates concurrent mint attempts
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("record_type = ? AND record_id = ?", input.RecordType, input.RecordID).
			First(&record).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to lock ownership record: %w", err)
		}

		if errors.Is(err, gorm.ErrRecordNotFound) {
			record = schema.NFTOwnershipRecord{
				ID:              uuid.New(),
				RecordType:      input.RecordType,
				RecordID:        input.RecordID,
				TokenID:         input.TokenID,
				ContractAddress: input.ContractAddress,
				CurrentOwner:    input.Owner,
				OriginalMinter:  input.Owner,
				MintedAt:        input.Now,
			}
			if input.Metadata != nil {
				meta, err := marshalMetadata(input.Metadata)
				if err != nil {
					return err
				}
				record.Metadata = meta
			}
			if err := tx.Create(&record).Error; err != nil {
				return fmt.Errorf("failed to create ownership record: %w", err)
			}
		}

		entry := schema.NFTTransferHistory{
			OwnershipRecordID: record.ID,
			CauseID:           input.CauseID,
			TransferType:      schema.TransferTypeMint,
			FromUser:          nil,
			ToUser:            input.Owner,
			CreatedAt:         input.Now,
		}
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "ownership_record_id"}, {Name: "cause_id"}},
			DoNothing: true,
		}).Create(&entry)
		if res.Error != nil {
			return fmt.Errorf("failed to append mint history: %w", res.Error)
		}
		appended = res.RowsAffected > 0

		return nil
	})
	if err != nil {
		return nil, false, err
	}

	return &record, appended, nil
}

func (s *pgStore) ApplyTransfer(ctx context.Context, input ApplyTransferInput) (*schema.NFTOwnershipRecord, bool, error) {
	var record schema.NFTOwnershipRecord
	appended := false

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the ledger record so concurrent transfers on the same
		// record serialize here
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("record_type = ? AND record_id = ?", input.RecordType, input.RecordID).
			First(&record).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("failed to lock ownership record: %w", err)
		}

		priorOwner := record.CurrentOwner
		entry := schema.NFTTransferHistory{
			OwnershipRecordID: record.ID,
			CauseID:           input.CauseID,
			TransferType:      input.TransferType,
			FromUser:          &priorOwner,
			ToUser:            input.ToUser,
			BidID:             input.BidID,
			CreatedAt:         input.Now,
		}
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "ownership_record_id"}, {Name: "cause_id"}},
			DoNothing: true,
		}).Create(&entry)
		if res.Error != nil {
			return fmt.Errorf("failed to append transfer history: %w", res.Error)
		}

		// Replay of an already-applied cause: leave ownership untouched
		if res.RowsAffected == 0 {
			return nil
		}
		appended = true

		if err := tx.Model(&schema.NFTOwnershipRecord{}).
			Where("id = ?", record.ID).
			Updates(map[string]interface{}{
				"current_owner":       input.ToUser,
				"last_transferred_at": input.Now,
				"updated_at":          input.Now,
			}).Error; err != nil {
			return fmt.Errorf("failed to update ownership record: %w", err)
		}
		record.CurrentOwner = input.ToUser
		record.LastTransferredAt = &input.Now

		return nil
	})
	if err != nil {
		return nil, false, err
	}

	return &record, appended, nil
}

func (s *pgStore) MarkHistoryReconciled(ctx context.Context, ownershipRecordID uuid.UUID, causeID string, txHash string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&schema.NFTTransferHistory{}).
			Where("ownership_record_id = ? AND cause_id = ?", ownershipRecordID, causeID).
			Update("tx_hash", txHash)
		if result.Error != nil {
			return fmt.Errorf("failed to mark history reconciled: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}

		// The mint cause also reconciles the record itself
		var entry schema.NFTTransferHistory
		if err := tx.Where("ownership_record_id = ? AND cause_id = ?", ownershipRecordID, causeID).
			First(&entry).Error; err != nil {
			return fmt.Errorf("failed to read reconciled entry: %w", err)
		}
		if entry.TransferType == schema.TransferTypeMint {
			if err := tx.Model(&schema.NFTOwnershipRecord{}).
				Where("id = ?", ownershipRecordID).
				Updates(map[string]interface{}{
					"tx_hash":    txHash,
					"updated_at": time.Now().UTC(),
				}).Error; err != nil {
				return fmt.Errorf("failed to reconcile ownership record: %w", err)
			}
		}

		return nil
	})
}

func (s *pgStore) ListTransferHistory(ctx context.Context, ownershipRecordID uuid.UUID) ([]schema.NFTTransferHistory, error) {
	var entries []schema.NFTTransferHistory
	err := s.db.WithContext(ctx).
		Where("ownership_record_id = ?", ownershipRecordID).
		Order("id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transfer history: %w", err)
	}
	return entries, nil
}

func (s *pgStore) ListPendingReconciliations(ctx context.Context, limit int) ([]schema.NFTTransferHistory, error) {
	var entries []schema.NFTTransferHistory
	err := s.db.WithContext(ctx).
		Where("tx_hash IS NULL").
		Order("id ASC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pending reconciliations: %w", err)
	}
	return entries, nil
}
