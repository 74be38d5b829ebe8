package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/phygrid/engine/internal/geo"
	"github.com/phygrid/engine/internal/store/schema"
)

// locationDTO carries a GPS fix in request payloads
type locationDTO struct {
	Latitude  float64 `json:"latitude" binding:"required"`
	Longitude float64 `json:"longitude" binding:"required"`
}

func (l *locationDTO) point() *geo.Point {
	if l == nil {
		return nil
	}
	return &geo.Point{Latitude: l.Latitude, Longitude: l.Longitude}
}

// registerAssetRequest creates a new asset
type registerAssetRequest struct {
	RecordType   string       `json:"record_type" binding:"required"`
	GridX        int          `json:"grid_x"`
	GridY        int          `json:"grid_y"`
	Name         string       `json:"name" binding:"required"`
	Description  string       `json:"description"`
	NFCUUID      string       `json:"nfc_uuid" binding:"required"`
	BuildingID   *uuid.UUID   `json:"building_id"`
	BuildingName string       `json:"building_name"`
	Location     *locationDTO `json:"location"`
	// Image is the optional asset picture, base64-encoded
	Image []byte `json:"image"`
}

// editAssetRequest updates an asset's display fields
type editAssetRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Image       []byte `json:"image"`
}

// checkInRequest records one visit
type checkInRequest struct {
	NFCUUID  string       `json:"nfc_uuid" binding:"required"`
	Location *locationDTO `json:"location"`
	Photo    []byte       `json:"photo"`
}

// createTransferRequest generates a transfer code
type createTransferRequest struct {
	AssetID uuid.UUID `json:"asset_id" binding:"required"`
}

// claimTransferRequest consumes a transfer code
type claimTransferRequest struct {
	Code     string       `json:"code" binding:"required"`
	Location *locationDTO `json:"location"`
}

// parseQRRequest decodes a QR payload
type parseQRRequest struct {
	Payload string `json:"payload" binding:"required"`
}

// placeBidRequest opens a negotiation
type placeBidRequest struct {
	AssetID uuid.UUID `json:"asset_id" binding:"required"`
	Amount  int64     `json:"amount" binding:"required"`
	Contact *string   `json:"contact"`
	Message *string   `json:"message"`
}

// counterBidRequest proposes a counter amount
type counterBidRequest struct {
	Amount  int64   `json:"amount" binding:"required"`
	Message *string `json:"message"`
}

// rejectBidRequest declines with an optional message
type rejectBidRequest struct {
	Message *string `json:"message"`
}

// assetResponse is the public projection of an asset
type assetResponse struct {
	ID           uuid.UUID  `json:"id"`
	RecordType   string     `json:"record_type"`
	GridX        int        `json:"grid_x"`
	GridY        int        `json:"grid_y"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	ImageURL     *string    `json:"image_url,omitempty"`
	NFCUUID      string     `json:"nfc_uuid"`
	BuildingID   *uuid.UUID `json:"building_id,omitempty"`
	BuildingName string     `json:"building_name,omitempty"`
	Latitude     *float64   `json:"latitude,omitempty"`
	Longitude    *float64   `json:"longitude,omitempty"`
	RegisteredBy string     `json:"registered_by"`
	CreatedAt    time.Time  `json:"created_at"`
}

func toAssetResponse(a *schema.Asset) assetResponse {
	return assetResponse{
		ID:           a.ID,
		RecordType:   string(a.RecordType),
		GridX:        a.GridX,
		GridY:        a.GridY,
		Name:         a.Name,
		Description:  a.Description,
		ImageURL:     a.ImageURL,
		NFCUUID:      a.NFCUUID,
		BuildingID:   a.BuildingID,
		BuildingName: a.BuildingName,
		Latitude:     a.Latitude,
		Longitude:    a.Longitude,
		RegisteredBy: a.RegisteredBy,
		CreatedAt:    a.CreatedAt,
	}
}

// checkInResponse is one history entry
type checkInResponse struct {
	ID               uint64    `json:"id"`
	AssetID          uuid.UUID `json:"asset_id"`
	Username         string    `json:"username"`
	AssetName        string    `json:"asset_name"`
	AssetDescription string    `json:"asset_description"`
	ImageURL         *string   `json:"image_url,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

func toCheckInResponse(c *schema.CheckIn) checkInResponse {
	return checkInResponse{
		ID:               c.ID,
		AssetID:          c.AssetID,
		Username:         c.Username,
		AssetName:        c.AssetName,
		AssetDescription: c.AssetDescription,
		ImageURL:         c.ImageURL,
		CreatedAt:        c.CreatedAt,
	}
}

// checkInListResponse wraps a history page
type checkInListResponse struct {
	CheckIns []checkInResponse `json:"check_ins"`
	Total    int64             `json:"total"`
}

// transferResponse is the public projection of a transfer request. The code
// itself is only exposed to its creator.
type transferResponse struct {
	ID               uuid.UUID  `json:"id"`
	Code             string     `json:"code,omitempty"`
	RecordType       string     `json:"record_type"`
	RecordID         uuid.UUID  `json:"record_id"`
	NFCUUID          string     `json:"nfc_uuid"`
	AssetName        string     `json:"asset_name"`
	AssetDescription string     `json:"asset_description"`
	ImageURL         *string    `json:"image_url,omitempty"`
	FromUser         string     `json:"from_user"`
	ToUser           *string    `json:"to_user,omitempty"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	ExpiresAt        time.Time  `json:"expires_at"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
}

func toTransferResponse(t *schema.TransferRequest, includeCode bool) transferResponse {
	resp := transferResponse{
		ID:               t.ID,
		RecordType:       string(t.RecordType),
		RecordID:         t.RecordID,
		NFCUUID:          t.NFCUUID,
		AssetName:        t.AssetName,
		AssetDescription: t.AssetDescription,
		ImageURL:         t.ImageURL,
		FromUser:         t.FromUser,
		ToUser:           t.ToUser,
		Status:           string(t.Status),
		CreatedAt:        t.CreatedAt,
		ExpiresAt:        t.ExpiresAt,
		CompletedAt:      t.CompletedAt,
	}
	if includeCode {
		resp.Code = t.Code
	}
	return resp
}

// bidResponse is the public projection of a bid
type bidResponse struct {
	ID             uuid.UUID  `json:"id"`
	RecordType     string     `json:"record_type"`
	RecordID       uuid.UUID  `json:"record_id"`
	BidderUsername string     `json:"bidder_username"`
	OwnerUsername  string     `json:"owner_username"`
	BidAmount      int64      `json:"bid_amount"`
	CounterAmount  *int64     `json:"counter_amount,omitempty"`
	BidderContact  *string    `json:"bidder_contact,omitempty"`
	BidderMessage  *string    `json:"bidder_message,omitempty"`
	OwnerMessage   *string    `json:"owner_message,omitempty"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	ExpiresAt      time.Time  `json:"expires_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}

func toBidResponse(b *schema.Bid) bidResponse {
	return bidResponse{
		ID:             b.ID,
		RecordType:     string(b.RecordType),
		RecordID:       b.RecordID,
		BidderUsername: b.BidderUsername,
		OwnerUsername:  b.OwnerUsername,
		BidAmount:      b.BidAmount,
		CounterAmount:  b.CounterAmount,
		BidderContact:  b.BidderContact,
		BidderMessage:  b.BidderMessage,
		OwnerMessage:   b.OwnerMessage,
		Status:         string(b.Status),
		CreatedAt:      b.CreatedAt,
		ExpiresAt:      b.ExpiresAt,
		CompletedAt:    b.CompletedAt,
	}
}

func toBidListResponse(bids []schema.Bid) []bidResponse {
	out := make([]bidResponse, 0, len(bids))
	for i := range bids {
		out = append(out, toBidResponse(&bids[i]))
	}
	return out
}

// ownershipResponse is the public projection of a ledger record
type ownershipResponse struct {
	ID                uuid.UUID  `json:"id"`
	RecordType        string     `json:"record_type"`
	RecordID          uuid.UUID  `json:"record_id"`
	TokenID           string     `json:"token_id"`
	ContractAddress   string     `json:"contract_address"`
	CurrentOwner      string     `json:"current_owner"`
	OriginalMinter    string     `json:"original_minter"`
	MintedAt          time.Time  `json:"minted_at"`
	LastTransferredAt *time.Time `json:"last_transferred_at,omitempty"`
	TxHash            *string    `json:"tx_hash,omitempty"`
}

func toOwnershipResponse(r *schema.NFTOwnershipRecord) ownershipResponse {
	return ownershipResponse{
		ID:                r.ID,
		RecordType:        string(r.RecordType),
		RecordID:          r.RecordID,
		TokenID:           r.TokenID,
		ContractAddress:   r.ContractAddress,
		CurrentOwner:      r.CurrentOwner,
		OriginalMinter:    r.OriginalMinter,
		MintedAt:          r.MintedAt,
		LastTransferredAt: r.LastTransferredAt,
		TxHash:            r.TxHash,
	}
}

// historyEntryResponse is one audit-chain entry
type historyEntryResponse struct {
	ID           uint64     `json:"id"`
	TransferType string     `json:"transfer_type"`
	FromUser     *string    `json:"from_user,omitempty"`
	ToUser       string     `json:"to_user"`
	BidID        *uuid.UUID `json:"bid_id,omitempty"`
	CauseID      string     `json:"cause_id"`
	TxHash       *string    `json:"tx_hash,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func toHistoryResponse(entries []schema.NFTTransferHistory) []historyEntryResponse {
	out := make([]historyEntryResponse, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		out = append(out, historyEntryResponse{
			ID:           e.ID,
			TransferType: string(e.TransferType),
			FromUser:     e.FromUser,
			ToUser:       e.ToUser,
			BidID:        e.BidID,
			CauseID:      e.CauseID,
			TxHash:       e.TxHash,
			CreatedAt:    e.CreatedAt,
		})
	}
	return out
}
