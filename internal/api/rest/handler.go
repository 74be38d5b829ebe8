package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/phygrid/engine/internal/api/middleware"
	"github.com/phygrid/engine/internal/bid"
	"github.com/phygrid/engine/internal/checkin"
	"github.com/phygrid/engine/internal/domain"
	"github.com/phygrid/engine/internal/ledger"
	"github.com/phygrid/engine/internal/transfer"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// RegisterAsset places a new asset and mints its backing token
	// POST /api/v1/assets
	RegisterAsset(c *gin.Context)

	// GetAsset retrieves a single asset by id
	// GET /api/v1/assets/:id
	GetAsset(c *gin.Context)

	// GetAssetByNFC retrieves the asset bound to a scanned tag
	// GET /api/v1/assets/nfc/:nfc_uuid
	GetAssetByNFC(c *gin.Context)

	// EditAsset updates an asset's display fields (current owner only)
	// PATCH /api/v1/assets/:id
	EditAsset(c *gin.Context)

	// CheckIn records a proximity-gated visit to a scanned asset
	// POST /api/v1/checkins
	CheckIn(c *gin.Context)

	// GetCheckInHistory retrieves an asset's check-in history
	// GET /api/v1/assets/:id/checkins?limit=<limit>
	GetCheckInHistory(c *gin.Context)

	// CreateTransfer generates a single-use transfer code (owner only)
	// POST /api/v1/transfers
	CreateTransfer(c *gin.Context)

	// GetTransfer retrieves a transfer request by id
	// GET /api/v1/transfers/:id
	GetTransfer(c *gin.Context)

	// GetTransferByCode previews a transfer by code (receiving side)
	// GET /api/v1/transfers/code/:code
	GetTransferByCode(c *gin.Context)

	// GetTransferQR exports a pending transfer as a QR payload (creator only)
	// GET /api/v1/transfers/:id/qr
	GetTransferQR(c *gin.Context)

	// ParseTransferQR decodes a QR payload into its transfer snapshot
	// POST /api/v1/transfers/qr/parse
	ParseTransferQR(c *gin.Context)

	// ClaimTransfer consumes a transfer code
	// POST /api/v1/transfers/claim
	ClaimTransfer(c *gin.Context)

	// CancelTransfer withdraws a pending transfer (creator only)
	// POST /api/v1/transfers/:id/cancel
	CancelTransfer(c *gin.Context)

	// PlaceBid opens a negotiation on an asset
	// POST /api/v1/bids
	PlaceBid(c *gin.Context)

	// GetBid retrieves a bid by id
	// GET /api/v1/bids/:id
	GetBid(c *gin.Context)

	// CounterBid proposes a counter amount (owner only)
	// POST /api/v1/bids/:id/counter
	CounterBid(c *gin.Context)

	// AcceptBid accepts the amount on the table
	// POST /api/v1/bids/:id/accept
	AcceptBid(c *gin.Context)

	// RejectBid declines the amount on the table
	// POST /api/v1/bids/:id/reject
	RejectBid(c *gin.Context)

	// CancelBid withdraws a pending bid (bidder only)
	// POST /api/v1/bids/:id/cancel
	CancelBid(c *gin.Context)

	// SettleBid re-enqueues settlement for an accepted bid (operator only)
	// POST /api/v1/bids/:id/settle
	SettleBid(c *gin.Context)

	// ListRecordBids lists all bids on a record
	// GET /api/v1/records/:record_type/:record_id/bids
	ListRecordBids(c *gin.Context)

	// ListMyBids lists the caller's bids on both sides
	// GET /api/v1/bids
	ListMyBids(c *gin.Context)

	// GetOwnership retrieves a record's ledger entry
	// GET /api/v1/records/:record_type/:record_id/ownership
	GetOwnership(c *gin.Context)

	// GetOwnershipHistory retrieves a record's audit chain
	// GET /api/v1/records/:record_type/:record_id/history
	GetOwnershipHistory(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	checkins  *checkin.Service
	transfers *transfer.Service
	bids      *bid.Service
	ledger    *ledger.Reconciler
}

// NewHandler creates a REST handler backed by the domain services
func NewHandler(checkins *checkin.Service, transfers *transfer.Service, bids *bid.Service, lr *ledger.Reconciler) Handler {
	return &handler{
		checkins:  checkins,
		transfers: transfers,
		bids:      bids,
		ledger:    lr,
	}
}

func (h *handler) RegisterAsset(c *gin.Context) {
	var req registerAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	asset, err := h.checkins.RegisterAsset(c.Request.Context(), checkin.RegisterAssetInput{
		RecordType:   domain.RecordType(req.RecordType),
		Cell:         domain.GridCoordinate{X: req.GridX, Y: req.GridY},
		Name:         req.Name,
		Description:  req.Description,
		NFCUUID:      req.NFCUUID,
		BuildingID:   req.BuildingID,
		BuildingName: req.BuildingName,
		Location:     req.Location.point(),
		Image:        req.Image,
		RegisteredBy: middleware.Subject(c),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toAssetResponse(asset))
}

func (h *handler) GetAsset(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	asset, err := h.checkins.GetAsset(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toAssetResponse(asset))
}

func (h *handler) GetAssetByNFC(c *gin.Context) {
	nfcUUID := c.Param("nfc_uuid")
	if nfcUUID == "" {
		respondBadRequest(c, "Missing nfc_uuid")
		return
	}

	asset, err := h.checkins.GetAssetByNFC(c.Request.Context(), nfcUUID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toAssetResponse(asset))
}

func (h *handler) EditAsset(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req editAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	asset, err := h.checkins.EditAsset(c.Request.Context(), checkin.EditAssetInput{
		AssetID:     id,
		Username:    middleware.Subject(c),
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toAssetResponse(asset))
}

func (h *handler) CheckIn(c *gin.Context) {
	var req checkInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	checkIn, err := h.checkins.Record(c.Request.Context(), checkin.RecordInput{
		NFCUUID:  req.NFCUUID,
		Username: middleware.Subject(c),
		Location: req.Location.point(),
		Photo:    req.Photo,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toCheckInResponse(checkIn))
}

func (h *handler) GetCheckInHistory(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	limit := 100
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			respondBadRequest(c, "Invalid limit", raw)
			return
		}
		limit = parsed
	}

	ctx := c.Request.Context()
	total, err := h.checkins.Count(ctx, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	checkIns := make([]checkInResponse, 0, limit)
	for entry, err := range h.checkins.History(ctx, id) {
		if err != nil {
			respondServiceError(c, err)
			return
		}
		checkIns = append(checkIns, toCheckInResponse(&entry))
		if len(checkIns) >= limit {
			break
		}
	}

	c.JSON(http.StatusOK, checkInListResponse{CheckIns: checkIns, Total: total})
}

func (h *handler) CreateTransfer(c *gin.Context) {
	var req createTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	t, err := h.transfers.Create(c.Request.Context(), req.AssetID, middleware.Subject(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toTransferResponse(t, true))
}

func (h *handler) GetTransfer(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	t, err := h.transfers.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTransferResponse(t, t.FromUser == middleware.Subject(c)))
}

func (h *handler) GetTransferByCode(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		respondBadRequest(c, "Missing code")
		return
	}

	t, err := h.transfers.GetByCode(c.Request.Context(), code)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	// The caller already holds the code
	c.JSON(http.StatusOK, toTransferResponse(t, true))
}

func (h *handler) GetTransferQR(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	payload, err := h.transfers.QR(c.Request.Context(), id, middleware.Subject(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"payload": payload})
}

func (h *handler) ParseTransferQR(c *gin.Context) {
	var req parseQRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	data, err := h.transfers.ParseQR(req.Payload)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, data)
}

func (h *handler) ClaimTransfer(c *gin.Context) {
	var req claimTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	t, err := h.transfers.Claim(c.Request.Context(), req.Code, middleware.Subject(c), req.Location.point())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTransferResponse(t, false))
}

func (h *handler) CancelTransfer(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	t, err := h.transfers.Cancel(c.Request.Context(), id, middleware.Subject(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTransferResponse(t, true))
}

func (h *handler) PlaceBid(c *gin.Context) {
	var req placeBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	b, err := h.bids.Place(c.Request.Context(), bid.PlaceInput{
		AssetID:        req.AssetID,
		BidderUsername: middleware.Subject(c),
		Amount:         req.Amount,
		Contact:        req.Contact,
		Message:        req.Message,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toBidResponse(b))
}

func (h *handler) GetBid(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	b, err := h.bids.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBidResponse(b))
}

func (h *handler) CounterBid(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req counterBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	b, err := h.bids.Counter(c.Request.Context(), id, middleware.Subject(c), req.Amount, req.Message)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBidResponse(b))
}

func (h *handler) AcceptBid(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	b, err := h.bids.Accept(c.Request.Context(), id, middleware.Subject(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBidResponse(b))
}

func (h *handler) RejectBid(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req rejectBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	b, err := h.bids.Reject(c.Request.Context(), id, middleware.Subject(c), req.Message)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBidResponse(b))
}

func (h *handler) CancelBid(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	b, err := h.bids.Cancel(c.Request.Context(), id, middleware.Subject(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBidResponse(b))
}

func (h *handler) SettleBid(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	b, err := h.bids.Settle(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, toBidResponse(b))
}

func (h *handler) ListRecordBids(c *gin.Context) {
	recordType, recordID, ok := pathRecord(c)
	if !ok {
		return
	}

	bids, err := h.bids.ListForRecord(c.Request.Context(), recordType, recordID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bids": toBidListResponse(bids)})
}

func (h *handler) ListMyBids(c *gin.Context) {
	bids, err := h.bids.ListForUser(c.Request.Context(), middleware.Subject(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bids": toBidListResponse(bids)})
}

func (h *handler) GetOwnership(c *gin.Context) {
	recordType, recordID, ok := pathRecord(c)
	if !ok {
		return
	}

	record, err := h.ledger.Record(c.Request.Context(), recordType, recordID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOwnershipResponse(record))
}

func (h *handler) GetOwnershipHistory(c *gin.Context) {
	recordType, recordID, ok := pathRecord(c)
	if !ok {
		return
	}

	entries, err := h.ledger.History(c.Request.Context(), recordType, recordID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": toHistoryResponse(entries)})
}

func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// pathUUID parses a uuid path parameter, responding with 400 on failure
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		respondBadRequest(c, "Invalid "+name, err.Error())
		return uuid.Nil, false
	}
	return id, true
}

// pathRecord parses the record_type/record_id path parameter pair
func pathRecord(c *gin.Context) (domain.RecordType, uuid.UUID, bool) {
	recordType := domain.RecordType(c.Param("record_type"))
	if !recordType.Valid() {
		respondBadRequest(c, "Invalid record_type", c.Param("record_type"))
		return "", uuid.Nil, false
	}
	recordID, err := uuid.Parse(c.Param("record_id"))
	if err != nil {
		respondBadRequest(c, "Invalid record_id", err.Error())
		return "", uuid.Nil, false
	}
	return recordType, recordID, true
}
