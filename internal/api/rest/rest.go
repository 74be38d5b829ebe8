package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/phygrid/engine/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	auth := middleware.Auth(authCfg)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Asset endpoints (public read access)
		v1.GET("/assets/:id", handler.GetAsset)
		v1.GET("/assets/nfc/:nfc_uuid", handler.GetAssetByNFC)
		v1.GET("/assets/:id/checkins", handler.GetCheckInHistory)

		// Asset mutation (requires authentication)
		v1.POST("/assets", auth, handler.RegisterAsset)
		v1.PATCH("/assets/:id", auth, handler.EditAsset)

		// Check-ins (requires authentication)
		v1.POST("/checkins", auth, handler.CheckIn)

		// Transfer endpoints (requires authentication; holding the code is
		// what authorizes the preview and the claim)
		v1.POST("/transfers", auth, handler.CreateTransfer)
		v1.GET("/transfers/:id", auth, handler.GetTransfer)
		v1.GET("/transfers/code/:code", auth, handler.GetTransferByCode)
		v1.GET("/transfers/:id/qr", auth, handler.GetTransferQR)
		v1.POST("/transfers/qr/parse", auth, handler.ParseTransferQR)
		v1.POST("/transfers/claim", auth, handler.ClaimTransfer)
		v1.POST("/transfers/:id/cancel", auth, handler.CancelTransfer)

		// Bid endpoints (requires authentication)
		v1.GET("/bids", auth, handler.ListMyBids)
		v1.POST("/bids", auth, handler.PlaceBid)
		v1.GET("/bids/:id", auth, handler.GetBid)
		v1.POST("/bids/:id/counter", auth, handler.CounterBid)
		v1.POST("/bids/:id/accept", auth, handler.AcceptBid)
		v1.POST("/bids/:id/reject", auth, handler.RejectBid)
		v1.POST("/bids/:id/cancel", auth, handler.CancelBid)

		// Settlement retry (requires API key authentication only)
		v1.POST("/bids/:id/settle", middleware.APIKeyAuth(authCfg), handler.SettleBid)

		// Ledger endpoints (public read access)
		v1.GET("/records/:record_type/:record_id/bids", handler.ListRecordBids)
		v1.GET("/records/:record_type/:record_id/ownership", handler.GetOwnership)
		v1.GET("/records/:record_type/:record_id/history", handler.GetOwnershipHistory)
	}
}
