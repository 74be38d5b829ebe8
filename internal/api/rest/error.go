package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/phygrid/engine/internal/api/shared/errors"
	"github.com/phygrid/engine/internal/domain"
	"github.com/phygrid/engine/internal/logger"
)

// errorResponse represents a standardized error response
type errorResponse struct {
	Error apierrors.APIError `json:"error"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, code apierrors.ErrorCode, message string, details ...string) {
	response := errorResponse{
		Error: apierrors.APIError{
			Code:    code,
			Message: message,
		},
	}

	if len(details) > 0 {
		response.Error.Details = details[0]
	}

	c.JSON(statusCode, response)
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusBadRequest, apierrors.ErrCodeBadRequest, message, details...)
}

// respondValidationError sends a 422 Unprocessable Entity response
func respondValidationError(c *gin.Context, details string) {
	respondWithError(c, http.StatusUnprocessableEntity, apierrors.ErrCodeValidationFailed, "Validation failed", details)
}

// respondInternalError sends a 500 Internal Server Error response and logs the error
func respondInternalError(c *gin.Context, err error, message string, fields ...zap.Field) {
	logger.Error(err, fields...)
	respondWithError(c, http.StatusInternalServerError, apierrors.ErrCodeInternalError, message)
}

// respondServiceError translates a service error into the HTTP vocabulary.
// The mapping is part of the API contract: clients distinguish a consumed
// code (409) from an expired one (410) and a distance rejection (422).
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondWithError(c, http.StatusNotFound, apierrors.ErrCodeNotFound, "Resource not found", err.Error())
	case errors.Is(err, domain.ErrExpired):
		respondWithError(c, http.StatusGone, apierrors.ErrCodeGone, "Resource expired", err.Error())
	case errors.Is(err, domain.ErrAlreadyClaimed):
		respondWithError(c, http.StatusConflict, apierrors.ErrCodeConflict, "Already claimed", err.Error())
	case errors.Is(err, domain.ErrInvalidState), errors.Is(err, domain.ErrVersionConflict):
		respondWithError(c, http.StatusConflict, apierrors.ErrCodeConflict, "Invalid state", err.Error())
	case errors.Is(err, domain.ErrForbidden):
		respondWithError(c, http.StatusForbidden, apierrors.ErrCodeForbidden, "Forbidden", err.Error())
	case errors.Is(err, domain.ErrLocationMismatch):
		respondValidationError(c, err.Error())
	case errors.Is(err, domain.ErrMalformedPayload):
		respondBadRequest(c, "Malformed payload", err.Error())
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		respondWithError(c, http.StatusServiceUnavailable, apierrors.ErrCodeServiceUnavailable, "Upstream unavailable", err.Error())
	default:
		respondInternalError(c, err, "Internal server error")
	}
}
