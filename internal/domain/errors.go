package domain

import "errors"

var (
	// ErrNotFound is returned when the referenced record, transfer, or bid does not exist
	ErrNotFound = errors.New("not found")

	// ErrExpired is returned when a transfer code or bid is past its deadline
	ErrExpired = errors.New("expired")

	// ErrAlreadyClaimed is returned when a transfer code has already been consumed
	ErrAlreadyClaimed = errors.New("already claimed")

	// ErrInvalidState is returned when a transition is not permitted from the current status
	ErrInvalidState = errors.New("invalid state")

	// ErrForbidden is returned when the acting party is not authorized for the action
	ErrForbidden = errors.New("forbidden")

	// ErrLocationMismatch is returned when the proximity rule fails
	ErrLocationMismatch = errors.New("location mismatch")

	// ErrVersionConflict is returned when a conditional write loses a concurrent race
	ErrVersionConflict = errors.New("version conflict")

	// ErrMalformedPayload is returned when a QR payload or transfer code cannot be decoded
	ErrMalformedPayload = errors.New("malformed payload")

	// ErrUpstreamUnavailable is returned when the backing store or chain service call failed
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)
