package domain

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gowebpki/jcs"
)

// TransferQRData is the denormalized projection of a transfer request that
// travels out of band (QR code, clipboard). It is a snapshot only: the
// receiving party must re-validate expiry and status against live state
// before claiming.
type TransferQRData struct {
	TransferCode string    `json:"transfer_code"`
	NFCUUID      string    `json:"nfc_uuid"`
	BuildingName string    `json:"building_name"`
	AssetName    string    `json:"asset_name"`
	FromUser     string    `json:"from_user"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// Encode serializes the payload as base64 over JCS-canonical JSON so the
// same payload always produces the same string regardless of platform.
func (q TransferQRData) Encode() (string, error) {
	// Normalize to UTC so round-tripping is lossless
	q.ExpiresAt = q.ExpiresAt.UTC()

	raw, err := json.Marshal(q)
	if err != nil {
		return "", fmt.Errorf("failed to marshal QR payload: %w", err)
	}

	canonical, err := jcs.Transform(raw)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize QR payload: %w", err)
	}

	return base64.StdEncoding.EncodeToString(canonical), nil
}

// DecodeTransferQR parses a QR payload back into its structured form.
// Returns ErrMalformedPayload when the encoding or structure is invalid.
func DecodeTransferQR(payload string) (*TransferQRData, error) {
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64: %s", ErrMalformedPayload, err.Error())
	}

	var q TransferQRData
	if err := json.Unmarshal(raw, &q); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %s", ErrMalformedPayload, err.Error())
	}

	if q.TransferCode == "" || q.FromUser == "" {
		return nil, fmt.Errorf("%w: missing transfer code or sender", ErrMalformedPayload)
	}
	if q.ExpiresAt.IsZero() {
		return nil, fmt.Errorf("%w: missing expiry", ErrMalformedPayload)
	}

	q.ExpiresAt = q.ExpiresAt.UTC()
	return &q, nil
}
