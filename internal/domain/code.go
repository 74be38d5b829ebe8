package domain

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
)

// transferCodeBytes is the entropy of a transfer code. 10 bytes encodes to
// 16 base32 characters, which keeps codes short enough to type manually
// while staying unguessable.
const transferCodeBytes = 10

// NewTransferCode generates a cryptographically unpredictable single-use
// transfer code (uppercase base32, no padding).
func NewTransferCode() (string, error) {
	buf := make([]byte, transferCodeBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(buf), nil
}
