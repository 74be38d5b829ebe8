package domain_test

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phygrid/engine/internal/domain"
)

func TestRecordType_Valid(t *testing.T) {
	tests := []struct {
		name       string
		recordType domain.RecordType
		want       bool
	}{
		{
			name:       "building",
			recordType: domain.RecordTypeBuilding,
			want:       true,
		},
		{
			name:       "oval office",
			recordType: domain.RecordTypeOvalOffice,
			want:       true,
		},
		{
			name:       "unknown",
			recordType: domain.RecordType("spaceship"),
			want:       false,
		},
		{
			name:       "empty",
			recordType: domain.RecordType(""),
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.recordType.Valid())
		})
	}
}

func TestValidAmount(t *testing.T) {
	assert.True(t, domain.ValidAmount(1))
	assert.True(t, domain.ValidAmount(5000))
	assert.False(t, domain.ValidAmount(0))
	assert.False(t, domain.ValidAmount(-100))
}

func TestNewTransferCode(t *testing.T) {
	code, err := domain.NewTransferCode()
	require.NoError(t, err)

	// 10 random bytes encode to 16 unpadded base32 characters
	assert.Len(t, code, 16)
	assert.NotContains(t, code, "=")

	// Codes must be unpredictable; two draws colliding means the generator
	// is broken
	other, err := domain.NewTransferCode()
	require.NoError(t, err)
	assert.NotEqual(t, code, other)
}

func TestTransferQRData_EncodeDecode(t *testing.T) {
	expiresAt := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	payload := domain.TransferQRData{
		TransferCode: "ABCDEFGHJKMNPQRS",
		NFCUUID:      "04:A3:B2:C1:D0:E5:F6",
		BuildingName: "Transamerica Pyramid",
		AssetName:    "Lobby Mural",
		FromUser:     "alice",
		ExpiresAt:    expiresAt,
	}

	encoded, err := payload.Encode()
	require.NoError(t, err)

	decoded, err := domain.DecodeTransferQR(encoded)
	require.NoError(t, err)
	assert.Equal(t, payload.TransferCode, decoded.TransferCode)
	assert.Equal(t, payload.NFCUUID, decoded.NFCUUID)
	assert.Equal(t, payload.BuildingName, decoded.BuildingName)
	assert.Equal(t, payload.AssetName, decoded.AssetName)
	assert.Equal(t, payload.FromUser, decoded.FromUser)
	assert.True(t, expiresAt.Equal(decoded.ExpiresAt))
}

func TestTransferQRData_EncodeDeterministic(t *testing.T) {
	payload := domain.TransferQRData{
		TransferCode: "ABCDEFGHJKMNPQRS",
		FromUser:     "alice",
		// Non-UTC zone must not change the encoded bytes
		ExpiresAt: time.Date(2026, 3, 14, 16, 9, 26, 0, time.FixedZone("CET", 3600)),
	}

	first, err := payload.Encode()
	require.NoError(t, err)
	second, err := payload.Encode()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	decoded, err := domain.DecodeTransferQR(first)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, decoded.ExpiresAt.Location())
}

func TestDecodeTransferQR_Malformed(t *testing.T) {
	validBut := func(mutate func(*domain.TransferQRData)) string {
		q := domain.TransferQRData{
			TransferCode: "ABCDEFGHJKMNPQRS",
			FromUser:     "alice",
			ExpiresAt:    time.Now().UTC().Add(time.Hour),
		}
		mutate(&q)
		encoded, err := q.Encode()
		require.NoError(t, err)
		return encoded
	}

	tests := []struct {
		name    string
		payload string
	}{
		{
			name:    "not base64",
			payload: "!!!not-base64!!!",
		},
		{
			name:    "not JSON",
			payload: base64.StdEncoding.EncodeToString([]byte("plain text")),
		},
		{
			name:    "missing transfer code",
			payload: validBut(func(q *domain.TransferQRData) { q.TransferCode = "" }),
		},
		{
			name:    "missing sender",
			payload: validBut(func(q *domain.TransferQRData) { q.FromUser = "" }),
		},
		{
			name:    "missing expiry",
			payload: validBut(func(q *domain.TransferQRData) { q.ExpiresAt = time.Time{} }),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := domain.DecodeTransferQR(tt.payload)
			assert.Nil(t, decoded)
			assert.ErrorIs(t, err, domain.ErrMalformedPayload)
		})
	}
}
