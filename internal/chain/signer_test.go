package chain_test

import (
	"context"
	"errors"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phygrid/engine/internal/adapter"
	"github.com/phygrid/engine/internal/chain"
	"github.com/phygrid/engine/internal/domain"
	"github.com/phygrid/engine/internal/logger"
	"github.com/phygrid/engine/internal/mocks"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

const (
	testContract = "0x1111111111111111111111111111111111111111"
	testTxHash   = "0xabcabcabcabcabcabcabcabcabcabcabcabcabcabcabcabcabcabcabcabcabca"
)

type testSignerMocks struct {
	ctrl    *gomock.Controller
	http    *mocks.MockHTTPClient
	service chain.Service
}

func setupTestSigner(t *testing.T, maxElapsed time.Duration) *testSignerMocks {
	ctrl := gomock.NewController(t)
	tm := &testSignerMocks{
		ctrl: ctrl,
		http: mocks.NewMockHTTPClient(ctrl),
	}
	tm.service = chain.NewSignerClient(chain.Config{
		BaseURL:        "https://signer.example.com",
		APIKey:         "signer-key",
		MaxElapsedTime: maxElapsed,
	}, tm.http, adapter.NewJSON())
	return tm
}

func tearDownTestSigner(tm *testSignerMocks) {
	tm.ctrl.Finish()
}

func TestMint_Success(t *testing.T) {
	tm := setupTestSigner(t, 5*time.Second)
	defer tearDownTestSigner(tm)

	ctx := context.Background()
	tm.http.EXPECT().
		Post(ctx, "https://signer.example.com/v1/mint", "application/json", gomock.Any(), map[string]string{
			"Idempotency-Key": "mint:rec-1",
			"Authorization":   "Bearer signer-key",
		}).
		Return([]byte(`{"tx_hash":"`+testTxHash+`"}`), http.StatusOK, nil)

	txHash, err := tm.service.Mint(ctx, chain.MintRequest{
		RequestID:       "mint:rec-1",
		TokenID:         "42",
		ContractAddress: testContract,
		Owner:           "alice",
	})
	require.NoError(t, err)
	assert.Equal(t, testTxHash, txHash)
}

func TestMint_InvalidContractAddress(t *testing.T) {
	tm := setupTestSigner(t, 5*time.Second)
	defer tearDownTestSigner(tm)

	_, err := tm.service.Mint(context.Background(), chain.MintRequest{
		RequestID:       "mint:rec-1",
		TokenID:         "42",
		ContractAddress: "not-an-address",
		Owner:           "alice",
	})
	assert.ErrorIs(t, err, domain.ErrMalformedPayload)
}

func TestTransfer_RetriesTransientFailure(t *testing.T) {
	tm := setupTestSigner(t, 5*time.Second)
	defer tearDownTestSigner(tm)

	ctx := context.Background()
	first := tm.http.EXPECT().
		Post(ctx, "https://signer.example.com/v1/transfer", "application/json", gomock.Any(), gomock.Any()).
		Return([]byte("gateway timeout"), http.StatusBadGateway, nil)
	tm.http.EXPECT().
		Post(ctx, "https://signer.example.com/v1/transfer", "application/json", gomock.Any(), gomock.Any()).
		Return([]byte(`{"tx_hash":"`+testTxHash+`"}`), http.StatusOK, nil).
		After(first)

	txHash, err := tm.service.Transfer(ctx, chain.TransferRequest{
		RequestID:       "transfer:rec-1",
		TokenID:         "42",
		ContractAddress: testContract,
		FromUser:        "alice",
		ToUser:          "bob",
	})
	require.NoError(t, err)
	assert.Equal(t, testTxHash, txHash)
}

func TestTransfer_NetworkErrorExhaustsRetries(t *testing.T) {
	tm := setupTestSigner(t, 50*time.Millisecond)
	defer tearDownTestSigner(tm)

	ctx := context.Background()
	tm.http.EXPECT().
		Post(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, 0, errors.New("connection reset")).
		MinTimes(1)

	_, err := tm.service.Transfer(ctx, chain.TransferRequest{
		RequestID:       "transfer:rec-1",
		TokenID:         "42",
		ContractAddress: testContract,
		FromUser:        "alice",
		ToUser:          "bob",
	})
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

func TestMint_ClientErrorIsNotRetried(t *testing.T) {
	tm := setupTestSigner(t, 5*time.Second)
	defer tearDownTestSigner(tm)

	ctx := context.Background()
	tm.http.EXPECT().
		Post(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]byte("bad request"), http.StatusBadRequest, nil).
		Times(1)

	_, err := tm.service.Mint(ctx, chain.MintRequest{
		RequestID:       "mint:rec-1",
		TokenID:         "42",
		ContractAddress: testContract,
		Owner:           "alice",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}

func TestMint_RejectsMalformedTxHash(t *testing.T) {
	tm := setupTestSigner(t, 5*time.Second)
	defer tearDownTestSigner(tm)

	ctx := context.Background()
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "tx ok"},
		{name: "short hash", body: `{"tx_hash":"0x1234"}`},
		{name: "empty hash", body: `{"tx_hash":""}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tm.http.EXPECT().
				Post(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return([]byte(tc.body), http.StatusOK, nil).
				Times(1)

			_, err := tm.service.Mint(ctx, chain.MintRequest{
				RequestID:       "mint:rec-1",
				TokenID:         "42",
				ContractAddress: testContract,
				Owner:           "alice",
			})
			assert.ErrorIs(t, err, domain.ErrMalformedPayload)
		})
	}
}
