package chain

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum/common"

	"github.com/phygrid/engine/internal/adapter"
	"github.com/phygrid/engine/internal/domain"
)

// txHashPattern matches a 32-byte hex transaction hash
var txHashPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

// Config holds the signer service client configuration
type Config struct {
	BaseURL        string
	APIKey         string
	MaxElapsedTime time.Duration
}

type signerClient struct {
	cfg  Config
	http adapter.HTTPClient
	json adapter.JSON
}

// NewSignerClient creates a chain service backed by the external signer
// relay. Transient failures are retried with exponential backoff; the
// request id header makes replays safe on the signer side.
func NewSignerClient(cfg Config, httpClient adapter.HTTPClient, jsonAdapter adapter.JSON) Service {
	if cfg.MaxElapsedTime == 0 {
		cfg.MaxElapsedTime = 2 * time.Minute
	}
	return &signerClient{
		cfg:  cfg,
		http: httpClient,
		json: jsonAdapter,
	}
}

type txResponse struct {
	TxHash string `json:"tx_hash"`
}

func (c *signerClient) Mint(ctx context.Context, req MintRequest) (string, error) {
	if !common.IsHexAddress(req.ContractAddress) {
		return "", fmt.Errorf("%w: invalid contract address %q", domain.ErrMalformedPayload, req.ContractAddress)
	}
	return c.submit(ctx, "/v1/mint", req.RequestID, req)
}

func (c *signerClient) Transfer(ctx context.Context, req TransferRequest) (string, error) {
	if !common.IsHexAddress(req.ContractAddress) {
		return "", fmt.Errorf("%w: invalid contract address %q", domain.ErrMalformedPayload, req.ContractAddress)
	}
	return c.submit(ctx, "/v1/transfer", req.RequestID, req)
}

func (c *signerClient) submit(ctx context.Context, path string, requestID string, payload interface{}) (string, error) {
	body, err := c.json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal chain request: %w", err)
	}

	headers := map[string]string{
		"Idempotency-Key": requestID,
	}
	if c.cfg.APIKey != "" {
		headers["Authorization"] = "Bearer " + c.cfg.APIKey
	}

	var txHash string
	operation := func() error {
		respBody, status, err := c.http.Post(ctx, c.cfg.BaseURL+path, "application/json", body, headers)
		if err != nil {
			// Network errors are retryable
			return fmt.Errorf("%w: %s", domain.ErrUpstreamUnavailable, err.Error())
		}

		switch {
		case status >= 200 && status < 300:
			// fallthrough to decode below
		case status >= 500 || status == http.StatusTooManyRequests:
			return fmt.Errorf("%w: signer returned status %d", domain.ErrUpstreamUnavailable, status)
		default:
			// Client errors do not change on retry
			return backoff.Permanent(fmt.Errorf("signer rejected request with status %d", status))
		}

		var resp txResponse
		if err := c.json.Unmarshal(respBody, &resp); err != nil {
			return backoff.Permanent(fmt.Errorf("%w: invalid signer response: %s", domain.ErrMalformedPayload, err.Error()))
		}
		if !txHashPattern.MatchString(resp.TxHash) {
			return backoff.Permanent(fmt.Errorf("%w: invalid transaction hash %q", domain.ErrMalformedPayload, resp.TxHash))
		}

		txHash = resp.TxHash
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = c.cfg.MaxElapsedTime
	if err := backoff.Retry(operation, backoff.WithContext(policy, ctx)); err != nil {
		return "", err
	}

	return txHash, nil
}
