package blob

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gabriel-vasile/mimetype"

	"github.com/phygrid/engine/internal/adapter"
	"github.com/phygrid/engine/internal/domain"
)

// Store defines the interface to the external image/asset blob service.
// The engine treats blobs opaquely and only persists the resulting URL.
//
//go:generate mockgen -source=blob.go -destination=../mocks/blob.go -package=mocks -mock_names=Store=MockBlobStore
type Store interface {
	// Upload stores the bytes and returns their public URL
	Upload(ctx context.Context, data []byte) (url string, err error)
	// Download fetches the bytes behind a previously returned URL
	Download(ctx context.Context, url string) ([]byte, error)
}

// Config holds blob service client configuration
type Config struct {
	UploadURL string
	APIKey    string
}

type httpStore struct {
	cfg  Config
	http adapter.HTTPClient
	json adapter.JSON
}

// NewHTTPStore creates a blob store client over the external blob service's
// HTTP API
func NewHTTPStore(cfg Config, httpClient adapter.HTTPClient, jsonAdapter adapter.JSON) Store {
	return &httpStore{cfg: cfg, http: httpClient, json: jsonAdapter}
}

type uploadResponse struct {
	URL string `json:"url"`
}

func (s *httpStore) Upload(ctx context.Context, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty upload", domain.ErrMalformedPayload)
	}

	// Sniff the content type so the blob service stores a usable one
	contentType := mimetype.Detect(data).String()

	headers := map[string]string{}
	if s.cfg.APIKey != "" {
		headers["Authorization"] = "Bearer " + s.cfg.APIKey
	}

	respBody, status, err := s.http.Post(ctx, s.cfg.UploadURL, contentType, data, headers)
	if err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrUpstreamUnavailable, err.Error())
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return "", fmt.Errorf("%w: blob service returned status %d", domain.ErrUpstreamUnavailable, status)
	}

	var resp uploadResponse
	if err := s.json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("%w: invalid blob service response: %s", domain.ErrMalformedPayload, err.Error())
	}
	if resp.URL == "" {
		return "", fmt.Errorf("%w: blob service returned no URL", domain.ErrMalformedPayload)
	}

	return resp.URL, nil
}

func (s *httpStore) Download(ctx context.Context, url string) ([]byte, error) {
	data, err := s.http.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUpstreamUnavailable, err.Error())
	}
	return data, nil
}
