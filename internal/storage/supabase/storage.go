package supabase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Store uploads objects to a Supabase-style storage bucket and returns
// their public URLs. It implements storage.Store.
type Store struct {
	baseURL    string
	serviceKey string
	bucket     string
	httpClient *http.Client
}

// Config holds the storage client configuration
type Config struct {
	BaseURL    string
	ServiceKey string
	Bucket     string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// NewStore creates a new object storage client
func NewStore(cfg Config) *Store {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Store{
		baseURL:    cfg.BaseURL,
		serviceKey: cfg.ServiceKey,
		bucket:     cfg.Bucket,
		httpClient: httpClient,
	}
}

// Upload stores data under path in the configured bucket and returns the
// public URL. Existing objects at the same path are overwritten.
func (s *Store) Upload(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	escaped := url.PathEscape(path)
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.baseURL, s.bucket, escaped)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)
	req.Header.Set("x-upsert", "true")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("storage returned %d: %s", resp.StatusCode, string(body))
	}

	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, escaped), nil
}
