package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/moverhub/backend/internal/domain/mirror"
)

// Client talks to an Airtable-compatible REST API. It implements
// mirror.Store; callers above it treat every failure as non-fatal.
type Client struct {
	baseURL    string
	baseID     string
	apiKey     string
	httpClient *http.Client
}

// Config holds the client configuration
type Config struct {
	BaseURL    string        // e.g. "https://api.airtable.com/v0"
	BaseID     string        // workspace base identifier
	APIKey     string        // bearer token
	Timeout    time.Duration // HTTP client timeout (default: 10s)
	HTTPClient *http.Client  // optional custom HTTP client
}

// NewClient creates a new mirror store client
func NewClient(cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		baseID:     cfg.BaseID,
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
	}
}

type recordPayload struct {
	ID     string        `json:"id,omitempty"`
	Fields mirror.Fields `json:"fields"`
}

type listResponse struct {
	Records []recordPayload `json:"records"`
}

// FindByEmail returns at most one record whose Email field equals email
// exactly. The store may hold duplicates from before this service existed;
// only the first match is considered.
func (c *Client) FindByEmail(ctx context.Context, table, email string) (*mirror.Record, error) {
	formula := fmt.Sprintf("{Email}=%q", email)
	path := fmt.Sprintf("/%s/%s?maxRecords=1&filterByFormula=%s",
		c.baseID, url.PathEscape(table), url.QueryEscape(formula))

	var resp listResponse
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}

	if len(resp.Records) == 0 {
		return nil, nil
	}
	return &mirror.Record{ID: resp.Records[0].ID, Fields: resp.Records[0].Fields}, nil
}

// Create inserts a new record and returns its ID
func (c *Client) Create(ctx context.Context, table string, fields mirror.Fields) (string, error) {
	path := fmt.Sprintf("/%s/%s", c.baseID, url.PathEscape(table))

	var resp recordPayload
	if err := c.doRequest(ctx, http.MethodPost, path, recordPayload{Fields: fields}, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

// Update overwrites the listed fields on a record. PATCH keeps unlisted
// fields untouched per the store's partial-update semantics.
func (c *Client) Update(ctx context.Context, table, id string, fields mirror.Fields) error {
	path := fmt.Sprintf("/%s/%s/%s", c.baseID, url.PathEscape(table), id)
	return c.doRequest(ctx, http.MethodPatch, path, recordPayload{Fields: fields}, nil)
}

// doRequest performs an HTTP request with proper error handling
func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("mirror store returned %d: %s", resp.StatusCode, string(data))
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
