package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is a minimal admin client for a Supabase-style identity provider.
// It implements identity.Provider.
type Client struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
}

// Config holds the client configuration
type Config struct {
	BaseURL    string // e.g. "https://xyz.supabase.co"
	ServiceKey string // service-role key, never the anon key
	Timeout    time.Duration
	HTTPClient *http.Client
}

// NewClient creates a new identity provider client
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
		serviceKey: cfg.ServiceKey,
		httpClient: httpClient,
	}
}

type createUserRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	EmailConfirm bool   `json:"email_confirm"`
}

type createUserResponse struct {
	ID string `json:"id"`
}

type apiError struct {
	Message string `json:"msg"`
	Error   string `json:"error_description"`
}

// CreateAccount registers email with the given password and returns the
// provider's account ID
func (c *Client) CreateAccount(ctx context.Context, email, password string) (string, error) {
	body, err := json.Marshal(createUserRequest{
		Email:        email,
		Password:     password,
		EmailConfirm: true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/auth/v1/admin/users", bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.serviceKey)
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr apiError
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Message != "" {
			return "", fmt.Errorf("identity provider returned %d: %s", resp.StatusCode, apiErr.Message)
		}
		return "", fmt.Errorf("identity provider returned %d: %s", resp.StatusCode, string(data))
	}

	var created createUserResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if created.ID == "" {
		return "", fmt.Errorf("identity provider returned no account id")
	}

	return created.ID, nil
}
