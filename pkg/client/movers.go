package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
)

// MoverService handles mover profile API calls
type MoverService struct {
	client *Client
}

// UpdateMoverRequest represents a partial profile edit. Absent fields keep
// their stored values.
type UpdateMoverRequest struct {
	FullName      *string  `json:"full_name,omitempty"`
	BusinessName  *string  `json:"business_name,omitempty"`
	Phone         *string  `json:"phone,omitempty"`
	City          *string  `json:"city,omitempty"`
	State         *string  `json:"state,omitempty"`
	StartingPrice *float64 `json:"starting_price,omitempty"`
}

// Get retrieves a mover profile with its dashboard labels
func (s *MoverService) Get(ctx context.Context, email string) (*MoverDetail, error) {
	var detail MoverDetail
	path := "/api/v1/movers/" + url.PathEscape(email)
	if err := s.client.doRequest(ctx, "GET", path, nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// Update applies a partial edit and returns the fresh projection
func (s *MoverService) Update(ctx context.Context, email string, req UpdateMoverRequest) (*Mover, error) {
	var mover Mover
	path := "/api/v1/movers/" + url.PathEscape(email)
	if err := s.client.doRequest(ctx, "PUT", path, req, &mover); err != nil {
		return nil, err
	}
	return &mover, nil
}

// UploadLogo uploads a logo image for the profile and returns the fresh
// projection
func (s *MoverService) UploadLogo(ctx context.Context, email, filename, contentType string, data []byte) (*Mover, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("logo", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to build form: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("failed to write form file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish form: %w", err)
	}

	path := "/api/v1/movers/" + url.PathEscape(email) + "/logo"
	req, err := http.NewRequestWithContext(ctx, "POST", s.client.baseURL+path, &body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if s.client.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.client.token)
	}

	resp, err := s.client.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
		}
		return nil, apiErr
	}

	var mover Mover
	if err := json.Unmarshal(env.Data, &mover); err != nil {
		return nil, fmt.Errorf("failed to parse response data: %w", err)
	}
	return &mover, nil
}
