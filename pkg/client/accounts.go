package client

import "context"

// AccountService handles account signup API calls
type AccountService struct {
	client *Client
}

// CreateAccountRequest represents a signup request
type CreateAccountRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	FullName     string `json:"full_name,omitempty"`
	BusinessName string `json:"business_name,omitempty"`
	Plan         string `json:"plan,omitempty"`
}

// Create registers a mover account and starts subscription checkout
func (s *AccountService) Create(ctx context.Context, req CreateAccountRequest) (*Signup, error) {
	var signup Signup
	if err := s.client.doRequest(ctx, "POST", "/api/v1/accounts", req, &signup); err != nil {
		return nil, err
	}
	return &signup, nil
}
