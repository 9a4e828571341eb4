package client

import "context"

// BillingService handles billing and subscription API calls
type BillingService struct {
	client *Client
}

type billingSessionRequest struct {
	Email string `json:"email"`
}

// Checkout creates a subscription checkout session for the profile's plan
func (s *BillingService) Checkout(ctx context.Context, email string) (*BillingSession, error) {
	var session BillingSession
	if err := s.client.doRequest(ctx, "POST", "/api/v1/billing/checkout", billingSessionRequest{Email: email}, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Portal creates a billing portal session for subscription self-service
func (s *BillingService) Portal(ctx context.Context, email string) (*BillingSession, error) {
	var session BillingSession
	if err := s.client.doRequest(ctx, "POST", "/api/v1/billing/portal", billingSessionRequest{Email: email}, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Cancel schedules cancellation at the end of the current billing period
func (s *BillingService) Cancel(ctx context.Context, email string) error {
	return s.client.doRequest(ctx, "POST", "/api/v1/billing/cancel", billingSessionRequest{Email: email}, nil)
}
