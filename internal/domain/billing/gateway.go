package billing

import "context"

// Gateway defines the payment gateway operations the service depends on.
// Webhook signature verification lives with the service consuming raw events,
// not here, because it needs the raw request body.
type Gateway interface {
	// CreateCustomer registers a customer and returns the gateway's ID
	CreateCustomer(ctx context.Context, email, name string, metadata map[string]string) (string, error)

	// CreateCheckoutSession starts a subscription checkout for priceID
	CreateCheckoutSession(ctx context.Context, customerID, priceID, successURL, cancelURL string) (*CheckoutSession, error)

	// CreatePortalSession returns a billing portal URL for the customer
	CreatePortalSession(ctx context.Context, customerID, returnURL string) (string, error)

	// CancelAtPeriodEnd marks the subscription to lapse at period end and
	// returns the refreshed subscription state.
	CancelAtPeriodEnd(ctx context.Context, subscriptionID string) (*Subscription, error)
}
