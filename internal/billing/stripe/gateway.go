package stripe

import (
	"context"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"

	"github.com/moverhub/backend/internal/domain/billing"
)

// Gateway implements billing.Gateway against the Stripe API
type Gateway struct {
	sc *client.API
}

// NewGateway creates a Stripe-backed payment gateway
func NewGateway(secretKey string) *Gateway {
	sc := &client.API{}
	sc.Init(secretKey, nil)
	return &Gateway{sc: sc}
}

// CreateCustomer registers a customer and returns the gateway's ID
func (g *Gateway) CreateCustomer(ctx context.Context, email, name string, metadata map[string]string) (string, error) {
	params := &stripe.CustomerParams{
		Email: stripe.String(email),
	}
	if name != "" {
		params.Name = stripe.String(name)
	}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}
	params.Context = ctx

	customer, err := g.sc.Customers.New(params)
	if err != nil {
		return "", err
	}
	return customer.ID, nil
}

// CreateCheckoutSession starts a subscription checkout for priceID
func (g *Gateway) CreateCheckoutSession(ctx context.Context, customerID, priceID, successURL, cancelURL string) (*billing.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Customer:   stripe.String(customerID),
		Mode:       stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		SuccessURL: stripe.String(successURL),
		CancelURL:  stripe.String(cancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.Context = ctx

	session, err := g.sc.CheckoutSessions.New(params)
	if err != nil {
		return nil, err
	}
	return &billing.CheckoutSession{ID: session.ID, URL: session.URL}, nil
}

// CreatePortalSession returns a billing portal URL for the customer
func (g *Gateway) CreatePortalSession(ctx context.Context, customerID, returnURL string) (string, error) {
	params := &stripe.BillingPortalSessionParams{
		Customer:  stripe.String(customerID),
		ReturnURL: stripe.String(returnURL),
	}
	params.Context = ctx

	session, err := g.sc.BillingPortalSessions.New(params)
	if err != nil {
		return "", err
	}
	return session.URL, nil
}

// CancelAtPeriodEnd marks the subscription to lapse at period end
func (g *Gateway) CancelAtPeriodEnd(ctx context.Context, subscriptionID string) (*billing.Subscription, error) {
	params := &stripe.SubscriptionParams{
		CancelAtPeriodEnd: stripe.Bool(true),
	}
	params.Context = ctx

	sub, err := g.sc.Subscriptions.Update(subscriptionID, params)
	if err != nil {
		return nil, err
	}
	return &billing.Subscription{
		ID:                    sub.ID,
		CurrentPeriodEndEpoch: subscriptionPeriodEnd(sub),
	}, nil
}

// subscriptionPeriodEnd reads the period end off the first item; Stripe moved
// it from the subscription to its items in this API version.
func subscriptionPeriodEnd(sub *stripe.Subscription) int64 {
	if sub.Items != nil && len(sub.Items.Data) > 0 {
		return sub.Items.Data[0].CurrentPeriodEnd
	}
	return 0
}
