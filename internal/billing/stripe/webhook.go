package stripe

import (
	"encoding/json"
	"fmt"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"

	"github.com/moverhub/backend/internal/domain/billing"
)

// NewEventVerifier returns a billing.EventVerifier that checks raw webhook
// deliveries against the shared signing secret and lifts them into the
// normalized event shape.
func NewEventVerifier(webhookSecret string) billing.EventVerifier {
	return func(payload []byte, signatureHeader string) (*billing.Event, error) {
		event, err := webhook.ConstructEvent(payload, signatureHeader, webhookSecret)
		if err != nil {
			return nil, err
		}
		return normalizeEvent(&event)
	}
}

// normalizeEvent extracts the customer and subscription references this
// service reconciles. Event kinds it does not know keep their type and empty
// references; the reconciler acknowledges them as no-ops.
func normalizeEvent(event *stripe.Event) (*billing.Event, error) {
	out := &billing.Event{
		ID:   event.ID,
		Type: string(event.Type),
	}

	switch string(event.Type) {
	case billing.EventCheckoutCompleted:
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return nil, fmt.Errorf("failed to decode checkout session: %w", err)
		}
		if session.Customer != nil {
			out.CustomerID = session.Customer.ID
		}
	case billing.EventSubscriptionUpdated:
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return nil, fmt.Errorf("failed to decode subscription: %w", err)
		}
		if sub.Customer != nil {
			out.CustomerID = sub.Customer.ID
		}
		out.SubscriptionID = sub.ID
		out.PeriodEndEpoch = subscriptionPeriodEnd(&sub)
	}

	return out, nil
}
