package billing

// Event kinds this service reconciles. Anything else delivered by the gateway
// is acknowledged and ignored.
const (
	EventCheckoutCompleted   = "checkout.session.completed"
	EventSubscriptionUpdated = "customer.subscription.updated"
)

// Event is a verified, normalized gateway lifecycle notification. Only the
// fields this service reconciles are carried; the raw payload stays with the
// gateway adapter.
type Event struct {
	ID             string
	Type           string
	CustomerID     string
	SubscriptionID string
	PeriodEndEpoch int64
}

// EventVerifier checks a raw webhook delivery against the shared signing
// secret and returns the normalized event. A signature failure rejects the
// whole delivery; no state may change.
type EventVerifier func(payload []byte, signatureHeader string) (*Event, error)

// Subscription is the gateway's view of a subscription after a mutation
type Subscription struct {
	ID                    string
	CurrentPeriodEndEpoch int64
}

// CheckoutSession is a started checkout flow the customer completes on the
// gateway's hosted page
type CheckoutSession struct {
	ID  string
	URL string
}
