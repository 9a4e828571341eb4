package profile

import "time"

// Profile is the canonical mover record. It is the single source of truth;
// the tabular mirror holds a lossy, eventually consistent copy keyed by email.
type Profile struct {
	ID           string   `json:"id"`
	Email        string   `json:"email"`
	FullName     string   `json:"full_name"`
	BusinessName string   `json:"business_name"`
	Phone        string   `json:"phone"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	LogoURL      string   `json:"logo_url"`
	StartingPrice *float64 `json:"starting_price,omitempty"`

	Plan                 string    `json:"plan"`
	Status               string    `json:"status"`
	StripeCustomerID     *string   `json:"stripe_customer_id,omitempty"`
	StripeSubscriptionID *string   `json:"stripe_subscription_id,omitempty"`
	CurrentPeriodEnd     *string   `json:"current_period_end,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Plans
const (
	PlanStarter    = "Starter"
	PlanPro        = "Pro"
	PlanEnterprise = "Enterprise"
)

// Subscription lifecycle status. Transitions are monotonic within a
// lifecycle: pending -> active -> cancelling -> cancelled. Re-activation
// happens only through a fresh checkout-completed event.
const (
	StatusPending    = "pending"
	StatusActive     = "active"
	StatusCancelling = "cancelling"
	StatusCancelled  = "cancelled"
)

// ValidPlan reports whether p is a known plan name
func ValidPlan(p string) bool {
	switch p {
	case PlanStarter, PlanPro, PlanEnterprise:
		return true
	}
	return false
}

// Update carries a partial edit of the descriptive fields. Nil pointers leave
// the corresponding column untouched.
type Update struct {
	FullName      *string
	BusinessName  *string
	Phone         *string
	City          *string
	State         *string
	LogoURL       *string
	StartingPrice *float64
}
