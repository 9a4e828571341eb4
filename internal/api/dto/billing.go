package dto

// BillingSessionRequest identifies the profile a billing session is for
type BillingSessionRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// BillingSessionResponse carries a hosted billing page URL
type BillingSessionResponse struct {
	URL string `json:"url"`
}

// CancelSubscriptionRequest identifies the profile requesting cancellation
type CancelSubscriptionRequest struct {
	Email string `json:"email" validate:"required,email"`
}
