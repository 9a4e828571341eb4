package client

// Mover is the projected mover profile the API returns
type Mover struct {
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	Phone             string   `json:"phone"`
	City              string   `json:"city"`
	State             string   `json:"state"`
	Logo              string   `json:"logo"`
	StartingPrice     *float64 `json:"startingPrice,omitempty"`
	Verified          bool     `json:"verified"`
	Rating            float64  `json:"rating"`
	JobsCompleted     int      `json:"jobsCompleted"`
	Features          []string `json:"features"`
	ProfileCompletion int      `json:"profileCompletion"`
}

// MoverDetail is a mover profile together with its dashboard labels
type MoverDetail struct {
	Mover       Mover  `json:"mover"`
	MemberSince string `json:"member_since"`
	RenewsOn    string `json:"renews_on"`
	Plan        string `json:"plan"`
	Status      string `json:"status"`
}

// Signup is the result of creating an account
type Signup struct {
	Profile     Mover  `json:"profile"`
	CheckoutURL string `json:"checkout_url"`
}

// BillingSession carries a hosted billing page URL
type BillingSession struct {
	URL string `json:"url"`
}

// HealthResponse is the liveness probe payload
type HealthResponse struct {
	Status string `json:"status"`
}
