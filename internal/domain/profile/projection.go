package profile

// MoverView is the external projection of a profile. It is derived on every
// read and never persisted.
type MoverView struct {
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	City          string   `json:"city"`
	State         string   `json:"state"`
	Logo          string   `json:"logo"`
	StartingPrice *float64 `json:"startingPrice,omitempty"`

	// Verified, Rating, JobsCompleted and Features are constant placeholders.
	// No verification, review or job pipeline backs them yet.
	Verified      bool     `json:"verified"`
	Rating        float64  `json:"rating"`
	JobsCompleted int      `json:"jobsCompleted"`
	Features      []string `json:"features"`

	ProfileCompletion int `json:"profileCompletion"`
}

// Project maps a profile into its external view. A nil profile yields the
// zero view; callers treat that as "nothing to show", not a failure.
func Project(p *Profile) MoverView {
	if p == nil {
		return MoverView{Features: []string{}}
	}

	name := p.FullName
	if name == "" {
		name = p.BusinessName
	}
	if name == "" {
		name = "Mover"
	}

	return MoverView{
		Name:              name,
		Email:             p.Email,
		Phone:             p.Phone,
		City:              p.City,
		State:             p.State,
		Logo:              p.LogoURL,
		StartingPrice:     p.StartingPrice,
		Verified:          true,
		Rating:            4.9,
		JobsCompleted:     0,
		Features:          []string{},
		ProfileCompletion: CompletionScore(p),
	}
}
