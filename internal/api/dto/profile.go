package dto

import "github.com/moverhub/backend/internal/domain/profile"

// UpdateProfileRequest represents a partial profile edit. Absent fields
// keep their stored values; present-but-empty strings clear them.
type UpdateProfileRequest struct {
	FullName      *string  `json:"full_name,omitempty" validate:"omitempty,max=120"`
	BusinessName  *string  `json:"business_name,omitempty" validate:"omitempty,max=120"`
	Phone         *string  `json:"phone,omitempty" validate:"omitempty,max=32"`
	City          *string  `json:"city,omitempty" validate:"omitempty,max=80"`
	State         *string  `json:"state,omitempty" validate:"omitempty,max=80"`
	StartingPrice *float64 `json:"starting_price,omitempty" validate:"omitempty,gte=0"`
}

// ToUpdate maps the request onto the domain's partial-update type
func (r *UpdateProfileRequest) ToUpdate() profile.Update {
	return profile.Update{
		FullName:      r.FullName,
		BusinessName:  r.BusinessName,
		Phone:         r.Phone,
		City:          r.City,
		State:         r.State,
		StartingPrice: r.StartingPrice,
	}
}

// MoverResponse wraps a projected profile together with display labels the
// dashboard renders verbatim
type MoverResponse struct {
	Mover       profile.MoverView `json:"mover"`
	MemberSince string            `json:"member_since"`
	RenewsOn    string            `json:"renews_on"`
	Plan        string            `json:"plan"`
	Status      string            `json:"status"`
}
