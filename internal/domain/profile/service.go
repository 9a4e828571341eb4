package profile

import "context"

// Service defines the interface for profile business logic
type Service interface {
	// GetProfile returns the canonical profile for an email
	GetProfile(ctx context.Context, email string) (*Profile, error)

	// GetByEmail returns the dashboard projection for a profile
	GetByEmail(ctx context.Context, email string) (*MoverView, error)

	// UpdateByEmail applies a partial edit and returns the fresh projection.
	// The mirror sync it triggers is best effort and never fails the edit.
	UpdateByEmail(ctx context.Context, email string, upd Update) (*MoverView, error)

	// SetLogoURL stores a new logo URL for the profile
	SetLogoURL(ctx context.Context, email, logoURL string) (*MoverView, error)
}
