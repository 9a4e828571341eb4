package profile

import "context"

// Repository defines the interface for profile data access. Lookups by
// unique key have exactly-one-row semantics; misses surface as a not-found
// error distinguishable from generic failure.
type Repository interface {
	// Create inserts a new profile
	Create(ctx context.Context, p *Profile) error

	// GetByEmail retrieves a profile by email
	GetByEmail(ctx context.Context, email string) (*Profile, error)

	// GetByStripeCustomerID retrieves a profile by its gateway customer reference
	GetByStripeCustomerID(ctx context.Context, customerID string) (*Profile, error)

	// Update overwrites the stored profile and stamps UpdatedAt
	Update(ctx context.Context, p *Profile) error

	// List returns profiles ordered by email for paginated scans
	List(ctx context.Context, limit, offset int) ([]*Profile, error)
}
