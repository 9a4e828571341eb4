package mirror

import "context"

// Store defines the interface for the tabular mirror store. Implementations
// talk to an external spreadsheet-like API; all failures are non-fatal to
// callers of the sync layer above.
type Store interface {
	// FindByEmail returns at most one record whose Email field equals email
	// exactly. A miss returns (nil, nil).
	FindByEmail(ctx context.Context, table, email string) (*Record, error)

	// Create inserts a new record and returns its ID
	Create(ctx context.Context, table string, fields Fields) (string, error)

	// Update overwrites the listed fields on an existing record. Fields not
	// listed keep their stored values (partial-update semantics).
	Update(ctx context.Context, table, id string, fields Fields) error
}
