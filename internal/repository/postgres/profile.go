package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/moverhub/backend/internal/domain/profile"
	"github.com/moverhub/backend/internal/pkg/errors"
)

// ProfileRepository implements profile.Repository over database/sql. The $n
// placeholder style is understood by both the postgres and sqlite drivers.
type ProfileRepository struct {
	db *sql.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *sql.DB) profile.Repository {
	return &ProfileRepository{db: db}
}

const profileColumns = `
	id, email, full_name, business_name, phone, city, state, logo_url,
	starting_price, plan, status, stripe_customer_id, stripe_subscription_id,
	current_period_end, created_at, updated_at
`

// Create inserts a new profile
func (r *ProfileRepository) Create(ctx context.Context, p *profile.Profile) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Plan == "" {
		p.Plan = profile.PlanStarter
	}
	if p.Status == "" {
		p.Status = profile.StatusPending
	}
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	query := `
		INSERT INTO profiles (` + profileColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.Email, p.FullName, p.BusinessName, p.Phone, p.City, p.State,
		p.LogoURL, nullFloat(p.StartingPrice), p.Plan, p.Status,
		nullString(p.StripeCustomerID), nullString(p.StripeSubscriptionID),
		nullString(p.CurrentPeriodEnd), p.CreatedAt.Unix(), p.UpdatedAt.Unix(),
	)
	if err != nil {
		return errors.DatabaseError("Failed to create profile", err)
	}

	return nil
}

// GetByEmail retrieves a profile by email
func (r *ProfileRepository) GetByEmail(ctx context.Context, email string) (*profile.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE email = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

// GetByStripeCustomerID retrieves a profile by its gateway customer reference
func (r *ProfileRepository) GetByStripeCustomerID(ctx context.Context, customerID string) (*profile.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE stripe_customer_id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, customerID))
}

// Update overwrites the stored profile and stamps UpdatedAt
func (r *ProfileRepository) Update(ctx context.Context, p *profile.Profile) error {
	p.UpdatedAt = time.Now()

	query := `
		UPDATE profiles
		SET email = $1, full_name = $2, business_name = $3, phone = $4,
			city = $5, state = $6, logo_url = $7, starting_price = $8,
			plan = $9, status = $10, stripe_customer_id = $11,
			stripe_subscription_id = $12, current_period_end = $13,
			updated_at = $14
		WHERE id = $15
	`

	result, err := r.db.ExecContext(ctx, query,
		p.Email, p.FullName, p.BusinessName, p.Phone, p.City, p.State,
		p.LogoURL, nullFloat(p.StartingPrice), p.Plan, p.Status,
		nullString(p.StripeCustomerID), nullString(p.StripeSubscriptionID),
		nullString(p.CurrentPeriodEnd), p.UpdatedAt.Unix(), p.ID,
	)
	if err != nil {
		return errors.DatabaseError("Failed to update profile", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}
	if rows == 0 {
		return errors.NotFound("Profile")
	}

	return nil
}

// List returns profiles ordered by email for paginated scans
func (r *ProfileRepository) List(ctx context.Context, limit, offset int) ([]*profile.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY email LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list profiles", err)
	}
	defer rows.Close()

	var profiles []*profile.Profile
	for rows.Next() {
		p, err := scanProfile(rows.Scan)
		if err != nil {
			return nil, errors.DatabaseError("Failed to scan profile", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.DatabaseError("Failed to list profiles", err)
	}

	return profiles, nil
}

func (r *ProfileRepository) scanOne(row *sql.Row) (*profile.Profile, error) {
	p, err := scanProfile(row.Scan)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Profile")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get profile", err)
	}
	return p, nil
}

func scanProfile(scan func(...interface{}) error) (*profile.Profile, error) {
	var (
		p             profile.Profile
		startingPrice sql.NullFloat64
		customerID    sql.NullString
		subID         sql.NullString
		periodEnd     sql.NullString
		createdAt     int64
		updatedAt     int64
	)

	err := scan(
		&p.ID, &p.Email, &p.FullName, &p.BusinessName, &p.Phone, &p.City,
		&p.State, &p.LogoURL, &startingPrice, &p.Plan, &p.Status,
		&customerID, &subID, &periodEnd, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if startingPrice.Valid {
		p.StartingPrice = &startingPrice.Float64
	}
	if customerID.Valid {
		p.StripeCustomerID = &customerID.String
	}
	if subID.Valid {
		p.StripeSubscriptionID = &subID.String
	}
	if periodEnd.Valid {
		p.CurrentPeriodEnd = &periodEnd.String
	}
	p.CreatedAt = time.Unix(createdAt, 0)
	p.UpdatedAt = time.Unix(updatedAt, 0)

	return &p, nil
}

func nullString(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

func nullFloat(f *float64) interface{} {
	if f == nil {
		return nil
	}
	return *f
}
