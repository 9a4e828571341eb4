package postgres

import (
	"context"
	"testing"

	"github.com/moverhub/backend/internal/domain/profile"
	"github.com/moverhub/backend/internal/pkg/errors"
	"github.com/moverhub/backend/internal/testutil"
)

func TestProfileRepository_CreateAndGetByEmail(t *testing.T) {
	d := testutil.NewTestDB(t)
	repo := NewProfileRepository(d)
	ctx := context.Background()

	price := 120.0
	p := &profile.Profile{
		Email:         "a@b.com",
		FullName:      "Jordan Reyes",
		BusinessName:  "Reyes Moving Co",
		Phone:         "+15551230000",
		City:          "Austin",
		State:         "TX",
		StartingPrice: &price,
	}

	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if p.ID == "" {
		t.Error("Create() did not assign an ID")
	}
	if p.Status != profile.StatusPending {
		t.Errorf("Create() status = %q, want default %q", p.Status, profile.StatusPending)
	}
	if p.Plan != profile.PlanStarter {
		t.Errorf("Create() plan = %q, want default %q", p.Plan, profile.PlanStarter)
	}

	got, err := repo.GetByEmail(ctx, "a@b.com")
	if err != nil {
		t.Fatalf("GetByEmail() error = %v", err)
	}
	if got.FullName != p.FullName || got.City != p.City {
		t.Errorf("GetByEmail() = %+v, want fields of %+v", got, p)
	}
	if got.StartingPrice == nil || *got.StartingPrice != 120.0 {
		t.Errorf("GetByEmail() startingPrice = %v, want 120", got.StartingPrice)
	}
	if got.StripeCustomerID != nil {
		t.Errorf("GetByEmail() stripeCustomerID = %v, want nil", got.StripeCustomerID)
	}
}

func TestProfileRepository_GetByEmailNotFound(t *testing.T) {
	d := testutil.NewTestDB(t)
	repo := NewProfileRepository(d)

	_, err := repo.GetByEmail(context.Background(), "missing@b.com")
	if err == nil {
		t.Fatal("GetByEmail() expected error for missing profile")
	}
	appErr, ok := err.(*errors.AppError)
	if !ok || appErr.Code != errors.ErrCodeNotFound {
		t.Errorf("GetByEmail() error = %v, want NOT_FOUND AppError", err)
	}
}

func TestProfileRepository_GetByStripeCustomerID(t *testing.T) {
	d := testutil.NewTestDB(t)
	repo := NewProfileRepository(d)
	ctx := context.Background()

	customerID := "cus_123"
	p := &profile.Profile{Email: "a@b.com", StripeCustomerID: &customerID}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := repo.GetByStripeCustomerID(ctx, "cus_123")
	if err != nil {
		t.Fatalf("GetByStripeCustomerID() error = %v", err)
	}
	if got.Email != "a@b.com" {
		t.Errorf("GetByStripeCustomerID() email = %q, want %q", got.Email, "a@b.com")
	}

	if _, err := repo.GetByStripeCustomerID(ctx, "cus_unknown"); err == nil {
		t.Error("GetByStripeCustomerID() expected error for unknown customer")
	}
}

func TestProfileRepository_Update(t *testing.T) {
	d := testutil.NewTestDB(t)
	repo := NewProfileRepository(d)
	ctx := context.Background()

	p := &profile.Profile{Email: "a@b.com"}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	subID := "sub_123"
	periodEnd := "2025-12-01T00:00:00Z"
	p.Status = profile.StatusActive
	p.StripeSubscriptionID = &subID
	p.CurrentPeriodEnd = &periodEnd
	p.City = "Dallas"

	if err := repo.Update(ctx, p); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, err := repo.GetByEmail(ctx, "a@b.com")
	if err != nil {
		t.Fatalf("GetByEmail() error = %v", err)
	}
	if got.Status != profile.StatusActive {
		t.Errorf("Update() status = %q, want %q", got.Status, profile.StatusActive)
	}
	if got.StripeSubscriptionID == nil || *got.StripeSubscriptionID != subID {
		t.Errorf("Update() subscriptionID = %v, want %q", got.StripeSubscriptionID, subID)
	}
	if got.CurrentPeriodEnd == nil || *got.CurrentPeriodEnd != periodEnd {
		t.Errorf("Update() currentPeriodEnd = %v, want %q", got.CurrentPeriodEnd, periodEnd)
	}
	if got.City != "Dallas" {
		t.Errorf("Update() city = %q, want %q", got.City, "Dallas")
	}
	if got.UpdatedAt.IsZero() {
		t.Error("Update() did not stamp UpdatedAt")
	}
}

func TestProfileRepository_UpdateMissingProfile(t *testing.T) {
	d := testutil.NewTestDB(t)
	repo := NewProfileRepository(d)

	p := &profile.Profile{ID: "prof_missing", Email: "ghost@b.com"}
	err := repo.Update(context.Background(), p)
	if err == nil {
		t.Fatal("Update() expected error for missing profile")
	}
	appErr, ok := err.(*errors.AppError)
	if !ok || appErr.Code != errors.ErrCodeNotFound {
		t.Errorf("Update() error = %v, want NOT_FOUND AppError", err)
	}
}

func TestProfileRepository_DuplicateEmail(t *testing.T) {
	d := testutil.NewTestDB(t)
	repo := NewProfileRepository(d)
	ctx := context.Background()

	if err := repo.Create(ctx, &profile.Profile{Email: "a@b.com"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := repo.Create(ctx, &profile.Profile{Email: "a@b.com"}); err == nil {
		t.Error("Create() expected unique-constraint error for duplicate email")
	}
}
