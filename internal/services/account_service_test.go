package services

import (
	"context"
	"errors"
	"testing"

	"github.com/moverhub/backend/internal/domain/billing"
	"github.com/moverhub/backend/internal/domain/profile"
	apperrors "github.com/moverhub/backend/internal/pkg/errors"
	"github.com/moverhub/backend/internal/pkg/logger"
	"github.com/moverhub/backend/internal/testutil"
)

func newAccountService(idp *testutil.MockIdentityProvider, repo *testutil.MockProfileRepository, gateway *testutil.MockGateway, store *testutil.MockMirrorStore) *AccountService {
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	mirrorSvc := NewMirrorService(store, testMirrorConfig(), log)
	return NewAccountService(idp, repo, gateway, mirrorSvc, testStripeConfig(), log)
}

func TestAccountService_Signup(t *testing.T) {
	repo := testutil.NewMockProfileRepository()
	gateway := testutil.NewMockGateway()
	store := testutil.NewMockMirrorStore()
	service := newAccountService(testutil.NewMockIdentityProvider(), repo, gateway, store)

	result, err := service.Signup(context.Background(), "mover@example.com", "hunter2!", "Janet Moss", "Swift Moves", "")
	if err != nil {
		t.Fatalf("Signup() error = %v", err)
	}

	if result.CheckoutURL != gateway.CheckoutURL {
		t.Errorf("checkout url = %q, want %q", result.CheckoutURL, gateway.CheckoutURL)
	}
	if result.Profile.Name != "Janet Moss" {
		t.Errorf("projected name = %q, want Janet Moss", result.Profile.Name)
	}

	p := repo.Profiles["mover@example.com"]
	if p == nil {
		t.Fatal("profile not persisted")
	}
	if p.Status != profile.StatusPending {
		t.Errorf("status = %q, want %q", p.Status, profile.StatusPending)
	}
	if p.Plan != profile.PlanStarter {
		t.Errorf("plan = %q, want %q", p.Plan, profile.PlanStarter)
	}
	if p.StripeCustomerID == nil || *p.StripeCustomerID != "cus_mock" {
		t.Errorf("stripe customer id = %v, want cus_mock", p.StripeCustomerID)
	}
	if store.CreateCalls != 1 {
		t.Errorf("mirror create calls = %d, want 1", store.CreateCalls)
	}
}

func TestAccountService_SignupUnknownPlan(t *testing.T) {
	repo := testutil.NewMockProfileRepository()
	service := newAccountService(testutil.NewMockIdentityProvider(), repo, testutil.NewMockGateway(), testutil.NewMockMirrorStore())

	_, err := service.Signup(context.Background(), "mover@example.com", "hunter2!", "", "", "Platinum")
	if err == nil {
		t.Fatal("expected error for unknown plan")
	}
	appErr, ok := apperrors.AsAppError(err)
	if !ok || appErr.Code != apperrors.ErrCodeBadRequest {
		t.Errorf("error = %v, want bad request", err)
	}
	if len(repo.Profiles) != 0 {
		t.Error("profile persisted despite invalid plan")
	}
}

func TestAccountService_SignupIdentityFailure(t *testing.T) {
	idp := testutil.NewMockIdentityProvider()
	idp.CreateError = errors.New("email already registered")
	repo := testutil.NewMockProfileRepository()
	service := newAccountService(idp, repo, testutil.NewMockGateway(), testutil.NewMockMirrorStore())

	_, err := service.Signup(context.Background(), "mover@example.com", "hunter2!", "", "", "")
	if err == nil {
		t.Fatal("expected error when identity provider fails")
	}
	appErr, ok := apperrors.AsAppError(err)
	if !ok || appErr.Code != apperrors.ErrCodeIdentity {
		t.Errorf("error = %v, want identity provider error", err)
	}
	if len(repo.Profiles) != 0 {
		t.Error("profile persisted despite identity failure")
	}
}

// Signup followed by the gateway's checkout-completed webhook walks the
// profile from pending to active.
func TestAccountService_SignupThenActivation(t *testing.T) {
	repo := testutil.NewMockProfileRepository()
	gateway := testutil.NewMockGateway()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	accounts := newAccountService(testutil.NewMockIdentityProvider(), repo, gateway, testutil.NewMockMirrorStore())

	if _, err := accounts.Signup(context.Background(), "mover@example.com", "hunter2!", "Janet Moss", "", profile.PlanPro); err != nil {
		t.Fatalf("Signup() error = %v", err)
	}
	if got := repo.Profiles["mover@example.com"].Status; got != profile.StatusPending {
		t.Fatalf("status after signup = %q, want %q", got, profile.StatusPending)
	}

	event := &billing.Event{
		ID:         "evt_activate",
		Type:       billing.EventCheckoutCompleted,
		CustomerID: "cus_mock",
	}
	billingSvc := NewBillingService(repo, gateway, fakeVerifier(event), testStripeConfig(), log)

	if err := billingSvc.HandleEvent(context.Background(), []byte("{}"), "valid"); err != nil {
		t.Fatalf("HandleEvent() error = %v", err)
	}
	if got := repo.Profiles["mover@example.com"].Status; got != profile.StatusActive {
		t.Errorf("status after checkout completion = %q, want %q", got, profile.StatusActive)
	}
}
