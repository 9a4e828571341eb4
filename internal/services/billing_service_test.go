package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/moverhub/backend/internal/config"
	"github.com/moverhub/backend/internal/domain/billing"
	"github.com/moverhub/backend/internal/domain/profile"
	"github.com/moverhub/backend/internal/pkg/errors"
	"github.com/moverhub/backend/internal/pkg/logger"
	"github.com/moverhub/backend/internal/testutil"
)

// fakeVerifier accepts any payload carrying the "valid" signature and hands
// back the canned event, mimicking a passing signature check without
// computing real HMACs.
func fakeVerifier(event *billing.Event) billing.EventVerifier {
	return func(payload []byte, signatureHeader string) (*billing.Event, error) {
		if signatureHeader != "valid" {
			return nil, fmt.Errorf("signature mismatch")
		}
		return event, nil
	}
}

func testStripeConfig() config.StripeConfig {
	return config.StripeConfig{
		StarterPriceID:  "price_starter",
		ProPriceID:      "price_pro",
		CheckoutSuccess: "https://app.example.com/dashboard",
		CheckoutCancel:  "https://app.example.com/pricing",
		PortalReturnURL: "https://app.example.com/dashboard",
	}
}

func seedProfile(repo *testutil.MockProfileRepository, customerID, subscriptionID string) *profile.Profile {
	p := &profile.Profile{
		Email:  "mover@example.com",
		Plan:   profile.PlanStarter,
		Status: profile.StatusPending,
	}
	if customerID != "" {
		p.StripeCustomerID = &customerID
	}
	if subscriptionID != "" {
		p.StripeSubscriptionID = &subscriptionID
	}
	if err := repo.Create(context.Background(), p); err != nil {
		panic(err)
	}
	return p
}

func TestBillingService_HandleEventBadSignature(t *testing.T) {
	repo := testutil.NewMockProfileRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	service := NewBillingService(repo, testutil.NewMockGateway(), fakeVerifier(nil), testStripeConfig(), log)

	seedProfile(repo, "cus_1", "")

	err := service.HandleEvent(context.Background(), []byte("{}"), "forged")
	if err == nil {
		t.Fatal("expected error for bad signature")
	}
	appErr, ok := errors.AsAppError(err)
	if !ok || appErr.Code != errors.ErrCodeSignature {
		t.Fatalf("error code = %v, want %s", err, errors.ErrCodeSignature)
	}
	if repo.Profiles["mover@example.com"].Status != profile.StatusPending {
		t.Error("profile mutated despite rejected signature")
	}
}

func TestBillingService_HandleCheckoutCompleted(t *testing.T) {
	repo := testutil.NewMockProfileRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})

	seedProfile(repo, "cus_1", "")

	event := &billing.Event{
		ID:         "evt_1",
		Type:       billing.EventCheckoutCompleted,
		CustomerID: "cus_1",
	}
	service := NewBillingService(repo, testutil.NewMockGateway(), fakeVerifier(event), testStripeConfig(), log)

	if err := service.HandleEvent(context.Background(), []byte("{}"), "valid"); err != nil {
		t.Fatalf("HandleEvent() error = %v", err)
	}
	if got := repo.Profiles["mover@example.com"].Status; got != profile.StatusActive {
		t.Errorf("status = %q, want %q", got, profile.StatusActive)
	}

	// Redelivery lands on the same state.
	if err := service.HandleEvent(context.Background(), []byte("{}"), "valid"); err != nil {
		t.Fatalf("redelivered HandleEvent() error = %v", err)
	}
	if got := repo.Profiles["mover@example.com"].Status; got != profile.StatusActive {
		t.Errorf("status after redelivery = %q, want %q", got, profile.StatusActive)
	}
}

func TestBillingService_HandleCheckoutCompletedUnknownCustomer(t *testing.T) {
	repo := testutil.NewMockProfileRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})

	seedProfile(repo, "cus_1", "")

	event := &billing.Event{
		ID:         "evt_2",
		Type:       billing.EventCheckoutCompleted,
		CustomerID: "cus_stranger",
	}
	service := NewBillingService(repo, testutil.NewMockGateway(), fakeVerifier(event), testStripeConfig(), log)

	if err := service.HandleEvent(context.Background(), []byte("{}"), "valid"); err != nil {
		t.Fatalf("expected unknown customer to be acknowledged, got %v", err)
	}
	if got := repo.Profiles["mover@example.com"].Status; got != profile.StatusPending {
		t.Errorf("status = %q, want untouched %q", got, profile.StatusPending)
	}
}

func TestBillingService_HandleSubscriptionUpdated(t *testing.T) {
	repo := testutil.NewMockProfileRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})

	seedProfile(repo, "cus_1", "")

	event := &billing.Event{
		ID:             "evt_3",
		Type:           billing.EventSubscriptionUpdated,
		CustomerID:     "cus_1",
		SubscriptionID: "sub_1",
		PeriodEndEpoch: 1700000000,
	}
	service := NewBillingService(repo, testutil.NewMockGateway(), fakeVerifier(event), testStripeConfig(), log)

	for i := 0; i < 2; i++ { // second pass simulates redelivery
		if err := service.HandleEvent(context.Background(), []byte("{}"), "valid"); err != nil {
			t.Fatalf("HandleEvent() pass %d error = %v", i+1, err)
		}
	}

	p := repo.Profiles["mover@example.com"]
	if p.StripeSubscriptionID == nil || *p.StripeSubscriptionID != "sub_1" {
		t.Errorf("subscription id = %v, want sub_1", p.StripeSubscriptionID)
	}
	if p.CurrentPeriodEnd == nil || *p.CurrentPeriodEnd != "2023-11-14T22:13:20Z" {
		t.Errorf("current period end = %v, want 2023-11-14T22:13:20Z", p.CurrentPeriodEnd)
	}
}

func TestBillingService_HandleUnknownEventType(t *testing.T) {
	repo := testutil.NewMockProfileRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})

	event := &billing.Event{ID: "evt_4", Type: "invoice.paid", CustomerID: "cus_1"}
	service := NewBillingService(repo, testutil.NewMockGateway(), fakeVerifier(event), testStripeConfig(), log)

	if err := service.HandleEvent(context.Background(), []byte("{}"), "valid"); err != nil {
		t.Fatalf("expected unknown event type to be acknowledged, got %v", err)
	}
}

func TestBillingService_RequestCancellation(t *testing.T) {
	repo := testutil.NewMockProfileRepository()
	gateway := testutil.NewMockGateway()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	service := NewBillingService(repo, gateway, fakeVerifier(nil), testStripeConfig(), log)

	seedProfile(repo, "cus_1", "sub_1")

	if err := service.RequestCancellation(context.Background(), "mover@example.com"); err != nil {
		t.Fatalf("RequestCancellation() error = %v", err)
	}
	if gateway.CancelCalls != 1 {
		t.Errorf("gateway cancel calls = %d, want 1", gateway.CancelCalls)
	}

	p := repo.Profiles["mover@example.com"]
	if p.Status != profile.StatusCancelling {
		t.Errorf("status = %q, want %q", p.Status, profile.StatusCancelling)
	}
	if p.CurrentPeriodEnd == nil || *p.CurrentPeriodEnd != "2023-11-14T22:13:20Z" {
		t.Errorf("current period end = %v, want refreshed from gateway", p.CurrentPeriodEnd)
	}
}

func TestBillingService_RequestCancellationWithoutSubscription(t *testing.T) {
	repo := testutil.NewMockProfileRepository()
	gateway := testutil.NewMockGateway()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	service := NewBillingService(repo, gateway, fakeVerifier(nil), testStripeConfig(), log)

	seedProfile(repo, "cus_1", "")

	err := service.RequestCancellation(context.Background(), "mover@example.com")
	if err == nil {
		t.Fatal("expected error when no subscription exists")
	}
	appErr, ok := errors.AsAppError(err)
	if !ok || appErr.Code != errors.ErrCodeBadRequest {
		t.Errorf("error = %v, want bad request", err)
	}
	if gateway.CancelCalls != 0 {
		t.Errorf("gateway cancel calls = %d, want 0", gateway.CancelCalls)
	}
}

func TestBillingService_PortalAndCheckoutURLs(t *testing.T) {
	repo := testutil.NewMockProfileRepository()
	gateway := testutil.NewMockGateway()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	service := NewBillingService(repo, gateway, fakeVerifier(nil), testStripeConfig(), log)

	seedProfile(repo, "cus_1", "")

	url, err := service.PortalURL(context.Background(), "mover@example.com")
	if err != nil {
		t.Fatalf("PortalURL() error = %v", err)
	}
	if url != gateway.PortalURL {
		t.Errorf("portal url = %q, want %q", url, gateway.PortalURL)
	}

	url, err = service.CheckoutURL(context.Background(), "mover@example.com")
	if err != nil {
		t.Fatalf("CheckoutURL() error = %v", err)
	}
	if url != gateway.CheckoutURL {
		t.Errorf("checkout url = %q, want %q", url, gateway.CheckoutURL)
	}
}
