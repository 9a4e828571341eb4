package services

import (
	"context"

	"github.com/moverhub/backend/internal/config"
	"github.com/moverhub/backend/internal/domain/billing"
	"github.com/moverhub/backend/internal/domain/profile"
	"github.com/moverhub/backend/internal/pkg/errors"
	"github.com/moverhub/backend/internal/pkg/logger"
	"github.com/moverhub/backend/internal/pkg/metrics"
	"github.com/moverhub/backend/internal/pkg/utils"
)

// BillingService reconciles canonical subscription state with the payment
// gateway: it consumes verified webhook events and exposes the
// customer-facing checkout, portal and cancellation operations.
type BillingService struct {
	profileRepo profile.Repository
	gateway     billing.Gateway
	verify      billing.EventVerifier
	cfg         config.StripeConfig
	logger      *logger.Logger
}

// NewBillingService creates a new billing service
func NewBillingService(profileRepo profile.Repository, gateway billing.Gateway, verify billing.EventVerifier, cfg config.StripeConfig, log *logger.Logger) *BillingService {
	return &BillingService{
		profileRepo: profileRepo,
		gateway:     gateway,
		verify:      verify,
		cfg:         cfg,
		logger:      log,
	}
}

// HandleEvent verifies and applies a gateway webhook event. Unknown event
// types and events referencing unknown customers are acknowledged without
// side effects so the gateway stops redelivering them. Every transition is
// an absolute set, which keeps at-least-once redelivery harmless.
func (s *BillingService) HandleEvent(ctx context.Context, payload []byte, signatureHeader string) error {
	event, err := s.verify(payload, signatureHeader)
	if err != nil {
		metrics.RecordWebhookEvent("unknown", "rejected")
		s.logger.WithError(err).Warn("Webhook signature verification failed")
		return errors.SignatureError(err)
	}

	switch event.Type {
	case billing.EventCheckoutCompleted:
		err = s.applyCheckoutCompleted(ctx, event)
	case billing.EventSubscriptionUpdated:
		err = s.applySubscriptionUpdated(ctx, event)
	default:
		metrics.RecordWebhookEvent(event.Type, "ignored")
		s.logger.Debugf("Ignoring webhook event type %q", event.Type)
		return nil
	}

	if err != nil {
		metrics.RecordWebhookEvent(event.Type, "failed")
		return err
	}
	metrics.RecordWebhookEvent(event.Type, "applied")
	return nil
}

func (s *BillingService) applyCheckoutCompleted(ctx context.Context, event *billing.Event) error {
	p, err := s.lookupCustomer(ctx, event)
	if err != nil || p == nil {
		return err
	}

	p.Status = profile.StatusActive
	if err := s.profileRepo.Update(ctx, p); err != nil {
		s.logger.ErrorWithErr(err, "Failed to activate profile")
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"email":    p.Email,
		"customer": event.CustomerID,
	}).Info("Subscription activated")
	return nil
}

func (s *BillingService) applySubscriptionUpdated(ctx context.Context, event *billing.Event) error {
	p, err := s.lookupCustomer(ctx, event)
	if err != nil || p == nil {
		return err
	}

	if event.SubscriptionID != "" {
		p.StripeSubscriptionID = strPtr(event.SubscriptionID)
	}
	if event.PeriodEndEpoch > 0 {
		p.CurrentPeriodEnd = strPtr(utils.EpochToISO(event.PeriodEndEpoch))
	}

	if err := s.profileRepo.Update(ctx, p); err != nil {
		s.logger.ErrorWithErr(err, "Failed to record subscription update")
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"email":        p.Email,
		"subscription": event.SubscriptionID,
	}).Info("Subscription details updated")
	return nil
}

// lookupCustomer resolves the event's customer to a profile. A nil profile
// with nil error means the customer is unknown and the event should be
// acknowledged as a no-op.
func (s *BillingService) lookupCustomer(ctx context.Context, event *billing.Event) (*profile.Profile, error) {
	if event.CustomerID == "" {
		s.logger.Warnf("Webhook event %s carries no customer id", event.ID)
		return nil, nil
	}

	p, err := s.profileRepo.GetByStripeCustomerID(ctx, event.CustomerID)
	if err != nil {
		if errors.IsNotFound(err) {
			s.logger.Infof("Webhook event %s references unknown customer %s", event.ID, event.CustomerID)
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

// RequestCancellation schedules cancellation at the end of the current
// billing period and marks the profile as cancelling.
func (s *BillingService) RequestCancellation(ctx context.Context, email string) error {
	p, err := s.profileRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	if p.StripeSubscriptionID == nil || *p.StripeSubscriptionID == "" {
		return errors.BadRequest("No active subscription to cancel")
	}

	sub, err := s.gateway.CancelAtPeriodEnd(ctx, *p.StripeSubscriptionID)
	if err != nil {
		s.logger.ErrorWithErr(err, "Failed to schedule cancellation")
		return errors.GatewayError("Failed to schedule cancellation", err)
	}

	p.Status = profile.StatusCancelling
	p.StripeSubscriptionID = strPtr(sub.ID)
	if sub.CurrentPeriodEndEpoch > 0 {
		p.CurrentPeriodEnd = strPtr(utils.EpochToISO(sub.CurrentPeriodEndEpoch))
	}

	if err := s.profileRepo.Update(ctx, p); err != nil {
		s.logger.ErrorWithErr(err, "Failed to mark profile cancelling")
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"email":        email,
		"subscription": sub.ID,
	}).Info("Cancellation scheduled")
	return nil
}

// CheckoutURL creates a checkout session for the profile's plan and returns
// the hosted page URL.
func (s *BillingService) CheckoutURL(ctx context.Context, email string) (string, error) {
	p, err := s.profileRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if p.StripeCustomerID == nil || *p.StripeCustomerID == "" {
		return "", errors.BadRequest("Profile has no billing account")
	}

	session, err := s.gateway.CreateCheckoutSession(ctx, *p.StripeCustomerID, s.priceForPlan(p.Plan), s.cfg.CheckoutSuccess, s.cfg.CheckoutCancel)
	if err != nil {
		s.logger.ErrorWithErr(err, "Failed to create checkout session")
		return "", errors.GatewayError("Failed to create checkout session", err)
	}
	return session.URL, nil
}

// PortalURL creates a billing portal session for self-service subscription
// management and returns its URL.
func (s *BillingService) PortalURL(ctx context.Context, email string) (string, error) {
	p, err := s.profileRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if p.StripeCustomerID == nil || *p.StripeCustomerID == "" {
		return "", errors.BadRequest("Profile has no billing account")
	}

	url, err := s.gateway.CreatePortalSession(ctx, *p.StripeCustomerID, s.cfg.PortalReturnURL)
	if err != nil {
		s.logger.ErrorWithErr(err, "Failed to create portal session")
		return "", errors.GatewayError("Failed to create portal session", err)
	}
	return url, nil
}

func (s *BillingService) priceForPlan(plan string) string {
	switch plan {
	case profile.PlanPro, profile.PlanEnterprise:
		return s.cfg.ProPriceID
	default:
		return s.cfg.StarterPriceID
	}
}

func strPtr(s string) *string {
	return &s
}
