package services

import (
	"context"

	"github.com/moverhub/backend/internal/config"
	"github.com/moverhub/backend/internal/domain/billing"
	"github.com/moverhub/backend/internal/domain/identity"
	"github.com/moverhub/backend/internal/domain/profile"
	"github.com/moverhub/backend/internal/pkg/errors"
	"github.com/moverhub/backend/internal/pkg/logger"
)

// SignupResult is what a completed create-account-and-subscribe returns:
// the freshly projected profile and the hosted checkout URL the caller
// must be redirected to.
type SignupResult struct {
	Profile     profile.MoverView
	CheckoutURL string
}

// AccountService orchestrates signup: identity account, canonical profile,
// gateway customer and checkout session, in that order. The profile is the
// first durable artifact; payment activation arrives later via webhook.
type AccountService struct {
	identity    identity.Provider
	profileRepo profile.Repository
	gateway     billing.Gateway
	mirror      *MirrorService
	cfg         config.StripeConfig
	logger      *logger.Logger
}

// NewAccountService creates a new account service
func NewAccountService(idp identity.Provider, profileRepo profile.Repository, gateway billing.Gateway, mirror *MirrorService, cfg config.StripeConfig, log *logger.Logger) *AccountService {
	return &AccountService{
		identity:    idp,
		profileRepo: profileRepo,
		gateway:     gateway,
		mirror:      mirror,
		cfg:         cfg,
		logger:      log,
	}
}

// Signup registers the identity account, inserts a pending profile and
// starts a subscription checkout. An identity failure leaves no profile
// row behind; a gateway failure leaves the pending profile in place so the
// signup can be retried through checkout alone.
func (s *AccountService) Signup(ctx context.Context, email, password, fullName, businessName, plan string) (*SignupResult, error) {
	if plan == "" {
		plan = profile.PlanStarter
	}
	if !profile.ValidPlan(plan) {
		return nil, errors.BadRequest("Unknown plan: " + plan)
	}

	accountID, err := s.identity.CreateAccount(ctx, email, password)
	if err != nil {
		s.logger.ErrorWithErr(err, "Identity account creation failed")
		return nil, errors.IdentityError(err)
	}

	p := &profile.Profile{
		Email:        email,
		FullName:     fullName,
		BusinessName: businessName,
		Plan:         plan,
		Status:       profile.StatusPending,
	}
	if err := s.profileRepo.Create(ctx, p); err != nil {
		s.logger.ErrorWithErr(err, "Failed to create profile")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"email":      email,
		"account_id": accountID,
		"plan":       plan,
	}).Info("Account created")

	customerID, err := s.gateway.CreateCustomer(ctx, email, fullName, map[string]string{
		"account_id": accountID,
	})
	if err != nil {
		s.logger.ErrorWithErr(err, "Failed to create gateway customer")
		return nil, errors.GatewayError("Failed to create billing account", err)
	}

	p.StripeCustomerID = &customerID
	if err := s.profileRepo.Update(ctx, p); err != nil {
		s.logger.ErrorWithErr(err, "Failed to store gateway customer reference")
		return nil, err
	}

	session, err := s.gateway.CreateCheckoutSession(ctx, customerID, s.priceForPlan(plan), s.cfg.CheckoutSuccess, s.cfg.CheckoutCancel)
	if err != nil {
		s.logger.ErrorWithErr(err, "Failed to create checkout session")
		return nil, errors.GatewayError("Failed to start checkout", err)
	}

	s.mirror.Sync(ctx, p)

	return &SignupResult{
		Profile:     profile.Project(p),
		CheckoutURL: session.URL,
	}, nil
}

func (s *AccountService) priceForPlan(plan string) string {
	switch plan {
	case profile.PlanPro, profile.PlanEnterprise:
		return s.cfg.ProPriceID
	default:
		return s.cfg.StarterPriceID
	}
}
