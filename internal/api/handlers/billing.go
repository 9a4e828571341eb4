package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/moverhub/backend/internal/api/dto"
	"github.com/moverhub/backend/internal/pkg/errors"
	"github.com/moverhub/backend/internal/pkg/logger"
	"github.com/moverhub/backend/internal/pkg/utils"
	"github.com/moverhub/backend/internal/pkg/validator"
	"github.com/moverhub/backend/internal/services"
)

// BillingHandler handles billing and subscription API endpoints
type BillingHandler struct {
	billing   *services.BillingService
	logger    *logger.Logger
	validator *validator.Validator
}

// NewBillingHandler creates a new BillingHandler
func NewBillingHandler(billing *services.BillingService, log *logger.Logger, val *validator.Validator) *BillingHandler {
	return &BillingHandler{
		billing:   billing,
		logger:    log,
		validator: val,
	}
}

// Portal handles billing portal session requests
// @Summary Open billing portal
// @Description Create a billing portal session for subscription self-service
// @Tags Billing
// @Accept json
// @Produce json
// @Param request body dto.BillingSessionRequest true "Profile email"
// @Success 200 {object} dto.BillingSessionResponse "Portal URL"
// @Failure 400 {object} utils.ErrorResponse "Invalid request"
// @Failure 502 {object} utils.ErrorResponse "Gateway failure"
// @Router /billing/portal [post]
func (h *BillingHandler) Portal(w http.ResponseWriter, r *http.Request) {
	var req dto.BillingSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}
	if validationErrors := h.validator.Validate(req); validationErrors != nil {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrors))
		return
	}

	url, err := h.billing.PortalURL(r.Context(), req.Email)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, dto.BillingSessionResponse{URL: url})
}

// Checkout handles checkout session requests
// @Summary Start subscription checkout
// @Description Create a checkout session for the profile's plan
// @Tags Billing
// @Accept json
// @Produce json
// @Param request body dto.BillingSessionRequest true "Profile email"
// @Success 200 {object} dto.BillingSessionResponse "Checkout URL"
// @Failure 400 {object} utils.ErrorResponse "Invalid request"
// @Failure 502 {object} utils.ErrorResponse "Gateway failure"
// @Router /billing/checkout [post]
func (h *BillingHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req dto.BillingSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}
	if validationErrors := h.validator.Validate(req); validationErrors != nil {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrors))
		return
	}

	url, err := h.billing.CheckoutURL(r.Context(), req.Email)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, dto.BillingSessionResponse{URL: url})
}

// Cancel handles subscription cancellation requests
// @Summary Cancel subscription
// @Description Schedule cancellation at the end of the current billing period
// @Tags Billing
// @Accept json
// @Produce json
// @Param request body dto.CancelSubscriptionRequest true "Profile email"
// @Success 200 {object} map[string]string "Cancellation scheduled"
// @Failure 400 {object} utils.ErrorResponse "No active subscription"
// @Failure 502 {object} utils.ErrorResponse "Gateway failure"
// @Router /billing/cancel [post]
func (h *BillingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	var req dto.CancelSubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}
	if validationErrors := h.validator.Validate(req); validationErrors != nil {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrors))
		return
	}

	if err := h.billing.RequestCancellation(r.Context(), req.Email); err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Cancellation scheduled for the end of the billing period", nil)
}
