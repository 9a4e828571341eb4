package handlers

import (
	"io"
	"net/http"

	"github.com/moverhub/backend/internal/pkg/errors"
	"github.com/moverhub/backend/internal/pkg/logger"
	"github.com/moverhub/backend/internal/pkg/utils"
	"github.com/moverhub/backend/internal/services"
)

// maxWebhookBytes caps webhook payloads at 64 KiB, matching the size of the
// events the gateway actually sends
const maxWebhookBytes = 64 << 10

// WebhookHandler receives payment gateway webhook deliveries
type WebhookHandler struct {
	billing *services.BillingService
	logger  *logger.Logger
}

// NewWebhookHandler creates a new WebhookHandler
func NewWebhookHandler(billing *services.BillingService, log *logger.Logger) *WebhookHandler {
	return &WebhookHandler{
		billing: billing,
		logger:  log,
	}
}

// Handle verifies and applies a webhook delivery. The raw body is required
// for signature verification, so nothing may decode it before this point.
// @Summary Receive billing webhook
// @Description Verify and apply a payment gateway event
// @Tags Billing
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Event processed"
// @Failure 400 {object} utils.ErrorResponse "Invalid signature or payload"
// @Router /billing/webhook [post]
func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBytes))
	if err != nil {
		utils.WriteError(w, errors.BadRequest("Failed to read request body"))
		return
	}

	if err := h.billing.HandleEvent(r.Context(), payload, r.Header.Get("Stripe-Signature")); err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, map[string]string{"received": "true"})
}
