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

// AccountHandler handles signup requests
type AccountHandler struct {
	accounts  *services.AccountService
	logger    *logger.Logger
	validator *validator.Validator
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(accounts *services.AccountService, log *logger.Logger, val *validator.Validator) *AccountHandler {
	return &AccountHandler{
		accounts:  accounts,
		logger:    log,
		validator: val,
	}
}

// Create handles account signup
// @Summary Create account
// @Description Register a mover account and start subscription checkout
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body dto.CreateAccountRequest true "Signup details"
// @Success 201 {object} dto.CreateAccountResponse "Account created"
// @Failure 400 {object} utils.ErrorResponse "Invalid request"
// @Failure 502 {object} utils.ErrorResponse "Upstream failure"
// @Router /accounts [post]
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrors := h.validator.Validate(req); validationErrors != nil {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrors))
		return
	}

	result, err := h.accounts.Signup(r.Context(), req.Email, req.Password, req.FullName, req.BusinessName, req.Plan)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, dto.CreateAccountResponse{
		Profile:     result.Profile,
		CheckoutURL: result.CheckoutURL,
	})
}
