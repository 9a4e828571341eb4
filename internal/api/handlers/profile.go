package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/moverhub/backend/internal/api/dto"
	"github.com/moverhub/backend/internal/domain/profile"
	"github.com/moverhub/backend/internal/domain/storage"
	"github.com/moverhub/backend/internal/pkg/errors"
	"github.com/moverhub/backend/internal/pkg/logger"
	"github.com/moverhub/backend/internal/pkg/utils"
	"github.com/moverhub/backend/internal/pkg/validator"
)

// maxLogoBytes caps logo uploads at 5 MiB
const maxLogoBytes = 5 << 20

// ProfileHandler handles mover profile API endpoints
type ProfileHandler struct {
	profiles  profile.Service
	storage   storage.Store
	logger    *logger.Logger
	validator *validator.Validator
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profiles profile.Service, store storage.Store, log *logger.Logger, val *validator.Validator) *ProfileHandler {
	return &ProfileHandler{
		profiles:  profiles,
		storage:   store,
		logger:    log,
		validator: val,
	}
}

// Get handles fetching a mover profile
// @Summary Get mover profile
// @Description Fetch the dashboard projection of a mover profile by email
// @Tags Movers
// @Produce json
// @Param email path string true "Profile email"
// @Success 200 {object} dto.MoverResponse "Mover profile"
// @Failure 404 {object} utils.ErrorResponse "Profile not found"
// @Router /movers/{email} [get]
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	p, err := h.profiles.GetProfile(r.Context(), email)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, moverResponse(p))
}

// Update handles partial profile edits
// @Summary Update mover profile
// @Description Apply a partial edit to a mover profile; absent fields keep their values
// @Tags Movers
// @Accept json
// @Produce json
// @Param email path string true "Profile email"
// @Param request body dto.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} profile.MoverView "Updated projection"
// @Failure 400 {object} utils.ErrorResponse "Invalid request"
// @Failure 404 {object} utils.ErrorResponse "Profile not found"
// @Router /movers/{email} [put]
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	var req dto.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrors := h.validator.Validate(req); validationErrors != nil {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrors))
		return
	}

	view, err := h.profiles.UpdateByEmail(r.Context(), email, req.ToUpdate())
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, view)
}

// UploadLogo handles multipart logo uploads
// @Summary Upload mover logo
// @Description Store a logo image and attach its public URL to the profile
// @Tags Movers
// @Accept multipart/form-data
// @Produce json
// @Param email path string true "Profile email"
// @Param logo formData file true "Logo image"
// @Success 200 {object} profile.MoverView "Updated projection"
// @Failure 400 {object} utils.ErrorResponse "Invalid upload"
// @Router /movers/{email}/logo [post]
func (h *ProfileHandler) UploadLogo(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	r.Body = http.MaxBytesReader(w, r.Body, maxLogoBytes)
	file, header, err := r.FormFile("logo")
	if err != nil {
		utils.WriteError(w, errors.BadRequest("Missing or oversized logo file"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.WriteError(w, errors.BadRequest("Failed to read logo file"))
		return
	}

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		utils.WriteError(w, errors.BadRequest("Logo must be an image"))
		return
	}

	objectPath := "logos/" + email + path.Ext(header.Filename)
	url, err := h.storage.Upload(r.Context(), objectPath, data, contentType)
	if err != nil {
		h.logger.ErrorWithErr(err, "Logo upload failed")
		utils.WriteError(w, errors.Internal("Failed to store logo", err))
		return
	}

	view, err := h.profiles.SetLogoURL(r.Context(), email, url)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, view)
}

func moverResponse(p *profile.Profile) dto.MoverResponse {
	var renewsOn interface{}
	if p.CurrentPeriodEnd != nil {
		renewsOn = *p.CurrentPeriodEnd
	}

	return dto.MoverResponse{
		Mover:       profile.Project(p),
		MemberSince: utils.FormatDateLabel(p.CreatedAt),
		RenewsOn:    utils.FormatDateLabel(renewsOn),
		Plan:        p.Plan,
		Status:      p.Status,
	}
}
