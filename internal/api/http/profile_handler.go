package http

import (
	"net/http"

	"medrent-backend/internal/domain"
	"medrent-backend/internal/service"

	"github.com/go-playground/validator/v10"
)

type ProfileHandler struct {
	profileSvc service.ProfileService
	validate   *validator.Validate
}

func NewProfileHandler(profileSvc service.ProfileService, validate *validator.Validate) *ProfileHandler {
	return &ProfileHandler{profileSvc: profileSvc, validate: validate}
}

// Get returns the caller's profile, provisioning one if it does not exist
// yet. Keeps older accounts usable without a backfill.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profileSvc.EnsureProfile(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

type updateProfileRequest struct {
	FullName     string   `json:"full_name" validate:"required"`
	HospitalName string   `json:"hospital_name"`
	Role         string   `json:"role" validate:"required,oneof=buyer seller both"`
	Phone        string   `json:"phone"`
	Address      string   `json:"address"`
	City         string   `json:"city"`
	Latitude     *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude    *float64 `json:"longitude" validate:"omitempty,longitude"`
	AvatarURL    string   `json:"avatar_url" validate:"omitempty,url"`
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, err)
		return
	}

	userID := UserIDFromContext(r.Context())
	profile := &domain.Profile{
		ID:           userID,
		FullName:     req.FullName,
		HospitalName: req.HospitalName,
		Role:         domain.ProfileRole(req.Role),
		Phone:        req.Phone,
		Address:      req.Address,
		City:         req.City,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		AvatarURL:    req.AvatarURL,
	}
	if err := h.profileSvc.UpdateProfile(r.Context(), profile); err != nil {
		writeError(w, err)
		return
	}

	updated, err := h.profileSvc.GetProfile(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
