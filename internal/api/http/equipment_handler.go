package http

import (
	"net/http"
	"strconv"

	"medrent-backend/internal/domain"
	"medrent-backend/internal/service"

	"github.com/go-playground/validator/v10"
)

type EquipmentHandler struct {
	equipmentSvc service.EquipmentService
	validate     *validator.Validate
}

func NewEquipmentHandler(equipmentSvc service.EquipmentService, validate *validator.Validate) *EquipmentHandler {
	return &EquipmentHandler{equipmentSvc: equipmentSvc, validate: validate}
}

type equipmentRequest struct {
	CategoryID       *int64   `json:"category_id"`
	Name             string   `json:"name" validate:"required"`
	Description      string   `json:"description"`
	Brand            string   `json:"brand"`
	Model            string   `json:"model"`
	YearManufactured *int32   `json:"year_manufactured" validate:"omitempty,min=1900"`
	Condition        string   `json:"condition" validate:"required,oneof=new excellent good fair"`
	DailyRateCents   int64    `json:"daily_rate_cents" validate:"required,gt=0"`
	WeeklyRateCents  *int64   `json:"weekly_rate_cents" validate:"omitempty,gt=0"`
	MonthlyRateCents *int64   `json:"monthly_rate_cents" validate:"omitempty,gt=0"`
	Latitude         *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude        *float64 `json:"longitude" validate:"omitempty,longitude"`
	City             string   `json:"city"`

	Specifications map[string]string `json:"specifications"`
}

func (r equipmentRequest) toDomain() *domain.Equipment {
	return &domain.Equipment{
		CategoryID:       r.CategoryID,
		Name:             r.Name,
		Description:      r.Description,
		Brand:            r.Brand,
		Model:            r.Model,
		YearManufactured: r.YearManufactured,
		Condition:        domain.EquipmentCondition(r.Condition),
		Specifications:   r.Specifications,
		DailyRateCents:   r.DailyRateCents,
		WeeklyRateCents:  r.WeeklyRateCents,
		MonthlyRateCents: r.MonthlyRateCents,
		Latitude:         r.Latitude,
		Longitude:        r.Longitude,
		City:             r.City,
	}
}

func (h *EquipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req equipmentRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, err)
		return
	}

	eq := req.toDomain()
	eq.SellerID = UserIDFromContext(r.Context())
	if err := h.equipmentSvc.AddEquipment(r.Context(), eq); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, eq)
}

type equipmentDetailResponse struct {
	*domain.Equipment
	Images []domain.EquipmentImage `json:"images"`
}

func (h *EquipmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	eq, images, err := h.equipmentSvc.GetEquipment(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, equipmentDetailResponse{Equipment: eq, Images: images})
}

func (h *EquipmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req equipmentRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, err)
		return
	}

	eq := req.toDomain()
	eq.ID = id
	if err := h.equipmentSvc.UpdateEquipment(r.Context(), UserIDFromContext(r.Context()), eq); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, eq)
}

type availabilityRequest struct {
	Available *bool `json:"available" validate:"required"`
}

func (h *EquipmentHandler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req availabilityRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, err)
		return
	}

	if err := h.equipmentSvc.SetAvailability(r.Context(), UserIDFromContext(r.Context()), id, *req.Available); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// Search lists the marketplace with optional filters from query params.
func (h *EquipmentHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.EquipmentFilter{
		Query:         q.Get("q"),
		Condition:     domain.EquipmentCondition(q.Get("condition")),
		City:          q.Get("city"),
		AvailableOnly: q.Get("available") != "false",
	}
	if v, err := strconv.ParseInt(q.Get("category_id"), 10, 64); err == nil && v > 0 {
		filter.CategoryID = &v
	}
	if v, err := strconv.ParseInt(q.Get("max_daily_rate_cents"), 10, 64); err == nil && v > 0 {
		filter.MaxDailyRateCents = v
	}

	page, pageSize := pagination(r)
	items, total, err := h.equipmentSvc.SearchEquipment(r.Context(), filter, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: items, Total: total, Page: page, PageSize: pageSize})
}

func (h *EquipmentHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	items, total, err := h.equipmentSvc.ListMyEquipment(r.Context(), UserIDFromContext(r.Context()), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: items, Total: total, Page: page, PageSize: pageSize})
}

func (h *EquipmentHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.equipmentSvc.ListCategories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}
