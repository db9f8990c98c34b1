package http

import (
	"context"
	"net/http"

	"medrent-backend/internal/domain"
	"medrent-backend/internal/service"

	"github.com/go-playground/validator/v10"
)

type RentalHandler struct {
	rentalSvc service.RentalService
	validate  *validator.Validate
}

func NewRentalHandler(rentalSvc service.RentalService, validate *validator.Validate) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc, validate: validate}
}

type createRentalRequest struct {
	EquipmentID       int64    `json:"equipment_id" validate:"required,gt=0"`
	StartDate         string   `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate           string   `json:"end_date" validate:"required,datetime=2006-01-02"`
	DeliveryAddress   string   `json:"delivery_address"`
	DeliveryLatitude  *float64 `json:"delivery_latitude" validate:"omitempty,latitude"`
	DeliveryLongitude *float64 `json:"delivery_longitude" validate:"omitempty,longitude"`
	Notes             string   `json:"notes"`
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRentalRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, err)
		return
	}

	rental, err := h.rentalSvc.CreateRentalRequest(r.Context(), UserIDFromContext(r.Context()), service.RentalRequest{
		EquipmentID:       req.EquipmentID,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		DeliveryAddress:   req.DeliveryAddress,
		DeliveryLatitude:  req.DeliveryLatitude,
		DeliveryLongitude: req.DeliveryLongitude,
		Notes:             req.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rental)
}

// transition runs one lifecycle action on a rental. The service decides
// whether the caller's role permits the move.
func (h *RentalHandler) transition(w http.ResponseWriter, r *http.Request,
	fn func(ctx context.Context, actorID string, rentalID int64) (*domain.Rental, error)) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	rental, err := fn(r.Context(), UserIDFromContext(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.rentalSvc.ApproveRentalRequest)
}

func (h *RentalHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.rentalSvc.RejectRentalRequest)
}

func (h *RentalHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.rentalSvc.CancelRental)
}

func (h *RentalHandler) MarkDelivered(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.rentalSvc.MarkDelivered)
}

func (h *RentalHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.rentalSvc.CompleteRental)
}

func (h *RentalHandler) ListRentals(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	status := domain.RentalStatus(r.URL.Query().Get("status"))
	items, total, err := h.rentalSvc.ListRentals(r.Context(), UserIDFromContext(r.Context()), status, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: items, Total: total, Page: page, PageSize: pageSize})
}

func (h *RentalHandler) ListLendings(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	status := domain.RentalStatus(r.URL.Query().Get("status"))
	items, total, err := h.rentalSvc.ListLendings(r.Context(), UserIDFromContext(r.Context()), status, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: items, Total: total, Page: page, PageSize: pageSize})
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	rental, err := h.rentalSvc.GetRental(r.Context(), UserIDFromContext(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}
