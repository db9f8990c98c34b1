package http

import (
	"net/http"

	"medrent-backend/internal/service"
)

type DashboardHandler struct {
	dashboardSvc service.DashboardService
	mapSvc       service.MapService
}

func NewDashboardHandler(dashboardSvc service.DashboardService, mapSvc service.MapService) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc, mapSvc: mapSvc}
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardSvc.GetStats(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// MapMarkers returns available-listing pins plus the caller's active rental
// delivery pins for the map widget.
func (h *DashboardHandler) MapMarkers(w http.ResponseWriter, r *http.Request) {
	markers, err := h.mapSvc.GetMarkers(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, markers)
}
