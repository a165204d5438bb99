package http

import (
	"net/http"

	"github.com/MKhiriev/teacher-dashboard/internal/logger"
)

func (h *Handler) getAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	analytics, err := h.services.AnalyticsService.Compute(ctx)
	if err != nil {
		log.Err(err).Msg("analytics computation failed")
		writeError(w, "Failed to retrieve analytics", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, analytics, "Analytics retrieved successfully", http.StatusOK)
}
