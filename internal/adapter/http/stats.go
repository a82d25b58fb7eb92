package httpadapter

import "net/http"

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, healthResponse{Status: "OK", Message: "AI Marketing Platform API is running"})
}

// handleDashboardStats returns the active campaign count and the formatted
// impression, click rate and spend totals across all campaigns.
func (h *Handler) handleDashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.DashboardStats(r.Context())
	if err != nil {
		h.fail(w, r, err, "", "Failed to fetch dashboard stats")
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}
