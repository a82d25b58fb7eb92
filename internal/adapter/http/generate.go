package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"campaign-desk/internal/core/domain"
)

const (
	msgMissingAdFields   = "Missing required fields: product, audience, and goal are required"
	msgMissingNameFields = "Missing required fields: product and goal are required"
)

type campaignNameResponse struct {
	Name string `json:"name"`
}

// handleGenerateAd returns generated copy. Upstream failures surface as a
// plain 500 without provider details.
func (h *Handler) handleGenerateAd(w http.ResponseWriter, r *http.Request) {
	var req domain.AdCopyRequest
	if err := decodeBody(w, r, &req, "ad copy request", false); err != nil {
		h.writeError(w, http.StatusBadRequest, msgMissingAdFields)
		return
	}
	ad, err := h.svc.GenerateAdCopy(r.Context(), req)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			h.writeError(w, http.StatusBadRequest, msgMissingAdFields)
			return
		}
		h.logger.Error("generate ad error",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Any("error", err),
		)
		h.writeError(w, http.StatusInternalServerError, "Failed to generate ad copy")
		return
	}
	h.writeJSON(w, http.StatusOK, ad)
}

func (h *Handler) handleGenerateCampaignName(w http.ResponseWriter, r *http.Request) {
	var req domain.CampaignNameRequest
	if err := decodeBody(w, r, &req, "campaign name request", false); err != nil {
		h.writeError(w, http.StatusBadRequest, msgMissingNameFields)
		return
	}
	name, err := h.svc.GenerateCampaignName(r.Context(), req)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			h.writeError(w, http.StatusBadRequest, msgMissingNameFields)
			return
		}
		h.fail(w, r, err, "", "Failed to generate campaign name")
		return
	}
	h.writeJSON(w, http.StatusOK, campaignNameResponse{Name: name})
}
