package httpadapter

import (
	"net/http"

	"campaign-desk/internal/core/domain"
)

// handleListCampaigns responds 200 with every campaign ordered by id, or []
// when there are none. A store failure is a 500 "Failed to fetch campaigns".
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.svc.ListCampaigns(r.Context())
	if err != nil {
		h.fail(w, r, err, "", "Failed to fetch campaigns")
		return
	}
	h.writeJSON(w, http.StatusOK, nonNil(campaigns))
}

// handleGetCampaign responds 200 with the campaign. A malformed or unknown id
// is a 404 "Campaign not found".
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writeError(w, http.StatusNotFound, "Campaign not found")
		return
	}
	campaign, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "", "Failed to fetch campaign")
		return
	}
	if campaign == nil {
		h.writeError(w, http.StatusNotFound, "Campaign not found")
		return
	}
	h.writeJSON(w, http.StatusOK, campaign)
}

// handleCreateCampaign responds 201 with the stored campaign, including its
// assigned id and zeroed counters. A body that fails decoding or validation is
// a 400 "Invalid campaign data" listing the offending fields.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var in domain.CampaignInput
	if err := decodeBody(w, r, &in, "campaign", false); err != nil {
		h.fail(w, r, err, "Invalid campaign data", "")
		return
	}
	campaign, err := h.svc.CreateCampaign(r.Context(), in)
	if err != nil {
		h.fail(w, r, err, "Invalid campaign data", "Failed to create campaign")
		return
	}
	h.writeJSON(w, http.StatusCreated, campaign)
}

// handleUpdateCampaign merges the supplied fields and responds 200 with the
// result. Unknown keys and invalid values are a 400; a malformed or unknown id
// is a 404.
func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writeError(w, http.StatusNotFound, "Campaign not found")
		return
	}
	var patch domain.CampaignPatch
	if err := decodeBody(w, r, &patch, "campaign", true); err != nil {
		h.fail(w, r, err, "Invalid campaign data", "")
		return
	}
	campaign, err := h.svc.UpdateCampaign(r.Context(), id, patch)
	if err != nil {
		h.fail(w, r, err, "Invalid campaign data", "Failed to update campaign")
		return
	}
	if campaign == nil {
		h.writeError(w, http.StatusNotFound, "Campaign not found")
		return
	}
	h.writeJSON(w, http.StatusOK, campaign)
}

// handleDeleteCampaign responds 204 with no body, or 404 when there is no
// such campaign.
func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writeError(w, http.StatusNotFound, "Campaign not found")
		return
	}
	deleted, err := h.svc.DeleteCampaign(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "", "Failed to delete campaign")
		return
	}
	if !deleted {
		h.writeError(w, http.StatusNotFound, "Campaign not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
