package httpadapter

import (
	"net/http"

	"campaign-desk/internal/core/domain"
)

// handleListAds lists all ads, narrowed by the optional ?campaignId filter.
// A campaignId that is not a positive integer is a 400 "Invalid campaignId".
func (h *Handler) handleListAds(w http.ResponseWriter, r *http.Request) {
	campaignID, ok := queryID(r, "campaignId")
	if !ok {
		h.writeError(w, http.StatusBadRequest, "Invalid campaignId")
		return
	}
	ads, err := h.svc.ListAds(r.Context(), campaignID)
	if err != nil {
		h.fail(w, r, err, "", "Failed to fetch ads")
		return
	}
	h.writeJSON(w, http.StatusOK, nonNil(ads))
}

// handleGetAd responds 200 with the ad, or 404 "Ad not found".
func (h *Handler) handleGetAd(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writeError(w, http.StatusNotFound, "Ad not found")
		return
	}
	ad, err := h.svc.GetAd(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "", "Failed to fetch ad")
		return
	}
	if ad == nil {
		h.writeError(w, http.StatusNotFound, "Ad not found")
		return
	}
	h.writeJSON(w, http.StatusOK, ad)
}

// handleCreateAd responds 201 with the stored ad. Performance always starts
// empty. Validation failures are a 400 "Invalid ad data".
func (h *Handler) handleCreateAd(w http.ResponseWriter, r *http.Request) {
	var in domain.AdInput
	if err := decodeBody(w, r, &in, "ad", false); err != nil {
		h.fail(w, r, err, "Invalid ad data", "")
		return
	}
	ad, err := h.svc.CreateAd(r.Context(), in)
	if err != nil {
		h.fail(w, r, err, "Invalid ad data", "Failed to create ad")
		return
	}
	h.writeJSON(w, http.StatusCreated, ad)
}

// handleUpdateAd responds 200 with the merged ad, 400 for an invalid patch and
// 404 for a malformed or unknown id.
func (h *Handler) handleUpdateAd(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writeError(w, http.StatusNotFound, "Ad not found")
		return
	}
	var patch domain.AdPatch
	if err := decodeBody(w, r, &patch, "ad", true); err != nil {
		h.fail(w, r, err, "Invalid ad data", "")
		return
	}
	ad, err := h.svc.UpdateAd(r.Context(), id, patch)
	if err != nil {
		h.fail(w, r, err, "Invalid ad data", "Failed to update ad")
		return
	}
	if ad == nil {
		h.writeError(w, http.StatusNotFound, "Ad not found")
		return
	}
	h.writeJSON(w, http.StatusOK, ad)
}

// handleDeleteAd responds 204, or 404 when there is no such ad.
func (h *Handler) handleDeleteAd(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writeError(w, http.StatusNotFound, "Ad not found")
		return
	}
	deleted, err := h.svc.DeleteAd(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "", "Failed to delete ad")
		return
	}
	if !deleted {
		h.writeError(w, http.StatusNotFound, "Ad not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
