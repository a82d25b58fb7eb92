package httpadapter

import (
	"net/http"

	"campaign-desk/internal/core/domain"
)

// Access and refresh tokens are write-only: domain.SocialAccount never
// serializes them, so none of these responses carry them.

// handleListSocialAccounts responds 200 with every account ordered by id.
func (h *Handler) handleListSocialAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.svc.ListSocialAccounts(r.Context())
	if err != nil {
		h.fail(w, r, err, "", "Failed to fetch social accounts")
		return
	}
	h.writeJSON(w, http.StatusOK, nonNil(accounts))
}

// handleGetSocialAccount responds 200 with the account, or 404 "Social account
// not found".
func (h *Handler) handleGetSocialAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writeError(w, http.StatusNotFound, "Social account not found")
		return
	}
	account, err := h.svc.GetSocialAccount(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "", "Failed to fetch social account")
		return
	}
	if account == nil {
		h.writeError(w, http.StatusNotFound, "Social account not found")
		return
	}
	h.writeJSON(w, http.StatusOK, account)
}

// handleCreateSocialAccount responds 201 with the stored account. Tokens
// cannot be set here. Validation failures are a 400 "Invalid social account
// data".
func (h *Handler) handleCreateSocialAccount(w http.ResponseWriter, r *http.Request) {
	var in domain.SocialAccountInput
	if err := decodeBody(w, r, &in, "social account", false); err != nil {
		h.fail(w, r, err, "Invalid social account data", "")
		return
	}
	account, err := h.svc.CreateSocialAccount(r.Context(), in)
	if err != nil {
		h.fail(w, r, err, "Invalid social account data", "Failed to create social account")
		return
	}
	h.writeJSON(w, http.StatusCreated, account)
}

// handleUpdateSocialAccount is the only way to set or clear tokens. It
// responds 200 with the merged account, 400 for an invalid patch and 404 for a
// malformed or unknown id.
func (h *Handler) handleUpdateSocialAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writeError(w, http.StatusNotFound, "Social account not found")
		return
	}
	var patch domain.SocialAccountPatch
	if err := decodeBody(w, r, &patch, "social account", true); err != nil {
		h.fail(w, r, err, "Invalid social account data", "")
		return
	}
	account, err := h.svc.UpdateSocialAccount(r.Context(), id, patch)
	if err != nil {
		h.fail(w, r, err, "Invalid social account data", "Failed to update social account")
		return
	}
	if account == nil {
		h.writeError(w, http.StatusNotFound, "Social account not found")
		return
	}
	h.writeJSON(w, http.StatusOK, account)
}

// handleDeleteSocialAccount responds 204, or 404 when there is no such
// account.
func (h *Handler) handleDeleteSocialAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writeError(w, http.StatusNotFound, "Social account not found")
		return
	}
	deleted, err := h.svc.DeleteSocialAccount(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "", "Failed to delete social account")
		return
	}
	if !deleted {
		h.writeError(w, http.StatusNotFound, "Social account not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
