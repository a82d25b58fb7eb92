package httpadapter

import (
	"net/http"

	"campaign-desk/internal/core/domain"
)

// handleListPosts lists all posts, narrowed by the optional ?adId filter. An
// adId that is not a positive integer is a 400 "Invalid adId".
func (h *Handler) handleListPosts(w http.ResponseWriter, r *http.Request) {
	adID, ok := queryID(r, "adId")
	if !ok {
		h.writeError(w, http.StatusBadRequest, "Invalid adId")
		return
	}
	posts, err := h.svc.ListPosts(r.Context(), adID)
	if err != nil {
		h.fail(w, r, err, "", "Failed to fetch posts")
		return
	}
	h.writeJSON(w, http.StatusOK, nonNil(posts))
}

// handleGetPost responds 200 with the post, or 404 "Post not found".
func (h *Handler) handleGetPost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writeError(w, http.StatusNotFound, "Post not found")
		return
	}
	post, err := h.svc.GetPost(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "", "Failed to fetch post")
		return
	}
	if post == nil {
		h.writeError(w, http.StatusNotFound, "Post not found")
		return
	}
	h.writeJSON(w, http.StatusOK, post)
}

// handleCreatePost responds 201 with the stored post. Status defaults to
// draft. Validation failures are a 400 "Invalid post data".
func (h *Handler) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var in domain.PostInput
	if err := decodeBody(w, r, &in, "post", false); err != nil {
		h.fail(w, r, err, "Invalid post data", "")
		return
	}
	post, err := h.svc.CreatePost(r.Context(), in)
	if err != nil {
		h.fail(w, r, err, "Invalid post data", "Failed to create post")
		return
	}
	h.writeJSON(w, http.StatusCreated, post)
}

// handleUpdatePost applies a partial update and responds 200. publishedAt is
// not a client field and is rejected like any other unknown key, as a 400. A
// malformed or unknown id is a 404.
func (h *Handler) handleUpdatePost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writeError(w, http.StatusNotFound, "Post not found")
		return
	}
	var patch domain.PostPatch
	if err := decodeBody(w, r, &patch, "post", true); err != nil {
		h.fail(w, r, err, "Invalid post data", "")
		return
	}
	post, err := h.svc.UpdatePost(r.Context(), id, patch)
	if err != nil {
		h.fail(w, r, err, "Invalid post data", "Failed to update post")
		return
	}
	if post == nil {
		h.writeError(w, http.StatusNotFound, "Post not found")
		return
	}
	h.writeJSON(w, http.StatusOK, post)
}

// handleDeletePost responds 204, or 404 when there is no such post.
func (h *Handler) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writeError(w, http.StatusNotFound, "Post not found")
		return
	}
	deleted, err := h.svc.DeletePost(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "", "Failed to delete post")
		return
	}
	if !deleted {
		h.writeError(w, http.StatusNotFound, "Post not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
