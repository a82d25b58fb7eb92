package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"campaign-desk/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the use case executing business logic and a logger for structured
// logging. Routes are registered on a chi.Router.
type Handler struct {
	svc    port.MarketingUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured under /api.
func NewHandler(svc port.MarketingUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	r.Use(h.requestID, h.logRequests, h.recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", h.handleHealth)
		r.Get("/dashboard/stats", h.handleDashboardStats)

		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", h.handleListCampaigns)
			r.Post("/", h.handleCreateCampaign)
			r.Get("/{id}", h.handleGetCampaign)
			r.Patch("/{id}", h.handleUpdateCampaign)
			r.Delete("/{id}", h.handleDeleteCampaign)
		})
		r.Route("/ads", func(r chi.Router) {
			r.Get("/", h.handleListAds)
			r.Post("/", h.handleCreateAd)
			r.Get("/{id}", h.handleGetAd)
			r.Patch("/{id}", h.handleUpdateAd)
			r.Delete("/{id}", h.handleDeleteAd)
		})
		r.Route("/social-accounts", func(r chi.Router) {
			r.Get("/", h.handleListSocialAccounts)
			r.Post("/", h.handleCreateSocialAccount)
			r.Get("/{id}", h.handleGetSocialAccount)
			r.Patch("/{id}", h.handleUpdateSocialAccount)
			r.Delete("/{id}", h.handleDeleteSocialAccount)
		})
		r.Route("/posts", func(r chi.Router) {
			r.Get("/", h.handleListPosts)
			r.Post("/", h.handleCreatePost)
			r.Get("/{id}", h.handleGetPost)
			r.Patch("/{id}", h.handleUpdatePost)
			r.Delete("/{id}", h.handleDeletePost)
		})

		r.Post("/ai/generate-ad", h.handleGenerateAd)
		r.Post("/ai/generate-campaign-name", h.handleGenerateCampaignName)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.writeError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		h.writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
