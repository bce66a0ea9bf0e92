package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/starford/jyotish/internal/profileservice"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// sseHandler, if non-nil, is mounted at GET /events inside the auth group.
func NewRouter(svc *profileservice.Service, authEnabled bool, token string, sseHandler http.Handler) chi.Router {
	h := NewHandler(svc)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	// Chart computations.
	r.Post("/charts/natal", h.NatalChart)
	r.Post("/charts/varga", h.VargaChart)
	r.Post("/charts/dashas", h.Dashas)
	r.Post("/charts/ashtakavarga", h.Ashtakavarga)
	r.Post("/charts/shadbala", h.Shadbala)
	r.Post("/charts/yogas", h.Yogas)
	r.Post("/charts/varshaphala", h.Varshaphala)
	r.Post("/compatibility", h.Compatibility)

	// Profile CRUD.
	r.Get("/profiles", h.ListProfiles)
	r.Post("/profiles", h.CreateProfile)
	r.Get("/profiles/*", h.GetProfile)
	r.Put("/profiles/*", h.UpdateProfile)
	r.Delete("/profiles/*", h.DeleteProfile)

	// Search.
	r.Get("/search", h.Search)

	// SSE endpoint (protected by same auth middleware).
	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
