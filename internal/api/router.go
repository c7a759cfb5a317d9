package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/starford/journal/internal/index"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// sseHandler, if non-nil, is mounted at GET /events inside the auth group.
func NewRouter(idx index.FeedIndex, authEnabled bool, token string, sseHandler http.Handler) chi.Router {
	h := NewHandler(idx)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	r.Get("/recent", h.ListRecent)
	r.Get("/items/*", h.GetItem)
	r.Get("/search", h.Search)
	r.Get("/sections", h.Sections)

	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
