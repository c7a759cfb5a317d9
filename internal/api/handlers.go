package api

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/starford/journal/internal/apperr"
	"github.com/starford/journal/internal/index"
	"github.com/starford/journal/internal/models"
)

const maxLimit = 500

// Handler holds API route handlers.
type Handler struct {
	idx index.FeedIndex
}

// NewHandler creates a new Handler.
func NewHandler(idx index.FeedIndex) *Handler {
	return &Handler{idx: idx}
}

// itemURL extracts the item URL from the request (everything after /api/items).
// Encoded slashes are accepted, e.g. %2Freads%2Fbook.
func itemURL(r *http.Request) string {
	raw := chi.URLParam(r, "*")
	if raw == "" {
		return ""
	}
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		decoded = raw
	}
	if !strings.HasPrefix(decoded, "/") {
		decoded = "/" + decoded
	}
	return decoded
}

func queryInt(r *http.Request, key string) int {
	n, _ := strconv.Atoi(r.URL.Query().Get(key))
	return max(n, 0)
}

// queryLimit reads the limit parameter, capped at maxLimit. Zero means the
// index default.
func queryLimit(r *http.Request) int {
	return min(queryInt(r, "limit"), maxLimit)
}

// ListRecent handles GET /api/recent.
//
//	@Summary		List recent items, newest first
//	@Tags			items
//	@Produce		json
//	@Param			section	query		string	false	"Section filter"	Enums(reads, writes, thoughts)
//	@Param			limit	query		int		false	"Page size"
//	@Param			offset	query		int		false	"Page offset"
//	@Success		200		{object}	RecentListResponse
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/recent [get]
func (h *Handler) ListRecent(w http.ResponseWriter, r *http.Request) {
	section := r.URL.Query().Get("section")
	if section != "" {
		if _, ok := models.ParseSection(section); !ok {
			writeJSON(w, http.StatusBadRequest, errorBody("unknown section"))
			return
		}
	}

	items, total, err := h.idx.ListItems(section, queryLimit(r), queryInt(r, "offset"))
	if err != nil {
		slog.Error("list recent failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	if items == nil {
		items = []models.RecentItem{}
	}
	writeJSON(w, http.StatusOK, RecentListResponse{Items: items, Total: total})
}

// GetItem handles GET /api/items/*.
//
//	@Summary		Get a single item by URL
//	@Tags			items
//	@Produce		json
//	@Param			url	path		string	true	"Item URL"
//	@Success		200	{object}	RecentItem
//	@Failure		404	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/items/{url} [get]
func (h *Handler) GetItem(w http.ResponseWriter, r *http.Request) {
	u := itemURL(r)
	if u == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("url is required"))
		return
	}
	item, err := h.idx.GetItem(u)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("not found"))
		} else {
			slog.Error("get item failed", slog.String("url", u), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// Search handles GET /api/search.
//
//	@Summary		Full-text search across items
//	@Tags			search
//	@Produce		json
//	@Param			q		query		string	true	"Search query"
//	@Param			limit	query		int		false	"Max results"
//	@Success		200		{object}	SearchResponse
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/search [get]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("query parameter 'q' is required"))
		return
	}
	results, err := h.idx.Search(q, queryLimit(r))
	if err != nil {
		slog.Error("search failed", slog.String("query", q), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	if results == nil {
		results = []index.SearchResult{}
	}
	writeJSON(w, http.StatusOK, SearchResponse{Results: results})
}

// Sections handles GET /api/sections.
//
//	@Summary		List the known sections
//	@Tags			items
//	@Produce		json
//	@Success		200	{object}	SectionsResponse
//	@Security		BearerAuth
//	@Router			/sections [get]
func (h *Handler) Sections(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, SectionsResponse{Sections: models.Sections()})
}
