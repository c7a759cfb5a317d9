package api

import (
	"github.com/starford/journal/internal/index"
	"github.com/starford/journal/internal/models"
)

// RecentItem is the item response type (aliased from the domain layer).
type RecentItem = models.RecentItem

// RecentListResponse wraps paginated item listings.
type RecentListResponse struct {
	Items []RecentItem `json:"items" validate:"required"`
	Total int          `json:"total" example:"42" validate:"required"`
}

// SearchResponse wraps search results.
type SearchResponse struct {
	Results []index.SearchResult `json:"results" validate:"required"`
}

// SectionsResponse lists the section enumeration.
type SectionsResponse struct {
	Sections []models.Section `json:"sections" validate:"required"`
}
