package index

import "github.com/starford/journal/internal/models"

// FeedIndex defines the read side of the feed snapshot.
// Consumers should depend on this interface rather than the concrete *DB type
// to facilitate testing with mocks.
type FeedIndex interface {
	ListItems(section string, limit, offset int) ([]models.RecentItem, int, error)
	GetItem(url string) (*models.RecentItem, error)
	Search(query string, limit int) ([]SearchResult, error)
	FeedChecksum() (string, error)
}

// Verify *DB satisfies FeedIndex at compile time.
var _ FeedIndex = (*DB)(nil)
