//go:build !sqlite_fts5

package index

import (
	"database/sql"
	"fmt"

	"github.com/starford/journal/internal/models"
)

func initFTS(_ *sql.DB) error {
	// FTS5 not available; search uses LIKE over the items table.
	return nil
}

func ftsReset(_ *sql.Tx) error { return nil }

func ftsInsert(_ *sql.Tx, _ int, _ models.RecentItem) error { return nil }

// Search performs a LIKE-based search (fallback when FTS5 is not compiled in).
func (db *DB) Search(query string, limit int) ([]SearchResult, error) {
	if limit <= 0 {
		limit = 20
	}
	like := "%" + query + "%"
	rows, err := db.conn.Query(`
		SELECT url, section, title, substr(description, 1, 200)
		FROM items
		WHERE title LIKE ? OR description LIKE ? OR sub_section LIKE ?
		ORDER BY position
		LIMIT ?
	`, like, like, like, limit)
	if err != nil {
		return nil, fmt.Errorf("index: search: %w", err)
	}
	defer rows.Close()

	out := []SearchResult{}
	for rows.Next() {
		var r SearchResult
		if err := rows.Scan(&r.URL, &r.Section, &r.Title, &r.Snippet); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
