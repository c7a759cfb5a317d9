//go:build sqlite_fts5

package index

import (
	"database/sql"
	"fmt"

	"github.com/starford/journal/internal/models"
)

func initFTS(conn *sql.DB) error {
	_, err := conn.Exec(`
		CREATE VIRTUAL TABLE IF NOT EXISTS items_fts USING fts5(
			position UNINDEXED,
			title,
			description,
			sub_section,
			tokenize = 'unicode61 remove_diacritics 2'
		);
	`)
	return err
}

func ftsReset(tx *sql.Tx) error {
	if _, err := tx.Exec(`DELETE FROM items_fts`); err != nil {
		return fmt.Errorf("index: reset fts: %w", err)
	}
	return nil
}

func ftsInsert(tx *sql.Tx, position int, it models.RecentItem) error {
	_, err := tx.Exec(`INSERT INTO items_fts (position, title, description, sub_section) VALUES (?, ?, ?, ?)`,
		position, it.Title, it.Description, it.SubSection)
	if err != nil {
		return fmt.Errorf("index: insert fts: %w", err)
	}
	return nil
}

// Search performs an FTS5 full-text search and returns matching results with snippets.
func (db *DB) Search(query string, limit int) ([]SearchResult, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.conn.Query(`
		SELECT i.url,
		       i.section,
		       i.title,
		       snippet(items_fts, 2, '<b>', '</b>', '...', 32)
		FROM items_fts
		JOIN items i ON i.position = items_fts.position
		WHERE items_fts MATCH ?
		ORDER BY rank
		LIMIT ?
	`, query, limit)
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
