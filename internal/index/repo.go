package index

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/starford/journal/internal/apperr"
	"github.com/starford/journal/internal/checksum"
	"github.com/starford/journal/internal/models"
)

const defaultListLimit = 50

// SearchResult represents one search hit.
type SearchResult struct {
	URL     string         `json:"url"`
	Section models.Section `json:"section"`
	Title   string         `json:"title"`
	Snippet string         `json:"snippet"`
}

// Changes lists the URLs that differ between two published snapshots.
type Changes struct {
	Added   []string `json:"added,omitempty"`
	Updated []string `json:"updated,omitempty"`
	Removed []string `json:"removed,omitempty"`
}

// Empty reports whether nothing changed.
func (c Changes) Empty() bool {
	return len(c.Added) == 0 && len(c.Updated) == 0 && len(c.Removed) == 0
}

// Publish replaces the snapshot with items, preserving their order, and
// reports what changed relative to the previous snapshot.
func (db *DB) Publish(items []models.RecentItem) (Changes, error) {
	tx, err := db.conn.Begin()
	if err != nil {
		return Changes{}, fmt.Errorf("index: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // best-effort on failure path

	prev, err := previousChecksums(tx)
	if err != nil {
		return Changes{}, err
	}

	if _, err := tx.Exec(`DELETE FROM items`); err != nil {
		return Changes{}, fmt.Errorf("index: clear items: %w", err)
	}
	if err := ftsReset(tx); err != nil {
		return Changes{}, err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO items (position, url, section, sub_section, title, description, date, checksum)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return Changes{}, fmt.Errorf("index: prepare item insert: %w", err)
	}
	defer stmt.Close()

	var ch Changes
	seen := make(map[string]struct{}, len(items))
	for i, it := range items {
		cs := checksum.Item(it)
		if _, err := stmt.Exec(i, it.URL, string(it.Section), it.SubSection, it.Title, it.Description, it.Date, cs); err != nil {
			return Changes{}, fmt.Errorf("index: insert item: %w", err)
		}
		if err := ftsInsert(tx, i, it); err != nil {
			return Changes{}, err
		}

		if _, dup := seen[it.URL]; dup {
			continue
		}
		seen[it.URL] = struct{}{}
		switch old, ok := prev[it.URL]; {
		case !ok:
			ch.Added = append(ch.Added, it.URL)
		case old != cs:
			ch.Updated = append(ch.Updated, it.URL)
		}
	}
	for url := range prev {
		if _, ok := seen[url]; !ok {
			ch.Removed = append(ch.Removed, url)
		}
	}
	sort.Strings(ch.Removed)

	if err := setMeta(tx, "feed_checksum", checksum.Feed(items)); err != nil {
		return Changes{}, err
	}
	if err := setMeta(tx, "published_at", time.Now().UTC().Format(time.RFC3339)); err != nil {
		return Changes{}, err
	}

	if err := tx.Commit(); err != nil {
		return Changes{}, fmt.Errorf("index: commit: %w", err)
	}
	return ch, nil
}

// ListItems returns a page of the feed in published order, optionally
// restricted to one section, together with the total matching count.
func (db *DB) ListItems(section string, limit, offset int) ([]models.RecentItem, int, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	var total int
	if err := db.conn.QueryRow(
		`SELECT count(*) FROM items WHERE (? = '' OR section = ?)`, section, section,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("index: count items: %w", err)
	}

	rows, err := db.conn.Query(`
		SELECT section, sub_section, url, title, description, date
		FROM items
		WHERE (? = '' OR section = ?)
		ORDER BY position
		LIMIT ? OFFSET ?
	`, section, section, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("index: list items: %w", err)
	}
	defer rows.Close()

	out := []models.RecentItem{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, it)
	}
	return out, total, rows.Err()
}

// GetItem returns the first published item with the given URL.
func (db *DB) GetItem(url string) (*models.RecentItem, error) {
	row := db.conn.QueryRow(`
		SELECT section, sub_section, url, title, description, date
		FROM items WHERE url = ? ORDER BY position LIMIT 1
	`, url)
	it, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// FeedChecksum returns the checksum of the last published feed, or empty
// string when nothing has been published.
func (db *DB) FeedChecksum() (string, error) {
	var v string
	err := db.conn.QueryRow(`SELECT value FROM meta WHERE key = 'feed_checksum'`).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("index: feed checksum: %w", err)
	}
	return v, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(s scanner) (models.RecentItem, error) {
	var (
		it      models.RecentItem
		section string
	)
	if err := s.Scan(&section, &it.SubSection, &it.URL, &it.Title, &it.Description, &it.Date); err != nil {
		return models.RecentItem{}, err
	}
	it.Section = models.Section(section)
	return it, nil
}

func previousChecksums(tx *sql.Tx) (map[string]string, error) {
	rows, err := tx.Query(`SELECT url, checksum FROM items`)
	if err != nil {
		return nil, fmt.Errorf("index: previous items: %w", err)
	}
	defer rows.Close()
	out := make(map[string]string)
	for rows.Next() {
		var url, cs string
		if err := rows.Scan(&url, &cs); err != nil {
			return nil, err
		}
		out[url] = cs
	}
	return out, rows.Err()
}

func setMeta(tx *sql.Tx, key, value string) error {
	_, err := tx.Exec(`
		INSERT INTO meta (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("index: set meta %s: %w", key, err)
	}
	return nil
}
