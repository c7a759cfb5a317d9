// Package checksum fingerprints source files and feed items so the snapshot
// can tell which items changed between two builds.
package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/starford/journal/internal/models"
)

// Sum returns the hex-encoded SHA-256 digest of data.
func Sum(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// Item fingerprints every field of a feed item.
func Item(it models.RecentItem) string {
	data, _ := json.Marshal(it)
	return Sum(data)
}

// Feed fingerprints an ordered feed. Reordering changes the result.
func Feed(items []models.RecentItem) string {
	h := sha256.New()
	for _, it := range items {
		h.Write([]byte(Item(it)))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}
