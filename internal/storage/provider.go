// Package storage defines the content file-system abstraction.
package storage

import "github.com/starford/journal/internal/models"

// Provider is the interface for content file operations.
type Provider interface {
	// List returns metadata for every file matching any of the glob patterns
	// (relative to the content root, slash-separated), sorted by path.
	List(patterns []string) ([]models.FileMetadata, error)
	// Read returns the raw bytes of the file at path (relative to the content root).
	Read(path string) ([]byte, error)
	// Write atomically writes content to path (relative to the content root).
	Write(path string, content []byte) error
}
