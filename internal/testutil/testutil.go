// Package testutil provides shared test helpers for setting up content trees and databases.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/starford/journal/internal/index"
	"github.com/starford/journal/internal/storage"
)

// TestDB creates a temporary SQLite database that is automatically cleaned up.
func TestDB(t *testing.T) *index.DB {
	t.Helper()
	dbFile, err := os.CreateTemp("", "journal-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	db, err := index.Open(dbFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// TestContent creates a temporary content root populated with files
// (relative slash paths to contents) and a storage.FS over it.
func TestContent(t *testing.T, files map[string]string) (string, *storage.FS) {
	t.Helper()
	root := t.TempDir()
	for rel, body := range files {
		WriteFile(t, root, rel, body)
	}
	store, err := storage.NewFS(root)
	if err != nil {
		t.Fatal(err)
	}
	return root, store
}

// WriteFile writes body to root/rel, creating parent directories.
func WriteFile(t *testing.T, root, rel, body string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}
