package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func tempRoot(t *testing.T) *FS {
	t.Helper()
	dir := t.TempDir()
	fs, err := NewFS(dir)
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}
	return fs
}

func paths(t *testing.T, s *FS, patterns ...string) []string {
	t.Helper()
	items, err := s.List(patterns)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Path
	}
	return out
}

func seed(t *testing.T, s *FS, files ...string) {
	t.Helper()
	for _, f := range files {
		if err := s.Write(f, []byte("# "+f)); err != nil {
			t.Fatalf("Write %s: %v", f, err)
		}
	}
}

func TestWriteAndRead(t *testing.T) {
	s := tempRoot(t)
	content := []byte("# Hello\nWorld\n")
	if err := s.Write("note.md", content); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := s.Read("note.md")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("content mismatch: got %q", got)
	}
}

func TestWriteCreatesSubdirs(t *testing.T) {
	s := tempRoot(t)
	if err := s.Write("a/b/c.md", []byte("deep")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := s.Read("a/b/c.md")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != "deep" {
		t.Errorf("content = %q", got)
	}
}

func TestList_RecursivePatterns(t *testing.T) {
	s := tempRoot(t)
	seed(t, s,
		"reads/a.md",
		"reads/sub/b.md",
		"reads/sub/deeper/c.md",
		"writes/index.md",
		"blog/x.md",
		"reads/notes.txt",
		".vitepress/reads/hidden.md",
	)

	got := paths(t, s, "reads/**/*.md", "writes/**/*.md")
	want := []string{"reads/a.md", "reads/sub/b.md", "reads/sub/deeper/c.md", "writes/index.md"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("paths = %v, want %v", got, want)
	}
}

func TestList_ShallowPatterns(t *testing.T) {
	s := tempRoot(t)
	seed(t, s, "reads/a.md", "reads/sub/b.md", "thoughts/t.md")

	got := paths(t, s, "reads/*.md", "thoughts/*.md")
	want := []string{"reads/a.md", "thoughts/t.md"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("paths = %v, want %v", got, want)
	}
}

func TestList_DoesNotReadContents(t *testing.T) {
	s := tempRoot(t)
	_ = s.Write("reads/locked.md", []byte("secret"))
	p := filepath.Join(s.Root(), "reads", "locked.md")
	if err := os.Chmod(p, 0o000); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(p, 0o644) })

	metas, err := s.List([]string{"reads/*.md"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(metas) != 1 || metas[0].Path != "reads/locked.md" {
		t.Errorf("metas = %+v", metas)
	}
}

func TestList_BadPattern(t *testing.T) {
	s := tempRoot(t)
	if _, err := s.List([]string{"reads/[.md"}); err == nil {
		t.Error("expected error for malformed pattern")
	}
}

func TestMatcher(t *testing.T) {
	m, err := NewMatcher([]string{"reads/**/*.md", "**/*.txt"})
	if err != nil {
		t.Fatal(err)
	}
	cases := map[string]bool{
		"reads/a.md":     true,
		"reads/x/y/a.md": true,
		"reads/a.mdx":    false,
		"writes/a.md":    false,
		"notes.txt":      true,
		"a/b/notes.txt":  true,
	}
	for p, want := range cases {
		if got := m.Match(p); got != want {
			t.Errorf("Match(%q) = %v, want %v", p, got, want)
		}
	}
}

func TestTraversalBlocked(t *testing.T) {
	s := tempRoot(t)

	cases := []string{
		"../../etc/passwd",
		"../outside.md",
		"/etc/shadow",
	}
	for _, p := range cases {
		if _, err := s.Read(p); err == nil {
			t.Errorf("expected error for path %q", p)
		}
		if err := s.Write(p, []byte("x")); err == nil {
			t.Errorf("expected error for write to %q", p)
		}
	}
}

func TestAtomicWriteNoLeftovers(t *testing.T) {
	s := tempRoot(t)
	_ = s.Write("atomic.json", []byte("original"))

	if err := s.Write("atomic.json", []byte("updated")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, _ := s.Read("atomic.json")
	if string(got) != "updated" {
		t.Errorf("expected updated content, got %q", got)
	}

	matches, _ := filepath.Glob(filepath.Join(s.root, tmpPrefix+"*"))
	if len(matches) != 0 {
		t.Errorf("leftover temp files: %v", matches)
	}
}

func TestNewFS_NonExistentDir(t *testing.T) {
	_, err := NewFS("/tmp/journal-does-not-exist-" + t.Name())
	if err == nil {
		t.Error("expected error for non-existent dir")
	}
}

func TestNewFS_FileNotDir(t *testing.T) {
	f, _ := os.CreateTemp("", "journal-test-*")
	_ = f.Close()
	defer os.Remove(f.Name())
	_, err := NewFS(f.Name())
	if err == nil {
		t.Error("expected error when root is a file")
	}
}
