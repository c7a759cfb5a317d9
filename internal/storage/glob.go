package storage

import (
	"fmt"
	"path"
	"strings"

	"github.com/gobwas/glob"
)

// Matcher matches slash-separated relative paths against a set of globs.
// "**/" also matches zero directories, so "reads/**/*.md" matches
// "reads/a.md" as well as "reads/x/a.md".
type Matcher struct {
	globs []glob.Glob
}

// NewMatcher compiles patterns.
func NewMatcher(patterns []string) (*Matcher, error) {
	m := &Matcher{}
	for _, p := range patterns {
		for _, variant := range expandGlobstar(path.Clean(p)) {
			g, err := glob.Compile(variant, '/')
			if err != nil {
				return nil, fmt.Errorf("storage: compile pattern %q: %w", p, err)
			}
			m.globs = append(m.globs, g)
		}
	}
	return m, nil
}

// Match reports whether rel matches any pattern.
func (m *Matcher) Match(rel string) bool {
	for _, g := range m.globs {
		if g.Match(rel) {
			return true
		}
	}
	return false
}

func expandGlobstar(p string) []string {
	out := []string{p}
	if strings.HasPrefix(p, "**/") {
		out = append(out, strings.TrimPrefix(p, "**/"))
	}
	if strings.Contains(p, "/**/") {
		out = append(out, strings.ReplaceAll(p, "/**/", "/"))
	}
	return out
}
