// Package loader discovers section documents on disk and turns them into the
// recent-items feed.
package loader

import (
	"context"
	"path"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/starford/journal/internal/apperr"
	"github.com/starford/journal/internal/feed"
	"github.com/starford/journal/internal/markdown"
	"github.com/starford/journal/internal/models"
	"github.com/starford/journal/internal/storage"
)

// URL styles.
const (
	URLStyleClean  = "clean"  // /reads/post
	URLStyleHTML   = "html"   // /reads/post.html
	URLStyleSource = "source" // /reads/post.md
)

// Patterns returns the globs covering every section. Recursive patterns
// include nested sub-section folders; shallow ones only direct children.
func Patterns(recursive bool) []string {
	sections := models.Sections()
	out := make([]string, 0, len(sections))
	for _, s := range sections {
		if recursive {
			out = append(out, string(s)+"/**/*.md")
		} else {
			out = append(out, string(s)+"/*.md")
		}
	}
	return out
}

// Options configures a Loader.
type Options struct {
	Recursive        bool
	URLStyle         string
	ExcerptSeparator string
	Workers          int
}

// Loader is the data-loading hook for the recent-items feed.
type Loader struct {
	store    storage.Provider
	patterns []string
	matcher  *storage.Matcher
	urlStyle string
	parse    markdown.Options
	workers  int
}

// New creates a Loader reading from store.
func New(store storage.Provider, opts Options) (*Loader, error) {
	patterns := Patterns(opts.Recursive)
	m, err := storage.NewMatcher(patterns)
	if err != nil {
		return nil, err
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = 8
	}
	style := opts.URLStyle
	if style == "" {
		style = URLStyleClean
	}
	return &Loader{
		store:    store,
		patterns: patterns,
		matcher:  m,
		urlStyle: style,
		parse:    markdown.Options{ExcerptSeparator: opts.ExcerptSeparator},
		workers:  workers,
	}, nil
}

// Patterns returns the globs this loader watches.
func (l *Loader) Patterns() []string {
	return append([]string(nil), l.patterns...)
}

// Matches reports whether the slash-separated relative path is watched.
func (l *Loader) Matches(rel string) bool {
	return l.matcher.Match(rel)
}

// Documents lists and parses every watched file, in path order.
func (l *Loader) Documents(ctx context.Context) ([]models.SourceDocument, error) {
	metas, err := l.store.List(l.patterns)
	if err != nil {
		return nil, &apperr.DiscoveryError{Op: "list", Err: err}
	}

	docs := make([]models.SourceDocument, len(metas))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(l.workers)
	for i, m := range metas {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			data, err := l.store.Read(m.Path)
			if err != nil {
				return &apperr.DiscoveryError{Op: "read", Path: m.Path, Err: err}
			}
			res := markdown.Parse(data, l.parse)
			docs[i] = models.SourceDocument{
				URL:         l.URL(m.Path),
				Frontmatter: res.Frontmatter,
				Excerpt:     res.Excerpt,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

// Load discovers documents and indexes them into the feed.
func (l *Loader) Load(ctx context.Context) ([]models.RecentItem, error) {
	docs, err := l.Documents(ctx)
	if err != nil {
		return nil, err
	}
	return feed.Index(docs), nil
}

// URL maps a relative source path to its site URL. index.md files map to
// their directory URL, which ends in a slash.
func (l *Loader) URL(rel string) string {
	rel = strings.TrimPrefix(path.Clean("/"+rel), "/")
	dir, file := path.Split(rel)
	if file == "index.md" {
		return "/" + dir
	}
	switch l.urlStyle {
	case URLStyleHTML:
		rel = strings.TrimSuffix(rel, ".md") + ".html"
	case URLStyleSource:
	default:
		rel = strings.TrimSuffix(rel, ".md")
	}
	return "/" + rel
}
