// Package feed turns discovered Markdown documents into the recent-items feed.
//
// Index never fails: malformed metadata is coerced to absent, and documents
// outside the known sections, listing pages and drafts are left out.
package feed

import (
	"regexp"
	"slices"
	"strings"

	"github.com/starford/journal/internal/models"
)

// MaxDescription is the maximum description length in runes.
const MaxDescription = 140

var (
	newlineRun  = regexp.MustCompile(`[\r\n]+`)
	markdownCtl = regexp.MustCompile("[#>*_~`]")
)

// docSuffixes are stripped from the leaf segment when deriving a title.
var docSuffixes = []string{".md", ".markdown", ".html"}

// Index filters, normalizes and sorts docs into feed items, most recent first.
func Index(docs []models.SourceDocument) []models.RecentItem {
	type keyed struct {
		item models.RecentItem
		key  dateKey
	}

	entries := make([]keyed, 0, len(docs))
	for _, doc := range docs {
		item, ok := indexOne(doc)
		if !ok {
			continue
		}
		entries = append(entries, keyed{item: item, key: parseDateKey(item.Date)})
	}

	slices.SortStableFunc(entries, func(a, b keyed) int {
		return compareDesc(a.key, b.key)
	})

	out := make([]models.RecentItem, len(entries))
	for i, e := range entries {
		out[i] = e.item
	}
	return out
}

func indexOne(doc models.SourceDocument) (models.RecentItem, bool) {
	route, ok := ParseRoute(doc.URL)
	if !ok {
		return models.RecentItem{}, false
	}

	fm := NewFrontmatter(doc.Frontmatter)
	if fm.BoolOr("draft", false) {
		return models.RecentItem{}, false
	}

	title, ok := fm.String("title")
	if !ok || strings.TrimSpace(title) == "" {
		title = fallbackTitle(doc.URL, route.Leaf)
	}

	var description string
	if d, ok := fm.String("description"); ok {
		description = truncate(d, MaxDescription)
	} else {
		description = Describe(doc.Excerpt)
	}

	date, _ := fm.String("date")

	return models.RecentItem{
		Section:     route.Section,
		SubSection:  route.SubSection,
		URL:         doc.URL,
		Title:       title,
		Description: description,
		Date:        date,
	}, true
}

func fallbackTitle(url, leaf string) string {
	for _, suffix := range docSuffixes {
		if strings.HasSuffix(leaf, suffix) {
			leaf = strings.TrimSuffix(leaf, suffix)
			break
		}
	}
	if leaf == "" {
		return url
	}
	return leaf
}

// Describe derives a one-line description from a plain-text excerpt.
func Describe(excerpt string) string {
	if excerpt == "" {
		return ""
	}
	s := newlineRun.ReplaceAllString(excerpt, " ")
	s = markdownCtl.ReplaceAllString(s, "")
	return truncate(strings.TrimSpace(s), MaxDescription)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
