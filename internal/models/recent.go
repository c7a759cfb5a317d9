// Package models defines the domain types for journal.
package models

// Section is one of the top-level content trees of the site.
type Section string

// Known sections.
const (
	SectionReads    Section = "reads"
	SectionWrites   Section = "writes"
	SectionThoughts Section = "thoughts"
)

// Sections returns every known section in display order.
func Sections() []Section {
	return []Section{SectionReads, SectionWrites, SectionThoughts}
}

// ParseSection reports whether s names a known section.
func ParseSection(s string) (Section, bool) {
	switch Section(s) {
	case SectionReads, SectionWrites, SectionThoughts:
		return Section(s), true
	}
	return "", false
}

// SourceDocument is a discovered Markdown document as handed to the indexer.
type SourceDocument struct {
	URL         string         `json:"url"`
	Frontmatter map[string]any `json:"frontmatter,omitempty"`
	Excerpt     string         `json:"excerpt,omitempty"`
}

// RecentItem is one entry of the recent-items feed.
type RecentItem struct {
	Section     Section `json:"section"`
	SubSection  string  `json:"subSection,omitempty"`
	URL         string  `json:"url"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Date        string  `json:"date,omitempty"`
}

// FileMetadata describes a content file found on disk. Path is relative to
// the content root and slash-separated.
type FileMetadata struct {
	Path string `json:"path"`
}
