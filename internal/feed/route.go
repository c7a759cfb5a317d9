package feed

import (
	"strings"

	"github.com/starford/journal/internal/models"
)

// Route is the section placement of a document URL.
type Route struct {
	Section    models.Section
	SubSection string // empty when the document sits directly under its section
	Leaf       string // final path segment, may be empty
}

// ParseRoute splits url into its section, optional sub-section and leaf.
// It reports false for listing pages (trailing slash) and for URLs whose
// first segment is not a known section. URLs without a leading slash are
// read as root-relative.
func ParseRoute(url string) (Route, bool) {
	if strings.HasSuffix(url, "/") {
		return Route{}, false
	}
	if !strings.HasPrefix(url, "/") {
		url = "/" + url
	}

	segs := strings.Split(url, "/")
	if len(segs) < 2 {
		return Route{}, false
	}
	section, ok := models.ParseSection(segs[1])
	if !ok {
		return Route{}, false
	}

	r := Route{
		Section: section,
		Leaf:    segs[len(segs)-1],
	}
	if len(segs) > 3 && segs[3] != "" {
		r.SubSection = segs[2]
	}
	return r, true
}
