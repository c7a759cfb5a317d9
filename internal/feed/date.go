package feed

import (
	"strings"
	"time"

	"github.com/spf13/cast"
)

// dateKey is the sort key of an item. Invalid keys order after every valid one.
type dateKey struct {
	t     time.Time
	valid bool
}

// partialLayouts are ISO-like forms cast does not know about. They are tried
// before cast's own list.
var partialLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006/01/02",
	"2006/01/02 15:04:05",
	"2006-01",
	"2006",
}

func parseDateKey(s string) dateKey {
	s = strings.TrimSpace(s)
	if s == "" {
		return dateKey{}
	}
	for _, layout := range partialLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return dateKey{t: t, valid: true}
		}
	}
	t, err := cast.StringToDateInDefaultLocation(s, time.UTC)
	if err != nil {
		return dateKey{}
	}
	// Time-only layouts (3:04PM, 15:04:05) carry no calendar date.
	if t.Year() == 0 {
		return dateKey{}
	}
	return dateKey{t: t, valid: true}
}

// compareDesc orders a before b when a is more recent.
func compareDesc(a, b dateKey) int {
	switch {
	case a.valid && b.valid:
		return b.t.Compare(a.t)
	case a.valid:
		return -1
	case b.valid:
		return 1
	default:
		return 0
	}
}
