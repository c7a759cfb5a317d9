// Package markdown splits frontmatter from Markdown documents and extracts
// the plain-text excerpt used as a fallback description.
package markdown

import (
	"bytes"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// DefaultExcerptSeparator marks the end of an explicit excerpt.
const DefaultExcerptSeparator = "---"

var engine = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Options controls excerpt extraction.
type Options struct {
	// ExcerptSeparator is a line that ends an explicit excerpt. Empty disables
	// separator lookup so the first paragraph is always used.
	ExcerptSeparator string
}

// Result holds the output of parsing a Markdown file.
type Result struct {
	Frontmatter map[string]any
	Excerpt     string
}

// Parse separates frontmatter from the body and extracts the excerpt.
// Malformed frontmatter never fails the parse: the whole input is treated
// as body.
func Parse(data []byte, opts Options) *Result {
	fm, body := splitFrontmatter(data)

	excerpt, ok := explicitExcerpt(body, opts.ExcerptSeparator)
	if !ok {
		src := []byte(body)
		excerpt = firstParagraph(engine.Parser().Parse(text.NewReader(src)), src)
	}

	return &Result{
		Frontmatter: fm,
		Excerpt:     excerpt,
	}
}

func splitFrontmatter(data []byte) (map[string]any, string) {
	var fm map[string]any
	body, err := frontmatter.Parse(bytes.NewReader(data), &fm)
	if err != nil {
		return nil, string(data)
	}
	normalizeTimes(fm)
	return fm, strings.TrimLeft(string(body), "\r\n")
}

// normalizeTimes rewrites typed timestamps (TOML datetimes) as RFC 3339 strings.
func normalizeTimes(fm map[string]any) {
	for k, v := range fm {
		if t, ok := v.(time.Time); ok {
			fm[k] = t.Format(time.RFC3339)
		}
	}
}

func explicitExcerpt(body, sep string) (string, bool) {
	if sep == "" {
		return "", false
	}
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == sep {
			return strings.TrimSpace(strings.Join(lines[:i], "\n")), true
		}
	}
	return "", false
}

func firstParagraph(doc ast.Node, src []byte) string {
	var para ast.Node
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind() == ast.KindParagraph {
			para = n
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	if para == nil {
		return ""
	}
	return strings.TrimSpace(plainText(para, src))
}

func plainText(n ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte('\n')
			}
		case *ast.String:
			b.Write(t.Value)
		case *ast.AutoLink:
			b.Write(t.Label(src))
			return ast.WalkSkipChildren, nil
		case *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}
