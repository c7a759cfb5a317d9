package markdown

import (
	"testing"
)

func TestParse_FrontmatterAndBody(t *testing.T) {
	input := []byte("---\ntitle: Hello\ndate: 2024-05-01\ndraft: true\n---\n# Hello\n\nBody text.\n")
	r := Parse(input, Options{})
	if got := r.Frontmatter["date"]; got != "2024-05-01" {
		t.Errorf("date = %#v, want string 2024-05-01", got)
	}
	if got := r.Frontmatter["draft"]; got != true {
		t.Errorf("draft = %#v", got)
	}
	if r.Excerpt != "Body text." {
		t.Errorf("excerpt = %q", r.Excerpt)
	}
}

func TestParse_NoFrontmatter(t *testing.T) {
	input := []byte("# Just a heading\nSome text.\n")
	r := Parse(input, Options{ExcerptSeparator: DefaultExcerptSeparator})
	if r.Frontmatter != nil {
		t.Errorf("expected nil frontmatter, got %v", r.Frontmatter)
	}
	if r.Excerpt != "Some text." {
		t.Errorf("excerpt = %q", r.Excerpt)
	}
}

func TestParse_InvalidYAMLFallback(t *testing.T) {
	input := []byte("---\n: invalid: yaml: {{{\n---\nBody\n")
	r := Parse(input, Options{})
	if r.Frontmatter != nil {
		t.Errorf("expected nil frontmatter on invalid YAML")
	}
	// The fences stay in the body: a thematic break, then a setext heading.
	if r.Excerpt != "Body" {
		t.Errorf("excerpt = %q, want %q", r.Excerpt, "Body")
	}
}

func TestParse_TOMLDateNormalized(t *testing.T) {
	input := []byte("+++\ntitle = \"T\"\ndate = 2024-01-02T03:04:05Z\n+++\nText\n")
	r := Parse(input, Options{})
	if got := r.Frontmatter["date"]; got != "2024-01-02T03:04:05Z" {
		t.Errorf("date = %#v", got)
	}
}

func TestParse_ExcerptSeparator(t *testing.T) {
	input := []byte("---\ntitle: S\n---\nIntro line one\nIntro *two*\n\n---\n\nRest of post.\n")
	r := Parse(input, Options{ExcerptSeparator: DefaultExcerptSeparator})
	if r.Excerpt != "Intro line one\nIntro *two*" {
		t.Errorf("excerpt = %q", r.Excerpt)
	}
}

func TestParse_FirstParagraphPlainText(t *testing.T) {
	input := []byte("# Title\n\n```go\ncode()\n```\n\nA **bold** _move_ with `code` here\nand a [link](https://x.io).\n\nSecond paragraph.\n")
	r := Parse(input, Options{})
	want := "A bold move with code here\nand a link."
	if r.Excerpt != want {
		t.Errorf("excerpt = %q, want %q", r.Excerpt, want)
	}
}

func TestParse_NoParagraph(t *testing.T) {
	r := Parse([]byte("# Only heading\n"), Options{})
	if r.Excerpt != "" {
		t.Errorf("excerpt = %q, want empty", r.Excerpt)
	}
}
