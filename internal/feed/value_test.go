package feed

import (
	"testing"
	"time"
)

func TestValueOf(t *testing.T) {
	cases := []struct {
		in   any
		kind Kind
	}{
		{nil, KindAbsent},
		{"x", KindString},
		{true, KindBool},
		{3, KindNumber},
		{int64(3), KindNumber},
		{uint64(3), KindNumber},
		{2.5, KindNumber},
		{[]any{"a"}, KindOther},
		{map[string]any{}, KindOther},
		{time.Now(), KindOther},
	}
	for _, tc := range cases {
		if got := ValueOf(tc.in).Kind(); got != tc.kind {
			t.Errorf("ValueOf(%#v).Kind() = %v, want %v", tc.in, got, tc.kind)
		}
	}
}

func TestFrontmatter_TypedGetters(t *testing.T) {
	fm := NewFrontmatter(map[string]any{
		"title": "T",
		"draft": "yes",
		"count": 7,
	})
	if s, ok := fm.String("title"); !ok || s != "T" {
		t.Errorf("title = %q, %v", s, ok)
	}
	if _, ok := fm.String("count"); ok {
		t.Error("number should not read as string")
	}
	if _, ok := fm.Bool("draft"); ok {
		t.Error("string should not read as bool")
	}
	if fm.BoolOr("draft", false) {
		t.Error("non-bool draft should default to false")
	}
	if n, ok := fm["count"].Number(); !ok || n != 7 {
		t.Errorf("count = %v, %v", n, ok)
	}
	if _, ok := fm.String("missing"); ok {
		t.Error("missing key reported present")
	}
}

func TestNewFrontmatter_Nil(t *testing.T) {
	fm := NewFrontmatter(nil)
	if len(fm) != 0 {
		t.Errorf("len = %d", len(fm))
	}
	if fm.BoolOr("draft", false) {
		t.Error("draft should default to false")
	}
}
