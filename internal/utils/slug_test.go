package utils

import (
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"  Lots   of --- separators!! ", "lots-of-separators"},
		{"Go 1.25 Released", "go-1-25-released"},
		{"ALLCAPS", "allcaps"},
		{"!!!", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewSlugUnique(t *testing.T) {
	a := NewSlug("My Article")
	b := NewSlug("My Article")

	if a == b {
		t.Errorf("two slugs for the same title are equal: %q", a)
	}
	if !strings.HasPrefix(a, "my-article-") {
		t.Errorf("slug %q does not start with my-article-", a)
	}
	if got := len(strings.TrimPrefix(a, "my-article-")); got != 8 {
		t.Errorf("suffix length = %d, want 8", got)
	}
}

func TestNewSlugEmptyTitle(t *testing.T) {
	s := NewSlug("!!!")
	if len(s) != 8 {
		t.Errorf("slug for punctuation-only title = %q, want bare 8-char suffix", s)
	}
	if strings.Contains(s, "-") {
		t.Errorf("slug %q carries a separator with no title part", s)
	}
}
