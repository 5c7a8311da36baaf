package text

import (
	"errors"
	"strings"
	"testing"
)

func TestSplit(t *testing.T) {
	raw := "---\npermalink: /posts/go-maps/\ntitle: Maps\n---\nBody Text Here"

	frontMatter, body, err := Split(raw)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}

	if !strings.Contains(frontMatter, "permalink:") {
		t.Errorf("front matter %q missing permalink key", frontMatter)
	}
	if !strings.Contains(body, "body text here") {
		t.Errorf("body %q should be lower-cased article body", body)
	}
}

func TestSplitKeepsSeparatorInBody(t *testing.T) {
	raw := "---\npermalink: /x/\n---\nfirst part --- second part"

	_, body, err := Split(raw)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	if !strings.Contains(body, "second part") {
		t.Errorf("body %q truncated at a separator inside the body", body)
	}
}

func TestSplitMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"no front matter", "just a body with no separators"},
		{"single separator", "---\npermalink: /x/\nno closing separator"},
		{"empty input", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Split(tt.raw)
			if !errors.Is(err, ErrMalformedFrontMatter) {
				t.Errorf("Split(%q) error = %v, want ErrMalformedFrontMatter", tt.raw, err)
			}
		})
	}
}

func TestPermalink(t *testing.T) {
	frontMatter, _, err := Split("---\nTitle: X\nPermalink:   /posts/one/  \n---\nbody")
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}

	got, err := Permalink(frontMatter)
	if err != nil {
		t.Fatalf("Permalink() error = %v", err)
	}
	if got != "/posts/one/" {
		t.Errorf("Permalink() = %q, want %q", got, "/posts/one/")
	}
}

func TestPermalinkMissing(t *testing.T) {
	frontMatter, _, err := Split("---\ntitle: no link here\n---\nbody")
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}

	if _, err := Permalink(frontMatter); !errors.Is(err, ErrMissingPermalink) {
		t.Errorf("Permalink() error = %v, want ErrMissingPermalink", err)
	}
}
