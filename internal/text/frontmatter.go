// Package text turns raw markdown articles into clean,
// whitespace-delimited token streams.
package text

import (
	"errors"
	"regexp"
	"strings"
)

// Separator delimits the front-matter block at the top of an article.
const Separator = "---"

// Errors returned while splitting an article.
var (
	ErrMissingPermalink     = errors.New("front matter has no permalink")
	ErrMalformedFrontMatter = errors.New("malformed front matter")
)

var permalinkRe = regexp.MustCompile(`permalink:\s*(.*)`)

// Split separates a raw article into its front matter and body. The raw
// text is lower-cased first so all downstream processing is
// case-insensitive. The body is everything after the second separator;
// fewer than two separators means the article has no usable structure.
func Split(raw string) (frontMatter, body string, err error) {
	raw = strings.ToLower(raw)
	parts := strings.SplitN(raw, Separator, 3)
	if len(parts) < 3 {
		return "", "", ErrMalformedFrontMatter
	}
	return parts[1], parts[2], nil
}

// Permalink extracts the permalink value from a front-matter block.
func Permalink(frontMatter string) (string, error) {
	m := permalinkRe.FindStringSubmatch(frontMatter)
	if m == nil {
		return "", ErrMissingPermalink
	}
	return strings.TrimSpace(m[1]), nil
}
