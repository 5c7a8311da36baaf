package text

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Stripping passes applied to the article body, in order. Code must be
// removed before the punctuation pass so code fragments never survive
// as tokens.
var (
	fencedCodeRe = regexp.MustCompile("(?is)```\\w{0,7}.*?```")
	inlineCodeRe = regexp.MustCompile("`[^`]*?`")
	linkRe       = regexp.MustCompile(`\[(.*?)\]\(.*?\)`)
	punctRe      = regexp.MustCompile("[-–—_,;:!?.'”„()\\[\\]{}/#@$%^&*<>|`=]")
)

// Clean strips markup and structural noise from an article body,
// leaving only whitespace-delimited words. Fenced code blocks and
// inline code spans are dropped, markdown links keep their visible
// text, HTML tags are removed, and punctuation is replaced by spaces.
func Clean(body string) string {
	body = fencedCodeRe.ReplaceAllString(body, " ")
	body = inlineCodeRe.ReplaceAllString(body, " ")
	body = linkRe.ReplaceAllString(body, "$1")
	body = stripTags(body)
	body = punctRe.ReplaceAllString(body, " ")
	return body
}

// stripTags removes HTML elements, keeping text content. Each tag is
// replaced by a space so words on either side stay separate.
func stripTags(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			b.WriteByte(' ')
		}
	}
}
