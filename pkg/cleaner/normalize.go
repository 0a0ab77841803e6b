package cleaner

import (
	"html"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Compiled once; the normalization pipeline is pure and allocation of these
// per call would dominate small batches.
var (
	codeSpanRegex   = regexp.MustCompile("(?s)`{1,3}.*?`{1,3}")
	imageRegex      = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	linkRegex       = regexp.MustCompile(`\[[^\]]*\]\([^)]*\)`)
	emphasisRegex   = regexp.MustCompile(`[*_]{1,3}([^*_]+)[*_]{1,3}`)
	blockquoteRegex = regexp.MustCompile(`(?m)^>+\s?`)
	headingRegex    = regexp.MustCompile(`(?m)^#{1,6}\s`)
	tagRegex        = regexp.MustCompile(`<[^>]+>`)
	urlRegex        = regexp.MustCompile(`https?://\S+`)
	hashtagRegex    = regexp.MustCompile(`#[\p{L}\p{N}_-]+`)
	mentionRegex    = regexp.MustCompile(`@[\p{L}\p{N}_-]+`)
	// Go's \s is ASCII-only; the separator categories cover U+00A0, U+2028
	// and U+2029, which NFKC leaves intact on crawled pages.
	whitespaceRegex = regexp.MustCompile(`[\s\v\x{1c}-\x{1f}\x{85}\p{Z}]+`)
)

// normalize applies the cleaning pipeline to a single string. Step order is
// load-bearing: markdown syntax must be stripped before tag removal can see
// inline HTML, and whitespace collapsing has to run after every substitution
// that introduces spaces. Given the same input and options the output is
// byte-for-byte identical, and empty input yields empty output.
func (c *Cleaner) normalize(text string) string {
	normalized := norm.NFKC.String(text)
	normalized = html.UnescapeString(normalized)

	if c.options.RemoveMarkdown {
		normalized = stripMarkdown(normalized)
	}

	normalized = stripHTML(normalized)
	normalized = strings.ReplaceAll(normalized, "\u200b", "")

	if c.options.RemoveURLs {
		normalized = urlRegex.ReplaceAllString(normalized, " ")
	}

	if c.options.RemoveHashtags {
		normalized = hashtagRegex.ReplaceAllString(normalized, " ")
	}

	// Mentions are noise on every supported platform, so this is not gated.
	normalized = mentionRegex.ReplaceAllString(normalized, " ")

	if c.options.CollapseWhitespace {
		normalized = strings.TrimSpace(whitespaceRegex.ReplaceAllString(normalized, " "))
	}

	if c.options.Lowercase {
		normalized = strings.ToLower(normalized)
	}

	return normalized
}

// stripHTML replaces tag sequences with a single space so adjacent text does
// not fuse. The "<" check short-circuits the common plain-text case.
func stripHTML(text string) string {
	if !strings.Contains(text, "<") {
		return text
	}
	return tagRegex.ReplaceAllString(text, " ")
}

// stripMarkdown removes markdown syntax. Code spans, images and links are
// removed including their content; emphasis markers are stripped but the
// emphasized text survives; blockquote and heading prefixes are trimmed at
// line start.
func stripMarkdown(text string) string {
	text = codeSpanRegex.ReplaceAllString(text, " ")
	text = imageRegex.ReplaceAllString(text, " ")
	text = linkRegex.ReplaceAllString(text, " ")
	text = emphasisRegex.ReplaceAllString(text, "$1")
	text = blockquoteRegex.ReplaceAllString(text, "")
	text = headingRegex.ReplaceAllString(text, "")
	return text
}
