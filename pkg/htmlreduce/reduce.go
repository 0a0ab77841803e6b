// Package htmlreduce strips boilerplate from whole crawled HTML documents.
//
// Crawlers hand over full pages: scripts, navigation, cookie banners, ad
// slots. Reducing a page to its visible text before it becomes a cleaning
// payload keeps that noise out of fingerprints. This stage is optional and
// lossy; the text cleaner downstream still handles any markup that survives.
package htmlreduce

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Config controls which parts of a page are dropped before text extraction.
type Config struct {
	StripScripts  bool `json:"strip_scripts"`
	StripStyles   bool `json:"strip_styles"`
	StripComments bool `json:"strip_comments"`

	// StripHiddenElements drops elements with the hidden attribute,
	// aria-hidden="true", or inline display:none / visibility:hidden.
	StripHiddenElements bool `json:"strip_hidden_elements"`

	// RemoveSelectors lists CSS selectors that are always removed.
	RemoveSelectors []string `json:"remove_selectors"`
}

// DefaultConfig removes scripts, styles, comments, hidden elements, and the
// usual ad / consent / share widgets.
func DefaultConfig() *Config {
	return &Config{
		StripScripts:        true,
		StripStyles:         true,
		StripComments:       true,
		StripHiddenElements: true,
		RemoveSelectors: []string{
			"nav", "header", "footer", "aside",
			".ad", ".ads", ".advertisement", "[class*='sponsored']",
			"[class*='cookie']", "[class*='consent']",
			".share-buttons", ".social-share",
			"[class*='newsletter']", ".popup", ".modal-backdrop",
		},
	}
}

// Reducer extracts visible text from HTML documents.
type Reducer struct {
	config *Config
}

// New creates a Reducer. A nil config selects DefaultConfig.
func New(config *Config) *Reducer {
	if config == nil {
		config = DefaultConfig()
	}
	return &Reducer{config: config}
}

var (
	commentRegex    = regexp.MustCompile(`<!--[\s\S]*?-->`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// Reduce returns the visible text of the document. On parse failure the
// input is returned alongside the error so callers can fall back to feeding
// the raw text to the cleaner.
func (r *Reducer) Reduce(html string) (string, error) {
	if r.config.StripComments {
		// goquery drops comment nodes inconsistently; strip them up front.
		html = commentRegex.ReplaceAllString(html, "")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html, err
	}

	if r.config.StripScripts {
		doc.Find("script, noscript").Remove()
	}
	if r.config.StripStyles {
		doc.Find("style").Remove()
	}
	if r.config.StripHiddenElements {
		r.removeHidden(doc)
	}
	for _, selector := range r.config.RemoveSelectors {
		doc.Find(selector).Remove()
	}

	body := doc.Find("body")
	var text string
	if body.Length() > 0 {
		text = body.Text()
	} else {
		text = doc.Text()
	}

	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(text, " ")), nil
}

func (r *Reducer) removeHidden(doc *goquery.Document) {
	doc.Find("[hidden], [aria-hidden='true']").Remove()

	doc.Find("[style]").Each(func(_ int, s *goquery.Selection) {
		style, _ := s.Attr("style")
		style = strings.ToLower(strings.ReplaceAll(style, " ", ""))
		if strings.Contains(style, "display:none") || strings.Contains(style, "visibility:hidden") {
			s.Remove()
		}
	})
}
