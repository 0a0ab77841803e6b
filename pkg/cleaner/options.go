package cleaner

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Options holds the configuration toggles for one batch. The struct is read
// by value and never mutated after validation, so a single Options value may
// back concurrent batches.
type Options struct {
	// Deduplicate suppresses payloads whose fingerprint was already seen
	// earlier in the same batch. Dedup scope is a single CleanBatch call;
	// cross-batch suppression is the caller's concern.
	Deduplicate bool `json:"deduplicate"`

	// MinCharacters is the discard threshold, measured in characters of the
	// cleaned text. Must be non-negative.
	MinCharacters int `json:"min_characters" validate:"gte=0"`

	CollapseWhitespace bool `json:"collapse_whitespace"`
	Lowercase          bool `json:"lowercase"`
	RemoveURLs         bool `json:"remove_urls"`

	// RemoveHashtags strips #word tokens. Independent of @-mention removal,
	// which is always applied.
	RemoveHashtags bool `json:"remove_hashtags"`

	RemoveMarkdown bool `json:"remove_markdown"`
}

// DefaultOptions returns the documented defaults: dedup on, 40-character
// minimum, whitespace collapsing, URL and markdown removal on, lowercasing
// and hashtag removal off.
func DefaultOptions() *Options {
	return &Options{
		Deduplicate:        true,
		MinCharacters:      40,
		CollapseWhitespace: true,
		Lowercase:          false,
		RemoveURLs:         true,
		RemoveHashtags:     false,
		RemoveMarkdown:     true,
	}
}

// Validate checks configuration invariants. It is called once at cleaner
// construction, not per payload.
func (o *Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("invalid cleaning options: %w", err)
	}
	return nil
}
