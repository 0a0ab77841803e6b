// Package cleaner normalizes and deduplicates raw crawled text.
//
// A Cleaner turns a batch of payloads (raw HTML/markdown plus caller
// metadata) into cleaned records, fingerprints each one, and partitions the
// batch into accepted, duplicate, and discarded sets. The pipeline is pure
// and deterministic: no I/O, no clock or locale dependence, and no state
// shared across batches.
package cleaner

import (
	"time"
	"unicode/utf8"
)

// Cleaner applies deterministic normalization and deduplication to text
// content. A Cleaner is immutable after construction and safe for concurrent
// CleanBatch calls.
type Cleaner struct {
	options Options
}

// New creates a Cleaner. A nil options pointer selects DefaultOptions.
// Configuration errors are reported here, never per payload.
func New(opts *Options) (*Cleaner, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Cleaner{options: *opts}, nil
}

// Options returns a copy of the active configuration.
func (c *Cleaner) Options() Options {
	return c.options
}

// CleanBatch processes payloads in order and partitions the results.
//
// For each payload: the text is normalized, fingerprinted, checked against
// the fingerprints seen so far in this batch, and evaluated against the
// discard policy. The fingerprint is recorded even for discarded records, so
// the first occurrence of any content marks later repeats as duplicates
// rather than letting them be discarded independently. Duplicate status wins
// the partition when a record is both duplicate and discardable.
//
// The seen-fingerprint set lives only for the duration of the call; calling
// CleanBatch twice with the same input yields identical results.
func (c *Cleaner) CleanBatch(payloads []Payload) *Summary {
	start := time.Now()

	seen := make(map[string]struct{}, len(payloads))
	summary := &Summary{
		Records:    []Record{},
		Duplicates: []Record{},
		Discarded:  []Record{},
		Stats:      newStats(),
	}

	for _, payload := range payloads {
		cleaned := c.normalize(payload.Text)
		fp := fingerprint(cleaned)

		_, dup := seen[fp]
		isDuplicate := c.options.Deduplicate && dup
		reason := c.discardReason(cleaned)

		record := Record{
			Identifier:    payload.Identifier,
			CleanedText:   cleaned,
			Metadata:      payload.Metadata,
			Fingerprint:   fp,
			IsDuplicate:   isDuplicate,
			Discarded:     reason != "",
			DiscardReason: reason,
		}

		seen[fp] = struct{}{}
		summary.Stats.record(payload, record)

		switch {
		case isDuplicate:
			summary.Duplicates = append(summary.Duplicates, record)
		case record.Discarded:
			summary.Discarded = append(summary.Discarded, record)
		default:
			summary.Records = append(summary.Records, record)
		}
	}

	summary.Stats.Duration = time.Since(start)
	return summary
}

// discardReason decides whether cleaned text is excluded from the accepted
// set, independent of duplicate detection. Length is counted in characters,
// not bytes, so multibyte content is not penalized.
func (c *Cleaner) discardReason(cleaned string) string {
	if cleaned == "" {
		return ReasonEmpty
	}
	if utf8.RuneCountInString(cleaned) < c.options.MinCharacters {
		return ReasonTooShort
	}
	return ""
}

// CleanTexts cleans a batch with a one-off cleaner. Convenience wrapper for
// callers that do not reuse options across batches.
func CleanTexts(payloads []Payload, opts *Options) (*Summary, error) {
	c, err := New(opts)
	if err != nil {
		return nil, err
	}
	return c.CleanBatch(payloads), nil
}
