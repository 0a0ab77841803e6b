package cleaner

// Payload is a single raw unit of crawled text submitted for cleaning.
// Identifier is caller-supplied correlation data and is never interpreted;
// Metadata is carried through to the output record untouched.
type Payload struct {
	Identifier string         `json:"identifier,omitempty" yaml:"identifier,omitempty"`
	Text       string         `json:"text" yaml:"text"`
	Metadata   map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Discard reasons attached to records excluded from the accepted set.
const (
	ReasonEmpty    = "empty"
	ReasonTooShort = "too_short"
)

// Record is the result of cleaning a single payload.
type Record struct {
	Identifier  string         `json:"identifier,omitempty" yaml:"identifier,omitempty"`
	CleanedText string         `json:"cleaned_text" yaml:"cleaned_text"`
	Metadata    map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`

	// Fingerprint is the hex SHA-256 of the cleaned text. Payloads that differ
	// only in content the active options remove collapse to the same value.
	Fingerprint string `json:"fingerprint" yaml:"fingerprint"`

	// IsDuplicate is true when deduplication is enabled and an earlier payload
	// in the same batch produced the same fingerprint.
	IsDuplicate bool `json:"is_duplicate" yaml:"is_duplicate"`

	// Discarded and DiscardReason are computed independently of duplicate
	// status: a duplicate record can still carry a discard reason.
	Discarded     bool   `json:"discarded" yaml:"discarded"`
	DiscardReason string `json:"discard_reason,omitempty" yaml:"discard_reason,omitempty"`
}

// Summary is the aggregated output of one batch. Every input payload lands in
// exactly one of the three partitions, each preserving input order. Duplicate
// status takes precedence: a record that is both duplicate and discardable is
// reported under Duplicates.
type Summary struct {
	Records    []Record `json:"records" yaml:"records"`
	Duplicates []Record `json:"duplicates" yaml:"duplicates"`
	Discarded  []Record `json:"discarded" yaml:"discarded"`

	// Stats captures counters and timing for the batch.
	Stats *Stats `json:"stats,omitempty" yaml:"stats,omitempty"`
}
