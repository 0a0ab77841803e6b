// Package output serializes cleaning results to JSON, JSONL, or YAML.
package output

import (
	"fmt"
	"io"

	"github.com/voxlab/scour/pkg/cleaner"
)

// Format represents output format types.
type Format string

const (
	FormatJSON  Format = "json"
	FormatJSONL Format = "jsonl"
	FormatYAML  Format = "yaml"
)

// Writer serializes cleaned records.
type Writer interface {
	// WriteRecords outputs a single partition of records.
	WriteRecords(records []cleaner.Record) error

	// WriteSummary outputs a full batch summary with all three partitions.
	WriteSummary(summary *cleaner.Summary) error

	// Flush ensures all buffered data is written.
	Flush() error
}

// NewWriter creates a writer for the specified format.
func NewWriter(w io.Writer, format Format) (Writer, error) {
	switch format {
	case FormatJSON:
		return newJSONWriter(w), nil
	case FormatJSONL:
		return newJSONLWriter(w), nil
	case FormatYAML:
		return newYAMLWriter(w), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// ParseFormat validates a format string.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatJSONL, FormatYAML:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unsupported output format: %q (expected json, jsonl, or yaml)", s)
	}
}
