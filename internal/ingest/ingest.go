// Package ingest builds cleaning payloads from files and streams.
//
// Each supported format carries the same item shape: an optional id, the raw
// text, and an opaque metadata bag that travels through the cleaner
// untouched.
package ingest

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/voxlab/scour/pkg/cleaner"
)

// Format identifies the input encoding.
type Format string

const (
	FormatJSON  Format = "json"
	FormatJSONL Format = "jsonl"
	FormatYAML  Format = "yaml"

	// FormatText treats the whole input as one raw payload.
	FormatText Format = "text"
)

// Item is one raw unit of crawled content as it appears in input files.
type Item struct {
	ID       string         `json:"id,omitempty" yaml:"id,omitempty"`
	Text     string         `json:"text" yaml:"text"`
	Metadata map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Payloads converts items to cleaning payloads, preserving order.
func Payloads(items []Item) []cleaner.Payload {
	payloads := make([]cleaner.Payload, 0, len(items))
	for _, item := range items {
		payloads = append(payloads, cleaner.Payload{
			Identifier: item.ID,
			Text:       item.Text,
			Metadata:   item.Metadata,
		})
	}
	return payloads
}

// DetectFormat maps a file extension to an input format. Unknown extensions
// fall back to raw text.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".jsonl", ".ndjson":
		return FormatJSONL
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}

// ParseFormat validates a format string; empty or "auto" means auto-detect
// by extension.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatJSONL, FormatYAML, FormatText:
		return Format(s), nil
	case "", "auto":
		return "", nil
	default:
		return "", fmt.Errorf("unsupported input format: %q (expected auto, json, jsonl, yaml, or text)", s)
	}
}

// LoadFile reads payloads from a file, detecting the format from the
// extension unless one is forced. For FormatText the whole file is one
// payload identified by its path.
func LoadFile(path string, format Format) ([]cleaner.Payload, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	if format == "" {
		format = DetectFormat(path)
	}
	return Load(f, format, path)
}

// Load reads payloads from a reader. The source name identifies raw-text
// payloads and error messages.
func Load(r io.Reader, format Format, source string) ([]cleaner.Payload, error) {
	switch format {
	case FormatJSON:
		return loadJSON(r, source)
	case FormatJSONL:
		return loadJSONL(r, source)
	case FormatYAML:
		return loadYAML(r, source)
	case FormatText:
		return loadText(r, source)
	default:
		return nil, fmt.Errorf("unsupported input format: %q", format)
	}
}

func loadJSON(r io.Reader, source string) ([]cleaner.Payload, error) {
	var items []Item
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to parse %s as JSON array: %w", source, err)
	}
	return Payloads(items), nil
}

func loadJSONL(r io.Reader, source string) ([]cleaner.Payload, error) {
	var items []Item

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var item Item
		if err := json.Unmarshal([]byte(text), &item); err != nil {
			return nil, fmt.Errorf("failed to parse %s line %d: %w", source, line, err)
		}
		items = append(items, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", source, err)
	}
	return Payloads(items), nil
}

func loadYAML(r io.Reader, source string) ([]cleaner.Payload, error) {
	var items []Item
	if err := yaml.NewDecoder(r).Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to parse %s as YAML sequence: %w", source, err)
	}
	return Payloads(items), nil
}

func loadText(r io.Reader, source string) ([]cleaner.Payload, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", source, err)
	}
	return []cleaner.Payload{{Identifier: source, Text: string(data)}}, nil
}
