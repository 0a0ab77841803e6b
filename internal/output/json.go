package output

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/voxlab/scour/pkg/cleaner"
)

// jsonWriter writes a pretty-printed JSON document.
type jsonWriter struct {
	w *bufio.Writer
}

func newJSONWriter(w io.Writer) *jsonWriter {
	return &jsonWriter{w: bufio.NewWriter(w)}
}

func (w *jsonWriter) WriteRecords(records []cleaner.Record) error {
	return w.encode(records)
}

func (w *jsonWriter) WriteSummary(summary *cleaner.Summary) error {
	return w.encode(summary)
}

func (w *jsonWriter) encode(data any) error {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	if _, err := w.w.Write(out); err != nil {
		return err
	}
	_, err = w.w.WriteString("\n")
	return err
}

func (w *jsonWriter) Flush() error {
	return w.w.Flush()
}

// jsonlWriter writes one record per line. A summary is emitted as records,
// then duplicates, then discarded, so downstream tooling can stream it.
type jsonlWriter struct {
	w *bufio.Writer
}

func newJSONLWriter(w io.Writer) *jsonlWriter {
	return &jsonlWriter{w: bufio.NewWriter(w)}
}

func (w *jsonlWriter) WriteRecords(records []cleaner.Record) error {
	for _, rec := range records {
		out, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		if _, err := w.w.Write(out); err != nil {
			return err
		}
		if _, err := w.w.WriteString("\n"); err != nil {
			return err
		}
	}
	return nil
}

func (w *jsonlWriter) WriteSummary(summary *cleaner.Summary) error {
	for _, partition := range [][]cleaner.Record{
		summary.Records, summary.Duplicates, summary.Discarded,
	} {
		if err := w.WriteRecords(partition); err != nil {
			return err
		}
	}
	return nil
}

func (w *jsonlWriter) Flush() error {
	return w.w.Flush()
}
