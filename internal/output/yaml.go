package output

import (
	"bufio"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/voxlab/scour/pkg/cleaner"
)

type yamlWriter struct {
	w *bufio.Writer
}

func newYAMLWriter(w io.Writer) *yamlWriter {
	return &yamlWriter{w: bufio.NewWriter(w)}
}

func (w *yamlWriter) WriteRecords(records []cleaner.Record) error {
	return w.encode(records)
}

func (w *yamlWriter) WriteSummary(summary *cleaner.Summary) error {
	return w.encode(summary)
}

func (w *yamlWriter) encode(data any) error {
	encoder := yaml.NewEncoder(w.w)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return err
	}
	return encoder.Close()
}

func (w *yamlWriter) Flush() error {
	return w.w.Flush()
}
