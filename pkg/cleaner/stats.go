package cleaner

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Stats captures counters and timing for one batch. Advisory only: callers
// that log or report discard outcomes read it off the summary.
type Stats struct {
	Inputs     int `json:"inputs" yaml:"inputs"`
	Accepted   int `json:"accepted" yaml:"accepted"`
	Duplicates int `json:"duplicates" yaml:"duplicates"`
	Discarded  int `json:"discarded" yaml:"discarded"`

	// DiscardReasons counts discard-eligible records by reason, including
	// duplicates that also carried a reason.
	DiscardReasons map[string]int `json:"discard_reasons,omitempty" yaml:"discard_reasons,omitempty"`

	// InputBytes covers all raw payloads; OutputBytes only accepted records.
	InputBytes  int `json:"input_bytes" yaml:"input_bytes"`
	OutputBytes int `json:"output_bytes" yaml:"output_bytes"`

	// Duration marshals as nanoseconds, the encoding of time.Duration.
	Duration time.Duration `json:"duration_ns" yaml:"duration_ns"`
}

func newStats() *Stats {
	return &Stats{DiscardReasons: make(map[string]int)}
}

func (s *Stats) record(payload Payload, rec Record) {
	s.Inputs++
	s.InputBytes += len(payload.Text)

	if rec.DiscardReason != "" {
		s.DiscardReasons[rec.DiscardReason]++
	}

	switch {
	case rec.IsDuplicate:
		s.Duplicates++
	case rec.Discarded:
		s.Discarded++
	default:
		s.Accepted++
		s.OutputBytes += len(rec.CleanedText)
	}
}

// ReductionPercent returns the size reduction from raw input to accepted
// output.
func (s *Stats) ReductionPercent() float64 {
	if s.InputBytes == 0 {
		return 0
	}
	return float64(s.InputBytes-s.OutputBytes) / float64(s.InputBytes) * 100
}

// String returns a human-readable one-batch summary.
func (s *Stats) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Payloads: %d (%d accepted, %d duplicates, %d discarded)\n",
		s.Inputs, s.Accepted, s.Duplicates, s.Discarded))
	sb.WriteString(fmt.Sprintf("Size: %d -> %d bytes (%.1f%% reduction)\n",
		s.InputBytes, s.OutputBytes, s.ReductionPercent()))

	if len(s.DiscardReasons) > 0 {
		reasons := make([]string, 0, len(s.DiscardReasons))
		for reason, count := range s.DiscardReasons {
			reasons = append(reasons, fmt.Sprintf("%s=%d", reason, count))
		}
		sort.Strings(reasons)
		sb.WriteString("Discard reasons: " + strings.Join(reasons, ", ") + "\n")
	}

	sb.WriteString(fmt.Sprintf("Duration: %v\n", s.Duration.Round(time.Microsecond)))
	return sb.String()
}
