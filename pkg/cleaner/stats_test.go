package cleaner

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestStatsCounts(t *testing.T) {
	c := mustCleaner(t, &Options{
		Deduplicate:        true,
		MinCharacters:      15,
		CollapseWhitespace: true,
	})

	summary := c.CleanBatch([]Payload{
		{Identifier: "a", Text: "a perfectly fine piece of feedback"},
		{Identifier: "b", Text: "a perfectly fine piece of feedback"},
		{Identifier: "c", Text: "meh"},
		{Identifier: "d", Text: ""},
	})

	s := summary.Stats
	if s == nil {
		t.Fatal("expected stats on summary")
	}
	if s.Inputs != 4 || s.Accepted != 1 || s.Duplicates != 1 || s.Discarded != 2 {
		t.Errorf("counts = %d/%d/%d/%d", s.Inputs, s.Accepted, s.Duplicates, s.Discarded)
	}
	if s.DiscardReasons[ReasonTooShort] != 1 || s.DiscardReasons[ReasonEmpty] != 1 {
		t.Errorf("discard reasons = %v", s.DiscardReasons)
	}
	if s.OutputBytes == 0 || s.InputBytes < s.OutputBytes {
		t.Errorf("byte accounting looks wrong: in=%d out=%d", s.InputBytes, s.OutputBytes)
	}
}

func TestStatsReductionPercent(t *testing.T) {
	s := &Stats{InputBytes: 200, OutputBytes: 50}
	if got := s.ReductionPercent(); got != 75 {
		t.Errorf("ReductionPercent = %.1f, want 75", got)
	}

	empty := &Stats{}
	if got := empty.ReductionPercent(); got != 0 {
		t.Errorf("empty batch reduction = %.1f, want 0", got)
	}
}

func TestStatsDurationMarshalsAsNanoseconds(t *testing.T) {
	s := &Stats{Duration: 2 * time.Millisecond}

	out, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(out), `"duration_ns":2000000`) {
		t.Errorf("expected nanosecond duration field, got %s", out)
	}
}

func TestStatsString(t *testing.T) {
	s := newStats()
	s.Inputs = 3
	s.Accepted = 1
	s.Discarded = 2
	s.DiscardReasons[ReasonEmpty] = 2
	s.InputBytes = 100
	s.OutputBytes = 40

	out := s.String()
	for _, want := range []string{"Payloads: 3", "1 accepted", "empty=2", "60.0% reduction"} {
		if !strings.Contains(out, want) {
			t.Errorf("String() missing %q:\n%s", want, out)
		}
	}
}
