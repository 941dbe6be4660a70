package summarize

import (
	"testing"
	"time"
)

func TestStats_EmptySnapshot(t *testing.T) {
	s := NewStats(time.Hour)
	snap := s.Snapshot()
	if snap.Count != 0 {
		t.Errorf("count = %d, want 0", snap.Count)
	}
	if snap.MinMs != 0 || snap.MaxMs != 0 || snap.AvgMs != 0 {
		t.Errorf("empty snapshot should be zero valued: %+v", snap)
	}
}

func TestStats_Aggregates(t *testing.T) {
	s := NewStats(time.Hour)
	for _, ms := range []int64{100, 200, 300} {
		s.Record(ms)
	}

	snap := s.Snapshot()
	if snap.Count != 3 {
		t.Fatalf("count = %d, want 3", snap.Count)
	}
	if snap.MinMs != 100 {
		t.Errorf("min = %d, want 100", snap.MinMs)
	}
	if snap.MaxMs != 300 {
		t.Errorf("max = %d, want 300", snap.MaxMs)
	}
	if snap.AvgMs != 200 {
		t.Errorf("avg = %v, want 200", snap.AvgMs)
	}
	if snap.P50Ms != 200 {
		t.Errorf("p50 = %v, want 200", snap.P50Ms)
	}
}

func TestStats_NegativeClampedToZero(t *testing.T) {
	s := NewStats(time.Hour)
	s.Record(-5)
	if snap := s.Snapshot(); snap.MinMs != 0 {
		t.Errorf("min = %d, want 0", snap.MinMs)
	}
}

func TestPercentile(t *testing.T) {
	sorted := []int64{10, 20, 30, 40}
	tests := []struct {
		pct  float64
		want float64
	}{
		{0, 10},
		{100, 40},
		{50, 25},
	}
	for _, tt := range tests {
		if got := percentile(sorted, tt.pct); got != tt.want {
			t.Errorf("percentile(%v) = %v, want %v", tt.pct, got, tt.want)
		}
	}
	if got := percentile(nil, 50); got != 0 {
		t.Errorf("percentile(nil) = %v, want 0", got)
	}
}
