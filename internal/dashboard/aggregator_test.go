package dashboard

import (
	"context"
	"errors"
	"testing"

	"sitedesk/internal/taxonomy"
)

func TestBuildStepHistogramSeedsAllStages(t *testing.T) {
	hist := BuildStepHistogram(nil)
	if len(hist) != 6 {
		t.Fatalf("histogram has %d keys, want 6", len(hist))
	}
	for _, s := range taxonomy.Steps() {
		if v, ok := hist[s]; !ok || v != 0 {
			t.Errorf("hist[%s] = %d (present=%v), want 0 present", s, v, ok)
		}
	}
}

func TestBuildStepHistogramCounts(t *testing.T) {
	steps := []taxonomy.ProcessStep{
		taxonomy.StepVisit,
		taxonomy.StepVisit,
		taxonomy.StepInstall,
		taxonomy.StepSettle,
		taxonomy.StepInstall,
	}
	hist := BuildStepHistogram(steps)

	if hist[taxonomy.StepVisit] != 2 {
		t.Errorf("visit = %d, want 2", hist[taxonomy.StepVisit])
	}
	if hist[taxonomy.StepInstall] != 2 {
		t.Errorf("install = %d, want 2", hist[taxonomy.StepInstall])
	}
	if hist[taxonomy.StepSettle] != 1 {
		t.Errorf("settle = %d, want 1", hist[taxonomy.StepSettle])
	}
	// Empty stages stay at zero rather than being omitted.
	if v, ok := hist[taxonomy.StepEstimate]; !ok || v != 0 {
		t.Errorf("estimate = %d (present=%v), want 0 present", v, ok)
	}

	sum := 0
	for _, v := range hist {
		sum += v
	}
	if sum != len(steps) {
		t.Errorf("histogram sum = %d, want %d", sum, len(steps))
	}
}

func TestSummaryRefusesSecondCycle(t *testing.T) {
	agg := NewAggregator(nil, nil, nil)

	// Simulate a running cycle; the next refresh must be a no-op
	// rather than a second concurrent fetch.
	if !agg.inflight.CompareAndSwap(false, true) {
		t.Fatal("could not mark aggregator in flight")
	}
	defer agg.inflight.Store(false)

	_, err := agg.Summary(context.Background())
	if !errors.Is(err, ErrRefreshInFlight) {
		t.Fatalf("Summary during running cycle: err = %v, want ErrRefreshInFlight", err)
	}
}
