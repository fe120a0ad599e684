package sim

import (
	"context"
	"testing"

	"github.com/san-kum/splitsim/internal/engine"
)

type peakMetric struct {
	peak float64
}

func (m *peakMetric) Name() string { return "peak" }
func (m *peakMetric) Observe(balls []engine.Ball, tick int) {
	if n := float64(len(balls)); n > m.peak {
		m.peak = n
	}
}
func (m *peakMetric) Value() float64 { return m.peak }
func (m *peakMetric) Reset()         { m.peak = 0 }

func newTestWorld(seed int64) *engine.World {
	w := engine.NewWorld(engine.DefaultParams(), seed)
	w.SpawnInitial()
	return w
}

func TestRunSeriesLengths(t *testing.T) {
	r := New(newTestWorld(42))

	result, err := r.Run(context.Background(), Config{Ticks: 120})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for name, series := range map[string][]float64{
		"ticks": result.Ticks, "counts": result.Counts,
		"energy": result.Energy, "splits": result.Splits,
	} {
		if len(series) != 120 {
			t.Errorf("%s series length %d, want 120", name, len(series))
		}
	}
	if result.Ticks[0] != 1 || result.Ticks[119] != 120 {
		t.Errorf("tick series spans [%f, %f], want [1, 120]", result.Ticks[0], result.Ticks[119])
	}
	if result.FinalCount != int(result.Counts[119]) {
		t.Errorf("final count %d disagrees with last sample %f", result.FinalCount, result.Counts[119])
	}
}

func TestRunInvalidConfig(t *testing.T) {
	r := New(newTestWorld(1))

	for _, ticks := range []int{0, -5} {
		if _, err := r.Run(context.Background(), Config{Ticks: ticks}); err == nil {
			t.Errorf("expected error for ticks=%d", ticks)
		}
	}
}

func TestRunMetricObserved(t *testing.T) {
	r := New(newTestWorld(42))
	r.AddMetric(&peakMetric{})

	result, err := r.Run(context.Background(), Config{Ticks: 600})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	peak, ok := result.Metrics["peak"]
	if !ok {
		t.Fatal("peak metric missing from result")
	}
	if peak < 1 {
		t.Errorf("peak %f, want >= 1", peak)
	}
	if peak < float64(result.FinalCount) {
		t.Errorf("peak %f below final count %d", peak, result.FinalCount)
	}
}

func TestRunCancellation(t *testing.T) {
	r := New(newTestWorld(1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := r.Run(ctx, Config{Ticks: 1000})
	if err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(result.Ticks) != 0 {
		t.Errorf("pre-canceled run produced %d samples", len(result.Ticks))
	}
}
