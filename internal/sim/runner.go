// Package sim drives a headless world for a fixed number of ticks,
// collecting per-tick series and scalar metrics for the lab tooling.
package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/splitsim/internal/engine"
)

// Metric observes per-tick snapshots and reduces them to a named scalar.
type Metric interface {
	Name() string
	Observe(balls []engine.Ball, tick int)
	Value() float64
	Reset()
}

type Config struct {
	Ticks int
	Seed  int64
}

// Result holds the per-tick series of a headless run. Splits is cumulative.
type Result struct {
	Ticks  []float64
	Counts []float64
	Energy []float64
	Splits []float64

	FinalCount int
	Metrics    map[string]float64
}

type Runner struct {
	world   *engine.World
	metrics []Metric
}

func New(w *engine.World) *Runner {
	return &Runner{world: w, metrics: make([]Metric, 0)}
}

func (r *Runner) AddMetric(m Metric) { r.metrics = append(r.metrics, m) }

// Run advances the world cfg.Ticks times, sampling the series and metrics
// after every step. Cancellation is observed between steps only; a canceled
// run returns the series collected so far along with the context error.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := r.validateConfig(cfg); err != nil {
		return nil, err
	}

	result := &Result{
		Ticks:   make([]float64, 0, cfg.Ticks),
		Counts:  make([]float64, 0, cfg.Ticks),
		Energy:  make([]float64, 0, cfg.Ticks),
		Splits:  make([]float64, 0, cfg.Ticks),
		Metrics: make(map[string]float64),
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	for i := 0; i < cfg.Ticks; i++ {
		select {
		case <-ctx.Done():
			result.FinalCount = r.world.Count()
			return result, ctx.Err()
		default:
		}

		r.world.Step(nil)

		snap := r.world.Snapshot()
		for _, m := range r.metrics {
			m.Observe(snap, r.world.Tick())
		}

		result.Ticks = append(result.Ticks, float64(r.world.Tick()))
		result.Counts = append(result.Counts, float64(r.world.Count()))
		result.Energy = append(result.Energy, r.world.Energy())
		result.Splits = append(result.Splits, float64(r.world.TotalSplits()))
	}

	result.FinalCount = r.world.Count()
	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func (r *Runner) validateConfig(cfg Config) error {
	if cfg.Ticks <= 0 {
		return fmt.Errorf("ticks must be positive, got %d", cfg.Ticks)
	}
	return nil
}
