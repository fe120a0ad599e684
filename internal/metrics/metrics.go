// Package metrics provides the scalar reductions reported after headless
// runs. Each type implements sim.Metric.
package metrics

import (
	"math"

	"github.com/san-kum/splitsim/internal/engine"
	"github.com/san-kum/splitsim/internal/sim"
)

// PeakBalls tracks the largest ball count seen over a run.
type PeakBalls struct {
	peak float64
}

func (m *PeakBalls) Name() string { return "peak_balls" }

func (m *PeakBalls) Observe(balls []engine.Ball, tick int) {
	if n := float64(len(balls)); n > m.peak {
		m.peak = n
	}
}

func (m *PeakBalls) Value() float64 { return m.peak }
func (m *PeakBalls) Reset()         { m.peak = 0 }

// MeanBalls tracks the average ball count across observed ticks.
type MeanBalls struct {
	sum     float64
	samples int
}

func (m *MeanBalls) Name() string { return "mean_balls" }

func (m *MeanBalls) Observe(balls []engine.Ball, tick int) {
	m.sum += float64(len(balls))
	m.samples++
}

func (m *MeanBalls) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MeanBalls) Reset() { m.sum, m.samples = 0, 0 }

// PeakSpeed tracks the fastest ball speed seen over a run.
type PeakSpeed struct {
	peak float64
}

func (m *PeakSpeed) Name() string { return "peak_speed" }

func (m *PeakSpeed) Observe(balls []engine.Ball, tick int) {
	for _, b := range balls {
		if s := math.Hypot(b.VX, b.VY); s > m.peak {
			m.peak = s
		}
	}
}

func (m *PeakSpeed) Value() float64 { return m.peak }
func (m *PeakSpeed) Reset()         { m.peak = 0 }

// MeanEnergy tracks the average total kinetic energy, with mass taken as
// radius squared to match the engine's energy accounting.
type MeanEnergy struct {
	sum     float64
	samples int
}

func (m *MeanEnergy) Name() string { return "mean_energy" }

func (m *MeanEnergy) Observe(balls []engine.Ball, tick int) {
	total := 0.0
	for _, b := range balls {
		total += 0.5 * b.Radius * b.Radius * (b.VX*b.VX + b.VY*b.VY)
	}
	m.sum += total
	m.samples++
}

func (m *MeanEnergy) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MeanEnergy) Reset() { m.sum, m.samples = 0, 0 }

// Standard returns the default metric set attached to every stored run.
func Standard() []sim.Metric {
	return []sim.Metric{&PeakBalls{}, &MeanBalls{}, &PeakSpeed{}, &MeanEnergy{}}
}
