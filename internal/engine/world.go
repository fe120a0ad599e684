package engine

import (
	"math"
	"math/rand"
)

// SpawnCommand asks for a new ball at a pointer click. Points on or outside
// the boundary circle are ignored.
type SpawnCommand struct {
	X, Y float64
}

// World owns the ball collection and advances it tick by tick. It is not
// safe for concurrent use; frontends read through Snapshot between steps.
type World struct {
	params Params
	rng    *rand.Rand

	balls  []*Ball
	tick   int
	splits int
}

func NewWorld(p Params, seed int64) *World {
	return &World{
		params: p,
		rng:    rand.New(rand.NewSource(seed)),
		balls:  make([]*Ball, 0, 64),
	}
}

// SpawnInitial seeds the classic starting ball 100 units above the boundary
// center with a small random horizontal kick.
func (w *World) SpawnInitial() {
	w.balls = append(w.balls, &Ball{
		X:      w.params.CenterX,
		Y:      w.params.CenterY - 100,
		Radius: w.params.InitialBallRadius,
		VX:     w.rng.Float64()*4 - 2,
		Color:  randomColor(w.rng),
		Active: true,
	})
}

// spawnAt places a click ball with a random kick. Spawn points must be
// strictly inside the boundary; anything else is a no-op.
func (w *World) spawnAt(x, y float64) bool {
	if math.Hypot(x-w.params.CenterX, y-w.params.CenterY) >= w.params.BoundaryRadius {
		return false
	}
	w.balls = append(w.balls, &Ball{
		X:      x,
		Y:      y,
		Radius: w.params.InitialBallRadius,
		VX:     w.rng.Float64()*8 - 4,
		VY:     w.rng.Float64()*8 - 4,
		Color:  randomColor(w.rng),
		Active: true,
	})
	return true
}

// Step advances the whole simulation one tick: spawn commands first, then a
// physics update for every ball. Balls appended this tick, split children
// included, get their first update within the same tick. The collection is
// rebuilt from a stable snapshot; children accumulate in waves instead of
// mutating the slice mid-iteration, and inactive parents are dropped when
// the tick's collection is merged.
func (w *World) Step(spawns []SpawnCommand) {
	for _, c := range spawns {
		w.spawnAt(c.X, c.Y)
	}

	wave := w.balls
	next := make([]*Ball, 0, len(w.balls)+2)

	for len(wave) > 0 {
		var spawned []*Ball
		for _, b := range wave {
			if !b.Update(&w.params) {
				continue
			}
			if b.pendingSplit {
				if children := b.Split(&w.params, w.rng); len(children) > 0 {
					w.splits++
					spawned = append(spawned, children...)
				}
				b.pendingSplit = false
			}
			if b.Active {
				next = append(next, b)
			}
		}
		wave = spawned
	}

	w.balls = next
	w.tick++
}

// Snapshot returns a read-only copy of the active balls in insertion order.
func (w *World) Snapshot() []Ball {
	out := make([]Ball, len(w.balls))
	for i, b := range w.balls {
		out[i] = *b
	}
	return out
}

func (w *World) Count() int       { return len(w.balls) }
func (w *World) Tick() int        { return w.tick }
func (w *World) TotalSplits() int { return w.splits }
func (w *World) Params() Params   { return w.params }

// Energy returns the total kinetic energy with mass taken as radius².
func (w *World) Energy() float64 {
	total := 0.0
	for _, b := range w.balls {
		total += 0.5 * b.Radius * b.Radius * (b.VX*b.VX + b.VY*b.VY)
	}
	return total
}

// Reset clears the collection and reseeds the starting ball.
func (w *World) Reset() {
	w.balls = w.balls[:0]
	w.tick = 0
	w.splits = 0
	w.SpawnInitial()
}

// GetParams exposes the tunable physics parameters for interactive
// frontends.
func (w *World) GetParams() map[string]float64 {
	return map[string]float64{
		"gravity":     w.params.Gravity,
		"max_speed":   w.params.MaxSpeed,
		"split_force": w.params.SplitForce,
		"split_angle": w.params.SplitAngleDeg,
		"min_radius":  w.params.MinBallRadius,
		"shrink":      w.params.ShrinkFactor,
		"bounce":      w.params.BounceFactor,
	}
}

func (w *World) SetParam(name string, value float64) error {
	switch name {
	case "gravity":
		if value < 0 {
			return ErrParameterBounds
		}
		w.params.Gravity = value
	case "max_speed":
		if value <= 0 {
			return ErrParameterBounds
		}
		w.params.MaxSpeed = value
	case "split_force":
		if value < 0 {
			return ErrParameterBounds
		}
		w.params.SplitForce = value
	case "split_angle":
		w.params.SplitAngleDeg = value
	case "min_radius":
		if value <= 0 {
			return ErrParameterBounds
		}
		w.params.MinBallRadius = value
	case "shrink":
		if value <= 1 {
			return ErrParameterBounds
		}
		w.params.ShrinkFactor = value
	case "bounce":
		if value <= 0 {
			return ErrParameterBounds
		}
		w.params.BounceFactor = value
	default:
		return ErrUnknownParameter
	}
	return nil
}
