package engine

import (
	"errors"
	"math"
	"testing"
)

func TestSeedBallDropScenario(t *testing.T) {
	p := DefaultParams()
	w := NewWorld(p, 42)
	// Seed ball 100 units above center, no horizontal velocity, gravity only.
	w.balls = append(w.balls, &Ball{
		X: p.CenterX, Y: p.CenterY - 100, Radius: 30, Active: true,
	})

	for i := 0; i < 200 && w.Count() == 1; i++ {
		w.Step(nil)
	}

	if w.Count() != 2 {
		t.Fatalf("expected first impact to yield 2 balls, got %d", w.Count())
	}
	if w.TotalSplits() != 1 {
		t.Fatalf("expected exactly 1 split, got %d", w.TotalSplits())
	}

	wantRadius := 30.0 / p.ShrinkFactor
	for i, b := range w.Snapshot() {
		if math.Abs(b.Radius-wantRadius) > 1e-9 {
			t.Errorf("ball %d radius %f, want %f", i, b.Radius, wantRadius)
		}
		if !b.Active {
			t.Errorf("ball %d should be active", i)
		}
	}
}

func TestSpawnRejectedOnBoundary(t *testing.T) {
	p := DefaultParams()
	w := NewWorld(p, 1)

	// Exactly on the circle: strict inequality required, so rejected.
	if w.spawnAt(p.CenterX+p.BoundaryRadius, p.CenterY) {
		t.Error("spawn on the boundary circle must be rejected")
	}
	if w.spawnAt(p.CenterX+p.BoundaryRadius+50, p.CenterY) {
		t.Error("spawn outside the boundary must be rejected")
	}
	if w.Count() != 0 {
		t.Fatalf("rejected spawns must not add balls, got %d", w.Count())
	}

	if !w.spawnAt(p.CenterX, p.CenterY) {
		t.Error("spawn at center must be accepted")
	}
	if w.Count() != 1 {
		t.Fatalf("expected 1 ball, got %d", w.Count())
	}
}

func TestStepRejectsOutsideSpawnCommands(t *testing.T) {
	p := DefaultParams()
	w := NewWorld(p, 1)

	w.Step([]SpawnCommand{
		{X: p.CenterX + p.BoundaryRadius, Y: p.CenterY},
		{X: 0, Y: 0},
	})

	if w.Count() != 0 {
		t.Errorf("expected 0 balls after outside clicks, got %d", w.Count())
	}
}

func TestSpawnedBallUpdatedSameTick(t *testing.T) {
	p := DefaultParams()
	w := NewWorld(p, 7)

	w.Step([]SpawnCommand{{X: p.CenterX, Y: p.CenterY}})

	if w.Count() != 1 {
		t.Fatalf("expected 1 ball, got %d", w.Count())
	}
	if w.Tick() != 1 {
		t.Fatalf("expected tick 1, got %d", w.Tick())
	}

	// At the arena center nothing clamps or reflects, so the position must
	// equal spawn point plus the post-gravity velocity: proof the new ball
	// received its first physics update within the spawning tick.
	b := w.Snapshot()[0]
	if math.Abs(b.X-(p.CenterX+b.VX)) > 1e-9 || math.Abs(b.Y-(p.CenterY+b.VY)) > 1e-9 {
		t.Errorf("spawned ball not updated in its first tick: pos (%f, %f), vel (%f, %f)",
			b.X, b.Y, b.VX, b.VY)
	}
}

func TestContainmentInvariant(t *testing.T) {
	p := DefaultParams()
	w := NewWorld(p, 3)
	w.SpawnInitial()

	for i := 0; i < 600; i++ {
		w.Step(nil)
		for j, b := range w.Snapshot() {
			dist := math.Hypot(b.X-p.CenterX, b.Y-p.CenterY)
			if dist+b.Radius > p.BoundaryRadius+1.0 {
				t.Fatalf("tick %d ball %d escaped: dist+radius = %f", i, j, dist+b.Radius)
			}
		}
	}
}

func TestSpeedBoundAfterStep(t *testing.T) {
	p := DefaultParams()
	minSpeed := math.Sqrt(2*p.Gravity*p.BoundaryRadius) * p.BounceFactor
	w := NewWorld(p, 11)
	w.SpawnInitial()

	for i := 0; i < 600; i++ {
		w.Step(nil)
		for j, b := range w.Snapshot() {
			// Reflection may transiently raise speed to minSpeed; the next
			// tick's clamp pulls it back down.
			if s := b.Speed(); s > minSpeed+1e-6 {
				t.Fatalf("tick %d ball %d speed %f exceeds bounce ceiling %f", i, j, s, minSpeed)
			}
		}
	}
}

func TestMinRadiusBallNeverSplits(t *testing.T) {
	p := DefaultParams()
	w := NewWorld(p, 5)
	w.balls = append(w.balls, &Ball{
		X: p.CenterX, Y: p.CenterY - 100, Radius: p.MinBallRadius, Active: true,
	})

	for i := 0; i < 600; i++ {
		w.Step(nil)
	}

	if w.Count() != 1 {
		t.Errorf("minimum-radius ball must persist alone, got %d balls", w.Count())
	}
	if w.TotalSplits() != 0 {
		t.Errorf("expected 0 splits, got %d", w.TotalSplits())
	}
}

func TestCountTracksSplits(t *testing.T) {
	w := NewWorld(DefaultParams(), 9)
	w.SpawnInitial()

	for i := 0; i < 600; i++ {
		w.Step(nil)
	}

	// Every split removes one ball and adds two.
	if want := 1 + w.TotalSplits(); w.Count() != want {
		t.Errorf("count %d inconsistent with %d splits (want %d)", w.Count(), w.TotalSplits(), want)
	}
}

func TestReset(t *testing.T) {
	w := NewWorld(DefaultParams(), 13)
	w.SpawnInitial()
	for i := 0; i < 300; i++ {
		w.Step(nil)
	}

	w.Reset()

	if w.Count() != 1 {
		t.Errorf("expected 1 ball after reset, got %d", w.Count())
	}
	if w.Tick() != 0 || w.TotalSplits() != 0 {
		t.Errorf("expected counters cleared, got tick %d splits %d", w.Tick(), w.TotalSplits())
	}
}

func TestSetParam(t *testing.T) {
	w := NewWorld(DefaultParams(), 1)

	if err := w.SetParam("gravity", 1.0); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if w.Params().Gravity != 1.0 {
		t.Errorf("expected gravity 1.0, got %f", w.Params().Gravity)
	}

	if err := w.SetParam("max_speed", -1); !errors.Is(err, ErrParameterBounds) {
		t.Errorf("expected ErrParameterBounds, got %v", err)
	}
	if err := w.SetParam("warp", 1); !errors.Is(err, ErrUnknownParameter) {
		t.Errorf("expected ErrUnknownParameter, got %v", err)
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	w := NewWorld(DefaultParams(), 1)
	w.SpawnInitial()

	snap := w.Snapshot()
	snap[0].X = -1e6

	if w.Snapshot()[0].X == -1e6 {
		t.Error("snapshot must not alias engine state")
	}
}
