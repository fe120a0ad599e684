package engine

import (
	"math"
	"math/rand"
	"testing"
)

func TestSplitConservation(t *testing.T) {
	p := DefaultParams()
	rng := rand.New(rand.NewSource(1))
	b := &Ball{X: p.CenterX, Y: p.CenterY, Radius: 30, VX: 8, Active: true}

	children := b.Split(&p, rng)

	if len(children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(children))
	}
	if b.Active {
		t.Error("parent must be inactive after split")
	}

	wantRadius := 30.0 / p.ShrinkFactor
	for i, c := range children {
		if math.Abs(c.Radius-wantRadius) > 1e-9 {
			t.Errorf("child %d radius %f, want %f", i, c.Radius, wantRadius)
		}
		if !c.Active {
			t.Errorf("child %d should be active", i)
		}
		if speed := c.Speed(); math.Abs(speed-p.SplitForce) > 1e-9 {
			t.Errorf("child %d speed %f, want %f", i, speed, p.SplitForce)
		}
	}
}

func TestSplitDirections(t *testing.T) {
	p := DefaultParams()
	rng := rand.New(rand.NewSource(1))
	// Parent heading along +x, so children leave at exactly ±30°.
	b := &Ball{X: p.CenterX, Y: p.CenterY, Radius: 30, VX: 8, Active: true}

	children := b.Split(&p, rng)
	if len(children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(children))
	}

	offset := p.SplitAngleDeg * math.Pi / 180
	wantVX := p.SplitForce * math.Cos(offset)
	wantVY := p.SplitForce * math.Sin(offset)

	if math.Abs(children[0].VX-wantVX) > 1e-9 || math.Abs(children[0].VY-wantVY) > 1e-9 {
		t.Errorf("first child velocity (%f, %f), want (%f, %f)",
			children[0].VX, children[0].VY, wantVX, wantVY)
	}
	if math.Abs(children[1].VX-wantVX) > 1e-9 || math.Abs(children[1].VY+wantVY) > 1e-9 {
		t.Errorf("second child velocity (%f, %f), want (%f, %f)",
			children[1].VX, children[1].VY, wantVX, -wantVY)
	}
}

func TestSplitTermination(t *testing.T) {
	p := DefaultParams()
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name   string
		radius float64
	}{
		{"at minimum", p.MinBallRadius},
		{"below minimum", p.MinBallRadius - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Ball{X: p.CenterX, Y: p.CenterY, Radius: tt.radius, VX: 8, Active: true}
			if children := b.Split(&p, rng); children != nil {
				t.Errorf("expected no children, got %d", len(children))
			}
			if !b.Active {
				t.Error("unsplit ball must stay active")
			}
		})
	}
}

func TestSplitInactiveParent(t *testing.T) {
	p := DefaultParams()
	rng := rand.New(rand.NewSource(1))
	b := &Ball{X: p.CenterX, Y: p.CenterY, Radius: 30, VX: 8}

	if children := b.Split(&p, rng); children != nil {
		t.Errorf("inactive parent must not split, got %d children", len(children))
	}
}

func TestSplitChildrenContained(t *testing.T) {
	p := DefaultParams()
	rng := rand.New(rand.NewSource(1))
	// Parent hard against the wall; children must be clamped inside.
	b := &Ball{X: p.CenterX + 240, Y: p.CenterY, Radius: 30, VX: 8, Active: true}

	for _, c := range b.Split(&p, rng) {
		dist := math.Hypot(c.X-p.CenterX, c.Y-p.CenterY)
		if dist+c.Radius > p.BoundaryRadius {
			t.Errorf("child outside boundary: dist+radius = %f", dist+c.Radius)
		}
	}
}

func TestSplitColorsFromPalette(t *testing.T) {
	p := DefaultParams()
	rng := rand.New(rand.NewSource(99))
	b := &Ball{X: p.CenterX, Y: p.CenterY, Radius: 30, VX: 8, Active: true}

	for _, c := range b.Split(&p, rng) {
		if c.Color < 0 || int(c.Color) >= len(Palette) {
			t.Errorf("child color %d outside palette", c.Color)
		}
	}
}
