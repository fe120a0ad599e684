package gui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (a *App) drawSim() {
	p := a.World.Params()

	rl.DrawCircleLines(int32(p.CenterX), int32(p.CenterY), float32(p.BoundaryRadius), ColBoundry)

	for _, b := range a.World.Snapshot() {
		if !finite(b.X) || !finite(b.Y) {
			continue
		}
		r, g, bl := b.Color.RGB()
		rl.DrawCircle(int32(b.X), int32(b.Y), float32(b.Radius), rl.NewColor(r, g, bl, 255))
	}
}
