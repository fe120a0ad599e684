package engine

import (
	"math"
	"math/rand"
)

// Split replaces a splittable parent with two children diverging from the
// parent's current heading. Children spawn at the parent's position with
// speed SplitForce at ±SplitAngleDeg off the velocity angle, each with an
// independently random palette color, and are clamped into the boundary
// before being returned.
//
// A ball at or below the minimum radius, or an inactive ball, returns nil
// and is left untouched; it keeps bouncing without splitting.
func (b *Ball) Split(p *Params, rng *rand.Rand) []*Ball {
	if b.Radius <= p.MinBallRadius || !b.Active {
		return nil
	}

	newRadius := b.Radius / p.ShrinkFactor
	baseAngle := math.Atan2(b.VY, b.VX)
	offset := p.SplitAngleDeg * math.Pi / 180

	children := make([]*Ball, 0, 2)
	for _, da := range [2]float64{offset, -offset} {
		angle := baseAngle + da
		child := &Ball{
			X:      b.X,
			Y:      b.Y,
			Radius: newRadius,
			VX:     p.SplitForce * math.Cos(angle),
			VY:     p.SplitForce * math.Sin(angle),
			Color:  randomColor(rng),
			Active: true,
		}
		child.keepInBounds(p)
		children = append(children, child)
	}

	b.Active = false
	return children
}
