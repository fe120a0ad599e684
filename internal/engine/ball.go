package engine

import "math"

// Ball is the only entity type. A ball stays in the simulation until it
// splits; it is never destroyed for any other reason. Once its radius drops
// to the minimum it keeps bouncing forever without splitting.
type Ball struct {
	X, Y   float64
	Radius float64
	VX, VY float64
	Color  Color

	Active bool

	pendingSplit bool
	cooldown     int
}

func (b Ball) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}

// clampSpeed rescales velocity uniformly so speed never exceeds max.
func (b *Ball) clampSpeed(max float64) {
	speed := b.Speed()
	if speed > max {
		scale := max / speed
		b.VX *= scale
		b.VY *= scale
	}
}

// keepInBounds hard-corrects position so the ball's edge stays inside the
// boundary. Float drift can leave a ball outside even after a reflection,
// so this runs independently of the velocity bounce.
func (b *Ball) keepInBounds(p *Params) {
	dx, dy := b.X-p.CenterX, b.Y-p.CenterY
	if math.Hypot(dx, dy)+b.Radius > p.BoundaryRadius {
		angle := math.Atan2(dy, dx)
		b.X = p.CenterX + (p.BoundaryRadius-b.Radius-1)*math.Cos(angle)
		b.Y = p.CenterY + (p.BoundaryRadius-b.Radius-1)*math.Sin(angle)
	}
}

// Update advances the ball by one tick: gravity, speed clamp, boundary
// reflection, position integration, containment, cooldown decay. It reports
// false only for inactive balls, which are skipped entirely.
//
// Gravity and the speed clamp apply even mid-cooldown; the cooldown only
// suppresses the collision branch, never movement or containment.
func (b *Ball) Update(p *Params) bool {
	if !b.Active {
		return false
	}

	b.VY += p.Gravity
	b.clampSpeed(p.MaxSpeed)

	nextX := b.X + b.VX
	nextY := b.Y + b.VY
	nextDist := math.Hypot(nextX-p.CenterX, nextY-p.CenterY)

	if nextDist+b.Radius > p.BoundaryRadius && b.cooldown == 0 {
		// Impact normal from the current, pre-move position.
		angle := math.Atan2(b.Y-p.CenterY, b.X-p.CenterX)
		nx, ny := math.Cos(angle), math.Sin(angle)

		dot := b.VX*nx + b.VY*ny
		b.VX -= 2 * dot * nx
		b.VY -= 2 * dot * ny

		// Never leave the wall slower than the speed gravity builds falling
		// a boundary radius; otherwise balls go dead against the wall.
		minSpeed := math.Sqrt(2*p.Gravity*p.BoundaryRadius) * p.BounceFactor
		if speed := b.Speed(); speed > 0 && speed < minSpeed {
			scale := minSpeed / speed
			b.VX *= scale
			b.VY *= scale
		}

		b.pendingSplit = true
		b.cooldown = CooldownTicks
	}

	// Integrate with the possibly just-reflected velocity.
	b.X += b.VX
	b.Y += b.VY

	b.keepInBounds(p)

	if b.cooldown > 0 {
		b.cooldown--
	}

	return true
}
