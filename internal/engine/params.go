package engine

import "fmt"

const (
	DefaultWidth  = 800
	DefaultHeight = 600

	DefaultBoundaryRadius    = 250.0
	DefaultGravity           = 0.5
	DefaultMaxSpeed          = 15.0
	DefaultMinBallRadius     = 10.0
	DefaultInitialBallRadius = 30.0
	DefaultSplitForce        = 8.0
	DefaultSplitAngleDeg     = 30.0
	DefaultShrinkFactor      = 1.4
	DefaultBounceFactor      = 1.2

	// CooldownTicks suppresses boundary collision detection for a few ticks
	// after a bounce so a single impact cannot trigger repeated splits.
	CooldownTicks = 5
)

// Params holds the tunable physics of a world. CenterX/CenterY and
// BoundaryRadius define the fixed circular arena; everything else shapes
// how balls move and split inside it.
type Params struct {
	CenterX        float64
	CenterY        float64
	BoundaryRadius float64

	Gravity           float64
	MaxSpeed          float64
	MinBallRadius     float64
	InitialBallRadius float64
	SplitForce        float64
	SplitAngleDeg     float64
	ShrinkFactor      float64
	BounceFactor      float64
}

func DefaultParams() Params {
	return Params{
		CenterX:           DefaultWidth / 2,
		CenterY:           DefaultHeight / 2,
		BoundaryRadius:    DefaultBoundaryRadius,
		Gravity:           DefaultGravity,
		MaxSpeed:          DefaultMaxSpeed,
		MinBallRadius:     DefaultMinBallRadius,
		InitialBallRadius: DefaultInitialBallRadius,
		SplitForce:        DefaultSplitForce,
		SplitAngleDeg:     DefaultSplitAngleDeg,
		ShrinkFactor:      DefaultShrinkFactor,
		BounceFactor:      DefaultBounceFactor,
	}
}

func (p Params) Validate() error {
	if p.BoundaryRadius <= 0 {
		return fmt.Errorf("boundary radius must be positive, got %f", p.BoundaryRadius)
	}
	if p.MaxSpeed <= 0 {
		return fmt.Errorf("max speed must be positive, got %f", p.MaxSpeed)
	}
	if p.MinBallRadius <= 0 {
		return fmt.Errorf("min ball radius must be positive, got %f", p.MinBallRadius)
	}
	if p.InitialBallRadius < p.MinBallRadius {
		return fmt.Errorf("initial ball radius %f below minimum %f", p.InitialBallRadius, p.MinBallRadius)
	}
	if p.InitialBallRadius >= p.BoundaryRadius {
		return fmt.Errorf("initial ball radius %f does not fit boundary %f", p.InitialBallRadius, p.BoundaryRadius)
	}
	if p.ShrinkFactor <= 1 {
		return fmt.Errorf("shrink factor must exceed 1, got %f", p.ShrinkFactor)
	}
	if p.SplitForce < 0 {
		return fmt.Errorf("split force must be non-negative, got %f", p.SplitForce)
	}
	return nil
}
