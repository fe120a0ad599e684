package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/splitsim/internal/engine"
)

const DefaultTicks = 3600

type Config struct {
	Ticks int   `yaml:"ticks"`
	Seed  int64 `yaml:"seed"`

	Gravity           float64 `yaml:"gravity"`
	MaxSpeed          float64 `yaml:"max_speed"`
	BoundaryRadius    float64 `yaml:"boundary_radius"`
	MinBallRadius     float64 `yaml:"min_ball_radius"`
	InitialBallRadius float64 `yaml:"initial_ball_radius"`
	SplitForce        float64 `yaml:"split_force"`
	SplitAngle        float64 `yaml:"split_angle"`
	ShrinkFactor      float64 `yaml:"shrink_factor"`
	BounceFactor      float64 `yaml:"bounce_factor"`
}

func DefaultConfig() *Config {
	return &Config{
		Ticks:             DefaultTicks,
		Gravity:           engine.DefaultGravity,
		MaxSpeed:          engine.DefaultMaxSpeed,
		BoundaryRadius:    engine.DefaultBoundaryRadius,
		MinBallRadius:     engine.DefaultMinBallRadius,
		InitialBallRadius: engine.DefaultInitialBallRadius,
		SplitForce:        engine.DefaultSplitForce,
		SplitAngle:        engine.DefaultSplitAngleDeg,
		ShrinkFactor:      engine.DefaultShrinkFactor,
		BounceFactor:      engine.DefaultBounceFactor,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// EngineParams converts the file-level config into validated physics
// parameters. The arena center stays at the default window midpoint.
func (c *Config) EngineParams() (engine.Params, error) {
	p := engine.DefaultParams()
	p.Gravity = c.Gravity
	p.MaxSpeed = c.MaxSpeed
	p.BoundaryRadius = c.BoundaryRadius
	p.MinBallRadius = c.MinBallRadius
	p.InitialBallRadius = c.InitialBallRadius
	p.SplitForce = c.SplitForce
	p.SplitAngleDeg = c.SplitAngle
	p.ShrinkFactor = c.ShrinkFactor
	p.BounceFactor = c.BounceFactor

	if err := p.Validate(); err != nil {
		return engine.Params{}, fmt.Errorf("invalid config: %w", err)
	}
	return p, nil
}
