package config

import "sort"

var Presets = map[string]*Config{
	"classic": {
		Ticks: 3600, Gravity: 0.5, MaxSpeed: 15, BoundaryRadius: 250,
		MinBallRadius: 10, InitialBallRadius: 30, SplitForce: 8,
		SplitAngle: 30, ShrinkFactor: 1.4, BounceFactor: 1.2,
	},
	"lowgrav": {
		Ticks: 7200, Gravity: 0.1, MaxSpeed: 15, BoundaryRadius: 250,
		MinBallRadius: 10, InitialBallRadius: 30, SplitForce: 8,
		SplitAngle: 30, ShrinkFactor: 1.4, BounceFactor: 1.2,
	},
	"frenzy": {
		Ticks: 3600, Gravity: 0.8, MaxSpeed: 20, BoundaryRadius: 250,
		MinBallRadius: 6, InitialBallRadius: 40, SplitForce: 10,
		SplitAngle: 45, ShrinkFactor: 1.3, BounceFactor: 1.3,
	},
	"calm": {
		Ticks: 3600, Gravity: 0.3, MaxSpeed: 10, BoundaryRadius: 250,
		MinBallRadius: 15, InitialBallRadius: 30, SplitForce: 5,
		SplitAngle: 20, ShrinkFactor: 1.5, BounceFactor: 1.1,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
