package main

import (
	"github.com/pthm-cable/aquarium/config"
)

// ParamSpec defines a single tunable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all tunable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of difficulty parameters.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			// Player
			{Name: "player_speed", Path: "player.speed", Min: 3, Max: 10, Default: 5},
			{Name: "damage_debounce", Path: "player.damage_debounce_sec", Min: 1, Max: 6, Default: 3},
			{Name: "knockback", Path: "player.knockback", Min: 4, Max: 30, Default: 12},
			// World
			{Name: "max_speed", Path: "world.max_speed", Min: 8, Max: 30, Default: 25},
			{Name: "bigger_fish_speed", Path: "species.bigger_fish.speed_factor", Min: 0.2, Max: 1.0, Default: 0.5},
			// Power-ups
			{Name: "powerup_threshold", Path: "power_up.threshold", Min: 0, Max: 9, Default: 8},
			{Name: "boost_multiplier", Path: "power_up.boost_multiplier", Min: 1.0, Max: 2.0, Default: 2.0},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		clamped[i] = min(spec.Max, max(spec.Min, v[i]))
	}
	return clamped
}

// ApplyToConfig writes parameter values into cfg and recomputes its
// derived values. Order must match Specs.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) error {
	c := pv.Clamp(values)

	cfg.Player.Speed = int(c[0] + 0.5)
	cfg.Player.DamageDebounceSec = c[1]
	cfg.Player.Knockback = c[2]

	cfg.World.MaxSpeed = max(cfg.World.MinSpeed, int(c[3]+0.5))
	big := cfg.Species["bigger_fish"]
	big.SpeedFactor = c[4]
	cfg.Species["bigger_fish"] = big

	cfg.PowerUp.Threshold = int(c[5] + 0.5)
	cfg.PowerUp.BoostMultiplier = c[6]

	return cfg.Refresh()
}

// ExtractFromConfig reads the current parameter values from cfg.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	return []float64{
		float64(cfg.Player.Speed),
		cfg.Player.DamageDebounceSec,
		cfg.Player.Knockback,
		float64(cfg.World.MaxSpeed),
		cfg.Species["bigger_fish"].SpeedFactor,
		float64(cfg.PowerUp.Threshold),
		cfg.PowerUp.BoostMultiplier,
	}
}
