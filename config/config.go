// Package config provides configuration loading and access for the aquarium.
package config

import (
	_ "embed"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all aquarium configuration parameters.
type Config struct {
	Screen      ScreenConfig             `yaml:"screen"`
	Timing      TimingConfig             `yaml:"timing"`
	World       WorldConfig              `yaml:"world"`
	Player      PlayerConfig             `yaml:"player"`
	Species     map[string]SpeciesConfig `yaml:"species"`
	PufferFish  PufferConfig             `yaml:"puffer_fish"`
	Angelfish   AngelConfig              `yaml:"angelfish"`
	Surgeonfish SurgeonConfig            `yaml:"surgeonfish"`
	PowerUp     PowerUpConfig            `yaml:"power_up"`
	Levels      []LevelConfig            `yaml:"levels"`
	Telemetry   TelemetryConfig          `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// TimingConfig relates simulation ticks to wall time.
type TimingConfig struct {
	TicksPerSecond int `yaml:"ticks_per_second"` // Player timers run at this rate
	UpdateEvery    int `yaml:"update_every"`     // Collision + world update every N frames
}

// WorldConfig holds aquarium container parameters.
type WorldConfig struct {
	Margin         int     `yaml:"margin"`          // Subtracted from viewport size for creature bounds
	MinSpeed       int     `yaml:"min_speed"`       // Spawn speed lower bound (inclusive)
	MaxSpeed       int     `yaml:"max_speed"`       // Spawn speed upper bound (inclusive)
	FallbackExtent float64 `yaml:"fallback_extent"` // Sprite extent used when radius is 0
}

// PlayerConfig holds player creature parameters.
type PlayerConfig struct {
	Speed             int     `yaml:"speed"`
	Radius            float64 `yaml:"radius"`
	Lives             int     `yaml:"lives"`
	Power             int     `yaml:"power"`
	DamageDebounceSec float64 `yaml:"damage_debounce_sec"` // Invulnerability after losing a life
	Knockback         float64 `yaml:"knockback"`           // Impulse along the contact normal
	PushShare         float64 `yaml:"push_share"`          // Player's share of the overlap push
	ScorePerPower     int     `yaml:"score_per_power"`     // Power +1 per multiple of this score
	ScoreWeight       int     `yaml:"score_weight"`        // Points per unit of creature value
}

// SpeciesConfig holds per-species base parameters.
type SpeciesConfig struct {
	Radius      float64 `yaml:"radius"`
	Value       int     `yaml:"value"`
	SpeedFactor float64 `yaml:"speed_factor"`
}

// PufferConfig holds the puffer fish inflate/deflate cycle.
type PufferConfig struct {
	CycleTicks      int     `yaml:"cycle_ticks"`
	InflateTicks    int     `yaml:"inflate_ticks"`
	InflatedRadius  float64 `yaml:"inflated_radius"`
	InflatedSpeed   float64 `yaml:"inflated_speed"`
	WobbleAmplitude float64 `yaml:"wobble_amplitude"`
	WobbleRate      float64 `yaml:"wobble_rate"`
}

// AngelConfig holds the angelfish vertical oscillation.
type AngelConfig struct {
	Drift     float64 `yaml:"drift"`     // Mean vertical component
	Amplitude float64 `yaml:"amplitude"` // Sine amplitude around the drift
	PhaseStep float64 `yaml:"phase_step"`
}

// SurgeonConfig holds the surgeonfish wander-target steering.
type SurgeonConfig struct {
	RetargetTicks int     `yaml:"retarget_ticks"`
	WanderRadius  float64 `yaml:"wander_radius"`
	Blend         float64 `yaml:"blend"` // Weight of the target direction per tick
}

// PowerUpConfig holds power-up spawning and effect parameters.
type PowerUpConfig struct {
	MaxActive       int     `yaml:"max_active"`
	CooldownTicks   int     `yaml:"cooldown_ticks"`
	Roll            int     `yaml:"roll"`      // Spawn roll is uniform in [0, roll)
	Threshold       int     `yaml:"threshold"` // Spawn only when roll >= threshold
	Margin          int     `yaml:"margin"`
	Radius          float64 `yaml:"radius"`
	BoostMultiplier float64 `yaml:"boost_multiplier"`
	BoostSec        float64 `yaml:"boost_sec"`
	BoostMaxSec     float64 `yaml:"boost_max_sec"`
}

// LevelConfig defines one level of the circular progression.
type LevelConfig struct {
	TargetScore int                `yaml:"target_score"`
	Population  []PopulationConfig `yaml:"population"`
}

// PopulationConfig is one species target within a level.
type PopulationConfig struct {
	Species string `yaml:"species"`
	Count   int    `yaml:"count"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"` // Seconds per stats window
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DamageDebounceTicks int     // Player.DamageDebounceSec in ticks
	BoostTicks          int     // PowerUp.BoostSec in ticks
	BoostMaxTicks       int     // PowerUp.BoostMaxSec in ticks
	StatsWindowTicks    int32   // Telemetry.StatsWindow in frames
	SecondsPerTick      float64 // 1 / TicksPerSecond
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns a fresh copy of the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := Overlay(cfg, data); err != nil {
			return nil, err
		}
	}

	if err := cfg.Refresh(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Refresh validates the configuration and recomputes derived values.
// Call it after changing fields in code.
func (c *Config) Refresh() error {
	if err := c.Validate(); err != nil {
		return err
	}
	c.computeDerived()
	return nil
}

// Clone returns a deep copy through a YAML round trip.
func (c *Config) Clone() (*Config, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	out := &Config{}
	if err := yaml.Unmarshal(data, out); err != nil {
		return nil, fmt.Errorf("parsing config copy: %w", err)
	}
	if err := out.Refresh(); err != nil {
		return nil, err
	}
	return out, nil
}

// Overlay unmarshals data into cfg. Only fields present in data are overwritten,
// except lists, which yaml replaces wholesale.
func Overlay(cfg *Config, data []byte) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

// Validate reports the first structural problem in the configuration.
func (c *Config) Validate() error {
	if c.Timing.TicksPerSecond <= 0 {
		return fmt.Errorf("timing.ticks_per_second must be positive, got %d", c.Timing.TicksPerSecond)
	}
	if c.Timing.UpdateEvery <= 0 {
		return fmt.Errorf("timing.update_every must be positive, got %d", c.Timing.UpdateEvery)
	}
	if c.World.MinSpeed <= 0 || c.World.MaxSpeed < c.World.MinSpeed {
		return fmt.Errorf("world speed range [%d, %d] is invalid", c.World.MinSpeed, c.World.MaxSpeed)
	}
	if len(c.Levels) == 0 {
		return fmt.Errorf("at least one level is required")
	}
	for i, lvl := range c.Levels {
		if lvl.TargetScore <= 0 {
			return fmt.Errorf("levels[%d]: target_score must be positive, got %d", i, lvl.TargetScore)
		}
		for j, pop := range lvl.Population {
			if _, ok := c.Species[pop.Species]; !ok {
				return fmt.Errorf("levels[%d].population[%d]: unknown species %q", i, j, pop.Species)
			}
			if pop.Count < 0 {
				return fmt.Errorf("levels[%d].population[%d]: negative count %d", i, j, pop.Count)
			}
		}
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	tps := float64(c.Timing.TicksPerSecond)
	c.Derived.SecondsPerTick = 1.0 / tps
	c.Derived.DamageDebounceTicks = secondsToTicks(c.Player.DamageDebounceSec, tps)
	c.Derived.BoostTicks = secondsToTicks(c.PowerUp.BoostSec, tps)
	c.Derived.BoostMaxTicks = secondsToTicks(c.PowerUp.BoostMaxSec, tps)

	window := int32(c.Telemetry.StatsWindow * tps)
	if window < 1 {
		window = 1
	}
	c.Derived.StatsWindowTicks = window
}

func secondsToTicks(sec, tps float64) int {
	return int(math.Round(sec * tps))
}

// SpeciesFor returns the parameters for a species name and whether it exists.
func (c *Config) SpeciesFor(name string) (SpeciesConfig, bool) {
	sc, ok := c.Species[name]
	return sc, ok
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
