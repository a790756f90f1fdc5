package telemetry

import "github.com/pthm-cable/aquarium/components"

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowDurationTicks int32
	dt                  float64

	// Current window tracking
	windowStartTick int32

	// Event counters for current window
	eaten             [components.KindCount]int
	eatenValue        int
	livesLost         int
	hitsAbsorbed      int
	spawned           int
	removed           int
	powerUpsSpawned   int
	powerUpsCollected int
	levelsCompleted   int
}

// NewCollector creates a new stats collector.
// windowTicks: how many simulation ticks each stats window lasts
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowTicks int32, dt float64) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{
		windowDurationTicks: windowTicks,
		dt:                  dt,
	}
}

// Record counts one event in the current window.
func (c *Collector) Record(e Event) {
	switch e.Type {
	case EventEaten:
		if e.Kind.Valid() {
			c.eaten[e.Kind]++
		}
		c.eatenValue += e.Amount
	case EventLifeLost:
		c.livesLost++
	case EventHitAbsorbed:
		c.hitsAbsorbed++
	case EventSpawn:
		c.spawned++
	case EventRemoved:
		c.removed++
	case EventPowerUpSpawned:
		c.powerUpsSpawned++
	case EventPowerUpCollected:
		c.powerUpsCollected++
	case EventLevelCompleted:
		c.levelsCompleted++
	}
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Census is the world state sampled at the end of a window.
type Census struct {
	Level    int
	Score    int
	Lives    int
	Power    int
	PowerUps int
	Speeds   []float64 // effective speed of every live creature
	Radii    []float64
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int32, census Census) WindowStats {
	speed := ComputeDistribution(census.Speeds)
	radius := ComputeDistribution(census.Radii)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.dt,

		Level:     census.Level,
		Score:     census.Score,
		Lives:     census.Lives,
		Power:     census.Power,
		Creatures: len(census.Speeds),
		PowerUps:  census.PowerUps,

		EatenNPC:         c.eaten[components.KindNPC],
		EatenBiggerFish:  c.eaten[components.KindBiggerFish],
		EatenPufferFish:  c.eaten[components.KindPufferFish],
		EatenAngelfish:   c.eaten[components.KindAngelfish],
		EatenSurgeonfish: c.eaten[components.KindSurgeonfish],
		EatenValue:       c.eatenValue,

		LivesLost:         c.livesLost,
		HitsAbsorbed:      c.hitsAbsorbed,
		Spawned:           c.spawned,
		Removed:           c.removed,
		PowerUpsSpawned:   c.powerUpsSpawned,
		PowerUpsCollected: c.powerUpsCollected,
		LevelsCompleted:   c.levelsCompleted,

		SpeedMean: speed.Mean,
		SpeedStd:  speed.Std,
		SpeedP10:  speed.P10,
		SpeedP50:  speed.P50,
		SpeedP90:  speed.P90,

		RadiusMean: radius.Mean,
		RadiusMax:  radius.Max,
	}

	for _, n := range c.eaten {
		stats.Eaten += n
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.eaten = [components.KindCount]int{}
	c.eatenValue = 0
	c.livesLost = 0
	c.hitsAbsorbed = 0
	c.spawned = 0
	c.removed = 0
	c.powerUpsSpawned = 0
	c.powerUpsCollected = 0
	c.levelsCompleted = 0

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}
