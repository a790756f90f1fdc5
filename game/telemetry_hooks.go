package game

import "github.com/pthm-cable/aquarium/telemetry"

// flushTelemetry writes the stats window once it has elapsed.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	stats := g.collector.Flush(g.tick, g.census())
	perfStats := g.perfCollector.Stats()

	// Log stats if enabled (console output)
	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if err := g.outputManager.WriteTelemetry(stats); err != nil {
		g.log.Error("failed to write telemetry", "error", err)
	}
	if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
		g.log.Error("failed to write perf", "error", err)
	}
}

// census samples the world for the stats window.
func (g *Game) census() telemetry.Census {
	w := g.scene.World()
	p := g.scene.Player()

	c := telemetry.Census{
		Level:    w.Progression().Index(),
		Score:    p.Score(),
		Lives:    p.Lives(),
		Power:    p.Power(),
		PowerUps: len(w.PowerUps()),
		Speeds:   make([]float64, 0, w.CreatureCount()),
		Radii:    make([]float64, 0, w.CreatureCount()),
	}
	for _, e := range w.Creatures() {
		info, ok := w.Creature(e)
		if !ok {
			continue
		}
		c.Speeds = append(c.Speeds, float64(info.Speed))
		c.Radii = append(c.Radii, info.Radius)
	}
	return c
}

// writeCompletedLevels appends finished levels to levels.csv.
func (g *Game) writeCompletedLevels() {
	for _, rec := range g.scene.DrainCompletedLevels() {
		rec.Tick = g.tick
		if err := g.outputManager.WriteLevel(rec); err != nil {
			g.log.Error("failed to write level", "error", err)
		}
	}
}
