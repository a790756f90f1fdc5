package systems

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/config"
)

// StrokeFunc advances one creature by one tick. Every stroke moves the
// creature and then bounces it off its bounds.
type StrokeFunc func(b *BehaviorSystem, a Actor, g *components.Gait, rng *rand.Rand)

// BehaviorSystem moves NPC creatures according to their gait.
type BehaviorSystem struct {
	puffer  config.PufferConfig
	angel   config.AngelConfig
	surgeon config.SurgeonConfig
	walls   Walls

	strokes map[components.GaitStyle]StrokeFunc
}

// NewBehaviorSystem creates a behavior system with the built-in gaits registered.
func NewBehaviorSystem(cfg *config.Config) *BehaviorSystem {
	b := &BehaviorSystem{
		puffer:  cfg.PufferFish,
		angel:   cfg.Angelfish,
		surgeon: cfg.Surgeonfish,
		walls:   NewWalls(cfg),
		strokes: make(map[components.GaitStyle]StrokeFunc, 4),
	}
	b.Register(components.GaitCruise, cruiseStroke)
	b.Register(components.GaitPuffer, pufferStroke)
	b.Register(components.GaitAngel, angelStroke)
	b.Register(components.GaitSurgeon, surgeonStroke)
	return b
}

// Register installs or replaces the stroke used for a gait style.
func (b *BehaviorSystem) Register(style components.GaitStyle, fn StrokeFunc) {
	b.strokes[style] = fn
}

// Swim advances the creature one tick. Unknown styles fall back to cruising.
func (b *BehaviorSystem) Swim(a Actor, g *components.Gait, rng *rand.Rand) {
	if !a.Valid() || g == nil {
		return
	}
	fn, ok := b.strokes[g.Style]
	if !ok {
		fn = cruiseStroke
	}
	fn(b, a, g, rng)
	g.Tick++
}

// FacingLeft reports whether a sprite should be drawn mirrored.
func FacingLeft(d components.Direction) bool {
	return d.DX < 0
}

// StyleFor returns the gait style used by a species.
func StyleFor(kind components.Kind) components.GaitStyle {
	switch kind {
	case components.KindPufferFish:
		return components.GaitPuffer
	case components.KindAngelfish:
		return components.GaitAngel
	case components.KindSurgeonfish:
		return components.GaitSurgeon
	default:
		return components.GaitCruise
	}
}

// InitialDirection picks a starting heading for a freshly spawned creature.
func InitialDirection(kind components.Kind, rng *rand.Rand) components.Direction {
	var d components.Direction
	switch kind {
	case components.KindPufferFish:
		d = gridDirection(rng, true)
	case components.KindAngelfish:
		d.DX = 1
		if rng.Intn(2) == 0 {
			d.DX = -1
		}
		d.DY = (rng.Float64()*2 - 1) * 0.3
	case components.KindSurgeonfish:
		v := fromAngle(rng.Float64() * 2 * math.Pi)
		d.DX, d.DY = v.X, v.Y
	default:
		d = gridDirection(rng, false)
	}
	Normalize(&d)
	return d
}

// gridDirection draws each axis from {-1, 0, 1}. With nonZero set it
// re-rolls until the result is not (0,0).
func gridDirection(rng *rand.Rand, nonZero bool) components.Direction {
	for {
		d := components.Direction{
			DX: float64(rng.Intn(3) - 1),
			DY: float64(rng.Intn(3) - 1),
		}
		if !nonZero || d.DX != 0 || d.DY != 0 {
			return d
		}
	}
}

// NewGait builds the initial motion state for a species at the given position.
func NewGait(kind components.Kind, sc config.SpeciesConfig, pos components.Position, dir components.Direction, rng *rand.Rand) components.Gait {
	g := components.Gait{
		Style:       StyleFor(kind),
		SpeedFactor: sc.SpeedFactor,
		BaseRadius:  sc.Radius,
	}
	if g.SpeedFactor <= 0 {
		g.SpeedFactor = 1
	}

	switch g.Style {
	case components.GaitAngel:
		g.HSign = 1
		if dir.DX < 0 {
			g.HSign = -1
		}
		g.VSign = 1
		if rng.Intn(2) == 0 {
			g.VSign = -1
		}
		g.Phase = rng.Float64() * 2 * math.Pi
	case components.GaitSurgeon:
		g.TargetX, g.TargetY = pos.X, pos.Y
	}
	return g
}

func cruiseStroke(b *BehaviorSystem, a Actor, g *components.Gait, _ *rand.Rand) {
	Step(a, g.SpeedFactor)
	Bounce(a, b.walls)
}

// pufferStroke cycles between inflated and deflated. Inflated puffers are
// larger and slower. Any wall contact picks a fresh direction.
func pufferStroke(b *BehaviorSystem, a Actor, g *components.Gait, rng *rand.Rand) {
	cfg := b.puffer
	cycle := max(1, cfg.CycleTicks)
	g.Inflated = g.Tick%cycle < cfg.InflateTicks

	factor := g.SpeedFactor
	a.Body.Radius = g.BaseRadius
	if g.Inflated {
		factor = cfg.InflatedSpeed
		a.Body.Radius = cfg.InflatedRadius
	}

	Step(a, factor)

	// Lateral wobble along the perpendicular of the heading
	w := cfg.WobbleAmplitude * math.Sin(float64(g.Tick)*cfg.WobbleRate)
	Translate(a, -a.Dir.DY*w, a.Dir.DX*w)

	if hitX, hitY := Bounce(a, b.walls); hitX || hitY {
		*a.Dir = gridDirection(rng, true)
		Normalize(a.Dir)
	}
}

// angelStroke keeps the horizontal sign and oscillates vertically around a drift.
func angelStroke(b *BehaviorSystem, a Actor, g *components.Gait, _ *rand.Rand) {
	cfg := b.angel
	if g.HSign == 0 {
		g.HSign = 1
	}
	if g.VSign == 0 {
		g.VSign = 1
	}

	g.Phase += cfg.PhaseStep
	a.Dir.DX = g.HSign
	a.Dir.DY = g.VSign*cfg.Drift + cfg.Amplitude*math.Sin(g.Phase)
	Normalize(a.Dir)

	Step(a, g.SpeedFactor)

	hitX, hitY := Bounce(a, b.walls)
	if hitX {
		g.HSign = -g.HSign
	}
	if hitY {
		g.VSign = -g.VSign
		g.Phase += math.Pi
	}
}

// surgeonStroke steers toward a wandering target that moves every RetargetTicks.
func surgeonStroke(b *BehaviorSystem, a Actor, g *components.Gait, rng *rand.Rand) {
	cfg := b.surgeon
	maxX, maxY := b.walls.limits(a)

	if cfg.RetargetTicks <= 0 || g.Tick%cfg.RetargetTicks == 0 {
		r := cfg.WanderRadius
		g.TargetX = clampFloat(a.Pos.X+(rng.Float64()*2-1)*r, 0, maxX)
		g.TargetY = clampFloat(a.Pos.Y+(rng.Float64()*2-1)*r, 0, maxY)
	}

	here := r2.Vec{X: a.Pos.X, Y: a.Pos.Y}
	toward := unitOrZero(r2.Sub(r2.Vec{X: g.TargetX, Y: g.TargetY}, here))
	heading := r2.Vec{X: a.Dir.DX, Y: a.Dir.DY}
	blended := unitOrZero(r2.Add(r2.Scale(1-cfg.Blend, heading), r2.Scale(cfg.Blend, toward)))
	if blended != (r2.Vec{}) {
		a.Dir.DX, a.Dir.DY = blended.X, blended.Y
	}

	Step(a, g.SpeedFactor)

	if hitX, hitY := Bounce(a, b.walls); hitX || hitY {
		g.TargetX, g.TargetY = maxX/2, maxY/2
	}
}
