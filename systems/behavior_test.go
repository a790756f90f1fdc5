package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/config"
)

// spawn builds an actor and gait the way the world does.
func spawn(t *testing.T, kind components.Kind, rng *rand.Rand) (Actor, *components.Gait) {
	t.Helper()
	cfg := config.Default()
	sc, ok := cfg.SpeciesFor(kind.String())
	if !ok {
		t.Fatalf("no species config for %v", kind)
	}
	dir := InitialDirection(kind, rng)
	a := newActor(300, 200, dir.DX, dir.DY, sc.Radius, 5, components.Bounds{W: 800, H: 600})
	g := NewGait(kind, sc, *a.Pos, dir, rng)
	return a, &g
}

func TestInitialDirection(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, kind := range components.AllKinds() {
		for i := 0; i < 200; i++ {
			d := InitialDirection(kind, rng)
			l := d.DX*d.DX + d.DY*d.DY
			zeroAllowed := kind == components.KindNPC || kind == components.KindBiggerFish
			if l == 0 && zeroAllowed {
				continue
			}
			if math.Abs(l-1) > 1e-9 {
				t.Fatalf("%v: |d|² = %f, want 1", kind, l)
			}
			if kind == components.KindAngelfish && math.Abs(d.DX) < math.Abs(d.DY) {
				t.Fatalf("angelfish heading %+v is not horizontal-biased", d)
			}
		}
	}
}

func TestSwimStaysInBounds(t *testing.T) {
	b := NewBehaviorSystem(config.Default())
	for _, kind := range components.AllKinds() {
		t.Run(kind.String(), func(t *testing.T) {
			rng := rand.New(rand.NewSource(int64(kind) + 7))
			a, g := spawn(t, kind, rng)
			a.Motion.Speed = 25
			for i := 0; i < 2000; i++ {
				b.Swim(a, g, rng)
				maxX, maxY := b.walls.limits(a)
				if a.Pos.X < 0 || a.Pos.X > maxX || a.Pos.Y < 0 || a.Pos.Y > maxY {
					t.Fatalf("tick %d: pos (%f,%f) outside [0,%f]x[0,%f]", i, a.Pos.X, a.Pos.Y, maxX, maxY)
				}
				if math.IsNaN(a.Dir.DX) || math.IsNaN(a.Dir.DY) {
					t.Fatalf("tick %d: NaN direction", i)
				}
			}
			if g.Tick != 2000 {
				t.Errorf("Tick = %d, want 2000", g.Tick)
			}
		})
	}
}

func TestCruiseSpeedFactor(t *testing.T) {
	b := NewBehaviorSystem(config.Default())
	rng := rand.New(rand.NewSource(3))

	npc := newActor(100, 100, 1, 0, 30, 10, components.Bounds{W: 1000, H: 1000})
	npcGait := components.Gait{Style: components.GaitCruise, SpeedFactor: 1}
	b.Swim(npc, &npcGait, rng)

	big := newActor(100, 100, 1, 0, 60, 10, components.Bounds{W: 1000, H: 1000})
	bigGait := components.Gait{Style: components.GaitCruise, SpeedFactor: 0.5}
	b.Swim(big, &bigGait, rng)

	if npc.Pos.X != 110 {
		t.Errorf("npc X = %f, want 110", npc.Pos.X)
	}
	if big.Pos.X != 105 {
		t.Errorf("bigger fish X = %f, want 105", big.Pos.X)
	}
}

func TestPufferCycle(t *testing.T) {
	cfg := config.Default()
	b := NewBehaviorSystem(cfg)
	rng := rand.New(rand.NewSource(11))
	a, g := spawn(t, components.KindPufferFish, rng)

	for tick := 0; tick < cfg.PufferFish.CycleTicks*2; tick++ {
		b.Swim(a, g, rng)
		inflated := tick%cfg.PufferFish.CycleTicks < cfg.PufferFish.InflateTicks
		if g.Inflated != inflated {
			t.Fatalf("tick %d: inflated = %v, want %v", tick, g.Inflated, inflated)
		}
		want := cfg.Species["puffer_fish"].Radius
		if inflated {
			want = cfg.PufferFish.InflatedRadius
		}
		if a.Body.Radius != want {
			t.Fatalf("tick %d: radius = %f, want %f", tick, a.Body.Radius, want)
		}
	}
}

func TestPufferRerollsOnWallHit(t *testing.T) {
	b := NewBehaviorSystem(config.Default())
	rng := rand.New(rand.NewSource(5))
	a := newActor(0, 100, -1, 0, 38, 10, components.Bounds{W: 800, H: 600})
	g := components.Gait{Style: components.GaitPuffer, SpeedFactor: 1, BaseRadius: 38}

	b.Swim(a, &g, rng)
	if a.Dir.DX == 0 && a.Dir.DY == 0 {
		t.Error("puffer direction re-rolled to zero")
	}
	l := a.Dir.DX*a.Dir.DX + a.Dir.DY*a.Dir.DY
	if math.Abs(l-1) > 1e-9 {
		t.Errorf("|d|² = %f, want 1", l)
	}
}

func TestAngelfishWallFlips(t *testing.T) {
	b := NewBehaviorSystem(config.Default())
	rng := rand.New(rand.NewSource(9))
	bounds := components.Bounds{W: 800, H: 600}

	t.Run("horizontal wall flips hSign", func(t *testing.T) {
		a := newActor(739, 300, 1, 0, 30, 10, bounds)
		g := components.Gait{Style: components.GaitAngel, SpeedFactor: 1, HSign: 1, VSign: 1}
		b.Swim(a, &g, rng)
		if g.HSign != -1 {
			t.Errorf("HSign = %f, want -1", g.HSign)
		}
		b.Swim(a, &g, rng)
		if a.Dir.DX >= 0 {
			t.Errorf("DX = %f, want heading left after flip", a.Dir.DX)
		}
	})

	t.Run("vertical wall flips vSign and shifts phase", func(t *testing.T) {
		a := newActor(300, 0, 1, 0, 30, 10, bounds)
		// Phase chosen so the next stroke heads up into the wall
		g := components.Gait{Style: components.GaitAngel, SpeedFactor: 1, HSign: 1, VSign: -1, Phase: -math.Pi / 2}
		before := g.Phase + b.angel.PhaseStep
		b.Swim(a, &g, rng)
		if g.VSign != 1 {
			t.Errorf("VSign = %f, want 1", g.VSign)
		}
		if math.Abs(g.Phase-(before+math.Pi)) > 1e-9 {
			t.Errorf("phase = %f, want %f", g.Phase, before+math.Pi)
		}
		if g.HSign != 1 {
			t.Errorf("HSign changed on a vertical hit")
		}
	})
}

func TestSurgeonSteersTowardTarget(t *testing.T) {
	cfg := config.Default()
	b := NewBehaviorSystem(cfg)
	rng := rand.New(rand.NewSource(13))
	a := newActor(100, 100, 0, 1, 30, 0, components.Bounds{W: 800, H: 600})
	// Tick 1 skips the retarget so the fixed target is used
	g := components.Gait{Style: components.GaitSurgeon, SpeedFactor: 1, Tick: 1, TargetX: 400, TargetY: 100}

	b.Swim(a, &g, rng)

	// 0.8*(0,1) + 0.2*(1,0), normalized
	n := math.Hypot(0.2, 0.8)
	if math.Abs(a.Dir.DX-0.2/n) > 1e-9 || math.Abs(a.Dir.DY-0.8/n) > 1e-9 {
		t.Errorf("dir = %+v, want (%f,%f)", *a.Dir, 0.2/n, 0.8/n)
	}
}

func TestSurgeonRetargetClamped(t *testing.T) {
	cfg := config.Default()
	b := NewBehaviorSystem(cfg)
	rng := rand.New(rand.NewSource(17))
	a := newActor(0, 0, 1, 0, 30, 0, components.Bounds{W: 200, H: 200})
	maxX, maxY := b.walls.limits(a)

	for i := 0; i < 50; i++ {
		g := components.Gait{Style: components.GaitSurgeon, SpeedFactor: 1}
		b.Swim(a, &g, rng)
		if g.TargetX < 0 || g.TargetX > maxX || g.TargetY < 0 || g.TargetY > maxY {
			t.Fatalf("target (%f,%f) outside bounds", g.TargetX, g.TargetY)
		}
	}
}

func TestSurgeonRecentersOnWall(t *testing.T) {
	b := NewBehaviorSystem(config.Default())
	rng := rand.New(rand.NewSource(19))
	a := newActor(735, 300, 1, 0, 30, 10, components.Bounds{W: 800, H: 600})
	g := components.Gait{Style: components.GaitSurgeon, SpeedFactor: 1, Tick: 1, TargetX: 740, TargetY: 300}
	b.Swim(a, &g, rng)
	if g.TargetX != 370 || g.TargetY != 270 {
		t.Errorf("target = (%f,%f), want center (370,270)", g.TargetX, g.TargetY)
	}
}

func TestRegisterOverridesStroke(t *testing.T) {
	b := NewBehaviorSystem(config.Default())
	called := 0
	b.Register(components.GaitCruise, func(_ *BehaviorSystem, a Actor, _ *components.Gait, _ *rand.Rand) {
		called++
	})
	a := newActor(10, 10, 1, 0, 10, 5, components.Bounds{W: 100, H: 100})
	g := components.Gait{Style: components.GaitCruise, SpeedFactor: 1}
	b.Swim(a, &g, rand.New(rand.NewSource(1)))
	if called != 1 {
		t.Errorf("custom stroke called %d times, want 1", called)
	}
	if a.Pos.X != 10 {
		t.Error("built-in cruise ran despite override")
	}
}

func TestFacingLeft(t *testing.T) {
	if !FacingLeft(components.Direction{DX: -0.1}) {
		t.Error("negative DX should face left")
	}
	if FacingLeft(components.Direction{DX: 0}) || FacingLeft(components.Direction{DX: 1}) {
		t.Error("non-negative DX should face right")
	}
}

func TestBehaviorSystemsKeepOwnWalls(t *testing.T) {
	narrow := config.Default()
	narrow.World.FallbackExtent = 50
	wide := config.Default()
	wide.World.FallbackExtent = 10

	tests := []struct {
		name string
		b    *BehaviorSystem
		want float64
	}{
		{"narrow", NewBehaviorSystem(narrow), 50},
		{"wide", NewBehaviorSystem(wide), 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Zero radius, so the clamp uses the system's fallback extent
			a := newActor(95, 10, 1, 0, 0, 10, components.Bounds{W: 100, H: 100})
			g := components.Gait{Style: components.GaitCruise, SpeedFactor: 1}
			tt.b.Swim(a, &g, rand.New(rand.NewSource(1)))
			if a.Pos.X != tt.want {
				t.Errorf("x = %v, want %v", a.Pos.X, tt.want)
			}
		})
	}
}
