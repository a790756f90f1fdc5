package game

import (
	"math/rand"
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/level"
)

// recordingSprite remembers what the simulation asked of it.
type recordingSprite struct {
	draws   int
	flipped bool
}

func (s *recordingSprite) Draw(x, y float64)       { s.draws++ }
func (s *recordingSprite) SetFlipped(flipped bool) { s.flipped = flipped }

// recordingSprites hands out a new recordingSprite per request.
type recordingSprites struct {
	creatures []*recordingSprite
	player    *recordingSprite
	powerUps  []*recordingSprite
}

func (r *recordingSprites) Sprite(components.Kind) components.Sprite {
	s := &recordingSprite{}
	r.creatures = append(r.creatures, s)
	return s
}

func (r *recordingSprites) PlayerSprite() components.Sprite {
	r.player = &recordingSprite{}
	return r.player
}

func (r *recordingSprites) PowerUpSprite(components.PowerUpType) components.Sprite {
	s := &recordingSprite{}
	r.powerUps = append(r.powerUps, s)
	return s
}

// quietLevels returns a single level that never spawns anything and is
// hard to complete, so tests control the population by hand.
func quietLevels() []*level.Level {
	return []*level.Level{level.New(0, 1000, nil)}
}

// testConfig returns defaults with power-ups disabled and the gate opening every frame.
func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Timing.UpdateEvery = 1
	cfg.PowerUp.MaxActive = 0
	return cfg
}

func newTestWorld(t *testing.T, cfg *config.Config, levels []*level.Level) (*World, *recordingSprites) {
	t.Helper()
	sprites := &recordingSprites{}
	w, err := NewWorld(WorldOptions{
		Config:   cfg,
		Sprites:  sprites,
		Viewport: FixedViewport{W: 800, H: 600},
		Rand:     rand.New(rand.NewSource(7)),
		Levels:   levels,
	})
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	return w, sprites
}

// place spawns a creature of kind with its anchor at (x, y), standing still.
func place(t *testing.T, w *World, kind components.Kind, x, y float64) ecs.Entity {
	t.Helper()
	e, ok := w.SpawnCreature(kind)
	if !ok {
		t.Fatalf("SpawnCreature(%v) failed", kind)
	}
	a, _ := w.Actor(e)
	a.Pos.X, a.Pos.Y = x, y
	a.Dir.DX, a.Dir.DY = 0, 0
	a.Motion.Speed = 0
	return e
}

// newTestScene builds a scene with a still player at (300, 300).
func newTestScene(t *testing.T, cfg *config.Config) *AquariumScene {
	t.Helper()
	w, _ := newTestWorld(t, cfg, quietLevels())
	p := NewPlayer(cfg, 300, 300, nil)
	return NewAquariumScene(SceneOptions{Config: cfg, Player: p, World: w})
}
