package game

import (
	"io"
	"log/slog"
	"math/rand"
	"slices"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/level"
	"github.com/pthm-cable/aquarium/systems"
)

// SpriteProvider hands out drawable handles. Creatures of one kind may
// share a template; the provider decides whether to clone.
type SpriteProvider interface {
	Sprite(kind components.Kind) components.Sprite
	PlayerSprite() components.Sprite
	PowerUpSprite(t components.PowerUpType) components.Sprite
}

// Viewport reports the current drawable size.
type Viewport interface {
	Size() (w, h int)
}

// WorldOptions configures a World.
type WorldOptions struct {
	Config   *config.Config
	Sprites  SpriteProvider
	Viewport Viewport
	Logger   *slog.Logger
	Rand     *rand.Rand
	Levels   []*level.Level // nil builds the levels from Config
}

// CreatureInfo is a read-only copy of one creature's state.
type CreatureInfo struct {
	Entity ecs.Entity
	Kind   components.Kind
	Value  int
	X, Y   float64
	DX, DY float64
	Radius float64
	Speed  int
}

// World is the aquarium: it owns every NPC creature, the level progression
// and the active power-ups.
type World struct {
	cfg *config.Config
	ecs *ecs.World

	// Entity mapper for the 7 creature components
	mapper *ecs.Map7[
		components.Position,
		components.Direction,
		components.Body,
		components.Motion,
		components.Bounds,
		components.Species,
		components.Gait,
	]
	speciesFilter *ecs.Filter2[components.Species, components.Motion]

	// Insertion order; ark queries do not preserve it
	order []ecs.Entity

	progression *level.Progression
	powerUps    []components.PowerUp
	spawner     *systems.PowerUpSpawner
	behavior    *systems.BehaviorSystem

	sprites  SpriteProvider
	viewport Viewport
	log      *slog.Logger
	rng      *rand.Rand

	width, height int
	events        []Event
}

// discardLogger is used when no logger is injected.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewWorld creates an empty aquarium. Creatures appear on the first Update.
func NewWorld(opts WorldOptions) (*World, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	levels := opts.Levels
	if levels == nil {
		var err error
		levels, err = level.FromConfig(cfg)
		if err != nil {
			return nil, err
		}
	}

	logger := opts.Logger
	if logger == nil {
		logger = discardLogger()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	world := ecs.NewWorld()
	w := &World{
		cfg: cfg,
		ecs: world,
		mapper: ecs.NewMap7[
			components.Position,
			components.Direction,
			components.Body,
			components.Motion,
			components.Bounds,
			components.Species,
			components.Gait,
		](world),
		speciesFilter: ecs.NewFilter2[components.Species, components.Motion](world),
		progression:   level.NewProgression(levels),
		spawner:       systems.NewPowerUpSpawner(cfg.PowerUp),
		behavior:      systems.NewBehaviorSystem(cfg),
		sprites:       opts.Sprites,
		viewport:      opts.Viewport,
		log:           logger,
		rng:           rng,
		width:         cfg.Screen.Width,
		height:        cfg.Screen.Height,
	}
	w.refreshBounds()
	return w, nil
}

// refreshBounds reads the viewport size. Non-positive sizes are ignored.
func (w *World) refreshBounds() {
	if w.viewport == nil {
		return
	}
	vw, vh := w.viewport.Size()
	if vw > 0 && vh > 0 {
		w.width, w.height = vw, vh
	}
}

// creatureBounds is the area creatures swim in: the viewport minus the margin.
func (w *World) creatureBounds() components.Bounds {
	m := w.cfg.World.Margin
	return components.Bounds{W: max(1, w.width-m), H: max(1, w.height-m)}
}

// Update runs one world step: bounds, creature motion, power-up spawning
// and repopulation.
func (w *World) Update() {
	w.refreshBounds()
	bounds := w.creatureBounds()

	for _, e := range w.order {
		a, gait, sp := w.view(e)
		*a.Bounds = bounds
		w.behavior.Swim(a, gait, w.rng)
		if sp.Sprite != nil {
			sp.Sprite.SetFlipped(systems.FacingLeft(*a.Dir))
		}
	}

	w.maybeSpawnPowerUp()
	w.Repopulate()
}

// view returns the component pointers of a live creature. Pointers stay
// valid until the next structural change of the ark world.
func (w *World) view(e ecs.Entity) (systems.Actor, *components.Gait, *components.Species) {
	pos, dir, body, motion, bounds, sp, gait := w.mapper.Get(e)
	return systems.Actor{Pos: pos, Dir: dir, Body: body, Motion: motion, Bounds: bounds}, gait, sp
}

func (w *World) maybeSpawnPowerUp() {
	p, ok := w.spawner.Maybe(len(w.powerUps), w.width, w.height, w.rng)
	if !ok {
		return
	}
	if w.sprites != nil {
		p.Sprite = w.sprites.PowerUpSprite(p.Type)
	}
	w.powerUps = append(w.powerUps, p)
	w.queue(Event{Kind: EventPowerUpSpawned})
	w.log.Debug("powerup_spawned", "type", p.Type.String(), "x", p.X, "y", p.Y)
}

// Repopulate advances to the next level when the current one is complete,
// then spawns whatever the active level is missing.
func (w *World) Repopulate() {
	lvl, ok := w.progression.Current()
	if !ok {
		return
	}

	if lvl.IsCompleted() {
		finalScore, target := lvl.Score(), lvl.TargetScore()
		lvl.Reset()
		w.progression.Advance()
		w.ClearCreatures()

		w.queue(Event{
			Kind:        EventNewLevel,
			Level:       w.progression.Index(),
			Counter:     w.progression.Counter(),
			Score:       finalScore,
			TargetScore: target,
		})
		w.log.Info("level_completed",
			"counter", w.progression.Counter(),
			"next_index", w.progression.Index(),
			"score", finalScore,
			"target", target,
		)

		lvl, _ = w.progression.Current()
	}

	for _, kind := range lvl.Repopulate() {
		w.SpawnCreature(kind)
	}
}

// SpawnCreature adds a creature of the given kind at a random position with
// a random speed. Unknown kinds are logged and dropped.
func (w *World) SpawnCreature(kind components.Kind) (ecs.Entity, bool) {
	sc, ok := w.cfg.SpeciesFor(kind.String())
	if !kind.Valid() || !ok {
		w.log.Error("unknown_creature_kind", "kind", int(kind))
		return ecs.Entity{}, false
	}

	bounds := w.creatureBounds()
	pos := components.Position{
		X: float64(w.rng.Intn(bounds.W)),
		Y: float64(w.rng.Intn(bounds.H)),
	}
	ws := w.cfg.World
	motion := components.Motion{Speed: ws.MinSpeed + w.rng.Intn(ws.MaxSpeed-ws.MinSpeed+1)}
	dir := systems.InitialDirection(kind, w.rng)
	body := components.Body{Radius: sc.Radius}
	gait := systems.NewGait(kind, sc, pos, dir, w.rng)

	species := components.Species{Kind: kind, Value: sc.Value}
	if w.sprites != nil {
		species.Sprite = w.sprites.Sprite(kind)
	}

	e := w.mapper.NewEntity(&pos, &dir, &body, &motion, &bounds, &species, &gait)
	w.order = append(w.order, e)

	w.queue(Event{Kind: EventCreatureAdded, Target: e, Species: kind, Value: sc.Value})
	w.log.Debug("creature_spawned", "kind", kind.String(), "x", pos.X, "y", pos.Y, "speed", motion.Speed)
	return e, true
}

// RemoveCreature removes a creature by identity and credits its kind and
// value to the current level. It reports whether the creature existed.
func (w *World) RemoveCreature(e ecs.Entity) bool {
	idx := slices.Index(w.order, e)
	if idx < 0 || !w.ecs.Alive(e) {
		return false
	}

	_, _, sp := w.view(e)
	kind, value := sp.Kind, sp.Value

	if lvl, ok := w.progression.Current(); ok {
		lvl.ConsumePopulation(kind, value)
	}

	w.order = slices.Delete(w.order, idx, idx+1)
	w.ecs.RemoveEntity(e)

	w.queue(Event{Kind: EventCreatureRemoved, Target: e, Species: kind, Value: value})
	w.log.Debug("creature_removed", "kind", kind.String(), "value", value)
	return true
}

// ClearCreatures removes every creature without touching level bookkeeping.
func (w *World) ClearCreatures() {
	for _, e := range w.order {
		w.ecs.RemoveEntity(e)
	}
	w.order = w.order[:0]
}

// CreatureCount returns the number of live creatures.
func (w *World) CreatureCount() int {
	return len(w.order)
}

// CreatureAt returns the i-th creature in insertion order.
func (w *World) CreatureAt(i int) (ecs.Entity, bool) {
	if i < 0 || i >= len(w.order) {
		return ecs.Entity{}, false
	}
	return w.order[i], true
}

// Creatures returns a copy of the creature list in insertion order.
func (w *World) Creatures() []ecs.Entity {
	return slices.Clone(w.order)
}

// Creature returns a snapshot of a live creature.
func (w *World) Creature(e ecs.Entity) (CreatureInfo, bool) {
	a, ok := w.Actor(e)
	if !ok {
		return CreatureInfo{}, false
	}
	_, _, sp := w.view(e)
	return CreatureInfo{
		Entity: e,
		Kind:   sp.Kind,
		Value:  sp.Value,
		X:      a.Pos.X,
		Y:      a.Pos.Y,
		DX:     a.Dir.DX,
		DY:     a.Dir.DY,
		Radius: a.Body.Radius,
		Speed:  a.Motion.Speed,
	}, true
}

// Actor returns a mutable view of a live creature for collision resolution.
func (w *World) Actor(e ecs.Entity) (systems.Actor, bool) {
	if !slices.Contains(w.order, e) || !w.ecs.Alive(e) {
		return systems.Actor{}, false
	}
	a, _, _ := w.view(e)
	return a, true
}

// CountByKind tallies live creatures per species.
func (w *World) CountByKind() map[components.Kind]int {
	counts := make(map[components.Kind]int)
	query := w.speciesFilter.Query()
	for query.Next() {
		sp, _ := query.Get()
		counts[sp.Kind]++
	}
	return counts
}

// PowerUps returns a copy of the active power-ups.
func (w *World) PowerUps() []components.PowerUp {
	return slices.Clone(w.powerUps)
}

// RemovePowerUpAt removes the i-th power-up.
func (w *World) RemovePowerUpAt(i int) bool {
	if i < 0 || i >= len(w.powerUps) {
		return false
	}
	w.powerUps = slices.Delete(w.powerUps, i, i+1)
	return true
}

// Levels returns the completion flag of every level.
func (w *World) Levels() []bool {
	return w.progression.Completed()
}

// CurrentLevel returns the active level.
func (w *World) CurrentLevel() (*level.Level, bool) {
	return w.progression.Current()
}

// Progression returns the level progression.
func (w *World) Progression() *level.Progression {
	return w.progression
}

// Size returns the last known viewport size.
func (w *World) Size() (int, int) {
	return w.width, w.height
}

// queue records an event for the scene to drain.
func (w *World) queue(e Event) {
	w.events = append(w.events, e)
}

// DrainEvents returns and clears the queued world events.
func (w *World) DrainEvents() []Event {
	events := w.events
	w.events = nil
	return events
}

// Draw renders creatures and power-ups. It never mutates state.
func (w *World) Draw() {
	for _, e := range w.order {
		pos, _, _, _, _, sp, _ := w.mapper.Get(e)
		if sp.Sprite != nil {
			sp.Sprite.Draw(pos.X, pos.Y)
		}
	}
	for _, p := range w.powerUps {
		if p.Sprite != nil {
			p.Sprite.Draw(p.X-p.Radius, p.Y-p.Radius)
		}
	}
}

// DetectCollisions returns a collision event for the first creature, in
// insertion order, that overlaps the player. Distance does not matter.
func DetectCollisions(w *World, p *Player) Event {
	if w == nil || p == nil {
		return Event{}
	}
	pa := p.Actor()
	for _, e := range w.order {
		a, _, sp := w.view(e)
		if systems.CheckCollision(pa, a) {
			return Event{Kind: EventCollision, Target: e, Species: sp.Kind, Value: sp.Value}
		}
	}
	return Event{}
}
