package game

import (
	"log/slog"

	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/systems"
	"github.com/pthm-cable/aquarium/telemetry"
)

// FrameGate opens once every N calls to Tick.
type FrameGate struct {
	every int
	count int
}

// NewFrameGate creates a gate that opens every n frames. n < 1 opens every frame.
func NewFrameGate(n int) FrameGate {
	return FrameGate{every: max(1, n)}
}

// Tick advances the gate and reports whether it opened on this frame.
func (g *FrameGate) Tick() bool {
	g.count++
	if g.count >= g.every {
		g.count = 0
		return true
	}
	return false
}

// SceneOptions configures an AquariumScene.
type SceneOptions struct {
	Name      string
	Config    *config.Config
	Player    *Player
	World     *World
	Logger    *slog.Logger
	Collector *telemetry.Collector     // nil disables event counting
	Perf      *telemetry.PerfCollector // nil disables phase timing
}

// AquariumScene ties one player to one world. The player moves every
// frame; collisions, pickups and the world step run behind a frame gate.
type AquariumScene struct {
	name      string
	cfg       *config.Config
	player    *Player
	world     *World
	gate      FrameGate
	lastEvent Event
	over      bool

	log       *slog.Logger
	collector *telemetry.Collector
	perf      *telemetry.PerfCollector

	tick      int32
	completed []telemetry.LevelRecord // levels finished since last drained
}

// NewAquariumScene creates the gameplay scene.
func NewAquariumScene(opts SceneOptions) *AquariumScene {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = discardLogger()
	}
	name := opts.Name
	if name == "" {
		name = SceneAquarium
	}
	return &AquariumScene{
		name:      name,
		cfg:       cfg,
		player:    opts.Player,
		world:     opts.World,
		gate:      NewFrameGate(cfg.Timing.UpdateEvery),
		log:       logger,
		collector: opts.Collector,
		perf:      opts.Perf,
	}
}

// Name returns the scene name.
func (s *AquariumScene) Name() string { return s.name }

// Player returns the scene's player.
func (s *AquariumScene) Player() *Player { return s.player }

// World returns the scene's world.
func (s *AquariumScene) World() *World { return s.world }

// LastEvent returns the outcome of the most recent Update.
func (s *AquariumScene) LastEvent() Event { return s.lastEvent }

// Over reports whether the game has ended.
func (s *AquariumScene) Over() bool { return s.over }

// Update runs one frame. After game over it does nothing.
func (s *AquariumScene) Update() {
	if s.over || s.player == nil || s.world == nil {
		return
	}
	s.tick++
	s.lastEvent = Event{}

	s.perf.StartFrame()
	defer s.perf.EndFrame()

	s.perf.StartPhase(telemetry.PhasePlayer)
	s.player.SetBounds(s.world.Size())
	s.player.Update()

	if !s.gate.Tick() {
		return
	}

	s.perf.StartPhase(telemetry.PhaseCollision)
	ev := DetectCollisions(s.world, s.player)
	if ev.IsCollision() {
		s.lastEvent = ev
		s.log.Debug("collision", "kind", ev.Species.String(), "value", ev.Value)
		if s.resolve(ev) {
			return
		}
	}

	s.perf.StartPhase(telemetry.PhasePowerUps)
	s.collectPowerUps()

	s.perf.StartPhase(telemetry.PhaseWorld)
	s.world.Update()

	s.perf.StartPhase(telemetry.PhaseTelemetry)
	s.drainWorldEvents()
}

// resolve applies a collision: eat when strong enough, otherwise bounce
// apart and lose a life. It reports whether the game ended.
func (s *AquariumScene) resolve(ev Event) bool {
	target, ok := s.world.Actor(ev.Target)
	if !ok {
		s.log.Error("collision_target_missing", "kind", ev.Species.String())
		return false
	}
	pc := s.cfg.Player
	pa := s.player.Actor()

	if s.player.Power() < ev.Value {
		contact := systems.Contact(pa, target)
		systems.Separate(pa, target, contact, pc.PushShare)

		if s.player.LoseLife(s.cfg.Derived.DamageDebounceTicks) {
			s.record(telemetry.Event{Type: telemetry.EventLifeLost, Tick: s.tick, Kind: ev.Species})
			s.log.Info("life_lost", "lives", s.player.Lives(), "kind", ev.Species.String())
		} else {
			s.record(telemetry.Event{Type: telemetry.EventHitAbsorbed, Tick: s.tick, Kind: ev.Species})
		}
		systems.Knockback(pa, contact, pc.Knockback)

		if s.player.Lives() <= 0 {
			s.over = true
			s.lastEvent = Event{Kind: EventGameOver}
			s.log.Info("game_over", "score", s.player.Score(), "power", s.player.Power())
			return true
		}
		return false
	}

	s.world.RemoveCreature(ev.Target)
	gained := s.player.AddToScore(pc.ScoreWeight, ev.Value)
	s.record(telemetry.NewEatenEvent(s.tick, ev.Species, ev.Value))
	if gained > 0 {
		s.player.IncreasePower(gained)
		s.log.Info("power_increased", "power", s.player.Power(), "score", s.player.Score())
	}
	return false
}

// collectPowerUps applies every power-up the player is touching.
func (s *AquariumScene) collectPowerUps() {
	pa := s.player.Actor()
	pus := s.world.PowerUps()
	for i := 0; i < len(pus); {
		if !systems.InReach(pa, pus[i]) {
			i++
			continue
		}
		s.player.ActivateSpeedBoost(s.cfg.PowerUp.BoostMultiplier, s.cfg.Derived.BoostTicks)
		s.world.RemovePowerUpAt(i)
		pus = s.world.PowerUps()
		s.record(telemetry.Event{Type: telemetry.EventPowerUpCollected, Tick: s.tick})
		s.log.Info("speed_boost", "speed", s.player.Speed(), "ticks", s.player.BoostTicks())
	}
}

// drainWorldEvents forwards world events to telemetry and the debug log.
func (s *AquariumScene) drainWorldEvents() {
	for _, ev := range s.world.DrainEvents() {
		switch ev.Kind {
		case EventCreatureAdded:
			s.record(telemetry.NewSpawnEvent(s.tick, ev.Species))
		case EventCreatureRemoved:
			s.record(telemetry.Event{Type: telemetry.EventRemoved, Tick: s.tick, Kind: ev.Species, Amount: ev.Value})
		case EventPowerUpSpawned:
			s.record(telemetry.Event{Type: telemetry.EventPowerUpSpawned, Tick: s.tick})
		case EventNewLevel:
			s.record(telemetry.NewLevelCompletedEvent(s.tick, ev.Score))
			s.completed = append(s.completed, telemetry.LevelRecord{
				Tick:        s.tick,
				Counter:     ev.Counter,
				Index:       ev.Level,
				TargetScore: ev.TargetScore,
				FinalScore:  ev.Score,
				PlayerScore: s.player.Score(),
			})
			if s.lastEvent.Kind == EventNone {
				s.lastEvent = ev
			}
		}
		s.log.Debug("world_event", "event", ev.Kind.String(), "kind", ev.Species.String())
	}
}

func (s *AquariumScene) record(e telemetry.Event) {
	if s.collector != nil {
		s.collector.Record(e)
	}
}

// DrainCompletedLevels returns levels finished since the last call.
func (s *AquariumScene) DrainCompletedLevels() []telemetry.LevelRecord {
	out := s.completed
	s.completed = nil
	return out
}

// Draw renders the world and the player.
func (s *AquariumScene) Draw() {
	if s.world != nil {
		s.world.Draw()
	}
	if s.player != nil {
		s.player.Draw()
	}
}

// Status holds the values a HUD shows.
type Status struct {
	Score        int
	Power        int
	Lives        int
	BoostSeconds int // whole seconds of boost left, rounded up
	Invulnerable bool
	Level        int // active level index
	LevelsDone   int
	LevelScore   int
	LevelTarget  int
	Creatures    int
	Over         bool
}

// Status reports the HUD values for the current frame.
func (s *AquariumScene) Status() Status {
	if s.player == nil || s.world == nil {
		return Status{Over: s.over}
	}
	tps := max(1, s.cfg.Timing.TicksPerSecond)
	st := Status{
		Score:        s.player.Score(),
		Power:        s.player.Power(),
		Lives:        s.player.Lives(),
		BoostSeconds: (s.player.BoostTicks() + tps - 1) / tps,
		Invulnerable: s.player.Invulnerable(),
		Level:        s.world.Progression().Index(),
		LevelsDone:   s.world.Progression().Counter(),
		Creatures:    s.world.CreatureCount(),
		Over:         s.over,
	}
	if lvl, ok := s.world.CurrentLevel(); ok {
		st.LevelScore = lvl.Score()
		st.LevelTarget = lvl.TargetScore()
	}
	return st
}
