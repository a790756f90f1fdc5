// Package game runs the aquarium: the player, the world of NPC creatures,
// collision outcomes, power-ups and the scenes around them.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/telemetry"
)

// Options configures a Game.
type Options struct {
	Config    *config.Config // nil uses the embedded defaults
	Seed      int64
	Logger    *slog.Logger
	LogStats  bool
	OutputDir string
	Headless  bool

	Sprites  SpriteProvider
	Viewport Viewport
	Input    InputSource                  // nil steers with the autopilot
	Banner   func(title, subtitle string) // draws intro and game-over cards
}

// Game holds the complete game state.
type Game struct {
	cfg  *config.Config
	rng  *rand.Rand
	log  *slog.Logger
	opts Options

	manager   *SceneManager
	scene     *AquariumScene
	intro     *BannerScene
	gameOver  *BannerScene
	input     InputSource
	autopilot bool

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	logStats      bool

	tick int32
}

// NewGameWithOptions creates a game ready to update.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = discardLogger()
	}
	if opts.Viewport == nil {
		opts.Viewport = FixedViewport{W: cfg.Screen.Width, H: cfg.Screen.Height}
	}
	if opts.Sprites == nil {
		opts.Sprites = NopSprites{}
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := om.WriteConfig(cfg); err != nil {
		logger.Error("failed to write config snapshot", "error", err)
	}

	g := &Game{
		cfg:           cfg,
		rng:           rand.New(rand.NewSource(opts.Seed)),
		log:           logger,
		opts:          opts,
		manager:       &SceneManager{},
		collector:     telemetry.NewCollector(cfg.Derived.StatsWindowTicks, cfg.Derived.SecondsPerTick),
		perfCollector: telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		outputManager: om,
		logStats:      opts.LogStats,
	}

	scene, err := g.newScene()
	if err != nil {
		om.Close()
		return nil, err
	}
	g.setScene(scene)

	tps := cfg.Timing.TicksPerSecond
	g.intro = NewBannerScene(SceneIntro, cfg.Screen.Title, "Eat what you can. Avoid what you cannot.", 2*tps, opts.Banner)
	g.gameOver = NewBannerScene(SceneGameOver, "Game Over", "", 0, opts.Banner)

	// Headless runs skip the intro card
	if !opts.Headless {
		g.manager.AddScene(g.intro)
	}
	g.manager.AddScene(g.scene)
	g.manager.AddScene(g.gameOver)

	g.log.Info("game_created",
		"seed", opts.Seed,
		"levels", len(cfg.Levels),
		"headless", opts.Headless,
		"output_dir", om.Dir(),
	)
	return g, nil
}

// newScene builds a fresh world and player.
func (g *Game) newScene() (*AquariumScene, error) {
	w, err := NewWorld(WorldOptions{
		Config:   g.cfg,
		Sprites:  g.opts.Sprites,
		Viewport: g.opts.Viewport,
		Logger:   g.log,
		Rand:     g.rng,
	})
	if err != nil {
		return nil, fmt.Errorf("creating world: %w", err)
	}

	vw, vh := w.Size()
	r := g.cfg.Player.Radius
	player := NewPlayer(g.cfg, float64(vw)/2-r, float64(vh)/2-r, g.opts.Sprites.PlayerSprite())

	return NewAquariumScene(SceneOptions{
		Name:      SceneAquarium,
		Config:    g.cfg,
		Player:    player,
		World:     w,
		Logger:    g.log,
		Collector: g.collector,
		Perf:      g.perfCollector,
	}), nil
}

// setScene installs the gameplay scene and its input source.
func (g *Game) setScene(scene *AquariumScene) {
	g.scene = scene
	if g.opts.Input != nil {
		g.input = g.opts.Input
		return
	}
	g.input = NewAutopilot(scene)
	g.autopilot = true
}

// Update advances the active scene by one frame and handles transitions.
func (g *Game) Update() {
	g.tick++

	switch g.manager.ActiveName() {
	case SceneIntro:
		g.manager.Update()
		if g.intro.Done() {
			g.manager.Transition(SceneAquarium)
		}

	case SceneAquarium:
		g.scene.Player().SetDirection(g.input.Direction())
		g.manager.Update()
		g.writeCompletedLevels()
		g.flushTelemetry()

		if g.scene.LastEvent().IsGameOver() {
			st := g.scene.Status()
			g.gameOver.Subtitle = fmt.Sprintf("Score %d  Power %d  Levels %d", st.Score, st.Power, st.LevelsDone)
			g.gameOver.Reset()
			g.manager.Transition(SceneGameOver)
			g.log.Info("scene_transition", "to", SceneGameOver, "tick", g.tick)
		}

	default:
		g.manager.Update()
	}
}

// Restart replaces the world and player and returns to the aquarium.
func (g *Game) Restart() error {
	scene, err := g.newScene()
	if err != nil {
		return err
	}
	g.setScene(scene)
	g.manager.Replace(scene)
	g.manager.Transition(SceneAquarium)
	g.log.Info("game_restarted", "tick", g.tick)
	return nil
}

// Draw renders the active scene.
func (g *Game) Draw() {
	g.manager.Draw()
}

// Status returns the HUD values of the gameplay scene.
func (g *Game) Status() Status {
	return g.scene.Status()
}

// Tick returns the number of frames updated.
func (g *Game) Tick() int32 {
	return g.tick
}

// Over reports whether the current game has ended.
func (g *Game) Over() bool {
	return g.scene.Over()
}

// Scene returns the gameplay scene.
func (g *Game) Scene() *AquariumScene {
	return g.scene
}

// ActiveScene returns the name of the active scene.
func (g *Game) ActiveScene() string {
	return g.manager.ActiveName()
}

// Unload flushes telemetry and closes output files.
func (g *Game) Unload() {
	if err := g.outputManager.Close(); err != nil {
		g.log.Error("failed to close output", "error", err)
	}
}
