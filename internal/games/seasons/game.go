// Package seasons implements Stickman Seasons: a stickman falls through a
// rising sky of balloons and platforms, collecting keys to move through
// sixteen seasonal levels and a gift that grants a shield.
//
// The package is a pure simulation. Step advances exactly one tick and
// returns semantic events; Render issues Canvas calls and never mutates
// state. All randomness comes from the seeded source in RuntimeConfig.
package seasons

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/stickman-seasons/internal/config"
	"github.com/vovakirdan/stickman-seasons/internal/core"
	"github.com/vovakirdan/stickman-seasons/internal/registry"
)

// GameID is the registry identifier.
const GameID = "seasons"

// Game is the Stickman Seasons simulation.
type Game struct {
	cfg        config.SeasonsConfig
	difficulty *config.DifficultyManager
	logger     *log.Logger
	runtime    core.RuntimeConfig
	rng        *core.Rand
	env        *world

	player      *Player
	obstacles   []Obstacle
	keys        []*Key
	gift        *Gift
	giftSpawned bool // Gift already appeared on this level
	birds       []*Bird
	weather     []*Particle
	effects     []*Particle
	texts       []*FloatingText

	wind     Wind
	thunder  Thunder
	shield   Shield
	progress Progression

	score       int
	lives       int
	lastAmbient int // Level whose ambient track was last announced, -1 for none
	ticks       int
	outro       int // Frames left of the game-over explosion
	running     bool
	paused      bool
	gameOver    bool

	events []core.Event
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for fail-soft warnings and lifecycle info.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

var (
	defaultsMu     sync.RWMutex
	defaultConfig  = config.DefaultSeasonsConfig()
	defaultOptions []Option
)

// Configure sets the config and options used by games created through the
// registry. The CLI calls it once after loading the config file.
func Configure(cfg config.SeasonsConfig, opts ...Option) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	defaultConfig = cfg
	defaultOptions = opts
}

// New creates a game with the configured defaults.
func New() *Game {
	defaultsMu.RLock()
	cfg, opts := defaultConfig, defaultOptions
	defaultsMu.RUnlock()
	return NewWithConfig(cfg, opts...)
}

// NewWithConfig creates a game with an explicit config.
func NewWithConfig(cfg config.SeasonsConfig, opts ...Option) *Game {
	g := &Game{
		cfg:         cfg,
		difficulty:  config.NewDifficultyManager(cfg.Difficulty),
		logger:      log.New(io.Discard),
		lastAmbient: -1,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Stickman Seasons"
}

// Reset starts a fresh game at level 0.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = core.NewRand(seed)
	g.env = &world{wind: &g.wind, rng: g.rng, cfg: &g.cfg}
	g.env.w, g.env.h = core.WorldSize(runtime.ScreenW, runtime.ScreenH)
	g.events = nil
	g.start(0)
}

// start resets all play state and begins running at level index.
func (g *Game) start(index int) {
	g.score = 0
	g.lives = g.cfg.Rules.Lives
	g.ticks = 0
	g.outro = 0
	g.gameOver = false
	g.paused = false
	g.running = true

	g.progress = NewProgression(g.cfg.Rules.KeysNeeded)
	if err := g.progress.SetLevel(index); err != nil {
		g.logger.Warn("starting at first level", "requested", index, "err", err)
	}

	g.wind = Wind{}
	g.thunder = Thunder{}
	g.shield = Shield{}
	g.obstacles = nil
	g.keys = nil
	g.gift = nil
	g.giftSpawned = false
	g.weather = nil
	g.effects = nil
	g.texts = nil

	g.player = newPlayer(g.env)
	g.player.Neon = g.progress.Level().Neon
	g.birds = make([]*Bird, 0, birdCount)
	for i := 0; i < birdCount; i++ {
		g.birds = append(g.birds, newBird(g.env))
	}

	g.lastAmbient = -1
	g.announceAmbient()
	g.logger.Debug("game started", "level", index+1, "name", g.progress.Level().Name)
}

// Start begins a new game at level 0.
func (g *Game) Start() {
	g.start(0)
}

// Restart is Start under another name, used after game over.
func (g *Game) Restart() {
	g.start(0)
}

// SelectLevel starts a fresh game at level i.
func (g *Game) SelectLevel(i int) error {
	if _, err := LevelAt(i); err != nil {
		return err
	}
	g.start(i)
	return nil
}

// Pause stops the simulation until Resume.
func (g *Game) Pause() {
	if !g.running || g.paused {
		return
	}
	g.paused = true
	g.emit(core.EventAmbientStop, 0, "")
}

// Resume continues a paused game and restores its ambient track.
func (g *Game) Resume() {
	if !g.running || !g.paused {
		return
	}
	g.paused = false
	g.announceAmbient()
}

// Resize changes the world to a screen of w x h cells. Live entities keep
// their positions; the player is pulled back inside the new bounds.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	if g.env == nil {
		return
	}
	g.env.w, g.env.h = core.WorldSize(w, h)
	if g.player != nil {
		g.player.clamp()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		Level:    g.progress.Index(),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Running reports whether ticks currently advance the simulation.
func (g *Game) Running() bool {
	return g.running && !g.paused
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.env == nil {
		g.Reset(core.DefaultConfig())
	}

	// Lifecycle signals
	switch {
	case in.Has(core.ActionRestart):
		g.Restart()
	case in.Has(core.ActionPause):
		if g.paused {
			g.Resume()
		} else {
			g.Pause()
		}
	case in.Has(core.ActionResume):
		g.Resume()
	}

	if g.gameOver {
		if g.outro > 0 {
			g.outro--
			g.updateParticles(&g.effects)
		}
		return g.result()
	}
	if !g.Running() {
		return g.result()
	}

	g.ticks++
	g.applyInput(in)

	g.spawnObstacles()

	level := g.progress.Level()
	storm := level.Weather == WeatherStorm
	chance := g.cfg.Wind.Chance
	if storm {
		chance = g.cfg.Wind.StormChance
	}
	if g.wind.maybeStart(chance, g.cfg.Wind, g.rng) {
		g.weather = append(g.weather, gustParticles(g.env, g.cfg.Wind.GustParticles)...)
		g.emit(core.EventWind, int(g.wind.Dir), g.wind.Label())
	}
	if g.wind.tick() {
		g.emit(core.EventWind, 0, g.wind.Label())
	}

	if p := spawnWeather(level.Weather, g.env); p != nil {
		g.weather = append(g.weather, p)
	}
	g.thunder.update(storm, g.cfg.Thunder, g.rng)

	// Counted before pickups so a fresh shield keeps its full duration
	if g.shield.tick() {
		g.pop(g.player.Pos, core.ColorSky)
		g.emit(core.EventShieldDown, 0, "")
	}

	g.obstaclePass(g.scrollSpeed())
	if g.gameOver {
		g.updateParticles(&g.effects)
		return g.result()
	}

	for _, b := range g.birds {
		b.Update(0)
	}

	g.keyPass()
	g.spawnKey()

	g.spawnGift()
	g.giftPass()

	g.player.Update(0)

	g.updateParticles(&g.weather)
	g.updateParticles(&g.effects)
	g.updateTexts()
	g.thunder.decay()

	return g.result()
}

// applyInput turns move intents into target velocities.
func (g *Game) applyInput(in core.InputFrame) {
	if in.Has(core.ActionStopX) {
		g.player.steerX(0)
	}
	if in.Has(core.ActionStopY) {
		g.player.steerY(0)
	}
	if in.Has(core.ActionLeft) {
		g.player.steerX(-1)
	}
	if in.Has(core.ActionRight) {
		g.player.steerX(1)
	}
	if in.Has(core.ActionUp) {
		g.player.steerY(-1)
	}
	if in.Has(core.ActionDown) {
		g.player.steerY(1)
	}
	if in.Pointer.Active {
		g.player.Pos.X = in.Pointer.X
		g.player.clamp()
	}
}

// advanceLevel moves to the next level and places its gift.
func (g *Game) advanceLevel() {
	g.keys = nil
	lvl := g.progress.Advance()
	g.player.Neon = lvl.Neon
	g.logger.Info("level up", "level", lvl.Index+1, "name", lvl.Name)
	g.emit(core.EventLevelAdvanced, lvl.Index, lvl.Name)
	g.announceAmbient()
	g.placeGift()
}

// announceAmbient requests the current level's ambient track.
func (g *Game) announceAmbient() {
	lvl := g.progress.Level()
	g.lastAmbient = lvl.Index
	g.emit(core.EventAmbient, lvl.Index, lvl.Ambient)
}

// activateShield grants the shield at full duration.
func (g *Game) activateShield() {
	g.shield.Activate(g.cfg.Rules.ShieldFrames, g.cfg.Rules.ShieldFadeFrames)
	g.pop(g.player.Pos, core.ColorBrightCyan)
	g.logger.Debug("shield up", "frames", g.cfg.Rules.ShieldFrames)
	g.emit(core.EventShieldUp, g.cfg.Rules.ShieldFrames, "")
}

// pop spawns the small burst and records the cue.
func (g *Game) pop(at core.Vec2, color core.Color) {
	g.effects = append(g.effects, popBurst(g.env, at, color)...)
	g.emit(core.EventPop, 0, "")
}

// updateParticles advances and compacts a particle container.
func (g *Game) updateParticles(ps *[]*Particle) {
	for _, p := range *ps {
		if p == nil {
			continue
		}
		if err := safeUpdate(p, 0); err != nil {
			g.logger.Warn("dropping broken particle", "err", err)
			p.Age = p.Life + defaultParticleLife + 1
		}
	}
	*ps = compact(*ps)
}

// updateTexts advances floating texts.
func (g *Game) updateTexts() {
	for _, t := range g.texts {
		if t != nil {
			t.Update(0)
		}
	}
	g.texts = compact(g.texts)
}

func (g *Game) emit(kind core.EventKind, value int, text string) {
	g.events = append(g.events, core.Event{Kind: kind, Value: value, Text: text})
}

// result packages the state with the events recorded since the last tick.
func (g *Game) result() core.StepResult {
	res := core.StepResult{State: g.State(), Events: g.events}
	g.events = nil
	return res
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
