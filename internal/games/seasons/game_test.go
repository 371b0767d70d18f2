package seasons

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/stickman-seasons/internal/config"
	"github.com/vovakirdan/stickman-seasons/internal/core"
	"github.com/vovakirdan/stickman-seasons/internal/registry"
)

// quietConfig disables every random spawn so tests control the field.
func quietConfig() config.SeasonsConfig {
	cfg := config.DefaultSeasonsConfig()
	cfg.Spawn.ObstacleBaseChance = 0
	cfg.Spawn.ObstacleScoreDivisor = 1e12
	cfg.Spawn.KeyChance = 0
	cfg.Spawn.GiftChance = 0
	cfg.Wind.Chance = 0
	cfg.Wind.StormChance = 0
	cfg.Thunder.Chance = 0
	return cfg
}

func newTestGame(t *testing.T, cfg config.SeasonsConfig) *Game {
	t.Helper()
	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60, Seed: 42})
	return g
}

func step(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

func countEvents(events []core.Event, kind core.EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// balloonBelowPlayer places a balloon just under the player so it collides
// on the next tick without being scored as passed first.
func balloonBelowPlayer(g *Game) *Balloon {
	b := newBalloon(g.player.Pos.X, g.player.Pos.Y+10, g.env)
	g.obstacles = append(g.obstacles, b)
	return b
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatal("seasons should register itself")
	}
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.Title() != "Stickman Seasons" {
		t.Errorf("Title() = %q", g.Title())
	}
}

func TestGameInitialState(t *testing.T) {
	g := newTestGame(t, quietConfig())
	state := g.State()

	if state.Score != 0 || state.Lives != 3 || state.Level != 0 {
		t.Errorf("unexpected initial state: %+v", state)
	}
	if state.GameOver || state.Paused {
		t.Error("game should start running")
	}
	if g.player.Pos != g.env.spawnPoint() {
		t.Errorf("player at %v, expected spawn %v", g.player.Pos, g.env.spawnPoint())
	}
	if len(g.birds) != birdCount {
		t.Errorf("expected %d birds, got %d", birdCount, len(g.birds))
	}

	res := step(g)
	if countEvents(res.Events, core.EventAmbient) != 1 {
		t.Error("first tick should carry the ambient track request")
	}
}

func TestUnshieldedCollision(t *testing.T) {
	g := newTestGame(t, quietConfig())
	g.player.Pos = core.Vec2{X: 200, Y: 300}
	g.keys = append(g.keys, newKey(100, 400, g.rng))
	balloonBelowPlayer(g)

	res := step(g)
	state := res.State

	if state.Lives != 2 {
		t.Errorf("lives = %d, expected 2", state.Lives)
	}
	if state.Score != 0 {
		t.Errorf("score = %d, expected unchanged 0", state.Score)
	}
	if g.player.Pos != g.env.spawnPoint() {
		t.Errorf("player at %v, expected respawn at %v", g.player.Pos, g.env.spawnPoint())
	}
	if len(g.obstacles) != 0 || len(g.keys) != 0 {
		t.Errorf("field not cleared: %d obstacles, %d keys", len(g.obstacles), len(g.keys))
	}
	if countEvents(res.Events, core.EventLifeLost) != 1 {
		t.Error("expected one life lost event")
	}
	if countEvents(res.Events, core.EventGameOver) != 0 {
		t.Error("game over should not fire with lives left")
	}
}

func TestThreeCollisionsEndGame(t *testing.T) {
	g := newTestGame(t, quietConfig())
	g.score = 7

	gameOvers := 0
	for i := 0; i < 3; i++ {
		balloonBelowPlayer(g)
		res := step(g)
		gameOvers += countEvents(res.Events, core.EventGameOver)
		if i < 2 && res.State.GameOver {
			t.Fatalf("game over after %d collisions", i+1)
		}
		if i == 2 {
			for _, e := range res.Events {
				if e.Kind == core.EventGameOver && e.Value != 7 {
					t.Errorf("final score reported %d, expected 7", e.Value)
				}
			}
			if countEvents(res.Events, core.EventExplosion) != 1 {
				t.Error("expected an explosion on the final life")
			}
		}
	}

	state := g.State()
	if !state.GameOver || state.Lives != 0 || state.Score != 7 {
		t.Errorf("unexpected final state: %+v", state)
	}

	// No further updates and no second game over
	for i := 0; i < 50; i++ {
		g.obstacles = append(g.obstacles, newBalloon(g.player.Pos.X, g.player.Pos.Y+10, g.env))
		res := step(g)
		gameOvers += countEvents(res.Events, core.EventGameOver)
		if res.State.Lives != 0 || res.State.Score != 7 {
			t.Fatalf("state changed after game over: %+v", res.State)
		}
	}
	if gameOvers != 1 {
		t.Errorf("game over fired %d times, expected exactly once", gameOvers)
	}
}

func TestGameOverOutro(t *testing.T) {
	cfg := quietConfig()
	cfg.Rules.Lives = 1
	g := newTestGame(t, cfg)

	balloonBelowPlayer(g)
	step(g)
	if !g.gameOver || g.outro != cfg.Rules.OutroFrames {
		t.Fatalf("expected outro of %d frames, got %d", cfg.Rules.OutroFrames, g.outro)
	}
	if len(g.effects) == 0 {
		t.Fatal("expected explosion particles")
	}

	for i := 0; i < cfg.Rules.OutroFrames+5; i++ {
		step(g)
	}
	if g.outro != 0 {
		t.Errorf("outro should finish, %d frames left", g.outro)
	}
}

func TestShieldedCollision(t *testing.T) {
	g := newTestGame(t, quietConfig())
	g.gift = newGift(g.player.Pos.X, g.player.Pos.Y)
	g.giftSpawned = true

	res := step(g)
	if !g.shield.Active() {
		t.Fatal("gift pickup should activate the shield")
	}
	if g.shield.Remaining() != g.cfg.Rules.ShieldFrames {
		t.Errorf("shield remaining = %d, expected full %d", g.shield.Remaining(), g.cfg.Rules.ShieldFrames)
	}
	if countEvents(res.Events, core.EventShieldUp) != 1 {
		t.Error("expected shield up event")
	}

	before := g.State()
	balloonBelowPlayer(g)
	res = step(g)

	if res.State.Lives != before.Lives {
		t.Errorf("lives changed %d -> %d under shield", before.Lives, res.State.Lives)
	}
	if res.State.Score != before.Score+5 {
		t.Errorf("score = %d, expected %d", res.State.Score, before.Score+5)
	}
	if len(g.obstacles) != 0 {
		t.Error("absorbed obstacle should be removed")
	}
	if len(g.texts) != 1 || g.texts[0].Text != "+5" {
		t.Error("expected a +5 floating text")
	}
	if countEvents(res.Events, core.EventShieldAbsorb) != 1 {
		t.Error("expected shield absorb event")
	}
}

func TestShieldExpires(t *testing.T) {
	cfg := quietConfig()
	cfg.Rules.ShieldFrames = 5
	cfg.Rules.ShieldFadeFrames = 2
	g := newTestGame(t, cfg)
	g.activateShield()

	downs := 0
	for i := 0; i < 10; i++ {
		downs += countEvents(step(g).Events, core.EventShieldDown)
	}
	if g.shield.Active() {
		t.Error("shield should expire")
	}
	if downs != 1 {
		t.Errorf("shield down fired %d times, expected 1", downs)
	}
}

func TestKeyAdvancesLevel(t *testing.T) {
	g := newTestGame(t, quietConfig())
	// Away from the spot where the next gift appears
	g.player.Pos = core.Vec2{X: 200, Y: 300}
	g.keys = append(g.keys, newKey(g.player.Pos.X, g.player.Pos.Y, g.rng))

	res := step(g)
	if res.State.Level != 1 {
		t.Errorf("level = %d, expected 1", res.State.Level)
	}
	if g.progress.Keys() != 0 {
		t.Errorf("keys collected = %d, expected reset to 0", g.progress.Keys())
	}
	if countEvents(res.Events, core.EventLevelAdvanced) != 1 {
		t.Error("expected exactly one level transition")
	}
	if g.gift == nil || g.gift.Collected {
		t.Fatal("new level should place a gift")
	}
	if g.gift.Pos.X != g.env.w/2 {
		t.Errorf("gift at x=%f, expected centered", g.gift.Pos.X)
	}
}

func TestKeyWrapsAtLastLevel(t *testing.T) {
	g := newTestGame(t, quietConfig())
	if err := g.SelectLevel(LevelCount - 1); err != nil {
		t.Fatal(err)
	}
	g.player.Pos = core.Vec2{X: 200, Y: 300}
	g.keys = append(g.keys, newKey(g.player.Pos.X, g.player.Pos.Y, g.rng))

	res := step(g)
	if res.State.Level != 0 {
		t.Errorf("level = %d, expected wrap to 0", res.State.Level)
	}
}

func TestSelectLevel(t *testing.T) {
	g := newTestGame(t, quietConfig())
	g.score = 40

	if err := g.SelectLevel(5); err != nil {
		t.Fatal(err)
	}
	state := g.State()
	if state.Level != 5 || state.Score != 0 || state.Lives != 3 {
		t.Errorf("SelectLevel should start fresh at level 5, got %+v", state)
	}

	for _, bad := range []int{-1, LevelCount} {
		if err := g.SelectLevel(bad); err == nil {
			t.Errorf("SelectLevel(%d) should fail", bad)
		}
	}
	if g.State().Level != 5 {
		t.Error("failed SelectLevel should not change the level")
	}
}

func TestPassScoring(t *testing.T) {
	g := newTestGame(t, quietConfig())
	b := newBalloon(100, g.player.Pos.Y+2, g.env)
	g.obstacles = append(g.obstacles, b)

	res := step(g)
	if res.State.Score != 1 {
		t.Errorf("score = %d, expected 1", res.State.Score)
	}
	if !b.Passed() {
		t.Error("balloon should be marked passed")
	}

	step(g)
	if g.State().Score != 1 {
		t.Error("an obstacle must only score once")
	}
}

func TestOffscreenRemoval(t *testing.T) {
	g := newTestGame(t, quietConfig())
	w := g.env.w
	tests := []struct {
		name string
		pos  core.Vec2
		keep bool
	}{
		{"far left", core.Vec2{X: -301, Y: 400}, false},
		{"far right", core.Vec2{X: w + 301, Y: 400}, false},
		{"above top", core.Vec2{X: 100, Y: -121}, false},
		{"left margin", core.Vec2{X: -299, Y: 400}, true},
		{"right margin", core.Vec2{X: w + 299, Y: 400}, true},
		{"top margin", core.Vec2{X: 100, Y: -119}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g.obstacles = nil
			b := newBalloon(tt.pos.X, tt.pos.Y, g.env)
			// Hold still and stay tall so only the field bounds can remove it
			b.Depth = 0
			b.Height = 500
			b.MarkPassed()
			g.obstacles = append(g.obstacles, b)

			step(g)
			if kept := len(g.obstacles) == 1; kept != tt.keep {
				t.Errorf("at %v kept = %v, want %v", tt.pos, kept, tt.keep)
			}
		})
	}
}

func TestPauseResume(t *testing.T) {
	g := newTestGame(t, quietConfig())
	step(g)

	res := step(g, core.ActionPause)
	if !res.State.Paused {
		t.Fatal("pause action should pause")
	}
	if countEvents(res.Events, core.EventAmbientStop) != 1 {
		t.Error("pausing should stop the ambient track")
	}

	ticks := g.ticks
	pos := g.player.Pos
	for i := 0; i < 10; i++ {
		step(g, core.ActionDown)
	}
	if g.ticks != ticks || g.player.Pos != pos {
		t.Error("paused game should not advance")
	}

	res = step(g, core.ActionPause)
	if res.State.Paused {
		t.Error("second pause should resume")
	}
	if countEvents(res.Events, core.EventAmbient) != 1 {
		t.Error("resuming should restore the ambient track")
	}
}

func TestRestartAction(t *testing.T) {
	cfg := quietConfig()
	cfg.Rules.Lives = 1
	g := newTestGame(t, cfg)
	_ = g.SelectLevel(3)
	balloonBelowPlayer(g)
	step(g)
	if !g.State().GameOver {
		t.Fatal("expected game over")
	}

	res := step(g, core.ActionRestart)
	if res.State.GameOver || res.State.Level != 0 || res.State.Lives != 1 {
		t.Errorf("restart should begin a fresh game at level 0, got %+v", res.State)
	}
}

func TestMoveIntents(t *testing.T) {
	g := newTestGame(t, quietConfig())
	start := g.player.Pos

	for i := 0; i < 20; i++ {
		step(g, core.ActionRight, core.ActionDown)
	}
	if g.player.Pos.X <= start.X || g.player.Pos.Y <= start.Y {
		t.Errorf("player should move right and down, %v -> %v", start, g.player.Pos)
	}

	step(g, core.ActionStopX, core.ActionStopY)
	if g.player.Target != (core.Vec2{}) {
		t.Errorf("stop intents should zero the target, got %v", g.player.Target)
	}

	// The player never leaves the field
	for i := 0; i < 300; i++ {
		step(g, core.ActionLeft, core.ActionUp)
	}
	if g.player.Pos.X != g.cfg.Player.MarginX || g.player.Pos.Y != g.cfg.Player.MarginTop {
		t.Errorf("player should be clamped to the corner, got %v", g.player.Pos)
	}
}

func TestPointerIntent(t *testing.T) {
	g := newTestGame(t, quietConfig())
	in := core.NewInputFrame()
	in.SetPointer(100)
	g.Step(in)
	if g.player.Pos.X < 95 || g.player.Pos.X > 105 {
		t.Errorf("pointer should drag the player to x=100, got %f", g.player.Pos.X)
	}

	in.SetPointer(-500)
	g.Step(in)
	if g.player.Pos.X != g.cfg.Player.MarginX {
		t.Errorf("drag should clamp to the margin, got %f", g.player.Pos.X)
	}
}

func TestDeterminism(t *testing.T) {
	run := func() (core.GameState, HUD, int) {
		g := NewWithConfig(config.DefaultSeasonsConfig())
		g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60, Seed: 1234})
		events := 0
		for i := 0; i < 3000; i++ {
			var actions []core.Action
			switch (i / 40) % 4 {
			case 0:
				actions = []core.Action{core.ActionLeft}
			case 1:
				actions = []core.Action{core.ActionStopX, core.ActionDown}
			case 2:
				actions = []core.Action{core.ActionRight, core.ActionStopY}
			default:
				actions = []core.Action{core.ActionUp}
			}
			events += len(step(g, actions...).Events)
		}
		return g.State(), g.HUD(), events
	}

	s1, h1, e1 := run()
	s2, h2, e2 := run()
	if s1 != s2 || h1 != h2 || e1 != e2 {
		t.Errorf("same seed and input diverged:\n%+v %+v %d\n%+v %+v %d", s1, h1, e1, s2, h2, e2)
	}
}

func TestInvariantsUnderLongRun(t *testing.T) {
	cfg := config.DefaultSeasonsConfig()
	cfg.Spawn.KeyChance = 0.05
	cfg.Spawn.GiftChance = 0.01
	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 100, ScreenH: 40, TickRate: 60, Seed: 99})

	gameOvers := 0
	for i := 0; i < 20000; i++ {
		var actions []core.Action
		if i%97 < 30 {
			actions = append(actions, core.ActionLeft)
		} else if i%97 < 60 {
			actions = append(actions, core.ActionRight)
		} else {
			actions = append(actions, core.ActionStopX)
		}
		res := step(g, actions...)
		gameOvers += countEvents(res.Events, core.EventGameOver)

		if res.State.Lives < 0 || res.State.Lives > 3 {
			t.Fatalf("tick %d: lives out of range: %d", i, res.State.Lives)
		}
		if k := g.progress.Keys(); k < 0 || k > g.progress.KeysNeeded() {
			t.Fatalf("tick %d: keys out of range: %d", i, k)
		}
		if len(g.keys) > 1 {
			t.Fatalf("tick %d: %d keys alive", i, len(g.keys))
		}
		if g.wind.Timer < 0 {
			t.Fatalf("tick %d: wind timer negative", i)
		}
		for _, ob := range g.obstacles {
			if ob.Removed() {
				t.Fatalf("tick %d: removed obstacle survived the pass", i)
			}
		}
		if res.State.GameOver && g.outro == 0 {
			g.Restart()
		}
	}
	if gameOvers == 0 {
		t.Log("no game over reached; invariants still held")
	}
}

// brokenObstacle panics on update.
type brokenObstacle struct{ obstacleState }

func (b *brokenObstacle) Update(float64) { panic("broken") }

func (b *brokenObstacle) Draw(core.Canvas) {}

func (b *brokenObstacle) Kind() ObstacleKind { return ObstacleKind(99) }

func (b *brokenObstacle) Hits(*Player, config.SeasonsCollision) bool { return false }

func TestFailSoftDropsBrokenEntities(t *testing.T) {
	g := newTestGame(t, quietConfig())
	var typedNil *Balloon
	g.obstacles = append(g.obstacles, nil, typedNil, &brokenObstacle{}, newBalloon(100, 400, g.env))
	g.keys = append(g.keys, nil)
	g.effects = append(g.effects, nil)

	step(g)

	if len(g.obstacles) != 1 {
		t.Errorf("expected only the healthy balloon to survive, got %d obstacles", len(g.obstacles))
	}
	if len(g.keys) != 0 || len(g.effects) != 0 {
		t.Error("nil keys and particles should be dropped")
	}
}

// vanishingObstacle removes itself during its own update.
type vanishingObstacle struct{ obstacleState }

func (v *vanishingObstacle) Update(float64) { v.removed = true }

func (v *vanishingObstacle) Draw(core.Canvas) {}

func (v *vanishingObstacle) Kind() ObstacleKind { return KindBalloon }

func (v *vanishingObstacle) Hits(*Player, config.SeasonsCollision) bool { return true }

func TestSelfRemovedObstacleIsInert(t *testing.T) {
	g := newTestGame(t, quietConfig())
	ob := &vanishingObstacle{obstacleState{pos: core.Vec2{X: g.player.Pos.X, Y: g.player.Pos.Y - 5}, env: g.env}}
	g.obstacles = append(g.obstacles, ob)

	res := step(g)
	if res.State.Score != 0 || ob.Passed() {
		t.Error("an obstacle gone during its update must not score")
	}
	if res.State.Lives != 3 {
		t.Errorf("lives = %d, an obstacle gone during its update must not hit", res.State.Lives)
	}
	if len(g.obstacles) != 0 {
		t.Errorf("expected the obstacle compacted away, %d left", len(g.obstacles))
	}
}

func TestStartUnknownLevelWarns(t *testing.T) {
	var buf bytes.Buffer
	g := NewWithConfig(quietConfig(), WithLogger(log.New(&buf)))
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60, Seed: 42})

	g.start(LevelCount)
	if got := g.State().Level; got != 0 {
		t.Errorf("level = %d, want fallback to 0", got)
	}
	if !strings.Contains(buf.String(), "starting at first level") {
		t.Errorf("expected a warning, log was %q", buf.String())
	}
}

func TestNewObstacleUnknownKind(t *testing.T) {
	g := newTestGame(t, quietConfig())
	if _, err := newObstacle(ObstacleKind(42), 0, 0, g.env); err == nil {
		t.Fatal("unknown kind should fail")
	} else if !strings.Contains(err.Error(), "unknown obstacle kind") {
		t.Errorf("unexpected error: %v", err)
	}
	for _, k := range []ObstacleKind{KindBalloon, KindPlatform} {
		ob, err := newObstacle(k, 10, 10, g.env)
		if err != nil || ob.Kind() != k {
			t.Errorf("newObstacle(%v) = %v, %v", k, ob, err)
		}
	}
}

func TestRenderDoesNotMutate(t *testing.T) {
	g := newTestGame(t, quietConfig())
	for i := 0; i < 30; i++ {
		step(g, core.ActionRight)
	}
	g.addObstacle(KindBalloon, 100, 300)
	g.addObstacle(KindPlatform, 400, 350)
	g.keys = append(g.keys, newKey(200, 400, g.rng))
	g.placeGift()
	g.activateShield()
	g.texts = append(g.texts, NewFloatingText(100, 100, "+5", core.ColorGold))

	state, hud := g.State(), g.HUD()
	pos := g.player.Pos

	screen := core.NewScreen(80, 30)
	g.Render(core.NewScreenCanvas(screen))

	if g.State() != state || g.HUD() != hud || g.player.Pos != pos {
		t.Error("Render must not change game state")
	}
	if !strings.Contains(screen.Row(0), "Spring Morning") {
		t.Errorf("HUD should show the level name, row 0 = %q", screen.Row(0))
	}
	if screen.Background() != core.ColorSky {
		t.Errorf("background = %v, expected level sky", screen.Background())
	}
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(t, quietConfig())
	screen := core.NewScreen(80, 30)

	step(g, core.ActionPause)
	g.Render(core.NewScreenCanvas(screen))
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused overlay missing")
	}
}

func TestHUD(t *testing.T) {
	g := newTestGame(t, quietConfig())
	g.score = 350
	g.activateShield()

	hud := g.HUD()
	if hud.Level != 1 || hud.LevelName != "Spring Morning" || hud.Glyph != '✿' {
		t.Errorf("unexpected level info: %+v", hud)
	}
	if hud.Progress != 0.5 {
		t.Errorf("progress = %f, expected 0.5", hud.Progress)
	}
	if hud.Wind != "Calm" || hud.WindDir != 0 {
		t.Errorf("wind = %q/%d, expected calm", hud.Wind, hud.WindDir)
	}
	if !hud.Shield || hud.ShieldSeconds != 30 {
		t.Errorf("shield = %v %ds, expected 30s", hud.Shield, hud.ShieldSeconds)
	}
	if hud.Lives != 3 || hud.MaxLives != 3 || hud.KeysNeeded != 1 {
		t.Errorf("unexpected counters: %+v", hud)
	}
}

func TestResizeKeepsPlayerInside(t *testing.T) {
	g := newTestGame(t, quietConfig())
	g.player.Pos = core.Vec2{X: 600, Y: 400}
	g.Resize(40, 16)

	w, h := core.WorldSize(40, 16)
	if g.player.Pos.X > w-g.cfg.Player.MarginX || g.player.Pos.Y > h-g.cfg.Player.MarginBottom {
		t.Errorf("player outside resized world: %v", g.player.Pos)
	}
}
