package seasons

import "github.com/vovakirdan/stickman-seasons/internal/core"

// Spawn offsets below the bottom edge, in pixels.
const (
	balloonSpawnMargin  = 40
	platformSpawnMargin = 60
	keySpawnMargin      = 40
	giftSpawnY          = 100
)

// spawnObstacles rolls the per-tick obstacle chance. A successful roll adds a
// balloon and, on the challenge tier, possibly a platform alongside it.
func (g *Game) spawnObstacles() {
	chance := g.difficulty.SpawnChance(g.cfg.Spawn, g.score, g.ticks)
	if !g.rng.Chance(chance) {
		return
	}

	w, h := g.env.w, g.env.h
	g.addObstacle(KindBalloon, balloonSpawnMargin+g.rng.Float()*(w-2*balloonSpawnMargin), h+balloonSpawnMargin)

	if g.progress.Index() >= g.cfg.Spawn.PlatformMinLevel && g.rng.Chance(g.cfg.Spawn.PlatformChance) {
		g.addObstacle(KindPlatform, platformSpawnMargin+g.rng.Float()*(w-2*platformSpawnMargin), h+platformSpawnMargin)
	}
}

// addObstacle constructs and stores an obstacle; failures are logged and skipped.
func (g *Game) addObstacle(kind ObstacleKind, x, y float64) {
	ob, err := newObstacle(kind, x, y, g.env)
	if err != nil {
		g.logger.Warn("dropping obstacle", "err", err)
		return
	}
	g.obstacles = append(g.obstacles, ob)
}

// spawnKey rolls for a key while none is alive.
func (g *Game) spawnKey() {
	if len(g.keys) > 0 || !g.rng.Chance(g.cfg.Spawn.KeyChance) {
		return
	}
	x := keySpawnMargin + g.rng.Float()*(g.env.w-2*keySpawnMargin)
	g.keys = append(g.keys, newKey(x, g.env.h+keySpawnMargin, g.rng))
}

// spawnGift rolls for the level's gift if it has not appeared yet.
func (g *Game) spawnGift() {
	if g.giftSpawned || !g.rng.Chance(g.cfg.Spawn.GiftChance) {
		return
	}
	g.placeGift()
}

// placeGift puts the level's gift near the top center.
func (g *Game) placeGift() {
	g.gift = newGift(g.env.w/2, giftSpawnY)
	g.giftSpawned = true
}

// scrollSpeed returns the current world speed in pixels per tick.
func (g *Game) scrollSpeed() float64 {
	return g.difficulty.ScrollSpeed(g.cfg.Physics, g.progress.Level().SpeedBoost, g.score, g.ticks)
}

// keySpeed is the fixed rise speed of keys.
func (g *Game) keySpeed() float64 {
	return g.cfg.Physics.BaseSpeed * g.cfg.Physics.KeyRiseScale
}

// spawnPoint is where a fresh player appears.
func (w *world) spawnPoint() core.Vec2 {
	return core.Vec2{X: w.w / 2, Y: w.cfg.Player.SpawnY}
}
