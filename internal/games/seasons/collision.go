package seasons

import (
	"fmt"
	"math"

	"github.com/vovakirdan/stickman-seasons/internal/core"
)

// withinPickup is the axis-aligned proximity test used for keys and gifts.
func withinPickup(a, b core.Vec2, r float64) bool {
	return math.Abs(a.X-b.X) < r && math.Abs(a.Y-b.Y) < r
}

// offscreen reports whether an obstacle left the play field for good.
func (g *Game) offscreen(p core.Vec2) bool {
	c := g.cfg.Collision
	return p.Y < c.OffscreenTop || p.X < -c.OffscreenSide || p.X > g.env.w+c.OffscreenSide
}

// safeUpdate runs e.Update and converts a panic into an error so a broken
// entity cannot take the tick down with it.
func safeUpdate(e Entity, speed float64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("entity update panicked: %v", r)
		}
	}()
	e.Update(speed)
	return nil
}

// obstaclePass updates every obstacle and runs scoring, collision and
// off-screen removal. Removal is deferred: obstacles are flagged during the
// pass and the slice is compacted afterwards. The pass stops after a life is
// lost.
func (g *Game) obstaclePass(speed float64) {
	for i := len(g.obstacles) - 1; i >= 0; i-- {
		ob := g.obstacles[i]
		if isNilEntity(ob) {
			g.logger.Warn("dropping nil obstacle", "index", i)
			continue
		}
		if ob.Removed() {
			continue
		}
		if err := safeUpdate(ob, speed); err != nil {
			g.logger.Warn("dropping broken obstacle", "kind", ob.Kind(), "err", err)
			ob.MarkRemoved()
			continue
		}
		if ob.Removed() {
			continue
		}

		pos := ob.Pos()

		// Scoring: the obstacle rose above the player
		if !ob.Passed() && pos.Y < g.player.Pos.Y {
			ob.MarkPassed()
			g.score++
			g.emit(core.EventScore, g.score, "")
			if idx := g.progress.Index(); idx != g.lastAmbient {
				g.announceAmbient()
			}
		}

		if ob.Hits(g.player, g.cfg.Collision) {
			ob.MarkRemoved()
			if g.shield.Active() {
				g.absorb(pos)
				continue
			}
			g.pop(pos, core.ColorRed)
			g.loseLife(pos)
			break
		}

		if g.offscreen(pos) {
			ob.MarkRemoved()
		}
	}
	g.obstacles = compact(g.obstacles)
}

// absorb handles a shielded hit: bonus points and sparkles, no life lost.
func (g *Game) absorb(at core.Vec2) {
	bonus := g.cfg.Rules.ShieldBonus
	g.score += bonus
	g.texts = append(g.texts, NewFloatingText(at.X, at.Y-20, fmt.Sprintf("+%d", bonus), core.ColorGold))
	g.pop(at, core.ColorBrightCyan)
	g.effects = append(g.effects, sparkleBurst(g.env, g.player.Pos)...)
	g.emit(core.EventShieldAbsorb, bonus, "")
}

// loseLife removes a life. With lives left the play field is soft-reset;
// on the last life the game ends exactly once.
func (g *Game) loseLife(at core.Vec2) {
	if g.gameOver {
		return
	}
	g.lives = max(g.lives-1, 0)

	if g.lives > 0 {
		g.logger.Debug("life lost", "lives", g.lives, "score", g.score)
		g.emit(core.EventLifeLost, g.lives, "")
		g.player = newPlayer(g.env)
		g.player.Neon = g.progress.Level().Neon
		g.obstacles = nil
		g.keys = nil
		return
	}

	g.gameOver = true
	g.running = false
	g.outro = g.cfg.Rules.OutroFrames
	g.effects = append(g.effects, explosionBurst(g.env, at)...)
	g.logger.Info("game over", "score", g.score, "level", g.progress.Index()+1)
	g.emit(core.EventExplosion, 0, "")
	g.emit(core.EventGameOver, g.score, "")
	g.emit(core.EventAmbientStop, 0, "")
}

// keyPass moves keys and collects any the player touches.
func (g *Game) keyPass() {
	speed := g.keySpeed()
	for i := len(g.keys) - 1; i >= 0; i-- {
		k := g.keys[i]
		if k == nil {
			g.logger.Warn("dropping nil key", "index", i)
			continue
		}
		if err := safeUpdate(k, speed); err != nil {
			g.logger.Warn("dropping broken key", "err", err)
			k.removed = true
			continue
		}
		if k.removed {
			continue
		}
		if withinPickup(g.player.Pos, k.Pos, g.cfg.Collision.PickupRange) {
			k.removed = true
			g.pop(k.Pos, core.ColorGold)
			done := g.progress.CollectKey()
			g.emit(core.EventKeyCollected, g.progress.Keys(), "")
			if done {
				g.advanceLevel()
				return
			}
		}
	}
	g.keys = compact(g.keys)
}

// giftPass updates the gift and grants the shield on pickup.
func (g *Game) giftPass() {
	if g.gift == nil || g.gift.Collected {
		return
	}
	g.gift.Update(0)
	if withinPickup(g.player.Pos, g.gift.Pos, g.cfg.Collision.PickupRange) {
		g.gift.Collected = true
		g.activateShield()
	}
}

// compact drops nil and removed entities, reusing the backing array.
func compact[T Entity](items []T) []T {
	out := items[:0]
	for _, it := range items {
		if isNilEntity(it) || it.Removed() {
			continue
		}
		out = append(out, it)
	}
	clear(items[len(out):])
	return out
}

// isNilEntity catches both nil interfaces and typed nil pointers.
func isNilEntity(e Entity) bool {
	switch v := e.(type) {
	case nil:
		return true
	case *Balloon:
		return v == nil
	case *Platform:
		return v == nil
	case *Key:
		return v == nil
	case *Particle:
		return v == nil
	case *FloatingText:
		return v == nil
	case *Bird:
		return v == nil
	default:
		return false
	}
}
