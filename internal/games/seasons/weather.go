package seasons

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/stickman-seasons/internal/config"
	"github.com/vovakirdan/stickman-seasons/internal/core"
)

// WeatherTag selects the ambient particle profile of a level.
type WeatherTag string

const (
	WeatherPetals    WeatherTag = "petals"
	WeatherHeat      WeatherTag = "heat"
	WeatherLeaves    WeatherTag = "leaves"
	WeatherSnow      WeatherTag = "snow"
	WeatherRain      WeatherTag = "rain"
	WeatherStorm     WeatherTag = "storm"
	WeatherFireflies WeatherTag = "fireflies"
	WeatherSparkles  WeatherTag = "sparkles"
)

type span struct{ min, max float64 }

func (s span) roll(r *core.Rand) float64 { return r.Range(s.min, s.max) }

// weatherProfile describes the particles one weather tag emits.
type weatherProfile struct {
	chance     float64
	anywhere   bool // Spawn anywhere on screen instead of above the top edge
	style      ParticleStyle
	vx, vy     span
	radius     span
	w, h       float64
	colors     []core.Color
	gravity    float64
	life       float64
	windFactor float64
	glow       bool
}

// weatherProfiles has no entry for heat: summer levels are clear.
var weatherProfiles = map[WeatherTag]weatherProfile{
	WeatherPetals: {
		chance: 0.08, style: StyleCircle,
		vx: span{-0.7, 0.7}, vy: span{0.6, 1.6}, radius: span{3, 6},
		colors:  []core.Color{core.ColorPink, core.ColorBrightMagenta, core.ColorBrightWhite},
		gravity: 0.01, life: 200, windFactor: 1.0,
	},
	WeatherLeaves: {
		chance: 0.08, style: StyleRect,
		vx: span{-1.2, 1.2}, vy: span{0.8, 2.0}, w: 10, h: 6,
		colors:  []core.Color{core.ColorRust, core.ColorOrange, core.ColorYellow},
		gravity: 0.02, life: 200, windFactor: 1.1,
	},
	WeatherSnow: {
		chance: 0.12, style: StyleCircle,
		vx: span{-0.4, 0.4}, vy: span{0.6, 1.1}, radius: span{1.5, 4},
		colors:  []core.Color{core.ColorBrightWhite},
		gravity: 0.002, life: 240, windFactor: 0.9,
	},
	WeatherRain: {
		chance: 0.18, style: StyleLine,
		vx: span{-0.8, 0.8}, vy: span{8, 14},
		colors:  []core.Color{core.ColorBrightBlue},
		gravity: 0.2, life: 120, windFactor: 0.6,
	},
	WeatherStorm: {
		chance: 0.35, style: StyleLine,
		vx: span{-0.8, 0.8}, vy: span{8, 14},
		colors:  []core.Color{core.ColorBrightBlue},
		gravity: 0.2, life: 120, windFactor: 0.6,
	},
	WeatherFireflies: {
		chance: 0.08, anywhere: true, style: StyleCircle,
		vx: span{-0.3, 0.3}, vy: span{-0.3, 0.3}, radius: span{1.5, 3.6},
		colors: []core.Color{core.ColorMint},
		life:   180, windFactor: 0.2, glow: true,
	},
	WeatherSparkles: {
		chance: 0.12, anywhere: true, style: StyleCircle,
		vx: span{-0.3, 0.3}, vy: span{-0.3, 0.3}, radius: span{1.2, 3.6},
		colors: []core.Color{core.ColorGold, core.ColorOrange, core.ColorBrightCyan},
		life:   140, windFactor: 0.2,
	},
}

// spawnWeather rolls the level's profile and returns a new particle, or nil.
func spawnWeather(tag WeatherTag, env *world) *Particle {
	prof, ok := weatherProfiles[tag]
	if !ok || !env.rng.Chance(prof.chance) {
		return nil
	}

	x := env.rng.Range(0, env.w)
	y := -10.0
	if prof.anywhere {
		y = env.rng.Range(0, env.h)
	}

	p := &Particle{
		Style:      prof.style,
		Pos:        core.Vec2{X: x, Y: y},
		Vel:        core.Vec2{X: prof.vx.roll(env.rng), Y: prof.vy.roll(env.rng)},
		Gravity:    prof.gravity,
		WindFactor: prof.windFactor,
		Life:       prof.life,
		Color:      prof.colors[env.rng.Intn(len(prof.colors))],
		W:          prof.w,
		H:          prof.h,
		Glow:       prof.glow,
		env:        env,
	}
	if prof.radius.max > 0 {
		p.Radius = prof.radius.roll(env.rng)
	}
	return p
}

// Wind is the global directional force. Timer never goes negative.
type Wind struct {
	Active   bool
	Dir      float64 // -1 or +1 while active
	Strength float64
	Timer    int
}

// maybeStart activates a calm wind with probability chance. It returns true
// when a gust started this tick.
func (w *Wind) maybeStart(chance float64, cfg config.SeasonsWind, rng *core.Rand) bool {
	if w.Active || !rng.Chance(chance) {
		return false
	}
	w.Active = true
	w.Dir = rng.Sign()
	w.Strength = rng.Range(cfg.MinStrength, cfg.MaxStrength)
	w.Timer = int(rng.Range(float64(cfg.MinFrames), float64(cfg.MaxFrames)))
	if w.Timer < 1 {
		w.Timer = 1
	}
	return true
}

// tick counts an active wind down. It returns true on the tick it calms.
func (w *Wind) tick() bool {
	if !w.Active {
		return false
	}
	w.Timer--
	if w.Timer <= 0 {
		w.Active = false
		w.Timer = 0
		return true
	}
	return false
}

// Drift returns the horizontal push for a given sensitivity.
func (w *Wind) Drift(factor float64) float64 {
	if !w.Active {
		return 0
	}
	return w.Dir * w.Strength * factor
}

// Label returns the HUD text for the current wind.
func (w Wind) Label() string {
	if !w.Active {
		return "Calm"
	}
	arrow := "→"
	if w.Dir < 0 {
		arrow = "←"
	}
	return fmt.Sprintf("%s %.1f", arrow, w.Strength)
}

// gustParticles returns the wind particles that sweep in from the upwind edge.
func gustParticles(env *world, n int) []*Particle {
	out := make([]*Particle, 0, n)
	for i := 0; i < n; i++ {
		x := -10 - env.rng.Range(0, 80)
		if env.wind.Dir < 0 {
			x = env.w + env.rng.Range(0, 80)
		}
		out = append(out, &Particle{
			Style:      StyleCircle,
			Pos:        core.Vec2{X: x, Y: env.rng.Range(0, env.h)},
			Vel:        core.Vec2{X: env.wind.Dir * env.rng.Range(0.6, 2.0), Y: env.rng.Range(0.2, 1.2)},
			Radius:     env.rng.Range(2, 4),
			Color:      core.ColorWhite,
			Life:       env.rng.Range(60, 180),
			WindFactor: 1.8,
			env:        env,
		})
	}
	return out
}

// Thunder drives the storm lightning flash. It never affects gameplay.
type Thunder struct {
	timer int
	flash float64
	fade  *gween.Tween
}

// update rolls for a new thunder run and raises the flash during one.
func (t *Thunder) update(storm bool, cfg config.SeasonsThunder, rng *core.Rand) {
	if storm && rng.Chance(cfg.Chance) {
		t.timer = cfg.MinFrames + rng.Intn(cfg.ExtraFrames)
		t.flash = 0
		t.fade = nil
	}
	if t.timer > 0 {
		t.timer--
		if rng.Chance(cfg.FlashChance) {
			if f := cfg.FlashMin + rng.Float()*cfg.FlashSpread; f > t.flash {
				t.flash = f
				// Linear fade at cfg.Decay per tick
				t.fade = gween.New(float32(f), 0, float32(f/cfg.Decay), ease.Linear)
			}
		}
	}
}

// decay advances the flash fade by one tick.
func (t *Thunder) decay() {
	if t.fade == nil {
		return
	}
	cur, done := t.fade.Update(1)
	t.flash = float64(cur)
	if done || t.flash <= 0 {
		t.flash = 0
		t.fade = nil
	}
}

// Flash returns the current lightning intensity, 0 when dark.
func (t *Thunder) Flash() float64 { return t.flash }
