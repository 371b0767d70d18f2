package seasons

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/stickman-seasons/internal/core"
)

// ParticleStyle selects how a particle is drawn.
type ParticleStyle int

const (
	StyleCircle ParticleStyle = iota
	StyleLine
	StyleRect
)

// Default particle tunables.
const (
	defaultParticleLife = 60
	defaultWindFactor   = 0.5
	particleMargin      = 200 // Particles are dropped this far outside the screen
)

// Particle is a short-lived cosmetic point used for weather and bursts.
type Particle struct {
	Style      ParticleStyle
	Pos        core.Vec2
	Vel        core.Vec2
	Gravity    float64
	WindFactor float64
	Age        float64
	Life       float64
	Color      core.Color
	Radius     float64
	W, H       float64 // StyleRect size
	Glow       bool

	env *world
}

// Update advances the particle one tick.
func (p *Particle) Update(float64) {
	p.Pos = p.Pos.Add(p.Vel)
	p.Pos.X += p.env.wind.Drift(p.WindFactor)
	p.Vel.Y += p.Gravity
	p.Age++
}

// Removed reports whether the particle expired or drifted away.
func (p *Particle) Removed() bool {
	life := p.Life
	if life <= 0 {
		life = defaultParticleLife
	}
	return p.Age > life ||
		p.Pos.Y > p.env.h+particleMargin ||
		p.Pos.X < -particleMargin ||
		p.Pos.X > p.env.w+particleMargin
}

// Draw renders the particle.
func (p *Particle) Draw(c core.Canvas) {
	switch p.Style {
	case StyleLine:
		tail := p.Pos.Sub(p.Vel.Scale(3))
		c.Line(p.Pos.X, p.Pos.Y, tail.X, tail.Y, lineRune(p.Vel), p.Color)
	case StyleRect:
		c.Plot(p.Pos.X, p.Pos.Y, '▬', p.Color)
	default:
		switch {
		case p.Glow:
			c.Plot(p.Pos.X, p.Pos.Y, '✧', p.Color)
		case p.Radius >= core.CellW:
			c.Circle(p.Pos.X, p.Pos.Y, p.Radius, '●', p.Color)
		case p.Radius >= 3:
			c.Plot(p.Pos.X, p.Pos.Y, '•', p.Color)
		default:
			c.Plot(p.Pos.X, p.Pos.Y, '·', p.Color)
		}
	}
}

// lineRune picks a stroke that follows the direction of travel.
func lineRune(v core.Vec2) rune {
	switch {
	case v.Y == 0:
		return '─'
	case v.X/v.Y > 0.35:
		return '\\'
	case v.X/v.Y < -0.35:
		return '/'
	default:
		return '│'
	}
}

// popBurst returns the small burst used for hits and pickups.
func popBurst(env *world, at core.Vec2, color core.Color) []*Particle {
	out := make([]*Particle, 0, popParticles)
	for i := 0; i < popParticles; i++ {
		out = append(out, &Particle{
			Pos:        at,
			Vel:        core.Vec2{X: env.rng.Range(-3.5, 3.5), Y: env.rng.Range(-4, 2)},
			Radius:     env.rng.Range(2, 5),
			Color:      color,
			Gravity:    0.06,
			Life:       float64(40 + env.rng.Intn(40)),
			WindFactor: env.rng.Range(0.2, 1.0),
			env:        env,
		})
	}
	return out
}

var explosionColors = []core.Color{core.ColorOrange, core.ColorPink, core.ColorGold}

// explosionBurst returns the large burst used on game over.
func explosionBurst(env *world, at core.Vec2) []*Particle {
	out := make([]*Particle, 0, explosionParticles)
	for i := 0; i < explosionParticles; i++ {
		out = append(out, &Particle{
			Pos:        at,
			Vel:        core.Vec2{X: env.rng.Range(-4, 4), Y: env.rng.Range(-5, 5)},
			Radius:     env.rng.Range(3, 8),
			Color:      explosionColors[env.rng.Intn(len(explosionColors))],
			Gravity:    0.08,
			Life:       float64(40 + env.rng.Intn(60)),
			WindFactor: env.rng.Range(0.2, 1.0),
			env:        env,
		})
	}
	return out
}

// sparkleBurst returns the motionless sparkle shown around a shielded player.
func sparkleBurst(env *world, at core.Vec2) []*Particle {
	out := make([]*Particle, 0, sparkleParticles)
	for i := 0; i < sparkleParticles; i++ {
		out = append(out, &Particle{
			Pos:        core.Vec2{X: at.X + env.rng.Range(-5, 5), Y: at.Y + env.rng.Range(-5, 5)},
			Radius:     env.rng.Range(2, 4),
			Color:      core.ColorBrightBlue,
			Life:       30 + env.rng.Float()*20,
			WindFactor: defaultWindFactor,
			env:        env,
		})
	}
	return out
}

// Burst sizes.
const (
	popParticles       = 24
	explosionParticles = 28
	sparkleParticles   = 10
)

// floatingTextLife is how long a floating text stays on screen, in ticks.
const floatingTextLife = 60

// floatingTextRise is how far a floating text drifts up over its life.
const floatingTextRise = 18

// FloatingText is a rising, fading label such as "+5".
type FloatingText struct {
	Text  string
	Color core.Color
	X, Y  float64
	Alpha float64

	rise *gween.Tween
	fade *gween.Tween
	y0   float64
	done bool
}

// NewFloatingText creates a label at (x, y).
func NewFloatingText(x, y float64, text string, color core.Color) *FloatingText {
	return &FloatingText{
		Text:  text,
		Color: color,
		X:     x,
		Y:     y,
		Alpha: 1,
		y0:    y,
		rise:  gween.New(0, floatingTextRise, floatingTextLife, ease.OutQuad),
		fade:  gween.New(1, 0, floatingTextLife, ease.Linear),
	}
}

// Update advances both tweens by one tick.
func (f *FloatingText) Update(float64) {
	dy, _ := f.rise.Update(1)
	alpha, done := f.fade.Update(1)
	f.Y = f.y0 - float64(dy)
	f.Alpha = float64(alpha)
	f.done = done
}

// Removed reports whether the label has faded out.
func (f *FloatingText) Removed() bool { return f.done }

// Draw renders the label; it dims once mostly faded.
func (f *FloatingText) Draw(c core.Canvas) {
	color := f.Color
	if f.Alpha < 0.35 {
		color = core.ColorGray
	}
	c.TextCentered(f.X, f.Y, f.Text, color)
}
