package seasons

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/stickman-seasons/internal/config"
	"github.com/vovakirdan/stickman-seasons/internal/core"
)

// ErrUnknownKind is returned when constructing an obstacle of an unknown kind.
var ErrUnknownKind = errors.New("unknown obstacle kind")

// world is the environment shared by every entity of one game.
type world struct {
	w, h float64
	wind *Wind
	rng  *core.Rand
	cfg  *config.SeasonsConfig
}

// Entity is anything the tick updates and draws.
// Update runs exactly once per tick. Entities flag themselves for removal;
// the owning container drops them after the pass. Draw never mutates state.
type Entity interface {
	Update(speed float64)
	Draw(c core.Canvas)
	Removed() bool
}

// ObstacleKind tags an obstacle variant.
type ObstacleKind int

const (
	KindBalloon ObstacleKind = iota
	KindPlatform
)

func (k ObstacleKind) String() string {
	switch k {
	case KindBalloon:
		return "balloon"
	case KindPlatform:
		return "platform"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Obstacle is a hazard rising past the player.
type Obstacle interface {
	Entity
	Kind() ObstacleKind
	Pos() core.Vec2
	Passed() bool
	MarkPassed()
	MarkRemoved()
	Hits(p *Player, c config.SeasonsCollision) bool
}

// newObstacle builds an obstacle of the given kind at (x, y).
func newObstacle(kind ObstacleKind, x, y float64, env *world) (Obstacle, error) {
	switch kind {
	case KindBalloon:
		return newBalloon(x, y, env), nil
	case KindPlatform:
		return newPlatform(x, y, env), nil
	default:
		return nil, fmt.Errorf("new obstacle: %w: %v", ErrUnknownKind, kind)
	}
}

// obstacleState holds the fields every obstacle variant shares.
type obstacleState struct {
	pos     core.Vec2
	passed  bool
	removed bool
	env     *world
}

func (o *obstacleState) Pos() core.Vec2 { return o.pos }
func (o *obstacleState) Passed() bool { return o.passed }
func (o *obstacleState) MarkPassed() { o.passed = true }
func (o *obstacleState) MarkRemoved() { o.removed = true }
func (o *obstacleState) Removed() bool { return o.removed }

// balloonBaseHeight is the height of a balloon at depth 1.
const balloonBaseHeight = 34

// balloonArt holds the width/height ratio and colour of each balloon design.
var balloonArt = [20]struct {
	aspect float64
	color  core.Color
}{
	{0.78, core.ColorRed}, {0.82, core.ColorOrange}, {0.74, core.ColorYellow}, {0.80, core.ColorGreen},
	{0.76, core.ColorBlue}, {0.84, core.ColorMagenta}, {0.72, core.ColorCyan}, {0.79, core.ColorPink},
	{0.81, core.ColorBrightRed}, {0.75, core.ColorBrightGreen}, {0.83, core.ColorBrightYellow},
	{0.77, core.ColorBrightBlue}, {0.80, core.ColorBrightMagenta}, {0.73, core.ColorBrightCyan},
	{0.86, core.ColorGold}, {0.70, core.ColorRust}, {0.78, core.ColorMint}, {0.82, core.ColorSky},
	{0.88, core.ColorOrange}, {0.74, core.ColorRed},
}

// Balloon is a hot-air balloon drifting up with a depth-scaled speed.
type Balloon struct {
	obstacleState
	Variant    int
	Depth      float64
	Width      float64
	Height     float64
	swing      float64
	swingSpeed float64
}

func newBalloon(x, y float64, env *world) *Balloon {
	variant := env.rng.Intn(len(balloonArt))
	depth := 1.0 + env.rng.Float()*0.9
	height := balloonBaseHeight * depth
	return &Balloon{
		obstacleState: obstacleState{pos: core.Vec2{X: x, Y: y}, env: env},
		Variant:       variant,
		Depth:         depth,
		Height:        height,
		Width:         height * balloonArt[variant].aspect,
		swing:         env.rng.Range(0, 2*math.Pi),
		swingSpeed:    0.02 + env.rng.Float()*0.04,
	}
}

// Kind returns KindBalloon.
func (b *Balloon) Kind() ObstacleKind { return KindBalloon }

// Update rises by speed scaled with depth, swings and drifts with the wind.
func (b *Balloon) Update(speed float64) {
	b.pos.Y -= speed * b.Depth
	b.swing += b.swingSpeed
	b.pos.X += math.Sin(b.swing) * 0.3
	b.pos.Y += math.Sin(b.swing*2) * 0.3

	if b.env.wind.Active {
		b.pos.X += b.env.wind.Drift(b.env.rng.Float()*0.8 + 0.6)
	}

	if b.pos.Y < -b.Height*2 {
		b.removed = true
	}
}

// Hits uses a weighted elliptical distance with a tolerance above 1.
func (b *Balloon) Hits(p *Player, c config.SeasonsCollision) bool {
	dx := math.Abs(p.Pos.X - b.pos.X)
	dy := math.Abs(p.Pos.Y - b.pos.Y)
	halfW := b.Width * c.BalloonWidthFactor
	halfH := b.Height * c.BalloonHeightFactor
	if halfW <= 0 || halfH <= 0 {
		return false
	}
	return (dx*dx)/(halfW*halfW)+(dy*dy)/(halfH*halfH) < c.BalloonThreshold
}

// Draw renders the envelope above a basket anchored at the position.
func (b *Balloon) Draw(c core.Canvas) {
	color := balloonArt[b.Variant].color
	top := b.pos.Y - b.Height
	c.Circle(b.pos.X, top+b.Width/2, b.Width/2, '█', color)
	c.Line(b.pos.X-b.Width/4, top+b.Width, b.pos.X, b.pos.Y-core.CellH/2, '·', core.ColorGray)
	c.Plot(b.pos.X, b.pos.Y, '▄', core.ColorRust)
}

// Platform is a rising block; challenge tier only.
type Platform struct {
	obstacleState
	Width  float64
	Height float64
	phase  float64
}

func newPlatform(x, y float64, env *world) *Platform {
	return &Platform{
		obstacleState: obstacleState{pos: core.Vec2{X: x, Y: y}, env: env},
		Width:         60 + env.rng.Float()*50,
		Height:        60 + env.rng.Float()*20,
		phase:         env.rng.Float() * 2 * math.Pi,
	}
}

// Kind returns KindPlatform.
func (p *Platform) Kind() ObstacleKind { return KindPlatform }

// Update rises faster than the scroll speed with a slight bob.
func (p *Platform) Update(speed float64) {
	p.pos.Y -= speed * p.env.cfg.Physics.PlatformRiseScale
	p.phase += 0.03
	p.pos.Y += math.Sin(p.phase) * 0.3
	p.pos.X += p.env.wind.Drift(0.8)

	if p.pos.Y < -p.Height {
		p.removed = true
	}
}

// Hits is a half-extent box test grown by the player radius.
func (p *Platform) Hits(pl *Player, _ config.SeasonsCollision) bool {
	return core.BoxAt(p.pos, p.Width, p.Height).Grow(pl.Radius).Contains(pl.Pos)
}

// Draw renders a sandstone slab centered on the position.
func (p *Platform) Draw(c core.Canvas) {
	x := p.pos.X - p.Width/2
	y := p.pos.Y - p.Height/2
	c.FillRect(x, y, p.Width, p.Height, '▓', core.ColorSand)
	c.FillRect(x, y, p.Width, core.CellH, '▀', core.ColorOrange)
}

// Player is the falling stickman.
type Player struct {
	Pos       core.Vec2
	Vel       core.Vec2
	Target    core.Vec2 // Target velocity set by input
	MaxSpeed  float64
	Radius    float64
	AnimPhase float64
	Neon      bool
	env       *world
}

func newPlayer(env *world) *Player {
	cfg := env.cfg.Player
	return &Player{
		Pos:      env.spawnPoint(),
		MaxSpeed: cfg.MaxSpeed,
		Radius:   cfg.Radius,
		env:      env,
	}
}

// steerX sets the horizontal target velocity to dir * max speed.
func (p *Player) steerX(dir float64) { p.Target.X = dir * p.MaxSpeed }

// steerY sets the vertical target velocity to dir * max speed.
func (p *Player) steerY(dir float64) { p.Target.Y = dir * p.MaxSpeed }

// Update eases toward the target velocity, applies wind and stays on screen.
func (p *Player) Update(float64) {
	cfg := p.env.cfg.Player
	p.Vel.X += (p.Target.X - p.Vel.X) * cfg.Smoothing
	p.Vel.Y += (p.Target.Y - p.Vel.Y) * cfg.Smoothing

	if w := p.env.wind; w.Active {
		p.Vel.X += w.Dir * w.Strength * 0.02
		p.Vel.Y += math.Sin(w.Dir*0.3) * w.Strength * 0.01
	}

	p.Pos = p.Pos.Add(p.Vel)
	p.clamp()

	p.AnimPhase += 0.06 + (math.Abs(p.Vel.X)+math.Abs(p.Vel.Y))*0.02
}

func (p *Player) clamp() {
	cfg := p.env.cfg.Player
	p.Pos.X = core.ClampF(p.Pos.X, cfg.MarginX, p.env.w-cfg.MarginX)
	p.Pos.Y = core.ClampF(p.Pos.Y, cfg.MarginTop, p.env.h-cfg.MarginBottom)
}

// Removed is always false; the player is replaced rather than removed.
func (p *Player) Removed() bool { return false }

// Draw renders a three-row stickman whose limbs follow the motion.
func (p *Player) Draw(c core.Canvas) {
	color := core.ColorBrightWhite
	if p.Neon {
		color = core.ColorNeon
	}
	x, y := p.Pos.X, p.Pos.Y

	c.Plot(x, y-p.Radius*1.2, 'O', color)

	arms := "─┼─"
	switch {
	case p.Vel.Y > 0.8:
		arms = "/│\\"
	case p.Vel.Y < -0.8:
		if math.Sin(p.AnimPhase*1.2) > 0 {
			arms = "\\│/"
		} else {
			arms = "─│─"
		}
	}
	c.TextCentered(x, y+p.Radius*0.3, arms, color)

	legs := "/ \\"
	if math.Sin(p.AnimPhase) > 0 {
		legs = "╱ ╲"
	}
	if p.Vel.Y > 0.8 {
		legs = " ∧ "
	}
	c.TextCentered(x, y+p.Radius*1.8, legs, color)
}

// Key rises toward the top; collecting enough advances the level.
type Key struct {
	Pos        core.Vec2
	swing      float64
	swingSpeed float64
	removed    bool
}

func newKey(x, y float64, rng *core.Rand) *Key {
	return &Key{
		Pos:        core.Vec2{X: x, Y: y},
		swing:      rng.Range(0, 2*math.Pi),
		swingSpeed: 0.03 + rng.Float()*0.02,
	}
}

// keyTopLimit is the height above which a key is dropped.
const keyTopLimit = -30

// Update rises at speed and sways.
func (k *Key) Update(speed float64) {
	k.Pos.Y -= speed
	k.Pos.X += math.Sin(k.swing) * 0.4
	k.swing += k.swingSpeed
	if k.Pos.Y < keyTopLimit {
		k.removed = true
	}
}

// Removed reports whether the key left the screen or was collected.
func (k *Key) Removed() bool { return k.removed }

// Draw renders the key glyph.
func (k *Key) Draw(c core.Canvas) {
	c.TextCentered(k.Pos.X, k.Pos.Y, "⚷", core.ColorGold)
}

// Gift grants the shield. It floats in place and is flagged, never removed,
// once collected.
type Gift struct {
	Pos        core.Vec2
	Collected  bool
	floatPhase float64
}

func newGift(x, y float64) *Gift {
	return &Gift{Pos: core.Vec2{X: x, Y: y}}
}

// Update bobs the gift.
func (g *Gift) Update(float64) {
	g.floatPhase += 0.05
	g.Pos.Y += math.Sin(g.floatPhase) * 0.4
}

// Removed is always false.
func (g *Gift) Removed() bool { return false }

// Draw renders a wrapped present.
func (g *Gift) Draw(c core.Canvas) {
	if g.Collected {
		return
	}
	c.TextCentered(g.Pos.X, g.Pos.Y-core.CellH, "╔╬╗", core.ColorGold)
	c.TextCentered(g.Pos.X, g.Pos.Y, "╚╩╝", core.ColorRed)
}

var birdColors = []core.Color{core.ColorRust, core.ColorGray, core.ColorBrightWhite, core.ColorOrange, core.ColorRed, core.ColorGreen}

// birdCount is the number of decorative birds.
const birdCount = 12

// Bird is decorative and never collides.
type Bird struct {
	Pos      core.Vec2
	size     float64
	speed    float64
	dir      float64
	vy       float64
	wingFlap float64
	wingDir  float64
	color    core.Color
	env      *world
}

func newBird(env *world) *Bird {
	return &Bird{
		Pos:     core.Vec2{X: env.rng.Float() * env.w, Y: env.rng.Float() * (env.h/2 + 100)},
		size:    env.rng.Range(12, 28),
		speed:   env.rng.Range(1, 2.5),
		dir:     env.rng.Sign(),
		vy:      env.rng.Range(-0.5, 0.5),
		wingDir: 1,
		color:   birdColors[env.rng.Intn(len(birdColors))],
		env:     env,
	}
}

// Update flies across the screen, wrapping at the edges.
func (b *Bird) Update(float64) {
	b.Pos.X += b.speed * b.dir
	b.Pos.Y += b.vy
	b.wingFlap += 0.2 * b.wingDir
	if b.wingFlap > math.Pi/6 || b.wingFlap < -math.Pi/6 {
		b.wingDir = -b.wingDir
	}

	switch {
	case b.Pos.X > b.env.w+30:
		b.Pos.X = -30
	case b.Pos.X < -30:
		b.Pos.X = b.env.w + 30
	}
	switch {
	case b.Pos.Y > b.env.h:
		b.Pos.Y = 0
	case b.Pos.Y < 0:
		b.Pos.Y = b.env.h
	}
}

// Removed is always false.
func (b *Bird) Removed() bool { return false }

// Draw renders the bird with its wings up or down.
func (b *Bird) Draw(c core.Canvas) {
	up := b.wingFlap > 0
	glyph := "v"
	switch {
	case b.size > 20 && up:
		glyph = "/^\\"
	case b.size > 20:
		glyph = "\\v/"
	case up:
		glyph = "^"
	}
	c.TextCentered(b.Pos.X, b.Pos.Y, glyph, b.color)
}
