package seasons

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/stickman-seasons/internal/core"
)

// progressRingSpan is the score span of one HUD progress ring revolution.
const progressRingSpan = 700

// HUD is the read-only state shown around the play field.
type HUD struct {
	Score         int
	Lives         int
	MaxLives      int
	Level         int // 1-based
	LevelName     string
	Glyph         rune
	Keys          int
	KeysNeeded    int
	Wind          string
	WindDir       int // -1, 0 or +1
	Shield        bool
	ShieldSeconds int
	Progress      float64 // (score % 700) / 700
	Paused        bool
	GameOver      bool
}

// HUD returns the current HUD values.
func (g *Game) HUD() HUD {
	lvl := g.progress.Level()
	tickRate := g.runtime.Rate()
	windDir := 0
	if g.wind.Active {
		windDir = int(g.wind.Dir)
	}
	return HUD{
		Score:         g.score,
		Lives:         g.lives,
		MaxLives:      g.cfg.Rules.Lives,
		Level:         lvl.Index + 1,
		LevelName:     lvl.Name,
		Glyph:         lvl.Glyph,
		Keys:          g.progress.Keys(),
		KeysNeeded:    g.progress.KeysNeeded(),
		Wind:          g.wind.Label(),
		WindDir:       windDir,
		Shield:        g.shield.Active(),
		ShieldSeconds: (g.shield.Remaining() + tickRate - 1) / tickRate,
		Progress:      float64(g.score%progressRingSpan) / progressRingSpan,
		Paused:        g.paused,
		GameOver:      g.gameOver,
	}
}

// Render draws the current game state onto the canvas.
func (g *Game) Render(dst core.Canvas) {
	if g.env == nil {
		return
	}
	c := dst
	if g.gameOver && g.outro > 0 {
		c = shakeCanvas{Canvas: dst, dx: math.Sin(float64(g.outro)*2.3) * 10, dy: math.Cos(float64(g.outro)*1.7) * 10}
	}

	lvl := g.progress.Level()
	sky := lvl.Sky
	if f := g.thunder.Flash(); f > 0.5 {
		sky = core.ColorGray
	}
	c.SetBackground(sky)

	w, h := c.Size()
	c.Line(0, h-1, w, h-1, '▁', core.ColorGray)

	for _, b := range g.birds {
		b.Draw(c)
	}
	for _, ob := range g.obstacles {
		if !isNilEntity(ob) {
			ob.Draw(c)
		}
	}
	for _, k := range g.keys {
		if k != nil {
			k.Draw(c)
		}
	}
	if g.gift != nil {
		g.gift.Draw(c)
	}
	if g.player != nil {
		g.player.Draw(c)
		if g.shield.Active() {
			g.drawShield(c)
		}
	}
	for _, p := range g.weather {
		if p != nil {
			p.Draw(c)
		}
	}
	for _, p := range g.effects {
		if p != nil {
			p.Draw(c)
		}
	}
	for _, t := range g.texts {
		if t != nil {
			t.Draw(c)
		}
	}

	g.drawHUD(dst)

	switch {
	case g.paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case g.gameOver && g.outro == 0:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Your Score: %d  |  R to restart, B for menu", g.score))
	}
}

// drawShield draws the bubble; it thins out while the shield fades.
func (g *Game) drawShield(c core.Canvas) {
	alpha := g.shield.Alpha()
	r := g.player.Radius * 3.8
	color := core.ColorBrightCyan
	glyph := '∘'
	if alpha < 0.5 {
		color = core.ColorGray
		glyph = '·'
	}
	// Fading shields blink off on alternate ticks
	if alpha < 0.25 && g.ticks%4 < 2 {
		return
	}
	c.Ring(g.player.Pos.X, g.player.Pos.Y, r, glyph, color)
	angle := math.Mod(float64(g.ticks)*2/60, 2*math.Pi)
	c.Plot(g.player.Pos.X+math.Cos(angle)*r, g.player.Pos.Y+math.Sin(angle)*r, '✦', core.ColorGold)
}

// progressGlyphs renders the score ring in quarter steps.
var progressGlyphs = []rune{'○', '◔', '◑', '◕', '●'}

// drawHUD renders the status line at the top of the screen.
func (g *Game) drawHUD(c core.Canvas) {
	hud := g.HUD()
	w, _ := c.Size()

	hearts := strings.Repeat("♥", hud.Lives) + strings.Repeat("♡", max(hud.MaxLives-hud.Lives, 0))
	c.Text(core.CellW, 0, hearts, core.ColorBrightRed)

	level := fmt.Sprintf(" Level %d %c %s ", hud.Level, hud.Glyph, hud.LevelName)
	c.TextCentered(w/2, 0, level, core.ColorBrightWhite)

	ring := progressGlyphs[int(hud.Progress*float64(len(progressGlyphs)-1)+0.5)]
	score := fmt.Sprintf("%c %d", ring, hud.Score)
	c.Text(w-float64(len([]rune(score))+1)*core.CellW, 0, score, core.ColorGold)

	status := fmt.Sprintf("⚷ %d/%d  Wind: %s", hud.Keys, hud.KeysNeeded, hud.Wind)
	if hud.Shield {
		status += fmt.Sprintf("  Shield %ds", hud.ShieldSeconds)
	}
	c.Text(core.CellW, core.CellH, status, core.ColorGray)
}

// drawCenteredMessage draws a two-line message in the middle of the canvas.
func drawCenteredMessage(c core.Canvas, title, subtitle string) {
	w, h := c.Size()
	cy := h/2 - core.CellH
	width := float64(max(len([]rune(title)), len([]rune(subtitle)))+4) * core.CellW
	c.FillRect(w/2-width/2, cy-core.CellH, width, core.CellH*4, ' ', core.ColorDefault)
	c.TextCentered(w/2, cy, title, core.ColorBrightYellow)
	c.TextCentered(w/2, cy+core.CellH*2, subtitle, core.ColorWhite)
}

// shakeCanvas offsets every drawing call; used for the game-over shake.
type shakeCanvas struct {
	core.Canvas
	dx, dy float64
}

func (s shakeCanvas) Plot(x, y float64, r rune, c core.Color) {
	s.Canvas.Plot(x+s.dx, y+s.dy, r, c)
}

func (s shakeCanvas) Text(x, y float64, text string, c core.Color) {
	s.Canvas.Text(x+s.dx, y+s.dy, text, c)
}

func (s shakeCanvas) TextCentered(x, y float64, text string, c core.Color) {
	s.Canvas.TextCentered(x+s.dx, y+s.dy, text, c)
}

func (s shakeCanvas) Line(x0, y0, x1, y1 float64, r rune, c core.Color) {
	s.Canvas.Line(x0+s.dx, y0+s.dy, x1+s.dx, y1+s.dy, r, c)
}

func (s shakeCanvas) FillRect(x, y, w, h float64, r rune, c core.Color) {
	s.Canvas.FillRect(x+s.dx, y+s.dy, w, h, r, c)
}

func (s shakeCanvas) Circle(x, y, radius float64, r rune, c core.Color) {
	s.Canvas.Circle(x+s.dx, y+s.dy, radius, r, c)
}

func (s shakeCanvas) Ring(x, y, radius float64, r rune, c core.Color) {
	s.Canvas.Ring(x+s.dx, y+s.dy, radius, r, c)
}
