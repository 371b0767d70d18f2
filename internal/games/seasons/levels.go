package seasons

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/stickman-seasons/internal/core"
)

// ErrLevelOutOfRange is returned when a level index does not exist.
var ErrLevelOutOfRange = errors.New("level out of range")

// ChallengeTier is the first level index of the desert challenge tier.
const ChallengeTier = 8

// Level is an immutable level descriptor.
type Level struct {
	Index      int
	Name       string
	Background string // Backdrop asset: "spring" or "desert"
	Ambient    string // Ambient track name
	Weather    WeatherTag
	Neon       bool
	SpeedBoost float64
	Glyph      rune       // Season marker for the HUD
	Sky        core.Color // Terminal background tint
}

var levels = [...]Level{
	{0, "Spring Morning", "spring", "spring-forest", WeatherPetals, false, 1, '✿', core.ColorSky},
	{1, "Summer Noon", "spring", "beach-waves", WeatherHeat, false, 1, '☀', core.ColorSky},
	{2, "Autumn Evening", "spring", "calm-wind", WeatherLeaves, false, 1, '♣', core.ColorDusk},
	{3, "Winter Night", "spring", "winter-night", WeatherSnow, false, 1, '❄', core.ColorNight},
	{4, "Rainy Day", "spring", "rainy-ambience", WeatherRain, false, 1, '☂', core.ColorStorm},
	{5, "Thunderstorm", "spring", "thunderstorm", WeatherStorm, false, 1.35, '⚡', core.ColorStorm},
	{6, "Calm Night", "spring", "night-forest", WeatherFireflies, true, 1, '✦', core.ColorNight},
	{7, "Rainbow Morning", "spring", "happy-morning", WeatherSparkles, false, 1, '★', core.ColorSky},
	{8, "Spring Challenge", "desert", "spring-forest", WeatherPetals, false, 1, '✿', core.ColorSand},
	{9, "Summer Heatwave", "desert", "beach-waves", WeatherHeat, false, 1, '☀', core.ColorSand},
	{10, "Autumn Rush", "desert", "calm-wind", WeatherLeaves, false, 1, '♣', core.ColorSand},
	{11, "Winter Storm", "desert", "winter-night", WeatherSnow, false, 1, '❄', core.ColorSand},
	{12, "Monsoon Flood", "desert", "rainy-ambience", WeatherRain, false, 1, '☂', core.ColorSand},
	{13, "Thunder Fury", "desert", "thunderstorm", WeatherStorm, false, 1, '⚡', core.ColorSand},
	{14, "Neon Twilight", "desert", "night-forest", WeatherFireflies, true, 1, '✦', core.ColorNight},
	{15, "Rainbow Finale", "desert", "happy-morning", WeatherSparkles, false, 1, '★', core.ColorSand},
}

// LevelCount is the number of levels in the cycle.
const LevelCount = len(levels)

// Levels returns a copy of all level descriptors in order.
func Levels() []Level {
	out := make([]Level, LevelCount)
	copy(out, levels[:])
	return out
}

// LevelAt returns the descriptor for index i.
func LevelAt(i int) (Level, error) {
	if i < 0 || i >= LevelCount {
		return Level{}, fmt.Errorf("%w: %d (have %d levels)", ErrLevelOutOfRange, i, LevelCount)
	}
	return levels[i], nil
}

// Progression tracks the current level and keys collected on it.
type Progression struct {
	index      int
	keys       int
	keysNeeded int
}

// NewProgression starts at level 0.
func NewProgression(keysNeeded int) Progression {
	if keysNeeded < 1 {
		keysNeeded = 1
	}
	return Progression{keysNeeded: keysNeeded}
}

// Index returns the current level index.
func (p *Progression) Index() int { return p.index }

// Level returns the current level descriptor.
func (p *Progression) Level() Level { return levels[p.index] }

// Keys returns keys collected this level.
func (p *Progression) Keys() int { return p.keys }

// KeysNeeded returns the keys required to advance.
func (p *Progression) KeysNeeded() int { return p.keysNeeded }

// SetLevel jumps to level i and clears the key counter.
func (p *Progression) SetLevel(i int) error {
	if _, err := LevelAt(i); err != nil {
		return err
	}
	p.index = i
	p.keys = 0
	return nil
}

// CollectKey records a key and reports whether the level is complete.
// The counter never exceeds keysNeeded.
func (p *Progression) CollectKey() bool {
	if p.keys < p.keysNeeded {
		p.keys++
	}
	return p.keys >= p.keysNeeded
}

// Advance moves to the next level, wrapping after the last one.
func (p *Progression) Advance() Level {
	p.keys = 0
	p.index = (p.index + 1) % LevelCount
	return levels[p.index]
}
