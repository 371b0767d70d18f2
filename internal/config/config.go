// Package config provides YAML-based configuration loading and difficulty
// management for Stickman Seasons.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// SeasonsConfig contains all tunables of the simulation.
type SeasonsConfig struct {
	Physics    SeasonsPhysics   `yaml:"physics"`
	Player     SeasonsPlayer    `yaml:"player"`
	Spawn      SeasonsSpawn     `yaml:"spawn"`
	Collision  SeasonsCollision `yaml:"collision"`
	Rules      SeasonsRules     `yaml:"rules"`
	Wind       SeasonsWind      `yaml:"wind"`
	Thunder    SeasonsThunder   `yaml:"thunder"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SeasonsPhysics defines world scrolling.
type SeasonsPhysics struct {
	BaseSpeed         float64 `yaml:"base_speed"`          // Pixels per tick at score 0
	ScoreSpeedDivisor float64 `yaml:"score_speed_divisor"` // speed = base * (1 + score/divisor)
	PlatformRiseScale float64 `yaml:"platform_rise_scale"` // Platforms rise faster than balloons
	KeyRiseScale      float64 `yaml:"key_rise_scale"`
}

// SeasonsPlayer defines the stickman.
type SeasonsPlayer struct {
	MaxSpeed     float64 `yaml:"max_speed"`
	Radius       float64 `yaml:"radius"`
	Smoothing    float64 `yaml:"smoothing"` // Fraction of the velocity gap closed per tick
	SpawnY       float64 `yaml:"spawn_y"`
	MarginX      float64 `yaml:"margin_x"`
	MarginTop    float64 `yaml:"margin_top"`
	MarginBottom float64 `yaml:"margin_bottom"`
}

// SeasonsSpawn defines spawn probabilities.
type SeasonsSpawn struct {
	ObstacleBaseChance   float64 `yaml:"obstacle_base_chance"`
	ObstacleScoreDivisor float64 `yaml:"obstacle_score_divisor"`
	ObstacleMaxChance    float64 `yaml:"obstacle_max_chance"` // 0 = uncapped
	PlatformMinLevel     int     `yaml:"platform_min_level"`
	PlatformChance       float64 `yaml:"platform_chance"`
	KeyChance            float64 `yaml:"key_chance"`
	GiftChance           float64 `yaml:"gift_chance"`
}

// SeasonsCollision defines hit shapes.
type SeasonsCollision struct {
	BalloonWidthFactor  float64 `yaml:"balloon_width_factor"`
	BalloonHeightFactor float64 `yaml:"balloon_height_factor"`
	BalloonThreshold    float64 `yaml:"balloon_threshold"`
	PickupRange         float64 `yaml:"pickup_range"`
	OffscreenTop        float64 `yaml:"offscreen_top"`
	OffscreenSide       float64 `yaml:"offscreen_side"`
}

// SeasonsRules defines lives, keys and the shield.
type SeasonsRules struct {
	Lives            int `yaml:"lives"`
	KeysNeeded       int `yaml:"keys_needed"`
	ShieldFrames     int `yaml:"shield_frames"`
	ShieldFadeFrames int `yaml:"shield_fade_frames"`
	ShieldBonus      int `yaml:"shield_bonus"`
	OutroFrames      int `yaml:"outro_frames"`
}

// SeasonsWind defines the wind state machine.
type SeasonsWind struct {
	Chance        float64 `yaml:"chance"`
	StormChance   float64 `yaml:"storm_chance"`
	MinStrength   float64 `yaml:"min_strength"`
	MaxStrength   float64 `yaml:"max_strength"`
	MinFrames     int     `yaml:"min_frames"`
	MaxFrames     int     `yaml:"max_frames"`
	GustParticles int     `yaml:"gust_particles"`
}

// SeasonsThunder defines storm lightning.
type SeasonsThunder struct {
	Chance      float64 `yaml:"chance"`
	MinFrames   int     `yaml:"min_frames"`
	ExtraFrames int     `yaml:"extra_frames"`
	FlashChance float64 `yaml:"flash_chance"`
	FlashMin    float64 `yaml:"flash_min"`
	FlashSpread float64 `yaml:"flash_spread"`
	Decay       float64 `yaml:"decay"` // Flash intensity lost per tick
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	ScoreRamp    bool              `yaml:"score_ramp"`    // Speed and spawn chance grow with score
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Added to the speed factor at max difficulty
	ChanceMultiplier float64 `yaml:"chance_multiplier"` // Added to the spawn chance factor at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	case "":
		return DifficultyNormal, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyHard:
		return 0.5
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate rejects configurations the simulation cannot run with.
func (c SeasonsConfig) Validate() error {
	checks := []struct {
		ok  bool
		msg string
	}{
		{c.Physics.BaseSpeed > 0, "physics.base_speed must be positive"},
		{c.Physics.ScoreSpeedDivisor > 0, "physics.score_speed_divisor must be positive"},
		{c.Player.MaxSpeed > 0, "player.max_speed must be positive"},
		{c.Player.Radius > 0, "player.radius must be positive"},
		{c.Player.Smoothing > 0 && c.Player.Smoothing <= 1, "player.smoothing must be in (0, 1]"},
		{isChance(c.Spawn.ObstacleBaseChance), "spawn.obstacle_base_chance must be in [0, 1]"},
		{c.Spawn.ObstacleScoreDivisor > 0, "spawn.obstacle_score_divisor must be positive"},
		{isChance(c.Spawn.ObstacleMaxChance), "spawn.obstacle_max_chance must be in [0, 1]"},
		{isChance(c.Spawn.PlatformChance), "spawn.platform_chance must be in [0, 1]"},
		{isChance(c.Spawn.KeyChance), "spawn.key_chance must be in [0, 1]"},
		{isChance(c.Spawn.GiftChance), "spawn.gift_chance must be in [0, 1]"},
		{c.Collision.BalloonThreshold > 0, "collision.balloon_threshold must be positive"},
		{c.Collision.BalloonWidthFactor > 0 && c.Collision.BalloonHeightFactor > 0, "collision balloon factors must be positive"},
		{c.Collision.PickupRange > 0, "collision.pickup_range must be positive"},
		{c.Rules.Lives >= 1 && c.Rules.Lives <= 3, "rules.lives must be in [1, 3]"},
		{c.Rules.KeysNeeded >= 1, "rules.keys_needed must be at least 1"},
		{c.Rules.ShieldFrames > 0, "rules.shield_frames must be positive"},
		{c.Rules.ShieldFadeFrames >= 0 && c.Rules.ShieldFadeFrames <= c.Rules.ShieldFrames, "rules.shield_fade_frames must be in [0, shield_frames]"},
		{isChance(c.Wind.Chance) && isChance(c.Wind.StormChance), "wind chances must be in [0, 1]"},
		{c.Wind.MinStrength >= 0 && c.Wind.MinStrength <= c.Wind.MaxStrength, "wind strength range is inverted"},
		{c.Wind.MinFrames > 0 && c.Wind.MinFrames <= c.Wind.MaxFrames, "wind frame range is invalid"},
		{isChance(c.Thunder.Chance) && isChance(c.Thunder.FlashChance), "thunder chances must be in [0, 1]"},
		{c.Thunder.Decay > 0, "thunder.decay must be positive"},
		{validProgression(c.Difficulty.Progression.Type), "difficulty.progression.type must be score, time or none"},
	}

	for _, check := range checks {
		if !check.ok {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, check.msg)
		}
	}
	return nil
}

func validProgression(t string) bool {
	switch t {
	case ProgressScore, ProgressTime, ProgressNone:
		return true
	}
	return false
}

func isChance(p float64) bool {
	return p >= 0 && p <= 1
}
