package config

// Progression types for DifficultyConfig.Progression.Type.
const (
	ProgressScore = "score"
	ProgressTime  = "time"
	ProgressNone  = "none"
)

// DifficultyManager turns score and elapsed ticks into scroll speed and
// obstacle spawn chance.
type DifficultyManager struct {
	cfg   DifficultyConfig
	start float64 // Initial level clamped to [0, 1]
}

// NewDifficultyManager creates a manager for cfg.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg, start: unit(cfg.InitialLevel)}
}

// IsEnabled reports whether the level moves at all.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != ProgressNone
}

// Level returns the difficulty in [0, 1]. It climbs linearly from the
// initial level to 1 as score or ticks approach MaxAt. A disabled manager
// always reports 0.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	if !d.cfg.Enabled {
		return 0
	}

	var done int
	switch d.cfg.Progression.Type {
	case ProgressScore:
		done = score
	case ProgressTime:
		done = ticks
	default:
		return d.start
	}
	maxAt := max(d.cfg.Progression.MaxAt, 1)
	t := unit(float64(done) / float64(maxAt))
	return d.start + t*(1-d.start)
}

// ScrollSpeed returns the world scroll speed in pixels per tick:
// base * (1 + score/divisor) * boost, scaled by the difficulty level.
func (d *DifficultyManager) ScrollSpeed(p SeasonsPhysics, boost float64, score, ticks int) float64 {
	speed := p.BaseSpeed
	if d.cfg.ScoreRamp && p.ScoreSpeedDivisor > 0 {
		speed *= 1 + float64(score)/p.ScoreSpeedDivisor
	}
	if boost > 0 {
		speed *= boost
	}
	return speed * (1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// SpawnChance returns the per-tick obstacle spawn probability:
// base + score/divisor, scaled by the difficulty level and capped by
// ObstacleMaxChance when that is positive.
func (d *DifficultyManager) SpawnChance(s SeasonsSpawn, score, ticks int) float64 {
	chance := s.ObstacleBaseChance
	if d.cfg.ScoreRamp && s.ObstacleScoreDivisor > 0 {
		chance += float64(score) / s.ObstacleScoreDivisor
	}
	chance *= 1 + d.Level(score, ticks)*d.cfg.Scaling.ChanceMultiplier
	if s.ObstacleMaxChance > 0 {
		chance = min(chance, s.ObstacleMaxChance)
	}
	return chance
}

func unit(v float64) float64 {
	return min(max(v, 0), 1)
}
