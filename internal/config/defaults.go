package config

import (
	_ "embed"
)

//go:embed defaults/seasons.yaml
var defaultSeasonsYAML []byte

// DefaultSeasonsConfig returns the built-in configuration. It matches the
// embedded defaults/seasons.yaml.
func DefaultSeasonsConfig() SeasonsConfig {
	return SeasonsConfig{
		Physics: SeasonsPhysics{
			BaseSpeed:         2.8,
			ScoreSpeedDivisor: 1800,
			PlatformRiseScale: 1.9,
			KeyRiseScale:      1.2,
		},
		Player: SeasonsPlayer{
			MaxSpeed:     10,
			Radius:       12,
			Smoothing:    0.12,
			SpawnY:       120,
			MarginX:      20,
			MarginTop:    40,
			MarginBottom: 60,
		},
		Spawn: SeasonsSpawn{
			ObstacleBaseChance:   0.02,
			ObstacleScoreDivisor: 8000,
			ObstacleMaxChance:    0,
			PlatformMinLevel:     8,
			PlatformChance:       0.44,
			KeyChance:            0.004,
			GiftChance:           0.001,
		},
		Collision: SeasonsCollision{
			BalloonWidthFactor:  0.7,
			BalloonHeightFactor: 0.8,
			BalloonThreshold:    1.2,
			PickupRange:         25,
			OffscreenTop:        -120,
			OffscreenSide:       300,
		},
		Rules: SeasonsRules{
			Lives:            3,
			KeysNeeded:       1,
			ShieldFrames:     1800,
			ShieldFadeFrames: 300,
			ShieldBonus:      5,
			OutroFrames:      18,
		},
		Wind: SeasonsWind{
			Chance:        0.004,
			StormChance:   0.02,
			MinStrength:   0.8,
			MaxStrength:   3.0,
			MinFrames:     120,
			MaxFrames:     380,
			GustParticles: 20,
		},
		Thunder: SeasonsThunder{
			Chance:      0.006,
			MinFrames:   12,
			ExtraFrames: 36,
			FlashChance: 0.18,
			FlashMin:    0.6,
			FlashSpread: 0.7,
			Decay:       0.08,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			ScoreRamp:    true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressScore,
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  0.3,
				ChanceMultiplier: 0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSeasonsYAML
}
