package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in each config directory.
const ConfigFile = "seasons.yaml"

// LoadSeasons loads the game configuration.
// Search order: customPath -> ~/.seasons/configs/seasons.yaml -> ./configs/seasons.yaml -> embedded default
// Keys missing from a file keep their default values. The result is validated.
func LoadSeasons(customPath string) (SeasonsConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultSeasonsConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseSeasons(data)
		if err != nil {
			return DefaultSeasonsConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseSeasons(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := parseSeasons(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseSeasons(defaultSeasonsYAML)
	if err != nil {
		return DefaultSeasonsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseSeasons decodes YAML on top of the built-in defaults and validates it.
func parseSeasons(data []byte) (SeasonsConfig, error) {
	cfg := DefaultSeasonsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".seasons", "configs", filename)
}

// ApplySeasonsPreset modifies the config based on a difficulty preset.
func ApplySeasonsPreset(cfg *SeasonsConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		cfg.Difficulty.ScoreRamp = false
		return
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	default:
		cfg.Difficulty.Enabled = false
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
	cfg.Difficulty.ScoreRamp = true

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Physics.BaseSpeed *= 0.85
		cfg.Spawn.ObstacleBaseChance *= 0.75
		cfg.Rules.ShieldFrames = cfg.Rules.ShieldFrames * 3 / 2
	case DifficultyHard:
		cfg.Rules.Lives = 2
		cfg.Spawn.GiftChance /= 2
	}
}
