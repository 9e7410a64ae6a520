package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadGalaga loads the shooter configuration.
// Search order: customPath -> ~/.galaga/configs/galaga.yaml -> ./configs/galaga.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the keys it names.
func LoadGalaga(customPath string) (GalagaConfig, error) {
	cfg := DefaultGalagaConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("galaga.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultGalagaConfig()
		}
	}

	if data, err := os.ReadFile("configs/galaga.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultGalagaConfig()
	}

	if err := yaml.Unmarshal(defaultGalagaYAML, &cfg); err != nil {
		return DefaultGalagaConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".galaga", "configs", filename)
}

// ApplyGalagaPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyGalagaPreset(cfg *GalagaConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		cfg.Difficulty.InitialLevel = 0
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	if cfg.Difficulty.Progression.Type == "" || cfg.Difficulty.Progression.Type == "none" {
		cfg.Difficulty.Progression.Type = "score"
	}

	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Enemies.FireChance = 0.006
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Enemies.FireChance = 0.015
		cfg.Enemies.ReloadMin = 100
		cfg.Enemies.ReloadMax = 300
	}
}
