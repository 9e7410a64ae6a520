package config

import (
	_ "embed"
)

//go:embed defaults/galaga.yaml
var defaultGalagaYAML []byte

// DefaultGalagaConfig returns the default shooter configuration.
func DefaultGalagaConfig() GalagaConfig {
	return GalagaConfig{
		Player: GalagaPlayer{
			StartX: 0.5,
			StartY: 0.1,
			Length: 0.05,
			Step:   0.01,
			Lives:  3,
			Sprite: "ship.spr",
		},
		Bullets: GalagaBullets{
			PlayerSpeed:  0.015,
			PlayerWidth:  0.005,
			PlayerHeight: 0.02,
			EnemySpeed:   0.008,
			EnemyWidth:   0.004,
			EnemyHeight:  0.015,
		},
		Enemies: GalagaEnemies{
			Health:             1,
			FireChance:         0.01,
			InitialCooldownMin: 100,
			InitialCooldownMax: 300,
			ReloadMin:          150,
			ReloadMax:          450,
			ExitY:              -0.1,
		},
		Levels: GalagaLevels{
			Count:             2,
			TransitionSeconds: 3,
		},
		Input: GalagaInput{
			PauseDebounceMS: 200,
			HoldMS:          150,
		},
		HighScore: GalagaHighScore{
			Backend: "file",
			Path:    "~/.galaga/highscore.sc",
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "none",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				FireMultiplier:  1.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "galaga":
		return defaultGalagaYAML
	default:
		return nil
	}
}
