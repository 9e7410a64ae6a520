// Package config provides YAML-based game configuration loading and
// difficulty management for the shooter.
package config

// GalagaConfig contains all configuration for the shooter.
type GalagaConfig struct {
	Player     GalagaPlayer     `yaml:"player"`
	Bullets    GalagaBullets    `yaml:"bullets"`
	Enemies    GalagaEnemies    `yaml:"enemies"`
	Levels     GalagaLevels     `yaml:"levels"`
	Input      GalagaInput      `yaml:"input"`
	HighScore  GalagaHighScore  `yaml:"highscore"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GalagaPlayer defines the player ship. Positions and sizes are normalized to [0,1].
type GalagaPlayer struct {
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	Length float64 `yaml:"length"`
	Step   float64 `yaml:"step"` // Horizontal distance per frame while a direction is held
	Lives  int     `yaml:"lives"`
	Sprite string  `yaml:"sprite"`
}

// GalagaBullets defines both projectile families.
type GalagaBullets struct {
	PlayerSpeed  float64 `yaml:"player_speed"`
	PlayerWidth  float64 `yaml:"player_width"`
	PlayerHeight float64 `yaml:"player_height"`
	EnemySpeed   float64 `yaml:"enemy_speed"`
	EnemyWidth   float64 `yaml:"enemy_width"`
	EnemyHeight  float64 `yaml:"enemy_height"`
}

// GalagaEnemies defines enemy firing and lifetime rules.
type GalagaEnemies struct {
	Health             int     `yaml:"health"`
	FireChance         float64 `yaml:"fire_chance"` // Per-frame probability once reloaded
	InitialCooldownMin int     `yaml:"initial_cooldown_min"`
	InitialCooldownMax int     `yaml:"initial_cooldown_max"` // Exclusive
	ReloadMin          int     `yaml:"reload_min"`
	ReloadMax          int     `yaml:"reload_max"` // Exclusive
	ExitY              float64 `yaml:"exit_y"`     // Enemies below this are gone
}

// GalagaLevels defines the campaign.
type GalagaLevels struct {
	Count             int `yaml:"count"`              // Final level number; 0 scans the level directory
	TransitionSeconds int `yaml:"transition_seconds"` // Length of the level-complete banner
}

// GalagaInput defines input timing.
type GalagaInput struct {
	PauseDebounceMS int `yaml:"pause_debounce_ms"`
	HoldMS          int `yaml:"hold_ms"` // How long a key press counts as held
}

// GalagaHighScore selects where the best score is kept.
type GalagaHighScore struct {
	Backend string `yaml:"backend"` // "file", "savedata" or "sqlite"
	Path    string `yaml:"path"`    // Used by the file backend
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
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
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to enemy speed at max difficulty
	FireMultiplier  float64 `yaml:"fire_multiplier"`  // Multiplier added to fire chance at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means no preset.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
