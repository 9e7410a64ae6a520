package galaga

import "github.com/vovakirdan/tui-galaga/internal/config"

// Rules holds the numeric tuning of a run, in normalized units and frames.
type Rules struct {
	PlayerStartX float64
	PlayerStartY float64
	PlayerLength float64
	PlayerStep   float64
	PlayerLives  int

	BulletSpeed  float64
	BulletWidth  float64
	BulletHeight float64

	EnemyBulletSpeed  float64
	EnemyBulletWidth  float64
	EnemyBulletHeight float64

	EnemyHealth        int
	FireChance         float64
	InitialCooldownMin int
	InitialCooldownMax int
	ReloadMin          int
	ReloadMax          int
	ExitY              float64
}

// RulesFromConfig extracts simulation rules from a loaded config.
func RulesFromConfig(cfg config.GalagaConfig) Rules {
	return Rules{
		PlayerStartX: cfg.Player.StartX,
		PlayerStartY: cfg.Player.StartY,
		PlayerLength: cfg.Player.Length,
		PlayerStep:   cfg.Player.Step,
		PlayerLives:  cfg.Player.Lives,

		BulletSpeed:  cfg.Bullets.PlayerSpeed,
		BulletWidth:  cfg.Bullets.PlayerWidth,
		BulletHeight: cfg.Bullets.PlayerHeight,

		EnemyBulletSpeed:  cfg.Bullets.EnemySpeed,
		EnemyBulletWidth:  cfg.Bullets.EnemyWidth,
		EnemyBulletHeight: cfg.Bullets.EnemyHeight,

		EnemyHealth:        cfg.Enemies.Health,
		FireChance:         cfg.Enemies.FireChance,
		InitialCooldownMin: cfg.Enemies.InitialCooldownMin,
		InitialCooldownMax: cfg.Enemies.InitialCooldownMax,
		ReloadMin:          cfg.Enemies.ReloadMin,
		ReloadMax:          cfg.Enemies.ReloadMax,
		ExitY:              cfg.Enemies.ExitY,
	}
}

// DefaultRules returns the classic arcade tuning.
func DefaultRules() Rules {
	return RulesFromConfig(config.DefaultGalagaConfig())
}
