package galaga

import (
	"math"
	"strings"

	"github.com/vovakirdan/tui-galaga/internal/core"
)

// Kind is the closed set of enemy variants.
type Kind int

const (
	KindBee Kind = iota
	KindButterfly
	KindMoth
)

// ParseKind resolves a level-file enemy type, case-insensitively.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(s) {
	case "bee":
		return KindBee, true
	case "butterfly":
		return KindButterfly, true
	case "moth":
		return KindMoth, true
	default:
		return 0, false
	}
}

// String returns the level-file name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBee:
		return "bee"
	case KindButterfly:
		return "butterfly"
	case KindMoth:
		return "moth"
	default:
		return "unknown"
	}
}

// SpriteFile returns the sprite asset drawn for the kind.
func (k Kind) SpriteFile() string {
	switch k {
	case KindBee:
		return "bee.spr"
	case KindButterfly:
		return "butterfly.spr"
	default:
		return "catcher.spr"
	}
}

// Enemy is a single attacker. Its movement is fully determined by Kind,
// InitialX, Speed and Phase.
type Enemy struct {
	Kind       Kind
	X, Y       float64
	Length     float64
	Health     int
	ScoreValue int
	Speed      float64
	Active     bool
	Cooldown   int // Frames until the enemy may fire
	InitialX   float64
	Phase      float64
}

// NewEnemy creates an active enemy with a randomized first cooldown.
func NewEnemy(kind Kind, x, y, size float64, score int, speed float64, r *Rules, rng Random) Enemy {
	return Enemy{
		Kind:       kind,
		X:          x,
		Y:          y,
		Length:     size,
		Health:     r.EnemyHealth,
		ScoreValue: score,
		Speed:      speed,
		Active:     true,
		Cooldown:   uniform(rng, r.InitialCooldownMin, r.InitialCooldownMax),
		InitialX:   x,
	}
}

// kinematics advances one frame along the kind's trajectory.
func (e *Enemy) kinematics() {
	switch e.Kind {
	case KindBee:
		e.Phase += e.Speed * 2
		e.X = e.InitialX + math.Sin(e.Phase)*0.05
		e.Y -= e.Speed / 4
	case KindButterfly:
		e.Phase += e.Speed * 1.5
		e.X = e.InitialX + math.Cos(e.Phase)*0.08
		e.Y -= e.Speed / 3
	case KindMoth:
		e.Phase += e.Speed
		e.X = e.InitialX + math.Sin(e.Phase*0.8)*0.1
		e.Y -= e.Speed / 6
	}
}

// Update moves the enemy, gives it a chance to fire and retires it
// once it has left through the bottom of the playfield.
func (e *Enemy) Update(r *Rules, fireChance float64, rng Random, out *SpawnQueue) {
	if !e.Active {
		return
	}
	e.kinematics()
	e.TryShoot(r, fireChance, rng, out)
	if e.Y < r.ExitY {
		e.Active = false
	}
}

// TryShoot counts the cooldown down and, once it has run out, fires with
// probability fireChance. A failed roll leaves the cooldown expired.
func (e *Enemy) TryShoot(r *Rules, fireChance float64, rng Random, out *SpawnQueue) bool {
	e.Cooldown--
	if e.Cooldown > 0 || rng.Float64() >= fireChance {
		return false
	}
	out.Push(SpawnEnemyBullet, e.X, e.Y-e.Length/2)
	e.Cooldown = uniform(rng, r.ReloadMin, r.ReloadMax)
	return true
}

// TakeDamage subtracts health and reports whether this hit killed the enemy.
func (e *Enemy) TakeDamage(n int) bool {
	if !e.Active {
		return false
	}
	e.Health -= n
	if e.Health <= 0 {
		e.Active = false
		return true
	}
	return false
}

// CollidesWith reports whether a point lies strictly within the enemy's radius.
func (e *Enemy) CollidesWith(px, py float64) bool {
	return core.Dist(e.X, e.Y, px, py) < e.Length/2
}

// Draw renders the enemy with its kind's sprite.
func (e *Enemy) Draw(c core.Canvas, s *Sprite) {
	if !e.Active {
		return
	}
	s.Draw(c, e.X, e.Y, e.Length)
}
