package galaga

import "github.com/vovakirdan/tui-galaga/internal/core"

// Owner tells which side fired a projectile.
type Owner int

const (
	OwnerPlayer Owner = iota // Travels up
	OwnerEnemy               // Travels down
)

// Projectile is a bullet moving vertically at constant speed.
// Once inactive it never becomes active again.
type Projectile struct {
	X, Y          float64
	Speed         float64
	Width, Height float64
	Owner         Owner
	Active        bool
}

// NewBullet creates an upward player bullet at (x, y).
func NewBullet(x, y float64, r Rules) Projectile {
	return Projectile{
		X:      x,
		Y:      y,
		Speed:  r.BulletSpeed,
		Width:  r.BulletWidth,
		Height: r.BulletHeight,
		Owner:  OwnerPlayer,
		Active: true,
	}
}

// NewEnemyBullet creates a downward enemy bullet at (x, y).
func NewEnemyBullet(x, y float64, r Rules) Projectile {
	return Projectile{
		X:      x,
		Y:      y,
		Speed:  r.EnemyBulletSpeed,
		Width:  r.EnemyBulletWidth,
		Height: r.EnemyBulletHeight,
		Owner:  OwnerEnemy,
		Active: true,
	}
}

// Update advances the projectile one frame and deactivates it when it
// leaves the vertical range [0, 1].
func (p *Projectile) Update() {
	if !p.Active {
		return
	}
	if p.Owner == OwnerEnemy {
		p.Y -= p.Speed
	} else {
		p.Y += p.Speed
	}
	if p.Y > 1 || p.Y < 0 {
		p.Active = false
	}
}

// Deactivate removes the projectile from play.
func (p *Projectile) Deactivate() {
	p.Active = false
}

// Color is yellow for the player and red for enemies.
func (p Projectile) Color() core.Color {
	if p.Owner == OwnerEnemy {
		return core.ColorBrightRed
	}
	return core.ColorBrightYellow
}

// Draw renders the projectile as a filled rectangle.
func (p *Projectile) Draw(c core.Canvas) {
	if !p.Active {
		return
	}
	c.FilledRectangle(p.X, p.Y, p.Width/2, p.Height/2, p.Color())
}
