package galaga

import "github.com/vovakirdan/tui-galaga/internal/core"

// Player is the ship controlled by the user.
type Player struct {
	X, Y     float64
	Length   float64
	Lives    int
	step     float64
	canShoot bool // Fire latch; cleared while fire is held
}

// NewPlayer creates a ship at the configured start position.
func NewPlayer(r *Rules) *Player {
	return &Player{
		X:        r.PlayerStartX,
		Y:        r.PlayerStartY,
		Length:   r.PlayerLength,
		Lives:    r.PlayerLives,
		step:     r.PlayerStep,
		canShoot: true,
	}
}

// Update applies one frame of input. Fire is edge-triggered: holding it
// produces a single bullet until it is released.
func (p *Player) Update(in core.InputFrame, out *SpawnQueue) {
	if in.Has(core.ActionLeft) {
		p.X -= p.step
	}
	if in.Has(core.ActionRight) {
		p.X += p.step
	}
	p.clamp()

	if in.Has(core.ActionFire) {
		if p.canShoot {
			out.Push(SpawnPlayerBullet, p.X, p.Y+p.Length/2)
			p.canShoot = false
		}
	} else {
		p.canShoot = true
	}
}

// clamp keeps the whole ship inside the playfield.
func (p *Player) clamp() {
	half := p.Length / 2
	p.X = core.ClampF(p.X, half, 1-half)
	p.Y = core.ClampF(p.Y, half, 1-half)
}

// LoseLife removes one life; lives never go negative.
func (p *Player) LoseLife() {
	if p.Lives > 0 {
		p.Lives--
	}
}

// Alive reports whether the player has lives left.
func (p *Player) Alive() bool {
	return p.Lives > 0
}

// Draw renders the ship sprite.
func (p *Player) Draw(c core.Canvas, s *Sprite) {
	s.Draw(c, p.X, p.Y, p.Length)
}
