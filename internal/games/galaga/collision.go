package galaga

import "github.com/vovakirdan/tui-galaga/internal/core"

// checkCollisions resolves hits in a fixed order: player bullets against
// enemies, enemy bullets against the player, then enemies ramming the player.
func (g *Game) checkCollisions() {
	g.resolveBulletHits()
	g.resolvePlayerHits()
	g.resolveContacts()
}

// resolveBulletHits lets each active bullet damage at most one enemy,
// the first one in list order that it overlaps. Score is awarded only
// for the hit that kills.
func (g *Game) resolveBulletHits() {
	for i := range g.bullets {
		b := &g.bullets[i]
		if !b.Active {
			continue
		}
		for j := range g.enemies {
			e := &g.enemies[j]
			if !e.Active || !e.CollidesWith(b.X, b.Y) {
				continue
			}
			b.Deactivate()
			if e.TakeDamage(1) {
				g.score += e.ScoreValue
			}
			break
		}
	}
}

// resolvePlayerHits costs the player a life per enemy bullet inside the ship's radius.
func (g *Game) resolvePlayerHits() {
	p := g.player
	for i := range g.enemyBullets {
		b := &g.enemyBullets[i]
		if !b.Active {
			continue
		}
		if core.Dist(b.X, b.Y, p.X, p.Y) < p.Length/2 {
			b.Deactivate()
			p.LoseLife()
			g.logger.Debug("player hit", "lives", p.Lives)
		}
	}
}

// resolveContacts removes enemies that touch the player, without score.
func (g *Game) resolveContacts() {
	p := g.player
	for j := range g.enemies {
		e := &g.enemies[j]
		if e.Active && e.CollidesWith(p.X, p.Y) {
			e.Active = false
			p.LoseLife()
			g.logger.Debug("player rammed", "kind", e.Kind, "lives", p.Lives)
		}
	}
}
