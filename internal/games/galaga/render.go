package galaga

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-galaga/internal/core"
)

const starCount = 40

// Render draws the current frame into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	c := core.NewScreenCanvas(dst)

	if g.state == StateStart {
		g.renderStartScreen(dst)
		return
	}

	g.renderStars(dst, c)

	for i := range g.enemies {
		e := &g.enemies[i]
		e.Draw(c, g.sprites.Get(e.Kind.SpriteFile()))
	}
	for i := range g.bullets {
		g.bullets[i].Draw(c)
	}
	for i := range g.enemyBullets {
		g.enemyBullets[i].Draw(c)
	}
	g.player.Draw(c, g.sprites.Get(g.shipSprite))

	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// renderStars draws a background field that scrolls at the level's speed.
func (g *Game) renderStars(dst *core.Screen, c *core.ScreenCanvas) {
	offset := float64(g.tick) * g.level.ScrollSpeed
	for i := 0; i < starCount; i++ {
		x := frac(float64(i) * 0.6180339887)
		y := frac(float64(i)*0.4142135623 - offset)
		glyph := '.'
		if i%7 == 0 {
			glyph = '*'
		}
		dst.SetCell(c.Column(x), c.Row(y), glyph, core.ColorDarkGray)
	}
}

func frac(v float64) float64 {
	return v - math.Floor(v)
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", g.score), core.ColorBrightWhite)
	dst.DrawTextColored(1, 1, fmt.Sprintf("Lives: %d", g.player.Lives), core.ColorBrightGreen)
	dst.DrawTextColored(1, 2, fmt.Sprintf("Level: %d", g.levelNumber), core.ColorBrightCyan)

	hi := fmt.Sprintf("High Score: %d", g.highScore)
	dst.DrawTextColored(dst.Width()-len(hi)-1, 0, hi, core.ColorBrightYellow)

	if g.level.Name != "" {
		info := g.level.Name
		if g.level.TargetScore > 0 {
			info += fmt.Sprintf("  target %d", g.level.TargetScore)
		}
		if g.level.TimeLimit >= 0 {
			info += fmt.Sprintf("  %ds", g.level.TimeLimit)
		}
		dst.DrawTextCentered(0, info, core.ColorGray)
	}
}

func (g *Game) renderStartScreen(dst *core.Screen) {
	h := dst.Height()
	lines := []struct {
		text  string
		color core.Color
	}{
		{"G A L A G A", core.ColorBrightYellow},
		{"", core.ColorDefault},
		{fmt.Sprintf("High Score: %d", g.highScore), core.ColorBrightWhite},
		{"", core.ColorDefault},
		{"←/→  move     SPACE  fire", core.ColorGray},
		{"P  pause     R  restart     ESC  quit", core.ColorGray},
		{"", core.ColorDefault},
		{"Press SPACE to start", core.ColorBrightGreen},
	}

	top := (h - len(lines)) / 2
	for i, l := range lines {
		dst.DrawTextCentered(top+i, l.text, l.color)
	}
}

func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateLevelComplete:
		subtitle := fmt.Sprintf("Score: %d  |  Get ready for level %d", g.score, g.levelNumber+1)
		g.drawCenteredBox(dst, fmt.Sprintf("LEVEL %d COMPLETE", g.levelNumber), subtitle)

	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  High Score: %d  |  Press R to restart", g.score, g.highScore)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)

	case StateVictory:
		subtitle := fmt.Sprintf("Final Score: %d  |  High Score: %d  |  Press R to restart", g.score, g.highScore)
		g.drawCenteredBox(dst, "VICTORY!", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
