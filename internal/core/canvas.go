package core

import "math"

// Align controls horizontal text placement on a Canvas.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Canvas is a drawing surface addressed in normalized world coordinates.
// (0,0) is the bottom-left corner and (1,1) the top-right.
type Canvas interface {
	// FilledSquare draws a square centered on (x, y) with the given half edge.
	FilledSquare(x, y, half float64, c Color)
	// FilledRectangle draws a rectangle centered on (x, y).
	FilledRectangle(x, y, halfW, halfH float64, c Color)
	// Text draws a single line anchored at (x, y).
	Text(x, y float64, text string, align Align, c Color)
}

// ScreenCanvas maps normalized coordinates onto a Screen's character grid.
// Every non-empty shape covers at least one cell.
type ScreenCanvas struct {
	screen *Screen
	Block  rune // rune for shapes at least half a cell wide
	Thin   rune // rune for narrower shapes
}

// NewScreenCanvas wraps a screen.
func NewScreenCanvas(s *Screen) *ScreenCanvas {
	return &ScreenCanvas{screen: s, Block: '█', Thin: '│'}
}

// Column returns the screen column containing normalized x.
func (c *ScreenCanvas) Column(x float64) int {
	return int(math.Floor(x * float64(c.screen.Width())))
}

// Row returns the screen row containing normalized y. Row 0 is the top.
func (c *ScreenCanvas) Row(y float64) int {
	h := c.screen.Height()
	r := int(math.Floor((1 - y) * float64(h)))
	if r == h && y >= 0 {
		r = h - 1
	}
	return r
}

func (c *ScreenCanvas) FilledSquare(x, y, half float64, col Color) {
	c.FilledRectangle(x, y, half, half, col)
}

func (c *ScreenCanvas) FilledRectangle(x, y, halfW, halfH float64, col Color) {
	w := float64(c.screen.Width())
	h := float64(c.screen.Height())

	x0 := int(math.Floor((x - halfW) * w))
	x1 := int(math.Ceil((x+halfW)*w)) - 1
	if x1 < x0 {
		x1 = x0
	}
	y0 := int(math.Floor((1 - (y + halfH)) * h))
	y1 := int(math.Ceil((1-(y-halfH))*h)) - 1
	if y1 < y0 {
		y1 = y0
	}

	r := c.Block
	if 2*halfW*w < 0.5 {
		r = c.Thin
	}
	c.screen.FillRect(NewRect(x0, y0, x1-x0+1, y1-y0+1), r, col)
}

func (c *ScreenCanvas) Text(x, y float64, text string, align Align, col Color) {
	n := len([]rune(text))
	cx := c.Column(x)
	switch align {
	case AlignCenter:
		cx -= n / 2
	case AlignRight:
		cx -= n
	}
	c.screen.DrawTextColored(cx, c.Row(y), text, col)
}
