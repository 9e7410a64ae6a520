package galaga

import (
	"io/fs"
	"path"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-galaga/internal/core"
)

// Transparent is the sprite cell code that draws nothing.
const Transparent = 'N'

// Sprite is an immutable grid of single-character color codes.
// Row 0 is the top of the image.
type Sprite struct {
	width  int
	height int
	cells  [][]byte
}

// emptySprite is returned when a sprite cannot be loaded.
func emptySprite() *Sprite {
	return &Sprite{width: 1, height: 1, cells: [][]byte{{Transparent}}}
}

// ParseSprite builds a sprite from text. The first line fixes the width;
// shorter rows are padded with transparent cells, longer rows are cut.
// Empty input yields a 1x1 transparent sprite.
func ParseSprite(data string) *Sprite {
	data = strings.TrimRight(data, "\r\n")
	if data == "" {
		return emptySprite()
	}

	lines := strings.Split(data, "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}

	width := len(lines[0])
	if width == 0 {
		return emptySprite()
	}

	cells := make([][]byte, len(lines))
	for row, line := range lines {
		cells[row] = make([]byte, width)
		for col := 0; col < width; col++ {
			if col < len(line) {
				cells[row][col] = line[col]
			} else {
				cells[row][col] = Transparent
			}
		}
	}
	return &Sprite{width: width, height: len(lines), cells: cells}
}

// LoadSprite reads a sprite file. Read failures are logged and produce
// a 1x1 transparent sprite.
func LoadSprite(fsys fs.FS, name string, logger *log.Logger) *Sprite {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		loggerOrDefault(logger).Warn("could not load sprite", "path", name, "error", err)
		return emptySprite()
	}
	return ParseSprite(string(data))
}

// Width returns the number of columns.
func (s *Sprite) Width() int { return s.width }

// Height returns the number of rows.
func (s *Sprite) Height() int { return s.height }

// At returns the color code at (col, row), or Transparent outside the grid.
func (s *Sprite) At(col, row int) byte {
	if row < 0 || row >= s.height || col < 0 || col >= s.width {
		return Transparent
	}
	return s.cells[row][col]
}

// Draw renders the sprite centered on (x, y) and scaled so the grid is size wide.
func (s *Sprite) Draw(c core.Canvas, x, y, size float64) {
	pixel := size / float64(s.width)
	startX := x - size/2
	startY := y + float64(s.height)*pixel/2

	for row := 0; row < s.height; row++ {
		for col := 0; col < s.width; col++ {
			code := s.cells[row][col]
			if code == Transparent {
				continue
			}
			px := startX + float64(col)*pixel + pixel/2
			py := startY - float64(row)*pixel - pixel/2
			c.FilledSquare(px, py, pixel/2, SpriteColor(code))
		}
	}
}

// SpriteColor maps a sprite color code to a screen color.
// Unknown codes draw white.
func SpriteColor(code byte) core.Color {
	switch code {
	case 'R':
		return core.ColorBrightRed
	case 'B':
		return core.ColorBrightBlue
	case 'G':
		return core.ColorBrightGreen
	case 'Y':
		return core.ColorBrightYellow
	case 'O':
		return core.ColorOrange
	case 'P':
		return core.ColorPink
	case 'M':
		return core.ColorBrightMagenta
	case 'C':
		return core.ColorBrightCyan
	case 'K':
		return core.ColorBlack
	case 'D':
		return core.ColorDarkGray
	case 'L':
		return core.ColorLightGray
	default:
		return core.ColorBrightWhite
	}
}

// SpriteBank loads each sprite file once and hands out shared references.
type SpriteBank struct {
	fsys   fs.FS
	dir    string
	logger *log.Logger
	cache  map[string]*Sprite
}

// NewSpriteBank creates a bank reading sprites from dir inside fsys.
func NewSpriteBank(fsys fs.FS, dir string, logger *log.Logger) *SpriteBank {
	return &SpriteBank{
		fsys:   fsys,
		dir:    dir,
		logger: loggerOrDefault(logger),
		cache:  make(map[string]*Sprite),
	}
}

// Get returns the sprite stored in the named file.
func (b *SpriteBank) Get(name string) *Sprite {
	if s, ok := b.cache[name]; ok {
		return s
	}
	s := LoadSprite(b.fsys, path.Join(b.dir, name), b.logger)
	b.cache[name] = s
	return s
}
