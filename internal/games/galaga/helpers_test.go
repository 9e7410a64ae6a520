package galaga

import (
	"io"
	"testing/fstest"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-galaga/internal/config"
	"github.com/vovakirdan/tui-galaga/internal/core"
)

// fixedRandom returns the same values forever.
type fixedRandom struct {
	f float64
	n int
}

func (r fixedRandom) Float64() float64 { return r.f }

func (r fixedRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return min(r.n, n-1)
}

// neverFire keeps enemies from ever shooting.
var neverFire = fixedRandom{f: 0.99}

type memStore struct {
	score   int
	loadErr error
	saves   int
}

func (m *memStore) LoadHighScore() (int, error) {
	if m.loadErr != nil {
		return 0, m.loadErr
	}
	return m.score, nil
}

func (m *memStore) SaveHighScore(score int) error {
	m.score = score
	m.saves++
	return nil
}

// recordingCanvas counts draw calls.
type recordingCanvas struct {
	squares []square
	rects   int
	texts   []string
}

type square struct {
	x, y, half float64
	color      core.Color
}

func (c *recordingCanvas) FilledSquare(x, y, half float64, col core.Color) {
	c.squares = append(c.squares, square{x, y, half, col})
}

func (c *recordingCanvas) FilledRectangle(x, y, halfW, halfH float64, col core.Color) {
	c.rects++
}

func (c *recordingCanvas) Text(x, y float64, text string, align core.Align, col core.Color) {
	c.texts = append(c.texts, text)
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 42}
}

func levelFS(levels map[int]string) fstest.MapFS {
	fsys := fstest.MapFS{
		"sprites/ship.spr": {Data: []byte("NWN\nWWW\n")},
		"sprites/bee.spr":  {Data: []byte("Y\n")},
	}
	for n, body := range levels {
		fsys[LevelDir+"/"+LevelFile(n)] = &fstest.MapFile{Data: []byte(body)}
	}
	return fsys
}

// newTestGame builds a game past the title screen.
func newTestGame(cfg config.GalagaConfig, fsys fstest.MapFS, rng Random, store ScoreStore) *Game {
	g := New(
		WithConfig(cfg),
		WithAssets(fsys),
		WithRandom(rng),
		WithScoreStore(store),
		WithLogger(quietLogger()),
	)
	g.Reset(testRuntime())
	g.Step(core.FrameOf(core.ActionFire))
	return g
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}
