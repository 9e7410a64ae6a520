// Package galaga implements a fixed-timestep Galaga-style shooter.
//
// The world is normalized to [0,1] on both axes with y pointing up. Each
// Step runs one frame: player, player bullets, enemy bullets, enemies,
// collisions, purge of inactive entities, then end-of-frame state checks.
package galaga

import (
	"io/fs"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-galaga/internal/assets"
	"github.com/vovakirdan/tui-galaga/internal/config"
	"github.com/vovakirdan/tui-galaga/internal/core"
	"github.com/vovakirdan/tui-galaga/internal/registry"
)

// GameID is the registry and score-storage identifier.
const GameID = "galaga"

// Game state constants
const (
	StateStart         = "start"
	StatePlaying       = "playing"
	StatePaused        = "paused"
	StateLevelComplete = "level_complete"
	StateGameOver      = "gameover"
	StateVictory       = "victory"
)

// Asset layout inside the asset FS.
const (
	LevelDir          = "levels"
	SpriteDir         = "sprites"
	defaultShipSprite = "ship.spr"
)

// ScoreStore persists the best score across runs.
type ScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

// defaultOptions are applied to every game created through the registry.
var defaultOptions []Option

// SetDefaultOptions sets the options used by registry-created games.
func SetDefaultOptions(opts ...Option) {
	defaultOptions = opts
}

// Option customizes a Game.
type Option func(*Game)

// WithConfig uses cfg instead of loading the configuration from disk.
func WithConfig(cfg config.GalagaConfig) Option {
	return func(g *Game) { g.fixedCfg = &cfg }
}

// WithAssets reads levels and sprites from fsys instead of the embedded set.
func WithAssets(fsys fs.FS) Option {
	return func(g *Game) { g.assets = fsys }
}

// WithRandom replaces the seeded generator.
func WithRandom(r Random) Option {
	return func(g *Game) { g.injectedRNG = r }
}

// WithScoreStore persists the high score through s.
func WithScoreStore(s ScoreStore) Option {
	return func(g *Game) { g.store = s }
}

// WithLogger sets the logger for data and lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// Game implements the shooter's state machine.
type Game struct {
	// Dependencies
	fixedCfg    *config.GalagaConfig
	assets      fs.FS
	injectedRNG Random
	store       ScoreStore
	logger      *log.Logger

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.GalagaConfig
	rules      Rules
	difficulty *config.DifficultyManager
	sprites    *SpriteBank
	shipSprite string
	levels     *LevelLoader
	rng        Random

	// Entities. Slices are compacted once per frame in purge.
	player       *Player
	bullets      []Projectile
	enemyBullets []Projectile
	enemies      []Enemy
	spawns       SpawnQueue

	// Game state
	state           string
	score           int
	highScore       int
	level           *Level
	levelNumber     int
	finalLevel      int
	transitionTimer int
	pauseDebounce   int
	frame           int // Steps taken since Reset
	tick            int // Frames simulated while playing

	// Frame counts derived from the tick rate
	transitionFrames int
	debounceFrames   int
}

// New creates a shooter. Nothing is loaded until Reset.
func New(opts ...Option) *Game {
	g := &Game{}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Galaga"
}

// Reset loads configuration, assets and the stored high score, then shows
// the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.logger = loggerOrDefault(g.logger)

	if g.fixedCfg != nil {
		g.cfg = *g.fixedCfg
	} else {
		cfg, err := config.LoadGalaga("")
		if err != nil {
			g.logger.Warn("using default config", "error", err)
			cfg = config.DefaultGalagaConfig()
		}
		g.cfg = cfg
	}
	g.rules = RulesFromConfig(g.cfg)
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	if g.injectedRNG != nil {
		g.rng = g.injectedRNG
	} else {
		g.rng = NewSimpleRNG(runtime.Seed)
	}

	fsys := g.assets
	if fsys == nil {
		fsys = assets.FS()
	}
	g.sprites = NewSpriteBank(fsys, SpriteDir, g.logger)
	g.shipSprite = g.cfg.Player.Sprite
	if g.shipSprite == "" {
		g.shipSprite = defaultShipSprite
	}
	g.levels = NewLevelLoader(fsys, LevelDir, &g.rules, g.rng, g.logger)

	g.finalLevel = g.cfg.Levels.Count
	if g.finalLevel <= 0 {
		g.finalLevel = max(g.levels.Scan(), 1)
	}
	g.transitionFrames = runtime.FramesFor(g.cfg.Levels.TransitionSeconds * 1000)
	g.debounceFrames = runtime.FramesFor(g.cfg.Input.PauseDebounceMS)

	g.highScore = g.loadHighScore()
	g.frame = 0
	g.tick = 0
	g.pauseDebounce = 0
	g.newRun()
	g.state = StateStart
}

// newRun builds a fresh player and level 1 with score 0.
func (g *Game) newRun() {
	g.player = NewPlayer(&g.rules)
	g.score = 0
	g.bullets = g.bullets[:0]
	g.enemyBullets = g.enemyBullets[:0]
	g.spawns.Reset()
	g.transitionTimer = 0
	g.loadLevel(1)
}

func (g *Game) loadLevel(n int) {
	g.level = g.levels.Load(n)
	g.levelNumber = n
	g.enemies = g.level.Enemies()

	if scale := g.difficulty.Speed(1.0, g.score, g.tick); scale != 1.0 {
		for i := range g.enemies {
			g.enemies[i].Speed *= scale
		}
	}

	g.logger.Info("level loaded",
		"level", n,
		"name", g.level.Name,
		"enemies", len(g.enemies),
		"skipped", g.level.Skipped,
	)
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.frame++
	if g.pauseDebounce > 0 {
		g.pauseDebounce--
	}

	switch g.state {
	case StateStart:
		if in.Has(core.ActionFire) || in.Has(core.ActionConfirm) {
			g.state = StatePlaying
		}

	case StatePlaying:
		if in.Has(core.ActionPause) && g.pauseDebounce == 0 {
			g.state = StatePaused
			g.pauseDebounce = g.debounceFrames
			break
		}
		g.update(in)

	case StatePaused:
		if in.Has(core.ActionPause) && g.pauseDebounce == 0 {
			g.state = StatePlaying
			g.pauseDebounce = g.debounceFrames
		}

	case StateLevelComplete:
		g.transitionTimer++
		if g.transitionTimer > g.transitionFrames {
			g.nextLevel()
		}

	case StateGameOver, StateVictory:
		if in.Has(core.ActionRestart) {
			g.restart()
		}
	}

	return core.StepResult{State: g.State()}
}

// update runs one frame of simulation in a fixed order.
func (g *Game) update(in core.InputFrame) {
	g.tick++

	g.player.Update(in, &g.spawns)
	g.drainSpawns()

	for i := range g.bullets {
		g.bullets[i].Update()
	}
	for i := range g.enemyBullets {
		g.enemyBullets[i].Update()
	}

	chance := g.difficulty.FireChance(g.rules.FireChance, g.score, g.tick)
	for i := range g.enemies {
		g.enemies[i].Update(&g.rules, chance, g.rng, &g.spawns)
	}
	g.drainSpawns()

	g.checkCollisions()
	g.purge()
	g.checkGameState()
}

// drainSpawns turns queued spawn requests into projectiles.
func (g *Game) drainSpawns() {
	g.spawns.Drain(func(ev SpawnEvent) {
		switch ev.Kind {
		case SpawnPlayerBullet:
			g.bullets = append(g.bullets, NewBullet(ev.X, ev.Y, g.rules))
		case SpawnEnemyBullet:
			g.enemyBullets = append(g.enemyBullets, NewEnemyBullet(ev.X, ev.Y, g.rules))
		}
	})
}

// purge drops inactive entities. This is the only place collections shrink.
func (g *Game) purge() {
	inactive := func(p Projectile) bool { return !p.Active }
	g.bullets = slices.DeleteFunc(g.bullets, inactive)
	g.enemyBullets = slices.DeleteFunc(g.enemyBullets, inactive)
	g.enemies = slices.DeleteFunc(g.enemies, func(e Enemy) bool { return !e.Active })
}

// checkGameState applies end-of-frame transitions. Death wins over a cleared wave.
func (g *Game) checkGameState() {
	if !g.player.Alive() {
		g.finish(StateGameOver)
		return
	}
	if len(g.enemies) > 0 {
		return
	}
	if g.levelNumber >= g.finalLevel {
		g.finish(StateVictory)
		return
	}
	g.state = StateLevelComplete
	g.transitionTimer = 0
	g.logger.Info("level complete", "level", g.levelNumber, "score", g.score)
}

// nextLevel loads the following level. Player bullets are cleared,
// enemy bullets stay in flight.
func (g *Game) nextLevel() {
	g.levelNumber++
	if g.levelNumber > g.finalLevel {
		g.finish(StateVictory)
		return
	}
	g.loadLevel(g.levelNumber)
	g.bullets = g.bullets[:0]
	g.state = StatePlaying
}

// finish ends the run and commits the high score.
func (g *Game) finish(state string) {
	g.state = state
	g.commitHighScore()
	g.logger.Info("run finished", "state", state, "score", g.score, "level", g.levelNumber)
}

// restart begins a new run straight into play, keeping the high score.
func (g *Game) restart() {
	g.newRun()
	g.state = StatePlaying
}

func (g *Game) loadHighScore() int {
	if g.store == nil {
		return 0
	}
	score, err := g.store.LoadHighScore()
	if err != nil {
		g.logger.Warn("could not load high score", "error", err)
		return 0
	}
	return max(score, 0)
}

// commitHighScore raises the high score if the current score beats it.
func (g *Game) commitHighScore() {
	if g.score <= g.highScore {
		return
	}
	g.highScore = g.score
	g.logger.Info("new high score", "score", g.score)
	if g.store == nil {
		return
	}
	if err := g.store.SaveHighScore(g.highScore); err != nil {
		g.logger.Warn("could not save high score", "error", err)
	}
}

// Phase returns the state machine's current state.
func (g *Game) Phase() string {
	return g.state
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// HighScore returns the best score known to this game.
func (g *Game) HighScore() int {
	return g.highScore
}

// Lives returns the player's remaining lives.
func (g *Game) Lives() int {
	return g.player.Lives
}

// LevelNumber returns the level being played.
func (g *Game) LevelNumber() int {
	return g.levelNumber
}

// FinalLevel returns the last level of the campaign.
func (g *Game) FinalLevel() int {
	return g.finalLevel
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.levelNumber,
		Phase:    g.state,
		GameOver: g.state == StateGameOver || g.state == StateVictory,
		Victory:  g.state == StateVictory,
		Paused:   g.state == StatePaused,
	}
}

func loggerOrDefault(l *log.Logger) *log.Logger {
	if l == nil {
		return log.Default()
	}
	return l
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New(defaultOptions...)
	})
}
