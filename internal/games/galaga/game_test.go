package galaga

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/vovakirdan/tui-galaga/internal/config"
	"github.com/vovakirdan/tui-galaga/internal/core"
)

// A stationary target straight above the ship and a stationary decoy far away.
const (
	targetLine = "bee 0.5 0.2 0.05 %d 0\n"
	decoyLine  = "bee 0.1 0.9 0.05 10 0\n"
)

func levelWith(lines ...string) string {
	return "Test 0 -1 0\n" + strings.Join(lines, "")
}

func target(score int) string {
	return fmt.Sprintf(targetLine, score)
}

// fireUntil presses fire once and idles until cond holds or the budget runs out.
func fireUntil(t *testing.T, g *Game, cond func() bool) {
	t.Helper()
	g.Step(core.FrameOf(core.ActionFire))
	for rep := 0; rep < 30; rep++ {
		if cond() {
			return
		}
		g.Step(idle())
	}
	if !cond() {
		t.Fatalf("condition not reached; state=%s score=%d", g.Phase(), g.Score())
	}
}

// shootPlayer puts an enemy bullet on the ship and runs one frame.
func shootPlayer(g *Game) {
	g.enemyBullets = append(g.enemyBullets, NewEnemyBullet(g.player.X, g.player.Y, g.rules))
	g.Step(idle())
}

func TestStartScreen(t *testing.T) {
	g := New(WithConfig(config.DefaultGalagaConfig()), WithAssets(levelFS(nil)), WithLogger(quietLogger()))
	g.Reset(testRuntime())

	if g.Phase() != StateStart {
		t.Fatalf("Reset should show the title screen, got %s", g.Phase())
	}
	g.Step(idle())
	g.Step(core.FrameOf(core.ActionLeft))
	if g.Phase() != StateStart {
		t.Error("only fire or confirm should leave the title screen")
	}
	g.Step(core.FrameOf(core.ActionConfirm))
	if g.Phase() != StatePlaying {
		t.Errorf("confirm should start the game, got %s", g.Phase())
	}
}

func TestGameOverPersistsHighScore(t *testing.T) {
	fsys := levelFS(map[int]string{1: levelWith(target(120), decoyLine)})
	store := &memStore{score: 100}
	g := newTestGame(config.DefaultGalagaConfig(), fsys, neverFire, store)

	if g.HighScore() != 100 {
		t.Fatalf("high score should load from the store, got %d", g.HighScore())
	}

	fireUntil(t, g, func() bool { return g.Score() == 120 })

	for i := 0; i < 3; i++ {
		if g.Phase() != StatePlaying {
			t.Fatalf("hit %d: state = %s, expected playing", i, g.Phase())
		}
		shootPlayer(g)
	}

	if g.Phase() != StateGameOver {
		t.Fatalf("three hits should end the run, state = %s lives = %d", g.Phase(), g.Lives())
	}
	if !g.State().GameOver || g.State().Victory {
		t.Errorf("State() = %+v", g.State())
	}
	if store.score != 120 || store.saves != 1 {
		t.Errorf("store = %d after %d saves, expected 120 after 1", store.score, store.saves)
	}
	if g.HighScore() != 120 {
		t.Errorf("HighScore() = %d, expected 120", g.HighScore())
	}

	// Nothing moves until restart.
	before := g.Snapshot()
	g.Step(core.FrameOf(core.ActionFire, core.ActionLeft))
	after := g.Snapshot()
	if before.PlayerX != after.PlayerX || before.Score != after.Score {
		t.Error("game over screen should not simulate")
	}

	g.Step(core.FrameOf(core.ActionRestart))
	if g.Phase() != StatePlaying {
		t.Fatalf("restart should go straight to playing, got %s", g.Phase())
	}
	if g.Score() != 0 || g.Lives() != 3 || g.LevelNumber() != 1 {
		t.Errorf("after restart score=%d lives=%d level=%d", g.Score(), g.Lives(), g.LevelNumber())
	}
	if g.HighScore() != 120 {
		t.Errorf("restart must keep the high score, got %d", g.HighScore())
	}
	if len(g.enemies) != 2 || len(g.bullets) != 0 || len(g.enemyBullets) != 0 {
		t.Errorf("restart should reload level 1 and clear projectiles: %d enemies, %d bullets, %d enemy bullets",
			len(g.enemies), len(g.bullets), len(g.enemyBullets))
	}
}

func TestLowScoreLeavesHighScoreAlone(t *testing.T) {
	fsys := levelFS(map[int]string{1: levelWith(decoyLine)})
	store := &memStore{score: 500}
	g := newTestGame(config.DefaultGalagaConfig(), fsys, neverFire, store)

	for rep := 0; rep < 3; rep++ {
		shootPlayer(g)
	}

	if g.Phase() != StateGameOver {
		t.Fatalf("state = %s, expected game over", g.Phase())
	}
	if store.saves != 0 || store.score != 500 || g.HighScore() != 500 {
		t.Errorf("high score must never decrease: store=%d saves=%d game=%d", store.score, store.saves, g.HighScore())
	}
}

func TestUnreadableHighScoreStartsAtZero(t *testing.T) {
	store := &memStore{loadErr: errors.New("corrupt")}
	g := newTestGame(config.DefaultGalagaConfig(), levelFS(map[int]string{1: levelWith(decoyLine)}), neverFire, store)

	if g.HighScore() != 0 {
		t.Errorf("HighScore() = %d, expected 0", g.HighScore())
	}
	if g.Phase() != StatePlaying {
		t.Errorf("a broken store must not stop the game, state = %s", g.Phase())
	}
}

func TestLevelTransition(t *testing.T) {
	fsys := levelFS(map[int]string{
		1: levelWith(target(10)),
		2: levelWith(decoyLine, decoyLine),
	})
	g := newTestGame(config.DefaultGalagaConfig(), fsys, neverFire, &memStore{})

	fireUntil(t, g, func() bool { return g.Phase() == StateLevelComplete })

	if g.Score() != 10 {
		t.Errorf("score = %d, expected 10", g.Score())
	}

	g.bullets = append(g.bullets, NewBullet(0.1, 0.5, g.rules))
	g.enemyBullets = append(g.enemyBullets, NewEnemyBullet(0.9, 0.5, g.rules))

	if g.transitionFrames != 90 {
		t.Fatalf("transition at 30 Hz should last 90 frames, got %d", g.transitionFrames)
	}
	for rep := 0; rep < 90; rep++ {
		g.Step(idle())
	}
	if g.Phase() != StateLevelComplete {
		t.Fatalf("transition ended early, state = %s", g.Phase())
	}

	g.Step(idle())
	if g.Phase() != StatePlaying || g.LevelNumber() != 2 {
		t.Fatalf("state = %s level = %d, expected playing level 2", g.Phase(), g.LevelNumber())
	}
	if len(g.bullets) != 0 {
		t.Errorf("player bullets should be cleared, got %d", len(g.bullets))
	}
	if len(g.enemyBullets) != 1 || g.enemyBullets[0].Y != 0.5 {
		t.Errorf("enemy bullets should carry over untouched, got %+v", g.enemyBullets)
	}
	if len(g.enemies) != 2 {
		t.Errorf("level 2 should load 2 enemies, got %d", len(g.enemies))
	}
	if g.Score() != 10 {
		t.Errorf("score should carry over, got %d", g.Score())
	}
}

func TestVictoryOnFinalLevel(t *testing.T) {
	cfg := config.DefaultGalagaConfig()
	cfg.Levels.Count = 1
	store := &memStore{}
	g := newTestGame(cfg, levelFS(map[int]string{1: levelWith(target(7))}), neverFire, store)

	fireUntil(t, g, func() bool { return g.Phase() == StateVictory })

	st := g.State()
	if !st.Victory || !st.GameOver {
		t.Errorf("State() = %+v, expected victory", st)
	}
	if store.score != 7 {
		t.Errorf("victory should commit the high score, store = %d", store.score)
	}

	g.Step(core.FrameOf(core.ActionRestart))
	if g.Phase() != StatePlaying || g.Score() != 0 {
		t.Errorf("restart from victory: state=%s score=%d", g.Phase(), g.Score())
	}
}

func TestFinalLevelFromScan(t *testing.T) {
	cfg := config.DefaultGalagaConfig()
	cfg.Levels.Count = 0
	fsys := levelFS(map[int]string{1: levelWith(decoyLine), 2: levelWith(decoyLine), 3: levelWith(decoyLine)})
	g := newTestGame(cfg, fsys, neverFire, &memStore{})

	if g.FinalLevel() != 3 {
		t.Errorf("FinalLevel() = %d, expected 3", g.FinalLevel())
	}
}

func TestEmptyLevelIsWonImmediately(t *testing.T) {
	g := newTestGame(config.DefaultGalagaConfig(), levelFS(nil), neverFire, &memStore{})

	g.Step(idle())
	if g.Phase() != StateLevelComplete {
		t.Errorf("missing level 1 should complete at once, state = %s", g.Phase())
	}
}

func TestBulletDamagesOnlyFirstOverlappingEnemy(t *testing.T) {
	g := newTestGame(config.DefaultGalagaConfig(), levelFS(map[int]string{1: levelWith(decoyLine)}), neverFire, &memStore{})

	a := NewEnemy(KindBee, 0.5, 0.5, 0.05, 10, 0, &g.rules, neverFire)
	b := NewEnemy(KindMoth, 0.5, 0.5, 0.05, 20, 0, &g.rules, neverFire)
	g.enemies = []Enemy{a, b}
	g.bullets = []Projectile{NewBullet(0.5, 0.5, g.rules)}

	g.checkCollisions()

	if g.enemies[0].Active || !g.enemies[1].Active {
		t.Errorf("only the first enemy in list order should be hit: %v %v", g.enemies[0].Active, g.enemies[1].Active)
	}
	if g.Score() != 10 {
		t.Errorf("score = %d, expected 10", g.Score())
	}
	if g.bullets[0].Active {
		t.Error("bullet should be spent")
	}
}

func TestScoreOnlyOnKill(t *testing.T) {
	cfg := config.DefaultGalagaConfig()
	cfg.Enemies.Health = 2
	g := newTestGame(cfg, levelFS(map[int]string{1: levelWith(decoyLine)}), neverFire, &memStore{})

	g.enemies = []Enemy{NewEnemy(KindButterfly, 0.5, 0.5, 0.05, 80, 0, &g.rules, neverFire)}

	g.bullets = []Projectile{NewBullet(0.5, 0.5, g.rules)}
	g.checkCollisions()
	if g.Score() != 0 || !g.enemies[0].Active {
		t.Fatalf("non-lethal hit: score=%d active=%v", g.Score(), g.enemies[0].Active)
	}

	g.bullets = []Projectile{NewBullet(0.5, 0.5, g.rules)}
	g.checkCollisions()
	if g.Score() != 80 || g.enemies[0].Active {
		t.Errorf("lethal hit: score=%d active=%v", g.Score(), g.enemies[0].Active)
	}
}

func TestEnemyContactCostsLifeWithoutScore(t *testing.T) {
	g := newTestGame(config.DefaultGalagaConfig(), levelFS(map[int]string{1: levelWith(decoyLine)}), neverFire, &memStore{})

	g.enemies = append(g.enemies, NewEnemy(KindBee, g.player.X, g.player.Y, 0.05, 50, 0, &g.rules, neverFire))
	g.checkCollisions()

	if g.enemies[1].Active {
		t.Error("rammed enemy should be removed")
	}
	if g.Lives() != 2 || g.Score() != 0 {
		t.Errorf("lives=%d score=%d, expected 2 and 0", g.Lives(), g.Score())
	}
}

func TestDeathWinsOverClearedWave(t *testing.T) {
	cfg := config.DefaultGalagaConfig()
	cfg.Player.Lives = 1
	g := newTestGame(cfg, levelFS(map[int]string{1: levelWith("bee 0.5 0.1 0.05 10 0\n")}), neverFire, &memStore{})

	g.Step(idle())

	if g.Phase() != StateGameOver {
		t.Errorf("last life lost on the last enemy should be game over, got %s", g.Phase())
	}
}

func TestSpawnTiming(t *testing.T) {
	cfg := config.DefaultGalagaConfig()
	cfg.Enemies.InitialCooldownMin = 1
	cfg.Enemies.InitialCooldownMax = 2
	alwaysFire := fixedRandom{f: 0}
	g := newTestGame(cfg, levelFS(map[int]string{1: levelWith("bee 0.5 0.8 0.05 10 0\n")}), alwaysFire, &memStore{})

	g.Step(core.FrameOf(core.ActionFire))

	if len(g.bullets) != 1 || len(g.enemyBullets) != 1 {
		t.Fatalf("expected one bullet each side, got %d and %d", len(g.bullets), len(g.enemyBullets))
	}

	// The player bullet moves on the frame it is fired.
	want := g.player.Y + g.player.Length/2
	want += g.rules.BulletSpeed
	if g.bullets[0].Y != want {
		t.Errorf("player bullet y = %f, expected %f", g.bullets[0].Y, want)
	}

	// The enemy bullet first moves on the next frame.
	enemyY, enemyLen := 0.8, 0.05
	if g.enemyBullets[0].Y != enemyY-enemyLen/2 {
		t.Errorf("enemy bullet y = %f, expected %f", g.enemyBullets[0].Y, enemyY-enemyLen/2)
	}
}

func TestPauseDebounce(t *testing.T) {
	g := newTestGame(config.DefaultGalagaConfig(), levelFS(map[int]string{1: levelWith(decoyLine)}), neverFire, &memStore{})
	pause := core.FrameOf(core.ActionPause)

	g.Step(pause)
	if g.Phase() != StatePaused {
		t.Fatalf("state = %s, expected paused", g.Phase())
	}
	tick := g.tick

	for i := 0; i < 5; i++ {
		g.Step(core.FrameOf(core.ActionPause, core.ActionLeft))
		if g.Phase() != StatePaused {
			t.Fatalf("frame %d: held pause toggled before the debounce expired", i)
		}
	}
	if g.tick != tick {
		t.Error("paused game must not simulate")
	}

	g.Step(pause)
	if g.Phase() != StatePlaying {
		t.Errorf("state = %s, expected playing after debounce", g.Phase())
	}
	g.Step(pause)
	if g.Phase() != StatePlaying {
		t.Error("resuming should re-arm the debounce")
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := New(WithConfig(config.DefaultGalagaConfig()), WithLogger(quietLogger()))
		g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 12345})

		for i := 0; i < 1500; i++ {
			in := core.NewInputFrame()
			switch {
			case i == 0:
				in.Set(core.ActionFire)
			case i%40 < 15:
				in.Set(core.ActionLeft)
			case i%40 < 30:
				in.Set(core.ActionRight)
			}
			if i%4 == 0 {
				in.Set(core.ActionFire)
			}
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score || snap1.Frame != snap2.Frame {
		t.Errorf("Determinism failed: score %d/%d frame %d/%d", snap1.Score, snap2.Score, snap1.Frame, snap2.Frame)
	}
}

func TestRender(t *testing.T) {
	fsys := levelFS(map[int]string{1: levelWith(decoyLine)})
	g := New(WithConfig(config.DefaultGalagaConfig()), WithAssets(fsys), WithLogger(quietLogger()), WithScoreStore(&memStore{score: 300}))
	g.Reset(testRuntime())
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if out := screen.String(); !strings.Contains(out, "Press SPACE to start") || !strings.Contains(out, "High Score: 300") {
		t.Errorf("title screen missing text:\n%s", out)
	}

	g.Step(core.FrameOf(core.ActionFire))
	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"Score: 0", "Lives: 3", "Level: 1", "High Score: 300"} {
		if !strings.Contains(out, want) {
			t.Errorf("HUD missing %q", want)
		}
	}

	for rep := 0; rep < 3; rep++ {
		shootPlayer(g)
	}
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over overlay missing")
	}
}

func TestShipSpriteFromConfig(t *testing.T) {
	fsys := levelFS(map[int]string{1: levelWith(decoyLine)})
	fsys["sprites/hero.spr"] = &fstest.MapFile{Data: []byte("RRRRR\n")}

	tests := []struct {
		name      string
		sprite    string
		wantWidth int
	}{
		{"configured", "hero.spr", 5},
		{"empty falls back", "", 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultGalagaConfig()
			cfg.Player.Sprite = tc.sprite
			g := newTestGame(cfg, fsys, neverFire, &memStore{})

			if got := g.sprites.Get(g.shipSprite).Width(); got != tc.wantWidth {
				t.Errorf("ship sprite width = %d, expected %d", got, tc.wantWidth)
			}
		})
	}
}

func TestNonFiniteEnemyDoesNotBlockLevel(t *testing.T) {
	cfg := config.DefaultGalagaConfig()
	cfg.Levels.Count = 1
	fsys := levelFS(map[int]string{1: levelWith("bee 0.9 NaN 0.05 10 0.01\n")})
	g := newTestGame(cfg, fsys, neverFire, &memStore{})

	g.Step(idle())
	if g.Phase() != StateVictory {
		t.Errorf("a level whose only enemy line is malformed should be won, state = %s", g.Phase())
	}
}
