package galaga

import (
	"strings"
	"testing"
	"testing/fstest"
)

const sampleLevel = `
Alpha 0.01 60 500

bee 0.1 0.8 0.05 50 0.002
BUTTERFLY 0.3 0.8 0.05 80 0.003
moth 0.5 0.9
wasp 0.5 0.9 0.05 10 0.001
moth 0.7 zero 0.05 100 0.001
moth   0.9   0.9   0.06   150   0.004   extra
`

func newTestLoader(fsys fstest.MapFS) *LevelLoader {
	r := DefaultRules()
	return NewLevelLoader(fsys, LevelDir, &r, neverFire, quietLogger())
}

func TestParseLevel(t *testing.T) {
	l := newTestLoader(nil)
	lvl := l.Parse(strings.NewReader(sampleLevel), "sample")

	if lvl.Name != "Alpha" || lvl.ScrollSpeed != 0.01 || lvl.TimeLimit != 60 || lvl.TargetScore != 500 {
		t.Errorf("header = %q %f %d %d", lvl.Name, lvl.ScrollSpeed, lvl.TimeLimit, lvl.TargetScore)
	}
	if lvl.EnemyCount() != 3 {
		t.Fatalf("EnemyCount() = %d, expected 3", lvl.EnemyCount())
	}
	if lvl.Skipped != 3 {
		t.Errorf("Skipped = %d, expected 3", lvl.Skipped)
	}

	enemies := lvl.Enemies()
	expected := []struct {
		kind  Kind
		x     float64
		score int
	}{
		{KindBee, 0.1, 50},
		{KindButterfly, 0.3, 80},
		{KindMoth, 0.9, 150},
	}
	for i, want := range expected {
		e := enemies[i]
		if e.Kind != want.kind || e.X != want.x || e.InitialX != want.x || e.ScoreValue != want.score {
			t.Errorf("enemy %d = %+v, expected %v at x=%f worth %d", i, e, want.kind, want.x, want.score)
		}
	}
	if enemies[2].Length != 0.06 || enemies[2].Speed != 0.004 {
		t.Errorf("moth size/speed = %f/%f", enemies[2].Length, enemies[2].Speed)
	}
}

func TestParseLevelHeaderOnly(t *testing.T) {
	l := newTestLoader(nil)
	lvl := l.Parse(strings.NewReader("Lonely\n"), "lonely")

	if lvl.Name != "Lonely" || lvl.TimeLimit != -1 || lvl.EnemyCount() != 0 {
		t.Errorf("level = %+v", lvl)
	}
}

func TestLevelEnemiesIsACopy(t *testing.T) {
	l := newTestLoader(nil)
	lvl := l.Parse(strings.NewReader(sampleLevel), "sample")

	first := lvl.Enemies()
	first[0].Active = false
	first[0].Y = -1

	second := lvl.Enemies()
	if !second[0].Active || second[0].Y != 0.8 {
		t.Error("mutating a returned enemy must not affect the level")
	}
}

func TestLoadMissingLevel(t *testing.T) {
	l := newTestLoader(fstest.MapFS{})
	lvl := l.Load(3)

	if lvl.EnemyCount() != 0 || lvl.TimeLimit != -1 || lvl.Name != "" {
		t.Errorf("missing level should be empty, got %+v", lvl)
	}
}

func TestLoadLevelFromFS(t *testing.T) {
	l := newTestLoader(levelFS(map[int]string{2: "Two 0 -1 0\nbee 0.5 0.5 0.05 10 0.001\n"}))
	lvl := l.Load(2)

	if lvl.Name != "Two" || lvl.EnemyCount() != 1 {
		t.Errorf("Load(2) = %+v", lvl)
	}
}

func TestScanLevels(t *testing.T) {
	l := newTestLoader(levelFS(map[int]string{1: "A", 2: "B", 4: "D"}))
	if got := l.Scan(); got != 2 {
		t.Errorf("Scan() = %d, expected 2 (level3 is missing)", got)
	}

	if got := newTestLoader(fstest.MapFS{}).Scan(); got != 0 {
		t.Errorf("Scan() on empty FS = %d, expected 0", got)
	}
}

func TestParseLevelRejectsNonFiniteNumbers(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"NaN y", "bee 0.9 NaN 0.05 10 0.01"},
		{"infinite x", "bee +Inf 0.8 0.05 10 0.01"},
		{"NaN size", "moth 0.5 0.8 nan 10 0.01"},
		{"infinite speed", "butterfly 0.5 0.8 0.05 10 -Inf"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := newTestLoader(nil)
			lvl := l.Parse(strings.NewReader("Bad 0 -1 0\n"+tc.line+"\n"), "bad")

			if lvl.EnemyCount() != 0 || lvl.Skipped != 1 {
				t.Errorf("EnemyCount/Skipped = %d/%d, expected the line to be skipped", lvl.EnemyCount(), lvl.Skipped)
			}
		})
	}
}

func TestParseLevelNonFiniteScrollSpeed(t *testing.T) {
	l := newTestLoader(nil)
	lvl := l.Parse(strings.NewReader("Drift NaN 30 100\n"), "drift")

	if lvl.ScrollSpeed != 0 {
		t.Errorf("ScrollSpeed = %f, expected the default 0", lvl.ScrollSpeed)
	}
	if lvl.TimeLimit != 30 || lvl.TargetScore != 100 {
		t.Errorf("rest of the header should still parse, got %d %d", lvl.TimeLimit, lvl.TargetScore)
	}
}
