package galaga

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"path"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// Level is an immutable wave description loaded from a level file.
type Level struct {
	Name        string
	ScrollSpeed float64
	TimeLimit   int // Seconds; -1 means unlimited
	TargetScore int
	Skipped     int // Enemy lines rejected while parsing

	enemies []Enemy
}

func emptyLevel() *Level {
	return &Level{TimeLimit: -1}
}

// Enemies returns a fresh copy of the level's enemies.
func (l *Level) Enemies() []Enemy {
	return slices.Clone(l.enemies)
}

// EnemyCount returns the number of enemies in the wave.
func (l *Level) EnemyCount() int {
	return len(l.enemies)
}

// LevelFile returns the file name of level n.
func LevelFile(n int) string {
	return fmt.Sprintf("level%d.lvl", n)
}

// LevelLoader reads level files from a directory of an fs.FS.
//
// Format: the first non-empty line is "<name> <scrollSpeed> <timeLimit> <targetScore>",
// every further non-empty line is "<type> <x> <y> <size> <scoreValue> <speed>".
type LevelLoader struct {
	fsys   fs.FS
	dir    string
	rules  *Rules
	rng    Random
	logger *log.Logger
}

// NewLevelLoader creates a loader. Enemy cooldowns are drawn from rng.
func NewLevelLoader(fsys fs.FS, dir string, r *Rules, rng Random, logger *log.Logger) *LevelLoader {
	return &LevelLoader{
		fsys:   fsys,
		dir:    dir,
		rules:  r,
		rng:    rng,
		logger: loggerOrDefault(logger),
	}
}

// Load reads level number n.
func (l *LevelLoader) Load(n int) *Level {
	return l.LoadFile(path.Join(l.dir, LevelFile(n)))
}

// LoadFile reads a level file. A missing or unreadable file yields an empty level.
func (l *LevelLoader) LoadFile(name string) *Level {
	f, err := l.fsys.Open(name)
	if err != nil {
		l.logger.Warn("could not open level", "path", name, "error", err)
		return emptyLevel()
	}
	defer f.Close()
	return l.Parse(f, name)
}

// Scan returns how many consecutive level files exist, starting at level 1.
func (l *LevelLoader) Scan() int {
	n := 0
	for {
		_, err := fs.Stat(l.fsys, path.Join(l.dir, LevelFile(n+1)))
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				l.logger.Warn("could not stat level", "level", n+1, "error", err)
			}
			return n
		}
		n++
	}
}

// Parse reads a level from r. Malformed lines are logged and skipped;
// source names the input in log entries.
func (l *LevelLoader) Parse(r io.Reader, source string) *Level {
	lvl := emptyLevel()
	sc := bufio.NewScanner(r)

	lineNo := 0
	header := false
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if !header {
			l.parseHeader(lvl, line, source, lineNo)
			header = true
			continue
		}
		if e, ok := l.parseEnemy(line, source, lineNo); ok {
			lvl.enemies = append(lvl.enemies, e)
		} else {
			lvl.Skipped++
		}
	}
	if err := sc.Err(); err != nil {
		l.logger.Warn("level read stopped early", "path", source, "line", lineNo, "error", err)
	}
	return lvl
}

func (l *LevelLoader) parseHeader(lvl *Level, line, source string, lineNo int) {
	fields := strings.Fields(line)
	lvl.Name = fields[0]

	if len(fields) > 1 {
		if v, err := parseFinite(fields[1]); err == nil {
			lvl.ScrollSpeed = v
		} else {
			l.logger.Warn("bad scroll speed in level header", "path", source, "line", lineNo, "error", err)
		}
	}
	if len(fields) > 2 {
		if v, err := strconv.Atoi(fields[2]); err == nil {
			lvl.TimeLimit = v
		} else {
			l.logger.Warn("bad time limit in level header", "path", source, "line", lineNo, "error", err)
		}
	}
	if len(fields) > 3 {
		if v, err := strconv.Atoi(fields[3]); err == nil {
			lvl.TargetScore = v
		} else {
			l.logger.Warn("bad target score in level header", "path", source, "line", lineNo, "error", err)
		}
	}
}

func (l *LevelLoader) parseEnemy(line, source string, lineNo int) (Enemy, bool) {
	fields := strings.Fields(line)
	if len(fields) < 6 {
		l.logger.Debug("ignoring short level line", "path", source, "line", lineNo)
		return Enemy{}, false
	}

	kind, ok := ParseKind(fields[0])
	if !ok {
		l.logger.Warn("unknown enemy type", "path", source, "line", lineNo, "type", fields[0])
		return Enemy{}, false
	}

	x, errX := parseFinite(fields[1])
	y, errY := parseFinite(fields[2])
	size, errSize := parseFinite(fields[3])
	score, errScore := strconv.Atoi(fields[4])
	speed, errSpeed := parseFinite(fields[5])
	if err := errors.Join(errX, errY, errSize, errScore, errSpeed); err != nil {
		l.logger.Warn("skipping malformed enemy", "path", source, "line", lineNo, "error", err)
		return Enemy{}, false
	}

	return NewEnemy(kind, x, y, size, score, speed, l.rules, l.rng), true
}

// parseFinite parses a float and rejects NaN and infinities, which would
// leave an enemy that can never be hit or leave the screen.
func parseFinite(field string) (float64, error) {
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite number %q", field)
	}
	return v, nil
}
