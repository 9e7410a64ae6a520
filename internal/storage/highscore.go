package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/quasilyte/gdata/v2"
)

// TextFile keeps the high score as a decimal integer on the first line of a
// plain text file. A missing file reads as 0.
type TextFile struct {
	Path string
}

// NewTextFile returns a text-file backend, expanding a leading ~.
func NewTextFile(path string) (*TextFile, error) {
	p, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}
	return &TextFile{Path: p}, nil
}

func (f *TextFile) LoadHighScore() (int, error) {
	file, err := os.Open(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot open high score file: %w", err)
	}
	defer file.Close()

	sc := bufio.NewScanner(file)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, fmt.Errorf("storage: cannot read high score file: %w", err)
		}
		return 0, nil
	}
	score, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil {
		return 0, fmt.Errorf("storage: malformed high score %q: %w", sc.Text(), err)
	}
	return score, nil
}

func (f *TextFile) SaveHighScore(score int) error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory: %w", err)
	}
	if err := os.WriteFile(f.Path, []byte(strconv.Itoa(score)+"\n"), 0o644); err != nil {
		return fmt.Errorf("storage: cannot write high score file: %w", err)
	}
	return nil
}

const (
	saveObject   = "highscore"
	saveProperty = "best"
)

// SaveData keeps the high score in the platform's per-user game data
// directory. With a nil manager it runs degraded: loads return 0 and
// saves are dropped.
type SaveData struct {
	manager *gdata.Manager
}

// OpenSaveData opens the data directory for appName. When the platform
// has no usable data directory the returned backend is degraded and the
// error says why.
func OpenSaveData(appName string) (*SaveData, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return &SaveData{}, fmt.Errorf("storage: cannot open save data: %w", err)
	}
	return &SaveData{manager: m}, nil
}

// Degraded reports whether scores are not being persisted.
func (d *SaveData) Degraded() bool {
	return d.manager == nil
}

func (d *SaveData) LoadHighScore() (int, error) {
	if d.manager == nil || !d.manager.ObjectPropExists(saveObject, saveProperty) {
		return 0, nil
	}
	data, err := d.manager.LoadObjectProp(saveObject, saveProperty)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot load save data: %w", err)
	}
	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("storage: malformed saved score: %w", err)
	}
	return score, nil
}

func (d *SaveData) SaveHighScore(score int) error {
	if d.manager == nil {
		return nil
	}
	if err := d.manager.SaveObjectProp(saveObject, saveProperty, []byte(strconv.Itoa(score))); err != nil {
		return fmt.Errorf("storage: cannot write save data: %w", err)
	}
	return nil
}
