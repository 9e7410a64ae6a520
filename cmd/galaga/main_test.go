package main

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-galaga/internal/config"
	"github.com/vovakirdan/tui-galaga/internal/storage"
)

func testCommand(t *testing.T, args ...string) (*cobra.Command, *int, *string) {
	t.Helper()
	var fps int
	var backend string
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().IntVar(&fps, "fps", 30, "")
	cmd.Flags().StringVar(&backend, "high-score", "", "")
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags() failed: %v", err)
	}
	return cmd, &fps, &backend
}

func TestApplyEnvFillsUnsetFlags(t *testing.T) {
	t.Setenv("GALAGA_FPS", "60")
	t.Setenv("GALAGA_HIGH_SCORE", "sqlite")

	cmd, fps, backend := testCommand(t)
	if err := applyEnv(cmd); err != nil {
		t.Fatalf("applyEnv() failed: %v", err)
	}
	if *fps != 60 {
		t.Errorf("fps = %d, expected 60 from the environment", *fps)
	}
	if *backend != "sqlite" {
		t.Errorf("high-score = %q, expected sqlite from the environment", *backend)
	}
}

func TestApplyEnvCommandLineWins(t *testing.T) {
	t.Setenv("GALAGA_FPS", "60")

	cmd, fps, _ := testCommand(t, "--fps=45")
	if err := applyEnv(cmd); err != nil {
		t.Fatalf("applyEnv() failed: %v", err)
	}
	if *fps != 45 {
		t.Errorf("fps = %d, expected the command-line value 45", *fps)
	}
}

func TestApplyEnvRejectsBadValue(t *testing.T) {
	t.Setenv("GALAGA_FPS", "fast")

	cmd, _, _ := testCommand(t)
	if err := applyEnv(cmd); err == nil {
		t.Error("non-numeric GALAGA_FPS should fail")
	}
}

func TestOpenScoreStore(t *testing.T) {
	logger := log.New(io.Discard)
	cfg := config.DefaultGalagaConfig()
	cfg.HighScore.Path = filepath.Join(t.TempDir(), "hs.sc")

	s, err := openScoreStore(backendFile, cfg, nil, logger)
	if err != nil {
		t.Fatalf("file backend failed: %v", err)
	}
	if tf, ok := s.(*storage.TextFile); !ok || tf.Path != cfg.HighScore.Path {
		t.Errorf("file backend = %#v", s)
	}

	if _, err := openScoreStore(backendSQLite, cfg, nil, logger); err == nil {
		t.Error("sqlite backend without a database should fail")
	}

	db, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer db.Close()
	if _, err := openScoreStore(backendSQLite, cfg, db, logger); err != nil {
		t.Errorf("sqlite backend failed: %v", err)
	}

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", home)
	t.Setenv("XDG_CONFIG_HOME", home)
	sd, err := openScoreStore(backendSaveData, cfg, nil, logger)
	if err != nil || sd == nil {
		t.Errorf("savedata backend should always open, degraded or not: %v", err)
	}

	if _, err := openScoreStore("floppy", cfg, nil, logger); err == nil {
		t.Error("unknown backend should fail")
	}
}
