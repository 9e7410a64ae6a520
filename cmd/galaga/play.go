package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-galaga/internal/assets"
	"github.com/vovakirdan/tui-galaga/internal/config"
	"github.com/vovakirdan/tui-galaga/internal/games/galaga"
	"github.com/vovakirdan/tui-galaga/internal/platform/tui"
	"github.com/vovakirdan/tui-galaga/internal/registry"
	"github.com/vovakirdan/tui-galaga/internal/storage"
)

// High-score backends selectable with --highscore.
const (
	backendFile     = "file"
	backendSaveData = "savedata"
	backendSQLite   = "sqlite"
)

var (
	flagConfig     string
	flagDifficulty string
	flagDataDir    string
	flagHighScore  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game in the current terminal.

Controls:
  Left/Right, A/D  - Move
  Space            - Fire (and start)
  P                - Pause
  R                - Restart (after game over or victory)
  Esc/Q            - Quit
  Ctrl+S           - Screenshot to ~/.galaga/screenshots

Difficulty options:
  easy   - More lives, less enemy fire, fire ramps with score
  normal - Fire ramps with score from 30%
  hard   - Fewer lives, faster reloads, fire ramps from 70%
  fixed  - No progression

High score backends:
  file     - Plain text file (highscore.path in the config)
  savedata - Per-user game data directory
  sqlite   - The scores database (--db)

Examples:
  galaga play
  galaga play --difficulty hard
  galaga play --data ./mydata --highscore sqlite
  galaga play --config ./my-galaga.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().StringVar(&flagHighScore, "highscore", "", "High score backend: file, savedata, sqlite (default from config)")
}

// addGameFlags registers the flags shared by play and serve.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&flagDataDir, "data", "", "Directory with levels/ and sprites/ (default: built-in)")
}

// loadGameConfig reads the YAML config and applies a difficulty preset.
func loadGameConfig(difficulty string) (config.GalagaConfig, error) {
	preset, ok := config.ParsePreset(difficulty)
	if !ok {
		return config.GalagaConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", difficulty)
	}

	cfg, err := config.LoadGalaga(flagConfig)
	if err != nil {
		return config.GalagaConfig{}, err
	}
	config.ApplyGalagaPreset(&cfg, preset)
	return cfg, nil
}

// openFileLogger logs to path so the alternate screen stays clean.
func openFileLogger(path string) (*log.Logger, io.Closer, error) {
	path, err := storage.ExpandHome(path)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "galaga",
	})
	return logger, f, nil
}

// openScoreStore returns the high-score backend named by backend.
func openScoreStore(backend string, cfg config.GalagaConfig, db *storage.Store, logger *log.Logger) (galaga.ScoreStore, error) {
	switch backend {
	case "", backendFile:
		return storage.NewTextFile(cfg.HighScore.Path)
	case backendSaveData:
		sd, err := storage.OpenSaveData(galaga.GameID)
		if sd.Degraded() {
			logger.Warn("high score will not be saved", "error", err)
		}
		return sd, nil
	case backendSQLite:
		if db == nil {
			return nil, fmt.Errorf("highscore backend %q needs the scores database", backend)
		}
		return db.ForGame(galaga.GameID), nil
	default:
		return nil, fmt.Errorf("unknown highscore backend %q", backend)
	}
}

func runPlay(_ *cobra.Command, _ []string) {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	if err := playSession(flagDifficulty, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// playSession runs one game until the player quits.
func playSession(difficulty string, width, height int) error {
	cfg, err := loadGameConfig(difficulty)
	if err != nil {
		return err
	}

	logger, logFile, err := openFileLogger(flagLogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (logging disabled)\n", err)
		logger = log.New(io.Discard)
	} else {
		defer logFile.Close()
	}

	fsys, custom := assets.Resolve(flagDataDir)
	if flagDataDir != "" && !custom {
		fmt.Fprintf(os.Stderr, "Warning: %s has no levels directory, using built-in levels\n", flagDataDir)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	} else {
		defer store.Close()
	}

	backend := cfg.HighScore.Backend
	if flagHighScore != "" {
		backend = flagHighScore
	}
	scores, err := openScoreStore(backend, cfg, store, logger)
	if err != nil {
		return err
	}

	galaga.SetDefaultOptions(
		galaga.WithConfig(cfg),
		galaga.WithAssets(fsys),
		galaga.WithScoreStore(scores),
		galaga.WithLogger(logger),
	)

	game, err := registry.Create(galaga.GameID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	opts := tui.Options{Logger: logger, HoldMS: cfg.Input.HoldMS}
	if store != nil {
		opts.Recorder = store
	}
	logger.Info("starting", "backend", backend, "difficulty", difficulty, "custom_data", custom, "fps", flagFPS)

	if err := tui.Run(game, runtimeConfig(width, height), opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
