package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-galaga/internal/games/galaga"
	"github.com/vovakirdan/tui-galaga/internal/platform/tui"
	"github.com/vovakirdan/tui-galaga/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty or browse scores from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a game ends you return to the menu to play again.

Examples:
  galaga menu
  galaga menu --fps 60
  galaga menu --data ./mydata`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDataDir, "data", "", "Directory with levels/ and sprites/ (default: built-in)")
	menuCmd.Flags().StringVar(&flagHighScore, "highscore", "", "High score backend: file, savedata, sqlite (default from config)")
}

// currentHighScore reads the best score from the configured backend.
// Failures read as 0; the game itself reports them.
func currentHighScore() int {
	cfg, err := loadGameConfig("")
	if err != nil {
		return 0
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		store = nil
	} else {
		defer store.Close()
	}

	backend := cfg.HighScore.Backend
	if flagHighScore != "" {
		backend = flagHighScore
	}
	scores, err := openScoreStore(backend, cfg, store, log.New(io.Discard))
	if err != nil {
		return 0
	}
	best, err := scores.LoadHighScore()
	if err != nil {
		return 0
	}
	return best
}

func runMenu(_ *cobra.Command, _ []string) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	for {
		result, err := tui.RunMenu("G A L A G A", tui.DefaultMenuItems(), currentHighScore(), width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if result.Quit {
			return
		}
		width, height = result.Width, result.Height

		if result.Item.Scores {
			store, err := storage.Open(flagDBPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
				continue
			}
			err = tui.RunScoreboard(store, galaga.GameID, "Galaga", width, height)
			store.Close()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			continue
		}

		if err := playSession(result.Item.Difficulty, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
}
