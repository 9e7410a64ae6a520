package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-galaga/internal/games/galaga"
	"github.com/vovakirdan/tui-galaga/internal/platform/tui"
	"github.com/vovakirdan/tui-galaga/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
	flagAll         bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded runs",
	Long: `Display the best recorded runs from the scores database.

Examples:
  galaga scores
  galaga scores --limit 25
  galaga scores --all
  galaga scores --interactive
  galaga scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "Show every recorded run (ignores --limit)")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs and the stored best score")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in a scrollable table")
	scoresCmd.MarkFlagsMutuallyExclusive("clear", "interactive")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(galaga.GameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Scores cleared.")
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, galaga.GameID, "Galaga", width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := printScores(os.Stdout, store, flagAll, flagLimit); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

// printScores writes the run table; all lists every run instead of the top limit.
func printScores(w io.Writer, store *storage.Store, all bool, limit int) error {
	var (
		scores []storage.RunEntry
		err    error
	)
	if all {
		scores, err = store.AllScores(galaga.GameID)
	} else {
		scores, err = store.TopScores(galaga.GameID, limit)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "High Scores - Galaga")
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'galaga play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-10s  %-5s  %-8s  %s\n", "Rank", "Score", "Level", "Result", "Date")
	fmt.Fprintf(w, "  %-4s  %-10s  %-5s  %-8s  %s\n", "----", "-----", "-----", "------", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(w, "  %-4d  %-10d  %-5d  %-8s  %s\n", i+1, entry.Score, entry.Level, entry.Outcome, dateStr)
	}

	fmt.Fprintln(w)
	if stats, err := store.GetGameStats(galaga.GameID); err == nil {
		fmt.Fprintf(w, "Runs: %d  Victories: %d  Average: %.0f\n", stats.GamesCount, stats.Victories, stats.AvgScore)
	}
	if best, err := store.HighScore(galaga.GameID); err == nil {
		fmt.Fprintf(w, "Best: %d\n", best)
	}
	return nil
}
