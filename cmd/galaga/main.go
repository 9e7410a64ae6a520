// galaga is a terminal arcade shooter.
//
// Usage:
//
//	galaga play     - Play the game
//	galaga menu     - Pick a difficulty or browse scores from a menu
//	galaga scores   - Show recorded runs
//	galaga levels   - List and validate level files
//	galaga serve    - Start SSH server for remote play
//
// Global flags (also read from GALAGA_* environment variables):
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.galaga/scores.db)
//	--log <path>    - Set log file for play mode (default: ~/.galaga/galaga.log)
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vovakirdan/tui-galaga/internal/core"
	_ "github.com/vovakirdan/tui-galaga/internal/games/galaga" // registers the game
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
)

// env maps flags to GALAGA_* variables; a flag set on the command line wins.
var env = viper.New()

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "galaga",
	Short: "Galaga - a fixed-timestep arcade shooter for the terminal",
	Long: `Galaga is a terminal arcade shooter: waves of bees, butterflies and
moths descend while you dodge their fire and shoot them down.

Available commands:
  play     - Play the game
  menu     - Interactive menu
  scores   - View recorded runs
  levels   - List and validate level files
  serve    - Start SSH server for remote play

Every flag can also be set through the environment, for example
GALAGA_FPS=60 or GALAGA_HIGHSCORE=sqlite.

Examples:
  galaga play
  galaga play --difficulty hard
  galaga scores --interactive
  galaga serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return applyEnv(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultTickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.galaga/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.galaga/galaga.log", "Log file used while playing")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(serveCmd)
}

// applyEnv copies GALAGA_* values into every flag the user did not set.
func applyEnv(cmd *cobra.Command) error {
	env.SetEnvPrefix("GALAGA")
	env.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	env.AutomaticEnv()

	if err := env.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("cannot bind flags: %w", err)
	}

	var firstErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed || firstErr != nil || !env.IsSet(f.Name) {
			return
		}
		val := env.GetString(f.Name)
		if val == f.Value.String() {
			return
		}
		if err := f.Value.Set(val); err != nil {
			firstErr = fmt.Errorf("invalid GALAGA_%s: %w", strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_")), err)
		}
	})
	return firstErr
}

// runtimeConfig builds the simulation settings for a screen of w x h cells.
func runtimeConfig(w, h int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  w,
		ScreenH:  h,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
