package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-galaga/internal/assets"
	"github.com/vovakirdan/tui-galaga/internal/games/galaga"
	"github.com/vovakirdan/tui-galaga/internal/platform/tui"
	"github.com/vovakirdan/tui-galaga/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Galaga SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own single-player game. All sessions share
the scores database, so the high score is server-wide.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.galaga/host_key

Examples:
  galaga serve                           # Listen on :23234 with auto-generated key
  galaga serve --ssh :2222               # Listen on port 2222
  galaga serve --host-key ./my_host_key  # Use specific host key
  galaga serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	addGameFlags(serveCmd)
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "galaga-ssh",
	})

	cfg, err := loadGameConfig(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage
		store = nil
	}

	fsys, _ := assets.Resolve(flagDataDir)
	opts := []galaga.Option{
		galaga.WithConfig(cfg),
		galaga.WithAssets(fsys),
		galaga.WithLogger(logger),
	}
	if store != nil {
		opts = append(opts, galaga.WithScoreStore(store.ForGame(galaga.GameID)))
	}
	galaga.SetDefaultOptions(opts...)

	serverCfg := tui.DefaultSSHServerConfig()
	serverCfg.Address = flagSSHAddr
	serverCfg.HostKeyPath = flagHostKey
	serverCfg.GameID = galaga.GameID
	serverCfg.TickRate = flagFPS
	serverCfg.HoldMS = cfg.Input.HoldMS
	serverCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute

	server, err := tui.NewSSHServer(serverCfg, store, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Galaga SSH server on %s\n", serverCfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	runErr := server.ListenAndServe()
	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", runErr)
		os.Exit(1)
	}
}
