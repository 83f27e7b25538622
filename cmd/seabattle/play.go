package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/seabattle/internal/config"
	"github.com/vovakirdan/seabattle/internal/match"
	"github.com/vovakirdan/seabattle/internal/platform/console"
	"github.com/vovakirdan/seabattle/internal/platform/tui"
	"github.com/vovakirdan/seabattle/internal/storage"
)

var (
	flagConfig string
	flagSize   int
	flagTUI    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play against the computer",
	Long: `Start a match against the computer. Both fleets are placed at random.

In the console, enter shots as "row column" with 1-based numbers, e.g. 3 4.
A hit or a sunk vessel gives you another shot; a miss passes the turn.

TUI controls (--tui):
  Arrows/hjkl  - Move the cursor on the enemy grid
  Enter/Space  - Fire
  N            - New game (after the match)
  Tab          - Match history
  Q/Ctrl+C     - Quit

Examples:
  seabattle play
  seabattle play --tui
  seabattle play --size 8
  seabattle play --config ./my-fleet.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Board size override (1-26)")
	playCmd.Flags().BoolVar(&flagTUI, "tui", false, "Play in the full-screen terminal UI")
}

// loadGameConfig loads the config file and applies flag overrides.
func loadGameConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagSize > 0 {
		cfg.Board.Size = flagSize
	}
	return cfg, cfg.Validate()
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Open match history
	store := openStore()

	var runErr error
	if flagTUI {
		runErr = playTUI(cfg, store)
	} else {
		runErr = playConsole(cfg, store)
	}

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

func playTUI(cfg config.Config, store *storage.Store) error {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return tui.Run(store, tui.Options{
		Config: cfg,
		Seed:   seed(),
		Mode:   match.ModeTUI,
		Width:  width,
		Height: height,
	})
}

func playConsole(cfg config.Config, store *storage.Store) error {
	rng := rand.New(rand.NewSource(seed()))
	con := console.New(os.Stdin, os.Stdout, cfg.RenderMarkers())

	opts := []match.Option{
		match.WithMode(match.ModeConsole),
		match.WithReporter(con),
	}
	if store != nil {
		opts = append(opts, match.WithResultSaver(store))
	}

	m, err := match.Build(rng, cfg.Setup(),
		match.PlayerSpec{
			Name:   cfg.Players.Human,
			Source: match.NewHumanSource(con, cfg.Board.Size, con.InputRejected),
		},
		match.PlayerSpec{
			Name:   cfg.Players.Computer,
			Source: match.NewRandomSource(rng, cfg.Board.Size),
			Hidden: true,
		},
		opts...,
	)
	if err != nil {
		return err
	}

	if _, err := con.Play(m); err != nil {
		// Closed stdin ends the game quietly
		if errors.Is(err, io.EOF) {
			fmt.Println()
			fmt.Println("Input closed, match abandoned.")
			return nil
		}
		return err
	}
	return nil
}
