package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/seabattle/internal/config"
	"github.com/vovakirdan/seabattle/internal/match"
	"github.com/vovakirdan/seabattle/internal/platform/console"
	"github.com/vovakirdan/seabattle/internal/storage"
)

var flagDelay int

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the computer play against itself",
	Long: `Run a match between two random-firing computer players and print
every shot. Both fleets are shown.

Examples:
  seabattle watch
  seabattle watch --delay 0
  seabattle watch --seed 42`,
	Run: runWatch,
}

func init() {
	watchCmd.Flags().IntVar(&flagDelay, "delay", 300, "Pause between shots in milliseconds")
	watchCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	watchCmd.Flags().IntVar(&flagSize, "size", 0, "Board size override (1-26)")
}

func runWatch(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagDelay < 0 {
		fmt.Fprintln(os.Stderr, "Error: --delay must not be negative")
		os.Exit(1)
	}

	store := openStore()
	runErr := watch(cfg, store)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

func watch(cfg config.Config, store *storage.Store) error {
	rng := rand.New(rand.NewSource(seed()))
	con := console.New(os.Stdin, os.Stdout, cfg.RenderMarkers())
	con.Delay = time.Duration(flagDelay) * time.Millisecond

	opts := []match.Option{
		match.WithMode(match.ModeWatch),
		match.WithReporter(con),
	}
	if store != nil {
		opts = append(opts, match.WithResultSaver(store))
	}

	first, second := cfg.Players.Computer+" 1", cfg.Players.Computer+" 2"
	m, err := match.Build(rng, cfg.Setup(),
		match.PlayerSpec{Name: first, Source: match.NewRandomSource(rng, cfg.Board.Size)},
		match.PlayerSpec{Name: second, Source: match.NewRandomSource(rng, cfg.Board.Size)},
		opts...,
	)
	if err != nil {
		return err
	}

	_, err = con.Play(m)
	return err
}
