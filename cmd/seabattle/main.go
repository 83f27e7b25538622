// seabattle is a console battleship game against a random-firing computer.
//
// Usage:
//
//	seabattle play           - Play against the computer
//	seabattle watch          - Watch the computer play itself
//	seabattle history        - Show recent matches and standings
//	seabattle serve          - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible fleets and shots
//	--db <path>          - Set database path (default: ~/.seabattle/seabattle.db)
//	--log-level <level>  - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/seabattle/internal/storage"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "seabattle",
	Short: "Sea Battle - sink the computer's fleet in your terminal",
	Long: `Sea Battle is the classic battleship game played in the terminal.
Both fleets are placed at random; shoot by entering a row and a column.

Available commands:
  play     - Play against the computer
  watch    - Watch two computer players
  history  - View recent matches and standings
  serve    - Start SSH server for remote play

Examples:
  seabattle play
  seabattle play --tui
  seabattle watch --delay 200
  seabattle history
  seabattle serve --ssh :2222`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return setupLogger(flagLogLevel)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to match history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// setupLogger installs the process-wide logger on stderr.
func setupLogger(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	log.SetDefault(log.NewWithOptions(os.Stderr, log.Options{
		Level:           lvl,
		ReportTimestamp: lvl == log.DebugLevel,
		Prefix:          "seabattle",
	}))
	return nil
}

// seed returns the --seed value, or a time-based seed when it is unset.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// openStore opens the history database. Games still work without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		return nil
	}
	return store
}
