package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/seabattle/internal/platform/tui"
	"github.com/vovakirdan/seabattle/internal/storage"
)

var (
	flagLimit      int
	flagHistoryTUI bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent matches and standings",
	Long: `Display the most recent finished matches and the win/loss standings
of every player name in the history database.

Examples:
  seabattle history
  seabattle history --limit 5
  seabattle history --tui`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of recent matches to show")
	historyCmd.Flags().BoolVar(&flagHistoryTUI, "tui", false, "Browse the history in the terminal UI")
}

func runHistory(_ *cobra.Command, _ []string) {
	// Open match history
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryTUI {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunHistory(store, flagLimit, width, height); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	matches, err := store.RecentMatches(flagLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		os.Exit(1)
	}
	standings, err := store.Standings()
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving standings: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent matches")
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Play 'seabattle play' to start your record!")
		return
	}

	// Print header
	fmt.Printf("  %-16s  %-14s  %-14s  %5s  %8s  %s\n", "Date", "Winner", "Loser", "Turns", "Accuracy", "Mode")
	fmt.Printf("  %-16s  %-14s  %-14s  %5s  %8s  %s\n", "----", "------", "-----", "-----", "--------", "----")

	for _, r := range matches {
		dateStr := r.CreatedAt.Local().Format("2006-01-02 15:04")
		fmt.Printf("  %-16s  %-14s  %-14s  %5d  %7.0f%%  %s\n",
			dateStr, r.Winner, r.Loser, r.Turns, r.Accuracy()*100, r.Mode)
	}

	fmt.Println()
	fmt.Println("Standings")
	fmt.Println()
	fmt.Printf("  %-4s  %-14s  %4s  %6s\n", "Rank", "Player", "Wins", "Losses")
	fmt.Printf("  %-4s  %-14s  %4s  %6s\n", "----", "------", "----", "------")
	for i, s := range standings {
		fmt.Printf("  %-4d  %-14s  %4d  %6d\n", i+1, s.Name, s.Wins, s.Losses)
	}
}
