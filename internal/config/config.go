// Package config provides YAML-based game configuration loading for seabattle.
package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/seabattle/internal/match"
	"github.com/vovakirdan/seabattle/internal/render"
)

// MaxBoardSize bounds the board so row/column labels stay readable.
const MaxBoardSize = 26

// Config contains all configuration for a game of seabattle.
type Config struct {
	Board     BoardConfig     `yaml:"board"`
	Fleet     FleetConfig     `yaml:"fleet"`
	Placement PlacementConfig `yaml:"placement"`
	Players   PlayersConfig   `yaml:"players"`
	Computer  ComputerConfig  `yaml:"computer"`
	Markers   MarkersConfig   `yaml:"markers"`
}

// BoardConfig defines the board dimensions.
type BoardConfig struct {
	Size int `yaml:"size"`
}

// FleetConfig lists the vessel lengths placed on each board.
type FleetConfig struct {
	Lengths []int `yaml:"lengths"`
}

// PlacementConfig bounds random fleet placement.
type PlacementConfig struct {
	AttemptsPerVessel int `yaml:"attempts_per_vessel"`
	MaxRebuilds       int `yaml:"max_rebuilds"` // Whole-board restarts before giving up
}

// PlayersConfig holds display names.
type PlayersConfig struct {
	Human    string `yaml:"human"`
	Computer string `yaml:"computer"`
}

// ComputerConfig tunes the computer opponent's presentation.
type ComputerConfig struct {
	MoveDelayMS int `yaml:"move_delay_ms"` // Pause before each computer shot in the TUI
}

// MarkersConfig holds one-character board markers.
type MarkersConfig struct {
	Empty  string `yaml:"empty"`
	Ship   string `yaml:"ship"`
	Hit    string `yaml:"hit"`
	Miss   string `yaml:"miss"`
	Buffer string `yaml:"buffer"`
}

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	if c.Board.Size < 1 || c.Board.Size > MaxBoardSize {
		return fmt.Errorf("config: board size %d must be between 1 and %d", c.Board.Size, MaxBoardSize)
	}
	if len(c.Fleet.Lengths) == 0 {
		return fmt.Errorf("config: fleet must contain at least one vessel")
	}
	for _, l := range c.Fleet.Lengths {
		if l < 1 || l > c.Board.Size {
			return fmt.Errorf("config: vessel length %d must be between 1 and %d", l, c.Board.Size)
		}
	}
	if c.Placement.AttemptsPerVessel < 1 {
		return fmt.Errorf("config: attempts_per_vessel must be positive")
	}
	if c.Placement.MaxRebuilds < 1 {
		return fmt.Errorf("config: max_rebuilds must be positive")
	}
	if c.Computer.MoveDelayMS < 0 {
		return fmt.Errorf("config: move_delay_ms must not be negative")
	}
	if c.Players.Human == "" || c.Players.Computer == "" {
		return fmt.Errorf("config: player names must not be empty")
	}
	if c.Players.Human == c.Players.Computer {
		return fmt.Errorf("config: player names must differ")
	}

	seen := make(map[rune]string)
	for _, m := range []struct{ name, value string }{
		{"empty", c.Markers.Empty},
		{"ship", c.Markers.Ship},
		{"hit", c.Markers.Hit},
		{"miss", c.Markers.Miss},
		{"buffer", c.Markers.Buffer},
	} {
		if utf8.RuneCountInString(m.value) != 1 {
			return fmt.Errorf("config: marker %q must be a single character", m.name)
		}
		r, _ := utf8.DecodeRuneInString(m.value)
		if prev, dup := seen[r]; dup {
			return fmt.Errorf("config: markers %q and %q are both %q", prev, m.name, m.value)
		}
		seen[r] = m.name
	}
	return nil
}

// Setup converts the board, fleet and placement sections into a match setup.
func (c Config) Setup() match.Setup {
	fleet := make([]int, len(c.Fleet.Lengths))
	copy(fleet, c.Fleet.Lengths)
	return match.Setup{
		Size:              c.Board.Size,
		Fleet:             fleet,
		AttemptsPerVessel: c.Placement.AttemptsPerVessel,
		MaxRebuilds:       c.Placement.MaxRebuilds,
	}
}

// RenderMarkers converts the marker strings into runes.
// Call Validate first; invalid markers fall back to the defaults.
func (c Config) RenderMarkers() render.Markers {
	def := render.DefaultMarkers()
	return render.Markers{
		Empty:  firstRune(c.Markers.Empty, def.Empty),
		Ship:   firstRune(c.Markers.Ship, def.Ship),
		Hit:    firstRune(c.Markers.Hit, def.Hit),
		Miss:   firstRune(c.Markers.Miss, def.Miss),
		Buffer: firstRune(c.Markers.Buffer, def.Buffer),
	}
}

func firstRune(s string, fallback rune) rune {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return fallback
	}
	return r
}
