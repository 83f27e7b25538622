package config

import (
	_ "embed"
)

//go:embed defaults/seabattle.yaml
var defaultYAML []byte

// DefaultConfig returns the classic 6×6 configuration.
func DefaultConfig() Config {
	return Config{
		Board: BoardConfig{
			Size: 6,
		},
		Fleet: FleetConfig{
			Lengths: []int{3, 2, 2, 1, 1, 1, 1},
		},
		Placement: PlacementConfig{
			AttemptsPerVessel: 2000,
			MaxRebuilds:       100,
		},
		Players: PlayersConfig{
			Human:    "Player",
			Computer: "AI",
		},
		Computer: ComputerConfig{
			MoveDelayMS: 600,
		},
		Markers: MarkersConfig{
			Empty:  "O",
			Ship:   "■",
			Hit:    "X",
			Miss:   "T",
			Buffer: ".",
		},
	}
}
