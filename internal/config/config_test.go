package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, expected nil", err)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	def := DefaultConfig()

	if cfg.Board.Size != def.Board.Size {
		t.Errorf("Board.Size = %d, expected %d", cfg.Board.Size, def.Board.Size)
	}
	if !slices.Equal(cfg.Fleet.Lengths, def.Fleet.Lengths) {
		t.Errorf("Fleet.Lengths = %v, expected %v", cfg.Fleet.Lengths, def.Fleet.Lengths)
	}
	if cfg.Placement != def.Placement {
		t.Errorf("Placement = %+v, expected %+v", cfg.Placement, def.Placement)
	}
	if cfg.Markers != def.Markers {
		t.Errorf("Markers = %+v, expected %+v", cfg.Markers, def.Markers)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"default", func(*Config) {}, true},
		{"size zero", func(c *Config) { c.Board.Size = 0 }, false},
		{"size too large", func(c *Config) { c.Board.Size = MaxBoardSize + 1 }, false},
		{"size max", func(c *Config) { c.Board.Size = MaxBoardSize }, true},
		{"empty fleet", func(c *Config) { c.Fleet.Lengths = nil }, false},
		{"vessel longer than board", func(c *Config) { c.Fleet.Lengths = []int{7} }, false},
		{"zero length vessel", func(c *Config) { c.Fleet.Lengths = []int{0} }, false},
		{"no attempts", func(c *Config) { c.Placement.AttemptsPerVessel = 0 }, false},
		{"no rebuilds", func(c *Config) { c.Placement.MaxRebuilds = 0 }, false},
		{"negative delay", func(c *Config) { c.Computer.MoveDelayMS = -1 }, false},
		{"same names", func(c *Config) { c.Players.Computer = c.Players.Human }, false},
		{"empty name", func(c *Config) { c.Players.Human = "" }, false},
		{"multi-rune marker", func(c *Config) { c.Markers.Hit = "XX" }, false},
		{"empty marker", func(c *Config) { c.Markers.Miss = "" }, false},
		{"duplicate markers", func(c *Config) { c.Markers.Miss = c.Markers.Hit }, false},
		{"unicode marker", func(c *Config) { c.Markers.Hit = "✕" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err == nil) != tt.valid {
				t.Errorf("Validate() = %v, expected valid=%v", err, tt.valid)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("board:\n  size: 8\nfleet:\n  lengths: [4, 3]\nplayers:\n  human: Alice\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Board.Size != 8 {
		t.Errorf("Board.Size = %d, expected 8", cfg.Board.Size)
	}
	if !slices.Equal(cfg.Fleet.Lengths, []int{4, 3}) {
		t.Errorf("Fleet.Lengths = %v, expected [4 3]", cfg.Fleet.Lengths)
	}
	if cfg.Players.Human != "Alice" {
		t.Errorf("Players.Human = %q, expected Alice", cfg.Players.Human)
	}
	// Unset sections keep defaults
	if cfg.Players.Computer != "AI" {
		t.Errorf("Players.Computer = %q, expected AI", cfg.Players.Computer)
	}
	if cfg.Placement.AttemptsPerVessel != 2000 {
		t.Errorf("Placement.AttemptsPerVessel = %d, expected 2000", cfg.Placement.AttemptsPerVessel)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load(missing) should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [unclosed"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load(malformed) should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("board:\n  size: 2\nfleet:\n  lengths: [3]\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := Load(invalid); err == nil {
		t.Error("Load(invalid) should fail validation")
	}
}

func TestSetupCopiesFleet(t *testing.T) {
	cfg := DefaultConfig()
	setup := cfg.Setup()

	if setup.Size != 6 || setup.AttemptsPerVessel != 2000 || setup.MaxRebuilds != 100 {
		t.Errorf("Setup() = %+v", setup)
	}
	setup.Fleet[0] = 99
	if cfg.Fleet.Lengths[0] == 99 {
		t.Error("Setup() shares the fleet slice with the config")
	}
}

func TestRenderMarkers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Markers.Hit = "✕"
	m := cfg.RenderMarkers()

	if m.Hit != '✕' {
		t.Errorf("Hit = %q, expected ✕", m.Hit)
	}
	if m.Ship != '■' {
		t.Errorf("Ship = %q, expected ■", m.Ship)
	}
}
