package match

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/seabattle/internal/board"
)

var (
	// ErrFleetPlacement is returned when random placement gives up.
	ErrFleetPlacement = errors.New("could not place the fleet")

	// ErrInvalidSetup is returned for setups no board can satisfy.
	ErrInvalidSetup = errors.New("invalid match setup")
)

// Setup describes the board and fleet of a match.
type Setup struct {
	Size              int
	Fleet             []int // Vessel lengths, placed in order
	AttemptsPerVessel int   // Random origins tried per vessel before a rebuild
	MaxRebuilds       int   // Whole-board rebuilds before ErrFleetPlacement
}

// DefaultFleet returns the classic fleet: one 3, two 2s and four 1s.
func DefaultFleet() []int {
	return []int{3, 2, 2, 1, 1, 1, 1}
}

// DefaultSetup returns the classic 6×6 setup.
func DefaultSetup() Setup {
	return Setup{
		Size:              6,
		Fleet:             DefaultFleet(),
		AttemptsPerVessel: 2000,
		MaxRebuilds:       100,
	}
}

// Validate checks the setup for values no placement could satisfy.
func (s Setup) Validate() error {
	if s.Size < 1 {
		return fmt.Errorf("%w: board size %d", ErrInvalidSetup, s.Size)
	}
	if len(s.Fleet) == 0 {
		return fmt.Errorf("%w: empty fleet", ErrInvalidSetup)
	}
	for _, l := range s.Fleet {
		if l < 1 || l > s.Size {
			return fmt.Errorf("%w: vessel length %d on a %d×%d board", ErrInvalidSetup, l, s.Size, s.Size)
		}
	}
	if s.AttemptsPerVessel < 1 || s.MaxRebuilds < 1 {
		return fmt.Errorf("%w: placement budgets must be positive", ErrInvalidSetup)
	}
	return nil
}

// BuildRandomGrid places the fleet at random origins and orientations.
// A vessel that cannot be placed within AttemptsPerVessel tries discards the
// board and starts over, at most MaxRebuilds times.
func BuildRandomGrid(rng *rand.Rand, setup Setup, hidden bool) (*board.Grid, error) {
	if err := setup.Validate(); err != nil {
		return nil, err
	}

	for rebuild := 0; rebuild < setup.MaxRebuilds; rebuild++ {
		g, ok := placeFleet(rng, setup, hidden)
		if ok {
			g.ClearTransientBlocks()
			return g, nil
		}
		log.Debug("fleet placement stalled, rebuilding board", "rebuild", rebuild+1, "size", setup.Size)
	}
	return nil, fmt.Errorf("%w: %d rebuilds of a %d×%d board", ErrFleetPlacement, setup.MaxRebuilds, setup.Size, setup.Size)
}

// placeFleet makes one pass over the fleet and reports whether every vessel fit.
func placeFleet(rng *rand.Rand, setup Setup, hidden bool) (*board.Grid, bool) {
	g := board.NewGrid(setup.Size, hidden)
	for _, length := range setup.Fleet {
		if !placeVessel(rng, g, length, setup.AttemptsPerVessel) {
			return nil, false
		}
	}
	return g, true
}

func placeVessel(rng *rand.Rand, g *board.Grid, length, attempts int) bool {
	size := g.Size()
	for range attempts {
		origin := board.C(rng.Intn(size), rng.Intn(size))
		orientation := board.Horizontal
		if rng.Intn(2) == 1 {
			orientation = board.Vertical
		}
		v, err := board.NewVessel(length, origin, orientation)
		if err != nil {
			return false
		}
		if g.PlaceVessel(v) == nil {
			return true
		}
	}
	return false
}

// PlayerSpec describes one side handed to Build.
type PlayerSpec struct {
	Name   string
	Source TargetSource // nil when the front end calls Match.Shoot itself
	Hidden bool         // Hide this player's vessels when their grid is drawn
}

// Build places a random fleet for each player and returns a match ready to
// play, first player to move.
func Build(rng *rand.Rand, setup Setup, first, second PlayerSpec, opts ...Option) (*Match, error) {
	firstGrid, err := BuildRandomGrid(rng, setup, first.Hidden)
	if err != nil {
		return nil, fmt.Errorf("match: %s fleet: %w", first.Name, err)
	}
	secondGrid, err := BuildRandomGrid(rng, setup, second.Hidden)
	if err != nil {
		return nil, fmt.Errorf("match: %s fleet: %w", second.Name, err)
	}

	a := NewCombatant(first.Name, firstGrid, secondGrid, first.Source)
	b := NewCombatant(second.Name, secondGrid, firstGrid, second.Source)
	return New(a, b, opts...), nil
}
