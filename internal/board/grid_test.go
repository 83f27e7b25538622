package board

import (
	"errors"
	"slices"
	"testing"
)

// mustVessel builds a vessel or fails the test.
func mustVessel(t *testing.T, length int, origin Coord, o Orientation) *Vessel {
	t.Helper()
	v, err := NewVessel(length, origin, o)
	if err != nil {
		t.Fatalf("NewVessel() failed: %v", err)
	}
	return v
}

// mustPlace places a vessel or fails the test.
func mustPlace(t *testing.T, g *Grid, length int, origin Coord, o Orientation) *Vessel {
	t.Helper()
	v := mustVessel(t, length, origin, o)
	if err := g.PlaceVessel(v); err != nil {
		t.Fatalf("PlaceVessel(%d at %v %v) failed: %v", length, origin, o, err)
	}
	return v
}

func TestGridIsOutOfBounds(t *testing.T) {
	g := NewGrid(6, false)

	for r := range 6 {
		for c := range 6 {
			if g.IsOutOfBounds(C(r, c)) {
				t.Errorf("IsOutOfBounds(%v) = true, expected false", C(r, c))
			}
		}
	}

	outside := []Coord{C(-1, 0), C(0, -1), C(6, 0), C(0, 6), C(6, 6), C(-1, -1), C(100, 2)}
	for _, c := range outside {
		if !g.IsOutOfBounds(c) {
			t.Errorf("IsOutOfBounds(%v) = false, expected true", c)
		}
	}
}

func TestPlaceVesselMarksCells(t *testing.T) {
	g := NewGrid(6, false)
	v := mustPlace(t, g, 3, C(2, 1), Horizontal)

	for c := range v.Cells() {
		if g.Cell(c) != CellOccupied {
			t.Errorf("Cell(%v) = %v, expected occupied", c, g.Cell(c))
		}
		if !g.IsBlocked(c) {
			t.Errorf("IsBlocked(%v) = false, expected true", c)
		}
	}

	// Buffer cells are blocked but still look empty
	for _, c := range []Coord{C(1, 0), C(1, 4), C(3, 2), C(2, 0), C(2, 4)} {
		if !g.IsBlocked(c) {
			t.Errorf("buffer %v not blocked", c)
		}
		if g.Cell(c) != CellEmpty {
			t.Errorf("buffer Cell(%v) = %v, expected empty", c, g.Cell(c))
		}
	}

	if got := len(g.Vessels()); got != 1 {
		t.Errorf("len(Vessels()) = %d, expected 1", got)
	}
	if got := g.RemainingVesselCount(); got != 1 {
		t.Errorf("RemainingVesselCount() = %d, expected 1", got)
	}
}

func TestPlaceVesselRejections(t *testing.T) {
	tests := []struct {
		name        string
		length      int
		origin      Coord
		orientation Orientation
		expected    error
	}{
		{"runs off the right edge", 3, C(0, 4), Horizontal, ErrOutOfBounds},
		{"runs off the bottom edge", 2, C(5, 5), Vertical, ErrOutOfBounds},
		{"negative origin", 1, C(-1, 0), Horizontal, ErrOutOfBounds},
		{"overlaps existing vessel", 2, C(3, 3), Vertical, ErrOverlap},
		{"touches side", 1, C(3, 4), Horizontal, ErrOverlap},
		{"touches diagonally", 2, C(4, 4), Horizontal, ErrOverlap},
		{"crosses existing vessel", 3, C(1, 3), Vertical, ErrOverlap},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrid(6, false)
			mustPlace(t, g, 1, C(3, 3), Horizontal)
			before := g.Blocked()

			err := g.PlaceVessel(mustVessel(t, tc.length, tc.origin, tc.orientation))
			if !errors.Is(err, tc.expected) {
				t.Fatalf("PlaceVessel() error = %v, expected %v", err, tc.expected)
			}

			var perr *PlacementError
			if !errors.As(err, &perr) {
				t.Errorf("PlaceVessel() error %T is not *PlacementError", err)
			}

			// No partial writes
			if after := g.Blocked(); !slices.Equal(before, after) {
				t.Errorf("Blocked() changed after failed placement: %v -> %v", before, after)
			}
			if got := len(g.Vessels()); got != 1 {
				t.Errorf("len(Vessels()) = %d, expected 1", got)
			}
			for r := range 6 {
				for c := range 6 {
					want := CellEmpty
					if r == 3 && c == 3 {
						want = CellOccupied
					}
					if g.Cell(C(r, c)) != want {
						t.Errorf("Cell(%d,%d) = %v, expected %v", r, c, g.Cell(C(r, c)), want)
					}
				}
			}
		})
	}
}

func TestPlaceVesselAdjacentScenario(t *testing.T) {
	g := NewGrid(6, false)
	mustPlace(t, g, 3, C(0, 0), Horizontal)

	err := g.PlaceVessel(mustVessel(t, 2, C(0, 3), Horizontal))
	if !errors.Is(err, ErrOverlap) {
		t.Fatalf("PlaceVessel() error = %v, expected ErrOverlap", err)
	}

	// One gap column is enough
	mustPlace(t, g, 2, C(0, 4), Horizontal)
}

func TestClearTransientBlocks(t *testing.T) {
	g := NewGrid(6, false)
	a := mustPlace(t, g, 3, C(0, 0), Horizontal)
	b := mustPlace(t, g, 2, C(2, 4), Vertical)
	c := mustPlace(t, g, 1, C(5, 0), Horizontal)

	g.ClearTransientBlocks()

	var expected []Coord
	for _, v := range []*Vessel{a, b, c} {
		expected = append(expected, slices.Collect(v.Cells())...)
	}
	slices.SortFunc(expected, func(x, y Coord) int {
		if x.Row != y.Row {
			return x.Row - y.Row
		}
		return x.Col - y.Col
	})

	if got := g.Blocked(); !slices.Equal(got, expected) {
		t.Errorf("Blocked() = %v, expected %v", got, expected)
	}

	// Former buffer cells are now attackable
	if res := g.Attack(C(1, 1)); res != Miss {
		t.Errorf("Attack(1,1) = %v, expected miss", res)
	}
}

func TestClearTransientBlocksKeepsAttacks(t *testing.T) {
	g := NewGrid(6, false)
	mustPlace(t, g, 1, C(0, 0), Horizontal)
	g.ClearTransientBlocks()

	g.Attack(C(4, 4))
	g.ClearTransientBlocks()

	if res := g.Attack(C(4, 4)); res != AlreadyAttacked {
		t.Errorf("Attack() after second clear = %v, expected already attacked", res)
	}
}

func TestAttackSameCellTwice(t *testing.T) {
	tests := []struct {
		name   string
		target Coord
		first  AttackResult
	}{
		{"water", C(5, 5), Miss},
		{"vessel", C(0, 0), Hit},
		{"single-cell vessel", C(3, 3), Sunk},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrid(6, false)
			long := mustPlace(t, g, 2, C(0, 0), Horizontal)
			short := mustPlace(t, g, 1, C(3, 3), Horizontal)
			g.ClearTransientBlocks()

			if res := g.Attack(tc.target); res != tc.first {
				t.Fatalf("first Attack(%v) = %v, expected %v", tc.target, res, tc.first)
			}

			longLeft, shortLeft := long.Remaining(), short.Remaining()
			cell := g.Cell(tc.target)

			if res := g.Attack(tc.target); res != AlreadyAttacked {
				t.Errorf("second Attack(%v) = %v, expected already attacked", tc.target, res)
			}
			if long.Remaining() != longLeft || short.Remaining() != shortLeft {
				t.Error("repeated attack changed vessel state")
			}
			if g.Cell(tc.target) != cell {
				t.Errorf("repeated attack changed cell %v -> %v", cell, g.Cell(tc.target))
			}
		})
	}
}

func TestAttackOutOfBounds(t *testing.T) {
	g := NewGrid(6, false)
	for _, c := range []Coord{C(-1, 0), C(6, 0), C(0, 6)} {
		res := g.Attack(c)
		if res != OutOfBounds {
			t.Errorf("Attack(%v) = %v, expected out of bounds", c, res)
		}
		if !errors.Is(res.Err(), ErrOutOfBounds) {
			t.Errorf("Attack(%v).Err() = %v, expected ErrOutOfBounds", c, res.Err())
		}
	}
	if len(g.Blocked()) != 0 {
		t.Errorf("Blocked() = %v, expected empty", g.Blocked())
	}
}

func TestAttackSinkScenario(t *testing.T) {
	g := NewGrid(6, false)
	v := mustPlace(t, g, 3, C(0, 0), Horizontal)
	g.ClearTransientBlocks()

	steps := []struct {
		target    Coord
		expected  AttackResult
		remaining int
		afloat    int
	}{
		{C(0, 0), Hit, 2, 1},
		{C(0, 0), AlreadyAttacked, 2, 1},
		{C(0, 1), Hit, 1, 1},
		{C(0, 2), Sunk, 0, 0},
	}

	for i, s := range steps {
		res := g.Attack(s.target)
		if res != s.expected {
			t.Errorf("step %d: Attack(%v) = %v, expected %v", i, s.target, res, s.expected)
		}
		if v.Remaining() != s.remaining {
			t.Errorf("step %d: Remaining() = %d, expected %d", i, v.Remaining(), s.remaining)
		}
		if got := g.RemainingVesselCount(); got != s.afloat {
			t.Errorf("step %d: RemainingVesselCount() = %d, expected %d", i, got, s.afloat)
		}
	}

	// Contour is revealed and no longer attackable
	for _, c := range []Coord{C(1, 0), C(1, 1), C(1, 2), C(1, 3), C(0, 3)} {
		if g.Cell(c) != CellBuffer {
			t.Errorf("Cell(%v) = %v, expected buffer", c, g.Cell(c))
		}
		if res := g.Attack(c); res != AlreadyAttacked {
			t.Errorf("Attack(%v) = %v, expected already attacked", c, res)
		}
	}
	if g.Cell(C(2, 0)) != CellEmpty {
		t.Errorf("Cell(2,0) = %v, expected empty", g.Cell(C(2, 0)))
	}
}

func TestAttackSunkReturnedOnce(t *testing.T) {
	g := NewGrid(6, false)
	mustPlace(t, g, 2, C(2, 2), Vertical)
	g.ClearTransientBlocks()

	sunkCount := 0
	for r := range 6 {
		for c := range 6 {
			if g.Attack(C(r, c)) == Sunk {
				sunkCount++
			}
		}
	}
	if sunkCount != 1 {
		t.Errorf("Sunk returned %d times, expected 1", sunkCount)
	}
}

func TestContourKeepsEarlierMisses(t *testing.T) {
	g := NewGrid(6, false)
	mustPlace(t, g, 1, C(2, 2), Horizontal)
	g.ClearTransientBlocks()

	g.Attack(C(1, 1))
	g.Attack(C(2, 2))

	if g.Cell(C(1, 1)) != CellMiss {
		t.Errorf("Cell(1,1) = %v, expected miss", g.Cell(C(1, 1)))
	}
	if g.Cell(C(3, 3)) != CellBuffer {
		t.Errorf("Cell(3,3) = %v, expected buffer", g.Cell(C(3, 3)))
	}
}

func TestVisibleHidesVessels(t *testing.T) {
	hidden := NewGrid(6, true)
	mustPlace(t, hidden, 2, C(0, 0), Horizontal)
	hidden.ClearTransientBlocks()
	hidden.Attack(C(0, 0))

	if got := hidden.Visible(C(0, 1)); got != CellEmpty {
		t.Errorf("hidden Visible(0,1) = %v, expected empty", got)
	}
	if got := hidden.Visible(C(0, 0)); got != CellHit {
		t.Errorf("hidden Visible(0,0) = %v, expected hit", got)
	}

	shown := NewGrid(6, false)
	mustPlace(t, shown, 2, C(0, 0), Horizontal)
	if got := shown.Visible(C(0, 1)); got != CellOccupied {
		t.Errorf("Visible(0,1) = %v, expected occupied", got)
	}
}

func TestAttackResultFlags(t *testing.T) {
	tests := []struct {
		res   AttackResult
		valid bool
		again bool
		err   error
	}{
		{OutOfBounds, false, false, ErrOutOfBounds},
		{AlreadyAttacked, false, false, ErrAlreadyAttacked},
		{Miss, true, false, nil},
		{Hit, true, true, nil},
		{Sunk, true, true, nil},
	}

	for _, tc := range tests {
		t.Run(tc.res.String(), func(t *testing.T) {
			if tc.res.Valid() != tc.valid {
				t.Errorf("Valid() = %v, expected %v", tc.res.Valid(), tc.valid)
			}
			if tc.res.Again() != tc.again {
				t.Errorf("Again() = %v, expected %v", tc.res.Again(), tc.again)
			}
			if !errors.Is(tc.res.Err(), tc.err) {
				t.Errorf("Err() = %v, expected %v", tc.res.Err(), tc.err)
			}
		})
	}
}

func TestCoordNeighbors(t *testing.T) {
	n := C(1, 1).Neighbors()
	seen := make(map[Coord]bool)
	for _, c := range n {
		if c == C(1, 1) {
			t.Error("Neighbors() includes the centre cell")
		}
		dr, dc := c.Row-1, c.Col-1
		if dr < -1 || dr > 1 || dc < -1 || dc > 1 {
			t.Errorf("Neighbors() includes distant cell %v", c)
		}
		seen[c] = true
	}
	if len(seen) != 8 {
		t.Errorf("Neighbors() returned %d distinct cells, expected 8", len(seen))
	}
}
