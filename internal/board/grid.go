package board

import "sort"

// CellState is what a grid cell currently holds.
type CellState int

const (
	CellEmpty    CellState = iota
	CellOccupied           // part of a vessel, not yet hit
	CellHit                // part of a vessel that was hit
	CellMiss               // attacked water
	CellBuffer             // water next to a sunk vessel, revealed on sinking
)

// String returns a human-readable name for the cell state.
func (s CellState) String() string {
	switch s {
	case CellEmpty:
		return "empty"
	case CellOccupied:
		return "occupied"
	case CellHit:
		return "hit"
	case CellMiss:
		return "miss"
	case CellBuffer:
		return "buffer"
	default:
		return "unknown"
	}
}

// Grid is one side's square board.
//
// Two coordinate sets are kept apart: occupied is the permanent index of
// vessel cells, reserved is the transient set of buffered and attacked cells.
// During setup reserved holds the buffer around each vessel so later vessels
// cannot touch it; ClearTransientBlocks releases that buffer before play, and
// from then on reserved records every attacked cell.
type Grid struct {
	size     int
	hidden   bool
	cells    [][]CellState
	occupied map[Coord]*Vessel
	reserved map[Coord]struct{}
	vessels  []*Vessel
}

// NewGrid creates an empty size×size grid. Hidden grids do not reveal
// un-attacked vessel cells through Visible.
func NewGrid(size int, hidden bool) *Grid {
	cells := make([][]CellState, size)
	for r := range cells {
		cells[r] = make([]CellState, size)
	}
	return &Grid{
		size:     size,
		hidden:   hidden,
		cells:    cells,
		occupied: make(map[Coord]*Vessel),
		reserved: make(map[Coord]struct{}),
	}
}

// Size returns the grid edge length.
func (g *Grid) Size() int { return g.size }

// Hidden reports whether vessel positions are concealed from display.
func (g *Grid) Hidden() bool { return g.hidden }

// IsOutOfBounds reports whether c lies outside [0, size) on either axis.
func (g *Grid) IsOutOfBounds(c Coord) bool {
	return c.Row < 0 || c.Row >= g.size || c.Col < 0 || c.Col >= g.size
}

// Cell returns the true state of the cell at c, or CellEmpty when out of bounds.
func (g *Grid) Cell(c Coord) CellState {
	if g.IsOutOfBounds(c) {
		return CellEmpty
	}
	return g.cells[c.Row][c.Col]
}

// Visible returns the state a viewer may see at c. On hidden grids
// un-attacked vessel cells read as CellEmpty.
func (g *Grid) Visible(c Coord) CellState {
	s := g.Cell(c)
	if g.hidden && s == CellOccupied {
		return CellEmpty
	}
	return s
}

// IsBlocked reports whether c is a vessel cell, a placement buffer cell or an
// attacked cell.
func (g *Grid) IsBlocked(c Coord) bool {
	if _, ok := g.occupied[c]; ok {
		return true
	}
	_, ok := g.reserved[c]
	return ok
}

// Blocked returns every blocked coordinate in row-major order.
func (g *Grid) Blocked() []Coord {
	out := make([]Coord, 0, len(g.occupied)+len(g.reserved))
	for c := range g.occupied {
		out = append(out, c)
	}
	for c := range g.reserved {
		if _, dup := g.occupied[c]; !dup {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// Vessels returns the placed vessels in placement order, sunk ones included.
func (g *Grid) Vessels() []*Vessel {
	out := make([]*Vessel, len(g.vessels))
	copy(out, g.vessels)
	return out
}

// RemainingVesselCount returns how many vessels are still afloat.
func (g *Grid) RemainingVesselCount() int {
	n := 0
	for _, v := range g.vessels {
		if !v.Sunk() {
			n++
		}
	}
	return n
}

// PlaceVessel puts v on the grid. Every cell is validated before anything is
// written, so a failed placement leaves the grid untouched. The returned error
// is a *PlacementError wrapping ErrOutOfBounds or ErrOverlap.
func (g *Grid) PlaceVessel(v *Vessel) error {
	for c := range v.Cells() {
		if g.IsOutOfBounds(c) {
			return &PlacementError{Cell: c, Err: ErrOutOfBounds}
		}
		if g.IsBlocked(c) {
			return &PlacementError{Cell: c, Err: ErrOverlap}
		}
	}

	for c := range v.Cells() {
		g.cells[c.Row][c.Col] = CellOccupied
		g.occupied[c] = v
	}
	g.vessels = append(g.vessels, v)

	// Buffer cells stay empty; they only block later placements.
	g.reserveContour(v, false)
	return nil
}

// ClearTransientBlocks releases the placement buffer so those cells can be
// attacked. Call it once after the fleet is placed. Attacked cells are kept.
func (g *Grid) ClearTransientBlocks() {
	for c := range g.reserved {
		if g.cells[c.Row][c.Col] == CellEmpty {
			delete(g.reserved, c)
		}
	}
}

// Attack fires at c and returns the outcome. Rejected shots (OutOfBounds,
// AlreadyAttacked) do not change the grid.
func (g *Grid) Attack(c Coord) AttackResult {
	if g.IsOutOfBounds(c) {
		return OutOfBounds
	}
	if _, ok := g.reserved[c]; ok {
		return AlreadyAttacked
	}
	g.reserved[c] = struct{}{}

	v, ok := g.occupied[c]
	if !ok {
		g.cells[c.Row][c.Col] = CellMiss
		return Miss
	}

	g.cells[c.Row][c.Col] = CellHit
	sunk, err := v.RegisterHit()
	if err != nil {
		// Unreachable while reserved guards repeat shots.
		return AlreadyAttacked
	}
	if !sunk {
		return Hit
	}
	g.reserveContour(v, true)
	return Sunk
}

// reserveContour reserves every free in-bounds neighbour of v. When reveal is
// set the cells are also marked as CellBuffer so the sunk outline is visible.
func (g *Grid) reserveContour(v *Vessel, reveal bool) {
	for c := range v.Cells() {
		for _, n := range c.Neighbors() {
			if g.IsOutOfBounds(n) || g.IsBlocked(n) {
				continue
			}
			g.reserved[n] = struct{}{}
			if reveal {
				g.cells[n.Row][n.Col] = CellBuffer
			}
		}
	}
}
