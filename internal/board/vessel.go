package board

import "iter"

// Orientation is the direction a vessel extends from its origin.
type Orientation int

const (
	Horizontal Orientation = iota // extends to the right
	Vertical                      // extends downward
)

// String returns a human-readable name for the orientation.
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Vessel is a straight run of cells that can be hit until it sinks.
type Vessel struct {
	length      int
	origin      Coord
	orientation Orientation
	remaining   int
}

// NewVessel creates an unhit vessel. Length must be at least 1.
func NewVessel(length int, origin Coord, orientation Orientation) (*Vessel, error) {
	if length < 1 {
		return nil, ErrInvalidVessel
	}
	return &Vessel{
		length:      length,
		origin:      origin,
		orientation: orientation,
		remaining:   length,
	}, nil
}

// Length returns the number of cells the vessel covers.
func (v *Vessel) Length() int { return v.length }

// Origin returns the top-left cell of the vessel.
func (v *Vessel) Origin() Coord { return v.origin }

// Orientation returns the direction the vessel extends in.
func (v *Vessel) Orientation() Orientation { return v.orientation }

// Remaining returns the number of hits the vessel can still take.
func (v *Vessel) Remaining() int { return v.remaining }

// Sunk reports whether every cell has been hit.
func (v *Vessel) Sunk() bool { return v.remaining == 0 }

// cellAt returns the i-th cell counted from the origin.
func (v *Vessel) cellAt(i int) Coord {
	if v.orientation == Vertical {
		return v.origin.Add(i, 0)
	}
	return v.origin.Add(0, i)
}

// Cells yields the coordinates covered by the vessel, origin first.
// The sequence can be ranged over any number of times.
func (v *Vessel) Cells() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for i := range v.length {
			if !yield(v.cellAt(i)) {
				return
			}
		}
	}
}

// Occupies reports whether c is one of the vessel's cells.
func (v *Vessel) Occupies(c Coord) bool {
	switch v.orientation {
	case Vertical:
		return c.Col == v.origin.Col && c.Row >= v.origin.Row && c.Row < v.origin.Row+v.length
	default:
		return c.Row == v.origin.Row && c.Col >= v.origin.Col && c.Col < v.origin.Col+v.length
	}
}

// RegisterHit takes one hit and reports whether the vessel is now sunk.
func (v *Vessel) RegisterHit() (bool, error) {
	if v.remaining == 0 {
		return true, ErrInvalidState
	}
	v.remaining--
	return v.remaining == 0, nil
}
