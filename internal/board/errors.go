package board

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned when a coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("coordinate is outside the board")

	// ErrOverlap is returned when a vessel would overlap or touch another one.
	ErrOverlap = errors.New("vessel overlaps or touches another vessel")

	// ErrAlreadyAttacked is returned when a cell is targeted a second time.
	ErrAlreadyAttacked = errors.New("cell has already been attacked")

	// ErrInvalidState is returned when a sunk vessel is hit again.
	ErrInvalidState = errors.New("vessel is already sunk")

	// ErrInvalidVessel is returned for vessels with a non-positive length.
	ErrInvalidVessel = errors.New("vessel length must be positive")
)

// PlacementError describes why a vessel could not be placed.
// Err is ErrOutOfBounds or ErrOverlap.
type PlacementError struct {
	Cell Coord
	Err  error
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("board: cannot place vessel at %s: %v", e.Cell, e.Err)
}

func (e *PlacementError) Unwrap() error {
	return e.Err
}
