// Package board holds the battleship rules: coordinates, vessels and the grid
// that validates placement and resolves attacks. It has no dependencies on
// input, output or timing so it can be driven by any front end.
package board

import "fmt"

// Coord is a cell position on a grid. Row grows downward, Col grows to the right.
// Both are 0-indexed.
type Coord struct {
	Row int
	Col int
}

// C is a convenience constructor for Coord.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns the 0-indexed "(row,col)" form used in logs and errors.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns a new Coord offset by (dr, dc).
func (c Coord) Add(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// neighborOffsets lists the 8 surrounding cells, diagonals included.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Neighbors returns the 8 cells surrounding c. Bounds are not checked.
func (c Coord) Neighbors() [8]Coord {
	var out [8]Coord
	for i, d := range neighborOffsets {
		out[i] = c.Add(d[0], d[1])
	}
	return out
}
