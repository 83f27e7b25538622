package render

import (
	"strconv"

	"github.com/vovakirdan/seabattle/internal/board"
)

// Markers are the runes used for each visible cell state.
type Markers struct {
	Empty  rune
	Ship   rune
	Hit    rune
	Miss   rune
	Buffer rune
}

// DefaultMarkers returns the classic console markers.
func DefaultMarkers() Markers {
	return Markers{
		Empty:  'O',
		Ship:   '■',
		Hit:    'X',
		Miss:   'T',
		Buffer: '.',
	}
}

// For returns the marker and colour for a visible cell state.
func (m Markers) For(s board.CellState) (rune, Color) {
	switch s {
	case board.CellOccupied:
		return m.Ship, ColorCyan
	case board.CellHit:
		return m.Hit, ColorBrightRed
	case board.CellMiss:
		return m.Miss, ColorYellow
	case board.CellBuffer:
		return m.Buffer, ColorGray
	default:
		return m.Empty, ColorBlue
	}
}

// labelWidth is the width of the widest row/column number.
func labelWidth(size int) int {
	return len(strconv.Itoa(max(size, 1)))
}

// CellWidth returns how many columns one cell marker occupies.
func CellWidth(size int) int {
	return labelWidth(size)
}

// GridWidth returns how many columns DrawGrid uses for a board of this size.
func GridWidth(size int) int {
	w := labelWidth(size)
	return w + 2 + size*(w+1)
}

// GridHeight returns how many rows DrawGrid uses: a header plus one per row.
func GridHeight(size int) int {
	return size + 1
}

// CellOrigin returns where DrawGrid puts the marker of c, relative to the
// grid's top-left corner. Each cell is labelWidth columns wide.
func CellOrigin(size int, c board.Coord) (x, y int) {
	w := labelWidth(size)
	return w + 2 + c.Col*(w+1), c.Row + 1
}

// DrawGrid draws g with its top-left corner at (x, y).
//
// Layout for a 3×3 board:
//
//	  |1|2|3|
//	1 |O|■|O|
//	2 |O|X|O|
//	3 |T|O|O|
//
// Numbers are 1-indexed. Hidden grids never show un-attacked vessel cells.
func DrawGrid(s *Screen, x, y int, g *board.Grid, m Markers) {
	size := g.Size()
	w := labelWidth(size)

	cx := x
	s.DrawText(cx, y, pad("", w)+" |", ColorGray)
	cx += w + 2
	for col := range size {
		s.DrawText(cx, y, pad(strconv.Itoa(col+1), w), ColorGray)
		s.Set(cx+w, y, '|', ColorGray)
		cx += w + 1
	}

	for row := range size {
		ry := y + row + 1
		cx = x
		s.DrawText(cx, ry, pad(strconv.Itoa(row+1), w)+" |", ColorGray)
		cx += w + 2
		for col := range size {
			r, color := m.For(g.Visible(board.C(row, col)))
			s.DrawText(cx, ry, pad(string(r), w), color)
			s.Set(cx+w, ry, '|', ColorGray)
			cx += w + 1
		}
	}
}

// Grid returns a screen exactly large enough to hold g.
func Grid(g *board.Grid, m Markers) *Screen {
	s := NewScreen(GridWidth(g.Size()), GridHeight(g.Size()))
	DrawGrid(s, 0, 0, g, m)
	return s
}

// Text renders g as plain text.
func Text(g *board.Grid, m Markers) string {
	return Grid(g, m).String()
}

// pad right-aligns text to width w, counting runes.
func pad(text string, w int) string {
	n := len([]rune(text))
	for ; n < w; n++ {
		text = " " + text
	}
	return text
}
