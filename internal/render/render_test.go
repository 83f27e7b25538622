package render

import (
	"strings"
	"testing"

	"github.com/vovakirdan/seabattle/internal/board"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 {
		t.Errorf("Width() = %d, expected 12", s.Width())
	}
	if s.Height() != 4 {
		t.Errorf("Height() = %d, expected 4", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(5, 5)

	s.Set(2, 3, 'X', ColorBrightRed)
	if got := s.GetCell(2, 3); got.Rune != 'X' || got.Color != ColorBrightRed {
		t.Errorf("GetCell(2, 3) = %+v, expected X/bright red", got)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A', ColorDefault)
	s.Set(0, 10, 'A', ColorDefault)
	if s.Get(-1, 0) != ' ' {
		t.Errorf("Get(-1, 0) = %q, expected space", s.Get(-1, 0))
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(4, 1)
	s.DrawText(0, 0, "■a■b", ColorCyan)

	if got := s.Row(0); got != "■a■b" {
		t.Errorf("Row(0) = %q, expected %q", got, "■a■b")
	}
}

func TestTextLayout(t *testing.T) {
	g := board.NewGrid(3, false)
	v, err := board.NewVessel(2, board.C(0, 1), board.Vertical)
	if err != nil {
		t.Fatalf("NewVessel() failed: %v", err)
	}
	if err := g.PlaceVessel(v); err != nil {
		t.Fatalf("PlaceVessel() failed: %v", err)
	}
	g.ClearTransientBlocks()
	g.Attack(board.C(1, 1))
	g.Attack(board.C(2, 0))

	expected := strings.Join([]string{
		"  |1|2|3|",
		"1 |O|■|O|",
		"2 |O|X|O|",
		"3 |T|O|O|",
	}, "\n")

	if got := Text(g, DefaultMarkers()); got != expected {
		t.Errorf("Text() =\n%s\nexpected\n%s", got, expected)
	}
}

func TestTextHiddenGrid(t *testing.T) {
	g := board.NewGrid(3, true)
	v, err := board.NewVessel(1, board.C(0, 0), board.Horizontal)
	if err != nil {
		t.Fatalf("NewVessel() failed: %v", err)
	}
	if err := g.PlaceVessel(v); err != nil {
		t.Fatalf("PlaceVessel() failed: %v", err)
	}
	g.ClearTransientBlocks()

	m := DefaultMarkers()
	if strings.ContainsRune(Text(g, m), m.Ship) {
		t.Error("hidden grid reveals vessel cells")
	}

	g.Attack(board.C(0, 0))
	expected := strings.Join([]string{
		"  |1|2|3|",
		"1 |X|.|O|",
		"2 |.|.|O|",
		"3 |O|O|O|",
	}, "\n")
	if got := Text(g, m); got != expected {
		t.Errorf("Text() =\n%s\nexpected\n%s", got, expected)
	}
}

func TestTextWideBoard(t *testing.T) {
	g := board.NewGrid(10, false)
	s := Grid(g, DefaultMarkers())

	if s.Width() != GridWidth(10) {
		t.Errorf("Width() = %d, expected %d", s.Width(), GridWidth(10))
	}
	if got := s.Row(0); !strings.HasPrefix(got, "   | 1| 2|") || !strings.HasSuffix(got, "|10|") {
		t.Errorf("header = %q", got)
	}
	if got := s.Row(10); !strings.HasPrefix(got, "10 | O|") {
		t.Errorf("last row = %q", got)
	}
}

func TestMarkersDistinct(t *testing.T) {
	m := DefaultMarkers()
	states := []board.CellState{board.CellEmpty, board.CellOccupied, board.CellHit, board.CellMiss, board.CellBuffer}
	seen := make(map[rune]board.CellState)
	for _, st := range states {
		r, _ := m.For(st)
		if prev, ok := seen[r]; ok {
			t.Errorf("states %v and %v share marker %q", prev, st, r)
		}
		seen[r] = st
	}
}

func TestCellOrigin(t *testing.T) {
	g := board.NewGrid(10, false)
	g.Attack(board.C(9, 9))
	s := Grid(g, DefaultMarkers())

	x, y := CellOrigin(10, board.C(9, 9))
	// Markers are right-aligned in two-column cells.
	if got := s.Get(x+1, y); got != DefaultMarkers().Miss {
		t.Errorf("Get(%d, %d) = %q, expected miss marker", x+1, y, got)
	}

	x, y = CellOrigin(3, board.C(0, 0))
	if x != 3 || y != 1 {
		t.Errorf("CellOrigin(3, (0,0)) = (%d, %d), expected (3, 1)", x, y)
	}
}
