package match

import (
	"errors"
	"io"
	"math/rand"
	"testing"

	"github.com/vovakirdan/seabattle/internal/board"
)

func TestParseTarget(t *testing.T) {
	tests := []struct {
		line     string
		expected board.Coord
		err      error
	}{
		{"1 1", board.C(0, 0), nil},
		{"6 6", board.C(5, 5), nil},
		{"  3\t4  ", board.C(2, 3), nil},
		{"2 5\n", board.C(1, 4), nil},
		{"", board.Coord{}, ErrMalformedTarget},
		{"3", board.Coord{}, ErrMalformedTarget},
		{"1 2 3", board.Coord{}, ErrMalformedTarget},
		{"a b", board.Coord{}, ErrMalformedTarget},
		{"1 x", board.Coord{}, ErrMalformedTarget},
		{"-1 2", board.Coord{}, ErrMalformedTarget},
		{"+1 2", board.Coord{}, ErrMalformedTarget},
		{"1.5 2", board.Coord{}, ErrMalformedTarget},
		{"0 1", board.Coord{}, ErrTargetOutOfRange},
		{"1 7", board.Coord{}, ErrTargetOutOfRange},
		{"99999999999999999999999 1", board.Coord{}, ErrTargetOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := ParseTarget(tt.line, 6)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Errorf("ParseTarget(%q) error = %v, expected %v", tt.line, err, tt.err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTarget(%q) failed: %v", tt.line, err)
			}
			if got != tt.expected {
				t.Errorf("ParseTarget(%q) = %v, expected %v", tt.line, got, tt.expected)
			}
		})
	}
}

// scriptedLines returns prepared lines, then io.EOF.
type scriptedLines struct {
	lines   []string
	prompts int
}

func (s *scriptedLines) ReadLine(string) (string, error) {
	s.prompts++
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func TestHumanSourceRepromptsUntilValid(t *testing.T) {
	in := &scriptedLines{lines: []string{"", "a b", "0 1", "7 7", "2 3"}}
	var rejected []error
	src := NewHumanSource(in, 6, func(err error) { rejected = append(rejected, err) })

	got, err := src.RequestTarget()
	if err != nil {
		t.Fatalf("RequestTarget() failed: %v", err)
	}
	if got != board.C(1, 2) {
		t.Errorf("RequestTarget() = %v, expected (1,2)", got)
	}
	if len(rejected) != 4 {
		t.Errorf("rejected %d lines, expected 4", len(rejected))
	}
	if in.prompts != 5 {
		t.Errorf("prompted %d times, expected 5", in.prompts)
	}
}

func TestHumanSourcePropagatesReadErrors(t *testing.T) {
	src := NewHumanSource(&scriptedLines{lines: []string{"bad"}}, 6, nil)

	if _, err := src.RequestTarget(); !errors.Is(err, io.EOF) {
		t.Errorf("RequestTarget() error = %v, expected io.EOF", err)
	}
}

func TestRandomSourceInRange(t *testing.T) {
	src := NewRandomSource(rand.New(rand.NewSource(1)), 6)
	seen := make(map[board.Coord]bool)

	for range 2000 {
		c, err := src.RequestTarget()
		if err != nil {
			t.Fatalf("RequestTarget() failed: %v", err)
		}
		if c.Row < 0 || c.Row >= 6 || c.Col < 0 || c.Col >= 6 {
			t.Fatalf("RequestTarget() = %v, outside 6×6", c)
		}
		seen[c] = true
	}
	if len(seen) != 36 {
		t.Errorf("covered %d cells in 2000 draws, expected all 36", len(seen))
	}
}

func TestRandomSourceDeterminism(t *testing.T) {
	a := NewRandomSource(rand.New(rand.NewSource(42)), 6)
	b := NewRandomSource(rand.New(rand.NewSource(42)), 6)

	for i := range 100 {
		ca, _ := a.RequestTarget()
		cb, _ := b.RequestTarget()
		if ca != cb {
			t.Fatalf("draw %d: %v != %v with equal seeds", i, ca, cb)
		}
	}
}
