package match

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/seabattle/internal/board"
)

// TargetSource picks the next coordinate to fire at.
type TargetSource interface {
	RequestTarget() (board.Coord, error)
}

// RandomSource fires at uniformly random cells. It keeps no history, so
// repeats are possible and are rejected by the grid.
type RandomSource struct {
	rng  *rand.Rand
	size int
}

// NewRandomSource creates a random source for a board of the given size.
func NewRandomSource(rng *rand.Rand, size int) *RandomSource {
	return &RandomSource{rng: rng, size: size}
}

// RequestTarget implements TargetSource.
func (s *RandomSource) RequestTarget() (board.Coord, error) {
	row := s.rng.Intn(s.size)
	col := s.rng.Intn(s.size)
	return board.C(row, col), nil
}

// LineReader reads one line of user input after showing a prompt.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// HumanSource reads targets from a person. Malformed lines are reported
// through onInvalid and the prompt is repeated until a valid target or a
// read error arrives.
type HumanSource struct {
	in        LineReader
	size      int
	onInvalid func(error)
}

// NewHumanSource creates a source reading from in. onInvalid may be nil.
func NewHumanSource(in LineReader, size int, onInvalid func(error)) *HumanSource {
	return &HumanSource{in: in, size: size, onInvalid: onInvalid}
}

// Prompt returns the text shown before each read.
func (s *HumanSource) Prompt() string {
	return fmt.Sprintf("Your shot, row and column (1-%d): ", s.size)
}

// RequestTarget implements TargetSource.
func (s *HumanSource) RequestTarget() (board.Coord, error) {
	for {
		line, err := s.in.ReadLine(s.Prompt())
		if err != nil {
			return board.Coord{}, err
		}
		target, err := ParseTarget(line, s.size)
		if err == nil {
			return target, nil
		}
		if s.onInvalid != nil {
			s.onInvalid(err)
		}
	}
}
