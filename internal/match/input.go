package match

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/seabattle/internal/board"
)

var (
	// ErrMalformedTarget is returned when a target line is not two numbers.
	ErrMalformedTarget = errors.New("enter two numbers: row and column")

	// ErrTargetOutOfRange is returned when a number lies outside the board.
	ErrTargetOutOfRange = errors.New("row and column must be on the board")
)

// ParseTarget converts a "row col" line with 1-indexed numbers into a
// 0-indexed coordinate on a board of the given size.
// Signs, letters and extra tokens are rejected.
func ParseTarget(line string, size int) (board.Coord, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return board.Coord{}, fmt.Errorf("%w: got %q", ErrMalformedTarget, strings.TrimSpace(line))
	}

	var nums [2]int
	for i, f := range fields {
		if !isDigits(f) {
			return board.Coord{}, fmt.Errorf("%w: %q is not a number", ErrMalformedTarget, f)
		}
		n, err := strconv.Atoi(f)
		if err != nil || n < 1 || n > size {
			return board.Coord{}, fmt.Errorf("%w: %s is not between 1 and %d", ErrTargetOutOfRange, f, size)
		}
		nums[i] = n - 1
	}
	return board.C(nums[0], nums[1]), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
