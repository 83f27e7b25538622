package board

// AttackResult is the outcome of a single shot at a grid.
type AttackResult int

const (
	OutOfBounds AttackResult = iota
	AlreadyAttacked
	Miss
	Hit
	Sunk
)

// String returns a human-readable name for the result.
func (r AttackResult) String() string {
	switch r {
	case OutOfBounds:
		return "out of bounds"
	case AlreadyAttacked:
		return "already attacked"
	case Miss:
		return "miss"
	case Hit:
		return "hit"
	case Sunk:
		return "sunk"
	default:
		return "unknown"
	}
}

// Valid reports whether the shot was applied to the grid.
// Rejected shots do not consume a turn.
func (r AttackResult) Valid() bool {
	return r == Miss || r == Hit || r == Sunk
}

// Again reports whether the shooter keeps the turn.
func (r AttackResult) Again() bool {
	return r == Hit || r == Sunk
}

// Err maps a rejected shot to its error, or nil for applied shots.
func (r AttackResult) Err() error {
	switch r {
	case OutOfBounds:
		return ErrOutOfBounds
	case AlreadyAttacked:
		return ErrAlreadyAttacked
	default:
		return nil
	}
}
