package match

import "github.com/vovakirdan/seabattle/internal/board"

// Reporter observes a match. Front ends implement it to draw boards and
// announce shots.
type Reporter interface {
	// TurnStarted is called before the side to move picks a target.
	TurnStarted(m *Match)
	// ShotResolved is called for every shot, rejected ones included.
	ShotResolved(m *Match, shooter Side, target board.Coord, res board.AttackResult)
	// MatchEnded is called once, when a fleet is sunk.
	MatchEnded(m *Match, res Result)
}

// ResultSaver persists finished matches.
type ResultSaver interface {
	SaveResult(Result) error
}

// NopReporter ignores every event.
type NopReporter struct{}

func (NopReporter) TurnStarted(*Match) {}
func (NopReporter) ShotResolved(*Match, Side, board.Coord, board.AttackResult) {}
func (NopReporter) MatchEnded(*Match, Result) {}
