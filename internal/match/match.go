// Package match runs a game of battleship between two combatants: random
// fleet setup, target sources, turn order and the final result.
package match

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/seabattle/internal/board"
)

// ErrMatchOver is returned when a finished match is asked to continue.
var ErrMatchOver = errors.New("match is over")

// Side identifies one of the two combatants.
type Side int

const (
	First Side = iota
	Second
)

// Other returns the opposing side.
func (s Side) Other() Side {
	return 1 - s
}

func (s Side) String() string {
	if s == First {
		return "first"
	}
	return "second"
}

// Mode records how a match was played.
type Mode string

const (
	ModeConsole Mode = "console"
	ModeTUI     Mode = "tui"
	ModeWatch   Mode = "watch"
	ModeSSH     Mode = "ssh"
)

// Result summarises a finished match.
type Result struct {
	MatchID    string
	Mode       Mode
	Winner     Side
	WinnerName string
	LoserName  string
	Turns      int
	Shots      [2]int // Accepted shots, indexed by Side
	Hits       [2]int
	BoardSize  int
	Started    time.Time
	Duration   time.Duration
}

// Match alternates turns between two combatants until one fleet is sunk.
// A combatant keeps the turn after a hit or a sink.
type Match struct {
	id      string
	mode    Mode
	players [2]*Combatant
	turn    Side

	turns    int
	turnOpen bool // The side to move has already fired this turn

	over   bool
	result Result

	reporter Reporter
	saver    ResultSaver
	now      func() time.Time
	started  time.Time
}

// Option configures a Match.
type Option func(*Match)

// WithReporter sets the observer notified of turns, shots and the result.
func WithReporter(r Reporter) Option {
	return func(m *Match) { m.reporter = r }
}

// WithResultSaver sets where the result is stored when the match ends.
func WithResultSaver(s ResultSaver) Option {
	return func(m *Match) { m.saver = s }
}

// WithMode tags the result with how the match was played.
func WithMode(mode Mode) Option {
	return func(m *Match) { m.mode = mode }
}

// New creates a match between two combatants, first to move.
func New(first, second *Combatant, opts ...Option) *Match {
	m := &Match{
		id:       uuid.NewString(),
		mode:     ModeConsole,
		players:  [2]*Combatant{first, second},
		turn:     First,
		reporter: NopReporter{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.started = m.now()

	for _, side := range []Side{First, Second} {
		m.players[side].observe = func(target board.Coord, res board.AttackResult) {
			m.reporter.ShotResolved(m, side, target, res)
		}
	}
	return m
}

func (m *Match) ID() string { return m.id }
func (m *Match) Mode() Mode { return m.mode }
func (m *Match) Turn() Side { return m.turn }
func (m *Match) Turns() int { return m.turns }
func (m *Match) Over() bool { return m.over }
func (m *Match) Result() Result { return m.result }

// Player returns the combatant playing side.
func (m *Match) Player(side Side) *Combatant {
	return m.players[side]
}

// Current returns the combatant to move.
func (m *Match) Current() *Combatant {
	return m.players[m.turn]
}

// Winner returns the winning side once the match is over.
func (m *Match) Winner() (Side, bool) {
	if !m.over {
		return 0, false
	}
	return m.result.Winner, true
}

// Step plays one accepted shot for the side to move, asking its target
// source as often as needed.
func (m *Match) Step() error {
	if m.settle() {
		return ErrMatchOver
	}
	m.reporter.TurnStarted(m)

	again, err := m.Current().TakeTurn()
	if err != nil {
		return err
	}
	m.advance(again)
	return nil
}

// Shoot fires a single shot at target for the side to move. Rejected shots
// return the grid's error and leave the turn unchanged.
func (m *Match) Shoot(target board.Coord) (board.AttackResult, error) {
	if m.settle() {
		return board.OutOfBounds, ErrMatchOver
	}
	res := m.Current().Fire(target)
	if !res.Valid() {
		return res, res.Err()
	}
	m.advance(res.Again())
	return res, nil
}

// Run steps until one fleet is sunk.
func (m *Match) Run() (Result, error) {
	for !m.over {
		if err := m.Step(); err != nil {
			if errors.Is(err, ErrMatchOver) {
				break
			}
			return m.result, err
		}
	}
	return m.result, nil
}

// advance applies the turn rule after an accepted shot.
func (m *Match) advance(again bool) {
	if !m.turnOpen {
		m.turns++
		m.turnOpen = true
	}
	if m.settle() {
		return
	}
	if !again {
		m.turn = m.turn.Other()
		m.turnOpen = false
	}
}

// settle finishes the match when a fleet has no vessels left and reports
// whether the match is over.
func (m *Match) settle() bool {
	if m.over {
		return true
	}
	switch {
	case m.players[Second].own.RemainingVesselCount() == 0:
		m.finish(First)
	case m.players[First].own.RemainingVesselCount() == 0:
		m.finish(Second)
	default:
		return false
	}
	return true
}

func (m *Match) finish(winner Side) {
	m.over = true
	m.result = Result{
		MatchID:    m.id,
		Mode:       m.mode,
		Winner:     winner,
		WinnerName: m.players[winner].name,
		LoserName:  m.players[winner.Other()].name,
		Turns:      m.turns,
		Shots:      [2]int{m.players[First].shots, m.players[Second].shots},
		Hits:       [2]int{m.players[First].hits, m.players[Second].hits},
		BoardSize:  m.players[First].own.Size(),
		Started:    m.started,
		Duration:   m.now().Sub(m.started),
	}

	m.reporter.MatchEnded(m, m.result)

	if m.saver == nil {
		return
	}
	if err := m.saver.SaveResult(m.result); err != nil {
		log.Warn("failed to save match result", "match", m.id, "err", err)
	}
}
