package match

import (
	"errors"

	"github.com/vovakirdan/seabattle/internal/board"
)

// ErrNoSource is returned when a combatant without a target source is asked
// to take a turn.
var ErrNoSource = errors.New("combatant has no target source")

// Combatant is one side of a match: its own grid, the grid it attacks and the
// source that picks its targets.
type Combatant struct {
	name     string
	own      *board.Grid
	opponent *board.Grid
	source   TargetSource

	shots int
	hits  int

	observe func(board.Coord, board.AttackResult)
}

// NewCombatant creates a combatant. source may be nil for front ends that
// drive shots directly with Match.Shoot.
func NewCombatant(name string, own, opponent *board.Grid, source TargetSource) *Combatant {
	return &Combatant{
		name:     name,
		own:      own,
		opponent: opponent,
		source:   source,
	}
}

func (c *Combatant) Name() string { return c.name }
func (c *Combatant) Own() *board.Grid { return c.own }
func (c *Combatant) Opponent() *board.Grid { return c.opponent }
func (c *Combatant) Source() TargetSource { return c.source }
func (c *Combatant) Shots() int { return c.shots }
func (c *Combatant) Hits() int { return c.hits }
func (c *Combatant) SetSource(s TargetSource) { c.source = s }

// Automated reports whether the combatant's targets are chosen by the computer.
func (c *Combatant) Automated() bool {
	_, ok := c.source.(*RandomSource)
	return ok
}

// Fire attacks the opponent grid once. Every result, rejected or not, is
// passed to the observer.
func (c *Combatant) Fire(target board.Coord) board.AttackResult {
	res := c.opponent.Attack(target)
	if res.Valid() {
		c.shots++
		if res.Again() {
			c.hits++
		}
	}
	if c.observe != nil {
		c.observe(target, res)
	}
	return res
}

// TakeTurn requests targets until one is accepted by the opponent grid and
// reports whether the combatant shoots again. Errors from the source end the
// turn without a shot.
func (c *Combatant) TakeTurn() (bool, error) {
	if c.source == nil {
		return false, ErrNoSource
	}
	if c.opponent.RemainingVesselCount() == 0 {
		return false, ErrMatchOver
	}
	for {
		target, err := c.source.RequestTarget()
		if err != nil {
			return false, err
		}
		res := c.Fire(target)
		if res.Valid() {
			return res.Again(), nil
		}
	}
}
