// Package console plays a match over plain line-based terminal I/O.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/vovakirdan/seabattle/internal/board"
	"github.com/vovakirdan/seabattle/internal/match"
	"github.com/vovakirdan/seabattle/internal/render"
)

// Console reads targets from in and reports the match to out.
// It implements match.LineReader and match.Reporter.
type Console struct {
	in      *bufio.Reader
	out     io.Writer
	markers render.Markers

	// Delay pauses before each computer shot so a person can follow along.
	Delay time.Duration
}

// New creates a console over the given streams.
func New(in io.Reader, out io.Writer, markers render.Markers) *Console {
	return &Console{
		in:      bufio.NewReader(in),
		out:     out,
		markers: markers,
	}
}

var (
	_ match.LineReader = (*Console)(nil)
	_ match.Reporter   = (*Console)(nil)
)

// ReadLine implements match.LineReader. A final line without a newline is
// returned before io.EOF.
func (c *Console) ReadLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// InputRejected reports a line that was not a valid target.
func (c *Console) InputRejected(err error) {
	fmt.Fprintf(c.out, "Invalid input: %v\n", err)
}

// Greet prints the welcome banner.
func (c *Console) Greet() {
	fmt.Fprintln(c.out, "Welcome to Sea Battle!")
	fmt.Fprintln(c.out, "Sink every enemy vessel. Enter shots as \"row column\", e.g. 3 4.")
}

// Play greets the player and runs m to the end.
func (c *Console) Play(m *match.Match) (match.Result, error) {
	c.Greet()
	return m.Run()
}

// TurnStarted implements match.Reporter by drawing both boards.
func (c *Console) TurnStarted(m *match.Match) {
	fmt.Fprintln(c.out)
	c.drawBoards(m)

	current := m.Current()
	fmt.Fprintf(c.out, "\n%s to move:\n", current.Name())
	if current.Automated() && c.Delay > 0 {
		time.Sleep(c.Delay)
	}
}

// ShotResolved implements match.Reporter.
func (c *Console) ShotResolved(m *match.Match, shooter match.Side, target board.Coord, res board.AttackResult) {
	p := m.Player(shooter)
	if p.Automated() {
		// Computer retries are silent.
		if !res.Valid() {
			return
		}
		fmt.Fprintf(c.out, "%s fires at %d %d\n", p.Name(), target.Row+1, target.Col+1)
	}
	fmt.Fprintln(c.out, Message(res))
}

// MatchEnded implements match.Reporter.
func (c *Console) MatchEnded(m *match.Match, res match.Result) {
	fmt.Fprintln(c.out)
	c.drawBoards(m)
	fmt.Fprintf(c.out, "\n%s wins!\n", res.WinnerName)
	fmt.Fprintf(c.out, "Turns: %d, shots: %d, hits: %d\n",
		res.Turns, res.Shots[res.Winner], res.Hits[res.Winner])
}

func (c *Console) drawBoards(m *match.Match) {
	for i, side := range []match.Side{match.First, match.Second} {
		if i > 0 {
			fmt.Fprintln(c.out)
		}
		p := m.Player(side)
		fmt.Fprintf(c.out, "%s board\n", p.Name())
		fmt.Fprintln(c.out, render.Text(p.Own(), c.markers))
	}
}

// Message describes a shot result for the person at the keyboard.
func Message(res board.AttackResult) string {
	switch res {
	case board.Hit:
		return "Hit!"
	case board.Sunk:
		return "Sunk!"
	case board.Miss:
		return "Miss!"
	case board.AlreadyAttacked:
		return "You already fired at that cell, try another."
	case board.OutOfBounds:
		return "That cell is off the board, try again."
	default:
		return res.String()
	}
}
