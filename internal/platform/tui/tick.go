// Package tui provides the Bubble Tea front end for seabattle: the game
// screen, match history and SSH hosting.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ComputerMoveMsg is sent when the computer should take its next shot.
type ComputerMoveMsg time.Time

// computerMoveCmd schedules the computer's next shot after delay.
func computerMoveCmd(delay time.Duration) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg { return ComputerMoveMsg(time.Now()) }
	}
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ComputerMoveMsg(t)
	})
}
