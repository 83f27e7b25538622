package tui

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/seabattle/internal/board"
	"github.com/vovakirdan/seabattle/internal/config"
	"github.com/vovakirdan/seabattle/internal/match"
	"github.com/vovakirdan/seabattle/internal/platform/console"
	"github.com/vovakirdan/seabattle/internal/render"
	"github.com/vovakirdan/seabattle/internal/storage"
)

// maxEvents is how many shot announcements the game screen keeps.
const maxEvents = 6

// Options configures a game screen.
type Options struct {
	Config     config.Config
	Seed       int64             // 0 picks a time-based seed
	Saver      match.ResultSaver // nil disables history
	Mode       match.Mode
	PlayerName string // Overrides Config.Players.Human when set
	Width      int
	Height     int
}

// eventLog collects the latest shot announcements. It is shared by pointer
// so the match can report into it while the model is copied by Bubble Tea.
type eventLog struct {
	lines []string
}

func (l *eventLog) add(format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
	if len(l.lines) > maxEvents {
		l.lines = l.lines[len(l.lines)-maxEvents:]
	}
}

func (l *eventLog) TurnStarted(*match.Match) {}

func (l *eventLog) ShotResolved(m *match.Match, shooter match.Side, target board.Coord, res board.AttackResult) {
	if !res.Valid() {
		return
	}
	l.add("%s fires at %d %d: %s", m.Player(shooter).Name(), target.Row+1, target.Col+1, console.Message(res))
}

func (l *eventLog) MatchEnded(_ *match.Match, res match.Result) {
	l.add("%s wins in %d turns!", res.WinnerName, res.Turns)
}

// Model is the Bubble Tea model for a human vs computer match.
// The human moves the cursor over the enemy grid and fires; the computer's
// shots are scheduled with a short delay so they can be followed.
type Model struct {
	opts    Options
	rng     *rand.Rand
	markers render.Markers
	delay   time.Duration

	match  *match.Match
	events *eventLog
	cursor board.Coord
	status string
	err    error

	keys GameKeyMap
	help help.Model

	width        int
	height       int
	quitting     bool
	wantsHistory bool // Set when the history key is pressed inside a session
	allowHistory bool
}

// NewModel creates a game screen and deals the first match.
func NewModel(opts Options) (Model, error) {
	if err := opts.Config.Validate(); err != nil {
		return Model{}, err
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Mode == "" {
		opts.Mode = match.ModeTUI
	}
	if opts.PlayerName == "" {
		opts.PlayerName = opts.Config.Players.Human
	}

	m := Model{
		opts:    opts,
		rng:     rand.New(rand.NewSource(opts.Seed)),
		markers: opts.Config.RenderMarkers(),
		delay:   time.Duration(opts.Config.Computer.MoveDelayMS) * time.Millisecond,
		keys:    DefaultGameKeyMap(),
		help:    help.New(),
		width:   opts.Width,
		height:  opts.Height,
	}
	if err := m.newMatch(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// newMatch deals fresh fleets. The human always moves first.
func (m *Model) newMatch() error {
	cfg := m.opts.Config
	computer := cfg.Players.Computer
	if computer == m.opts.PlayerName {
		computer += " (computer)"
	}

	events := &eventLog{}
	mt, err := match.Build(m.rng, cfg.Setup(),
		match.PlayerSpec{Name: m.opts.PlayerName},
		match.PlayerSpec{Name: computer, Source: match.NewRandomSource(m.rng, cfg.Board.Size), Hidden: true},
		match.WithMode(m.opts.Mode),
		match.WithReporter(events),
		match.WithResultSaver(m.opts.Saver),
	)
	if err != nil {
		return err
	}

	m.match = mt
	m.events = events
	m.cursor = board.C(cfg.Board.Size/2, cfg.Board.Size/2)
	m.status = "Your move: pick a cell on the enemy grid and fire."
	m.err = nil
	return nil
}

// Match returns the match being played.
func (m Model) Match() *match.Match {
	return m.match
}

// Cursor returns the targeted cell on the enemy grid.
func (m Model) Cursor() board.Coord {
	return m.cursor
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.scheduleComputer()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case ComputerMoveMsg:
		return m.handleComputerMove()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.History):
		if m.allowHistory {
			m.wantsHistory = true
		}
		return m, nil

	case key.Matches(msg, m.keys.NewGame):
		if !m.match.Over() {
			return m, nil
		}
		if err := m.newMatch(); err != nil {
			m.err = err
			return m, nil
		}
		return m, m.scheduleComputer()
	}

	if m.match.Over() || m.match.Current().Automated() {
		return m, nil
	}

	size := m.opts.Config.Board.Size
	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor.Row = max(m.cursor.Row-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.cursor.Row = min(m.cursor.Row+1, size-1)
	case key.Matches(msg, m.keys.Left):
		m.cursor.Col = max(m.cursor.Col-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.cursor.Col = min(m.cursor.Col+1, size-1)
	case key.Matches(msg, m.keys.Fire):
		return m.fire()
	}
	return m, nil
}

// fire shoots at the cursor for the human player.
func (m Model) fire() (tea.Model, tea.Cmd) {
	res, err := m.match.Shoot(m.cursor)
	if err != nil {
		m.status = console.Message(res)
		if errors.Is(err, match.ErrMatchOver) {
			m.status = "The match is over."
		}
		return m, nil
	}

	switch {
	case m.match.Over():
		m.status = m.endStatus()
	case res.Again():
		m.status = console.Message(res) + " Fire again."
	default:
		m.status = console.Message(res) + " The enemy is aiming..."
	}
	return m, m.scheduleComputer()
}

// scheduleComputer returns a command for the computer's shot when it is to move.
func (m Model) scheduleComputer() tea.Cmd {
	if m.match.Over() || !m.match.Current().Automated() {
		return nil
	}
	return computerMoveCmd(m.delay)
}

// handleComputerMove plays one computer shot.
func (m Model) handleComputerMove() (tea.Model, tea.Cmd) {
	if m.match.Over() || !m.match.Current().Automated() {
		return m, nil
	}

	if err := m.match.Step(); err != nil {
		log.Warn("computer move failed", "match", m.match.ID(), "err", err)
		m.err = err
		return m, nil
	}

	switch {
	case m.match.Over():
		m.status = m.endStatus()
	case m.match.Current().Automated():
		m.status = "The enemy hit your fleet and fires again..."
	default:
		m.status = "Your move."
	}
	return m, m.scheduleComputer()
}

func (m Model) endStatus() string {
	res := m.match.Result()
	if res.Winner == match.First {
		return fmt.Sprintf("Victory! You sank the fleet in %d turns. Press n for a new game.", res.Turns)
	}
	return "Defeat. Your fleet is sunk. Press n for a new game."
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	b.WriteString(centerText(titleStyle.Render("S E A   B A T T L E"), m.width))
	b.WriteString("\n\n")

	player := m.match.Player(match.First)
	enemy := m.match.Player(match.Second)

	labelStyle := lipgloss.NewStyle().Bold(true)
	left := lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render(player.Name()+" fleet"),
		RenderScreen(render.Grid(player.Own(), m.markers)),
		fleetStatus(player.Own()),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render(enemy.Name()+" waters"),
		RenderScreen(m.enemyScreen(enemy.Own())),
		fleetStatus(enemy.Own()),
	)
	boards := lipgloss.JoinHorizontal(lipgloss.Top, left, "      ", right)
	b.WriteString(boards)
	b.WriteString("\n\n")

	b.WriteString(m.status)
	b.WriteString("\n")
	if m.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		b.WriteString(errStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}

	eventStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	for _, line := range m.events.lines {
		b.WriteString(eventStyle.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// enemyScreen draws the enemy grid with brackets around the cursor.
func (m Model) enemyScreen(g *board.Grid) *render.Screen {
	s := render.Grid(g, m.markers)
	if m.match.Over() {
		return s
	}
	x, y := render.CellOrigin(g.Size(), m.cursor)
	w := render.CellWidth(g.Size())
	s.Set(x-1, y, '[', render.ColorBrightWhite)
	s.Set(x+w, y, ']', render.ColorBrightWhite)
	return s
}

func fleetStatus(g *board.Grid) string {
	return fmt.Sprintf("%d/%d afloat", g.RemainingVesselCount(), len(g.Vessels()))
}

// IsQuitting returns true if user wants to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for a game session. store may be nil;
// when set, results are saved there and the history screen is available.
func Run(store *storage.Store, opts Options) error {
	if store != nil && opts.Saver == nil {
		opts.Saver = store
	}
	model, err := NewSessionModel(store, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
