package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/seabattle/internal/storage"
)

// History layout constants
const (
	historyChrome = 8   // Title, tabs, borders and help
	maxHistory    = 100 // Max matches to load
)

// HistoryView selects which table the history screen shows.
type HistoryView int

const (
	ViewMatches HistoryView = iota
	ViewStandings
)

func (v HistoryView) String() string {
	if v == ViewStandings {
		return "Standings"
	}
	return "Recent matches"
}

// HistoryModel is the Bubble Tea model for the match history screen.
type HistoryModel struct {
	store     *storage.Store
	view      HistoryView
	matches   []storage.MatchRecord
	standings []storage.Standing
	loadErr   error
	table     table.Model
	help      help.Model
	keys      HistoryKeyMap
	limit     int
	width     int
	height    int
	quitting  bool
	goingBack bool // True if user pressed back (not quit)
}

// NewHistoryModel creates a history screen showing up to limit matches.
func NewHistoryModel(store *storage.Store, limit, width, height int) HistoryModel {
	if limit <= 0 || limit > maxHistory {
		limit = maxHistory
	}
	h := help.New()
	h.ShowAll = false

	m := HistoryModel{
		store:  store,
		keys:   DefaultHistoryKeyMap(),
		help:   h,
		limit:  limit,
		width:  width,
		height: height,
	}
	m.reload()
	return m
}

// columns returns the table columns for the current view.
func (m *HistoryModel) columns() []table.Column {
	if m.view == ViewStandings {
		return []table.Column{
			{Title: "#", Width: 4},
			{Title: "Player", Width: 16},
			{Title: "Wins", Width: 6},
			{Title: "Losses", Width: 8},
			{Title: "Last played", Width: 14},
		}
	}
	return []table.Column{
		{Title: "Date", Width: 14},
		{Title: "Winner", Width: 14},
		{Title: "Loser", Width: 14},
		{Title: "Turns", Width: 6},
		{Title: "Accuracy", Width: 9},
		{Title: "Mode", Width: 8},
	}
}

// createTable creates a new table for the current view.
func (m *HistoryModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-historyChrome, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// reload queries the store for the current view and rebuilds the table.
func (m *HistoryModel) reload() {
	m.table = m.createTable()
	m.loadErr = nil
	if m.store == nil {
		m.matches, m.standings = nil, nil
		m.table.SetRows(nil)
		return
	}

	var rows []table.Row
	switch m.view {
	case ViewStandings:
		standings, err := m.store.Standings()
		m.standings, m.loadErr = standings, err
		rows = StandingRows(standings)
	default:
		matches, err := m.store.RecentMatches(m.limit)
		m.matches, m.loadErr = matches, err
		rows = MatchRows(matches)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// MatchRows converts match records into table rows.
func MatchRows(records []storage.MatchRecord) []table.Row {
	rows := make([]table.Row, len(records))
	for i, r := range records {
		rows[i] = table.Row{
			r.CreatedAt.Local().Format("Jan 02 15:04"),
			r.Winner,
			r.Loser,
			fmt.Sprintf("%d", r.Turns),
			fmt.Sprintf("%.0f%%", r.Accuracy()*100),
			r.Mode,
		}
	}
	return rows
}

// StandingRows converts standings into ranked table rows.
func StandingRows(standings []storage.Standing) []table.Row {
	rows := make([]table.Row, len(standings))
	for i, s := range standings {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			s.Name,
			fmt.Sprintf("%d", s.Wins),
			fmt.Sprintf("%d", s.Losses),
			s.LastPlayed.Local().Format("Jan 02 15:04"),
		}
	}
	return rows
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.SwitchView):
			m.view = 1 - m.view
			m.reload()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.reload()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(centerText(titleStyle.Render("MATCH HISTORY"), m.width))
	b.WriteString("\n\n")

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, 0, 2)
	for _, v := range []HistoryView{ViewMatches, ViewStandings} {
		if v == m.view {
			tabs = append(tabs, activeTabStyle.Render(v.String()))
		} else {
			tabs = append(tabs, tabStyle.Render(v.String()))
		}
	}
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tableStyle.Render(m.renderTableContent())))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an empty/error message.
func (m HistoryModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load history:\n" + m.loadErr.Error())
	case len(m.table.Rows()) == 0:
		return emptyStyle.Render("No matches recorded yet.\nPlay a game to start your record!")
	}
	return m.table.View()
}

// CurrentView returns the table currently shown.
func (m HistoryModel) CurrentView() HistoryView {
	return m.view
}

// IsGoingBack returns true if user wants to go back.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// RunHistory runs the history screen on its own.
func RunHistory(store *storage.Store, limit, width, height int) error {
	model := NewHistoryModel(store, limit, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
