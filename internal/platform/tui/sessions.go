package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/qix-arcade/internal/storage"
)

// MaxSessions is how many sessions the log view loads.
const MaxSessions = 100

// SessionsKeyMap defines the key bindings for the session log.
type SessionsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SessionsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k SessionsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultSessionsKeyMap returns default key bindings.
func DefaultSessionsKeyMap() SessionsKeyMap {
	return SessionsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// SessionsModel is the Bubble Tea model for the session log screen.
type SessionsModel struct {
	gameID   string
	title    string
	sessions []storage.Session
	stats    *storage.Stats
	table    table.Model
	help     help.Model
	keys     SessionsKeyMap
	width    int
	height   int
	quitting bool
}

// NewSessionsModel creates a session log view for one game.
func NewSessionsModel(gameID, title string, sessions []storage.Session, stats *storage.Stats, width, height int) SessionsModel {
	m := SessionsModel{
		gameID:   gameID,
		title:    title,
		sessions: sessions,
		stats:    stats,
		keys:     DefaultSessionsKeyMap(),
		help:     help.New(),
		width:    width,
		height:   height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// LoadSessions reads the newest sessions and aggregate stats for gameID.
func LoadSessions(store *storage.Store, gameID string) ([]storage.Session, *storage.Stats, error) {
	sessions, err := store.RecentSessions(gameID, MaxSessions)
	if err != nil {
		return nil, nil, err
	}
	stats, err := store.GameStats(gameID)
	if err != nil {
		return nil, nil, err
	}
	return sessions, stats, nil
}

// createTable creates a new table with columns sized to the window.
func (m *SessionsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Player", Width: 10},
		{Title: "Ticks", Width: 7},
		{Title: "Distance", Width: 9},
		{Title: "Mode", Width: 13},
		{Title: "Time", Width: 7},
		{Title: "Date", Width: 13},
	}

	// Give spare width to the player column
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if spare := m.width - 6 - used; spare > 0 {
		columns[1].Width += min(spare, 14)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
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

// sessionRows formats sessions as table rows, newest first.
func sessionRows(sessions []storage.Session) []table.Row {
	rows := make([]table.Row, len(sessions))
	for i, s := range sessions {
		rows[i] = table.Row{
			fmt.Sprintf("%d", s.ID),
			s.Player,
			fmt.Sprintf("%d", s.Ticks),
			fmt.Sprintf("%.2f", s.Distance),
			s.FinalMode,
			fmt.Sprintf("%.1fs", s.Duration),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

func (m *SessionsModel) updateTableRows() {
	m.table.SetRows(sessionRows(m.sessions))
	m.table.GotoTop()
}

// Init initializes the session log model.
func (m SessionsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the session log.
func (m SessionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the session log.
func (m SessionsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("SESSIONS - "+m.title, m.width)))
	b.WriteString("\n\n")

	if m.stats != nil {
		statStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
		line := fmt.Sprintf("%d sessions  %d ticks  %.2f total distance  %.2f best",
			m.stats.Sessions, m.stats.TotalTicks, m.stats.TotalDistance, m.stats.BestDistance)
		b.WriteString(statStyle.Render(centerText(line, m.width)))
		b.WriteString("\n\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m SessionsModel) renderTableContent() string {
	if len(m.sessions) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No sessions recorded yet.\nPlay a round to start the log!")
	}

	return m.table.View()
}

// centerText pads text on the left to center it in width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunSessions shows the session log for a game.
func RunSessions(store *storage.Store, gameID, title string, width, height int) error {
	sessions, stats, err := LoadSessions(store, gameID)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		NewSessionsModel(gameID, title, sessions, stats, width, height),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
