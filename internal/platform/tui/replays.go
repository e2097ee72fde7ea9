package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-shooter/internal/registry"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

// maxReplays is how many replays the browser loads per tab.
const maxReplays = 100

var (
	browserTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	tabStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle    = lipgloss.NewStyle().Bold(true).
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57")).
				Padding(0, 1)
	browserFrameStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1)
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 2)
)

// replayTab filters the browser by mode. The empty ID shows every mode.
type replayTab struct {
	ID    string
	Title string
}

// ReplayBrowserModel is the Bubble Tea model for the recorded runs screen.
type ReplayBrowserModel struct {
	tabs      []replayTab
	cursor    int
	store     *storage.Store
	replays   []storage.ReplaySummary
	err       error
	table     table.Model
	help      help.Model
	keys      MenuKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewReplayBrowserModel creates a browser showing replays of every mode.
func NewReplayBrowserModel(store *storage.Store, width, height int) ReplayBrowserModel {
	tabs := []replayTab{{Title: "All"}}
	for _, g := range registry.List() {
		tabs = append(tabs, replayTab{ID: g.ID, Title: g.Title})
	}

	m := ReplayBrowserModel{
		tabs:   tabs,
		store:  store,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadReplays()
	return m
}

// createTable creates a table sized to the window.
func (m *ReplayBrowserModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 10},
		{Title: "Mode", Width: 16},
		{Title: "Ticks", Width: 8},
		{Title: "Commands", Width: 9},
		{Title: "Date", Width: min(max(m.width-55, 12), 20)},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
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

// loadReplays loads replays for the selected tab.
func (m *ReplayBrowserModel) loadReplays() {
	m.replays, m.err = nil, nil
	if m.store != nil {
		m.replays, m.err = m.store.ListReplays(m.tabs[m.cursor].ID, maxReplays)
	}

	rows := make([]table.Row, len(m.replays))
	for i, r := range m.replays {
		rows[i] = table.Row{
			shortID(r.ID),
			r.Mode,
			fmt.Sprintf("%d", r.Ticks),
			fmt.Sprintf("%d", r.CommandCount),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// deleteSelected removes the highlighted replay and reloads the tab.
func (m *ReplayBrowserModel) deleteSelected() {
	i := m.table.Cursor()
	if m.store == nil || i < 0 || i >= len(m.replays) {
		return
	}
	if err := m.store.DeleteReplay(m.replays[i].ID); err != nil {
		m.err = err
		return
	}
	m.loadReplays()
	m.table.SetCursor(min(i, len(m.replays)-1))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Init initializes the browser model.
func (m ReplayBrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m ReplayBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

		case key.Matches(msg, m.keys.Right), key.Matches(msg, m.keys.Replays):
			m.cursor = (m.cursor + 1) % len(m.tabs)
			m.loadReplays()
			return m, nil

		case key.Matches(msg, m.keys.Left):
			m.cursor = (m.cursor - 1 + len(m.tabs)) % len(m.tabs)
			m.loadReplays()
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			m.deleteSelected()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.loadReplays()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m ReplayBrowserModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(browserTitleStyle.Render("REPLAYS"), m.width))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.cursor {
			tabs[i] = activeTabStyle.Render(tab.Title)
		} else {
			tabs[i] = tabStyle.Render(tab.Title)
		}
	}
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n\n")

	var content string
	switch {
	case m.err != nil:
		content = emptyStyle.Render("Cannot load replays: " + m.err.Error())
	case len(m.replays) == 0:
		content = emptyStyle.Render("No replays recorded yet.\nPlay with --record to keep a run.")
	default:
		content = m.table.View()
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, browserFrameStyle.Render(content)))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ReplayBrowserModel) IsGoingBack() bool {
	return m.goingBack
}

// RunReplayBrowser runs the replay browser screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunReplayBrowser(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewReplayBrowserModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("tui: %w", err)
	}

	m, ok := finalModel.(ReplayBrowserModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
