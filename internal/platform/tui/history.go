package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-life/internal/registry"
	"github.com/vovakirdan/tui-life/internal/storage"
)

const maxHistoryRows = 100

// HistoryKeyMap defines the key bindings for the run history.
type HistoryKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextRule   key.Binding
	PrevRule   key.Binding
	ToggleSort key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextRule, k.PrevRule, k.ToggleSort, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextRule, k.PrevRule},
		{k.ToggleSort, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextRule: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next rule"),
		),
		PrevRule: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev rule"),
		),
		ToggleSort: key.NewBinding(
			key.WithKeys("tab", "s"),
			key.WithHelp("tab", "recent/longest"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ruleFilter is one entry of the rule selector; an empty Rule matches all.
type ruleFilter struct {
	Label string
	Rule  string
}

// HistoryModel is the Bubble Tea model listing saved runs.
type HistoryModel struct {
	store    *storage.Store
	filters  []ruleFilter
	cursor   int
	longest  bool
	runs     []storage.Run
	err      error
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	quitting bool
}

// NewHistoryModel creates a run history model.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	filters := []ruleFilter{{Label: "all rules"}}
	for _, p := range registry.List() {
		filters = append(filters, ruleFilter{Label: p.Title, Rule: p.Notation()})
	}

	m := HistoryModel{
		store:   store,
		filters: filters,
		keys:    DefaultHistoryKeyMap(),
		help:    help.New(),
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	m.loadRuns()
	return m
}

func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Rule", Width: 16},
		{Title: "Host", Width: 5},
		{Title: "Grid", Width: 9},
		{Title: "Gens", Width: 8},
		{Title: "Peak", Width: 7},
		{Title: "Final", Width: 7},
		{Title: "Time", Width: 9},
		{Title: "Date", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
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

// loadRuns queries the store for the selected view.
func (m *HistoryModel) loadRuns() {
	m.runs, m.err = nil, nil
	if m.store != nil {
		rule := m.filters[m.cursor].Rule
		if m.longest || rule != "" {
			m.runs, m.err = m.store.LongestRuns(rule, maxHistoryRows)
		} else {
			m.runs, m.err = m.store.RecentRuns(maxHistoryRows)
		}
	}
	m.updateTableRows()
}

func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			r.Rule,
			r.Host,
			fmt.Sprintf("%dx%d", r.Columns, r.Rows),
			fmt.Sprintf("%d", r.Generations),
			fmt.Sprintf("%d", r.PeakPopulation),
			fmt.Sprintf("%d", r.FinalPopulation),
			r.Duration.Round(time.Second).String(),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the run history.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.ToggleSort):
			m.longest = !m.longest
			m.loadRuns()
			return m, nil

		case key.Matches(msg, m.keys.NextRule):
			m.cursor = (m.cursor + 1) % len(m.filters)
			m.loadRuns()
			return m, nil

		case key.Matches(msg, m.keys.PrevRule):
			m.cursor = (m.cursor - 1 + len(m.filters)) % len(m.filters)
			m.loadRuns()
			return m, nil
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

// Title returns the heading for the current view.
func (m HistoryModel) Title() string {
	order := "RECENT RUNS"
	if m.longest || m.filters[m.cursor].Rule != "" {
		order = "LONGEST RUNS"
	}
	return fmt.Sprintf("%s - %s", order, m.filters[m.cursor].Label)
}

// View renders the run history.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(m.Title()))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(boxStyle.Render(m.tableContent()))

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(m.help.View(m.keys)))
	return b.String()
}

func (m HistoryModel) tableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)
	switch {
	case m.err != nil:
		return emptyStyle.Render("Could not load runs: " + m.err.Error())
	case len(m.runs) == 0:
		return emptyStyle.Render("No runs recorded yet.\nQuit a simulation to save one.")
	}
	return m.table.View()
}

// RunHistory shows the run history browser.
func RunHistory(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewHistoryModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
