package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-life/internal/registry"
	"github.com/vovakirdan/tui-life/internal/storage"
)

// MenuKeyMap defines the key bindings of the preset picker.
type MenuKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	History key.Binding
	Quit    key.Binding
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k")),
		Down:    key.NewBinding(key.WithKeys("down", "j")),
		Select:  key.NewBinding(key.WithKeys("enter", " ")),
		History: key.NewBinding(key.WithKeys("tab", "H")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

// MenuItem is one selectable rule preset.
type MenuItem struct {
	Preset registry.Preset
	Peak   int // best peak population on record, 0 when unknown
}

// MenuModel is the Bubble Tea model for the preset picker.
type MenuModel struct {
	items       []MenuItem
	cursor      int
	width       int
	height      int
	keys        MenuKeyMap
	quitting    bool
	selected    *MenuItem
	openHistory bool
}

// NewMenuModel lists the registered presets, placing current first when set.
func NewMenuModel(store *storage.Store, current string, width, height int) MenuModel {
	presets := registry.List()
	items := make([]MenuItem, 0, len(presets))
	cursor := 0
	for i, p := range presets {
		item := MenuItem{Preset: p}
		if store != nil {
			if peak, err := store.PeakPopulation(p.Notation()); err == nil {
				item.Peak = peak
			}
		}
		if p.ID == current {
			cursor = i
		}
		items = append(items, item)
	}

	return MenuModel{
		items:  items,
		cursor: cursor,
		width:  width,
		height: height,
		keys:   DefaultMenuKeyMap(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case key.Matches(msg, m.keys.History):
		m.openHistory = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText("  G A M E   O F   L I F E  ", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a rule", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-20s %-14s", cursor, item.Preset.Title, item.Preset.Notation())
		if item.Peak > 0 {
			line += fmt.Sprintf(" peak %d", item.Peak)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Up/Down: Navigate  |  Enter: Run  |  Tab: History  |  Q: Quit", m.width))
	b.WriteString("\n")
	return b.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	PresetID     string
	WantsHistory bool
	Quit         bool
}

// RunMenu runs the preset picker and returns the selection.
func RunMenu(store *storage.Store, current string) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(store, current, 80, 24),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{}, err
	}
	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Quit: true}, nil
	}

	switch {
	case m.openHistory:
		return MenuResult{WantsHistory: true}, nil
	case m.selected != nil:
		return MenuResult{PresetID: m.selected.Preset.ID}, nil
	default:
		return MenuResult{Quit: true}, nil
	}
}
