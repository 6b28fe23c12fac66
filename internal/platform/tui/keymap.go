package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-life/internal/core"
)

// KeyMap defines the key bindings of the life view.
type KeyMap struct {
	Pause         key.Binding
	Step          key.Binding
	Reset         key.Binding
	ResetAll      key.Binding
	Clear         key.Binding
	Trim          key.Binding
	ToggleRecency key.Binding
	BrushDraw     key.Binding
	BrushErase    key.Binding
	BrushOff      key.Binding
	BrushGrow     key.Binding
	BrushShrink   key.Binding
	Faster        key.Binding
	Slower        key.Binding
	ZoomIn        key.Binding
	ZoomOut       key.Binding
	NextPreset    key.Binding
	Prompt        key.Binding
	Help          key.Binding
	Quit          key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.BrushDraw, k.BrushErase, k.NextPreset, k.Prompt, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Step, k.Faster, k.Slower},
		{k.Reset, k.ResetAll, k.Clear, k.Trim},
		{k.BrushDraw, k.BrushErase, k.BrushOff, k.BrushGrow, k.BrushShrink},
		{k.ZoomIn, k.ZoomOut, k.ToggleRecency, k.NextPreset},
		{k.Prompt, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Pause:         key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space/p", "pause")),
		Step:          key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "step")),
		Reset:         key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset grid")),
		ResetAll:      key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reset grid+rules")),
		Clear:         key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		Trim:          key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "trim to view")),
		ToggleRecency: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "recency")),
		BrushDraw:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "draw")),
		BrushErase:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "erase")),
		BrushOff:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "brush off")),
		BrushGrow:     key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "wider brush")),
		BrushShrink:   key.NewBinding(key.WithKeys("["), key.WithHelp("[", "narrower brush")),
		Faster:        key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "faster")),
		Slower:        key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "slower")),
		ZoomIn:        key.NewBinding(key.WithKeys(">", "."), key.WithHelp(">", "bigger cells")),
		ZoomOut:       key.NewBinding(key.WithKeys("<", ","), key.WithHelp("<", "smaller cells")),
		NextPreset:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next rule")),
		Prompt:        key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "command")),
		Help:          key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:          key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Action translates a key message to a host action.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	bindings := []struct {
		b key.Binding
		a core.Action
	}{
		{k.Quit, core.ActionQuit},
		{k.Pause, core.ActionTogglePause},
		{k.Step, core.ActionStep},
		{k.ResetAll, core.ActionResetAll},
		{k.Reset, core.ActionReset},
		{k.Clear, core.ActionClear},
		{k.Trim, core.ActionTrim},
		{k.ToggleRecency, core.ActionToggleRecency},
		{k.BrushDraw, core.ActionBrushDraw},
		{k.BrushErase, core.ActionBrushErase},
		{k.BrushOff, core.ActionBrushOff},
		{k.BrushGrow, core.ActionBrushGrow},
		{k.BrushShrink, core.ActionBrushShrink},
		{k.Faster, core.ActionFaster},
		{k.Slower, core.ActionSlower},
		{k.ZoomIn, core.ActionZoomIn},
		{k.ZoomOut, core.ActionZoomOut},
		{k.NextPreset, core.ActionNextPreset},
		{k.Prompt, core.ActionPrompt},
		{k.Help, core.ActionHelp},
	}
	for _, kb := range bindings {
		if key.Matches(msg, kb.b) {
			return kb.a
		}
	}
	return core.ActionNone
}
