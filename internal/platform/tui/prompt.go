package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/registry"
)

const promptHelp = "frame <ms> | cell <px> | rule <B/S> | preset <id> | brush <w|draw|erase|off> | recency on|off"

func newPrompt() textinput.Model {
	ti := textinput.New()
	ti.Prompt = ":"
	ti.Placeholder = promptHelp
	ti.CharLimit = 64
	return ti
}

// updatePrompt handles keys while the command prompt is open.
func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.prompting = false
		m.prompt.Blur()
		return m, nil
	case tea.KeyEnter:
		m.prompting = false
		m.prompt.Blur()
		var err error
		m, err = m.runCommand(m.prompt.Value())
		if err != nil {
			m.message = err.Error()
		}
		m.view.dirty = true
		return m, nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// runCommand applies one prompt command to the engine.
func (m Model) runCommand(line string) (Model, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return m, nil
	}
	name, args := strings.ToLower(fields[0]), fields[1:]
	arg := strings.Join(args, "")
	cfg := m.engine.Config()

	switch name {
	case "frame", "f":
		if arg == "" {
			return m, fmt.Errorf("frame: missing milliseconds")
		}
		cfg.FrameLengthMs = max(config.ParseNumber(arg), 0)
		m.engine.Configure(cfg)
		m.message = fmt.Sprintf("frame %dms", cfg.FrameLengthMs)

	case "cell", "zoom":
		n := config.ParseNumber(arg)
		if n < 1 {
			return m, fmt.Errorf("cell: size must be at least 1")
		}
		cfg.CellSize = n
		m.engine.Configure(cfg)
		m.redraw()
		m.message = fmt.Sprintf("cell %dpx", n)

	case "rule":
		rules, err := life.ParseRule(arg)
		if err != nil {
			return m, err
		}
		cfg.Rules = rules
		m.engine.Configure(cfg)
		m.preset = presetFor(rules)
		m.message = rules.String()

	case "preset":
		p, err := registry.Get(arg)
		if err != nil {
			return m, err
		}
		cfg.Rules = p.Rules
		m.engine.Configure(cfg)
		m.preset = p.ID
		m.message = p.Title

	case "brush":
		b := m.engine.Brush()
		switch w := config.ParseNumber(arg); {
		case w > 0:
			b.Width = w
		case arg == "off" || arg == "x":
			b.Mode = life.BrushInactive
		case life.ParseBrushMode(arg) != life.BrushInactive:
			b.Mode = life.ParseBrushMode(arg)
		default:
			return m, fmt.Errorf("brush: want a width or draw, erase, off")
		}
		m.engine.SetBrush(b)

	case "recency":
		switch strings.ToLower(arg) {
		case "on", "true", "1":
			cfg.ShowRecency = true
		case "off", "false", "0":
			cfg.ShowRecency = false
		default:
			return m, fmt.Errorf("recency: want on or off")
		}
		m.engine.Configure(cfg)
		m.redraw()

	default:
		return m, fmt.Errorf("unknown command %q", name)
	}
	return m, nil
}
