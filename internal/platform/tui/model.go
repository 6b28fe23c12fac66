package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/registry"
	"github.com/vovakirdan/tui-life/internal/storage"
)

// barLines is the number of terminal rows below the board.
const barLines = 2

// Options configures a Model.
type Options struct {
	Config    life.Config     // engine configuration
	Brush     life.BrushState // initial brush
	Preset    string          // preset ID the rules came from, if any
	FrameRate int             // display and overlay refreshes per second
	Host      string          // run history label: "tui" or "ssh"
	Store     *storage.Store  // optional run history
	Logger    *log.Logger
	Observer  life.StepObserver
	Styles    *Styles
}

// viewCache keeps the last rendered board so the frequent poll messages do
// not re-render an unchanged screen.
type viewCache struct {
	board   string
	dirty   bool
	outline core.Rect // brush outline last drawn on the cursor layer
	hasLine bool
}

// runStats accumulates the run summary saved when the program ends.
type runStats struct {
	started time.Time
	peak    int
	saved   bool
}

// Model is the Bubble Tea model hosting one life engine.
type Model struct {
	engine    *life.Engine
	defaults  life.Config
	board     *core.Screen
	cursor    *core.Screen
	styles    *Styles
	keys      KeyMap
	help      help.Model
	prompt    textinput.Model
	prompting bool
	showHelp  bool
	preset    string
	message   string
	frameRate int
	host      string
	store     *storage.Store
	logger    *log.Logger
	width     int
	height    int
	view      *viewCache
	run       *runStats
	quitting  bool
}

// NewModel creates a model and its engine. The grid is built on the first
// WindowSizeMsg.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Styles == nil {
		opts.Styles = NewStyles(nil)
	}
	if opts.Host == "" {
		opts.Host = "tui"
	}
	if opts.Preset == "" {
		if p, ok := registry.Lookup(opts.Config.Rules); ok {
			opts.Preset = p.ID
		}
	}

	engineOpts := []life.Option{life.WithLogger(logger)}
	if opts.Observer != nil {
		engineOpts = append(engineOpts, life.WithObserver(opts.Observer))
	}
	engine := life.New(opts.Config, engineOpts...)
	engine.SetBrush(opts.Brush)

	h := help.New()
	h.ShowAll = false

	return Model{
		engine:    engine,
		defaults:  opts.Config,
		board:     core.NewScreen(0, 0),
		cursor:    core.NewScreen(0, 0),
		styles:    opts.Styles,
		keys:      DefaultKeyMap(),
		help:      h,
		prompt:    newPrompt(),
		preset:    opts.Preset,
		frameRate: opts.FrameRate,
		host:      opts.Host,
		store:     opts.Store,
		logger:    logger,
		view:      &viewCache{dirty: true},
		run:       &runStats{started: time.Now()},
	}
}

// Engine returns the hosted engine.
func (m Model) Engine() *life.Engine {
	return m.engine
}

// Init starts the scheduler poll loop and the overlay loop.
func (m Model) Init() tea.Cmd {
	m.engine.Start(time.Now())
	return tea.Batch(pollCmd(), overlayCmd(m.frameRate))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.prompting {
			return m.updatePrompt(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case pollMsg:
		if m.engine.Poll(time.Time(msg)) {
			return m, stepCmd()
		}
		return m, pollCmd()

	case stepMsg:
		m.step(time.Time(msg))
		return m, pollCmd()

	case overlayMsg:
		_, painted := m.engine.Overlay(m.board, m.cursor)
		if painted {
			m.trackPeak()
		}
		outline, ok := m.engine.Outline()
		if painted || outline != m.view.outline || ok != m.view.hasLine {
			m.view.outline, m.view.hasLine = outline, ok
			m.view.dirty = true
		}
		return m, overlayCmd(m.frameRate)

	case ConfigMsg:
		return m.applyConfig(msg), nil
	}

	return m, nil
}

// step advances one generation and repaints the board.
func (m Model) step(now time.Time) {
	m.engine.Step(now)
	m.trackPeak()
	m.redraw()
}

func (m Model) trackPeak() {
	if pop := m.engine.Grid().LiveCount(); pop > m.run.peak {
		m.run.peak = pop
	}
}

// redraw repaints the whole board.
func (m Model) redraw() {
	m.engine.Render(m.board)
	m.view.dirty = true
}

// handleResize fits the board to the terminal. The first size builds a
// random grid; later sizes grow the grid without trimming.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.prompt.Width = max(msg.Width-4, 1)

	viewW, viewH := msg.Width/2, max(msg.Height-barLines, 0)
	m.board.Resize(viewW, viewH)
	m.cursor.Resize(viewW, viewH)
	m.engine.SetViewport(viewW, viewH)

	if m.engine.CurrentDims().Empty() {
		m.engine.Reset()
		m.run.peak = m.engine.Grid().LiveCount()
	} else {
		m.engine.Resize(false)
	}
	m.redraw()
	return m, nil
}

// handleMouse feeds the pointer to the draw overlay. The pointer over the
// status bar disarms the brush.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	px, py := msg.X/2, msg.Y
	m.engine.SetArmed(py < m.board.Height())

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.engine.PointerDown(px, py)
		}
	case tea.MouseActionRelease:
		m.engine.PointerMove(px, py)
		m.engine.PointerUp()
	default:
		m.engine.PointerMove(px, py)
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.message = ""
	cfg := m.engine.Config()

	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		m.saveRun()
		return m, tea.Quit

	case core.ActionTogglePause:
		m.engine.TogglePause()
		m.view.dirty = true

	case core.ActionStep:
		if m.engine.Paused() {
			m.step(time.Now())
		}

	case core.ActionReset:
		m.engine.Reset()
		m.redraw()

	case core.ActionResetAll:
		m.engine.ResetAll(m.defaults)
		m.preset = presetFor(m.defaults.Rules)
		m.redraw()

	case core.ActionClear:
		m.engine.Clear()
		m.redraw()

	case core.ActionTrim:
		m.engine.Resize(true)
		m.redraw()

	case core.ActionToggleRecency:
		cfg.ShowRecency = !cfg.ShowRecency
		m.engine.Configure(cfg)
		m.redraw()

	case core.ActionBrushDraw:
		m.setBrushMode(life.BrushDraw)
	case core.ActionBrushErase:
		m.setBrushMode(life.BrushErase)
	case core.ActionBrushOff:
		m.setBrushMode(life.BrushInactive)

	case core.ActionBrushGrow:
		b := m.engine.Brush()
		b.Width += 2
		m.engine.SetBrush(b)
	case core.ActionBrushShrink:
		b := m.engine.Brush()
		b.Width = max(b.Width-2, 1)
		m.engine.SetBrush(b)

	case core.ActionFaster:
		cfg.FrameLengthMs = nextFrameLength(cfg.FrameLengthMs, true)
		m.engine.Configure(cfg)
	case core.ActionSlower:
		cfg.FrameLengthMs = nextFrameLength(cfg.FrameLengthMs, false)
		m.engine.Configure(cfg)

	case core.ActionZoomIn:
		cfg.CellSize++
		m.engine.Configure(cfg)
		m.redraw()
	case core.ActionZoomOut:
		if cfg.CellSize > 1 {
			cfg.CellSize--
			m.engine.Configure(cfg)
			m.redraw()
		}

	case core.ActionNextPreset:
		p := registry.Next(m.preset)
		cfg.Rules = p.Rules
		m.engine.Configure(cfg)
		m.preset = p.ID
		m.message = p.Title

	case core.ActionPrompt:
		m.prompting = true
		m.prompt.SetValue("")
		cmd := m.prompt.Focus()
		return m, cmd

	case core.ActionHelp:
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	}

	m.view.dirty = true
	return m, nil
}

func (m Model) setBrushMode(mode life.BrushMode) {
	b := m.engine.Brush()
	b.Mode = mode
	m.engine.SetBrush(b)
}

// applyConfig installs a reloaded configuration.
func (m Model) applyConfig(msg ConfigMsg) Model {
	m.defaults = msg.Config
	m.engine.Configure(msg.Config)
	m.engine.SetBrush(msg.Brush)
	m.preset = presetFor(msg.Config.Rules)
	m.message = "config reloaded"
	m.redraw()
	return m
}

func presetFor(rules life.RuleSet) string {
	if p, ok := registry.Lookup(rules); ok {
		return p.ID
	}
	return ""
}

// nextFrameLength scales the frame length by 1.5 in either direction.
func nextFrameLength(ms int, faster bool) int {
	if faster {
		return ms * 2 / 3
	}
	return max(ms*3/2, ms+1)
}

// saveRun records the run summary once.
func (m Model) saveRun() {
	if m.store == nil || m.run.saved {
		return
	}
	m.run.saved = true
	st := m.engine.Stats()
	_, err := m.store.SaveRun(storage.Run{
		Host:            m.host,
		Rule:            st.Rule,
		Columns:         st.Dims.Columns,
		Rows:            st.Dims.Rows,
		Generations:     st.Generation,
		PeakPopulation:  max(m.run.peak, st.Population),
		FinalPopulation: st.Population,
		Duration:        time.Since(m.run.started),
	})
	if err != nil {
		m.logger.Warn("could not save run", "err", err)
	}
}

// View renders the board and the status bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.helpView()
	}
	if m.view.dirty {
		m.view.board = RenderScreen(m.board, m.cursor, m.styles)
		m.view.dirty = false
	}
	return m.view.board + "\n" + m.statusView()
}

// Run starts the Bubble Tea program and returns the final model.
// ready, when set, receives the program so other goroutines can Send to it.
func Run(opts Options, ready func(*tea.Program)) (Model, error) {
	model := NewModel(opts)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Brush outline follows the pointer
	)
	if ready != nil {
		ready(p)
	}

	final, err := p.Run()
	model.saveRun()
	if m, ok := final.(Model); ok {
		return m, err
	}
	return Model{}, err
}
