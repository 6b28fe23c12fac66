//go:build ebiten

package gui

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/registry"
	"github.com/vovakirdan/tui-life/internal/storage"
)

// keyBindings maps just-pressed keys to host actions.
var keyBindings = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeySpace, core.ActionTogglePause},
	{ebiten.KeyP, core.ActionTogglePause},
	{ebiten.KeyN, core.ActionStep},
	{ebiten.KeyC, core.ActionClear},
	{ebiten.KeyT, core.ActionTrim},
	{ebiten.KeyV, core.ActionToggleRecency},
	{ebiten.KeyD, core.ActionBrushDraw},
	{ebiten.KeyE, core.ActionBrushErase},
	{ebiten.KeyX, core.ActionBrushOff},
	{ebiten.KeyBracketRight, core.ActionBrushGrow},
	{ebiten.KeyBracketLeft, core.ActionBrushShrink},
	{ebiten.KeyEqual, core.ActionFaster},
	{ebiten.KeyMinus, core.ActionSlower},
	{ebiten.KeyPeriod, core.ActionZoomIn},
	{ebiten.KeyComma, core.ActionZoomOut},
	{ebiten.KeyTab, core.ActionNextPreset},
	{ebiten.KeyH, core.ActionHelp},
	{ebiten.KeyQ, core.ActionQuit},
	{ebiten.KeyEscape, core.ActionQuit},
}

// Game adapts a life engine to the ebiten.Game interface.
type Game struct {
	engine   *life.Engine
	defaults life.Config
	board    *imageSurface
	cursor   *imageSurface
	store    *storage.Store
	logger   *log.Logger
	preset   string
	showHUD  bool

	width, height    int // current surface size
	layoutW, layoutH int // size requested by the last Layout call

	started time.Time
	peak    int
	saved   bool
}

// NewGame creates a game for a window of the given size.
func NewGame(opts Options) *Game {
	opts = opts.withDefaults()
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	engineOpts := []life.Option{life.WithLogger(logger)}
	if opts.Observer != nil {
		engineOpts = append(engineOpts, life.WithObserver(opts.Observer))
	}
	engine := life.New(opts.Config, engineOpts...)
	engine.SetBrush(opts.Brush)

	g := &Game{
		engine:   engine,
		defaults: opts.Config,
		store:    opts.Store,
		logger:   logger,
		showHUD:  true,
		layoutW:  opts.Width,
		layoutH:  opts.Height,
		started:  time.Now(),
	}
	if p, ok := registry.Lookup(opts.Config.Rules); ok {
		g.preset = p.ID
	}
	g.resize(opts.Width, opts.Height)
	engine.Reset()
	engine.Render(g.board)
	engine.Start(time.Now())
	return g
}

// resize reallocates the layers and grows the grid to the new viewport.
func (g *Game) resize(w, h int) {
	g.width, g.height = w, h
	g.board = newImageSurface(w, h)
	g.cursor = newImageSurface(w, h)
	g.engine.SetViewport(w, h)
	if !g.engine.CurrentDims().Empty() {
		g.engine.Resize(false)
		g.engine.Render(g.board)
	}
}

// Update polls the scheduler, handles input and runs the draw overlay.
func (g *Game) Update() error {
	now := time.Now()

	if g.layoutW != g.width || g.layoutH != g.height {
		g.resize(g.layoutW, g.layoutH)
	}

	for _, kb := range keyBindings {
		if !inpututil.IsKeyJustPressed(kb.key) {
			continue
		}
		if kb.action == core.ActionQuit {
			g.saveRun()
			return ebiten.Termination
		}
		g.apply(kb.action)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			g.apply(core.ActionResetAll)
		} else {
			g.apply(core.ActionReset)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	g.handlePointer()

	if g.engine.Poll(now) {
		g.engine.Step(now)
		g.engine.Render(g.board)
		g.trackPeak()
	}
	if _, painted := g.engine.Overlay(g.board, g.cursor); painted {
		g.trackPeak()
	}
	return nil
}

func (g *Game) handlePointer() {
	x, y := ebiten.CursorPosition()
	g.engine.SetArmed(!g.showHUD || y >= hudHeight)

	ev := core.PointerEvent{Kind: core.PointerMove, X: x, Y: y}
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		ev.Kind = core.PointerDown
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		ev.Kind = core.PointerUp
	}
	g.engine.HandlePointer(ev)
}

// apply runs a host action against the engine.
func (g *Game) apply(a core.Action) {
	cfg := g.engine.Config()
	brush := g.engine.Brush()

	switch a {
	case core.ActionTogglePause:
		g.engine.TogglePause()
	case core.ActionStep:
		if g.engine.Paused() {
			g.engine.Step(time.Now())
		}
	case core.ActionReset:
		g.engine.Reset()
	case core.ActionResetAll:
		g.engine.ResetAll(g.defaults)
		g.preset = ""
		if p, ok := registry.Lookup(g.defaults.Rules); ok {
			g.preset = p.ID
		}
	case core.ActionClear:
		g.engine.Clear()
	case core.ActionTrim:
		g.engine.Resize(true)
	case core.ActionToggleRecency:
		cfg.ShowRecency = !cfg.ShowRecency
		g.engine.Configure(cfg)
	case core.ActionBrushDraw:
		brush.Mode = life.BrushDraw
		g.engine.SetBrush(brush)
	case core.ActionBrushErase:
		brush.Mode = life.BrushErase
		g.engine.SetBrush(brush)
	case core.ActionBrushOff:
		brush.Mode = life.BrushInactive
		g.engine.SetBrush(brush)
	case core.ActionBrushGrow:
		brush.Width += 2
		g.engine.SetBrush(brush)
	case core.ActionBrushShrink:
		brush.Width = max(brush.Width-2, 1)
		g.engine.SetBrush(brush)
	case core.ActionFaster:
		cfg.FrameLengthMs = cfg.FrameLengthMs * 2 / 3
		g.engine.Configure(cfg)
	case core.ActionSlower:
		cfg.FrameLengthMs = max(cfg.FrameLengthMs*3/2, cfg.FrameLengthMs+1)
		g.engine.Configure(cfg)
	case core.ActionZoomIn:
		cfg.CellSize++
		g.engine.Configure(cfg)
	case core.ActionZoomOut:
		cfg.CellSize = max(cfg.CellSize-1, 1)
		g.engine.Configure(cfg)
	case core.ActionNextPreset:
		p := registry.Next(g.preset)
		cfg.Rules = p.Rules
		g.engine.Configure(cfg)
		g.preset = p.ID
	case core.ActionHelp:
		g.showHUD = !g.showHUD
	}
	g.engine.Render(g.board)
}

func (g *Game) trackPeak() {
	if pop := g.engine.Grid().LiveCount(); pop > g.peak {
		g.peak = pop
	}
}

// saveRun records the run summary once.
func (g *Game) saveRun() {
	if g.store == nil || g.saved {
		return
	}
	g.saved = true
	st := g.engine.Stats()
	_, err := g.store.SaveRun(storage.Run{
		Host:            "gui",
		Rule:            st.Rule,
		Columns:         st.Dims.Columns,
		Rows:            st.Dims.Rows,
		Generations:     st.Generation,
		PeakPopulation:  max(g.peak, st.Population),
		FinalPopulation: st.Population,
		Duration:        time.Since(g.started),
	})
	if err != nil {
		g.logger.Warn("could not save run", "err", err)
	}
}

// Draw composes the board, the brush layer and the status line.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(rgba(core.ColorBackground))
	screen.DrawImage(g.board.img, nil)
	screen.DrawImage(g.cursor.img, nil)
	if g.showHUD {
		ebitenutil.DebugPrint(screen, g.status())
	}
}

func (g *Game) status() string {
	st := g.engine.Stats()
	state := "running"
	if st.Paused {
		state = "paused"
	}
	return fmt.Sprintf("%s  gen %d  pop %d  grid %dx%d  %s %s  %dms  brush %s/%d  %.0f tps",
		state, st.Generation, st.Population, st.Dims.Columns, st.Dims.Rows,
		g.preset, st.Rule, st.FrameLengthMs, st.Brush.Mode, st.Brush.Width, ebiten.ActualTPS())
}

// Layout follows the window size; a change is applied on the next Update.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.layoutW, g.layoutH = max(outsideWidth, 1), max(outsideHeight, 1)
	return g.layoutW, g.layoutH
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	opts = opts.withDefaults()
	game := NewGame(opts)

	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.TPS)

	err := ebiten.RunGame(game)
	game.saveRun()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
