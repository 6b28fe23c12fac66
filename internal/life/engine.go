package life

import (
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-life/internal/core"
)

// StepObserver receives engine activity, e.g. for metrics.
type StepObserver interface {
	ObserveStep(elapsed time.Duration, population int)
	ObserveBrush(mode BrushMode, cells int)
	ObserveResize(dims GridDims)
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger. The default discards output.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithObserver attaches a StepObserver.
func WithObserver(o StepObserver) Option {
	return func(e *Engine) { e.observer = o }
}

// Stats is a snapshot for status lines and run history.
type Stats struct {
	Generation    int
	Population    int
	Dims          GridDims
	Paused        bool
	Rule          string
	FrameLengthMs int
	Brush         BrushState
}

// Engine owns one grid and everything that drives it: configuration,
// scheduler, overlay and viewport. All methods must be called from the
// host's single update loop.
type Engine struct {
	cfg        Config
	grid       *Grid
	rng        *rand.Rand
	viewW      int
	viewH      int
	dims       GridDims
	sched      Scheduler
	paused     bool
	overlay    DrawOverlay
	generation int

	logger   *log.Logger
	observer StepObserver
}

// New creates an engine with an empty grid. Call SetViewport and Reset or
// Resize before the first step.
func New(cfg Config, opts ...Option) *Engine {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg.Rules = cfg.Rules.Clone()
	e := &Engine{
		cfg:     cfg,
		grid:    NewGrid(0, 0),
		rng:     rand.New(rand.NewPCG(uint64(seed), 0)),
		overlay: NewDrawOverlay(),
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Config returns a copy of the current configuration.
func (e *Engine) Config() Config {
	cfg := e.cfg
	cfg.Rules = cfg.Rules.Clone()
	return cfg
}

// Configure replaces the configuration. Frame length, rules and recency
// apply from the next poll. A new cell size re-fits the grid with trim.
func (e *Engine) Configure(cfg Config) {
	cfg.Rules = cfg.Rules.Clone()
	resize := cfg.CellSize != e.cfg.CellSize
	e.cfg = cfg
	e.logger.Debug("configure",
		"rule", cfg.Rules.String(),
		"frame_ms", cfg.FrameLengthMs,
		"cell", cfg.CellSize,
		"recency", cfg.ShowRecency)
	if resize {
		e.Resize(true)
	}
}

// SetViewport records the viewport size in pixels. It does not resize;
// hosts call Resize when they want the grid to follow.
func (e *Engine) SetViewport(width, height int) {
	e.viewW, e.viewH = width, height
}

// Viewport returns the last viewport size in pixels.
func (e *Engine) Viewport() (width, height int) {
	return e.viewW, e.viewH
}

// Resize fits the grid to the viewport and publishes the new dimensions.
// It is a no-op while the viewport or cell size is zero.
func (e *Engine) Resize(trim bool) GridDims {
	target := TargetDims(e.viewW, e.viewH, e.cfg.CellSize)
	if target.Empty() {
		return e.dims
	}
	ResizeGrid(e.grid, target, trim, e.rng)
	e.publishDims()
	e.logger.Debug("resize", "trim", trim, "columns", e.dims.Columns, "rows", e.dims.Rows)
	return e.dims
}

// Reset re-randomizes every cell. With a known viewport the grid is rebuilt
// at the viewport size, otherwise the current cells are re-rolled in place.
func (e *Engine) Reset() {
	target := TargetDims(e.viewW, e.viewH, e.cfg.CellSize)
	if target.Empty() {
		e.grid.Randomize(e.rng)
	} else {
		e.grid.Replace(NewRandomGrid(target.Rows, target.Columns, e.rng))
	}
	e.generation = 0
	e.publishDims()
	e.logger.Debug("reset", "columns", e.dims.Columns, "rows", e.dims.Rows)
}

// ResetAll restores cfg and re-randomizes the grid.
func (e *Engine) ResetAll(cfg Config) {
	cfg.Rules = cfg.Rules.Clone()
	e.cfg = cfg
	e.Reset()
}

// Clear kills every cell.
func (e *Engine) Clear() {
	e.grid.Clear()
	e.logger.Debug("clear")
}

func (e *Engine) publishDims() {
	e.dims = e.grid.Dims()
	if e.observer != nil {
		e.observer.ObserveResize(e.dims)
	}
}

// CurrentDims returns the dimensions published by the last resize or reset.
func (e *Engine) CurrentDims() GridDims {
	return e.dims
}

// Grid exposes the live grid for read-only use by hosts and tests.
func (e *Engine) Grid() *Grid {
	return e.grid
}

// Pause stops new steps from firing.
func (e *Engine) Pause() { e.paused = true }

// Resume lets the next due check succeed. Elapsed time is not reset.
func (e *Engine) Resume() { e.paused = false }

// TogglePause flips the pause state and returns the new state.
func (e *Engine) TogglePause() bool {
	e.paused = !e.paused
	return e.paused
}

// Paused reports whether stepping is suspended.
func (e *Engine) Paused() bool { return e.paused }

// Start requests the first step, measured from now.
func (e *Engine) Start(now time.Time) {
	e.sched.Request(now)
}

// Poll is the scheduler entry point, called every PollInterval. It returns
// true once the pending step is due; the host then calls Step on its next
// display opportunity.
func (e *Engine) Poll(now time.Time) bool {
	if !e.sched.Pending() {
		e.sched.Request(now)
		return false
	}
	if !e.sched.Due(now, e.cfg.FrameLength(), e.paused) {
		return false
	}
	e.sched.Fire()
	return true
}

// Step advances one generation, publishes it and requests the next step.
// It runs regardless of pause so hosts can single-step.
func (e *Engine) Step(now time.Time) {
	started := time.Now()
	e.grid.Replace(Step(e.grid, e.cfg.Rules))
	e.generation++
	if e.observer != nil {
		e.observer.ObserveStep(time.Since(started), e.grid.LiveCount())
	}
	e.sched.Request(now)
}

// Generation returns the number of steps since the last reset.
func (e *Engine) Generation() int {
	return e.generation
}

// Render paints the whole grid onto s.
func (e *Engine) Render(s Surface) {
	Render(e.grid, s, e.cfg.CellSize, e.cfg.ShowRecency)
}

// SetBrush replaces the brush; the width is normalized to odd.
func (e *Engine) SetBrush(b BrushState) {
	e.overlay.SetBrush(b)
}

// Brush returns the current brush.
func (e *Engine) Brush() BrushState {
	return e.overlay.Brush()
}

// PointerMove records the pointer position in viewport pixels.
func (e *Engine) PointerMove(px, py int) { e.overlay.Move(px, py) }

// PointerDown records a primary button press at (px, py).
func (e *Engine) PointerDown(px, py int) {
	e.overlay.Move(px, py)
	e.overlay.Press()
}

// PointerUp records the primary button release.
func (e *Engine) PointerUp() { e.overlay.Release() }

// HandlePointer routes a host pointer event.
func (e *Engine) HandlePointer(ev core.PointerEvent) {
	switch ev.Kind {
	case core.PointerDown:
		e.PointerDown(ev.X, ev.Y)
	case core.PointerUp:
		e.overlay.Move(ev.X, ev.Y)
		e.PointerUp()
	default:
		e.PointerMove(ev.X, ev.Y)
	}
}

// SetArmed blocks painting while false.
func (e *Engine) SetArmed(armed bool) { e.overlay.SetArmed(armed) }

// Overlay is the draw-overlay entry point, called on its own cadence
// whatever the pause state. It paints the brush into the live grid,
// repaints only the touched cells on board and redraws the brush outline
// on cursor. It returns the touched cell region.
func (e *Engine) Overlay(board, cursor Surface) (core.Rect, bool) {
	region, ok := e.overlay.Apply(e.grid, e.cfg.CellSize)
	if ok {
		RenderRegion(e.grid, board, region, e.cfg.CellSize, e.cfg.ShowRecency)
		if e.observer != nil {
			e.observer.ObserveBrush(e.overlay.Brush().Mode, region.W*region.H)
		}
	}
	e.DrawCursor(cursor)
	return region, ok
}

// DrawCursor clears cursor and strokes the brush outline under the pointer.
func (e *Engine) DrawCursor(cursor Surface) {
	if cursor == nil {
		return
	}
	cursor.ClearRegion(cursor.Bounds())
	outline, ok := e.Outline()
	if !ok {
		return
	}
	cursor.StrokeRect(outline, core.ColorBrush)
}

// Outline returns the brush square under the pointer in viewport pixels.
func (e *Engine) Outline() (core.Rect, bool) {
	outline, ok := e.overlay.Outline(e.cfg.CellSize)
	if !ok {
		return core.Rect{}, false
	}
	return outline.Scale(e.cfg.CellSize), true
}

// Stats returns a snapshot of the engine state.
func (e *Engine) Stats() Stats {
	return Stats{
		Generation:    e.generation,
		Population:    e.grid.LiveCount(),
		Dims:          e.dims,
		Paused:        e.paused,
		Rule:          e.cfg.Rules.String(),
		FrameLengthMs: e.cfg.FrameLengthMs,
		Brush:         e.overlay.Brush(),
	}
}
