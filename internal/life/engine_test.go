package life

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-life/internal/core"
)

type recordingObserver struct {
	steps   int
	lastPop int
	brushed int
	resizes []GridDims
}

func (o *recordingObserver) ObserveStep(_ time.Duration, population int) {
	o.steps++
	o.lastPop = population
}

func (o *recordingObserver) ObserveBrush(_ BrushMode, cells int) { o.brushed += cells }

func (o *recordingObserver) ObserveResize(d GridDims) { o.resizes = append(o.resizes, d) }

func newTestEngine(t *testing.T, frameMs int) *Engine {
	t.Helper()
	e := New(Config{FrameLengthMs: frameMs, CellSize: 10, ShowRecency: true, Rules: Conway(), Seed: 42})
	e.SetViewport(100, 80)
	e.Reset()
	return e
}

func TestEngineResetFitsViewport(t *testing.T) {
	e := newTestEngine(t, 100)
	assert.Equal(t, GridDims{Columns: 10, Rows: 8}, e.CurrentDims())
	assert.Equal(t, e.CurrentDims(), e.Grid().Dims())
	assert.Positive(t, e.Grid().LiveCount())
}

func TestEngineSeedIsDeterministic(t *testing.T) {
	a := newTestEngine(t, 100)
	b := newTestEngine(t, 100)
	assert.Equal(t, a.Grid().String(), b.Grid().String())
}

func TestEnginePollAndStep(t *testing.T) {
	e := newTestEngine(t, 100)

	assert.False(t, e.Poll(epoch), "first poll arms the scheduler")
	assert.False(t, e.Poll(epoch.Add(50*time.Millisecond)))
	require.True(t, e.Poll(epoch.Add(100*time.Millisecond)))

	before := e.Grid().Clone()
	e.Step(epoch.Add(101 * time.Millisecond))
	assert.Equal(t, 1, e.Generation())
	assert.Equal(t, Step(before, Conway()).String(), e.Grid().String())

	assert.False(t, e.Poll(epoch.Add(150*time.Millisecond)))
	assert.True(t, e.Poll(epoch.Add(201*time.Millisecond)))
}

func TestEngineFrameLengthReadEveryPoll(t *testing.T) {
	e := newTestEngine(t, 5000)
	e.Start(epoch)
	assert.False(t, e.Poll(epoch.Add(300*time.Millisecond)))

	cfg := e.Config()
	cfg.FrameLengthMs = 200
	e.Configure(cfg)
	assert.True(t, e.Poll(epoch.Add(301*time.Millisecond)))
}

func TestEnginePauseResume(t *testing.T) {
	e := newTestEngine(t, 100)
	e.Start(epoch)
	e.Pause()
	require.True(t, e.Paused())
	assert.False(t, e.Poll(epoch.Add(time.Minute)))

	assert.False(t, e.TogglePause())
	assert.True(t, e.Poll(epoch.Add(time.Minute)))

	e.Resume()
	assert.False(t, e.Paused())
}

func TestEngineOverlayRunsWhilePaused(t *testing.T) {
	e := newTestEngine(t, 100)
	e.Clear()
	e.Pause()
	e.SetBrush(BrushState{Mode: BrushDraw, Width: 1})
	e.PointerDown(15, 15)

	_, ok := e.Overlay(core.NewScreen(100, 80), core.NewScreen(100, 80))
	require.True(t, ok)
	assert.True(t, e.Grid().Alive(1, 1))
}

func TestEngineOutlineFollowsPointer(t *testing.T) {
	e := newTestEngine(t, 100)
	_, ok := e.Outline()
	assert.False(t, ok)

	e.SetBrush(BrushState{Mode: BrushDraw, Width: 1})
	e.PointerMove(15, 25)
	outline, ok := e.Outline()
	require.True(t, ok)
	assert.Equal(t, core.NewRect(10, 20, 10, 10), outline)

	e.PointerMove(19, 29)
	same, _ := e.Outline()
	assert.Equal(t, outline, same, "moving within a cell keeps the outline")
}

func TestEngineStepSeesOverlayWrites(t *testing.T) {
	e := newTestEngine(t, 100)
	e.Clear()
	e.SetBrush(BrushState{Mode: BrushDraw, Width: 1})
	for _, p := range [][2]int{{15, 25}, {25, 25}, {35, 25}} {
		e.PointerDown(p[0], p[1])
		_, ok := e.Overlay(nil, nil)
		require.True(t, ok)
	}
	e.PointerUp()

	e.Step(epoch)
	g := e.Grid()
	assert.True(t, g.Alive(1, 2))
	assert.True(t, g.Alive(2, 2))
	assert.True(t, g.Alive(3, 2))
	assert.Equal(t, 3, g.LiveCount())
}

func TestEngineCellSizeChangeTrims(t *testing.T) {
	e := newTestEngine(t, 100)
	before := e.Grid().Clone()

	cfg := e.Config()
	cfg.CellSize = 20
	e.Configure(cfg)

	require.Equal(t, GridDims{Columns: 5, Rows: 4}, e.CurrentDims())
	for r := 0; r < 4; r++ {
		for c := 0; c < 5; c++ {
			require.Equal(t, before.At(r, c), e.Grid().At(r, c))
		}
	}
}

func TestEngineResizeGrows(t *testing.T) {
	e := New(Config{CellSize: 10, Rules: Conway(), Seed: 9})
	e.SetViewport(50, 50)
	e.Reset()
	before := e.Grid().Clone()

	e.SetViewport(80, 80)
	dims := e.Resize(false)
	require.Equal(t, GridDims{Columns: 8, Rows: 8}, dims)

	added := 0
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			if r < 5 && c < 5 {
				require.Equal(t, before.At(r, c), e.Grid().At(r, c))
				continue
			}
			require.Equal(t, 1, e.Grid().At(r, c).LastUpdated)
			added++
		}
	}
	assert.Equal(t, 39, added)
}

func TestEngineResizeWithoutViewport(t *testing.T) {
	e := New(DefaultConfig())
	assert.True(t, e.Resize(true).Empty())

	e.SetViewport(100, 100)
	cfg := e.Config()
	cfg.CellSize = 0
	e.Configure(cfg)
	assert.True(t, e.Resize(false).Empty())
}

func TestEngineClearAndResetAll(t *testing.T) {
	e := newTestEngine(t, 100)
	e.Step(epoch)
	e.Clear()
	assert.Zero(t, e.Grid().LiveCount())
	assert.Equal(t, 1, e.Generation())

	cfg := e.Config()
	cfg.Rules = MustParseRule("B36/S23")
	e.Configure(cfg)
	assert.Equal(t, "B3,6/S2-3", e.Stats().Rule)

	e.ResetAll(DefaultConfig())
	assert.Equal(t, "B3/S2-3", e.Stats().Rule)
	assert.Zero(t, e.Generation())
	assert.Equal(t, GridDims{Columns: 10, Rows: 8}, e.CurrentDims())
}

func TestEngineObserver(t *testing.T) {
	obs := &recordingObserver{}
	e := New(Config{FrameLengthMs: 10, CellSize: 10, Rules: Conway(), Seed: 5}, WithObserver(obs), WithLogger(nil))
	e.SetViewport(100, 100)
	e.Reset()
	e.Step(epoch)
	population := e.Grid().LiveCount()

	e.SetBrush(BrushState{Mode: BrushErase, Width: 3})
	e.HandlePointer(core.PointerEvent{Kind: core.PointerDown, X: 50, Y: 50})
	e.Overlay(nil, nil)
	e.HandlePointer(core.PointerEvent{Kind: core.PointerUp, X: 50, Y: 50})

	assert.Equal(t, 1, obs.steps)
	assert.Equal(t, population, obs.lastPop)
	assert.Equal(t, 9, obs.brushed)
	assert.Equal(t, []GridDims{{Columns: 10, Rows: 10}}, obs.resizes)
}

func TestEngineConfigIsCopied(t *testing.T) {
	rules := Conway()
	e := New(Config{CellSize: 1, Rules: rules})
	rules.Survive[0].Max = 8

	got := e.Config()
	assert.Equal(t, 3, got.Rules.Survive[0].Max)
}
