package life

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-life/internal/core"
)

func TestNormalizeWidth(t *testing.T) {
	for in, want := range map[int]int{-3: 1, 0: 1, 1: 1, 2: 3, 3: 3, 4: 5, 9: 9} {
		assert.Equal(t, want, NormalizeWidth(in), "width %d", in)
	}
	assert.Equal(t, 2, BrushState{Width: 4}.HalfWidth())
}

func TestParseBrushMode(t *testing.T) {
	assert.Equal(t, BrushDraw, ParseBrushMode("draw"))
	assert.Equal(t, BrushErase, ParseBrushMode("e"))
	assert.Equal(t, BrushInactive, ParseBrushMode("whatever"))
	assert.Equal(t, "erase", BrushErase.String())
}

// overlayEngine returns a 5x5 engine with 10px cells and all cells dead.
func overlayEngine(t *testing.T) (*Engine, *core.Screen, *core.Screen) {
	t.Helper()
	e := New(Config{FrameLengthMs: 100, CellSize: 10, ShowRecency: true, Rules: Conway(), Seed: 3})
	e.SetViewport(50, 50)
	e.Reset()
	e.Clear()
	require.Equal(t, GridDims{Columns: 5, Rows: 5}, e.CurrentDims())
	return e, core.NewScreen(50, 50), core.NewScreen(50, 50)
}

func TestOverlayDrawIsImmediate(t *testing.T) {
	e, board, cursor := overlayEngine(t)
	e.SetBrush(BrushState{Mode: BrushDraw, Width: 3})
	e.PointerDown(25, 25)

	region, ok := e.Overlay(board, cursor)
	require.True(t, ok)
	assert.Equal(t, core.NewRect(1, 1, 3, 3), region)
	assert.Zero(t, e.Generation(), "no step needed")

	g := e.Grid()
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			inside := r >= 1 && r <= 3 && c >= 1 && c <= 3
			assert.Equal(t, Cell{Alive: inside}, g.At(r, c), "(%d,%d)", r, c)
		}
	}

	assert.Equal(t, core.ColorJustBorn, board.GetCell(15, 15).Color, "touched region repainted")
	fresh := core.NewScreen(50, 50)
	e.Render(fresh)
	assert.Equal(t, core.ColorJustBorn, fresh.GetCell(35, 35).Color)
	assert.Equal(t, core.GlyphEmpty, fresh.Get(45, 45))
}

func TestOverlayErase(t *testing.T) {
	e, board, cursor := overlayEngine(t)
	e.Reset()
	e.SetBrush(BrushState{Mode: BrushErase, Width: 2})
	assert.Equal(t, 3, e.Brush().Width)

	e.PointerDown(0, 0)
	region, ok := e.Overlay(board, cursor)
	require.True(t, ok)
	assert.Equal(t, core.NewRect(0, 0, 2, 2), region, "clipped to the grid")
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			assert.Equal(t, Cell{}, e.Grid().At(r, c))
		}
	}
}

func TestOverlayGuards(t *testing.T) {
	tests := []struct {
		name  string
		setup func(e *Engine)
	}{
		{"inactive brush", func(e *Engine) {
			e.SetBrush(BrushState{Mode: BrushInactive, Width: 3})
			e.PointerDown(25, 25)
		}},
		{"button not held", func(e *Engine) {
			e.SetBrush(BrushState{Mode: BrushDraw, Width: 3})
			e.PointerMove(25, 25)
		}},
		{"released", func(e *Engine) {
			e.SetBrush(BrushState{Mode: BrushDraw, Width: 3})
			e.PointerDown(25, 25)
			e.PointerUp()
		}},
		{"disarmed", func(e *Engine) {
			e.SetBrush(BrushState{Mode: BrushDraw, Width: 3})
			e.PointerDown(25, 25)
			e.SetArmed(false)
		}},
		{"pointer off grid", func(e *Engine) {
			e.SetBrush(BrushState{Mode: BrushDraw, Width: 3})
			e.PointerDown(-1, 25)
		}},
		{"no pointer yet", func(e *Engine) {
			e.SetBrush(BrushState{Mode: BrushDraw, Width: 3})
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, board, cursor := overlayEngine(t)
			tt.setup(e)
			_, ok := e.Overlay(board, cursor)
			assert.False(t, ok)
			assert.Zero(t, e.Grid().LiveCount())
		})
	}
}

func TestOverlayEmptyGrid(t *testing.T) {
	e := New(DefaultConfig())
	e.SetBrush(BrushState{Mode: BrushDraw, Width: 5})
	e.PointerDown(5, 5)
	_, ok := e.Overlay(nil, nil)
	assert.False(t, ok)
}

func TestDrawCursorFollowsPointer(t *testing.T) {
	e := New(Config{CellSize: 1, Rules: Conway(), Seed: 1})
	e.SetViewport(10, 10)
	e.Reset()
	cursor := core.NewScreen(10, 10)

	e.SetBrush(BrushState{Mode: BrushDraw, Width: 3})
	e.PointerMove(2, 2)
	e.DrawCursor(cursor)
	assert.True(t, cursor.GetCell(1, 1).Outline)
	assert.True(t, cursor.GetCell(3, 3).Outline)
	assert.False(t, cursor.GetCell(2, 2).Outline)

	e.PointerMove(7, 7)
	e.DrawCursor(cursor)
	assert.False(t, cursor.GetCell(1, 1).Outline, "previous outline cleared")
	assert.True(t, cursor.GetCell(6, 8).Outline)
}
