package life

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetDims(t *testing.T) {
	assert.Equal(t, GridDims{Columns: 12, Rows: 7}, TargetDims(125, 79, 10))
	assert.True(t, TargetDims(100, 100, 0).Empty())
	assert.True(t, TargetDims(0, 100, 10).Empty())
	assert.True(t, TargetDims(100, -3, 10).Empty())
}

func TestResizeGrowPreservesCells(t *testing.T) {
	g := NewRandomGrid(5, 5, testRand())
	g.MutateCell(0, 0, true, 42)
	before := g.Clone()

	ResizeGrid(g, GridDims{Columns: 8, Rows: 8}, false, testRand())
	require.Equal(t, GridDims{Columns: 8, Rows: 8}, g.Dims())

	added := 0
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			if r < 5 && c < 5 {
				require.Equal(t, before.At(r, c), g.At(r, c), "(%d,%d)", r, c)
				continue
			}
			require.Equal(t, NewCellLastUpdated, g.At(r, c).LastUpdated)
			added++
		}
	}
	assert.Equal(t, 39, added)
}

func TestResizeTrimTakesTopLeft(t *testing.T) {
	g := NewRandomGrid(10, 12, testRand())
	before := g.Clone()

	ResizeGrid(g, GridDims{Columns: 4, Rows: 6}, true, testRand())
	require.Equal(t, GridDims{Columns: 4, Rows: 6}, g.Dims())
	for r := 0; r < 6; r++ {
		for c := 0; c < 4; c++ {
			require.Equal(t, before.At(r, c), g.At(r, c))
		}
	}
}

func TestResizeTrimAndGrow(t *testing.T) {
	g := NewRandomGrid(6, 6, testRand())
	before := g.Clone()

	ResizeGrid(g, GridDims{Columns: 3, Rows: 9}, true, testRand())
	require.Equal(t, GridDims{Columns: 3, Rows: 9}, g.Dims())
	for r := 0; r < 6; r++ {
		for c := 0; c < 3; c++ {
			require.Equal(t, before.At(r, c), g.At(r, c))
		}
	}
	for c := 0; c < 3; c++ {
		assert.Equal(t, NewCellLastUpdated, g.At(8, c).LastUpdated)
	}
}

func TestResizeWithoutTrimStaysRectangular(t *testing.T) {
	g := NewRandomGrid(6, 6, testRand())
	before := g.Clone()

	// Shorter but wider viewport: rows past the target are kept and widened.
	ResizeGrid(g, GridDims{Columns: 9, Rows: 3}, false, testRand())
	require.Equal(t, GridDims{Columns: 9, Rows: 6}, g.Dims())
	for r := 0; r < g.Height(); r++ {
		require.Len(t, g.rows[r], 9)
	}
	for r := 0; r < 6; r++ {
		for c := 0; c < 6; c++ {
			require.Equal(t, before.At(r, c), g.At(r, c))
		}
	}
}

func TestResizeEmptyTargetIsNoop(t *testing.T) {
	g := NewRandomGrid(4, 4, testRand())
	before := g.Clone()
	ResizeGrid(g, GridDims{}, true, testRand())
	assert.Equal(t, before, g)
}

func TestResizeFromEmptyGrid(t *testing.T) {
	g := NewGrid(0, 0)
	ResizeGrid(g, GridDims{Columns: 3, Rows: 2}, false, testRand())
	assert.Equal(t, GridDims{Columns: 3, Rows: 2}, g.Dims())
}
