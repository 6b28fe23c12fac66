package life

import "math/rand/v2"

// NewCellLastUpdated marks cells added by a resize, distinct from a birth.
const NewCellLastUpdated = 1

// TargetDims computes the grid size that fits a viewport of the given pixel
// size. A non-positive cell size or viewport yields empty dimensions.
func TargetDims(viewW, viewH, cellSize int) GridDims {
	if cellSize <= 0 || viewW <= 0 || viewH <= 0 {
		return GridDims{}
	}
	return GridDims{Columns: viewW / cellSize, Rows: viewH / cellSize}
}

// ResizeGrid fits g to target in place.
//
// With trim, rows and columns past target are discarded first. Then the
// grid grows: missing rows and columns are appended with cells that are
// alive with probability one half and carry NewCellLastUpdated. Existing
// cells are never touched. Without trim a grid wider or taller than target
// keeps its extent, and every row is extended to the common width so the
// grid stays rectangular.
func ResizeGrid(g *Grid, target GridDims, trim bool, rng *rand.Rand) {
	if target.Empty() {
		return
	}

	if trim {
		if len(g.rows) > target.Rows {
			g.rows = g.rows[:target.Rows]
		}
		for r := range g.rows {
			if len(g.rows[r]) > target.Columns {
				g.rows[r] = g.rows[r][:target.Columns]
			}
		}
	}

	width := max(g.Width(), target.Columns)
	for len(g.rows) < target.Rows {
		g.rows = append(g.rows, nil)
	}
	for r := range g.rows {
		for len(g.rows[r]) < width {
			g.rows[r] = append(g.rows[r], Cell{
				Alive:       rng.IntN(2) == 1,
				LastUpdated: NewCellLastUpdated,
			})
		}
	}
}
