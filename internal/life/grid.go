// Package life implements the cellular-automaton engine: the cell grid,
// the range-based rule model, generation stepping, frame pacing, resize and
// trim, rendering onto a raster surface and the brush draw overlay.
//
// Nothing in this package is safe for concurrent use. Hosts drive an Engine
// from a single cooperative loop (a Bubble Tea Update or an ebiten Update).
package life

import "math/rand/v2"

// Cell is a single binary cell.
// LastUpdated counts consecutive generations alive since the last birth.
type Cell struct {
	Alive       bool
	LastUpdated int
}

// GridDims is a read-only projection of a grid's size.
type GridDims struct {
	Columns int
	Rows    int
}

// Empty reports whether the dimensions cover no cells.
func (d GridDims) Empty() bool {
	return d.Columns <= 0 || d.Rows <= 0
}

// Grid is a dense, row-major rectangle of cells.
// Every row holds exactly Width() cells.
type Grid struct {
	rows [][]Cell
}

// NewGrid allocates an all-dead grid.
func NewGrid(rows, columns int) *Grid {
	g := &Grid{}
	if rows <= 0 || columns <= 0 {
		return g
	}
	g.rows = make([][]Cell, rows)
	for i := range g.rows {
		g.rows[i] = make([]Cell, columns)
	}
	return g
}

// NewRandomGrid allocates a grid where each cell is alive with probability
// one half and LastUpdated is zero.
func NewRandomGrid(rows, columns int, rng *rand.Rand) *Grid {
	g := NewGrid(rows, columns)
	g.Randomize(rng)
	return g
}

// GridFromRows builds a grid from a text picture: '#', 'O', '*' and '1' are
// live cells, anything else is dead. Short rows are padded with dead cells.
func GridFromRows(lines ...string) *Grid {
	width := 0
	for _, l := range lines {
		if len(l) > width {
			width = len(l)
		}
	}
	g := NewGrid(len(lines), width)
	for r, l := range lines {
		for c := 0; c < len(l); c++ {
			switch l[c] {
			case '#', 'O', '*', '1':
				g.rows[r][c].Alive = true
			}
		}
	}
	return g
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return len(g.rows)
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	if len(g.rows) == 0 {
		return 0
	}
	return len(g.rows[0])
}

// Dims returns the grid size.
func (g *Grid) Dims() GridDims {
	return GridDims{Columns: g.Width(), Rows: g.Height()}
}

// InBounds reports whether (row, col) addresses a cell.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < len(g.rows) && col >= 0 && col < len(g.rows[row])
}

// At returns the cell at (row, col). Out-of-bounds positions read as a dead
// cell.
func (g *Grid) At(row, col int) Cell {
	if !g.InBounds(row, col) {
		return Cell{}
	}
	return g.rows[row][col]
}

// Alive reports whether the cell at (row, col) is alive.
func (g *Grid) Alive(row, col int) bool {
	return g.At(row, col).Alive
}

// NeighborCount counts live cells in the Moore neighbourhood of (row, col).
// Positions outside the grid are dead; there is no wraparound.
func (g *Grid) NeighborCount(row, col int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if g.Alive(row+dr, col+dc) {
				count++
			}
		}
	}
	return count
}

// Replace swaps in the contents of next in one assignment, so a reader never
// sees a half-built generation. next must not be used afterwards.
func (g *Grid) Replace(next *Grid) {
	if next == nil {
		return
	}
	g.rows = next.rows
}

// MutateCell writes a cell in place. Out-of-bounds writes are ignored.
func (g *Grid) MutateCell(row, col int, alive bool, lastUpdated int) {
	if !g.InBounds(row, col) {
		return
	}
	g.rows[row][col] = Cell{Alive: alive, LastUpdated: lastUpdated}
}

// Clear kills every cell and zeroes LastUpdated.
func (g *Grid) Clear() {
	for r := range g.rows {
		for c := range g.rows[r] {
			g.rows[r][c] = Cell{}
		}
	}
}

// Randomize gives every cell an independent 50% chance of life and resets
// LastUpdated to zero.
func (g *Grid) Randomize(rng *rand.Rand) {
	for r := range g.rows {
		for c := range g.rows[r] {
			g.rows[r][c] = Cell{Alive: rng.IntN(2) == 1}
		}
	}
}

// LiveCount returns the number of live cells.
func (g *Grid) LiveCount() int {
	n := 0
	for r := range g.rows {
		for c := range g.rows[r] {
			if g.rows[r][c].Alive {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{rows: make([][]Cell, len(g.rows))}
	for r := range g.rows {
		out.rows[r] = append([]Cell(nil), g.rows[r]...)
	}
	return out
}

// String renders the grid as text, '#' for live and '.' for dead cells.
func (g *Grid) String() string {
	buf := make([]byte, 0, g.Height()*(g.Width()+1))
	for r := range g.rows {
		if r > 0 {
			buf = append(buf, '\n')
		}
		for c := range g.rows[r] {
			if g.rows[r][c].Alive {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
	}
	return string(buf)
}
