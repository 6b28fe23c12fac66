package life

import "github.com/vovakirdan/tui-life/internal/core"

// BrushMode selects what the brush does to cells under it.
type BrushMode int

const (
	BrushInactive BrushMode = iota
	BrushDraw
	BrushErase
)

func (m BrushMode) String() string {
	switch m {
	case BrushDraw:
		return "draw"
	case BrushErase:
		return "erase"
	default:
		return "off"
	}
}

// ParseBrushMode maps "draw", "erase" and anything else to a mode.
func ParseBrushMode(s string) BrushMode {
	switch s {
	case "draw", "d":
		return BrushDraw
	case "erase", "e":
		return BrushErase
	default:
		return BrushInactive
	}
}

// BrushState is the brush mode and its square width in cells.
type BrushState struct {
	Mode  BrushMode
	Width int
}

// NormalizeWidth returns the nearest odd width not below 1.
// Even widths round up.
func NormalizeWidth(w int) int {
	if w < 1 {
		return 1
	}
	if w%2 == 0 {
		return w + 1
	}
	return w
}

// Normalized returns b with an odd width.
func (b BrushState) Normalized() BrushState {
	b.Width = NormalizeWidth(b.Width)
	return b
}

// HalfWidth is the distance from the centre cell to the brush edge.
func (b BrushState) HalfWidth() int {
	return (NormalizeWidth(b.Width) - 1) / 2
}

// Square returns the brush footprint centred on (row, col), in cell
// coordinates, unclipped.
func (b BrushState) Square(row, col int) core.Rect {
	h := b.HalfWidth()
	w := NormalizeWidth(b.Width)
	return core.NewRect(col-h, row-h, w, w)
}

// DrawOverlay tracks pointer and button state for the brush.
// Pointer positions are kept in pixels and converted with the cell size in
// force when the overlay runs.
type DrawOverlay struct {
	brush    BrushState
	px, py   int
	hasPoint bool
	held     bool
	armed    bool
}

// NewDrawOverlay returns an armed overlay with an inactive one-cell brush.
func NewDrawOverlay() DrawOverlay {
	return DrawOverlay{brush: BrushState{Mode: BrushInactive, Width: 1}, armed: true}
}

// SetBrush replaces the brush, normalizing its width.
func (o *DrawOverlay) SetBrush(b BrushState) {
	o.brush = b.Normalized()
}

// Brush returns the current brush.
func (o *DrawOverlay) Brush() BrushState {
	return o.brush
}

// Move records the pointer position in pixels.
func (o *DrawOverlay) Move(px, py int) {
	o.px, o.py = px, py
	o.hasPoint = true
}

// Press and Release track the primary button.
func (o *DrawOverlay) Press()   { o.held = true }
func (o *DrawOverlay) Release() { o.held = false }

// Held reports whether the primary button is down.
func (o *DrawOverlay) Held() bool { return o.held }

// SetArmed blocks or unblocks painting, e.g. while the pointer is over a
// control surface. Outline drawing is not affected.
func (o *DrawOverlay) SetArmed(armed bool) { o.armed = armed }

// Armed reports whether painting is allowed.
func (o *DrawOverlay) Armed() bool { return o.armed }

// Pointer returns the pointer grid coordinate for the given cell size.
func (o *DrawOverlay) Pointer(cellSize int) (row, col int, ok bool) {
	if !o.hasPoint || cellSize <= 0 {
		return 0, 0, false
	}
	return core.FloorDiv(o.py, cellSize), core.FloorDiv(o.px, cellSize), true
}

// Outline returns the brush square under the pointer in cell coordinates.
func (o *DrawOverlay) Outline(cellSize int) (core.Rect, bool) {
	row, col, ok := o.Pointer(cellSize)
	if !ok {
		return core.Rect{}, false
	}
	return o.brush.Square(row, col), true
}

// Apply paints the brush into g when armed, held, active and the pointer
// is on the grid. It returns the touched cell region, clipped to g.
func (o *DrawOverlay) Apply(g *Grid, cellSize int) (core.Rect, bool) {
	if !o.armed || !o.held || o.brush.Mode == BrushInactive {
		return core.Rect{}, false
	}
	row, col, ok := o.Pointer(cellSize)
	if !ok || !g.InBounds(row, col) {
		return core.Rect{}, false
	}
	region := o.brush.Square(row, col).Intersect(core.NewRect(0, 0, g.Width(), g.Height()))
	alive := o.brush.Mode == BrushDraw
	for r := region.Y; r < region.Bottom(); r++ {
		for c := region.X; c < region.Right(); c++ {
			g.MutateCell(r, c, alive, 0)
		}
	}
	return region, true
}
