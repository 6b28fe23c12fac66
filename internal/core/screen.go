package core

import (
	"strings"
)

// Glyphs used when painting the screen.
const (
	GlyphEmpty = ' '
	GlyphFill  = '█'
)

// Cell is one pixel of the screen buffer.
type Cell struct {
	Rune    rune
	Color   Color
	Outline bool // pixel lies on a stroked rectangle edge
}

var emptyCell = Cell{Rune: GlyphEmpty, Color: ColorBackground}

// Screen is a 2D pixel buffer implementing the raster surface the engine
// draws on. One pixel is one terminal cell pair; the platform decides how
// a pixel is finally displayed.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  Max(width, 0),
		height: Max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in pixels.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in pixels.
func (s *Screen) Height() int {
	return s.height
}

// Bounds returns the full screen rectangle.
func (s *Screen) Bounds() Rect {
	return NewRect(0, 0, s.width, s.height)
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	width, height = Max(width, 0), Max(height, 0)
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := Min(oldW, width)
	copyH := Min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear resets every pixel to the background.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = emptyCell
		}
	}
}

// ClearRegion resets the pixels inside r to the background.
// The region is clipped to the screen.
func (s *Screen) ClearRegion(r Rect) {
	r = r.Intersect(s.Bounds())
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.cells[y][x] = emptyCell
		}
	}
}

// FillRect paints every pixel inside r with c.
func (s *Screen) FillRect(r Rect, c Color) {
	r = r.Intersect(s.Bounds())
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.cells[y][x] = Cell{Rune: GlyphFill, Color: c}
		}
	}
}

// StrokeRect marks the perimeter pixels of r as outline in colour c.
// Pixel content underneath is kept so the outline never hides cells.
func (s *Screen) StrokeRect(r Rect, c Color) {
	if r.Empty() {
		return
	}
	mark := func(x, y int) {
		if x < 0 || x >= s.width || y < 0 || y >= s.height {
			return
		}
		cell := &s.cells[y][x]
		cell.Outline = true
		if cell.Rune == GlyphEmpty {
			cell.Color = c
		}
	}
	for x := r.X; x < r.Right(); x++ {
		mark(x, r.Y)
		mark(x, r.Bottom()-1)
	}
	for y := r.Y; y < r.Bottom(); y++ {
		mark(r.X, y)
		mark(r.Right()-1, y)
	}
}

// Set places a rune with colour c at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Color: c}
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the full pixel at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return emptyCell
	}
	return s.cells[y][x]
}

// String converts the screen buffer to plain text, one row per line.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}
