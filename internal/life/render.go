package life

import "github.com/vovakirdan/tui-life/internal/core"

// Surface is the raster target the engine paints on, in pixel coordinates.
// core.Screen implements it for terminal hosts.
type Surface interface {
	Bounds() core.Rect
	ClearRegion(r core.Rect)
	FillRect(r core.Rect, c core.Color)
	StrokeRect(r core.Rect, c core.Color)
}

// Recency thresholds on LastUpdated. They are fixed, not configurable.
const (
	recencyVeryRecent = 1
	recencyRecent     = 3
	recencyAging      = 6
	recencyStable     = 15
)

// RecencyColor picks the fill colour for a live cell.
func RecencyColor(lastUpdated int, showRecency bool) core.Color {
	if !showRecency {
		return core.ColorFlat
	}
	switch {
	case lastUpdated < recencyVeryRecent:
		return core.ColorJustBorn
	case lastUpdated < recencyRecent:
		return core.ColorVeryRecent
	case lastUpdated < recencyAging:
		return core.ColorRecent
	case lastUpdated < recencyStable:
		return core.ColorAging
	default:
		return core.ColorStable
	}
}

// Render clears s and paints every live cell of g. Dead cells are left as
// background. g is only read.
func Render(g *Grid, s Surface, cellSize int, showRecency bool) {
	if s == nil || g == nil {
		return
	}
	s.ClearRegion(s.Bounds())
	paintCells(g, s, core.NewRect(0, 0, g.Width(), g.Height()), cellSize, showRecency)
}

// RenderRegion repaints only the cells inside region (cell coordinates),
// clearing their pixels first.
func RenderRegion(g *Grid, s Surface, region core.Rect, cellSize int, showRecency bool) {
	if s == nil || g == nil || cellSize <= 0 {
		return
	}
	region = region.Intersect(core.NewRect(0, 0, g.Width(), g.Height()))
	if region.Empty() {
		return
	}
	s.ClearRegion(region.Scale(cellSize))
	paintCells(g, s, region, cellSize, showRecency)
}

func paintCells(g *Grid, s Surface, region core.Rect, cellSize int, showRecency bool) {
	if cellSize <= 0 {
		return
	}
	for r := region.Y; r < region.Bottom(); r++ {
		for c := region.X; c < region.Right(); c++ {
			cell := g.At(r, c)
			if !cell.Alive {
				continue
			}
			s.FillRect(core.NewRect(c*cellSize, r*cellSize, cellSize, cellSize),
				RecencyColor(cell.LastUpdated, showRecency))
		}
	}
}
