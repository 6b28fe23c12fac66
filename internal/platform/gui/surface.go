//go:build ebiten

package gui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-life/internal/core"
)

// imageSurface paints engine output onto an offscreen ebiten image.
type imageSurface struct {
	img *ebiten.Image
}

func newImageSurface(w, h int) *imageSurface {
	return &imageSurface{img: ebiten.NewImage(max(w, 1), max(h, 1))}
}

func (s *imageSurface) Bounds() core.Rect {
	b := s.img.Bounds()
	return core.NewRect(b.Min.X, b.Min.Y, b.Dx(), b.Dy())
}

// ClearRegion makes the region transparent.
func (s *imageSurface) ClearRegion(r core.Rect) {
	r = r.Intersect(s.Bounds())
	if r.Empty() {
		return
	}
	sub, ok := s.img.SubImage(image.Rect(r.X, r.Y, r.Right(), r.Bottom())).(*ebiten.Image)
	if !ok {
		return
	}
	sub.Clear()
}

func (s *imageSurface) FillRect(r core.Rect, c core.Color) {
	if r.Empty() {
		return
	}
	vector.DrawFilledRect(s.img, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), rgba(c), false)
}

// StrokeRect draws a one pixel border inside r.
func (s *imageSurface) StrokeRect(r core.Rect, c core.Color) {
	if r.Empty() {
		return
	}
	vector.StrokeRect(s.img, float32(r.X)+0.5, float32(r.Y)+0.5, float32(r.W)-1, float32(r.H)-1, 1, rgba(c), false)
}

func rgba(c core.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
