package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-life/internal/core"
)

// Glyph pairs for one screen pixel. A pixel is two columns wide so square
// cells look square in a terminal.
const (
	pixelEmpty   = "  "
	pixelFill    = "██"
	pixelOutline = "▒▒"
	pixelBoth    = "▓▓"
)

// pixelKind groups pixels that render with the same style and glyphs.
type pixelKind struct {
	color   core.Color
	filled  bool
	outline bool
}

// Styles holds lipgloss styles bound to one renderer, so SSH sessions get
// the colour profile of their own terminal.
type Styles struct {
	pixels    map[pixelKind]lipgloss.Style
	Status    lipgloss.Style
	StatusKey lipgloss.Style
	Paused    lipgloss.Style
	Message   lipgloss.Style
	Help      lipgloss.Style
}

var paletteColors = []core.Color{
	core.ColorBackground,
	core.ColorJustBorn,
	core.ColorVeryRecent,
	core.ColorRecent,
	core.ColorAging,
	core.ColorStable,
	core.ColorFlat,
	core.ColorBrush,
}

// NewStyles builds styles for r. A nil r uses the default renderer.
func NewStyles(r *lipgloss.Renderer) *Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	brush := lipgloss.Color(core.ColorBrush.Hex())
	s := &Styles{
		pixels:    make(map[pixelKind]lipgloss.Style),
		Status:    r.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")),
		StatusKey: r.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("236")).Bold(true),
		Paused:    r.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214")).Bold(true),
		Message:   r.NewStyle().Foreground(lipgloss.Color("214")).Background(lipgloss.Color("236")),
		Help:      r.NewStyle().Foreground(lipgloss.Color("241")),
	}
	for _, c := range paletteColors {
		fg := lipgloss.Color(c.Hex())
		s.pixels[pixelKind{color: c, filled: true}] = r.NewStyle().Foreground(fg)
		s.pixels[pixelKind{color: c, filled: true, outline: true}] = r.NewStyle().Foreground(fg).Background(brush)
	}
	s.pixels[pixelKind{}] = r.NewStyle()
	s.pixels[pixelKind{outline: true}] = r.NewStyle().Foreground(brush)
	return s
}

func (s *Styles) pixel(k pixelKind) lipgloss.Style {
	if !k.filled {
		k.color = core.ColorBackground
	}
	if st, ok := s.pixels[k]; ok {
		return st
	}
	return s.pixels[pixelKind{}]
}

func glyphs(k pixelKind) string {
	switch {
	case k.filled && k.outline:
		return pixelBoth
	case k.filled:
		return pixelFill
	case k.outline:
		return pixelOutline
	default:
		return pixelEmpty
	}
}

func kindAt(board, cursor *core.Screen, x, y int) pixelKind {
	cell := board.GetCell(x, y)
	k := pixelKind{color: cell.Color, filled: cell.Rune != core.GlyphEmpty}
	if cursor != nil {
		k.outline = cursor.GetCell(x, y).Outline
	}
	if !k.filled {
		k.color = core.ColorBackground
	}
	return k
}

// RenderScreen converts the board and the cursor layer to a styled string.
// Groups adjacent pixels of the same kind to minimize ANSI escape sequences.
func RenderScreen(board, cursor *core.Screen, styles *Styles) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(board.Width()*board.Height()*4 + board.Height())

	for y := range board.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < board.Width() {
			start := kindAt(board, cursor, x, y)

			// Collect consecutive pixels of the same kind
			var run strings.Builder
			for x < board.Width() && kindAt(board, cursor, x, y) == start {
				run.WriteString(glyphs(start))
				x++
			}

			sb.WriteString(styles.pixel(start).Render(run.String()))
		}
	}
	return sb.String()
}
