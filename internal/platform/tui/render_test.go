package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-life/internal/core"
)

func plainStyles() *Styles {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return NewStyles(r)
}

func TestRenderScreenPixelsAreTwoColumns(t *testing.T) {
	board := core.NewScreen(3, 2)
	board.FillRect(core.NewRect(1, 0, 1, 1), core.ColorFlat)

	out := RenderScreen(board, nil, plainStyles())
	lines := strings.Split(out, "\n")

	assert.Len(t, lines, 2)
	assert.Equal(t, "  ██  ", lines[0])
	assert.Equal(t, "      ", lines[1])
}

func TestRenderScreenOutline(t *testing.T) {
	board := core.NewScreen(3, 3)
	cursor := core.NewScreen(3, 3)
	board.FillRect(core.NewRect(0, 0, 1, 1), core.ColorJustBorn)
	cursor.StrokeRect(core.NewRect(0, 0, 2, 2), core.ColorBrush)

	lines := strings.Split(RenderScreen(board, cursor, plainStyles()), "\n")

	assert.Equal(t, pixelBoth+pixelOutline+pixelEmpty, lines[0])
	assert.Equal(t, pixelOutline+pixelOutline+pixelEmpty, lines[1])
	assert.Equal(t, strings.Repeat(pixelEmpty, 3), lines[2])
}

func TestStylesUnknownKindFallsBack(t *testing.T) {
	s := plainStyles()
	st := s.pixel(pixelKind{color: core.Color(200), filled: true})
	assert.Equal(t, "x", st.Render("x"))
}
