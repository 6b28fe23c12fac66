package core

// Color identifies a paint role on a raster surface.
// Hosts translate roles into terminal styles or RGBA values.
type Color uint8

// Palette roles used by the renderer and the brush overlay.
const (
	ColorBackground Color = iota
	ColorJustBorn         // alive, born this generation
	ColorVeryRecent       // alive for 1-2 generations
	ColorRecent           // alive for 3-5 generations
	ColorAging            // alive for 6-14 generations
	ColorStable           // alive for 15+ generations
	ColorFlat             // any live cell when recency display is off
	ColorBrush            // brush outline
)

var colorHex = map[Color]string{
	ColorBackground: "#000000",
	ColorJustBorn:   "#4678eb",
	ColorVeryRecent: "#1ed15a",
	ColorRecent:     "#f0c930",
	ColorAging:      "#e65054",
	ColorStable:     "#646970",
	ColorFlat:       "#ffffff",
	ColorBrush:      "#b4b4b4",
}

// Hex returns the colour as a #rrggbb string.
func (c Color) Hex() string {
	if h, ok := colorHex[c]; ok {
		return h
	}
	return colorHex[ColorBackground]
}

// RGB returns the red, green and blue components of the colour.
func (c Color) RGB() (r, g, b uint8) {
	h := c.Hex()
	return hexByte(h[1:3]), hexByte(h[3:5]), hexByte(h[5:7])
}

func hexByte(s string) uint8 {
	var v uint8
	for i := 0; i < len(s); i++ {
		v <<= 4
		switch ch := s[i]; {
		case ch >= '0' && ch <= '9':
			v |= ch - '0'
		case ch >= 'a' && ch <= 'f':
			v |= ch - 'a' + 10
		case ch >= 'A' && ch <= 'F':
			v |= ch - 'A' + 10
		}
	}
	return v
}
