package raster

import "strings"

// Palette is an ordered glyph ramp from sparsest to densest.
type Palette string

// DefaultPalette is the seven-glyph ramp used by the terminal renderer.
const DefaultPalette Palette = " .:+|0#"

// Background is the glyph for rays that hit nothing.
func (p Palette) Background() byte { return p[1] }

// Densest is the last glyph of the ramp.
func (p Palette) Densest() byte { return p[len(p)-1] }

// At returns the glyph at i, wrapping around the ramp.
func (p Palette) At(i int) byte {
	n := len(p)
	i %= n
	if i < 0 {
		i += n
	}
	return p[i]
}

func (p Palette) Contains(c byte) bool {
	return strings.IndexByte(string(p), c) >= 0
}
