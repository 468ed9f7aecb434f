package img2ascii

import (
	"image"
	"math/bits"
)

// GlyphSize is the side length of the square cell every glyph is rendered
// into before its brightness is measured.
const GlyphSize = 16

// GlyphBitmap represents a GlyphSize x GlyphSize character cell, one
// uint16 per row. A set bit marks an ink pixel; bit x of row y is
// column x.
type GlyphBitmap [GlyphSize]uint16

// Get reports whether the pixel at (x, y) is ink. Out of range
// coordinates are never ink.
func (g GlyphBitmap) Get(x, y int) bool {
	if x < 0 || x >= GlyphSize || y < 0 || y >= GlyphSize {
		return false
	}
	return g[y]&(1<<x) != 0
}

// Set marks the pixel at (x, y) as ink or background.
func (g *GlyphBitmap) Set(x, y int, value bool) {
	if x < 0 || x >= GlyphSize || y < 0 || y >= GlyphSize {
		return
	}
	if value {
		g[y] |= 1 << x
	} else {
		g[y] &^= 1 << x
	}
}

// Count returns the number of ink pixels.
func (g GlyphBitmap) Count() int {
	n := 0
	for _, row := range g {
		n += bits.OnesCount16(row)
	}
	return n
}

// Brightness returns the fraction of the cell covered by ink.
func (g GlyphBitmap) Brightness() float64 {
	return float64(g.Count()) / (GlyphSize * GlyphSize)
}

// bitmapFromAlpha thresholds the top-left GlyphSize square of img.
func bitmapFromAlpha(img *image.Alpha, threshold uint8) GlyphBitmap {
	var bitmap GlyphBitmap
	for y := 0; y < GlyphSize; y++ {
		for x := 0; x < GlyphSize; x++ {
			if img.AlphaAt(x, y).A > threshold {
				bitmap.Set(x, y, true)
			}
		}
	}
	return bitmap
}

// GlyphRenderer turns a rune into its fixed size bitmap. Implementations
// must be deterministic, since GlyphIndex memoizes the result.
type GlyphRenderer interface {
	Render(r rune) (GlyphBitmap, error)
}

// GlyphRendererFunc adapts an ordinary function to a GlyphRenderer.
type GlyphRendererFunc func(r rune) (GlyphBitmap, error)

// Render calls f(r).
func (f GlyphRendererFunc) Render(r rune) (GlyphBitmap, error) {
	return f(r)
}
