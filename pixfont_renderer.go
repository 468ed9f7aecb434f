package img2ascii

import (
	"fmt"
	"image"
	"image/color"

	"github.com/pbnjay/pixfont"
)

// PixfontRenderer renders glyphs from a pixel font, scaled up by an
// integer factor and centered in the glyph cell. It needs no font file.
type PixfontRenderer struct {
	font *pixfont.PixFont
}

// NewPixfontRenderer returns a renderer backed by pixfont's default 8px
// font.
func NewPixfontRenderer() *PixfontRenderer {
	return &PixfontRenderer{font: pixfont.DefaultFont}
}

// Render draws r at native size, then scales it nearest-neighbor into the
// glyph cell.
func (pr *PixfontRenderer) Render(r rune) (GlyphBitmap, error) {
	src := image.NewAlpha(image.Rect(0, 0, GlyphSize, GlyphSize))
	width := pr.font.DrawString(src, 0, 0, string(r), color.Opaque)

	// Height is measured down to the lowest inked row.
	height := 0
	for y := 0; y < GlyphSize; y++ {
		for x := 0; x < GlyphSize; x++ {
			if src.AlphaAt(x, y).A != 0 {
				height = y + 1
				break
			}
		}
	}
	if height == 0 && r != ' ' {
		return GlyphBitmap{}, fmt.Errorf("%w: %q in pixfont", ErrUnknownGlyph, r)
	}

	scale := max(1, GlyphSize/max(width, height, 1))
	offsetX := max(0, (GlyphSize-width*scale)/2)
	offsetY := max(0, (GlyphSize-height*scale)/2)

	var bitmap GlyphBitmap
	for y := offsetY; y < GlyphSize; y++ {
		for x := offsetX; x < GlyphSize; x++ {
			sx, sy := (x-offsetX)/scale, (y-offsetY)/scale
			if sx < width && sy < height && src.AlphaAt(sx, sy).A != 0 {
				bitmap.Set(x, y, true)
			}
		}
	}
	return bitmap, nil
}
